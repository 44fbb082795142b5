package parser

import (
	"strings"

	"wikiparse/internal/wikinode"
)

// tryLink matches [[...]] and classifies it as link, category, file,
// or interlang_link per spec section 4.4. Link bodies are not
// recursively parsed; display stays a plain string.
func (p *parser) tryLink() (*wikinode.Node, bool) {
	if !p.hasPrefix("[[") {
		return nil, false
	}
	rest := p.src[p.pos+2:]
	idx := strings.Index(rest, "]]")
	if idx == -1 {
		return nil, false
	}
	payload := rest[:idx]
	p.pos += 2 + idx + 2

	target, display, hasPipe := splitFirstPipe(payload)
	target = strings.TrimSpace(target)

	switch {
	case strings.HasPrefix(target, "Category:"):
		name := strings.TrimSpace(strings.TrimPrefix(target, "Category:"))
		return wikinode.NewCategory(name), true

	case strings.HasPrefix(target, "File:"):
		name := strings.TrimSpace(strings.TrimPrefix(target, "File:"))
		var params []string
		if hasPipe && strings.TrimSpace(display) != name {
			params = splitTrim(display, "|")
		}
		return wikinode.NewFile(name, params), true

	case wikinode.LooksLikeInterlang(target):
		colon := strings.IndexByte(target, ':')
		lang := wikinode.CanonicalLang(target[:colon])
		title := strings.TrimSpace(target[colon+1:])
		return wikinode.NewInterlangLink(lang, title), true

	default:
		disp := target
		if hasPipe {
			disp = strings.TrimSpace(display)
		}
		return wikinode.NewLink(target, disp), true
	}
}

// splitFirstPipe splits s on the first '|', reporting whether one was
// found. With no pipe, display equals the whole input.
func splitFirstPipe(s string) (target, display string, hasPipe bool) {
	idx := strings.IndexByte(s, '|')
	if idx == -1 {
		return s, s, false
	}
	return s[:idx], s[idx+1:], true
}

// splitTrim splits s on sep and trims ASCII whitespace from each part.
func splitTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	out := make([]string, len(parts))
	for i, part := range parts {
		out[i] = strings.TrimSpace(part)
	}
	return out
}

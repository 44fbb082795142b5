package parser

import (
	"strings"

	"wikiparse/internal/wikinode"
)

// atLineStart reports whether the cursor sits at the beginning of the
// input or immediately after a newline.
func (p *parser) atLineStart() bool {
	return p.pos == 0 || p.at(-1) == '\n'
}

// tryHeader matches a 1-6 '=' run, optional single-space pad, body,
// optional single-space pad, closing '=' run, all on one line, per
// spec section 4.5. The body is re-parsed by the top-level driver.
func (p *parser) tryHeader() (*wikinode.Node, bool) {
	if !p.atLineStart() || p.at(0) != '=' {
		return nil, false
	}

	lineEnd := strings.IndexByte(p.src[p.pos:], '\n')
	var line string
	if lineEnd == -1 {
		line = p.src[p.pos:]
	} else {
		line = p.src[p.pos : p.pos+lineEnd]
	}

	raw := 0
	for raw < len(line) && line[raw] == '=' {
		raw++
	}
	n := raw
	if n > 6 {
		n = 6
	}
	if n < 1 {
		return nil, false
	}

	rest := line[n:]
	rest = strings.TrimPrefix(rest, " ")

	i := len(rest)
	for i > 0 && rest[i-1] == '=' {
		i--
	}
	closeLen := len(rest) - i
	if closeLen == 0 {
		return nil, false
	}

	body := strings.TrimSuffix(rest[:i], " ")

	if !p.enter() {
		return nil, false
	}
	children := p.parseSub(body, ctxTop)
	p.leave()

	p.pos += len(line)
	return wikinode.NewHeader(n, children), true
}

// parseSub recurses the top-level driver over an independently
// bounded substring (a header/list/table-cell/tag body), sharing the
// recursion-depth budget with the enclosing parse.
func (p *parser) parseSub(s string, c ctx) []*wikinode.Node {
	sub := &parser{src: s, maxDepth: p.maxDepth, depth: p.depth, allowBold: true, allowItalic: true}
	nodes := sub.parseNodes(c)
	if sub.limitHit {
		p.limitHit = true
	}
	return nodes
}

package parser

import (
	"strings"

	"wikiparse/internal/wikinode"
)

// tryListItem matches a run of '*' (unordered) or '#' (ordered)
// markers followed by whitespace at the start of a line, per spec
// section 4.6. The rest of the line is parsed as inline content.
func (p *parser) tryListItem() (*wikinode.Node, bool) {
	if !p.atLineStart() {
		return nil, false
	}
	marker := p.at(0)
	if marker != '*' && marker != '#' {
		return nil, false
	}
	n := 0
	for p.at(n) == marker {
		n++
	}
	if p.at(n) != ' ' && p.at(n) != '\t' {
		return nil, false
	}
	markerLen := n + 1

	lineEnd := strings.IndexByte(p.src[p.pos:], '\n')
	var line string
	if lineEnd == -1 {
		line = p.src[p.pos:]
	} else {
		line = p.src[p.pos : p.pos+lineEnd]
	}
	content := line[markerLen:]

	kind := wikinode.Unordered
	if marker == '#' {
		kind = wikinode.Ordered
	}

	if !p.enter() {
		return nil, false
	}
	children := p.parseSub(content, ctxListItem)
	p.leave()

	p.pos += len(line)
	return wikinode.NewListItem(kind, n, children), true
}

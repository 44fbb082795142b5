package parser

import (
	"strings"

	"wikiparse/internal/wikinode"
)

// tryComment matches "<!-- ... -->" verbatim; the body is never
// parsed, per spec section 4.10.
func (p *parser) tryComment() (*wikinode.Node, bool) {
	if !p.hasPrefix("<!--") {
		return nil, false
	}
	idx := strings.Index(p.src[p.pos+4:], "-->")
	if idx == -1 {
		return nil, false
	}
	content := p.src[p.pos+4 : p.pos+4+idx]
	p.pos += 4 + idx + 3
	return wikinode.NewComment(content), true
}

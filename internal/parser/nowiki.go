package parser

import (
	"strings"

	"wikiparse/internal/wikinode"
)

// tryNowiki matches "<nowiki>...</nowiki>" verbatim; the body is never
// parsed and no escaping is recognized inside it, per spec section
// 4.10.
func (p *parser) tryNowiki() (*wikinode.Node, bool) {
	const open = "<nowiki>"
	const close = "</nowiki>"
	if !p.hasPrefix(open) {
		return nil, false
	}
	idx := strings.Index(p.src[p.pos+len(open):], close)
	if idx == -1 {
		return nil, false
	}
	content := p.src[p.pos+len(open) : p.pos+len(open)+idx]
	p.pos += len(open) + idx + len(close)
	return wikinode.NewNowiki(content), true
}

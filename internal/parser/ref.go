package parser

import "wikiparse/internal/wikinode"

// scanUntilLiteral parses inline content in context c until the exact
// literal terminator occurs (consumed), or EOF.
func (p *parser) scanUntilLiteral(terminator string, c ctx) ([]*wikinode.Node, bool) {
	var nodes []*wikinode.Node
	for {
		if p.eof() {
			return nodes, false
		}
		if p.hasPrefix(terminator) {
			p.pos += len(terminator)
			return nodes, true
		}
		node, ok := p.tryOne(c)
		if !ok {
			return nodes, false
		}
		nodes = append(nodes, node)
	}
}

// tryContainerRef matches "<ref attrs?>body</ref>". Unlike the generic
// HTML container, the closing tag must literally be "</ref>" since ref
// has a dedicated grammar driven by its name/group attributes (spec
// section 4.7).
func (p *parser) tryContainerRef() (*wikinode.Node, bool) {
	start := p.pos
	name, attrs, selfClose, ok := p.parseTagOpen()
	if !ok || name != "ref" || selfClose {
		p.pos = start
		return nil, false
	}
	if !p.enter() {
		p.pos = start
		return nil, false
	}
	children, closed := p.scanUntilLiteral("</ref>", ctxHTMLBody)
	p.leave()
	if !closed {
		p.pos = start
		return nil, false
	}
	refName, hasName := attrs["name"]
	refGroup, hasGroup := attrs["group"]
	return wikinode.NewRef(refName, hasName, refGroup, hasGroup, children), true
}

// trySelfClosingRef matches "<ref attrs? />" or a bare "<ref attrs?>"
// once the container alternative has already failed to find a closer.
func (p *parser) trySelfClosingRef() (*wikinode.Node, bool) {
	start := p.pos
	name, attrs, _, ok := p.parseTagOpen()
	if !ok || name != "ref" {
		p.pos = start
		return nil, false
	}
	refName, hasName := attrs["name"]
	refGroup, hasGroup := attrs["group"]
	return wikinode.NewRef(refName, hasName, refGroup, hasGroup, nil), true
}

package parser

import "wikiparse/internal/wikinode"

// parseNodes is the ordered-choice loop shared by the top-level parse
// and every reentry point (header/list/table-cell/tag bodies). It
// runs until EOF or no alternative can advance the cursor.
func (p *parser) parseNodes(c ctx) []*wikinode.Node {
	var nodes []*wikinode.Node
	for {
		if p.eof() {
			break
		}
		node, ok := p.tryOne(c)
		if !ok {
			break
		}
		nodes = append(nodes, node)
	}
	return nodes
}

// tryOne attempts the ordered alternatives for ctx c at the current
// position. It always succeeds before EOF: the plain-text fallback
// force-consumes a rune when nothing else matches (spec section
// 4.11).
func (p *parser) tryOne(c ctx) (*wikinode.Node, bool) {
	switch c {
	case ctxHTMLBody:
		return p.tryOneHTMLBody()
	case ctxListItem:
		return p.tryOneListItem()
	case ctxTableCell:
		return p.tryOneFull(exclusionsFor(ctxTableCell))
	default:
		return p.tryOneFull(exclusionsFor(ctxTop))
	}
}

// tryOneFull is the complete alternative ordering of spec section 4.1,
// used at the top level, inside headers, and inside table cells (the
// latter two reenter "the top-level driver" verbatim, differing only
// in the plain-text exclusion set).
func (p *parser) tryOneFull(set exclSet) (*wikinode.Node, bool) {
	if node, ok := p.tryTemplate(); ok {
		return node, true
	}
	if node, ok := p.tryHeader(); ok {
		return node, true
	}
	if node, ok := p.tryComment(); ok {
		return node, true
	}
	if node, ok := p.tryNowiki(); ok {
		return node, true
	}
	if node, ok := p.tryTable(); ok {
		return node, true
	}
	if node, ok := p.tryListItem(); ok {
		return node, true
	}
	if node, ok := p.tryFormatting(); ok {
		return node, true
	}
	if node, ok := p.tryLink(); ok {
		return node, true
	}
	if node, ok := p.tryContainerRef(); ok {
		return node, true
	}
	if node, ok := p.trySelfClosingRef(); ok {
		return node, true
	}
	if node, ok := p.tryContainerHTMLTag(); ok {
		return node, true
	}
	if node, ok := p.trySelfClosingHTMLTag(); ok {
		return node, true
	}
	return p.scanTextFallback(set)
}

// tryOneHTMLBody is the subset of alternatives attempted inside an
// HTML/ref tag body: tables, headers, comments, and lists are not
// attempted there (spec section 4.7).
func (p *parser) tryOneHTMLBody() (*wikinode.Node, bool) {
	if node, ok := p.tryTemplate(); ok {
		return node, true
	}
	if node, ok := p.tryNowiki(); ok {
		return node, true
	}
	if node, ok := p.tryFormatting(); ok {
		return node, true
	}
	if node, ok := p.tryLink(); ok {
		return node, true
	}
	if node, ok := p.tryContainerRef(); ok {
		return node, true
	}
	if node, ok := p.trySelfClosingRef(); ok {
		return node, true
	}
	if node, ok := p.tryContainerHTMLTag(); ok {
		return node, true
	}
	if node, ok := p.trySelfClosingHTMLTag(); ok {
		return node, true
	}
	return p.scanTextFallback(exclusionsFor(ctxHTMLBody))
}

// tryOneListItem is the subset of alternatives attempted inside a list
// item's rest-of-line content: headers, tables, and nested lists are
// not attempted there (spec section 4.6).
func (p *parser) tryOneListItem() (*wikinode.Node, bool) {
	if node, ok := p.tryTemplate(); ok {
		return node, true
	}
	if node, ok := p.tryComment(); ok {
		return node, true
	}
	if node, ok := p.tryNowiki(); ok {
		return node, true
	}
	if node, ok := p.tryFormatting(); ok {
		return node, true
	}
	if node, ok := p.tryLink(); ok {
		return node, true
	}
	if node, ok := p.tryContainerRef(); ok {
		return node, true
	}
	if node, ok := p.trySelfClosingRef(); ok {
		return node, true
	}
	if node, ok := p.tryContainerHTMLTag(); ok {
		return node, true
	}
	if node, ok := p.trySelfClosingHTMLTag(); ok {
		return node, true
	}
	return p.scanTextFallback(exclusionsFor(ctxListItem))
}

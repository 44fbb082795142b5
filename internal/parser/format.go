package parser

import "wikiparse/internal/wikinode"

// tryBoldItalic matches a '''''-delimited run. Its body may not
// contain further bold or italic (spec section 4.3); an unterminated
// run fails without consuming, leaving the apostrophes for the
// fallback text scanner to absorb one at a time.
func (p *parser) tryBoldItalic() (*wikinode.Node, bool) {
	if !p.allowBold || !p.allowItalic || !p.hasPrefix("'''''") {
		return nil, false
	}
	start := p.pos
	if !p.enter() {
		return nil, false
	}
	defer p.leave()

	p.pos += 5
	savedBold, savedItalic := p.allowBold, p.allowItalic
	p.allowBold, p.allowItalic = false, false
	nodes, closed := p.scanUntilApostropheRun(5)
	p.allowBold, p.allowItalic = savedBold, savedItalic

	if !closed {
		p.pos = start
		return nil, false
	}
	return wikinode.NewBold([]*wikinode.Node{wikinode.NewItalic(nodes)}), true
}

// tryBold matches a '''-delimited run. Nested italic is allowed,
// nested bold is not.
func (p *parser) tryBold() (*wikinode.Node, bool) {
	if !p.allowBold || !p.hasPrefix("'''") {
		return nil, false
	}
	start := p.pos
	if !p.enter() {
		return nil, false
	}
	defer p.leave()

	p.pos += 3
	savedBold := p.allowBold
	p.allowBold = false
	nodes, closed := p.scanUntilApostropheRun(3)
	p.allowBold = savedBold

	if !closed {
		p.pos = start
		return nil, false
	}
	return wikinode.NewBold(nodes), true
}

// tryItalic matches a ''-delimited run. A ''' encountered inside is
// treated as a nested bold start rather than the italic terminator;
// any other '' closes it.
func (p *parser) tryItalic() (*wikinode.Node, bool) {
	if !p.allowItalic || !p.hasPrefix("''") || p.hasPrefix("'''") {
		return nil, false
	}
	start := p.pos
	if !p.enter() {
		return nil, false
	}
	defer p.leave()

	p.pos += 2
	savedItalic := p.allowItalic
	p.allowItalic = false
	nodes, closed := p.scanItalicBody()
	p.allowItalic = savedItalic

	if !closed {
		p.pos = start
		return nil, false
	}
	return wikinode.NewItalic(nodes), true
}

// tryFormatting tries the three apostrophe-delimited alternatives in
// precedence order: bold-italic, then bold, then italic.
func (p *parser) tryFormatting() (*wikinode.Node, bool) {
	if node, ok := p.tryBoldItalic(); ok {
		return node, true
	}
	if node, ok := p.tryBold(); ok {
		return node, true
	}
	if node, ok := p.tryItalic(); ok {
		return node, true
	}
	return nil, false
}

// scanUntilApostropheRun parses inline content until an exact run of n
// apostrophes terminates it (consumed), or EOF (unterminated).
func (p *parser) scanUntilApostropheRun(n int) ([]*wikinode.Node, bool) {
	target := ""
	for i := 0; i < n; i++ {
		target += "'"
	}
	var nodes []*wikinode.Node
	for {
		if p.eof() {
			return nodes, false
		}
		if p.hasPrefix(target) {
			p.pos += n
			return nodes, true
		}
		node, ok := p.tryOne(ctxTop)
		if !ok {
			return nodes, false
		}
		nodes = append(nodes, node)
	}
}

// scanItalicBody parses inline content until a bare '' (not part of a
// longer apostrophe run) terminates it.
func (p *parser) scanItalicBody() ([]*wikinode.Node, bool) {
	var nodes []*wikinode.Node
	for {
		if p.eof() {
			return nodes, false
		}
		if p.hasPrefix("''") && !p.hasPrefix("'''") {
			p.pos += 2
			return nodes, true
		}
		node, ok := p.tryOne(ctxTop)
		if !ok {
			return nodes, false
		}
		nodes = append(nodes, node)
	}
}

package parser

import "wikiparse/internal/wikinode"

// exclSet is the set of bytes the plain-text scanner treats as
// potential construct starts at the current context, per spec
// section 4.2.
type exclSet struct {
	brace      bool // '{'
	closeBrace bool // '}'
	apostrophe bool // '\''
	bracket    bool // '['
	equals     bool // '='
	angle      bool // '<'
	star       bool // '*'
	hash       bool // '#'
	pipe       bool // '|'
	newline    bool // '\n'
}

var (
	exclBase = exclSet{brace: true, apostrophe: true, bracket: true, equals: true, angle: true, star: true, hash: true}
	exclTemplateArg = exclSet{brace: true, closeBrace: true, pipe: true, newline: true, apostrophe: true, bracket: true, angle: true}
)

// exclusionsFor returns the scanner exclusion set for ctx.
func exclusionsFor(c ctx) exclSet {
	switch c {
	case ctxTemplateArg:
		return exclTemplateArg
	case ctxListItem:
		s := exclBase
		s.newline = true
		return s
	case ctxTableCell:
		s := exclBase
		s.pipe = true
		s.newline = true
		return s
	default:
		return exclBase
	}
}

// admits reports whether the byte at p.pos is safe to fold into a
// plain-text run under set, applying the two-character lookahead
// rules of spec section 4.2. It does not advance the cursor.
func (p *parser) admits(set exclSet) bool {
	b := p.at(0)
	switch {
	case set.brace && b == '{':
		// a lone '{' not followed by '{' or '|' is plain text
		return p.at(1) != '{' && p.at(1) != '|'
	case set.closeBrace && b == '}':
		return p.at(1) != '}'
	case set.apostrophe && b == '\'':
		return p.at(1) != '\''
	case set.bracket && b == '[':
		return p.at(1) != '['
	case set.equals && b == '=':
		return p.at(1) != '='
	case set.angle && b == '<':
		n := p.at(1)
		isLetter := (n >= 'a' && n <= 'z') || (n >= 'A' && n <= 'Z')
		isComment := p.hasPrefixAt(1, "!--")
		return !isLetter && n != '/' && !isComment
	case (set.star && b == '*') || (set.hash && b == '#'):
		followedBySame := p.at(1) == b
		followedByWS := p.at(1) == ' ' || p.at(1) == '\t'
		return !followedByWS && !followedBySame
	case set.pipe && b == '|':
		return false
	case set.newline && b == '\n':
		return false
	default:
		return true
	}
}

// scanTextRun consumes the maximal run of admitted bytes, returning a
// text node when at least one byte was consumed.
func (p *parser) scanTextRun(set exclSet) (*wikinode.Node, bool) {
	start := p.pos
	for !p.eof() && p.admits(set) {
		_, size := p.decodeRune()
		if size == 0 {
			size = 1
		}
		p.pos += size
	}
	if p.pos == start {
		return nil, false
	}
	return wikinode.NewText(p.src[start:p.pos]), true
}

// scanTextFallback is the last-resort alternative: if no construct
// claimed the current position and the greedy run above could not
// advance (the leading byte itself looked like a construct start that
// then failed to parse), it force-consumes exactly one rune as text so
// the driver always makes progress, per spec section 4.11.
func (p *parser) scanTextFallback(set exclSet) (*wikinode.Node, bool) {
	if node, ok := p.scanTextRun(set); ok {
		return node, true
	}
	if p.eof() {
		return nil, false
	}
	_, size := p.decodeRune()
	if size == 0 {
		size = 1
	}
	text := p.src[p.pos : p.pos+size]
	p.pos += size
	return wikinode.NewText(text), true
}

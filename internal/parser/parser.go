// Package parser implements the recursive-descent wikitext grammar:
// an ordered-choice scanner over plain text, text-decoration runs,
// links, headers, lists, HTML-like tags, templates, and tables. It
// has no separate tokenizer and no global state; each sub-parser
// either produces a node and advances the cursor or leaves it
// untouched.
package parser

import (
	"errors"
	"unicode/utf8"

	"wikiparse/internal/wikinode"
)

// DefaultMaxDepth bounds recursive descent against pathological input,
// per the recursion-limit policy in spec section 5.
const DefaultMaxDepth = 256

// ErrDepthExceeded is returned when a parse would recurse past the
// configured depth cap.
var ErrDepthExceeded = errors.New("wikiparse: recursion limit exceeded")

// Result is the public outcome of a top-level Parse call.
type Result struct {
	Nodes     []*wikinode.Node
	Remainder string
	Err       error
}

// parser holds scan position and recursion bookkeeping for one parse.
// It is not retained after Parse returns; the produced nodes hold
// substrings of the input, which share the input's memory.
type parser struct {
	src      string
	pos      int
	depth    int
	maxDepth int
	limitHit bool

	// allowBold/allowItalic gate the formatting alternatives; both
	// default true and are temporarily cleared while parsing the body
	// of a bold/italic/bold-italic run so it cannot directly nest the
	// same construct (spec section 4.3, invariant 3).
	allowBold   bool
	allowItalic bool
}

func newParser(src string, maxDepth int) *parser {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &parser{src: src, maxDepth: maxDepth, allowBold: true, allowItalic: true}
}

// Parse runs the top-level driver over input and returns the produced
// nodes, the unconsumed remainder, and an error only when the
// recursion cap was exceeded.
func Parse(input string) Result {
	return ParseWithDepth(input, DefaultMaxDepth)
}

// ParseWithDepth is Parse with an explicit recursion-depth cap.
func ParseWithDepth(input string, maxDepth int) Result {
	p := newParser(input, maxDepth)
	p.skipLeadingASCIISpace()
	nodes := p.parseNodes(ctxTop)
	if p.limitHit {
		return Result{Nodes: nodes, Remainder: p.src[p.pos:], Err: ErrDepthExceeded}
	}
	return Result{Nodes: nodes, Remainder: p.src[p.pos:]}
}

// skipLeadingASCIISpace consumes, without emitting any node, the
// leading run of ASCII whitespace per spec section 4.1.
func (p *parser) skipLeadingASCIISpace() {
	for p.pos < len(p.src) && isASCIISpace(p.src[p.pos]) {
		p.pos++
	}
}

func isASCIISpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f' || b == '\v'
}

// eof reports whether the cursor is at the end of input.
func (p *parser) eof() bool {
	return p.pos >= len(p.src)
}

// at returns the byte at pos+offset, or 0 if out of range.
func (p *parser) at(offset int) byte {
	i := p.pos + offset
	if i < 0 || i >= len(p.src) {
		return 0
	}
	return p.src[i]
}

// hasPrefix reports whether s occurs at the current cursor.
func (p *parser) hasPrefix(s string) bool {
	return len(p.src)-p.pos >= len(s) && p.src[p.pos:p.pos+len(s)] == s
}

// hasPrefixAt reports whether s occurs at pos+offset.
func (p *parser) hasPrefixAt(offset int, s string) bool {
	i := p.pos + offset
	if i < 0 || i+len(s) > len(p.src) {
		return false
	}
	return p.src[i:i+len(s)] == s
}

// decodeRune returns the rune at the current cursor and its width.
func (p *parser) decodeRune() (rune, int) {
	if p.eof() {
		return 0, 0
	}
	return utf8.DecodeRuneInString(p.src[p.pos:])
}

// enter increments the recursion depth, returning false (and latching
// limitHit) if that would exceed maxDepth. Every sub-parser that
// reenters parseNodes must pair this with a matching leave.
func (p *parser) enter() bool {
	if p.depth >= p.maxDepth {
		p.limitHit = true
		return false
	}
	p.depth++
	return true
}

func (p *parser) leave() {
	p.depth--
}

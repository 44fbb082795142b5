package parser

import (
	"strings"

	"wikiparse/internal/wikinode"
)

// tryTemplate matches "{{name|arg|key=value|...}}" per spec section
// 4.8. The name and positional/named argument classification are
// resolved by flat lookahead; argument values are parsed by a
// restricted sub-grammar so a nested template's internal pipes never
// terminate the enclosing argument.
func (p *parser) tryTemplate() (*wikinode.Node, bool) {
	if !p.hasPrefix("{{") {
		return nil, false
	}
	start := p.pos
	if !p.enter() {
		return nil, false
	}
	defer p.leave()

	p.pos += 2
	p.skipWS()

	nameStart := p.pos
	for !p.eof() {
		b := p.at(0)
		if b == '|' || b == '\n' || b == '\r' || b == '}' {
			break
		}
		p.pos++
	}
	name := strings.TrimSpace(p.src[nameStart:p.pos])
	if name == "" {
		p.pos = start
		return nil, false
	}
	p.skipWS()

	var args []wikinode.Arg
	for p.hasPrefix("|") {
		p.pos++
		arg, ok := p.parseTemplateArg()
		if !ok {
			p.pos = start
			return nil, false
		}
		if arg != nil {
			args = append(args, *arg)
		}
	}

	p.skipWS()
	if !p.hasPrefix("}}") {
		p.pos = start
		return nil, false
	}
	p.pos += 2
	return wikinode.NewTemplate(name, args), true
}

// skipWS consumes a run of ASCII whitespace without emitting a node.
func (p *parser) skipWS() {
	for !p.eof() && isASCIISpace(p.src[p.pos]) {
		p.pos++
	}
}

// parseTemplateArg parses one "|"-delimited argument body, already
// past the leading pipe. It classifies Named vs Positional by
// scanning ahead (flat, not construct-aware) for an '=' before any of
// '|', '}', '\n'. A value that collapses to empty after trimming is
// dropped: the argument is still consumed but contributes no Arg.
func (p *parser) parseTemplateArg() (*wikinode.Arg, bool) {
	start := p.pos
	p.skipWS()

	keyEnd := -1
	for i := p.pos; i < len(p.src); i++ {
		b := p.src[i]
		if b == '=' {
			keyEnd = i
			break
		}
		if b == '|' || b == '}' || b == '\n' {
			break
		}
	}

	if keyEnd != -1 {
		key := strings.TrimSpace(p.src[p.pos:keyEnd])
		p.pos = keyEnd + 1
		value, ok := p.parseTemplateValue()
		if !ok {
			p.pos = start
			return nil, false
		}
		if valueEmpty(value) {
			return nil, true
		}
		return &wikinode.Arg{Kind: wikinode.Named, Key: key, Value: value}, true
	}

	value, ok := p.parseTemplateValue()
	if !ok {
		p.pos = start
		return nil, false
	}
	if valueEmpty(value) {
		return nil, true
	}
	return &wikinode.Arg{Kind: wikinode.Positional, Value: value}, true
}

// parseTemplateValue parses a mixed sequence of text and child
// constructs up to (but not including) the next unescaped '|' or '}'
// at this nesting level. Unlike the general driver loop, it does not
// force-consume a terminator byte: running out of alternatives here
// means the value has ended, not that the parse failed.
func (p *parser) parseTemplateValue() (wikinode.Value, bool) {
	var parts []wikinode.Part
	for !p.eof() {
		if node, ok := p.tryFormatting(); ok {
			parts = append(parts, wikinode.Part{Node: node})
			continue
		}
		if node, ok := p.tryTemplate(); ok {
			parts = append(parts, wikinode.Part{Node: node})
			continue
		}
		if node, ok := p.tryLink(); ok {
			parts = append(parts, wikinode.Part{Node: node})
			continue
		}
		if node, ok := p.tryComment(); ok {
			parts = append(parts, wikinode.Part{Node: node})
			continue
		}
		if node, ok := p.tryNowiki(); ok {
			parts = append(parts, wikinode.Part{Node: node})
			continue
		}
		if node, ok := p.tryContainerRef(); ok {
			parts = append(parts, wikinode.Part{Node: node})
			continue
		}
		if node, ok := p.trySelfClosingRef(); ok {
			parts = append(parts, wikinode.Part{Node: node})
			continue
		}
		if node, ok := p.tryContainerHTMLTag(); ok {
			parts = append(parts, wikinode.Part{Node: node})
			continue
		}
		if node, ok := p.trySelfClosingHTMLTag(); ok {
			parts = append(parts, wikinode.Part{Node: node})
			continue
		}
		if node, ok := p.scanTextRun(exclTemplateArg); ok {
			parts = append(parts, wikinode.Part{Text: node.Content})
			continue
		}
		break
	}
	return collapseValue(parts), true
}

// collapseValue trims trailing whitespace-only text from a parsed
// argument value and collapses a single text-only part to a plain
// string (spec section 4.8, invariant 2).
func collapseValue(parts []wikinode.Part) wikinode.Value {
	for len(parts) > 0 {
		last := parts[len(parts)-1]
		if last.Node != nil {
			break
		}
		trimmed := strings.TrimRight(last.Text, " \t\n\r\f\v")
		if trimmed == "" {
			parts = parts[:len(parts)-1]
			continue
		}
		parts[len(parts)-1] = wikinode.Part{Text: trimmed}
		break
	}
	if len(parts) == 0 {
		return wikinode.Value{IsString: true, Str: ""}
	}
	if len(parts) == 1 && parts[0].Node == nil {
		return wikinode.Value{IsString: true, Str: parts[0].Text}
	}
	return wikinode.Value{Parts: parts}
}

func valueEmpty(v wikinode.Value) bool {
	return v.IsString && v.Str == ""
}

package parser

import "wikiparse/internal/wikinode"

// parseTagOpen scans an opening tag "<name attr=val ...>" or
// "<name attr=val .../>" at the current cursor. On success the cursor
// moves past the tag; on failure it is left untouched, though callers
// still reset it to their own start. explicitSelfClose reports whether the tag closed
// with "/>" rather than a bare ">".
func (p *parser) parseTagOpen() (name string, attrs map[string]string, explicitSelfClose bool, ok bool) {
	if p.at(0) != '<' {
		return "", nil, false, false
	}
	i := 1
	nameStart := i
	for isTagLetter(p.at(i)) {
		i++
	}
	if i == nameStart {
		return "", nil, false, false
	}
	name = p.src[p.pos+nameStart : p.pos+i]
	attrs = map[string]string{}

	for {
		for isTagSpace(p.at(i)) {
			i++
		}
		if p.at(i) == '/' && p.at(i+1) == '>' {
			i += 2
			p.pos += i
			return name, attrs, true, true
		}
		if p.at(i) == '>' {
			i++
			p.pos += i
			return name, attrs, false, true
		}
		if p.eofAt(i) {
			return "", nil, false, false
		}

		attrStart := i
		for {
			c := p.at(i)
			if c == 0 || c == '=' || c == '>' || c == '/' || isTagSpace(c) {
				break
			}
			i++
		}
		if i == attrStart {
			return "", nil, false, false
		}
		attrName := p.src[p.pos+attrStart : p.pos+i]

		var val string
		if p.at(i) == '=' {
			i++
			switch p.at(i) {
			case '"':
				j := i + 1
				for p.at(j) != '"' && !p.eofAt(j) {
					j++
				}
				if p.at(j) != '"' {
					return "", nil, false, false
				}
				val = p.src[p.pos+i+1 : p.pos+j]
				i = j + 1
			case '\'':
				j := i + 1
				for p.at(j) != '\'' && !p.eofAt(j) {
					j++
				}
				if p.at(j) != '\'' {
					return "", nil, false, false
				}
				val = p.src[p.pos+i+1 : p.pos+j]
				i = j + 1
			default:
				j := i
				for {
					c := p.at(j)
					if c == 0 || c == '>' || c == '/' || isTagSpace(c) {
						break
					}
					j++
				}
				val = p.src[p.pos+i : p.pos+j]
				i = j
			}
		}
		attrs[attrName] = val
	}
}

func isTagLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isTagSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func (p *parser) eofAt(offset int) bool {
	return p.pos+offset >= len(p.src)
}

// matchCloseTag reports whether a generic "</name>" closer starts at
// the cursor, without verifying the name against any opener (spec
// section 4.7: container HTML tags accept any closing tag name).
func (p *parser) matchCloseTag() (int, bool) {
	if p.at(0) != '<' || p.at(1) != '/' {
		return 0, false
	}
	i := 2
	start := i
	for isTagLetter(p.at(i)) {
		i++
	}
	if i == start || p.at(i) != '>' {
		return 0, false
	}
	return i + 1, true
}

// scanHTMLBody parses inline content until a generic closing tag is
// found (consumed, name unverified) or EOF. An empty body yields a
// non-nil empty slice, keeping it distinct from the self-closing form.
func (p *parser) scanHTMLBody() ([]*wikinode.Node, bool) {
	nodes := []*wikinode.Node{}
	for {
		if p.eof() {
			return nodes, false
		}
		if n, ok := p.matchCloseTag(); ok {
			p.pos += n
			return nodes, true
		}
		node, ok := p.tryOne(ctxHTMLBody)
		if !ok {
			return nodes, false
		}
		nodes = append(nodes, node)
	}
}

// tryContainerHTMLTag matches "<name attrs?>body</anything>", per spec
// section 4.7. Preferred over the self-closing alternative, so a tag
// followed anywhere ahead by a closing tag of any name parses as a
// container.
func (p *parser) tryContainerHTMLTag() (*wikinode.Node, bool) {
	start := p.pos
	name, attrs, selfClose, ok := p.parseTagOpen()
	if !ok || selfClose {
		p.pos = start
		return nil, false
	}
	if !p.enter() {
		p.pos = start
		return nil, false
	}
	children, closed := p.scanHTMLBody()
	p.leave()
	if !closed {
		p.pos = start
		return nil, false
	}
	return wikinode.NewHTMLTag(name, attrs, children), true
}

// trySelfClosingHTMLTag matches "<name attrs? />" or, when the
// container alternative already failed to find a closer, a bare
// "<name attrs?>".
func (p *parser) trySelfClosingHTMLTag() (*wikinode.Node, bool) {
	start := p.pos
	name, attrs, _, ok := p.parseTagOpen()
	if !ok {
		p.pos = start
		return nil, false
	}
	return wikinode.NewHTMLTag(name, attrs, nil), true
}

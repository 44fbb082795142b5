package parser

import (
	"strings"

	"wikiparse/internal/wikinode"
)

// tryTable matches a "{|" ... "|}" block at the start of a line, per
// spec section 4.9. The body between the two markers is captured
// verbatim and re-split into lines rather than parsed by the main
// cursor loop, since table rows cannot span lines and a line-oriented
// pre-pass is simpler than threading row/cell boundaries through the
// byte-at-a-time scanner.
func (p *parser) tryTable() (*wikinode.Node, bool) {
	if !p.atLineStart() || !p.hasPrefix("{|") {
		return nil, false
	}
	start := p.pos

	lines := strings.Split(p.src[p.pos:], "\n")
	endLineIdx := -1
	for i := 1; i < len(lines); i++ {
		if strings.HasPrefix(strings.TrimSpace(lines[i]), "|}") {
			endLineIdx = i
			break
		}
	}
	if endLineIdx == -1 {
		return nil, false
	}

	consumed := 0
	for i := 0; i <= endLineIdx; i++ {
		consumed += len(lines[i])
		if i < len(lines)-1 {
			consumed++
		}
	}

	if !p.enter() {
		return nil, false
	}
	rows := p.buildTableRows(lines[1:endLineIdx])
	p.leave()

	p.pos = start + consumed
	return wikinode.NewTable(rows), true
}

// buildTableRows groups the lines between "{|" and "|}" into rows: a
// "|-" line starts a new row and is discarded, a "!" or "|" line (but
// not "|}"/"|-") is appended to the current row, any other line is
// skipped. Blank lines (after trimming) are discarded outright.
func (p *parser) buildTableRows(lines []string) []*wikinode.Node {
	var rows []*wikinode.Node
	var current []string

	flush := func() {
		if len(current) == 0 {
			return
		}
		rows = append(rows, p.buildTableRow(current))
		current = nil
	}

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "|-") {
			flush()
			continue
		}
		if strings.HasPrefix(line, "|}") {
			continue
		}
		if strings.HasPrefix(line, "!") || strings.HasPrefix(line, "|") {
			current = append(current, line)
			continue
		}
	}
	flush()
	return rows
}

// buildTableRow builds one row from its grouped lines. The row is a
// header row if its first line begins with "!"; every cell in the row
// shares that classification.
func (p *parser) buildTableRow(lines []string) *wikinode.Node {
	kind := wikinode.DataCell
	if strings.HasPrefix(lines[0], "!") {
		kind = wikinode.HeaderCell
	}
	cells := make([]*wikinode.Node, 0, len(lines))
	for _, line := range lines {
		cells = append(cells, p.buildTableCell(line, kind))
	}
	return wikinode.NewTableRow(cells)
}

// buildTableCell strips the leading "!"/"|" marker (and an optional
// " | "-delimited attribute prefix, discarded per spec section 4.9
// and the attributes-always-empty design decision), trims the
// surrounding whitespace the line-split leaves behind, and parses the
// remainder as a top-level-driver sub-grammar with "|" and "\n"
// excluded from plain text.
func (p *parser) buildTableCell(line string, kind wikinode.CellKind) *wikinode.Node {
	content := line[1:]
	if idx := strings.Index(content, " | "); idx != -1 {
		content = content[idx+3:]
	}
	content = strings.TrimSpace(content)
	if !p.enter() {
		return wikinode.NewTableCell(kind, nil)
	}
	children := p.parseSub(content, ctxTableCell)
	p.leave()
	return wikinode.NewTableCell(kind, children)
}

package parser

import (
	"testing"

	"wikiparse/internal/wikinode"
)

func kinds(nodes []*wikinode.Node) []wikinode.Kind {
	out := make([]wikinode.Kind, len(nodes))
	for i, n := range nodes {
		out[i] = n.Kind
	}
	return out
}

func TestParsePlainText(t *testing.T) {
	res := Parse("hello world")
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if len(res.Nodes) != 1 || res.Nodes[0].Kind != wikinode.Text {
		t.Fatalf("got %v", res.Nodes)
	}
	if res.Nodes[0].Content != "hello world" {
		t.Fatalf("content = %q", res.Nodes[0].Content)
	}
}

func TestParseTemplateInline(t *testing.T) {
	res := Parse("Hello {{T|X}} world")
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	got := kinds(res.Nodes)
	want := []wikinode.Kind{wikinode.Text, wikinode.Template, wikinode.Text}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v want %v", got, want)
		}
	}
	tmpl := res.Nodes[1]
	if tmpl.TemplateName != "T" {
		t.Fatalf("template name = %q", tmpl.TemplateName)
	}
	if len(tmpl.Args) != 1 || tmpl.Args[0].Kind != wikinode.Positional {
		t.Fatalf("args = %+v", tmpl.Args)
	}
	s, ok := tmpl.Args[0].Value.PlainString()
	if !ok || s != "X" {
		t.Fatalf("arg value = %q ok=%v", s, ok)
	}
}

func TestParseNestedBoldInsideItalic(t *testing.T) {
	res := Parse("''don't use '''BOLD''' words''")
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if len(res.Nodes) != 1 || res.Nodes[0].Kind != wikinode.Italic {
		t.Fatalf("got %v", res.Nodes)
	}
	italic := res.Nodes[0]
	foundBold := false
	for _, c := range italic.Children {
		if c.Kind == wikinode.Bold {
			foundBold = true
			if len(c.Children) != 1 || c.Children[0].Kind != wikinode.Text || c.Children[0].Content != "BOLD" {
				t.Fatalf("bold children = %+v", c.Children)
			}
		}
	}
	if !foundBold {
		t.Fatalf("expected a nested bold node, got %+v", italic.Children)
	}
}

func TestParseFileInHeader(t *testing.T) {
	res := Parse("===[[File:f.png|40px]] Title===")
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if len(res.Nodes) != 1 || res.Nodes[0].Kind != wikinode.Header {
		t.Fatalf("got %v", res.Nodes)
	}
	h := res.Nodes[0]
	if h.Level != 3 {
		t.Fatalf("level = %d", h.Level)
	}
	if len(h.Children) == 0 || h.Children[0].Kind != wikinode.File {
		t.Fatalf("children = %+v", h.Children)
	}
	file := h.Children[0]
	if file.Name != "f.png" || len(file.Parameters) != 1 || file.Parameters[0] != "40px" {
		t.Fatalf("file = %+v", file)
	}
}

func TestParseListItems(t *testing.T) {
	res := Parse("* a\n* b")
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	var items []*wikinode.Node
	for _, n := range res.Nodes {
		if n.Kind == wikinode.ListItem {
			items = append(items, n)
		}
	}
	if len(items) != 2 {
		t.Fatalf("got %d list items: %+v", len(items), res.Nodes)
	}
	if items[0].ListKind != wikinode.Unordered || items[0].ListLevel != 1 {
		t.Fatalf("item0 = %+v", items[0])
	}
}

func TestParseComment(t *testing.T) {
	res := Parse("Text<!-- c -->more")
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	got := kinds(res.Nodes)
	want := []wikinode.Kind{wikinode.Text, wikinode.Comment, wikinode.Text}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v want %v", got, want)
		}
	}
	if res.Nodes[1].Content != " c " {
		t.Fatalf("comment content = %q", res.Nodes[1].Content)
	}
}

func TestParseRefWithName(t *testing.T) {
	res := Parse(`<ref name="s">cite</ref>`)
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if len(res.Nodes) != 1 || res.Nodes[0].Kind != wikinode.Ref {
		t.Fatalf("got %v", res.Nodes)
	}
	ref := res.Nodes[0]
	if !ref.HasRefName || ref.RefName != "s" {
		t.Fatalf("ref = %+v", ref)
	}
	if len(ref.Children) != 1 || ref.Children[0].Kind != wikinode.Text || ref.Children[0].Content != "cite" {
		t.Fatalf("ref children = %+v", ref.Children)
	}
}

func TestParseSelfClosingRef(t *testing.T) {
	res := Parse(`see <ref name="s" />.`)
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	var ref *wikinode.Node
	for _, n := range res.Nodes {
		if n.Kind == wikinode.Ref {
			ref = n
		}
	}
	if ref == nil {
		t.Fatalf("no ref node in %+v", res.Nodes)
	}
	if ref.Children != nil {
		t.Fatalf("self-closing ref should have no children, got %+v", ref.Children)
	}
}

func TestParseBrPrefersContainerWhenClosed(t *testing.T) {
	res := Parse("a<br></br>b")
	var tag *wikinode.Node
	for _, n := range res.Nodes {
		if n.Kind == wikinode.HTMLTag {
			tag = n
		}
	}
	if tag == nil || tag.Tag != "br" {
		t.Fatalf("no br tag in %+v", res.Nodes)
	}
	if tag.Children == nil || len(tag.Children) != 0 {
		t.Fatalf("expected empty container body, got %+v", tag.Children)
	}
}

func TestParseBrSelfClosingWithoutCloser(t *testing.T) {
	res := Parse("a<br>b")
	var tag *wikinode.Node
	for _, n := range res.Nodes {
		if n.Kind == wikinode.HTMLTag {
			tag = n
		}
	}
	if tag == nil || tag.Tag != "br" {
		t.Fatalf("no br tag in %+v", res.Nodes)
	}
	if tag.Children != nil {
		t.Fatalf("expected nil children for self-closing form, got %+v", tag.Children)
	}
}

func TestParseTable(t *testing.T) {
	input := "{|\n|-\n! H1\n! H2\n|-\n| a\n| b\n|}"
	res := Parse(input)
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if len(res.Nodes) != 1 || res.Nodes[0].Kind != wikinode.Table {
		t.Fatalf("got %v", res.Nodes)
	}
	table := res.Nodes[0]
	if len(table.Children) != 2 {
		t.Fatalf("rows = %d", len(table.Children))
	}
	headerRow := table.Children[0]
	if len(headerRow.Children) != 2 || headerRow.Children[0].CellKind != wikinode.HeaderCell {
		t.Fatalf("header row = %+v", headerRow)
	}
	dataRow := table.Children[1]
	if len(dataRow.Children) != 2 || dataRow.Children[0].CellKind != wikinode.DataCell {
		t.Fatalf("data row = %+v", dataRow)
	}
	wantCellText(t, headerRow.Children[0], "H1")
	wantCellText(t, headerRow.Children[1], "H2")
	wantCellText(t, dataRow.Children[0], "a")
	wantCellText(t, dataRow.Children[1], "b")
}

// wantCellText asserts a table cell's children collapse to a single
// text leaf with the given content.
func wantCellText(t *testing.T, cell *wikinode.Node, want string) {
	t.Helper()
	if len(cell.Children) != 1 || cell.Children[0].Kind != wikinode.Text || cell.Children[0].Content != want {
		t.Fatalf("cell content = %+v, want text(%q)", cell.Children, want)
	}
}

func TestParseTableAttributeBlockAndWhitespace(t *testing.T) {
	input := "{|\n! a | b\n|-\n| c\n|}"
	res := Parse(input)
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if len(res.Nodes) != 1 || res.Nodes[0].Kind != wikinode.Table {
		t.Fatalf("got %v", res.Nodes)
	}
	table := res.Nodes[0]
	if len(table.Children) != 2 {
		t.Fatalf("rows = %d", len(table.Children))
	}
	headerRow := table.Children[0]
	dataRow := table.Children[1]
	if len(headerRow.Children) != 1 || headerRow.Children[0].CellKind != wikinode.HeaderCell {
		t.Fatalf("header row = %+v", headerRow)
	}
	if len(dataRow.Children) != 1 || dataRow.Children[0].CellKind != wikinode.DataCell {
		t.Fatalf("data row = %+v", dataRow)
	}
	wantCellText(t, headerRow.Children[0], "b")
	wantCellText(t, dataRow.Children[0], "c")
}

func TestParseInterlangLink(t *testing.T) {
	res := Parse("[[de:Beispiel]]")
	if len(res.Nodes) != 1 || res.Nodes[0].Kind != wikinode.InterlangLink {
		t.Fatalf("got %v", res.Nodes)
	}
	n := res.Nodes[0]
	if n.Lang != "de" || n.Title != "Beispiel" {
		t.Fatalf("node = %+v", n)
	}
}

func TestParseCategoryLink(t *testing.T) {
	res := Parse("[[Category:Foo]]")
	if len(res.Nodes) != 1 || res.Nodes[0].Kind != wikinode.Category {
		t.Fatalf("got %v", res.Nodes)
	}
	if res.Nodes[0].Name != "Foo" {
		t.Fatalf("name = %q", res.Nodes[0].Name)
	}
}

func TestParseUnterminatedBoldConsumedAsText(t *testing.T) {
	res := Parse("'''unterminated")
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	for _, n := range res.Nodes {
		if n.Kind == wikinode.Bold || n.Kind == wikinode.Italic {
			t.Fatalf("expected no formatting nodes, got %+v", res.Nodes)
		}
	}
}

func TestParseDepthLimit(t *testing.T) {
	input := ""
	for i := 0; i < 500; i++ {
		input += "{{a|"
	}
	res := ParseWithDepth(input, 16)
	if res.Err != ErrDepthExceeded {
		t.Fatalf("expected ErrDepthExceeded, got %v", res.Err)
	}
}

func TestParseNamedTemplateArgDuplicatesPreserved(t *testing.T) {
	res := Parse("{{T|k=first|k=second}}")
	if len(res.Nodes) != 1 || res.Nodes[0].Kind != wikinode.Template {
		t.Fatalf("got %v", res.Nodes)
	}
	tmpl := res.Nodes[0]
	if len(tmpl.Args) != 2 {
		t.Fatalf("expected both occurrences preserved, got %+v", tmpl.Args)
	}
}

package render

import (
	"strings"
	"testing"

	"wikiparse/internal/parser"
)

func TestToMarkdownBasicFormatting(t *testing.T) {
	res := parser.Parse("This is '''bold''' and ''italic''.")
	md := ToMarkdown(res.Nodes)

	if !strings.Contains(md, "**bold**") {
		t.Errorf("ToMarkdown missing bold marker, got %q", md)
	}
	if !strings.Contains(md, "_italic_") {
		t.Errorf("ToMarkdown missing italic marker, got %q", md)
	}
}

func TestToMarkdownHeaderAndList(t *testing.T) {
	res := parser.Parse("== Section ==\n* one\n* two\n")
	md := ToMarkdown(res.Nodes)

	if !strings.Contains(md, "## Section") {
		t.Errorf("missing header, got %q", md)
	}
	if !strings.Contains(md, "- one") || !strings.Contains(md, "- two") {
		t.Errorf("missing list items, got %q", md)
	}
}

func TestToMarkdownLink(t *testing.T) {
	res := parser.Parse("[[Target Page|shown text]]")
	md := ToMarkdown(res.Nodes)

	want := "[shown text](Target Page)"
	if !strings.Contains(md, want) {
		t.Errorf("ToMarkdown = %q, want substring %q", md, want)
	}
}

func TestToHTMLProducesTags(t *testing.T) {
	res := parser.Parse("'''bold text'''")
	html := string(ToHTML(res.Nodes))

	if !strings.Contains(html, "<strong>") {
		t.Errorf("ToHTML = %q, want a <strong> tag", html)
	}
}

package query

import (
	"testing"

	"wikiparse/internal/parser"
)

func TestFindTemplates(t *testing.T) {
	res := parser.Parse("Hello {{Infobox|name=X|{{Nested}}}} world")
	uses := FindTemplates(res.Nodes)
	if len(uses) != 2 {
		t.Fatalf("got %d uses: %+v", len(uses), uses)
	}
	if uses[0].Name != "Infobox" || uses[1].Name != "Nested" {
		t.Fatalf("uses = %+v", uses)
	}
	v, ok := LastNamedArg(uses[0].Args, "name")
	if !ok {
		t.Fatalf("expected named arg 'name'")
	}
	s, _ := v.PlainString()
	if s != "X" {
		t.Fatalf("name = %q", s)
	}
}

func TestFindLinksAndCategories(t *testing.T) {
	res := parser.Parse("[[Page|Display]] [[Category:Foo]] [[File:x.png]]")
	links := FindLinks(res.Nodes)
	if len(links) != 2 {
		t.Fatalf("links = %+v", links)
	}
	cats := FindCategories(res.Nodes)
	if len(cats) != 1 || cats[0] != "Foo" {
		t.Fatalf("cats = %+v", cats)
	}
}

func TestFindHeaders(t *testing.T) {
	res := parser.Parse("== Intro ==\ntext\n=== Details ===")
	headers := FindHeaders(res.Nodes)
	if len(headers) != 2 {
		t.Fatalf("headers = %+v", headers)
	}
	if headers[0].Level != 2 || headers[0].Text != "Intro" {
		t.Fatalf("header0 = %+v", headers[0])
	}
	if headers[1].Level != 3 || headers[1].Text != "Details" {
		t.Fatalf("header1 = %+v", headers[1])
	}
}

func TestExtractText(t *testing.T) {
	res := parser.Parse("a '''bold''' b<!-- hidden -->c")
	text := ExtractText(res.Nodes)
	if text != "a bold bc" {
		t.Fatalf("text = %q", text)
	}
}

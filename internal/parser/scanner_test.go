package parser

import "testing"

func TestAdmitsLoneBraceIsText(t *testing.T) {
	p := newParser("{not a template", DefaultMaxDepth)
	if !p.admits(exclBase) {
		t.Fatalf("lone '{' should be admitted as text")
	}
}

func TestAdmitsDoubleBraceIsExcluded(t *testing.T) {
	p := newParser("{{T}}", DefaultMaxDepth)
	if p.admits(exclBase) {
		t.Fatalf("'{{' should not be admitted as text")
	}
}

func TestAdmitsStarFollowedByWhitespaceExcluded(t *testing.T) {
	p := newParser("* item", DefaultMaxDepth)
	if p.admits(exclBase) {
		t.Fatalf("'* ' should not be admitted as text (list marker)")
	}
}

func TestAdmitsStarNotFollowedByWhitespace(t *testing.T) {
	p := newParser("*bold-ish", DefaultMaxDepth)
	if !p.admits(exclBase) {
		t.Fatalf("'*' not followed by whitespace should be admitted as text")
	}
}

func TestScanTextFallbackForcesProgress(t *testing.T) {
	p := newParser("'", DefaultMaxDepth)
	node, ok := p.scanTextFallback(exclBase)
	if !ok || node.Content != "'" {
		t.Fatalf("got %+v ok=%v", node, ok)
	}
	if p.pos != 1 {
		t.Fatalf("pos = %d", p.pos)
	}
}

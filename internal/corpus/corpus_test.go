package corpus

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadIngestsWikiFilesOnly(t *testing.T) {
	dir := t.TempDir()

	mustWrite(t, filepath.Join(dir, "Home.wiki"), "Hello '''world'''.")
	mustWrite(t, filepath.Join(dir, "Other.wiki"), "{{Infobox|name=Test}}")
	mustWrite(t, filepath.Join(dir, "notes.txt"), "not a wiki page")

	c, err := Load(dir, 0)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(c.Pages) != 2 {
		t.Fatalf("got %d pages, want 2", len(c.Pages))
	}
	home, ok := c.Pages["Home"]
	if !ok {
		t.Fatal("missing page Home")
	}
	if home.Err != nil {
		t.Errorf("Home.Err = %v, want nil", home.Err)
	}
	if len(home.Nodes) == 0 {
		t.Error("Home.Nodes is empty")
	}
	if _, ok := c.Pages["notes"]; ok {
		t.Error("non-.wiki file was ingested")
	}
}

func TestLoadRecordsParseErrorsWithoutAborting(t *testing.T) {
	dir := t.TempDir()

	deep := ""
	for i := 0; i < 2000; i++ {
		deep += "{{a|"
	}
	mustWrite(t, filepath.Join(dir, "Deep.wiki"), deep)
	mustWrite(t, filepath.Join(dir, "Fine.wiki"), "plain text")

	c, err := Load(dir, 16)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(c.Pages) != 2 {
		t.Fatalf("got %d pages, want 2", len(c.Pages))
	}
	if c.Pages["Deep"].Err == nil {
		t.Error("Deep.Err = nil, want recursion limit error")
	}
	if c.Pages["Fine"].Err != nil {
		t.Errorf("Fine.Err = %v, want nil", c.Pages["Fine"].Err)
	}
}

func TestEnsureRepoNoOpWithoutURL(t *testing.T) {
	dir := t.TempDir()
	if err := EnsureRepo(dir, ""); err != nil {
		t.Errorf("EnsureRepo with empty URL: %v", err)
	}
}

func mustWrite(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

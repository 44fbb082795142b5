// Package corpus loads a directory of .wiki pages, optionally backed
// by a git working tree, and parses each into a tree. It follows the
// clone-then-read shape of this codebase's own repository
// bootstrap, but reads real Go API (go-git) instead of shelling out,
// since there is no history-browsing feature here to justify an
// os/exec git CLI dependency.
package corpus

import (
	"os"
	"path/filepath"
	"strings"

	"wikiparse/internal/logging"
	"wikiparse/internal/parser"
	"wikiparse/internal/wikinode"

	"github.com/go-git/go-git/v5"
)

// Page is one ingested wiki page: its title (derived from the
// filename), source text, and parsed tree.
type Page struct {
	Title string
	Path  string
	Text  string
	Nodes []*wikinode.Node
	Err   error
}

// Corpus holds every page ingested from a directory, keyed by title.
type Corpus struct {
	Path  string
	Pages map[string]*Page
}

// EnsureRepo clones repoURL into path if path has no .git directory;
// an existing working tree is left as it is (not opened or pulled). It
// is a no-op when repoURL is empty, since then the directory is just
// read as plain files.
func EnsureRepo(path, repoURL string) error {
	if repoURL == "" {
		return nil
	}
	gitDir := filepath.Join(path, ".git")
	if _, err := os.Stat(gitDir); err == nil {
		logging.LogInfo("corpus repository already present at %s", path)
		return nil
	}

	_, err := git.PlainClone(path, false, &git.CloneOptions{URL: repoURL})
	if err != nil {
		logging.LogError("failed to clone corpus repository %s: %v", repoURL, err)
		return err
	}
	logging.LogInfo("corpus repository cloned from %s to %s", repoURL, path)
	return nil
}

// Load ingests every *.wiki file directly under path (non-recursive,
// mirroring a flat page collection) and parses each one. Parse errors
// are recorded on the Page rather than aborting the whole load, since
// one malformed page shouldn't block ingestion of the rest.
func Load(path string, maxDepth int) (*Corpus, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	c := &Corpus{Path: path, Pages: make(map[string]*Page)}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".wiki") {
			continue
		}
		full := filepath.Join(path, entry.Name())
		data, err := os.ReadFile(full)
		if err != nil {
			logging.LogWarning("failed to read corpus page %s: %v", full, err)
			continue
		}
		title := strings.TrimSuffix(entry.Name(), ".wiki")
		result := parser.ParseWithDepth(string(data), maxDepth)
		page := &Page{Title: title, Path: full, Text: string(data), Nodes: result.Nodes, Err: result.Err}
		if result.Err != nil {
			logging.LogWarning("page %s hit the recursion limit; remainder %d bytes unparsed", title, len(result.Remainder))
		}
		c.Pages[title] = page
	}

	logging.LogInfo("corpus loaded %d pages from %s", len(c.Pages), path)
	return c, nil
}

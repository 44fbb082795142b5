// Package index persists template invocations, links, and categories
// extracted from parsed pages into sqlite, following the same
// open-with-WAL-pragmas shape as this codebase's own sqlite storage
// layer.
package index

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"wikiparse/internal/corpus"
	"wikiparse/internal/logging"
	"wikiparse/internal/query"

	_ "github.com/mattn/go-sqlite3"
)

// Index is a sqlite-backed store of parse-derived facts about a
// corpus: which pages use which templates, which pages link where.
type Index struct {
	db    *sql.DB
	mutex sync.RWMutex
}

// Open creates (or reopens) the index database under basePath.
func Open(basePath string) (*Index, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create index directory: %w", err)
	}
	dbPath := filepath.Join(basePath, "index.db")

	db, err := sql.Open("sqlite3", dbPath+"?mode=rwc")
	if err != nil {
		return nil, fmt.Errorf("failed to open index database: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		logging.LogWarning("failed to set WAL mode: %v", err)
	}
	if _, err := db.Exec("PRAGMA synchronous=NORMAL"); err != nil {
		logging.LogWarning("failed to set synchronous mode: %v", err)
	}

	idx := &Index{db: db}
	if err := idx.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return idx, nil
}

func (idx *Index) initialize() error {
	_, err := idx.db.Exec(`
	CREATE TABLE IF NOT EXISTS template_uses (
		page TEXT,
		template_name TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_template_uses_page ON template_uses(page);
	CREATE INDEX IF NOT EXISTS idx_template_uses_name ON template_uses(template_name);

	CREATE TABLE IF NOT EXISTS links (
		page TEXT,
		target TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_links_page ON links(page);
	CREATE INDEX IF NOT EXISTS idx_links_target ON links(target);

	CREATE TABLE IF NOT EXISTS categories (
		page TEXT,
		category TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_categories_page ON categories(page);
	CREATE INDEX IF NOT EXISTS idx_categories_category ON categories(category);
	`)
	return err
}

// IndexPage replaces the indexed facts for one page with the facts
// derived from its current parse.
func (idx *Index) IndexPage(p *corpus.Page) error {
	idx.mutex.Lock()
	defer idx.mutex.Unlock()

	tx, err := idx.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"template_uses", "links", "categories"} {
		if _, err := tx.Exec(fmt.Sprintf("DELETE FROM %s WHERE page = ?", table), p.Title); err != nil {
			return err
		}
	}

	for _, use := range query.FindTemplates(p.Nodes) {
		if _, err := tx.Exec("INSERT INTO template_uses (page, template_name) VALUES (?, ?)", p.Title, use.Name); err != nil {
			return err
		}
	}
	for _, link := range query.FindLinks(p.Nodes) {
		if _, err := tx.Exec("INSERT INTO links (page, target) VALUES (?, ?)", p.Title, link.Target); err != nil {
			return err
		}
	}
	for _, cat := range query.FindCategories(p.Nodes) {
		if _, err := tx.Exec("INSERT INTO categories (page, category) VALUES (?, ?)", p.Title, cat); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// IndexCorpus indexes every page in c.
func (idx *Index) IndexCorpus(c *corpus.Corpus) error {
	for _, page := range c.Pages {
		if err := idx.IndexPage(page); err != nil {
			logging.LogWarning("failed to index page %s: %v", page.Title, err)
		}
	}
	return nil
}

// PagesUsingTemplate returns the titles of every page that invokes
// templateName.
func (idx *Index) PagesUsingTemplate(templateName string) ([]string, error) {
	idx.mutex.RLock()
	defer idx.mutex.RUnlock()

	rows, err := idx.db.Query("SELECT DISTINCT page FROM template_uses WHERE template_name = ?", templateName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []string
	for rows.Next() {
		var page string
		if err := rows.Scan(&page); err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}
	return pages, rows.Err()
}

// PagesLinkingTo returns the titles of every page that links to
// target.
func (idx *Index) PagesLinkingTo(target string) ([]string, error) {
	idx.mutex.RLock()
	defer idx.mutex.RUnlock()

	rows, err := idx.db.Query("SELECT DISTINCT page FROM links WHERE target = ?", target)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []string
	for rows.Next() {
		var page string
		if err := rows.Scan(&page); err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}
	return pages, rows.Err()
}

// PagesInCategory returns the titles of every page tagged with
// category.
func (idx *Index) PagesInCategory(category string) ([]string, error) {
	idx.mutex.RLock()
	defer idx.mutex.RUnlock()

	rows, err := idx.db.Query("SELECT DISTINCT page FROM categories WHERE category = ?", category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []string
	for rows.Next() {
		var page string
		if err := rows.Scan(&page); err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}
	return pages, rows.Err()
}

// Close closes the underlying database connection.
func (idx *Index) Close() error {
	return idx.db.Close()
}

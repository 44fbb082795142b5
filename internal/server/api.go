package server

import (
	"encoding/json"
	"io"
	"net/http"

	"wikiparse/internal/parser"
	"wikiparse/internal/query"
	"wikiparse/internal/render"

	"github.com/go-chi/chi/v5"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// @Summary Health check
// @Tags health
// @Produce json
// @Router /api/health [get]
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// @Summary Parse raw wikitext sent as the request body
// @Tags parse
// @Accept plain
// @Produce json
// @Router /api/parse [post]
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "failed to read request body", http.StatusBadRequest)
		return
	}

	result := parser.Parse(string(body))
	resp := map[string]any{
		"templates":  query.FindTemplates(result.Nodes),
		"links":      query.FindLinks(result.Nodes),
		"categories": query.FindCategories(result.Nodes),
		"headers":    query.FindHeaders(result.Nodes),
		"text":       query.ExtractText(result.Nodes),
	}
	if result.Err != nil {
		resp["error"] = result.Err.Error()
		resp["remainder"] = result.Remainder
	}
	writeJSON(w, http.StatusOK, resp)
}

// @Summary List ingested page titles
// @Tags pages
// @Produce json
// @Router /api/pages [get]
func (s *Server) handleListPages(w http.ResponseWriter, r *http.Request) {
	titles := make([]string, 0, len(s.Corpus.Pages))
	for title := range s.Corpus.Pages {
		titles = append(titles, title)
	}
	writeJSON(w, http.StatusOK, titles)
}

// @Summary Get one page's parsed summary
// @Tags pages
// @Produce json
// @Router /api/pages/{title} [get]
func (s *Server) handleGetPage(w http.ResponseWriter, r *http.Request) {
	title := chi.URLParam(r, "title")
	page, ok := s.Corpus.Pages[title]
	if !ok {
		http.Error(w, "page not found", http.StatusNotFound)
		return
	}

	resp := map[string]any{
		"title":      page.Title,
		"templates":  query.FindTemplates(page.Nodes),
		"links":      query.FindLinks(page.Nodes),
		"categories": query.FindCategories(page.Nodes),
		"headers":    query.FindHeaders(page.Nodes),
	}
	if page.Err != nil {
		resp["error"] = page.Err.Error()
	}
	writeJSON(w, http.StatusOK, resp)
}

// @Summary Render a page to HTML
// @Tags pages
// @Produce html
// @Router /api/pages/{title}/html [get]
func (s *Server) handleGetPageHTML(w http.ResponseWriter, r *http.Request) {
	title := chi.URLParam(r, "title")
	page, ok := s.Corpus.Pages[title]
	if !ok {
		http.Error(w, "page not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(render.ToHTML(page.Nodes))
}

// @Summary List pages that invoke a template
// @Tags query
// @Produce json
// @Router /api/query/templates/{name} [get]
func (s *Server) handlePagesUsingTemplate(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	pages, err := s.Index.PagesUsingTemplate(name)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, pages)
}

// @Summary List pages that link to a target
// @Tags query
// @Produce json
// @Router /api/query/links/{target} [get]
func (s *Server) handlePagesLinkingTo(w http.ResponseWriter, r *http.Request) {
	target := chi.URLParam(r, "target")
	pages, err := s.Index.PagesLinkingTo(target)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, pages)
}

// @Summary List pages tagged with a category
// @Tags query
// @Produce json
// @Router /api/query/categories/{category} [get]
func (s *Server) handlePagesInCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	pages, err := s.Index.PagesInCategory(category)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, pages)
}

// @Summary Get a page's header outline
// @Tags query
// @Produce json
// @Router /api/query/pages/{title}/headers [get]
func (s *Server) handlePageHeaders(w http.ResponseWriter, r *http.Request) {
	title := chi.URLParam(r, "title")
	page, ok := s.Corpus.Pages[title]
	if !ok {
		http.Error(w, "page not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, query.FindHeaders(page.Nodes))
}

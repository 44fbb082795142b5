// Package server exposes the parsed corpus over HTTP: health check,
// page parse/render, and parse-derived query endpoints, routed with
// chi the same way this codebase's own server package is, with
// swagger docs served the same way too.
package server

import (
	"fmt"
	"net/http"

	"wikiparse/internal/corpus"
	"wikiparse/internal/index"
	_ "wikiparse/internal/server/swagger"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// Server holds the dependencies HTTP handlers need.
type Server struct {
	Corpus *corpus.Corpus
	Index  *index.Index
}

// NewRouter builds the chi router for s.
func (s *Server) NewRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/swagger/*", httpSwagger.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Post("/parse", s.handleParse)

		r.Route("/pages", func(r chi.Router) {
			r.Get("/", s.handleListPages)
			r.Get("/{title}", s.handleGetPage)
			r.Get("/{title}/html", s.handleGetPageHTML)
		})

		r.Route("/query", func(r chi.Router) {
			r.Get("/templates/{name}", s.handlePagesUsingTemplate)
			r.Get("/links/{target}", s.handlePagesLinkingTo)
			r.Get("/categories/{category}", s.handlePagesInCategory)
			r.Get("/pages/{title}/headers", s.handlePageHeaders)
		})
	})

	return r
}

// ListenAndServe starts the HTTP server on port.
func (s *Server) ListenAndServe(port string) error {
	addr := fmt.Sprintf(":%s", port)
	fmt.Printf("starting chi http server on http://localhost%s\n", addr)
	return http.ListenAndServe(addr, s.NewRouter())
}

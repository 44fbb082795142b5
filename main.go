package main

import (
	"wikiparse/internal/config"
	"wikiparse/internal/corpus"
	"wikiparse/internal/index"
	"wikiparse/internal/logging"
	"wikiparse/internal/parser"
	"wikiparse/internal/server"
)

// @title wikiparse API
// @version 1.0
// @description Parsed-corpus query and render API.
// @BasePath /api
func main() {
	cfg := config.Load()

	maxDepth := cfg.MaxDepth
	if maxDepth <= 0 {
		maxDepth = parser.DefaultMaxDepth
	}

	if err := corpus.EnsureRepo(cfg.CorpusPath, cfg.GitRepoURL); err != nil {
		logging.LogError("failed to prepare corpus repository: %v", err)
	}

	c, err := corpus.Load(cfg.CorpusPath, maxDepth)
	if err != nil {
		logging.LogError("failed to load corpus: %v", err)
		c = &corpus.Corpus{Path: cfg.CorpusPath, Pages: make(map[string]*corpus.Page)}
	}

	idx, err := index.Open(cfg.IndexPath)
	if err != nil {
		logging.LogError("failed to open index: %v", err)
		return
	}
	defer idx.Close()

	if err := idx.IndexCorpus(c); err != nil {
		logging.LogError("failed to index corpus: %v", err)
	}

	srv := &server.Server{Corpus: c, Index: idx}
	if err := srv.ListenAndServe(cfg.ServerPort); err != nil {
		logging.LogError("server stopped: %v", err)
	}
}

// Package config loads application configuration from environment
// variables, following the getEnv-with-default pattern used
// throughout this codebase's configuration layer.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"wikiparse/internal/logging"
)

// Config is process-wide application configuration.
type Config struct {
	// CorpusPath is the directory of .wiki pages to ingest.
	CorpusPath string
	// GitRepoURL optionally clones CorpusPath from a remote before
	// ingesting when CorpusPath is not already a git working tree; an
	// existing checkout is not pulled or updated.
	GitRepoURL string
	// IndexPath is the directory holding the sqlite database
	// (index.db) backing the parsed-facts index.
	IndexPath string
	// ServerPort is the HTTP listen port.
	ServerPort string
	// LogLevel is one of debug/info/warning/error.
	LogLevel string
	// MaxDepth caps parser recursion; 0 selects parser.DefaultMaxDepth.
	MaxDepth int
}

// Load builds a Config from environment variables, falling back to
// defaults rooted at the executable's directory.
func Load() Config {
	baseDir := "."
	if exePath, err := os.Executable(); err == nil {
		baseDir = filepath.Dir(exePath)
	}

	cfg := Config{
		CorpusPath: getEnv("WIKIPARSE_CORPUS_PATH", filepath.Join(baseDir, "corpus")),
		GitRepoURL: getEnv("WIKIPARSE_GIT_REPO_URL", ""),
		IndexPath:  getEnv("WIKIPARSE_INDEX_PATH", filepath.Join(baseDir, "storage")),
		ServerPort: getEnv("WIKIPARSE_SERVER_PORT", "8080"),
		LogLevel:   getEnv("WIKIPARSE_LOG_LEVEL", "info"),
		MaxDepth:   getEnvInt("WIKIPARSE_MAX_DEPTH", 0),
	}

	logging.LogInfo("config loaded: corpus=%s index=%s port=%s", cfg.CorpusPath, cfg.IndexPath, cfg.ServerPort)
	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		logging.LogWarning("invalid integer for %s=%q, using default %d", key, raw, defaultValue)
		return defaultValue
	}
	return n
}

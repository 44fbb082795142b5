package config

import (
	"os"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"WIKIPARSE_CORPUS_PATH", "WIKIPARSE_GIT_REPO_URL", "WIKIPARSE_INDEX_PATH",
		"WIKIPARSE_SERVER_PORT", "WIKIPARSE_LOG_LEVEL", "WIKIPARSE_MAX_DEPTH",
	} {
		os.Unsetenv(key)
	}

	cfg := Load()

	if cfg.ServerPort != "8080" {
		t.Errorf("ServerPort = %q, want 8080", cfg.ServerPort)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.GitRepoURL != "" {
		t.Errorf("GitRepoURL = %q, want empty", cfg.GitRepoURL)
	}
	if cfg.MaxDepth != 0 {
		t.Errorf("MaxDepth = %d, want 0", cfg.MaxDepth)
	}
}

func TestLoadOverrides(t *testing.T) {
	os.Setenv("WIKIPARSE_SERVER_PORT", "9090")
	os.Setenv("WIKIPARSE_MAX_DEPTH", "42")
	defer os.Unsetenv("WIKIPARSE_SERVER_PORT")
	defer os.Unsetenv("WIKIPARSE_MAX_DEPTH")

	cfg := Load()

	if cfg.ServerPort != "9090" {
		t.Errorf("ServerPort = %q, want 9090", cfg.ServerPort)
	}
	if cfg.MaxDepth != 42 {
		t.Errorf("MaxDepth = %d, want 42", cfg.MaxDepth)
	}
}

func TestGetEnvIntInvalidFallsBackToDefault(t *testing.T) {
	os.Setenv("WIKIPARSE_MAX_DEPTH", "not-a-number")
	defer os.Unsetenv("WIKIPARSE_MAX_DEPTH")

	cfg := Load()

	if cfg.MaxDepth != 0 {
		t.Errorf("MaxDepth = %d, want fallback 0", cfg.MaxDepth)
	}
}

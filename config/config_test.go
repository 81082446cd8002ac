package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Embedding.Provider != "ollama" {
		t.Errorf("expected provider=ollama, got %s", cfg.Embedding.Provider)
	}
	if cfg.Embedding.Model != "all-minilm" {
		t.Errorf("expected model=all-minilm, got %s", cfg.Embedding.Model)
	}
	if cfg.Search.TopK != 5 {
		t.Errorf("expected TopK=5, got %d", cfg.Search.TopK)
	}
	if cfg.Compute.Concurrency != 0 {
		t.Errorf("expected Concurrency=0 (auto), got %d", cfg.Compute.Concurrency)
	}
	if !cfg.Search.QueryCache {
		t.Error("expected query cache enabled by default")
	}
}

func TestLoad_NonExistent(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	if err != nil {
		t.Errorf("expected no error for non-existent file, got %v", err)
	}
	if cfg == nil {
		t.Error("expected default config, got nil")
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "vecsim.yaml")

	content := `
embedding:
  provider: mock
  dimension: 8
compute:
  concurrency: 3
search:
  top_k: 10
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Embedding.Provider != "mock" {
		t.Errorf("expected provider=mock, got %s", cfg.Embedding.Provider)
	}
	if cfg.Embedding.Dimension != 8 {
		t.Errorf("expected dimension=8, got %d", cfg.Embedding.Dimension)
	}
	if cfg.Compute.Concurrency != 3 {
		t.Errorf("expected concurrency=3, got %d", cfg.Compute.Concurrency)
	}
	if cfg.Search.TopK != 10 {
		t.Errorf("expected TopK=10, got %d", cfg.Search.TopK)
	}
	// Unset sections keep their defaults.
	if cfg.Embedding.Model != "all-minilm" {
		t.Errorf("expected default model to survive partial config, got %s", cfg.Embedding.Model)
	}
}

func TestLoadFromDir(t *testing.T) {
	tmpDir := t.TempDir()

	cfg, err := LoadFromDir(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Search.TopK != 5 {
		t.Errorf("expected defaults from empty dir, got TopK=%d", cfg.Search.TopK)
	}

	content := "search:\n  top_k: 7\n"
	if err := os.WriteFile(filepath.Join(tmpDir, "vecsim.yaml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err = LoadFromDir(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Search.TopK != 7 {
		t.Errorf("expected TopK=7 from vecsim.yaml, got %d", cfg.Search.TopK)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "out.yaml")

	cfg := DefaultConfig()
	cfg.Search.TopK = 12
	if err := cfg.Save(path); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Search.TopK != 12 {
		t.Errorf("expected TopK=12 after round trip, got %d", loaded.Search.TopK)
	}
}

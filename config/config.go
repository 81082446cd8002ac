package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the vecsim tool.
type Config struct {
	Embedding EmbeddingConfig `yaml:"embedding"`
	Compute   ComputeConfig   `yaml:"compute"`
	Search    SearchConfig    `yaml:"search"`
}

// EmbeddingConfig selects and configures the embedding backend.
type EmbeddingConfig struct {
	Provider  string `yaml:"provider"`    // "openai", "ollama", "mock"
	Model     string `yaml:"model"`       // e.g., "all-minilm"
	APIKeyEnv string `yaml:"api_key_env"` // Environment variable for API key
	BaseURL   string `yaml:"base_url"`    // Override endpoint (ollama, proxies)
	Dimension int    `yaml:"dimension"`   // Used by the mock provider only
}

// ComputeConfig holds batch computation configuration.
type ComputeConfig struct {
	// Concurrency bounds the worker pool. Zero means available
	// parallelism minus two, floored at one.
	Concurrency int      `yaml:"concurrency"`
	Includes    []string `yaml:"includes"`
	Excludes    []string `yaml:"excludes"`
}

// SearchConfig holds query-time configuration.
type SearchConfig struct {
	TopK       int  `yaml:"top_k"`
	QueryCache bool `yaml:"query_cache"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Embedding: EmbeddingConfig{
			Provider:  "ollama",
			Model:     "all-minilm",
			APIKeyEnv: "OPENAI_API_KEY",
			Dimension: 384,
		},
		Compute: ComputeConfig{
			Concurrency: 0,
			Includes:    []string{"**/*.html", "**/*.htm", "**/*.md", "**/*.txt"},
			Excludes:    []string{"**/.git/**", "**/.vecsim/**", "**/*.embeddings"},
		},
		Search: SearchConfig{
			TopK:       5,
			QueryCache: true,
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for vecsim.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "vecsim.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".vecsim", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// QueryCachePath returns the path to the query embedding cache database.
func QueryCachePath(dir string) string {
	return filepath.Join(dir, ".vecsim", "queries.db")
}

// EnsureStateDir ensures the .vecsim directory exists.
func EnsureStateDir(dir string) error {
	return os.MkdirAll(filepath.Join(dir, ".vecsim"), 0755)
}

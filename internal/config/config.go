// Package config loads the application configuration from a YAML file,
// falling back to built-in defaults when the file is absent. The model API
// key is never read from the file, only from the environment.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const apiKeyEnv = "GROQ_API_KEY"

type IndexConfig struct {
	Path       string `yaml:"path" validate:"required"`
	Collection string `yaml:"collection" validate:"required"`
	Archive    string `yaml:"archive" validate:"required"`
}

type EmbeddingConfig struct {
	BaseURL string `yaml:"base_url" validate:"required,url"`
	Model   string `yaml:"model" validate:"required"`
}

type LLMConfig struct {
	BaseURL     string  `yaml:"base_url" validate:"required,url"`
	Model       string  `yaml:"model" validate:"required"`
	BackupModel string  `yaml:"backup_model" validate:"required"`
	Temperature float64 `yaml:"temperature"`

	// APIKey comes from the environment only. An empty key disables
	// generation for the whole process; it never aborts startup.
	APIKey string `yaml:"-"`
}

type RetrievalConfig struct {
	TopK          int `yaml:"top_k" validate:"min=1"`
	HistoryWindow int `yaml:"history_window" validate:"min=0"`
}

type Config struct {
	DataDir   string          `yaml:"data_dir" validate:"required"`
	Index     IndexConfig     `yaml:"index"`
	Embedding EmbeddingConfig `yaml:"embedding"`
	LLM       LLMConfig       `yaml:"llm"`
	Retrieval RetrievalConfig `yaml:"retrieval"`
}

// Default returns the configuration used when no file overrides it.
func Default() *Config {
	return &Config{
		DataDir: "./data",
		Index: IndexConfig{
			Path:       "./kb_index",
			Collection: "knowledge_base",
			Archive:    "./kb_index.gob.gz",
		},
		Embedding: EmbeddingConfig{
			BaseURL: "http://localhost:11434",
			Model:   "paraphrase-multilingual-MiniLM-L12-v2",
		},
		LLM: LLMConfig{
			BaseURL:     "https://api.groq.com/openai/v1",
			Model:       "llama-3.3-70b-versatile",
			BackupModel: "llama-3.1-8b-instant",
			Temperature: 0.1,
		},
		Retrieval: RetrievalConfig{
			TopK:          4,
			HistoryWindow: 3,
		},
	}
}

// Load reads the config at path, merging it over the defaults. A missing
// file is not an error; a malformed or invalid one is.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// defaults apply
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg.LLM.APIKey = os.Getenv(apiKeyEnv)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the struct tags on the whole configuration tree.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// GenerationEnabled reports whether a model credential is present.
func (c *Config) GenerationEnabled() bool {
	return c.LLM.APIKey != ""
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "./data", cfg.DataDir)
	assert.Equal(t, "knowledge_base", cfg.Index.Collection)
	assert.Equal(t, "llama-3.3-70b-versatile", cfg.LLM.Model)
	assert.Equal(t, "llama-3.1-8b-instant", cfg.LLM.BackupModel)
	assert.Equal(t, 4, cfg.Retrieval.TopK)
	assert.Equal(t, 3, cfg.Retrieval.HistoryWindow)
	assert.False(t, cfg.GenerationEnabled())
}

func TestLoadMergesOverDefaults(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	body := []byte("data_dir: /srv/docs\nretrieval:\n  top_k: 2\n")
	require.NoError(t, os.WriteFile(path, body, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/docs", cfg.DataDir)
	assert.Equal(t, 2, cfg.Retrieval.TopK)
	// untouched keys keep their defaults
	assert.Equal(t, "./kb_index", cfg.Index.Path)
	assert.Equal(t, 0.1, cfg.LLM.Temperature)
}

func TestLoadReadsAPIKeyFromEnv(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "gsk_test")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "gsk_test", cfg.LLM.APIKey)
	assert.True(t, cfg.GenerationEnabled())
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	body := []byte("llm:\n  base_url: not-a-url\n")
	require.NoError(t, os.WriteFile(path, body, 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\n\t-broken"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

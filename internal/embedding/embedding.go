// Package embedding wraps the multilingual embedding model. The corpus
// mixes English and Arabic, so the model identifier is fixed to a
// multilingual one and the same model must be used for ingestion and
// querying.
package embedding

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/ollama"

	"github.com/SHRA1M/Rag-chatbot/internal/config"
	"github.com/SHRA1M/Rag-chatbot/internal/models"
)

// Embedder turns text into a fixed-dimension vector.
type Embedder interface {
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
}

// New builds the embedder for the configured model endpoint.
func New(cfg *config.EmbeddingConfig) (*embeddings.EmbedderImpl, error) {
	llm, err := ollama.New(
		ollama.WithServerURL(cfg.BaseURL),
		ollama.WithModel(cfg.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("init embedding model: %w", err)
	}
	embedder, err := embeddings.NewEmbedder(llm)
	if err != nil {
		return nil, fmt.Errorf("create embedder: %w", err)
	}
	return embedder, nil
}

// EmbedChunks embeds every chunk in order, returning one vector per chunk.
// The first failure aborts the whole batch: ingestion is an offline job and
// a partial index is worse than none.
func EmbedChunks(ctx context.Context, embedder Embedder, chunks []models.Chunk) ([][]float32, error) {
	vectors := make([][]float32, 0, len(chunks))
	for i, chunk := range chunks {
		vector, err := embedder.EmbedQuery(ctx, chunk.Content)
		if err != nil {
			return nil, fmt.Errorf("embed chunk %s: %w", chunk.VectorID(), err)
		}
		vectors = append(vectors, vector)
		if (i+1)%50 == 0 {
			log.Info().Int("done", i+1).Int("total", len(chunks)).Msg("embedding chunks")
		}
	}
	return vectors, nil
}

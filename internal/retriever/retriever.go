// Package retriever turns a conversation into ranked knowledge-base
// context. Retrieval is best-effort: every failure degrades to an empty
// result and is never surfaced to the user.
package retriever

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/SHRA1M/Rag-chatbot/internal/embedding"
	"github.com/SHRA1M/Rag-chatbot/internal/models"
)

// Searcher answers nearest-neighbour queries over the chunk index.
type Searcher interface {
	Search(ctx context.Context, vector []float32, k int) ([]models.Chunk, error)
}

const (
	DefaultTopK          = 4
	DefaultHistoryWindow = 3
)

// Retriever embeds history-augmented queries and searches the index.
type Retriever struct {
	embedder embedding.Embedder
	index    Searcher
	topK     int
	window   int
}

// New returns a retriever over index. index may be nil when no usable index
// exists on disk; Retrieve then always returns nothing.
func New(embedder embedding.Embedder, index Searcher, topK, historyWindow int) *Retriever {
	if topK <= 0 {
		topK = DefaultTopK
	}
	if historyWindow < 0 {
		historyWindow = DefaultHistoryWindow
	}
	return &Retriever{
		embedder: embedder,
		index:    index,
		topK:     topK,
		window:   historyWindow,
	}
}

// Retrieve returns the best-matching chunks for the question, best first.
// The most recent history turns are folded into the query text before
// embedding so that follow-ups ("how much?") resolve against the topic
// under discussion; this augmentation is part of the contract, not an
// implementation detail.
func (r *Retriever) Retrieve(ctx context.Context, history []models.Turn, question string) []models.Chunk {
	if r.index == nil || r.embedder == nil {
		return nil
	}

	query := r.augment(history, question)
	vector, err := r.embedder.EmbedQuery(ctx, query)
	if err != nil {
		log.Warn().Err(err).Msg("query embedding failed, answering without context")
		return nil
	}

	chunks, err := r.index.Search(ctx, vector, r.topK)
	if err != nil {
		log.Warn().Err(err).Msg("index search failed, answering without context")
		return nil
	}
	return chunks
}

func (r *Retriever) augment(history []models.Turn, question string) string {
	if r.window <= 0 || len(history) == 0 {
		return question
	}
	if len(history) > r.window {
		history = history[len(history)-r.window:]
	}

	var sb strings.Builder
	sb.WriteString("Chat History: ")
	for i, t := range history {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(t.Role)
		sb.WriteString(": ")
		sb.WriteString(t.Content)
	}
	sb.WriteString("\nCurrent Question: ")
	sb.WriteString(question)
	return sb.String()
}

// Package chunker splits documents into the overlapping pieces the index is
// built from.
package chunker

import (
	"fmt"
	"unicode/utf8"

	"github.com/tmc/langchaingo/textsplitter"

	"github.com/SHRA1M/Rag-chatbot/internal/models"
)

// Separators is the boundary ladder, most structural first. Splitting tries
// each in turn and only moves to the next when a piece still exceeds the
// size bound; the empty string means a hard cut.
var Separators = []string{"\n\n", "\n", ".", "!", "?", ",", " ", ""}

const (
	// DefaultMaxSize is the chunk size bound in runes.
	DefaultMaxSize = 800
	// DefaultOverlap is how many runes neighbouring chunks share, so
	// meaning is not lost at cut points.
	DefaultOverlap = 150
)

// Split breaks every document into chunks of at most maxSize runes with
// overlap runes shared between neighbours. It is a pure function of its
// inputs; the same documents always split the same way.
func Split(docs []models.Document, maxSize, overlap int) ([]models.Chunk, error) {
	if maxSize <= 0 || overlap < 0 || overlap >= maxSize {
		return nil, fmt.Errorf("invalid chunk bounds: size %d, overlap %d", maxSize, overlap)
	}

	splitter := textsplitter.NewRecursiveCharacter(
		textsplitter.WithChunkSize(maxSize),
		textsplitter.WithChunkOverlap(overlap),
		textsplitter.WithSeparators(Separators),
		textsplitter.WithLenFunc(utf8.RuneCountInString),
	)

	var chunks []models.Chunk
	for _, doc := range docs {
		pieces, err := splitter.SplitText(doc.Content)
		if err != nil {
			return nil, fmt.Errorf("split %s: %w", doc.Source, err)
		}
		for i, piece := range pieces {
			if piece == "" {
				continue
			}
			chunks = append(chunks, models.Chunk{
				Source:  doc.Source,
				Ordinal: i,
				Content: piece,
			})
		}
	}
	return chunks, nil
}

// Package index persists chunk vectors in a local chromem-go database and
// answers similarity queries over it. The on-disk form is a directory; a
// compressed single-file archive of the same data can be produced for
// distribution and is restored in place on first load when the directory
// holds nothing.
package index

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/philippgille/chromem-go"
	"github.com/rs/zerolog/log"

	"github.com/SHRA1M/Rag-chatbot/internal/models"
)

// ErrUnavailable means no usable index exists on disk. Callers treat it as
// "retrieval disabled", never as a fatal startup error.
var ErrUnavailable = errors.New("vector index unavailable")

const metaSource = "source"

// Index is a similarity index over chunk embeddings. It is written during
// ingestion and read-only while serving; a loaded Index is safe for
// concurrent reads.
type Index struct {
	db         *chromem.DB
	collection *chromem.Collection
	name       string
}

// Entry pairs a chunk with its embedding vector.
type Entry struct {
	Chunk  models.Chunk
	Vector []float32
}

// Build creates a fresh persistent index at path, replacing any previous
// run's output.
func Build(path, collection string) (*Index, error) {
	if err := os.RemoveAll(path); err != nil {
		return nil, fmt.Errorf("clear previous index: %w", err)
	}
	db, err := chromem.NewPersistentDB(path, false)
	if err != nil {
		return nil, fmt.Errorf("create index at %s: %w", path, err)
	}
	c, err := db.GetOrCreateCollection(collection, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create collection %s: %w", collection, err)
	}
	return &Index{db: db, collection: c, name: collection}, nil
}

// NewMemory creates a non-persisted index, used in tests.
func NewMemory(collection string) (*Index, error) {
	db := chromem.NewDB()
	c, err := db.GetOrCreateCollection(collection, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create collection %s: %w", collection, err)
	}
	return &Index{db: db, collection: c, name: collection}, nil
}

// Open loads the index at path. When the directory holds no populated
// collection but the archive exists, the archive is imported in place
// first; opening an already-populated directory leaves it untouched, so the
// restore is idempotent. With neither form present, or with unreadable
// data, Open fails with ErrUnavailable.
func Open(path, collection, archive string) (*Index, error) {
	db, err := chromem.NewPersistentDB(path, false)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrUnavailable, path, err)
	}

	c := db.GetCollection(collection, nil)
	if c == nil || c.Count() == 0 {
		if _, err := os.Stat(archive); err != nil {
			return nil, fmt.Errorf("%w: no index at %s and no archive at %s", ErrUnavailable, path, archive)
		}
		log.Info().Str("archive", archive).Msg("restoring vector index from archive")
		if err := db.ImportFromFile(archive, ""); err != nil {
			return nil, fmt.Errorf("%w: restore from %s: %v", ErrUnavailable, archive, err)
		}
		c = db.GetCollection(collection, nil)
		if c == nil {
			return nil, fmt.Errorf("%w: archive %s holds no %q collection", ErrUnavailable, archive, collection)
		}
	}

	return &Index{db: db, collection: c, name: collection}, nil
}

// Add stores the entries. Each chunk keeps its own record.
func (ix *Index) Add(ctx context.Context, entries []Entry) error {
	docs := make([]chromem.Document, 0, len(entries))
	for _, e := range entries {
		docs = append(docs, chromem.Document{
			ID:        e.Chunk.VectorID(),
			Content:   e.Chunk.Content,
			Metadata:  map[string]string{metaSource: e.Chunk.Source},
			Embedding: e.Vector,
		})
	}
	if err := ix.collection.AddDocuments(ctx, docs, runtime.NumCPU()); err != nil {
		return fmt.Errorf("add documents to index: %w", err)
	}
	return nil
}

// Archive writes the compressed single-file form used for distribution.
func (ix *Index) Archive(path string) error {
	if err := ix.db.ExportToFile(path, true, "", ix.name); err != nil {
		return fmt.Errorf("export index archive: %w", err)
	}
	return nil
}

// Search returns the top-k chunks nearest to vector, best match first. Only
// the relative ordering is meaningful to callers; absolute similarity
// scores are not part of the contract. An empty index yields an empty
// result, not an error.
func (ix *Index) Search(ctx context.Context, vector []float32, k int) ([]models.Chunk, error) {
	count := ix.collection.Count()
	if count == 0 || k <= 0 {
		return nil, nil
	}
	if k > count {
		k = count
	}

	results, err := ix.collection.QueryWithOptions(ctx, chromem.QueryOptions{
		QueryEmbedding: vector,
		NResults:       k,
	})
	if err != nil {
		return nil, fmt.Errorf("query index: %w", err)
	}

	chunks := make([]models.Chunk, 0, len(results))
	for _, r := range results {
		chunks = append(chunks, models.Chunk{
			Source:  r.Metadata[metaSource],
			Content: r.Content,
		})
	}
	return chunks, nil
}

// Count reports the number of stored chunks.
func (ix *Index) Count() int {
	return ix.collection.Count()
}

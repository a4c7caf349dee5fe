package index

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SHRA1M/Rag-chatbot/internal/models"
)

func testEntries() []Entry {
	return []Entry{
		{
			Chunk:  models.Chunk{Source: "kb.txt", Ordinal: 0, Content: "We offer GDPR compliance services."},
			Vector: []float32{1, 0, 0},
		},
		{
			Chunk:  models.Chunk{Source: "kb.txt", Ordinal: 1, Content: "Pricing depends on project scope."},
			Vector: []float32{0, 1, 0},
		},
		{
			Chunk:  models.Chunk{Source: "kb.txt", Ordinal: 2, Content: "We are located in Amman, Jordan."},
			Vector: []float32{0, 0, 1},
		},
	}
}

func TestBuildAndSearchOrdering(t *testing.T) {
	ctx := context.Background()
	ix, err := Build(filepath.Join(t.TempDir(), "kb_index"), "knowledge_base")
	require.NoError(t, err)
	require.NoError(t, ix.Add(ctx, testEntries()))
	assert.Equal(t, 3, ix.Count())

	chunks, err := ix.Search(ctx, []float32{0.9, 0.1, 0}, 2)
	require.NoError(t, err)
	require.Len(t, chunks, 2)
	assert.Equal(t, "We offer GDPR compliance services.", chunks[0].Content)
	assert.Equal(t, "kb.txt", chunks[0].Source)
}

func TestSearchClampsK(t *testing.T) {
	ctx := context.Background()
	ix, err := NewMemory("knowledge_base")
	require.NoError(t, err)
	require.NoError(t, ix.Add(ctx, testEntries()))

	chunks, err := ix.Search(ctx, []float32{0, 1, 0}, 10)
	require.NoError(t, err)
	assert.Len(t, chunks, 3)
}

func TestSearchEmptyIndex(t *testing.T) {
	ix, err := NewMemory("knowledge_base")
	require.NoError(t, err)

	chunks, err := ix.Search(context.Background(), []float32{1, 0, 0}, 4)
	require.NoError(t, err)
	assert.Empty(t, chunks)
}

func TestSearchDeterministic(t *testing.T) {
	ctx := context.Background()
	ix, err := NewMemory("knowledge_base")
	require.NoError(t, err)
	require.NoError(t, ix.Add(ctx, testEntries()))

	first, err := ix.Search(ctx, []float32{0.5, 0.5, 0}, 3)
	require.NoError(t, err)
	second, err := ix.Search(ctx, []float32{0.5, 0.5, 0}, 3)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestArchiveRestoreIdempotent(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	archive := filepath.Join(dir, "kb_index.gob.gz")

	built, err := Build(filepath.Join(dir, "built"), "knowledge_base")
	require.NoError(t, err)
	require.NoError(t, built.Add(ctx, testEntries()))
	require.NoError(t, built.Archive(archive))

	// First load on a machine that only received the archive.
	fresh := filepath.Join(dir, "deployed")
	ix, err := Open(fresh, "knowledge_base", archive)
	require.NoError(t, err)
	assert.Equal(t, 3, ix.Count())

	chunks, err := ix.Search(ctx, []float32{0, 1, 0}, 1)
	require.NoError(t, err)
	require.Len(t, chunks, 1)
	assert.Equal(t, "Pricing depends on project scope.", chunks[0].Content)

	// Re-running the load must not re-extract or duplicate anything.
	again, err := Open(fresh, "knowledge_base", archive)
	require.NoError(t, err)
	assert.Equal(t, 3, again.Count())

	repeat, err := again.Search(ctx, []float32{0, 1, 0}, 1)
	require.NoError(t, err)
	assert.Equal(t, chunks, repeat)
}

func TestOpenUnavailable(t *testing.T) {
	dir := t.TempDir()
	_, err := Open(filepath.Join(dir, "missing"), "knowledge_base", filepath.Join(dir, "no-archive.gob.gz"))
	assert.ErrorIs(t, err, ErrUnavailable)
}

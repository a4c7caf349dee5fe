// Package models holds the value types shared by the ingestion and serving
// pipelines.
package models

import (
	"fmt"

	"github.com/google/uuid"
)

// Roles a conversation turn can carry.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Document is one raw knowledge-base file, loaded once per ingestion run.
type Document struct {
	ID      uuid.UUID
	Source  string
	Content string
}

// Chunk is a contiguous piece of a document sized for embedding. Chunks are
// immutable once created and live as long as the index built from them.
type Chunk struct {
	Source  string
	Ordinal int
	Content string
}

// VectorID identifies the chunk inside the vector index. Each chunk keeps
// its own entry; duplicates are never merged.
func (c Chunk) VectorID() string {
	return fmt.Sprintf("%s-%d", c.Source, c.Ordinal)
}

// Turn is a single conversation message.
type Turn struct {
	Role    string
	Content string
}

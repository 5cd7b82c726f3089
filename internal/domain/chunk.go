package domain

import "github.com/google/uuid"

// Chunk is a unit of indexed text in a document store.
type Chunk struct {
	ID      uuid.UUID
	Content string
}

func NewChunk(content string) Chunk {
	return Chunk{ID: uuid.New(), Content: content}
}

package docstore

import (
	"context"

	"parthunter/internal/domain"
)

// Searcher is the read side of a document store: an ordered, relevance-ranked
// chunk lookup. Construction and persistence of the underlying index live in
// the backend packages.
type Searcher interface {
	Search(ctx context.Context, query string, k int) ([]string, error)
}

// Indexer is the write side, used by the import tooling.
type Indexer interface {
	Index(ctx context.Context, chunks []domain.Chunk) error
}

type Store interface {
	Searcher
	Indexer
}

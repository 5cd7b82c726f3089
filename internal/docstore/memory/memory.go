package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"parthunter/internal/domain"
)

// Store is an in-memory document store ranking chunks by term overlap with
// the query. Useful for tests and local runs without an index.
type Store struct {
	mu     sync.RWMutex
	chunks []domain.Chunk
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Index(_ context.Context, chunks []domain.Chunk) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chunks = append(s.chunks, chunks...)
	return nil
}

func (s *Store) Search(_ context.Context, query string, k int) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 || k <= 0 {
		return nil, nil
	}

	type scored struct {
		content string
		score   int
		pos     int
	}

	var matches []scored
	for i, chunk := range s.chunks {
		content := strings.ToLower(chunk.Content)
		score := 0
		for _, term := range terms {
			if strings.Contains(content, term) {
				score++
			}
		}
		if score > 0 {
			matches = append(matches, scored{content: chunk.Content, score: score, pos: i})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].score != matches[j].score {
			return matches[i].score > matches[j].score
		}
		return matches[i].pos < matches[j].pos
	})

	if len(matches) > k {
		matches = matches[:k]
	}

	results := make([]string, len(matches))
	for i, m := range matches {
		results[i] = m.content
	}
	return results, nil
}

package rag

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"golang.org/x/sync/errgroup"

	"parthunter/internal/apperr"
	"parthunter/internal/docstore"
	"parthunter/internal/domain"
)

const (
	defaultTopK = 5

	// Cap on outstanding grading calls so the hosted endpoint is not
	// overwhelmed; judgments are independent so order of issue is free.
	defaultMaxConcurrent = 5
)

// Grader judges one (query, document) pair. It must not fail: error recovery
// is the grader's own concern.
type Grader interface {
	Grade(ctx context.Context, query, document string) domain.Judgment
}

// Filter runs retrieval for a table, grades every candidate, and keeps the
// relevant subsequence in original store order.
type Filter struct {
	stores        map[domain.Table]docstore.Searcher
	grader        Grader
	topK          int
	maxConcurrent int
}

type Option func(*Filter)

func WithTopK(k int) Option {
	return func(f *Filter) {
		f.topK = k
	}
}

func WithMaxConcurrent(n int) Option {
	return func(f *Filter) {
		f.maxConcurrent = n
	}
}

func NewFilter(stores map[domain.Table]docstore.Searcher, grader Grader, opts ...Option) *Filter {
	f := &Filter{
		stores:        stores,
		grader:        grader,
		topK:          defaultTopK,
		maxConcurrent: defaultMaxConcurrent,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Search resolves the table, retrieves candidates, and filters them by
// graded relevance. The returned error is either an InvalidTableError (raised
// before any retrieval) or a RetrievalError wrapping a store failure; grading
// failures never surface.
func (f *Filter) Search(ctx context.Context, table, query string) (domain.SearchResult, error) {
	t, err := domain.ParseTable(table)
	if err != nil {
		return domain.SearchResult{}, err
	}

	store, ok := f.stores[t]
	if !ok {
		return domain.SearchResult{}, &apperr.InvalidTableError{Table: table}
	}

	docs, err := store.Search(ctx, query, f.topK)
	if err != nil {
		return domain.SearchResult{}, &apperr.RetrievalError{Err: err}
	}

	if len(docs) == 0 {
		slog.Warn("No documents found", "table", table)
		return domain.Empty(), nil
	}

	// Fan out grading, bounded; judgments land at their original index so the
	// surviving set preserves the store's ranking order.
	judgments := make([]domain.Judgment, len(docs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.maxConcurrent)
	for i, doc := range docs {
		i, doc := i, doc
		g.Go(func() error {
			judgments[i] = f.grader.Grade(gctx, query, doc)
			return nil
		})
	}
	_ = g.Wait()

	relevant := make([]string, 0, len(docs))
	scores := make([]float64, 0, len(docs))
	for _, j := range judgments {
		scores = append(scores, math.Round(j.Confidence*100)/100)
		if j.Included {
			relevant = append(relevant, j.Document)
		}
	}

	slog.Info(fmt.Sprintf("Found %d/%d relevant documents", len(relevant), len(docs)))
	slog.Info("Confidence scores", "scores", scores)

	if len(relevant) == 0 {
		return domain.Empty(), nil
	}

	return domain.Found(relevant), nil
}

// ErrorContent renders a filter failure for the tool boundary, which always
// returns a sequence of text.
func ErrorContent(table string, err error) []string {
	return []string{fmt.Sprintf("Error searching %s: %s", table, apperr.Describe(err))}
}

package vector

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parthunter/internal/domain"
)

// fakeEmbedder maps known texts to fixed vectors so similarity ordering is
// deterministic.
type fakeEmbedder struct {
	vectors map[string][]float32
}

func (f *fakeEmbedder) EmbedQuery(_ context.Context, query string) ([]float32, error) {
	return f.vectors[query], nil
}

func (f *fakeEmbedder) EmbedTexts(_ context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, text := range texts {
		out[i] = f.vectors[text]
	}
	return out, nil
}

func newTestStore(t *testing.T, embedder Embedder) *Store {
	t.Helper()

	s, err := NewStore(filepath.Join(t.TempDir(), "repairs.db"), embedder)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSearch_OrdersBySimilarity(t *testing.T) {
	embedder := &fakeEmbedder{vectors: map[string][]float32{
		"ice maker broken": {1, 0, 0},
		"ice maker doc":    {0.9, 0.1, 0},
		"gasket doc":       {0, 1, 0},
		"drain pump doc":   {0.5, 0.5, 0},
	}}
	s := newTestStore(t, embedder)

	require.NoError(t, s.Index(context.Background(), []domain.Chunk{
		domain.NewChunk("gasket doc"),
		domain.NewChunk("ice maker doc"),
		domain.NewChunk("drain pump doc"),
	}))

	results, err := s.Search(context.Background(), "ice maker broken", 2)
	require.NoError(t, err)

	assert.Equal(t, []string{"ice maker doc", "drain pump doc"}, results)
}

func TestSearch_EmptyIndex(t *testing.T) {
	s := newTestStore(t, &fakeEmbedder{vectors: map[string][]float32{
		"q": {1, 0},
	}})

	results, err := s.Search(context.Background(), "q", 5)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestIndex_PersistsAcrossReopen(t *testing.T) {
	embedder := &fakeEmbedder{vectors: map[string][]float32{
		"doc": {1, 0},
		"q":   {1, 0},
	}}
	path := filepath.Join(t.TempDir(), "repairs.db")

	s, err := NewStore(path, embedder)
	require.NoError(t, err)
	require.NoError(t, s.Index(context.Background(), []domain.Chunk{domain.NewChunk("doc")}))
	require.NoError(t, s.Close())

	s, err = NewStore(path, embedder)
	require.NoError(t, err)
	defer s.Close()

	results, err := s.Search(context.Background(), "q", 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"doc"}, results)
}

func TestIndex_ReindexingOverwritesByID(t *testing.T) {
	embedder := &fakeEmbedder{vectors: map[string][]float32{
		"doc": {1, 0},
		"q":   {1, 0},
	}}
	s := newTestStore(t, embedder)

	chunk := domain.NewChunk("doc")
	require.NoError(t, s.Index(context.Background(), []domain.Chunk{chunk}))
	require.NoError(t, s.Index(context.Background(), []domain.Chunk{chunk}))

	results, err := s.Search(context.Background(), "q", 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"doc"}, results)
}

func TestCosineSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, cosineSimilarity([]float32{1, 0}, []float32{2, 0}), 1e-9)
	assert.InDelta(t, 0.0, cosineSimilarity([]float32{1, 0}, []float32{0, 1}), 1e-9)
	assert.Equal(t, 0.0, cosineSimilarity([]float32{1, 0}, []float32{1}))
	assert.Equal(t, 0.0, cosineSimilarity(nil, nil))
	assert.Equal(t, 0.0, cosineSimilarity([]float32{0, 0}, []float32{1, 1}))
}

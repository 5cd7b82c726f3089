package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parthunter/internal/domain"
)

func TestSearch_RanksByTermOverlap(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Index(context.Background(), []domain.Chunk{
		domain.NewChunk("Refrigerator door gasket replacement guide"),
		domain.NewChunk("Ice maker not making ice in refrigerator"),
		domain.NewChunk("Dishwasher drain pump troubleshooting"),
	}))

	results, err := s.Search(context.Background(), "refrigerator ice maker", 5)
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, "Ice maker not making ice in refrigerator", results[0])
	assert.Equal(t, "Refrigerator door gasket replacement guide", results[1])
}

func TestSearch_TopK(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Index(context.Background(), []domain.Chunk{
		domain.NewChunk("gasket one"),
		domain.NewChunk("gasket two"),
		domain.NewChunk("gasket three"),
	}))

	results, err := s.Search(context.Background(), "gasket", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"gasket one", "gasket two"}, results)
}

func TestSearch_NoMatches(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Index(context.Background(), []domain.Chunk{
		domain.NewChunk("gasket"),
	}))

	results, err := s.Search(context.Background(), "thermostat", 5)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearch_EmptyStore(t *testing.T) {
	s := NewStore()

	results, err := s.Search(context.Background(), "anything", 5)
	require.NoError(t, err)
	assert.Empty(t, results)
}

package rag

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchTool_NeverReturnsError(t *testing.T) {
	f := newFilter(searcherFunc(func(ctx context.Context, query string, k int) ([]string, error) {
		return []string{"chunk1"}, nil
	}), map[string]string{
		"chunk1": `{"confidence_score": 0.9}`,
	})

	searchRAG := SearchTool(f)
	assert.Equal(t, "searchRAG", searchRAG.Name)

	content, err := searchRAG.Handler(context.Background(), map[string]any{
		"table": "repairs",
		"query": "ice maker not working",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"chunk1"}, content)

	// Invalid tables surface as text content, not as an error.
	content, err = searchRAG.Handler(context.Background(), map[string]any{
		"table": "warranties",
		"query": "q",
	})
	require.NoError(t, err)
	require.Len(t, content, 1)
	assert.Contains(t, content[0], "Error searching warranties: InvalidTableError")
}

package embedding

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	lastRequest      Request
	lastBatchRequest BatchRequest

	embedding  []float32
	embeddings [][]float32
}

func (f *fakeClient) Generate(_ context.Context, req Request) (*Response, error) {
	f.lastRequest = req
	return &Response{Embedding: f.embedding}, nil
}

func (f *fakeClient) GenerateBatch(_ context.Context, req BatchRequest) (*BatchResponse, error) {
	f.lastBatchRequest = req
	return &BatchResponse{Embeddings: f.embeddings}, nil
}

func TestEmbedQuery_WrapsWithInstruct(t *testing.T) {
	client := &fakeClient{embedding: []float32{1, 2, 3}}
	e := NewEmbedder(client, WithModel("custom-model"))

	vec, err := e.EmbedQuery(context.Background(), "  ice maker broken  ")
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 3}, vec)

	assert.Equal(t, "custom-model", client.lastRequest.Model)
	assert.True(t, strings.HasPrefix(client.lastRequest.Prompt, "Instruct: "), client.lastRequest.Prompt)
	assert.Contains(t, client.lastRequest.Prompt, "Query:ice maker broken")
}

func TestEmbedTexts(t *testing.T) {
	client := &fakeClient{embeddings: [][]float32{{1}, {2}}}
	e := NewEmbedder(client)

	vecs, err := e.EmbedTexts(context.Background(), []string{"doc one", "doc two"})
	require.NoError(t, err)
	assert.Equal(t, [][]float32{{1}, {2}}, vecs)

	assert.Equal(t, defaultModel, client.lastBatchRequest.Model)
	assert.Equal(t, []string{"doc one", "doc two"}, client.lastBatchRequest.Prompts)
}

func TestEmbedTexts_CountMismatch(t *testing.T) {
	client := &fakeClient{embeddings: [][]float32{{1}}}
	e := NewEmbedder(client)

	_, err := e.EmbedTexts(context.Background(), []string{"a", "b"})
	assert.ErrorContains(t, err, "expected 2 embeddings, got 1")
}

func TestEmbedTexts_Empty(t *testing.T) {
	e := NewEmbedder(&fakeClient{})

	vecs, err := e.EmbedTexts(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, vecs)
}

func TestTruncation(t *testing.T) {
	client := &fakeClient{embedding: []float32{1, 2, 3, 4}}
	e := NewEmbedder(client, WithMaxLength(2))

	vec, err := e.EmbedQuery(context.Background(), "q")
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2}, vec)
}

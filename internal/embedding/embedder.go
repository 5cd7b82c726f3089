package embedding

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Embedder turns chunk texts and queries into vectors via an embedding model
// endpoint. Queries are wrapped with a retrieval instruction.
type Embedder struct {
	maxLength *int
	model     string

	client Client
}

type EmbedderOption func(e *Embedder)

func NewEmbedder(client Client, opts ...EmbedderOption) *Embedder {
	base := &Embedder{
		model:  defaultModel,
		client: client,
	}

	for _, opt := range opts {
		opt(base)
	}

	return base
}

func WithModel(model string) EmbedderOption {
	return func(e *Embedder) {
		e.model = model
	}
}

func WithMaxLength(length int) EmbedderOption {
	return func(e *Embedder) {
		e.maxLength = &length
	}
}

func (e *Embedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	slog.Debug("Bulk embedding texts", "count", len(texts), "model", e.model)

	resp, err := e.client.GenerateBatch(ctx, BatchRequest{
		Model:   e.model,
		Prompts: texts,
	})
	if err != nil {
		return nil, err
	}

	if len(resp.Embeddings) != len(texts) {
		return nil, fmt.Errorf("expected %d embeddings, got %d", len(texts), len(resp.Embeddings))
	}

	embeddings := make([][]float32, len(texts))
	for i, emb := range resp.Embeddings {
		embeddings[i] = e.truncate(emb)
	}

	return embeddings, nil
}

func (e *Embedder) EmbedQuery(ctx context.Context, query string) ([]float32, error) {
	task := "Given a customer support question, retrieve relevant appliance repair documents"
	instruct := wrapWithInstruct(task, strings.TrimSpace(query))

	slog.Debug("Embedding query with instruct", "task", task, "query", query)

	embed, err := e.client.Generate(ctx, Request{
		Model:  e.model,
		Prompt: instruct,
	})
	if err != nil {
		return nil, err
	}

	return e.truncate(embed.Embedding), nil
}

func (e *Embedder) truncate(embedding []float32) []float32 {
	if e.maxLength != nil && len(embedding) > *e.maxLength {
		return embedding[:*e.maxLength]
	}
	return embedding
}

func wrapWithInstruct(task, query string) string {
	return fmt.Sprintf("Instruct: %s\nQuery:%s", task, query)
}

package grader

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parthunter/internal/llm"
)

type llmFunc func(ctx context.Context, req llm.ChatRequest) (*llm.ChatResponse, error)

func (f llmFunc) CreateChatCompletion(ctx context.Context, req llm.ChatRequest) (*llm.ChatResponse, error) {
	return f(ctx, req)
}

func respond(content string) *llm.ChatResponse {
	return &llm.ChatResponse{
		Choices: []llm.Choice{
			{Message: llm.Message{Role: llm.RoleAssistant, Content: content}},
		},
	}
}

func TestGrade_IncludesAboveThreshold(t *testing.T) {
	g := NewGrader(llmFunc(func(ctx context.Context, req llm.ChatRequest) (*llm.ChatResponse, error) {
		return respond(`{"confidence_score": 0.9}`), nil
	}), "test-model")

	j := g.Grade(context.Background(), "ice maker not working", "repair doc")

	assert.True(t, j.Included)
	assert.Equal(t, 0.9, j.Confidence)
	assert.Equal(t, "repair doc", j.Document)
}

func TestGrade_ExcludesBelowThreshold(t *testing.T) {
	g := NewGrader(llmFunc(func(ctx context.Context, req llm.ChatRequest) (*llm.ChatResponse, error) {
		return respond(`{"confidence_score": 0.3}`), nil
	}), "test-model")

	j := g.Grade(context.Background(), "q", "doc")

	assert.False(t, j.Included)
	assert.Equal(t, 0.3, j.Confidence)
}

func TestGrade_ExcludesExactlyAtThreshold(t *testing.T) {
	g := NewGrader(llmFunc(func(ctx context.Context, req llm.ChatRequest) (*llm.ChatResponse, error) {
		return respond(`{"confidence_score": 0.5}`), nil
	}), "test-model")

	j := g.Grade(context.Background(), "q", "doc")

	assert.False(t, j.Included)
	assert.Equal(t, 0.5, j.Confidence)
}

func TestGrade_StripsCodeFences(t *testing.T) {
	g := NewGrader(llmFunc(func(ctx context.Context, req llm.ChatRequest) (*llm.ChatResponse, error) {
		return respond("```json\n{\"confidence_score\": 0.8}\n```"), nil
	}), "test-model")

	j := g.Grade(context.Background(), "q", "doc")

	assert.True(t, j.Included)
	assert.Equal(t, 0.8, j.Confidence)
}

func TestGrade_MalformedJSONDefaultsToInclude(t *testing.T) {
	g := NewGrader(llmFunc(func(ctx context.Context, req llm.ChatRequest) (*llm.ChatResponse, error) {
		return respond("definitely relevant!"), nil
	}), "test-model")

	j := g.Grade(context.Background(), "q", "doc")

	assert.True(t, j.Included)
	assert.Equal(t, 0.6, j.Confidence)
}

func TestGrade_MissingFieldDefaultsToInclude(t *testing.T) {
	g := NewGrader(llmFunc(func(ctx context.Context, req llm.ChatRequest) (*llm.ChatResponse, error) {
		return respond(`{"score": 0.1}`), nil
	}), "test-model")

	j := g.Grade(context.Background(), "q", "doc")

	assert.True(t, j.Included)
	assert.Equal(t, 0.6, j.Confidence)
}

func TestGrade_TransportErrorDefaultsToInclude(t *testing.T) {
	g := NewGrader(llmFunc(func(ctx context.Context, req llm.ChatRequest) (*llm.ChatResponse, error) {
		return nil, errors.New("connection refused")
	}), "test-model")

	j := g.Grade(context.Background(), "q", "doc")

	assert.True(t, j.Included)
	assert.Equal(t, 0.6, j.Confidence)
}

func TestGrade_TimeoutDefaultsToInclude(t *testing.T) {
	g := NewGrader(llmFunc(func(ctx context.Context, req llm.ChatRequest) (*llm.ChatResponse, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}), "test-model", WithTimeout(10*time.Millisecond))

	j := g.Grade(context.Background(), "q", "doc")

	assert.True(t, j.Included)
	assert.Equal(t, 0.6, j.Confidence)
}

func TestGrade_RequestShape(t *testing.T) {
	var captured llm.ChatRequest
	g := NewGrader(llmFunc(func(ctx context.Context, req llm.ChatRequest) (*llm.ChatResponse, error) {
		captured = req
		return respond(`{"confidence_score": 1}`), nil
	}), "test-model")

	g.Grade(context.Background(), "my question", "my document")

	assert.Equal(t, "test-model", captured.Model)
	assert.Equal(t, 0.1, captured.Temperature)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, llm.RoleSystem, captured.Messages[0].Role)
	assert.Contains(t, captured.Messages[1].Content, "my question")
	assert.Contains(t, captured.Messages[1].Content, "my document")
}

func TestStripCodeFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripCodeFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFences("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFences(`{"a":1}`))
}

package grader

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"parthunter/internal/domain"
	"parthunter/internal/llm"
)

const (
	// Grading is an optimization, not a correctness gate: on timeout or any
	// other failure the document is kept with this confidence.
	fallbackConfidence = 0.6

	// Strict threshold: exactly 0.5 is excluded.
	relevanceThreshold = 0.5

	defaultTimeout = 10 * time.Second

	// Low temperature to favor deterministic, well-formed JSON.
	gradingTemperature = 0.1
)

const systemPrompt = `You are a helpful assistant that grades the relevance of documents to a question.
You must respond with a JSON object containing:
- "confidence_score": number between 0 and 1 (0 = not relevant, 1 = very relevant)

Example response: {"confidence_score": 0.85}`

// Grader scores a single document's relevance to a query via a hosted
// language model.
type Grader struct {
	client  llm.Client
	model   string
	timeout time.Duration
}

type Option func(*Grader)

func WithTimeout(d time.Duration) Option {
	return func(g *Grader) {
		g.timeout = d
	}
}

func NewGrader(client llm.Client, model string, opts ...Option) *Grader {
	g := &Grader{
		client:  client,
		model:   model,
		timeout: defaultTimeout,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Grade asks the model for a confidence score in [0,1] and decides inclusion.
// It never fails: timeouts, transport errors, and malformed responses all
// collapse into the default inclusion judgment.
func (g *Grader) Grade(ctx context.Context, query, document string) domain.Judgment {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.CreateChatCompletion(ctx, llm.ChatRequest{
		Model:       g.model,
		Temperature: gradingTemperature,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: systemPrompt},
			{Role: llm.RoleUser, Content: fmt.Sprintf(
				"Question: %s\nDocument: %s\n\nHow relevant is this document to the question? Return only valid JSON with confidence_score, no other text.",
				query, document,
			)},
		},
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			slog.Warn("Timeout checking document relevance")
		} else {
			slog.Error("Error grading document", "error", err)
		}
		return fallbackJudgment(document)
	}

	if len(resp.Choices) == 0 {
		slog.Warn("Grading response has no choices, defaulting to include document")
		return fallbackJudgment(document)
	}

	raw := stripCodeFences(strings.TrimSpace(resp.Choices[0].Message.Content))

	var graded struct {
		ConfidenceScore *float64 `json:"confidence_score"`
	}
	if err := json.Unmarshal([]byte(raw), &graded); err != nil || graded.ConfidenceScore == nil {
		slog.Warn("Failed to parse relevance score, defaulting to include document",
			"error", err, "response", raw)
		return fallbackJudgment(document)
	}

	score := *graded.ConfidenceScore
	return domain.Judgment{
		Document:   document,
		Confidence: score,
		Included:   score > relevanceThreshold,
	}
}

func fallbackJudgment(document string) domain.Judgment {
	return domain.Judgment{
		Document:   document,
		Confidence: fallbackConfidence,
		Included:   true,
	}
}

// stripCodeFences removes a markdown fence wrapper the model may have added
// around the JSON payload. The model is prompted to return raw JSON but is
// not a reliable producer of it.
func stripCodeFences(s string) string {
	if strings.HasPrefix(s, "```json") {
		s = s[len("```json"):]
	}
	if strings.HasPrefix(s, "```") {
		s = s[len("```"):]
	}
	if strings.HasSuffix(s, "```") {
		s = s[:len(s)-len("```")]
	}
	return strings.TrimSpace(s)
}

package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"parthunter/internal/llm"
	"parthunter/internal/tool"
)

const (
	// Bound on tool-calling rounds per query so a looping model cannot hang
	// a request forever.
	defaultMaxRounds = 8

	defaultTemperature = 0.7
)

const systemPrompt = `You are a customer support assistant for an appliance parts store.
You help customers find parts, diagnose appliance problems, and locate repair guides.
Use the available tools to look up parts, repairs, and blog articles before answering.
Only answer questions about appliance parts and repairs; politely decline anything else.
When citing a part, include its part id and product URL when available.`

const introMessage = "Hi! I can help you find appliance parts, troubleshoot problems, " +
	"and look up repair guides. What can I help you with today?"

// ToolCaller is the slice of the tool client the orchestrator needs.
type ToolCaller interface {
	Tools() []tool.Tool
	Call(ctx context.Context, name string, args map[string]any) ([]string, error)
}

// Client orchestrates one conversation: it advertises the connected servers'
// tools to the model and runs the tool-calling loop per query.
type Client struct {
	llm         llm.Client
	model       string
	tools       ToolCaller
	maxRounds   int
	temperature float64

	mu      sync.Mutex
	history []llm.Message
}

type Option func(*Client)

func WithMaxRounds(n int) Option {
	return func(c *Client) {
		c.maxRounds = n
	}
}

func WithTemperature(t float64) Option {
	return func(c *Client) {
		c.temperature = t
	}
}

func NewClient(llmClient llm.Client, model string, tools ToolCaller, opts ...Option) *Client {
	c := &Client{
		llm:         llmClient,
		model:       model,
		tools:       tools,
		maxRounds:   defaultMaxRounds,
		temperature: defaultTemperature,
		history:     []llm.Message{{Role: llm.RoleSystem, Content: systemPrompt}},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// ProcessQuery appends the user message and runs the completion loop until
// the model answers without tool calls.
func (c *Client) ProcessQuery(ctx context.Context, query string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.history = append(c.history, llm.Message{Role: llm.RoleUser, Content: query})
	return c.complete(ctx)
}

// RegenerateResponse discards the last exchange and answers the query again.
func (c *Client) RegenerateResponse(ctx context.Context, query string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.truncateLastExchange()
	c.history = append(c.history, llm.Message{Role: llm.RoleUser, Content: query})
	return c.complete(ctx)
}

// ResetChat clears the conversation and returns the introduction message.
func (c *Client) ResetChat() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.history = []llm.Message{{Role: llm.RoleSystem, Content: systemPrompt}}
	return introMessage
}

func (c *Client) complete(ctx context.Context) (string, error) {
	for round := 0; round < c.maxRounds; round++ {
		resp, err := c.llm.CreateChatCompletion(ctx, llm.ChatRequest{
			Model:       c.model,
			Messages:    c.history,
			Temperature: c.temperature,
			Tools:       c.toolDefs(),
		})
		if err != nil {
			return "", fmt.Errorf("chat completion failed: %w", err)
		}
		if len(resp.Choices) == 0 {
			return "", errors.New("chat completion returned no choices")
		}

		msg := resp.Choices[0].Message
		c.history = append(c.history, msg)

		if len(msg.ToolCalls) == 0 {
			return msg.Content, nil
		}

		for _, call := range msg.ToolCalls {
			c.history = append(c.history, llm.Message{
				Role:       llm.RoleTool,
				ToolCallID: call.ID,
				Content:    strings.Join(c.dispatch(ctx, call), "\n"),
			})
		}
	}

	return "", fmt.Errorf("tool call limit reached after %d rounds", c.maxRounds)
}

// dispatch runs one tool call; failures are reported back to the model as
// text so the conversation can continue.
func (c *Client) dispatch(ctx context.Context, call llm.ToolCall) []string {
	slog.Info("Dispatching tool call", "tool", call.Function.Name)

	var args map[string]any
	if call.Function.Arguments != "" {
		if err := json.Unmarshal([]byte(call.Function.Arguments), &args); err != nil {
			slog.Error("Failed to decode tool arguments", "tool", call.Function.Name, "error", err)
			return []string{fmt.Sprintf("Error calling %s: invalid arguments: %v", call.Function.Name, err)}
		}
	}

	content, err := c.tools.Call(ctx, call.Function.Name, args)
	if err != nil {
		slog.Error("Tool call failed", "tool", call.Function.Name, "error", err)
		return []string{fmt.Sprintf("Error calling %s: %v", call.Function.Name, err)}
	}

	return content
}

// truncateLastExchange drops everything from the last user message onward.
func (c *Client) truncateLastExchange() {
	for i := len(c.history) - 1; i > 0; i-- {
		if c.history[i].Role == llm.RoleUser {
			c.history = c.history[:i]
			return
		}
	}
}

func (c *Client) toolDefs() []llm.ToolDef {
	tools := c.tools.Tools()
	defs := make([]llm.ToolDef, len(tools))
	for i, t := range tools {
		defs[i] = llm.ToolDef{
			Type: "function",
			Function: llm.FunctionDef{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.InputSchema,
			},
		}
	}
	return defs
}

package router

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"parthunter/pkg/sse"
)

// Whole-query deadline; individual tool and grading timeouts are their own.
const defaultQueryTimeout = 120 * time.Second

const timeoutMessage = "The request took too long to process. Please try again with a simpler query."

// Orchestrator is the conversation client behind the web façade.
type Orchestrator interface {
	ProcessQuery(ctx context.Context, query string) (string, error)
	RegenerateResponse(ctx context.Context, query string) (string, error)
	ResetChat() string
}

type ChatRouter struct {
	e       *echo.Echo
	client  Orchestrator
	timeout time.Duration
}

type ChatRouterOption func(*ChatRouter)

func WithQueryTimeout(d time.Duration) ChatRouterOption {
	return func(r *ChatRouter) {
		r.timeout = d
	}
}

func NewChatRouter(e *echo.Echo, client Orchestrator, opts ...ChatRouterOption) *ChatRouter {
	r := &ChatRouter{
		e:       e,
		client:  client,
		timeout: defaultQueryTimeout,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

func (r *ChatRouter) Bind() {
	r.e.POST("/api/chat", r.chatHandler)
	r.e.POST("/api/regenerate", r.regenerateHandler)
	r.e.POST("/api/reset", r.resetHandler)
}

type chatRequest struct {
	Query string `json:"query"`
}

func (r *ChatRouter) chatHandler(c echo.Context) error {
	return r.stream(c, r.client.ProcessQuery)
}

func (r *ChatRouter) regenerateHandler(c echo.Context) error {
	return r.stream(c, r.client.RegenerateResponse)
}

// stream answers a query as a single server-sent event: either
// {"response": ...} or {"error": ...}. The stream itself never fails the
// request once headers are out.
func (r *ChatRouter) stream(c echo.Context, answer func(ctx context.Context, query string) (string, error)) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil || req.Query == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Missing query"})
	}

	writer, err := sse.NewWriter(c.Response())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "streaming unsupported"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), r.timeout)
	defer cancel()

	response, err := answer(ctx, req.Query)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			slog.Error("Timeout processing query")
			return writer.Send(map[string]string{"error": timeoutMessage})
		}
		slog.Error("Error in chat endpoint", "error", err)
		return writer.Send(map[string]string{"error": "Error processing message: " + err.Error()})
	}

	return writer.Send(map[string]string{"response": response})
}

func (r *ChatRouter) resetHandler(c echo.Context) error {
	intro := r.client.ResetChat()
	return c.JSON(http.StatusOK, map[string]string{
		"message":      "Chat history has been reset",
		"introduction": intro,
	})
}

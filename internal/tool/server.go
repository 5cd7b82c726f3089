package tool

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"parthunter/internal/apperr"
)

// CallRequest is the wire form of a tool invocation.
type CallRequest struct {
	Arguments map[string]any `json:"arguments"`
}

// CallResponse always carries text content. Handler failures are rendered
// into content with IsError set; the boundary never raises.
type CallResponse struct {
	Content []string `json:"content"`
	IsError bool     `json:"is_error,omitempty"`
}

type ListResponse struct {
	Tools []Tool `json:"tools"`
}

// Router binds a tool registry to an echo server.
type Router struct {
	e        *echo.Echo
	registry *Registry
}

func NewRouter(e *echo.Echo, registry *Registry) *Router {
	return &Router{
		e:        e,
		registry: registry,
	}
}

func (r *Router) Bind() {
	r.e.GET("/tools", r.listHandler)
	r.e.POST("/tools/:name", r.callHandler)
}

func (r *Router) listHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, ListResponse{Tools: r.registry.List()})
}

func (r *Router) callHandler(c echo.Context) error {
	name := c.Param("name")

	t, ok := r.registry.Get(name)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "unknown tool: " + name})
	}

	var req CallRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	content, err := t.Handler(c.Request().Context(), req.Arguments)
	if err != nil {
		slog.Error("Tool call failed", "tool", name, "error", err)
		return c.JSON(http.StatusOK, CallResponse{
			Content: []string{"Error calling " + name + ": " + apperr.Describe(err)},
			IsError: true,
		})
	}

	return c.JSON(http.StatusOK, CallResponse{Content: content})
}

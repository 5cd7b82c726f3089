package tool

import (
	"context"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoTool(name string) Tool {
	return Tool{
		Name:        name,
		Description: "echoes its query argument",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"query": map[string]any{"type": "string"},
			},
		},
		Handler: func(ctx context.Context, args map[string]any) ([]string, error) {
			query, _ := args["query"].(string)
			return []string{fmt.Sprintf("%s: %s", name, query)}, nil
		},
	}
}

func newTestServer(t *testing.T, tools ...Tool) *httptest.Server {
	t.Helper()

	registry := NewRegistry()
	for _, tl := range tools {
		require.NoError(t, registry.Register(tl))
	}

	e := echo.New()
	NewRouter(e, registry).Bind()

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return srv
}

func TestRegistry_RejectsDuplicateNames(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(echoTool("searchParts")))

	err := registry.Register(echoTool("searchParts"))
	assert.ErrorContains(t, err, "already registered")
}

func TestRegistry_ListPreservesRegistrationOrder(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(echoTool("getPart")))
	require.NoError(t, registry.Register(echoTool("searchParts")))
	require.NoError(t, registry.Register(echoTool("searchRepairs")))

	names := make([]string, 0, 3)
	for _, tl := range registry.List() {
		names = append(names, tl.Name)
	}
	assert.Equal(t, []string{"getPart", "searchParts", "searchRepairs"}, names)
}

func TestClient_ListAndCall(t *testing.T) {
	srv := newTestServer(t, echoTool("searchParts"))

	client, err := NewClient("parts_db", srv.URL)
	require.NoError(t, err)

	tools, err := client.ListTools(context.Background())
	require.NoError(t, err)
	require.Len(t, tools, 1)
	assert.Equal(t, "searchParts", tools[0].Name)
	assert.NotEmpty(t, tools[0].Description)

	content, err := client.Call(context.Background(), "searchParts", map[string]any{"query": "ice maker"})
	require.NoError(t, err)
	assert.Equal(t, []string{"searchParts: ice maker"}, content)
}

func TestClient_UnknownToolIsAnError(t *testing.T) {
	srv := newTestServer(t, echoTool("searchParts"))

	client, err := NewClient("parts_db", srv.URL)
	require.NoError(t, err)

	_, err = client.Call(context.Background(), "nope", nil)
	assert.ErrorContains(t, err, "unexpected status code: 404")
}

func TestCall_HandlerErrorBecomesErrorContent(t *testing.T) {
	failing := Tool{
		Name:        "searchParts",
		Description: "always fails",
		Handler: func(ctx context.Context, args map[string]any) ([]string, error) {
			return nil, errors.New("database down")
		},
	}
	srv := newTestServer(t, failing)

	client, err := NewClient("parts_db", srv.URL)
	require.NoError(t, err)

	content, err := client.Call(context.Background(), "searchParts", nil)
	require.NoError(t, err)
	require.Len(t, content, 1)
	assert.Contains(t, content[0], "Error calling searchParts:")
	assert.Contains(t, content[0], "database down")
}

func TestMultiClient_RoutesByToolName(t *testing.T) {
	ragSrv := newTestServer(t, echoTool("searchRAG"))
	partsSrv := newTestServer(t, echoTool("getPart"), echoTool("searchParts"))

	m := NewMultiClient()
	require.NoError(t, m.Connect(context.Background(), "rag", ragSrv.URL))
	require.NoError(t, m.Connect(context.Background(), "parts_db", partsSrv.URL))

	require.Len(t, m.Tools(), 3)

	content, err := m.Call(context.Background(), "searchRAG", map[string]any{"query": "q"})
	require.NoError(t, err)
	assert.Equal(t, []string{"searchRAG: q"}, content)

	content, err = m.Call(context.Background(), "getPart", map[string]any{"query": "PS123"})
	require.NoError(t, err)
	assert.Equal(t, []string{"getPart: PS123"}, content)

	_, err = m.Call(context.Background(), "unknown", nil)
	assert.ErrorContains(t, err, "unknown tool")
}

func TestMultiClient_RejectsDuplicateToolAcrossServers(t *testing.T) {
	first := newTestServer(t, echoTool("searchParts"))
	second := newTestServer(t, echoTool("searchParts"))

	m := NewMultiClient()
	require.NoError(t, m.Connect(context.Background(), "a", first.URL))

	err := m.Connect(context.Background(), "b", second.URL)
	assert.ErrorContains(t, err, "more than one server")
}

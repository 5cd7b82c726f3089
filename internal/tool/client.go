package tool

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

const defaultClientTimeout = 130 * time.Second

type ClientOption func(*Client)

// Client talks to one tool server over HTTP.
type Client struct {
	name string
	base url.URL
	http *http.Client
}

func NewClient(name, baseUrl string, opts ...ClientOption) (*Client, error) {
	base, err := url.Parse(baseUrl)
	if err != nil {
		return nil, err
	}

	c := &Client{
		name: name,
		base: *base,
		http: &http.Client{
			Timeout: defaultClientTimeout,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func WithClientHttp(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.http = httpClient
	}
}

func (c *Client) Name() string {
	return c.name
}

func (c *Client) ListTools(ctx context.Context) ([]Tool, error) {
	var resp ListResponse
	if err := c.do(ctx, http.MethodGet, "/tools", nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to list tools from %s: %w", c.name, err)
	}
	return resp.Tools, nil
}

// Call invokes a tool and returns its text content. IsError responses are
// still content per the boundary contract.
func (c *Client) Call(ctx context.Context, name string, args map[string]any) ([]string, error) {
	var resp CallResponse
	if err := c.do(ctx, http.MethodPost, "/tools/"+name, CallRequest{Arguments: args}, &resp); err != nil {
		return nil, fmt.Errorf("failed to call tool %s on %s: %w", name, c.name, err)
	}

	if resp.IsError {
		slog.Warn("Tool returned error content", "server", c.name, "tool", name)
	}

	return resp.Content, nil
}

func (c *Client) do(ctx context.Context, method, path string, reqData, respData any) error {
	var body io.Reader
	if reqData != nil {
		reqDataBytes, err := json.Marshal(reqData)
		if err != nil {
			return err
		}
		body = bytes.NewReader(reqDataBytes)
	}

	reqURL := c.base.JoinPath(path)
	request, err := http.NewRequestWithContext(ctx, method, reqURL.String(), body)
	if err != nil {
		return err
	}

	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(request)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, string(respBody))
	}

	if err := json.Unmarshal(respBody, respData); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}

	return nil
}

// MultiClient aggregates several tool servers and routes calls by tool name.
type MultiClient struct {
	clients []*Client
	byTool  map[string]*Client
	tools   []Tool
}

func NewMultiClient() *MultiClient {
	return &MultiClient{
		byTool: make(map[string]*Client),
	}
}

// Connect registers a tool server and pulls its tool list.
func (m *MultiClient) Connect(ctx context.Context, name, baseUrl string) error {
	client, err := NewClient(name, baseUrl)
	if err != nil {
		return err
	}

	tools, err := client.ListTools(ctx)
	if err != nil {
		return err
	}

	for _, t := range tools {
		if _, exists := m.byTool[t.Name]; exists {
			return fmt.Errorf("tool %s exposed by more than one server", t.Name)
		}
		m.byTool[t.Name] = client
		m.tools = append(m.tools, t)
	}

	m.clients = append(m.clients, client)
	slog.Info("Connected to tool server", "server", name, "tools", len(tools))
	return nil
}

func (m *MultiClient) Tools() []Tool {
	return m.tools
}

func (m *MultiClient) Call(ctx context.Context, name string, args map[string]any) ([]string, error) {
	client, ok := m.byTool[name]
	if !ok {
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
	return client.Call(ctx, name, args)
}

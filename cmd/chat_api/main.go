package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sethvargo/go-retry"

	"parthunter/internal/chat"
	"parthunter/internal/llm"
	"parthunter/internal/router"
	"parthunter/internal/server"
	"parthunter/internal/tool"
	pkgserver "parthunter/pkg/server"
)

func main() {
	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}

	sCfg, err := server.LoadConfig("8080")
	if err != nil {
		slog.Error("Failed to load server config", "error", err)
		os.Exit(1)
	}

	llmClient, err := llm.NewHTTPClient(cfg.LLM.BaseURL, cfg.LLM.APIKey)
	if err != nil {
		slog.Error("Failed to create LLM client", "error", err)
		os.Exit(1)
	}

	tools, err := connectToolServers(cfg.ToolServers)
	if err != nil {
		slog.Error("Failed to connect to tool servers", "error", err)
		os.Exit(1)
	}

	client := chat.NewClient(llmClient, cfg.LLM.Model, tools)

	s := server.NewServer(echo.New(), sCfg).
		SetupHealthChecks(pkgserver.NewOkHealthChecker())

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "Part Hunter chat API is running")
	})

	router.NewChatRouter(s.Echo, client).Bind()

	slog.Info("Starting chat API", "port", sCfg.Port)
	if err := s.Start(); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}

// connectToolServers retries each connection with backoff; tool servers may
// still be coming up alongside this process.
func connectToolServers(servers []ToolServer) (*tool.MultiClient, error) {
	clients := tool.NewMultiClient()

	for _, ts := range servers {
		backoff := retry.WithMaxRetries(5, retry.NewExponential(500*time.Millisecond))

		err := retry.Do(context.Background(), backoff, func(ctx context.Context) error {
			if err := clients.Connect(ctx, ts.Name, ts.URL); err != nil {
				slog.Warn("Tool server not ready, retrying", "server", ts.Name, "error", err)
				return retry.RetryableError(err)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return clients, nil
}

package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"

	"parthunter/internal/server"
	"parthunter/internal/storage/pg"
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

	sCfg, err := server.LoadConfig("8082")
	if err != nil {
		slog.Error("Failed to load server config", "error", err)
		os.Exit(1)
	}

	pool, err := pg.NewConnectionPool(context.Background(), *cfg.Pool)
	if err != nil {
		slog.Error("Failed to connect to Postgres", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	registry := tool.NewRegistry()
	for _, t := range catalogTools(pg.NewReader(pool)) {
		if err := registry.Register(t); err != nil {
			slog.Error("Failed to register tool", "tool", t.Name, "error", err)
			os.Exit(1)
		}
	}

	s := server.NewServer(echo.New(), sCfg).
		SetupHealthChecks(pkgserver.NewPingHealthChecker(pool.Ping))

	tool.NewRouter(s.Echo, registry).Bind()

	slog.Info("Starting parts DB tool server", "port", sCfg.Port)
	if err := s.Start(); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}

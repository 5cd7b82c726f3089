package main

import (
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"

	"parthunter/internal/docstore/factory"
	"parthunter/internal/domain"
	"parthunter/internal/grader"
	"parthunter/internal/llm"
	"parthunter/internal/rag"
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

	sCfg, err := server.LoadConfig("8081")
	if err != nil {
		slog.Error("Failed to load server config", "error", err)
		os.Exit(1)
	}

	stores, err := factory.NewSearchers(cfg.Docstore, domain.Tables())
	if err != nil {
		slog.Error("Failed to create document stores", "error", err)
		os.Exit(1)
	}

	llmClient, err := llm.NewHTTPClient(cfg.LLM.BaseURL, cfg.LLM.APIKey)
	if err != nil {
		slog.Error("Failed to create LLM client", "error", err)
		os.Exit(1)
	}

	filter := rag.NewFilter(stores, grader.NewGrader(llmClient, cfg.LLM.Model))

	registry := tool.NewRegistry()
	if err := registry.Register(rag.SearchTool(filter)); err != nil {
		slog.Error("Failed to register searchRAG tool", "error", err)
		os.Exit(1)
	}

	s := server.NewServer(echo.New(), sCfg).
		SetupHealthChecks(pkgserver.NewOkHealthChecker())

	tool.NewRouter(s.Echo, registry).Bind()

	slog.Info("Starting RAG tool server", "port", sCfg.Port, "docstore", cfg.Docstore.Type)
	if err := s.Start(); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}

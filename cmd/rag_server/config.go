package main

import (
	"log/slog"
	"os"

	"parthunter/internal/docstore"
	"parthunter/internal/llm"
	"parthunter/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type RagServerConfig struct {
	Docstore *docstore.Config
	LLM      *llm.Config
}

func (as *AppConfig) Load() (*RagServerConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/rag_server/.env")
	if err != nil {
		slog.Info("Failed to load .env, continuing with existing environment variables", "error", err)
	}

	docstoreCfg, err := docstore.LoadEnv()
	if err != nil {
		return nil, err
	}

	llmCfg, err := llm.LoadConfigFromEnv()
	if err != nil {
		return nil, err
	}

	return &RagServerConfig{
		Docstore: docstoreCfg,
		LLM:      llmCfg,
	}, nil
}

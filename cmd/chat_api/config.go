package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

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

type ToolServer struct {
	Name string
	URL  string
}

type ChatAPIConfig struct {
	LLM         *llm.Config
	ToolServers []ToolServer
}

func (as *AppConfig) Load() (*ChatAPIConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/chat_api/.env")
	if err != nil {
		slog.Info("Failed to load .env, continuing with existing environment variables", "error", err)
	}

	llmCfg, err := llm.LoadConfigFromEnv()
	if err != nil {
		return nil, err
	}

	servers, err := parseToolServers(os.Getenv("TOOL_SERVERS"))
	if err != nil {
		return nil, err
	}

	return &ChatAPIConfig{
		LLM:         llmCfg,
		ToolServers: servers,
	}, nil
}

// parseToolServers reads "rag=http://localhost:8081,parts_db=http://localhost:8082".
func parseToolServers(raw string) ([]ToolServer, error) {
	if raw == "" {
		return nil, fmt.Errorf("TOOL_SERVERS environment variable not set")
	}

	var servers []ToolServer
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		name, url, ok := strings.Cut(entry, "=")
		if !ok || name == "" || url == "" {
			return nil, fmt.Errorf("invalid TOOL_SERVERS entry: %q", entry)
		}
		servers = append(servers, ToolServer{Name: name, URL: url})
	}

	if len(servers) == 0 {
		return nil, fmt.Errorf("TOOL_SERVERS has no entries")
	}
	return servers, nil
}

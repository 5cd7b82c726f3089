package main

import (
	"log/slog"
	"os"

	"parthunter/internal/storage/pg"
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

type PartsDBConfig struct {
	Pool *pg.PoolConfig
}

func (as *AppConfig) Load() (*PartsDBConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/parts_db_server/.env")
	if err != nil {
		slog.Info("Failed to load .env, continuing with existing environment variables", "error", err)
	}

	poolCfg, err := pg.LoadPoolConfigFromEnv()
	if err != nil {
		return nil, err
	}

	return &PartsDBConfig{Pool: poolCfg}, nil
}

package embedding

import (
	"errors"
	"os"
	"strconv"
)

type Config struct {
	Model     string
	MaxLength *int
	BaseURL   string
}

func LoadConfigFromEnv() (*Config, error) {
	model := os.Getenv("EMBEDDING_MODEL")
	maxLen := os.Getenv("EMBEDDING_MAX_LENGTH")
	baseUrl := os.Getenv("EMBEDDING_BASE_URL")

	if baseUrl == "" {
		return nil, errors.New("EMBEDDING_BASE_URL environment variable not set")
	}

	return &Config{
		Model: model,
		MaxLength: func() *int {
			if maxLen == "" {
				return nil
			}
			val, err := strconv.Atoi(maxLen)
			if err != nil {
				return nil
			}
			return &val
		}(),
		BaseURL: baseUrl,
	}, nil
}

// NewEmbedderFromConfig wires the Ollama client and embedder options.
func NewEmbedderFromConfig(cfg *Config) (*Embedder, error) {
	client, err := NewOllamaClient(cfg.BaseURL)
	if err != nil {
		return nil, err
	}

	var opts []EmbedderOption
	if cfg.Model != "" {
		opts = append(opts, WithModel(cfg.Model))
	}
	if cfg.MaxLength != nil {
		opts = append(opts, WithMaxLength(*cfg.MaxLength))
	}

	return NewEmbedder(client, opts...), nil
}

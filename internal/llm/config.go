package llm

import (
	"errors"
	"os"

	"parthunter/pkg/stringsutil"
)

const (
	defaultBaseURL = "https://api.deepseek.com"
	defaultModel   = "deepseek-chat"
)

type Config struct {
	BaseURL string
	APIKey  string
	Model   string
}

func LoadConfigFromEnv() (*Config, error) {
	apiKey := stringsutil.FirstNonEmpty(os.Getenv("LLM_API_KEY"), os.Getenv("DEEPSEEK_API_KEY"))
	if apiKey == "" {
		return nil, errors.New("LLM_API_KEY environment variable not set")
	}

	return &Config{
		BaseURL: stringsutil.FirstNonEmpty(os.Getenv("LLM_BASE_URL"), defaultBaseURL),
		APIKey:  apiKey,
		Model:   stringsutil.FirstNonEmpty(os.Getenv("LLM_MODEL"), defaultModel),
	}, nil
}

package server

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"parthunter/pkg/stringsutil"
)

type Config struct {
	Port        string
	CorsOrigins []string
}

// LoadConfig reads the HTTP server settings from the environment. The caller
// is expected to have loaded any .env file already.
func LoadConfig(defaultPort string) (*Config, error) {
	port := stringsutil.FirstNonEmpty(os.Getenv("PORT"), defaultPort, "8080")

	if err := validatePort(port); err != nil {
		return nil, fmt.Errorf("invalid port: %w", err)
	}

	var origins []string
	corsOriginsEnv := os.Getenv("CORS_ORIGINS")
	if corsOriginsEnv != "" {
		origins = strings.Split(corsOriginsEnv, ",")
		for i, origin := range origins {
			origins[i] = strings.TrimSpace(origin)
		}
		origins = stringsutil.RemoveEmptyStrings(origins)
	}

	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return &Config{
		Port:        port,
		CorsOrigins: origins,
	}, nil
}

func validatePort(port string) error {
	portNum, err := strconv.Atoi(port)

	if err != nil {
		return errors.New("port must be a number")
	}

	if portNum < 1 || portNum > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}

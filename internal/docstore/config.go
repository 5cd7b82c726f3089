package docstore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"parthunter/internal/domain"
	"parthunter/pkg/stringsutil"
)

type Type string

const (
	Vector Type = "vector"
	ES     Type = "es"
	InMem  Type = "inmem"
)

type Config struct {
	Type Type

	// Path is the directory holding per-table vector store files.
	Path string

	// Elasticsearch settings.
	Addresses   []string
	Username    string
	Password    string
	IndexPrefix string
}

func LoadEnv() (*Config, error) {
	storeType := Type(stringsutil.FirstNonEmpty(os.Getenv("DOCSTORE_TYPE"), string(Vector)))

	cfg := &Config{
		Type:        storeType,
		Path:        stringsutil.FirstNonEmpty(os.Getenv("DOCSTORE_PATH"), "data/vector_stores"),
		Username:    os.Getenv("DOCSTORE_ES_USERNAME"),
		Password:    os.Getenv("DOCSTORE_ES_PASSWORD"),
		IndexPrefix: stringsutil.FirstNonEmpty(os.Getenv("DOCSTORE_ES_INDEX_PREFIX"), "rag"),
	}

	if addrs := os.Getenv("DOCSTORE_ES_ADDRESSES"); addrs != "" {
		for _, a := range strings.Split(addrs, ",") {
			if a = strings.TrimSpace(a); a != "" {
				cfg.Addresses = append(cfg.Addresses, a)
			}
		}
	}

	switch storeType {
	case Vector, InMem:
	case ES:
		if len(cfg.Addresses) == 0 {
			return nil, fmt.Errorf("DOCSTORE_ES_ADDRESSES environment variable not set")
		}
	default:
		return nil, fmt.Errorf("unsupported docstore type: %s", storeType)
	}

	return cfg, nil
}

// VectorPath resolves the bbolt file for one table's vector store.
func (c *Config) VectorPath(table domain.Table) string {
	return filepath.Join(c.Path, table.String()+".db")
}

// IndexName resolves the Elasticsearch index for one table.
func (c *Config) IndexName(table domain.Table) string {
	return c.IndexPrefix + "_" + table.String()
}

package factory

import (
	"fmt"

	"parthunter/internal/docstore"
	"parthunter/internal/docstore/es"
	"parthunter/internal/docstore/memory"
	"parthunter/internal/docstore/vector"
	"parthunter/internal/domain"
	"parthunter/internal/embedding"
)

// NewStore creates one table's document store from config.
func NewStore(cfg *docstore.Config, table domain.Table) (docstore.Store, error) {
	switch cfg.Type {
	case docstore.Vector:
		embCfg, err := embedding.LoadConfigFromEnv()
		if err != nil {
			return nil, fmt.Errorf("vector store requires embedding config: %w", err)
		}

		embedder, err := embedding.NewEmbedderFromConfig(embCfg)
		if err != nil {
			return nil, err
		}

		return vector.NewStore(cfg.VectorPath(table), embedder)

	case docstore.ES:
		return es.NewStore(es.ClientConfig{
			Addresses: cfg.Addresses,
			IndexName: cfg.IndexName(table),
			Username:  cfg.Username,
			Password:  cfg.Password,
		})

	case docstore.InMem:
		return memory.NewStore(), nil

	default:
		return nil, fmt.Errorf("unsupported docstore type: %s", cfg.Type)
	}
}

// NewSearchers creates the per-table searcher map used by the relevance filter.
func NewSearchers(cfg *docstore.Config, tables []domain.Table) (map[domain.Table]docstore.Searcher, error) {
	searchers := make(map[domain.Table]docstore.Searcher, len(tables))
	for _, table := range tables {
		store, err := NewStore(cfg, table)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s store for table %s: %w", cfg.Type, table, err)
		}
		searchers[table] = store
	}
	return searchers, nil
}

package es

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"

	"parthunter/internal/domain"
)

// Store backs a document store with an Elasticsearch index, one index per
// table, ranked by BM25 over chunk content.
type Store struct {
	client    *elasticsearch.TypedClient
	indexName string
}

type chunkDoc struct {
	Content string `json:"content"`
}

func NewStore(config ClientConfig) (*Store, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	return &Store{
		client:    client,
		indexName: config.IndexName,
	}, nil
}

func (s *Store) Search(ctx context.Context, query string, k int) ([]string, error) {
	slog.Debug("Executing es match search", "index", s.indexName, "query", query, "k", k)

	res, err := s.client.Search().
		Index(s.indexName).
		Query(&types.Query{
			Match: map[string]types.MatchQuery{
				"content": {Query: query},
			},
		}).
		Size(k).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("es search failed: %w", err)
	}

	results := make([]string, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		var doc chunkDoc
		if err := json.Unmarshal(hit.Source_, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode es hit: %w", err)
		}
		results = append(results, doc.Content)
	}

	return results, nil
}

func (s *Store) Index(ctx context.Context, chunks []domain.Chunk) error {
	for _, chunk := range chunks {
		_, err := s.client.Index(s.indexName).
			Id(chunk.ID.String()).
			Request(chunkDoc{Content: chunk.Content}).
			Do(ctx)
		if err != nil {
			return fmt.Errorf("failed to index chunk %s: %w", chunk.ID, err)
		}
	}

	slog.Info("Indexed chunks", "index", s.indexName, "count", len(chunks))
	return nil
}

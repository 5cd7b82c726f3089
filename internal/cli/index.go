package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"parthunter/internal/docstore"
	"parthunter/internal/docstore/factory"
	"parthunter/internal/domain"
	"parthunter/internal/ingest"
	"parthunter/internal/ingest/reader"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Build the repairs and blogs document stores from CSVs",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		manifest, err := loadManifest()
		if err != nil {
			return err
		}

		cfg, err := docstore.LoadEnv()
		if err != nil {
			return err
		}

		if cfg.Type == docstore.Vector {
			if err := os.MkdirAll(cfg.Path, 0755); err != nil {
				return fmt.Errorf("failed to create vector store dir: %w", err)
			}
		}

		for _, ds := range manifest.Datasets {
			table, err := domain.ParseTable(ds.Table)
			if err != nil {
				slog.Info("Skipping dataset without a document store target", "table", ds.Table)
				continue
			}

			if err := indexDataset(ctx, cfg, table, ds.Path); err != nil {
				return err
			}
		}

		slog.Info("Indexing completed successfully")
		return nil
	},
}

func indexDataset(ctx context.Context, cfg *docstore.Config, table domain.Table, path string) error {
	slog.Info("Indexing dataset", "table", table, "path", path, "store", cfg.Type)

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	csvReader := reader.NewCSVReader(file)
	records, err := csvReader.Read()
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	store, err := factory.NewStore(cfg, table)
	if err != nil {
		return err
	}
	if closer, ok := store.(io.Closer); ok {
		defer closer.Close()
	}

	chunks := ingest.ChunksFromRecords(csvReader.Headers(), records)
	if err := store.Index(ctx, chunks); err != nil {
		return fmt.Errorf("failed to index %s: %w", table, err)
	}

	slog.Info("Indexed dataset", "table", table, "chunks", len(chunks))
	return nil
}

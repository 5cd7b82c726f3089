package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"parthunter/internal/ingest"
	"parthunter/internal/ingest/reader"
	"parthunter/internal/storage/pg"
)

var sqlCmd = &cobra.Command{
	Use:   "sql",
	Short: "Import the parts and repairs CSVs into Postgres",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		manifest, err := loadManifest()
		if err != nil {
			return err
		}

		poolCfg, err := pg.LoadPoolConfigFromEnv()
		if err != nil {
			return err
		}

		pool, err := pg.NewConnectionPool(ctx, *poolCfg)
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := pg.EnsureSchema(ctx, pool); err != nil {
			return err
		}

		for _, ds := range manifest.Datasets {
			switch ds.Table {
			case "parts":
				if err := importDataset(ctx, pool, ds, ingest.MapPart, pg.NewPartStorer(pool)); err != nil {
					return err
				}
			case "repairs":
				if err := importDataset(ctx, pool, ds, ingest.MapRepair, pg.NewRepairStorer(pool)); err != nil {
					return err
				}
			default:
				slog.Info("Skipping dataset without a SQL target", "table", ds.Table)
			}
		}

		slog.Info("Import completed successfully")
		return nil
	},
}

func importDataset[T any](
	ctx context.Context,
	pool *pg.ConnectionPool,
	ds ingest.Dataset,
	mapFn func(reader.Record) T,
	storer ingest.BulkStorer[T],
) error {
	slog.Info("Importing dataset", "table", ds.Table, "path", ds.Path)

	file, err := os.Open(ds.Path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", ds.Path, err)
	}
	defer file.Close()

	// Fresh load replaces the previous catalog.
	if err := pg.Truncate(ctx, pool, ds.Table); err != nil {
		return err
	}

	pipeline := ingest.NewPipeline(reader.NewCSVReader(file), mapFn, storer)
	return pipeline.Run(ctx)
}

func loadManifest() (*ingest.Manifest, error) {
	file, err := os.Open(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest: %w", err)
	}
	defer file.Close()

	return ingest.LoadManifest(file)
}

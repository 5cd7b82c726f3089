package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"parthunter/pkg/config/env"
)

var manifestPath string

var rootCmd = &cobra.Command{
	Use:   "data_import",
	Short: "Bulk-load the appliance parts catalogs",
	Long: `Loads the CSV catalogs into their backing stores:
  sql    loads parts and repairs into Postgres
  index  builds the repairs and blogs document stores`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if err := env.LoadDotEnv(os.Getenv("ENV"), "cmd/data_import/.env"); err != nil {
			slog.Info("Failed to load .env, continuing with existing environment variables", "error", err)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&manifestPath, "manifest", "data/manifest.yaml", "dataset manifest file")
	rootCmd.AddCommand(sqlCmd)
	rootCmd.AddCommand(indexCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

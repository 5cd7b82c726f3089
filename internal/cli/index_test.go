package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"parthunter/internal/docstore"
	"parthunter/internal/domain"
)

func TestIndexDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "repairs.csv")
	csvData := "Product,symptom,description\n" +
		"Refrigerator,Not making ice,Check the water inlet valve.\n"
	require.NoError(t, os.WriteFile(path, []byte(csvData), 0644))

	cfg := &docstore.Config{Type: docstore.InMem}
	err := indexDataset(context.Background(), cfg, domain.TableRepairs, path)
	require.NoError(t, err)
}

func TestIndexDataset_MissingFile(t *testing.T) {
	cfg := &docstore.Config{Type: docstore.InMem}
	err := indexDataset(context.Background(), cfg, domain.TableRepairs, filepath.Join(t.TempDir(), "nope.csv"))
	require.ErrorContains(t, err, "failed to open")
}

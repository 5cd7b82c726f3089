package ingest

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Manifest lists the CSV catalogs to load and where each one goes.
type Manifest struct {
	Datasets []Dataset `yaml:"datasets"`
}

type Dataset struct {
	// Table is the destination: parts/repairs for SQL, repairs/blogs for the
	// vector stores.
	Table string `yaml:"table"`
	Path  string `yaml:"path"`
}

func LoadManifest(r io.Reader) (*Manifest, error) {
	var m Manifest

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to decode manifest: %w", err)
	}

	if len(m.Datasets) == 0 {
		return nil, fmt.Errorf("manifest has no datasets")
	}
	for i, d := range m.Datasets {
		if d.Table == "" || d.Path == "" {
			return nil, fmt.Errorf("dataset %d: table and path are required", i)
		}
	}

	return &m, nil
}

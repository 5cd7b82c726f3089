package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parthunter/internal/ingest/reader"
)

func TestMapPart(t *testing.T) {
	p := MapPart(reader.Record{
		"part_name":  "Ice Maker Assembly",
		"part_id":    "PS123",
		"part_price": "89.99",
		"brand":      "Whirlpool",
	})

	assert.Equal(t, "Ice Maker Assembly", p.PartName)
	assert.Equal(t, "PS123", p.PartID)
	require.NotNil(t, p.PartPrice)
	assert.Equal(t, 89.99, *p.PartPrice)
	assert.Equal(t, "Whirlpool", p.Brand)
}

func TestMapPart_PriceCoercion(t *testing.T) {
	assert.Nil(t, MapPart(reader.Record{"part_price": ""}).PartPrice)
	assert.Nil(t, MapPart(reader.Record{"part_price": "  "}).PartPrice)
	assert.Nil(t, MapPart(reader.Record{"part_price": "call for price"}).PartPrice)

	p := MapPart(reader.Record{"part_price": " 12.5 "})
	require.NotNil(t, p.PartPrice)
	assert.Equal(t, 12.5, *p.PartPrice)
}

func TestMapRepair(t *testing.T) {
	r := MapRepair(reader.Record{
		"Product":    "Refrigerator",
		"symptom":    "Ice maker not making ice",
		"percentage": "27",
	})

	assert.Equal(t, "Refrigerator", r.Product)
	assert.Equal(t, "Ice maker not making ice", r.Symptom)
	require.NotNil(t, r.Percentage)
	assert.Equal(t, 27, *r.Percentage)
}

func TestMapRepair_PercentageCoercion(t *testing.T) {
	assert.Nil(t, MapRepair(reader.Record{"percentage": ""}).Percentage)
	assert.Nil(t, MapRepair(reader.Record{"percentage": "27%"}).Percentage)
}

func TestChunkFromRecord_PreservesHeaderOrder(t *testing.T) {
	headers := []string{"Product", "symptom", "description"}
	chunk := ChunkFromRecord(headers, reader.Record{
		"symptom":     "Not making ice",
		"Product":     "Refrigerator",
		"description": "Check the water inlet valve.",
	})

	assert.Equal(t,
		"Product: Refrigerator\nsymptom: Not making ice\ndescription: Check the water inlet valve.",
		chunk.Content)
	assert.NotEqual(t, "", chunk.ID.String())
}

func TestChunksFromRecords(t *testing.T) {
	headers := []string{"a"}
	chunks := ChunksFromRecords(headers, []reader.Record{
		{"a": "1"},
		{"a": "2"},
	})

	require.Len(t, chunks, 2)
	assert.Equal(t, "a: 1", chunks[0].Content)
	assert.Equal(t, "a: 2", chunks[1].Content)
	assert.NotEqual(t, chunks[0].ID, chunks[1].ID)
}

func TestLoadManifest(t *testing.T) {
	m, err := LoadManifest(strings.NewReader(`
datasets:
  - table: parts
    path: data/parts.csv
  - table: repairs
    path: data/repairs.csv
`))
	require.NoError(t, err)
	require.Len(t, m.Datasets, 2)
	assert.Equal(t, "parts", m.Datasets[0].Table)
	assert.Equal(t, "data/repairs.csv", m.Datasets[1].Path)
}

func TestLoadManifest_Invalid(t *testing.T) {
	_, err := LoadManifest(strings.NewReader(`datasets: []`))
	assert.ErrorContains(t, err, "no datasets")

	_, err = LoadManifest(strings.NewReader(`
datasets:
  - table: parts
`))
	assert.ErrorContains(t, err, "table and path are required")

	_, err = LoadManifest(strings.NewReader(`
datasets:
  - table: parts
    path: data/parts.csv
    unknown_field: x
`))
	assert.ErrorContains(t, err, "failed to decode manifest")
}

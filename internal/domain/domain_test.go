package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parthunter/internal/apperr"
)

func TestParseTable(t *testing.T) {
	table, err := ParseTable("repairs")
	require.NoError(t, err)
	assert.Equal(t, TableRepairs, table)

	table, err = ParseTable("blogs")
	require.NoError(t, err)
	assert.Equal(t, TableBlogs, table)

	_, err = ParseTable("warranties")
	var tableErr *apperr.InvalidTableError
	require.ErrorAs(t, err, &tableErr)
	assert.Equal(t, "warranties", tableErr.Table)
}

func TestSearchResult_Render(t *testing.T) {
	assert.Equal(t, []string{NoRelevantDocuments}, Empty().Render())
	assert.Equal(t, []string{NoRelevantDocuments}, Found(nil).Render())
	assert.Equal(t, []string{"a", "b"}, Found([]string{"a", "b"}).Render())

	assert.True(t, Empty().IsEmpty())
	assert.False(t, Found([]string{"a"}).IsEmpty())
}

func TestPart_Text(t *testing.T) {
	price := 42.99
	p := Part{
		PartName:     "Ice Maker Assembly",
		PartID:       "PS123",
		PartPrice:    &price,
		ReplaceParts: "WP2198597, WP2198598",
		Brand:        "Whirlpool",
	}

	text := p.Text()
	assert.Contains(t, text, "part_name: Ice Maker Assembly")
	assert.Contains(t, text, "part_price: 42.99")
	assert.Contains(t, text, "replace_parts: WP2198597, WP2198598")
	assert.NotContains(t, text, "mpn_id")
}

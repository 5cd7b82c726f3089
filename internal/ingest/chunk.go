package ingest

import (
	"strings"

	"parthunter/internal/domain"
	"parthunter/internal/ingest/reader"
)

// ChunkFromRecord renders one CSV row as a "column: value" text chunk, in
// header order, the way the vector stores expect documents.
func ChunkFromRecord(headers []string, rec reader.Record) domain.Chunk {
	var b strings.Builder
	for _, h := range headers {
		b.WriteString(h)
		b.WriteString(": ")
		b.WriteString(rec[h])
		b.WriteString("\n")
	}
	return domain.NewChunk(strings.TrimRight(b.String(), "\n"))
}

// ChunksFromRecords maps a whole CSV into chunks, preserving row order.
func ChunksFromRecords(headers []string, recs []reader.Record) []domain.Chunk {
	chunks := make([]domain.Chunk, len(recs))
	for i, rec := range recs {
		chunks[i] = ChunkFromRecord(headers, rec)
	}
	return chunks
}

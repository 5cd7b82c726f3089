package ingest

import (
	"context"
	"log/slog"
	"time"

	"parthunter/internal/ingest/reader"
)

const (
	defaultBatchSize = 1000
	defaultWorkers   = 10
)

// BulkStorer persists one batch of mapped rows.
type BulkStorer[T any] interface {
	SaveBulk(ctx context.Context, rows []T) error
}

// Pipeline streams CSV records through a mapper into bulk batches.
type Pipeline[T any] struct {
	reader  *reader.CSVReader
	mapFn   func(reader.Record) T
	storer  BulkStorer[T]
	batch   int
	workers int
}

type PipelineOption[T any] func(*Pipeline[T])

func WithBatchSize[T any](size int) PipelineOption[T] {
	return func(p *Pipeline[T]) {
		p.batch = size
	}
}

func NewPipeline[T any](r *reader.CSVReader, mapFn func(reader.Record) T, storer BulkStorer[T], opts ...PipelineOption[T]) *Pipeline[T] {
	p := &Pipeline[T]{
		reader:  r,
		mapFn:   mapFn,
		storer:  storer,
		batch:   defaultBatchSize,
		workers: defaultWorkers,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

func (p *Pipeline[T]) Run(ctx context.Context) error {
	start := time.Now()

	results, err := p.reader.ReadParallel(ctx, p.workers)
	if err != nil {
		return err
	}

	var rows []T
	flush := func() {
		if len(rows) == 0 {
			return
		}
		if err := p.storer.SaveBulk(ctx, rows); err != nil {
			slog.Error("Error saving bulk rows", "error", err, "count", len(rows))
		} else {
			slog.Info("Bulk rows saved", "count", len(rows))
		}
		rows = rows[:0]
	}

	defer func() {
		flush()
		slog.Info("Pipeline run completed", "duration", time.Since(start))
	}()

	for {
		select {
		case <-ctx.Done():
			slog.Info("Pipeline context cancelled, stopping collection")
			return ctx.Err()
		case res, ok := <-results:
			if !ok {
				return nil
			}
			if res.Err != nil {
				slog.Error("Error reading record", "error", res.Err)
				continue
			}

			rows = append(rows, p.mapFn(res.Record))
			if len(rows) >= p.batch {
				flush()
			}
		}
	}
}

package reader

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"sync"
)

// Record is one CSV row keyed by header name.
type Record = map[string]string

type RecordResult struct {
	Record Record
	Err    error
}

type CSVReader struct {
	reader  io.Reader
	headers []string
}

func NewCSVReader(reader io.Reader) *CSVReader {
	return &CSVReader{
		reader: reader,
	}
}

// Headers returns the header row in file order, available after a read.
func (cr *CSVReader) Headers() []string {
	return cr.headers
}

// Read loads every row into memory.
func (cr *CSVReader) Read() ([]Record, error) {
	csvReader := csv.NewReader(cr.reader)

	headers, err := csvReader.Read()
	if err != nil {
		return nil, err
	}
	cr.headers = headers

	var records []Record
	for {
		row, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		records = append(records, rowToRecord(headers, row))
	}

	return records, nil
}

// ReadParallel streams rows through a worker pool. Row order is not
// guaranteed on the output channel.
func (cr *CSVReader) ReadParallel(ctx context.Context, workerCount int) (<-chan RecordResult, error) {
	csvReader := csv.NewReader(cr.reader)

	headers, err := csvReader.Read()
	if err != nil {
		return nil, err
	}
	cr.headers = headers

	out := make(chan RecordResult)
	jobs := make(chan []string, workerCount*2)

	var wg sync.WaitGroup
	wg.Add(workerCount)
	for w := 0; w < workerCount; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case row, ok := <-jobs:
					if !ok {
						return
					}
					if len(row) != len(headers) {
						select {
						case out <- RecordResult{Err: fmt.Errorf("row has %d fields, expected %d", len(row), len(headers))}:
						case <-ctx.Done():
						}
						continue
					}
					select {
					case out <- RecordResult{Record: rowToRecord(headers, row)}:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for {
			row, err := csvReader.Read()
			if err == io.EOF {
				return
			}
			if err != nil {
				select {
				case out <- RecordResult{Err: err}:
				case <-ctx.Done():
				}
				return
			}
			select {
			case jobs <- row:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(out)
	}()

	return out, nil
}

func rowToRecord(headers []string, row []string) Record {
	record := make(Record, len(headers))
	for i, h := range headers {
		if i < len(row) {
			record[h] = row[i]
		}
	}
	return record
}

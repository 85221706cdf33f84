package data

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Record is a single CSV data row with its 1-based line number.
type Record struct {
	Line   int
	Fields []string
}

// Table is a loaded CSV file: the header row and the data records.
type Table struct {
	Header  []string
	Records []Record
}

// Stream reads the header synchronously, then streams the remaining rows on a
// goroutine. records is closed when the input is exhausted or ctx is done;
// errc then receives at most one error and is closed.
func Stream(ctx context.Context, r io.Reader) (header []string, records <-chan Record, errc <-chan error, err error) {
	reader := csv.NewReader(bufio.NewReader(r))
	// rows with a wrong field count are reported per record below
	reader.FieldsPerRecord = -1

	header, err = reader.Read()
	if err == io.EOF {
		return nil, nil, nil, goerr.Wrap(ErrNoHeader, "empty CSV input")
	}
	if err != nil {
		return nil, nil, nil, goerr.Wrap(err, "failed to read CSV header")
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	out := make(chan Record)
	ec := make(chan error, 1)
	logger := ctxlog.From(ctx)

	go func() {
		defer close(ec)
		// Close the output channel to signal that no more records will be sent.
		defer close(out)
		for {
			rec, err := reader.Read()
			if err == io.EOF {
				return
			}
			if err != nil {
				var pe *csv.ParseError
				if errors.As(err, &pe) {
					logger.Warn("skipping malformed CSV record", "line", pe.Line, "error", err)
					continue
				}
				ec <- goerr.Wrap(err, "failed to read CSV record")
				return
			}
			line, _ := reader.FieldPos(0)
			if len(rec) != len(header) {
				logger.Warn("skipping CSV record with wrong field count",
					"line", line,
					"want", len(header),
					"got", len(rec),
				)
				continue
			}

			select {
			case <-ctx.Done():
				ec <- goerr.Wrap(ctx.Err(), "CSV streaming canceled")
				return
			case out <- Record{Line: line, Fields: rec}:
			}
		}
	}()

	return header, out, ec, nil
}

// Load reads a whole CSV input into a Table.
func Load(ctx context.Context, r io.Reader) (*Table, error) {
	header, records, errc, err := Stream(ctx, r)
	if err != nil {
		return nil, err
	}

	t := &Table{Header: header}
	for rec := range records {
		t.Records = append(t.Records, rec)
	}
	if err := <-errc; err != nil {
		return nil, err
	}

	ctxlog.From(ctx).Debug("loaded CSV table",
		"columns", len(t.Header),
		"records", len(t.Records),
	)
	return t, nil
}

// LoadFile opens path and loads it as a CSV Table.
func LoadFile(ctx context.Context, path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open CSV file", goerr.V("path", path))
	}
	defer file.Close()

	t, err := Load(ctx, file)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load CSV file", goerr.V("path", path))
	}
	return t, nil
}

// Column returns the index of the named column.
func (t *Table) Column(name string) (int, error) {
	for i, h := range t.Header {
		if h == name {
			return i, nil
		}
	}
	return -1, goerr.Wrap(ErrUnknownColumn, "column not found in header",
		goerr.V("column", name),
		goerr.V("header", t.Header))
}

// Package csv ingests header-first comma-separated files. The delimiter is
// auto-detected from the first line when not configured.
package csv

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"csv2sql/ingest"
)

func init() {
	ingest.Register("csv", &csvDriver{})
}

type csvDriver struct{}

func (d *csvDriver) Open(source io.Reader, opts *ingest.Options) (ingest.Source, error) {
	return NewSource(source, opts)
}

// CSVSource reads one delimited table: a header row followed by data rows.
type CSVSource struct {
	headers []string
	reader  *csv.Reader
}

var _ ingest.Source = (*CSVSource)(nil)

// NewSource creates a CSVSource from an io.Reader. This allows streaming data
// from any source (e.g. an HTTP response) without a local file.
// ScanRows can only be called once.
func NewSource(r io.Reader, opts *ingest.Options) (*CSVSource, error) {
	if opts == nil {
		opts = &ingest.Options{}
	}

	br := bufio.NewReaderSize(r, 65536)

	delimiter := opts.Delimiter
	if delimiter == 0 {
		peekBytes, _ := br.Peek(2048)
		sample := string(peekBytes)
		if idx := strings.IndexAny(sample, "\r\n"); idx != -1 {
			sample = sample[:idx]
		}
		delimiter = ingest.DetectDelimiter(sample)
	}

	reader := csv.NewReader(br)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1 // Allow variable number of fields

	headers, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("csv input is empty")
		}
		return nil, fmt.Errorf("failed to read csv headers: %w", err)
	}

	return &CSVSource{
		headers: headers,
		reader:  reader,
	}, nil
}

// Columns implements ingest.Source.
func (c *CSVSource) Columns() []string {
	return c.headers
}

// ScanRows implements ingest.Source. Every row is padded or truncated to the
// header width so downstream code can rely on the row-length invariant.
func (c *CSVSource) ScanRows(yield func(row []string) error) error {
	for {
		row, err := c.reader.Read()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("failed to read csv row: %w", err)
		}

		row = ingest.PadRow(row, len(c.headers))
		if err := yield(row); err != nil {
			return err
		}
	}
}

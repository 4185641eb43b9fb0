// Package ingest reads delimited/tabular inputs and materializes them as
// schema.Table values. Format drivers register themselves by name, mirroring
// the database/sql driver pattern; importing ingest/all pulls in every
// built-in driver.
package ingest

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"csv2sql/schema"
)

// Options configures a single ingest pass.
type Options struct {
	TableName     string // target table name; drivers fall back to a default
	Delimiter     rune   // field delimiter for delimited formats; 0 = auto-detect
	SampleSize    int    // data rows sampled for type inference; <1 means 1
	SanitizeNames bool   // rewrite header names into quoting-free identifiers
}

// Source is one opened input: the raw header names plus an iteration over
// data rows. Row order is the input order.
type Source interface {
	// Columns returns the raw header field names, in first-seen order.
	Columns() []string

	// ScanRows calls yield for each data row. Rows are padded or truncated
	// to the header width. If yield returns an error, iteration stops and
	// that error is returned.
	ScanRows(yield func(row []string) error) error
}

// Driver is implemented by each format package.
type Driver interface {
	Open(source io.Reader, opts *Options) (Source, error)
}

var (
	driversMu sync.RWMutex
	drivers   = make(map[string]Driver)
)

// Register makes an ingest driver available by the provided name.
// If Register is called twice with the same name or if driver is nil, it panics.
func Register(name string, driver Driver) {
	driversMu.Lock()
	defer driversMu.Unlock()
	if driver == nil {
		panic("ingest: Register driver is nil")
	}
	if _, dup := drivers[name]; dup {
		panic("ingest: Register called twice for driver " + name)
	}
	drivers[name] = driver
}

// Open opens a source by driver name and input reader.
func Open(driverName string, source io.Reader, opts *Options) (Source, error) {
	driversMu.RLock()
	driver, ok := drivers[driverName]
	driversMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("ingest: unknown driver %q (forgotten import?)", driverName)
	}
	return driver.Open(source, opts)
}

// Drivers returns a sorted list of the names of the registered drivers.
func Drivers() []string {
	driversMu.RLock()
	defer driversMu.RUnlock()
	list := make([]string, 0, len(drivers))
	for name := range drivers {
		list = append(list, name)
	}
	sort.Strings(list)
	return list
}

// ReadTable drains a source into memory and infers one column descriptor per
// header field. The descriptor set and order are fixed by the header and the
// sampled rows; later rows are trusted to conform.
func ReadTable(driverName string, source io.Reader, opts *Options) (*schema.Table, error) {
	if opts == nil {
		opts = &Options{}
	}

	src, err := Open(driverName, source, opts)
	if err != nil {
		return nil, err
	}
	if c, ok := src.(io.Closer); ok {
		defer c.Close()
	}

	headers := src.Columns()
	if opts.SanitizeNames {
		headers = schema.SanitizeColumnNames(headers)
	}

	var rows [][]string
	err = src.ScanRows(func(row []string) error {
		rows = append(rows, row)
		return nil
	})
	if err != nil {
		return nil, err
	}

	name := opts.TableName
	if name == "" {
		name = "tb0"
	}

	return &schema.Table{
		Name:    name,
		Columns: schema.InferColumns(headers, rows, opts.SampleSize),
		Rows:    rows,
	}, nil
}

// DetectDelimiter attempts to detect the delimiter from a raw line of text.
// It checks common delimiters and returns the one that produces the most fields.
// Defaults to comma if line is empty or no clear winner.
func DetectDelimiter(line string) rune {
	if line == "" {
		return ','
	}

	delimiters := []rune{',', '\t', ';', '|'}
	maxCount := -1
	winner := ','

	for _, delim := range delimiters {
		count := strings.Count(line, string(delim))
		if count > maxCount {
			maxCount = count
			winner = delim
		}
	}

	return winner
}

// PadRow pads or truncates the row to match the target length.
func PadRow(row []string, targetLen int) []string {
	if len(row) < targetLen {
		row = append(row, make([]string, targetLen-len(row))...)
	} else if len(row) > targetLen {
		row = row[:targetLen]
	}
	return row
}

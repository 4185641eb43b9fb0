// Package excel ingests the first worksheet of an xlsx workbook, treating
// its first row as the header.
package excel

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"csv2sql/ingest"
)

func init() {
	ingest.Register("excel", &excelDriver{})
}

type excelDriver struct{}

func (d *excelDriver) Open(source io.Reader, opts *ingest.Options) (ingest.Source, error) {
	return NewSource(source)
}

// ExcelSource reads the first sheet of a workbook.
type ExcelSource struct {
	file    *excelize.File
	sheet   string
	headers []string
}

var _ ingest.Source = (*ExcelSource)(nil)
var _ io.Closer = (*ExcelSource)(nil)

// NewSource creates an ExcelSource from an io.Reader.
func NewSource(r io.Reader) (*ExcelSource, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel stream: %w", err)
	}

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		f.Close()
		return nil, fmt.Errorf("no sheets found in excel file")
	}
	sheet := sheets[0]

	rows, err := f.Rows(sheet)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to get rows iterator for sheet %s: %w", sheet, err)
	}
	defer rows.Close()

	if !rows.Next() {
		f.Close()
		return nil, fmt.Errorf("sheet %s is empty", sheet)
	}
	headers, err := rows.Columns()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to read header row for sheet %s: %w", sheet, err)
	}

	return &ExcelSource{
		file:    f,
		sheet:   sheet,
		headers: headers,
	}, nil
}

// Columns implements ingest.Source.
func (e *ExcelSource) Columns() []string {
	return e.headers
}

// ScanRows implements ingest.Source.
func (e *ExcelSource) ScanRows(yield func(row []string) error) error {
	rows, err := e.file.Rows(e.sheet)
	if err != nil {
		return fmt.Errorf("failed to get rows iterator for sheet %s: %w", e.sheet, err)
	}
	defer rows.Close()

	// Skip the header row.
	if rows.Next() {
		if _, err := rows.Columns(); err != nil {
			return fmt.Errorf("failed to skip header row: %w", err)
		}
	}

	for rows.Next() {
		row, err := rows.Columns()
		if err != nil {
			return fmt.Errorf("failed to read row: %w", err)
		}

		row = ingest.PadRow(row, len(e.headers))
		if err := yield(row); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the underlying workbook.
func (e *ExcelSource) Close() error {
	if e.file != nil {
		return e.file.Close()
	}
	return nil
}

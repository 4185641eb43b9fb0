// Package sqlgen renders a materialized table as SQL text for a chosen
// dialect: one schema section followed by batched INSERT statements. Output
// is a pure function of its inputs, byte-for-byte deterministic.
package sqlgen

import (
	"fmt"
	"strings"

	"csv2sql/dialects"
	"csv2sql/schema"
)

// Generate renders the full SQL blob: the dialect's schema section, a
// newline, then the INSERT statements joined by newlines.
func Generate(t *schema.Table, d dialects.Dialect, database string, batchSize int) (string, error) {
	stmts, err := InsertStatements(t, d, batchSize)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(d.SchemaSQL(database, t.Name, t.Columns))
	sb.WriteString("\n")
	for _, stmt := range stmts {
		sb.WriteString(stmt)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// InsertStatements partitions the rows into consecutive batches of at most
// batchSize rows (the last batch may be smaller) and renders one multi-row
// INSERT per batch. Row order is preserved; no row is reordered or dropped.
func InsertStatements(t *schema.Table, d dialects.Dialect, batchSize int) ([]string, error) {
	if batchSize < 1 {
		return nil, fmt.Errorf("batch size must be a positive integer, got %d", batchSize)
	}

	var stmts []string
	for start := 0; start < len(t.Rows); start += batchSize {
		end := start + batchSize
		if end > len(t.Rows) {
			end = len(t.Rows)
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "INSERT INTO %s VALUES ", t.Name)
		for i, row := range t.Rows[start:end] {
			if i > 0 {
				sb.WriteString(",")
			}
			writeTuple(&sb, d, t.Columns, row)
		}
		sb.WriteString(";")
		stmts = append(stmts, sb.String())
	}
	return stmts, nil
}

// writeTuple renders one parenthesized row tuple. Quoting follows the
// column's inferred kind, not the cell's shape: text columns are quoted with
// dialect escaping, every other kind is emitted raw and unquoted. A later row
// whose value contradicts the inferred kind passes through verbatim.
func writeTuple(sb *strings.Builder, d dialects.Dialect, cols []schema.Column, row []string) {
	sb.WriteString("(")
	for i, val := range row {
		if i > 0 {
			sb.WriteString(",")
		}
		if i < len(cols) && cols[i].Kind != schema.KindText {
			sb.WriteString(val)
			continue
		}
		sb.WriteString("'")
		sb.WriteString(d.EscapeText(val))
		sb.WriteString("'")
	}
	sb.WriteString(")")
}

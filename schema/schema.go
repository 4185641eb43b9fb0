// Package schema holds the column/row model shared by the ingest drivers and
// the SQL generator, plus the type-inference rules used to classify columns.
package schema

// Kind classifies the values of one column. Engine dialects map each Kind to
// a concrete SQL type name.
type Kind int

const (
	KindText Kind = iota
	KindInteger
	KindDecimal
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindDecimal:
		return "decimal"
	case KindBool:
		return "bool"
	default:
		return "text"
	}
}

// Column describes one source field across the whole dataset: its name, the
// inferred kind, and whether the generated column definition allows NULLs.
// Columns are created once from the header row and never revisited.
type Column struct {
	Name     string
	Kind     Kind
	Nullable bool
}

// Table is a fully materialized input: ordered columns plus raw cell text for
// every row. Drivers guarantee len(row) == len(Columns) for each row.
type Table struct {
	Name    string
	Columns []Column
	Rows    [][]string
}

// ColumnNames returns the column names in declaration order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

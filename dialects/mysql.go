package dialects

import (
	"fmt"
	"strings"

	"csv2sql/schema"
)

func init() {
	Register("mysql", &mysqlDialect{})
}

// mysqlDialect targets MySQL. MySQL lacks a native boolean type, so inferred
// booleans map to BIT.
type mysqlDialect struct{}

func (d *mysqlDialect) Name() string { return "mysql" }

func (d *mysqlDialect) QuoteIdent(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

func (d *mysqlDialect) TypeFor(k schema.Kind) string {
	switch k {
	case schema.KindInteger:
		return "INT"
	case schema.KindDecimal:
		return "DOUBLE"
	case schema.KindBool:
		return "BIT"
	default:
		return "TEXT"
	}
}

// EscapeText doubles single quotes and backslashes. MySQL treats backslash as
// an escape character inside string literals.
func (d *mysqlDialect) EscapeText(value string) string {
	value = strings.ReplaceAll(value, `\`, `\\`)
	return strings.ReplaceAll(value, "'", "''")
}

func (d *mysqlDialect) CreateTableSQL(table string, cols []schema.Column) string {
	return createTable(d, table, cols)
}

func (d *mysqlDialect) SchemaSQL(database, table string, cols []schema.Column) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "CREATE DATABASE IF NOT EXISTS %s;\n", database)
	fmt.Fprintf(&sb, "USE %s;\n", database)
	sb.WriteString(d.CreateTableSQL(table, cols))
	return sb.String()
}

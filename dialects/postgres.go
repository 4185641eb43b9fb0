package dialects

import (
	"fmt"
	"strings"

	"csv2sql/schema"
)

func init() {
	d := &postgresDialect{}
	Register("postgres", d)
	// Accepted alias on the configuration surface.
	Register("postgresql", d)
}

// postgresDialect targets PostgreSQL. Postgres has no CREATE DATABASE IF NOT
// EXISTS, so the schema section emits a probe against pg_database that psql
// expands with \gexec, followed by a \c connect directive.
type postgresDialect struct{}

func (d *postgresDialect) Name() string { return "postgres" }

func (d *postgresDialect) QuoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func (d *postgresDialect) TypeFor(k schema.Kind) string {
	switch k {
	case schema.KindInteger:
		return "INT"
	case schema.KindDecimal:
		return "DECIMAL"
	case schema.KindBool:
		return "BOOLEAN"
	default:
		return "TEXT"
	}
}

func (d *postgresDialect) EscapeText(value string) string {
	return strings.ReplaceAll(value, "'", "''")
}

func (d *postgresDialect) CreateTableSQL(table string, cols []schema.Column) string {
	return createTable(d, table, cols)
}

func (d *postgresDialect) SchemaSQL(database, table string, cols []schema.Column) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "SELECT 'CREATE DATABASE %s' WHERE NOT EXISTS (SELECT FROM pg_database WHERE datname = '%s')\\gexec\n",
		database, database)
	fmt.Fprintf(&sb, "\\c %s\n", database)
	sb.WriteString(d.CreateTableSQL(table, cols))
	return sb.String()
}

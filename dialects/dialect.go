// Package dialects defines the engine profiles: the type-mapping, quoting and
// DDL-templating rules specific to one target SQL engine. Adding an engine
// means adding one Dialect implementation and registering it.
package dialects

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"csv2sql/schema"
)

// ErrUnsupportedEngine is returned by Lookup for engine names with no
// registered dialect. It surfaces at configuration validation, before any
// input is read.
var ErrUnsupportedEngine = errors.New("unsupported engine")

// Dialect is one engine profile.
type Dialect interface {
	// Name is the canonical engine name.
	Name() string

	// QuoteIdent quotes a column identifier for this engine.
	QuoteIdent(name string) string

	// TypeFor maps an inferred column kind to this engine's SQL type name.
	TypeFor(k schema.Kind) string

	// EscapeText escapes a raw text value for embedding in a single-quoted
	// SQL string literal.
	EscapeText(value string) string

	// CreateTableSQL renders the CREATE TABLE IF NOT EXISTS statement.
	CreateTableSQL(table string, cols []schema.Column) string

	// SchemaSQL renders the full schema section: database creation, the
	// directive switching to it, and the table creation.
	SchemaSQL(database, table string, cols []schema.Column) string
}

var (
	dialectsMu sync.RWMutex
	registry   = make(map[string]Dialect)
)

// Register makes a dialect available by the provided name.
// If Register is called twice with the same name or if dialect is nil, it panics.
func Register(name string, dialect Dialect) {
	dialectsMu.Lock()
	defer dialectsMu.Unlock()
	if dialect == nil {
		panic("dialects: Register dialect is nil")
	}
	if _, dup := registry[name]; dup {
		panic("dialects: Register called twice for dialect " + name)
	}
	registry[name] = dialect
}

// Lookup returns the dialect registered under name (case-insensitive).
func Lookup(name string) (Dialect, error) {
	dialectsMu.RLock()
	d, ok := registry[strings.ToLower(name)]
	dialectsMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnsupportedEngine, name, strings.Join(Names(), ", "))
	}
	return d, nil
}

// Names returns a sorted list of the registered dialect names.
func Names() []string {
	dialectsMu.RLock()
	defer dialectsMu.RUnlock()
	list := make([]string, 0, len(registry))
	for name := range registry {
		list = append(list, name)
	}
	sort.Strings(list)
	return list
}

// columnClause renders one column definition: quoted name, SQL type, and the
// nullability marker appended verbatim when present.
func columnClause(d Dialect, c schema.Column) string {
	clause := d.QuoteIdent(c.Name) + " " + d.TypeFor(c.Kind)
	if c.Nullable {
		clause += " NULL"
	}
	return clause
}

// createTable builds the CREATE TABLE IF NOT EXISTS statement shared by all
// dialects; only the identifier quoting and type names differ.
func createTable(d Dialect, table string, cols []schema.Column) string {
	clauses := make([]string, len(cols))
	for i, c := range cols {
		clauses[i] = columnClause(d, c)
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s);", table, strings.Join(clauses, ", "))
}

package sqlgen

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"csv2sql/schema"
)

// openTestDB gives an in-memory SQL engine used as a conforming parser for
// the generated statements. SQLite accepts both double-quoted (postgres) and
// back-quoted (mysql) identifiers and is permissive about type names, so the
// table statement and the inserts of either dialect execute unchanged. The
// database-level directives are psql/mysql client commands and are excluded.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func execAll(t *testing.T, db *sql.DB, stmts []string) {
	t.Helper()
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("statement failed: %v\nsql: %s", err, stmt)
		}
	}
}

func TestRoundTripPostgres(t *testing.T) {
	table := &schema.Table{
		Name: "people",
		Columns: []schema.Column{
			{Name: "id", Kind: schema.KindInteger, Nullable: true},
			{Name: "name", Kind: schema.KindText, Nullable: true},
		},
		Rows: [][]string{
			{"1", "Alice"},
			{"2", "O'Brien"},
			{"3", "plain, with comma"},
		},
	}

	d := mustDialect(t, "postgres")
	db := openTestDB(t)

	stmts, err := InsertStatements(table, d, 2)
	if err != nil {
		t.Fatalf("InsertStatements failed: %v", err)
	}
	execAll(t, db, append([]string{d.CreateTableSQL(table.Name, table.Columns)}, stmts...))

	rows, err := db.Query(`SELECT "id", "name" FROM people ORDER BY "id"`)
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	defer rows.Close()

	want := []string{"Alice", "O'Brien", "plain, with comma"}
	i := 0
	for rows.Next() {
		var id int
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			t.Fatalf("scan failed: %v", err)
		}
		if id != i+1 {
			t.Errorf("row %d: got id %d, want %d", i, id, i+1)
		}
		if name != want[i] {
			t.Errorf("row %d: got name %q, want %q", i, name, want[i])
		}
		i++
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("rows error: %v", err)
	}
	if i != len(want) {
		t.Errorf("got %d rows back, want %d", i, len(want))
	}
}

func TestRoundTripMySQLIdentifiers(t *testing.T) {
	table := &schema.Table{
		Name: "items",
		Columns: []schema.Column{
			{Name: "id", Kind: schema.KindInteger, Nullable: true},
			{Name: "label", Kind: schema.KindText, Nullable: true},
		},
		Rows: [][]string{{"1", "it's here"}},
	}

	d := mustDialect(t, "mysql")
	db := openTestDB(t)

	stmts, err := InsertStatements(table, d, 100)
	if err != nil {
		t.Fatalf("InsertStatements failed: %v", err)
	}
	execAll(t, db, append([]string{d.CreateTableSQL(table.Name, table.Columns)}, stmts...))

	var label string
	if err := db.QueryRow("SELECT `label` FROM items WHERE `id` = 1").Scan(&label); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if label != "it's here" {
		t.Errorf("got %q, want %q", label, "it's here")
	}
}

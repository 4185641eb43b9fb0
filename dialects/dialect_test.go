package dialects

import (
	"errors"
	"strings"
	"testing"

	"csv2sql/schema"
)

func TestLookupKnown(t *testing.T) {
	for _, name := range []string{"postgres", "postgresql", "mysql", "MySQL", "POSTGRES"} {
		d, err := Lookup(name)
		if err != nil {
			t.Errorf("Lookup(%q) failed: %v", name, err)
			continue
		}
		if d == nil {
			t.Errorf("Lookup(%q) returned nil dialect", name)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("oracle")
	if err == nil {
		t.Fatal("expected error for unknown engine")
	}
	if !errors.Is(err, ErrUnsupportedEngine) {
		t.Errorf("expected ErrUnsupportedEngine, got %v", err)
	}
}

func TestNames(t *testing.T) {
	names := Names()
	want := []string{"mysql", "postgres", "postgresql"}
	if len(names) != len(want) {
		t.Fatalf("got %v, want %v", names, want)
	}
	for i, n := range names {
		if n != want[i] {
			t.Errorf("at index %d: got %s, want %s", i, n, want[i])
		}
	}
}

func TestPostgresTypes(t *testing.T) {
	d, _ := Lookup("postgres")
	cases := map[schema.Kind]string{
		schema.KindInteger: "INT",
		schema.KindDecimal: "DECIMAL",
		schema.KindBool:    "BOOLEAN",
		schema.KindText:    "TEXT",
	}
	for k, want := range cases {
		if got := d.TypeFor(k); got != want {
			t.Errorf("postgres TypeFor(%s) = %s, want %s", k, got, want)
		}
	}
}

func TestMySQLTypes(t *testing.T) {
	d, _ := Lookup("mysql")
	cases := map[schema.Kind]string{
		schema.KindInteger: "INT",
		schema.KindDecimal: "DOUBLE",
		schema.KindBool:    "BIT",
		schema.KindText:    "TEXT",
	}
	for k, want := range cases {
		if got := d.TypeFor(k); got != want {
			t.Errorf("mysql TypeFor(%s) = %s, want %s", k, got, want)
		}
	}
}

func TestQuoteIdent(t *testing.T) {
	pg, _ := Lookup("postgres")
	if got := pg.QuoteIdent("name"); got != `"name"` {
		t.Errorf(`postgres quote: got %s, want "name"`, got)
	}
	if got := pg.QuoteIdent(`we"ird`); got != `"we""ird"` {
		t.Errorf("postgres quote embedded: got %s", got)
	}

	my, _ := Lookup("mysql")
	if got := my.QuoteIdent("name"); got != "`name`" {
		t.Errorf("mysql quote: got %s", got)
	}
}

func TestEscapeText(t *testing.T) {
	pg, _ := Lookup("postgres")
	if got := pg.EscapeText("O'Brien"); got != "O''Brien" {
		t.Errorf("postgres escape: got %q", got)
	}

	my, _ := Lookup("mysql")
	if got := my.EscapeText(`a\'b`); got != `a\\''b` {
		t.Errorf("mysql escape: got %q", got)
	}
}

func testColumns() []schema.Column {
	return []schema.Column{
		{Name: "id", Kind: schema.KindInteger, Nullable: true},
		{Name: "name", Kind: schema.KindText, Nullable: true},
		{Name: "active", Kind: schema.KindBool, Nullable: true},
	}
}

func TestPostgresSchemaSQL(t *testing.T) {
	d, _ := Lookup("postgres")
	sql := d.SchemaSQL("mydb", "people", testColumns())

	if !strings.Contains(sql, "SELECT 'CREATE DATABASE mydb' WHERE NOT EXISTS") {
		t.Errorf("missing conditional database probe:\n%s", sql)
	}
	if !strings.Contains(sql, `\gexec`) {
		t.Errorf("missing gexec terminator:\n%s", sql)
	}
	if !strings.Contains(sql, `\c mydb`) {
		t.Errorf("missing connect directive:\n%s", sql)
	}
	want := `CREATE TABLE IF NOT EXISTS people ("id" INT NULL, "name" TEXT NULL, "active" BOOLEAN NULL);`
	if !strings.Contains(sql, want) {
		t.Errorf("create table mismatch:\ngot:  %s\nwant: %s", sql, want)
	}
}

func TestMySQLSchemaSQL(t *testing.T) {
	d, _ := Lookup("mysql")
	sql := d.SchemaSQL("mydb", "people", testColumns())

	if !strings.Contains(sql, "CREATE DATABASE IF NOT EXISTS mydb;") {
		t.Errorf("missing create database:\n%s", sql)
	}
	if !strings.Contains(sql, "USE mydb;") {
		t.Errorf("missing USE directive:\n%s", sql)
	}
	if strings.Contains(sql, `\c`) {
		t.Errorf("mysql schema must not contain a psql connect directive:\n%s", sql)
	}
	want := "CREATE TABLE IF NOT EXISTS people (`id` INT NULL, `name` TEXT NULL, `active` BIT NULL);"
	if !strings.Contains(sql, want) {
		t.Errorf("create table mismatch:\ngot:  %s\nwant: %s", sql, want)
	}
}

package ingest

import "testing"

func TestDetectDelimiter(t *testing.T) {
	cases := []struct {
		line string
		want rune
	}{
		{"a,b,c", ','},
		{"a\tb\tc", '\t'},
		{"a;b;c", ';'},
		{"a|b|c", '|'},
		{"", ','},
		{"noseparators", ','},
		{"a,b;c;d;e", ';'},
	}
	for _, c := range cases {
		if got := DetectDelimiter(c.line); got != c.want {
			t.Errorf("DetectDelimiter(%q) = %q, want %q", c.line, got, c.want)
		}
	}
}

func TestPadRow(t *testing.T) {
	row := PadRow([]string{"a"}, 3)
	if len(row) != 3 || row[0] != "a" || row[1] != "" || row[2] != "" {
		t.Errorf("pad short row: got %v", row)
	}

	row = PadRow([]string{"a", "b", "c"}, 2)
	if len(row) != 2 || row[1] != "b" {
		t.Errorf("truncate long row: got %v", row)
	}

	row = PadRow([]string{"a", "b"}, 2)
	if len(row) != 2 {
		t.Errorf("exact row changed: got %v", row)
	}
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open("parquet", nil, nil)
	if err == nil {
		t.Fatal("expected error for unknown driver")
	}
}

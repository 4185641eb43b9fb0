// Package html ingests the first <table> element of an HTML document. The
// first <tr> is the header row.
package html

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"csv2sql/ingest"
)

func init() {
	ingest.Register("html", &htmlDriver{})
}

type htmlDriver struct{}

func (d *htmlDriver) Open(source io.Reader, opts *ingest.Options) (ingest.Source, error) {
	return NewSource(source)
}

// HTMLSource holds one parsed table.
type HTMLSource struct {
	headers []string
	rows    [][]string
}

var _ ingest.Source = (*HTMLSource)(nil)

// NewSource parses the document and keeps the first table found.
func NewSource(r io.Reader) (*HTMLSource, error) {
	doc, err := html.Parse(bufio.NewReaderSize(r, 65536))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	table := findTable(doc)
	if table == nil {
		return nil, fmt.Errorf("no table found in HTML")
	}

	rows := extractRows(table)
	if len(rows) == 0 {
		return nil, fmt.Errorf("table in HTML has no rows")
	}

	return &HTMLSource{
		headers: rows[0],
		rows:    rows[1:],
	}, nil
}

// Columns implements ingest.Source.
func (c *HTMLSource) Columns() []string {
	return c.headers
}

// ScanRows implements ingest.Source.
func (c *HTMLSource) ScanRows(yield func(row []string) error) error {
	for _, row := range c.rows {
		row = ingest.PadRow(row, len(c.headers))
		if err := yield(row); err != nil {
			return err
		}
	}
	return nil
}

func findTable(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "table" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findTable(c); t != nil {
			return t
		}
	}
	return nil
}

func extractRows(table *html.Node) [][]string {
	var rows [][]string
	var visitRows func(*html.Node)
	visitRows = func(node *html.Node) {
		if node.Type == html.ElementNode && node.Data == "tr" {
			var row []string
			for c := node.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
					row = append(row, extractText(c))
				}
			}
			rows = append(rows, row)
			return // Don't look for TRs inside TRs
		}

		for c := node.FirstChild; c != nil; c = c.NextSibling {
			// Don't traverse into nested tables here
			if c.Type == html.ElementNode && c.Data == "table" {
				continue
			}
			visitRows(c)
		}
	}
	visitRows(table)
	return rows
}

func extractText(n *html.Node) string {
	var sb strings.Builder
	extractTextRecursive(n, &sb)
	return strings.TrimSpace(sb.String())
}

func extractTextRecursive(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		extractTextRecursive(c, sb)
	}
}

package schema

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	tablePrefix  = "tb"
	columnPrefix = "cl"
)

var (
	space      = regexp.MustCompile(`\s+`)
	disallowed = regexp.MustCompile(`[^a-zA-Z0-9 _]+`)
)

/*
	SanitizeNames generates identifiers that are safe in any supported dialect
	without relying on quoting.

The rules for column names and table names are so similar there is one
function taking a prefix as input: lower case, snake case, strip disallowed
characters, dodge reserved words, de-duplicate. If sanitizing leaves nothing
usable the name becomes {prefix}{idx}.
*/
func SanitizeNames(rawnames []string, prefix string) []string {
	clean := make([]string, len(rawnames))

	counter := map[string]int{}
	for idx, item := range rawnames {
		item = strings.TrimSpace(item)
		item = disallowed.ReplaceAllString(item, "")
		item = space.ReplaceAllString(item, "_")
		item = strings.ToLower(item)

		for _, keyword := range reservedWords {
			if item == keyword {
				item += "_"
				break
			}
		}

		// If stripping non-compliant chars leaves us with nothing, give it a default index name
		if len(item) == 0 {
			clean[idx] = fmt.Sprintf("%s%d", prefix, idx)
			continue
		}

		// identifiers cannot start with a digit
		if item[0] >= '0' && item[0] <= '9' {
			item = fmt.Sprintf("%s%d%s", prefix, idx, item)
		}

		counter[item]++
		if counter[item] == 1 {
			clean[idx] = item
		} else {
			// use counter to avoid collision
			clean[idx] = fmt.Sprintf("%s%d", item, counter[item])
		}
	}
	return clean
}

// SanitizeColumnNames generates sanitized SQL column names from raw headers.
// If the headers are complete junk it returns cl0, cl1, cl2, etc.
func SanitizeColumnNames(rawheaders []string) []string {
	return SanitizeNames(rawheaders, columnPrefix)
}

// SanitizeTableName sanitizes a single table name, falling back to tb0.
func SanitizeTableName(raw string) string {
	return SanitizeNames([]string{raw}, tablePrefix)[0]
}

// reservedWords is the set of identifiers dodged during sanitization. It is
// the union-ish list of words reserved by at least one supported dialect;
// quoting makes this unnecessary, sanitization makes it mandatory.
var reservedWords = []string{
	"add", "all", "alter", "analyze", "and", "as", "asc", "between", "by", "case",
	"cast", "check", "collate", "column", "commit", "constraint", "create", "cross", "current_date", "current_time",
	"current_timestamp", "database", "databases", "default", "delete", "desc", "distinct", "div", "drop", "else",
	"end", "escape", "except", "exists", "explain", "false", "for", "foreign", "from", "full",
	"generated", "group", "having", "if", "ignore", "in", "index", "inner", "insert", "intersect",
	"interval", "into", "is", "join", "key", "left", "like", "limit", "match", "natural",
	"not", "null", "offset", "on", "or", "order", "outer", "over", "partition", "primary",
	"references", "regexp", "rename", "replace", "restrict", "right", "rollback", "row", "rows", "select",
	"set", "table", "then", "to", "transaction", "trigger", "true", "union", "unique", "update",
	"use", "using", "values", "view", "when", "where", "window", "with",
}

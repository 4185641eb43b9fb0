package schema

import (
	"math"
	"strconv"
	"strings"
)

// InferKind classifies a single raw cell value. A value that fully parses as
// a number is Integer when it has no fractional part, Decimal otherwise. The
// literals true/false (any case) are Bool. Everything else, including the
// empty string and values that only partially look numeric, is Text.
func InferKind(value string) Kind {
	if f, err := strconv.ParseFloat(value, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		if f == math.Trunc(f) {
			return KindInteger
		}
		return KindDecimal
	}
	if strings.EqualFold(value, "true") || strings.EqualFold(value, "false") {
		return KindBool
	}
	return KindText
}

// widen resolves a conflict between the kind inferred so far and the kind of
// a newly sampled value. Text beats everything, Decimal beats Integer, and a
// bool/numeric mix degrades to Text.
func widen(a, b Kind) Kind {
	if a == b {
		return a
	}
	if a == KindText || b == KindText {
		return KindText
	}
	if a == KindBool || b == KindBool {
		return KindText
	}
	// Integer vs Decimal is the only pair left.
	return KindDecimal
}

// InferColumns builds one Column per header field by sampling up to
// sampleSize data rows. sampleSize <= 1 inspects only the first row, trusting
// every later row to conform. Columns with no sampled value default to Text.
// All columns are nullable.
func InferColumns(headers []string, rows [][]string, sampleSize int) []Column {
	if sampleSize < 1 {
		sampleSize = 1
	}
	if sampleSize > len(rows) {
		sampleSize = len(rows)
	}

	cols := make([]Column, len(headers))
	for i, name := range headers {
		cols[i] = Column{Name: name, Kind: KindText, Nullable: true}
	}

	for i := range cols {
		seen := false
		for r := 0; r < sampleSize; r++ {
			if i >= len(rows[r]) {
				continue
			}
			k := InferKind(rows[r][i])
			if !seen {
				cols[i].Kind = k
				seen = true
				continue
			}
			cols[i].Kind = widen(cols[i].Kind, k)
		}
	}
	return cols
}

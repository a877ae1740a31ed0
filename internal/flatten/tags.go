package flatten

import (
	"sort"
	"strings"
)

// Tags flattens the comma-separated project tag string into numbered
// ProjectTag columns. Tokens are sorted ascending before numbering so the
// column assignment is independent of source order. An empty string yields
// an empty row.
func Tags(raw string) Row {
	if raw == "" {
		return Row{}
	}

	tokens := strings.Split(raw, ",")
	sort.Strings(tokens)

	row := make(Row, len(tokens))
	for i, token := range tokens {
		row[col("ProjectTag", i+1)] = token
	}

	return row
}

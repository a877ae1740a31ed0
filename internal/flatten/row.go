// Package flatten converts nested report records into flat column/value
// rows using the legacy numbered-column naming scheme.
package flatten

import (
	"errors"
	"fmt"
	"strconv"
)

// Flattening errors.
var (
	// ErrColumnCollision indicates two row fragments carried the same
	// column name. The index-qualified naming scheme keeps fragment key
	// spaces disjoint by construction, so a collision is a naming-scheme
	// defect and aborts the record instead of overwriting data.
	ErrColumnCollision = errors.New("column name collision during row merge")
)

// Row is one flat record: qualified column name to scalar value. Values are
// strings, ints, decimals, or nil; nil is preserved until serialization to
// distinguish "explicitly absent" from zero or empty string. Rows are built
// fresh by merging fragments, never mutated afterward.
type Row map[string]any

// Merge composes fragments into a new row, failing fast on any overlapping
// key space.
func Merge(fragments ...Row) (Row, error) {
	merged := make(Row)

	for _, fragment := range fragments {
		for name, value := range fragment {
			if _, dup := merged[name]; dup {
				return nil, fmt.Errorf("%w: %s", ErrColumnCollision, name)
			}

			merged[name] = value
		}
	}

	return merged, nil
}

// col builds a qualified column name from a family and 1-based positional
// suffixes, e.g. col("QuantityName", 1, 2) == "QuantityName.1.2".
func col(family string, indices ...int) string {
	name := family
	for _, i := range indices {
		name += "." + strconv.Itoa(i)
	}

	return name
}

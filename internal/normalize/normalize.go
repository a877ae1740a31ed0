// Package normalize assembles one flat row per top-level report record,
// combining direct field copies, derived fields, and the repeating-group
// flattenings.
package normalize

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/IMLS/state-program-report/internal/document"
	"github.com/IMLS/state-program-report/internal/flatten"
)

// Rekey maps a raw field name to its column name: the attribute marker is
// stripped and the first letter capitalized, so "@id" becomes "Id" and
// "title" becomes "Title".
func Rekey(key string) string {
	key = strings.TrimPrefix(key, "@")
	if key == "" {
		return key
	}

	r, size := utf8.DecodeRuneInString(key)

	return string(unicode.ToUpper(r)) + key[size:]
}

// scalarFields copies every scalar child into a row under its rekeyed
// column name, failing fast when two raw keys rekey to the same column.
func scalarFields(record *document.Node, skip map[string]bool) (flatten.Row, error) {
	fields := make(flatten.Row)

	for _, key := range record.Keys() {
		child := record.Get(key)
		if child.Kind() != document.Scalar {
			continue
		}

		name := Rekey(key)
		if skip[name] {
			continue
		}

		if _, dup := fields[name]; dup {
			return nil, fmt.Errorf("%w: %s", flatten.ErrColumnCollision, name)
		}

		fields[name] = child.Value()
	}

	return fields, nil
}

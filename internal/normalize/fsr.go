package normalize

import (
	"github.com/IMLS/state-program-report/internal/document"
	"github.com/IMLS/state-program-report/internal/flatten"
)

// fsrSkip drops the always-redundant Comment field before re-keying.
var fsrSkip = map[string]bool{
	"Comment": true,
}

// FSR normalizes one financial status report record: every remaining field
// is re-keyed (attribute marker stripped, first letter capitalized) and the
// State partition column injected.
func FSR(record *document.Node, state string) (flatten.Row, error) {
	fields, err := scalarFields(record, fsrSkip)
	if err != nil {
		return nil, err
	}

	return flatten.Merge(fields, flatten.Row{"State": state})
}

package normalize

import (
	"fmt"

	"github.com/IMLS/state-program-report/internal/document"
	"github.com/IMLS/state-program-report/internal/flatten"
)

// projectSkip names the scalar fields the generic copy must leave alone:
// Tags flattens into numbered ProjectTag columns and Abstract passes
// through the sanitizer.
var projectSkip = map[string]bool{
	"Tags":     true,
	"Abstract": true,
}

// Project normalizes one project record into a flat row: rekeyed scalar
// copies, derived grantee fields, the sanitized abstract and exemplary
// narrative, all repeating-group flattenings, and the injected State
// partition column.
func Project(record *document.Node, state string, sanitize flatten.Sanitizer) (flatten.Row, error) {
	scalars, err := scalarFields(record, projectSkip)
	if err != nil {
		return nil, err
	}

	grantee := record.Get("Grantee")

	derived := flatten.Row{
		"State":          state,
		"Abstract":       flatten.Sanitized(record.Get("Abstract"), sanitize),
		"Exemplary":      flatten.Sanitized(record.Get("Exemplary").Get("ExemplaryNarrative"), sanitize),
		"Grantee":        grantee.Get("Name").Value(),
		"GranteeAddress": mailingAddress(grantee),
	}

	budget, err := flatten.Budget(record.Get("Budgets").Get("Budget").Items())
	if err != nil {
		return nil, fmt.Errorf("budget flattening failed: %w", err)
	}

	intents, err := flatten.Intents(record.Get("Intents").Get("Intent").Items())
	if err != nil {
		return nil, fmt.Errorf("intent flattening failed: %w", err)
	}

	activities, err := flatten.Activities(record.Get("Activities").Get("Activity").Items(), sanitize)
	if err != nil {
		return nil, fmt.Errorf("activity flattening failed: %w", err)
	}

	return flatten.Merge(
		scalars,
		derived,
		budget,
		intents,
		activities,
		flatten.Links(record.Get("Links").Get("Link").Items()),
		flatten.Tags(record.Get("Tags").Text()),
	)
}

// mailingAddress joins up to three address lines plus city, state, and zip.
// The whole field is null when the first address line is absent, regardless
// of the other parts.
func mailingAddress(grantee *document.Node) any {
	first := grantee.Get("Address1")
	if first.Kind() != document.Scalar || first.Text() == "" {
		return nil
	}

	address := first.Text()

	for _, line := range []string{"Address2", "Address3"} {
		if part := grantee.Get(line).Text(); part != "" {
			address += ", " + part
		}
	}

	if city := grantee.Get("City").Text(); city != "" {
		address += ", " + city
	}

	if st := grantee.Get("State").Text(); st != "" {
		address += ", " + st
	}

	if zip := grantee.Get("Zip").Text(); zip != "" {
		address += " " + zip
	}

	return address
}

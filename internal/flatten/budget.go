package flatten

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/IMLS/state-program-report/internal/document"
)

// ErrInvalidAmount indicates a budget amount that is present but not
// numeric. Blank amounts accumulate as zero; silently zeroing real data
// would corrupt the financial totals, so this propagates instead.
var ErrInvalidAmount = errors.New("non-numeric budget amount")

// budgetFields are the five funding-source amounts carried by every budget
// line item, in legacy total-column order.
var budgetFields = []string{"LSTA", "State", "Other", "Local", "InKind"}

// Budget flattens the budget line items of one project. Each item emits
// type-tagged amount and narrative columns ("LSTASalaries", passed through
// as written), while five running totals accumulate across all items with
// exact decimal addition. TotalBudget is the sum of the five totals; for an
// empty item list it is the only column, present with a null value.
func Budget(items []*document.Node) (Row, error) {
	if len(items) == 0 {
		return Row{"TotalBudget": nil}, nil
	}

	totals := make([]decimal.Decimal, len(budgetFields))
	fragments := make([]Row, 0, len(items)+1)

	for _, item := range items {
		tag := budgetTypeTag(item.Get("@type").Text())
		fragment := make(Row, len(budgetFields)+1)

		for i, field := range budgetFields {
			raw := item.Get(field)

			amount, err := parseAmount(raw)
			if err != nil {
				return nil, err
			}

			totals[i] = totals[i].Add(amount)
			fragment[field+tag] = raw.Value()
		}

		fragment["Narrative"+tag] = item.Get("Narrative").Value()
		fragments = append(fragments, fragment)
	}

	grand := decimal.Zero
	totalRow := make(Row, len(budgetFields)+1)

	for i, field := range budgetFields {
		totalRow[field+"Total"] = totals[i]
		grand = grand.Add(totals[i])
	}

	totalRow["TotalBudget"] = grand

	return Merge(append(fragments, totalRow)...)
}

// budgetTypeTag derives the column tag from a raw budget type label:
// whitespace is stripped and everything after the first "/" is truncated,
// so "Salaries / Wages / Benefits" tags as "Salaries". Distinct labels that
// truncate to the same tag collide and surface as a merge error.
func budgetTypeTag(raw string) string {
	tag := strings.Join(strings.Fields(raw), "")
	if i := strings.Index(tag, "/"); i >= 0 {
		tag = tag[:i]
	}

	return tag
}

// parseAmount reads a budget amount as an exact decimal. Absent or blank
// values are zero; anything else must parse.
func parseAmount(n *document.Node) (decimal.Decimal, error) {
	if n.Kind() != document.Scalar {
		return decimal.Zero, nil
	}

	s := strings.TrimSpace(n.Text())
	if s == "" {
		return decimal.Zero, nil
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	return amount, nil
}

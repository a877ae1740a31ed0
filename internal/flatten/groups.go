package flatten

import "github.com/IMLS/state-program-report/internal/document"

// Links flattens a project's web link entries.
func Links(items []*document.Node) Row {
	row := make(Row, len(items)*2)

	for i, item := range items {
		n := i + 1
		row[col("LinkText", n)] = item.Get("Text").Value()
		row[col("LinkURL", n)] = item.Get("URL").Value()
	}

	return row
}

// Quantities flattens an activity's quantity entries under the activity's
// 1-based position.
func Quantities(parent int, items []*document.Node) Row {
	row := make(Row, len(items)*2)

	for j, item := range items {
		n := j + 1
		row[col("QuantityName", parent, n)] = item.Get("Name").Value()
		row[col("QuantityValue", parent, n)] = item.Get("Value").Value()
	}

	return row
}

// Institutions flattens an activity's beneficiary institution entries.
func Institutions(parent int, items []*document.Node) Row {
	row := make(Row, len(items)*2)

	for j, item := range items {
		n := j + 1
		row[col("InstitutionName", parent, n)] = item.Get("Name").Value()
		row[col("InstitutionType", parent, n)] = item.Get("Type").Value()
	}

	return row
}

// PartnerAreas flattens an activity's partner organization areas.
func PartnerAreas(parent int, items []*document.Node) Row {
	row := make(Row, len(items))

	for j, item := range items {
		row[col("PartnerArea", parent, j+1)] = item.Value()
	}

	return row
}

// PartnerTypes flattens an activity's partner organization types.
func PartnerTypes(parent int, items []*document.Node) Row {
	row := make(Row, len(items))

	for j, item := range items {
		row[col("PartnerType", parent, j+1)] = item.Value()
	}

	return row
}

package flatten

import "github.com/IMLS/state-program-report/internal/document"

// Sanitizer cleans an HTML-ish free-text field, returning nil when the
// input cannot be processed. A nil result becomes a null column value.
type Sanitizer func(string) *string

// activityFlags are the beneficiary and locale indicator fields copied from
// each activity, suffixed with the activity's position.
var activityFlags = []string{
	"AllAges",
	"AgesBirthFive",
	"AgesSixTwelve",
	"AgesThirteenSeventeen",
	"AgesEighteenTwentyFive",
	"AgesTwentySixSixtyFour",
	"AgesSixtyFivePlus",
	"EconomicDisadvantage",
	"EthnicMinority",
	"ImmigrantRefugee",
	"Disability",
	"LimitedLiteracy",
	"FamiliesIntergenerational",
	"Unemployed",
	"LibraryWorkforce",
	"TargetedOrGeneral",
	"LocaleUrban",
	"LocaleSuburban",
	"LocaleRural",
	"LocaleStatewide",
}

// Activities flattens a project's activities, the richest nested case. Each
// activity contributes its own scalar fields plus four nested repeating
// groups keyed by the activity's 1-based position. TotalActivities is
// always emitted, zero included.
func Activities(items []*document.Node, sanitize Sanitizer) (Row, error) {
	fragments := []Row{{"TotalActivities": len(items)}}

	for i, item := range items {
		n := i + 1

		fragment := Row{
			col("ActivityNumber", n):   n,
			col("ActivityTitle", n):    item.Get("Title").Value(),
			col("ActivityAbstract", n): Sanitized(item.Get("Abstract"), sanitize),
			col("ActivityIntent", n):   item.Get("Intent").Value(),
			col("ActivityType", n):     item.Get("Type").Value(),
			col("ActivityMode", n):     item.Get("Mode").Value(),
			col("ActivityFormat", n):   item.Get("Format").Value(),
		}

		for _, flag := range activityFlags {
			fragment[col(flag, n)] = item.Get(flag).Value()
		}

		fragments = append(fragments,
			fragment,
			Quantities(n, item.Get("Quantities").Get("Quantity").Items()),
			Institutions(n, item.Get("BeneficiaryInstitutions").Get("Institution").Items()),
			PartnerAreas(n, item.Get("PartnerAreas").Get("Area").Items()),
			PartnerTypes(n, item.Get("PartnerTypes").Get("Type").Items()),
		)
	}

	return Merge(fragments...)
}

// Sanitized applies the sanitizer to a scalar field, passing nulls through
// untouched.
func Sanitized(n *document.Node, sanitize Sanitizer) any {
	if n.Kind() != document.Scalar {
		return nil
	}

	if sanitize == nil {
		return n.Text()
	}

	if cleaned := sanitize(n.Text()); cleaned != nil {
		return *cleaned
	}

	return nil
}

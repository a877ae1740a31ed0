package flatten

import "github.com/IMLS/state-program-report/internal/document"

// intentSubjectArity is fixed by the legacy layout: both subject columns
// are always emitted, null when the source carries fewer.
const intentSubjectArity = 2

// Intents flattens a project's intent entries. Each intent carries a name
// and up to two subjects.
func Intents(items []*document.Node) (Row, error) {
	fragments := make([]Row, 0, len(items))

	for i, item := range items {
		n := i + 1
		subjects := item.Get("Subject").Items()

		fragment := Row{
			col("IntentName", n): item.Get("IntentName").Value(),
		}

		for j := 0; j < intentSubjectArity; j++ {
			var value any
			if j < len(subjects) {
				value = subjects[j].Value()
			}

			fragment[col("IntentSubject", n, j+1)] = value
		}

		fragments = append(fragments, fragment)
	}

	return Merge(fragments...)
}

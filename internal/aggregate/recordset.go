// Package aggregate groups normalized rows by state and computes the
// shared header orderings consumed by the CSV writer.
package aggregate

import (
	"github.com/IMLS/state-program-report/internal/flatten"
	"github.com/IMLS/state-program-report/internal/ordering"
)

// RecordSet accumulates normalized rows partitioned by state, preserving
// the order states first appear in the document. It becomes read-only once
// the document is fully processed.
type RecordSet struct {
	order    []string
	projects map[string][]flatten.Row
	fsrs     map[string][]flatten.Row
}

// NewRecordSet returns an empty record set.
func NewRecordSet() *RecordSet {
	return &RecordSet{
		projects: make(map[string][]flatten.Row),
		fsrs:     make(map[string][]flatten.Row),
	}
}

func (rs *RecordSet) noteState(state string) {
	if _, seen := rs.projects[state]; seen {
		return
	}
	if _, seen := rs.fsrs[state]; seen {
		return
	}

	rs.order = append(rs.order, state)
}

// AddProject appends a project row to the state's partition.
func (rs *RecordSet) AddProject(state string, row flatten.Row) {
	rs.noteState(state)
	rs.projects[state] = append(rs.projects[state], row)
}

// AddFSR appends a financial status report row to the state's partition.
func (rs *RecordSet) AddFSR(state string, row flatten.Row) {
	rs.noteState(state)
	rs.fsrs[state] = append(rs.fsrs[state], row)
}

// States returns the partition keys in first-appearance order.
func (rs *RecordSet) States() []string {
	return rs.order
}

// Projects returns the state's project rows in document order.
func (rs *RecordSet) Projects(state string) []flatten.Row {
	return rs.projects[state]
}

// FSRs returns the state's financial status report rows in document order.
func (rs *RecordSet) FSRs(state string) []flatten.Row {
	return rs.fsrs[state]
}

// ProjectHeaders resolves the shared project header ordering from the
// union of column names across every state's rows.
func (rs *RecordSet) ProjectHeaders() []string {
	return rs.headers(rs.projects, ordering.ProjectTemplate)
}

// FSRHeaders resolves the shared financial status report header ordering.
func (rs *RecordSet) FSRHeaders() []string {
	return rs.headers(rs.fsrs, ordering.FSRTemplate)
}

func (rs *RecordSet) headers(partitions map[string][]flatten.Row, tmpl ordering.Template) []string {
	seen := make(map[string]bool)
	var names []string

	for _, state := range rs.order {
		for _, row := range partitions[state] {
			for name := range row {
				if !seen[name] {
					seen[name] = true
					names = append(names, name)
				}
			}
		}
	}

	return ordering.Resolve(names, tmpl)
}

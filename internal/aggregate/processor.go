package aggregate

import (
	"errors"
	"fmt"

	"github.com/IMLS/state-program-report/internal/document"
	"github.com/IMLS/state-program-report/internal/flatten"
	"github.com/IMLS/state-program-report/internal/normalize"
)

// ErrMissingStateName is returned when a State element carries no name
// attribute; rows cannot be partitioned without one.
var ErrMissingStateName = errors.New("state element missing name attribute")

// Processor walks a parsed document and assembles the full record set. A
// record that fails normalization aborts the document; no partial row is
// ever emitted.
type Processor struct {
	sanitize flatten.Sanitizer
}

// NewProcessor creates a processor using the given free-text sanitizer.
func NewProcessor(sanitize flatten.Sanitizer) *Processor {
	return &Processor{sanitize: sanitize}
}

// Process normalizes every record in the document, grouped by state in
// document-encounter order.
func (p *Processor) Process(doc *document.Document) (*RecordSet, error) {
	states, err := doc.States()
	if err != nil {
		return nil, err
	}

	rs := NewRecordSet()

	for i, stateNode := range states {
		state := document.StateName(stateNode)
		if state == "" {
			return nil, fmt.Errorf("%w: index %d", ErrMissingStateName, i)
		}

		for _, fsrNode := range stateNode.Get("FSR").Items() {
			row, err := normalize.FSR(fsrNode, state)
			if err != nil {
				return nil, fmt.Errorf("failed to normalize FSR for %s: %w", state, err)
			}

			rs.AddFSR(state, row)
		}

		for _, projectNode := range stateNode.Get("Projects").Get("Project").Items() {
			row, err := normalize.Project(projectNode, state, p.sanitize)
			if err != nil {
				return nil, fmt.Errorf("failed to normalize project for %s: %w", state, err)
			}

			rs.AddProject(state, row)
		}
	}

	return rs, nil
}

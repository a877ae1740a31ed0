// Package report renders the plain-text run summary printed after a
// conversion.
package report

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/IMLS/state-program-report/internal/aggregate"
)

// Summary renders a width-aligned table of per-state row counts plus a
// totals line.
func Summary(rs *aggregate.RecordSet) string {
	table := [][]string{{"State", "Projects", "FSRs"}}

	totalProjects := 0
	totalFSRs := 0

	for _, state := range rs.States() {
		projects := len(rs.Projects(state))
		fsrs := len(rs.FSRs(state))
		totalProjects += projects
		totalFSRs += fsrs

		table = append(table, []string{state, strconv.Itoa(projects), strconv.Itoa(fsrs)})
	}

	table = append(table, []string{"Total", strconv.Itoa(totalProjects), strconv.Itoa(totalFSRs)})

	return render(table)
}

// render aligns every column to its widest cell using display width, so
// state names outside ASCII still line up.
func render(table [][]string) string {
	colCount := 0
	for _, row := range table {
		if len(row) > colCount {
			colCount = len(row)
		}
	}

	colWidths := make([]int, colCount)
	for _, row := range table {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > colWidths[i] {
				colWidths[i] = w
			}
		}
	}

	var sb strings.Builder

	for rowIdx, row := range table {
		for i, cell := range row {
			if i > 0 {
				sb.WriteString("  ")
			}

			sb.WriteString(cell)

			if pad := colWidths[i] - runewidth.StringWidth(cell); pad > 0 && i < len(row)-1 {
				sb.WriteString(strings.Repeat(" ", pad))
			}
		}

		sb.WriteString("\n")

		if rowIdx == 0 {
			for i, w := range colWidths {
				if i > 0 {
					sb.WriteString("  ")
				}

				sb.WriteString(strings.Repeat("-", w))
			}

			sb.WriteString("\n")
		}
	}

	return sb.String()
}

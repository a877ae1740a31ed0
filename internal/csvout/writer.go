// Package csvout serializes record sets as CSV files: one header line per
// file, one line per row, nulls rendered as empty strings.
package csvout

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/IMLS/state-program-report/internal/aggregate"
	"github.com/IMLS/state-program-report/internal/flatten"
)

var lineBreaks = regexp.MustCompile(`[\r\n]+`)

// WriteRecords writes one header line followed by one line per row. Columns
// missing from a row render as empty strings.
func WriteRecords(w io.Writer, headers []string, rows []flatten.Row) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(headers); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	record := make([]string, len(headers))

	for _, row := range rows {
		for i, header := range headers {
			record[i] = renderValue(row[header])
		}

		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	cw.Flush()

	return cw.Error()
}

// WriteTree writes the per-state and global CSV files under
// baseDir/fiscalYear and returns the written paths relative to baseDir.
func WriteTree(baseDir, fiscalYear string, rs *aggregate.RecordSet) ([]string, error) {
	projectHeaders := rs.ProjectHeaders()
	fsrHeaders := rs.FSRHeaders()

	var written []string
	var allProjects, allFSRs []flatten.Row

	for _, state := range rs.States() {
		stateDir := filepath.Join(fiscalYear, fileName(state))

		projects := rs.Projects(state)
		fsrs := rs.FSRs(state)
		allProjects = append(allProjects, projects...)
		allFSRs = append(allFSRs, fsrs...)

		for _, out := range []struct {
			name    string
			headers []string
			rows    []flatten.Row
		}{
			{"projects.csv", projectHeaders, projects},
			{"fsr.csv", fsrHeaders, fsrs},
		} {
			rel := filepath.Join(stateDir, out.name)
			if err := writeFile(filepath.Join(baseDir, rel), out.headers, out.rows); err != nil {
				return nil, err
			}

			written = append(written, rel)
		}
	}

	for _, out := range []struct {
		name    string
		headers []string
		rows    []flatten.Row
	}{
		{"projects.csv", projectHeaders, allProjects},
		{"fsr.csv", fsrHeaders, allFSRs},
	} {
		rel := filepath.Join(fiscalYear, out.name)
		if err := writeFile(filepath.Join(baseDir, rel), out.headers, out.rows); err != nil {
			return nil, err
		}

		written = append(written, rel)
	}

	return written, nil
}

func writeFile(path string, headers []string, rows []flatten.Row) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := WriteRecords(f, headers, rows); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return f.Close()
}

// renderValue serializes one scalar: null becomes empty string and embedded
// line breaks collapse to a single space.
func renderValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return lineBreaks.ReplaceAllString(t, " ")
	case int:
		return strconv.Itoa(t)
	case decimal.Decimal:
		return t.String()
	default:
		return lineBreaks.ReplaceAllString(fmt.Sprint(t), " ")
	}
}

// fileName maps a state name onto a directory name.
func fileName(state string) string {
	return strings.ReplaceAll(state, " ", "_")
}

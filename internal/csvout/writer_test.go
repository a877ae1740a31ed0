package csvout

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/IMLS/state-program-report/internal/aggregate"
	"github.com/IMLS/state-program-report/internal/flatten"
)

func TestWriteRecords(t *testing.T) {
	headers := []string{"State", "Title", "TotalBudget", "TotalActivities", "Missing"}
	rows := []flatten.Row{
		{
			"State":           "Georgia",
			"Title":           "Line one\nline two",
			"TotalBudget":     decimal.RequireFromString("150.50"),
			"TotalActivities": 2,
		},
		{
			"State":       "Ohio",
			"Title":       nil,
			"TotalBudget": nil,
		},
	}

	var buf bytes.Buffer
	if err := WriteRecords(&buf, headers, rows); err != nil {
		t.Fatalf("WriteRecords returned unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("len(lines) = %d, want 3", len(lines))
	}

	if lines[0] != "State,Title,TotalBudget,TotalActivities,Missing" {
		t.Errorf("header = %q", lines[0])
	}

	// Embedded line breaks collapse so every row stays on one line.
	if lines[1] != "Georgia,Line one line two,150.5,2," {
		t.Errorf("row 1 = %q", lines[1])
	}

	// Nulls and absent columns both render empty.
	if lines[2] != "Ohio,,,," {
		t.Errorf("row 2 = %q", lines[2])
	}
}

func TestRenderValue(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"string", "plain", "plain"},
		{"crlf collapses", "a\r\nb", "a b"},
		{"int", 7, "7"},
		{"decimal", decimal.RequireFromString("0.10"), "0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := renderValue(tt.in); got != tt.want {
				t.Errorf("renderValue(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestWriteTree(t *testing.T) {
	rs := aggregate.NewRecordSet()
	rs.AddProject("Georgia", flatten.Row{"State": "Georgia", "Id": "ga-1"})
	rs.AddFSR("Georgia", flatten.Row{"State": "Georgia", "Status": "Certified"})
	rs.AddProject("New York", flatten.Row{"State": "New York", "Id": "ny-1"})

	dir := t.TempDir()

	written, err := WriteTree(dir, "2023", rs)
	if err != nil {
		t.Fatalf("WriteTree returned unexpected error: %v", err)
	}

	// Two files per state plus the two combined files.
	if len(written) != 6 {
		t.Fatalf("len(written) = %d, want 6", len(written))
	}

	for _, rel := range written {
		if _, err := os.Stat(filepath.Join(dir, rel)); err != nil {
			t.Errorf("missing written file %s: %v", rel, err)
		}
	}

	// State names with spaces become underscore directories.
	nyProjects := filepath.Join("2023", "New_York", "projects.csv")
	found := false
	for _, rel := range written {
		if rel == nyProjects {
			found = true
		}
	}
	if !found {
		t.Errorf("written = %v, want to include %s", written, nyProjects)
	}

	// The combined file carries rows from every state.
	data, err := os.ReadFile(filepath.Join(dir, "2023", "projects.csv"))
	if err != nil {
		t.Fatalf("failed to read combined projects file: %v", err)
	}

	content := string(data)
	if !strings.Contains(content, "ga-1") || !strings.Contains(content, "ny-1") {
		t.Errorf("combined projects missing rows:\n%s", content)
	}

	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	if len(lines) != 3 {
		t.Errorf("combined projects lines = %d, want 3", len(lines))
	}

	// Per-state file carries only its own rows.
	data, err = os.ReadFile(filepath.Join(dir, "2023", "Georgia", "projects.csv"))
	if err != nil {
		t.Fatalf("failed to read state projects file: %v", err)
	}

	if strings.Contains(string(data), "ny-1") {
		t.Error("Georgia projects file contains New York rows")
	}
}

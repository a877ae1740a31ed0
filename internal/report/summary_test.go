package report

import (
	"strings"
	"testing"

	"github.com/IMLS/state-program-report/internal/aggregate"
	"github.com/IMLS/state-program-report/internal/flatten"
)

func TestSummary(t *testing.T) {
	rs := aggregate.NewRecordSet()
	rs.AddProject("Georgia", flatten.Row{"Id": "ga-1"})
	rs.AddProject("Georgia", flatten.Row{"Id": "ga-2"})
	rs.AddFSR("Georgia", flatten.Row{"Status": "Certified"})
	rs.AddProject("Ohio", flatten.Row{"Id": "oh-1"})

	out := Summary(rs)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	// Header, separator, two states, totals.
	if len(lines) != 5 {
		t.Fatalf("len(lines) = %d, want 5:\n%s", len(lines), out)
	}

	if fields := strings.Fields(lines[0]); len(fields) != 3 || fields[0] != "State" {
		t.Errorf("header = %q", lines[0])
	}

	if !strings.HasPrefix(lines[1], "---") {
		t.Errorf("separator = %q", lines[1])
	}

	georgia := strings.Fields(lines[2])
	if len(georgia) != 3 || georgia[0] != "Georgia" || georgia[1] != "2" || georgia[2] != "1" {
		t.Errorf("Georgia row = %q", lines[2])
	}

	total := strings.Fields(lines[4])
	if len(total) != 3 || total[0] != "Total" || total[1] != "3" || total[2] != "1" {
		t.Errorf("Total row = %q", lines[4])
	}
}

func TestSummary_Alignment(t *testing.T) {
	rs := aggregate.NewRecordSet()
	rs.AddProject("District of Columbia", flatten.Row{"Id": "dc-1"})

	out := Summary(rs)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	// The count columns start at the same offset on every row.
	offset := strings.Index(lines[0], "Projects")
	if offset < 0 {
		t.Fatalf("header missing Projects column: %q", lines[0])
	}

	for _, line := range lines[2:] {
		fields := strings.Fields(line)
		counts := strings.Index(line, fields[len(fields)-2])
		if counts != offset {
			t.Errorf("count column at %d, want %d: %q", counts, offset, line)
		}
	}
}

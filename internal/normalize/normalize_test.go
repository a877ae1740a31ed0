package normalize

import (
	"testing"

	"github.com/IMLS/state-program-report/internal/document"
)

func TestRekey(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"@id", "Id"},
		{"@version", "Version"},
		{"title", "Title"},
		{"StartDate", "StartDate"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Rekey(tt.key); got != tt.want {
			t.Errorf("Rekey(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestScalarFields(t *testing.T) {
	record := document.NewObject(map[string]*document.Node{
		"@id":     document.NewScalar("p-1"),
		"Title":   document.NewScalar("A Project"),
		"Skipped": document.NewScalar("nope"),
		"Nested":  document.NewObject(map[string]*document.Node{"X": document.NewScalar("1")}),
	})

	fields, err := scalarFields(record, map[string]bool{"Skipped": true})
	if err != nil {
		t.Fatalf("scalarFields returned unexpected error: %v", err)
	}

	if len(fields) != 2 {
		t.Fatalf("len(fields) = %d, want 2", len(fields))
	}

	if fields["Id"] != "p-1" {
		t.Errorf("Id = %v, want p-1", fields["Id"])
	}

	if fields["Title"] != "A Project" {
		t.Errorf("Title = %v, want A Project", fields["Title"])
	}
}

package ordering

import (
	"math/rand"
	"reflect"
	"sort"
	"testing"
)

func TestResolve_TemplateOrder(t *testing.T) {
	names := []string{"Title", "State", "Status", "Id"}

	want := []string{"State", "Id", "Status", "Title"}
	if got := Resolve(names, ProjectTemplate); !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve = %v, want %v", got, want)
	}
}

func TestResolve_GroupInterleaving(t *testing.T) {
	names := []string{
		"IntentSubject.2.1",
		"IntentName.1",
		"IntentSubject.1.2",
		"IntentName.2",
		"IntentSubject.1.1",
		"IntentSubject.2.2",
	}

	// Grouped families interleave per instance: all of intent 1's columns
	// before any of intent 2's.
	want := []string{
		"IntentName.1",
		"IntentSubject.1.1",
		"IntentSubject.1.2",
		"IntentName.2",
		"IntentSubject.2.1",
		"IntentSubject.2.2",
	}

	if got := Resolve(names, ProjectTemplate); !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve = %v, want %v", got, want)
	}
}

func TestResolve_NestedGroups(t *testing.T) {
	names := []string{
		"QuantityValue.1.1",
		"ActivityTitle.2",
		"QuantityName.2.1",
		"ActivityNumber.1",
		"QuantityName.1.1",
		"ActivityNumber.2",
		"ActivityTitle.1",
		"QuantityValue.2.1",
		"InstitutionName.1.1",
	}

	want := []string{
		"ActivityNumber.1",
		"ActivityTitle.1",
		"QuantityName.1.1",
		"QuantityValue.1.1",
		"InstitutionName.1.1",
		"ActivityNumber.2",
		"ActivityTitle.2",
		"QuantityName.2.1",
		"QuantityValue.2.1",
	}

	if got := Resolve(names, ProjectTemplate); !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve = %v, want %v", got, want)
	}
}

func TestResolve_UnmatchedAfterMatched(t *testing.T) {
	names := []string{
		"LSTASalaries",
		"TotalActivities",
		"NarrativeSalaries",
		"State",
		"LSTAConsultantFees",
	}

	got := Resolve(names, ProjectTemplate)

	// Matched families keep template order, then every unmatched name in
	// one lexicographic block.
	want := []string{
		"State",
		"TotalActivities",
		"LSTAConsultantFees",
		"LSTASalaries",
		"NarrativeSalaries",
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve = %v, want %v", got, want)
	}
}

func TestResolve_Complete(t *testing.T) {
	names := []string{"State", "Mystery.3", "TotalBudget", "AnotherMystery", "ProjectTag.1"}

	got := Resolve(names, ProjectTemplate)
	if len(got) != len(names) {
		t.Fatalf("len(Resolve) = %d, want %d", len(got), len(names))
	}

	seen := make(map[string]bool, len(got))
	for _, name := range got {
		seen[name] = true
	}

	for _, name := range names {
		if !seen[name] {
			t.Errorf("Resolve dropped %q", name)
		}
	}
}

func TestResolve_Deterministic(t *testing.T) {
	names := []string{
		"State", "Id", "TotalBudget", "IntentName.1", "IntentSubject.1.1",
		"ProjectTag.2", "ProjectTag.1", "LSTASalaries", "TotalActivities",
		"ActivityTitle.1", "QuantityName.1.1",
	}

	want := Resolve(names, ProjectTemplate)

	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 20; i++ {
		shuffled := append([]string(nil), names...)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		if got := Resolve(shuffled, ProjectTemplate); !reflect.DeepEqual(got, want) {
			t.Fatalf("Resolve not input-order independent: %v vs %v", got, want)
		}
	}
}

func TestResolve_FSR(t *testing.T) {
	names := []string{"TotalExpended", "State", "FederalAllotment", "Status"}

	want := []string{"State", "Status", "FederalAllotment", "TotalExpended"}
	if got := Resolve(names, FSRTemplate); !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve = %v, want %v", got, want)
	}
}

func TestSplitName(t *testing.T) {
	tests := []struct {
		name   string
		family string
		major  int
		minor  int
	}{
		{"Abstract", "Abstract", 0, 0},
		{"ProjectTag.3", "ProjectTag", 3, 0},
		{"QuantityName.2.5", "QuantityName", 2, 5},
	}

	for _, tt := range tests {
		family, major, minor := splitName(tt.name)
		if family != tt.family || major != tt.major || minor != tt.minor {
			t.Errorf("splitName(%q) = (%s, %d, %d), want (%s, %d, %d)",
				tt.name, family, major, minor, tt.family, tt.major, tt.minor)
		}
	}
}

func TestProjectTemplate_NoDuplicateFamilies(t *testing.T) {
	var families []string

	var walk func(entries Template)
	walk = func(entries Template) {
		for _, e := range entries {
			if e.Group == nil {
				families = append(families, e.Name)
				continue
			}

			walk(e.Group)
		}
	}

	walk(ProjectTemplate)
	walk(FSRTemplate)

	sorted := append([]string(nil), families...)
	sort.Strings(sorted)

	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] && sorted[i] != "State" && sorted[i] != "Status" {
			t.Errorf("family %q listed twice", sorted[i])
		}
	}
}

package folding

import (
	"slices"
	"testing"
)

func TestParse(t *testing.T) {
	p, err := Parse(" hpph ")
	if err != nil {
		t.Fatal(err)
	}
	if p.String() != "HPPH" || p.Len() != 4 {
		t.Errorf("Parse = %s (%d)", p, p.Len())
	}
	for _, bad := range []string{"", "H", "HXP"} {
		if _, err := Parse(bad); err == nil {
			t.Errorf("Parse(%q) should fail", bad)
		}
	}
}

func TestActionsPruneSymmetry(t *testing.T) {
	p, _ := Parse("HPPHP")
	tests := []struct {
		steps string
		want  []Dir
	}{
		{"", []Dir{Right}},
		{"R", []Dir{Up, Right}},
		{"RU", []Dir{Up, Right, Left}},
		{"RUL", []Dir{Up, Left}},
		{"RULD", nil},
	}
	for _, tt := range tests {
		if got := p.Actions(Fold{Steps: tt.steps}); !slices.Equal(got, tt.want) {
			t.Errorf("Actions(%q) = %v, want %v", tt.steps, got, tt.want)
		}
	}
}

func TestCostCountsMissedContacts(t *testing.T) {
	p, _ := Parse("HPPH")
	f := Fold{}
	total := 0
	for _, d := range []Dir{Right, Up, Left} {
		var c int
		f, c = p.Result(f, d)
		total += c
	}
	// The last H touches residue 0: one contact out of three.
	if total != 2 {
		t.Errorf("cost = %d, want 2", total)
	}
	if p.Contacts(f) != 1 {
		t.Errorf("Contacts = %d, want 1", p.Contacts(f))
	}
	if !p.IsGoal(f) {
		t.Error("all residues placed should be a goal")
	}
	if got := p.Format(f); got != "HP\nHP\n" {
		t.Errorf("Format = %q", got)
	}
}

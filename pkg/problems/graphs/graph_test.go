package graphs

import (
	"errors"
	"slices"
	"testing"
)

func TestExerciseShape(t *testing.T) {
	g := Exercise()
	if got := len(g.Nodes()); got != 10 {
		t.Errorf("nodes = %d, want 10", got)
	}
	if got := len(g.Edges()); got != 16 {
		t.Errorf("edges = %d, want 16", got)
	}
	if got := g.Goals(); !slices.Equal(got, []string{"G1", "G2"}) {
		t.Errorf("Goals() = %v", got)
	}
	if got := g.Actions("S"); !slices.Equal(got, []string{"A", "B", "D"}) {
		t.Errorf("Actions(S) = %v, want [A B D]", got)
	}
	if h, ok := g.HeuristicOf("S"); !ok || h != 7 {
		t.Errorf("HeuristicOf(S) = %v, %v", h, ok)
	}
}

func TestPathCost(t *testing.T) {
	tests := []struct {
		graph   *Graph
		path    []string
		want    float64
		wantErr bool
	}{
		{Exercise(), []string{"S", "D", "C", "F", "G2"}, 14, false},
		{ExerciseTwo(), []string{"S", "B", "I", "H", "G1"}, 19, false},
		{Exercise(), []string{"S"}, 0, false},
		{Exercise(), []string{"S", "G1"}, 0, true},
	}
	for _, tt := range tests {
		got, err := tt.graph.PathCost(tt.path)
		if (err != nil) != tt.wantErr {
			t.Fatalf("PathCost(%v) error = %v", tt.path, err)
		}
		if got != tt.want {
			t.Errorf("PathCost(%v) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestBuilderErrors(t *testing.T) {
	if _, err := NewBuilder().Edge("a", "b", -1).Goal("b").Build(); !errors.Is(err, ErrNegativeCost) {
		t.Errorf("negative cost error = %v", err)
	}
	if _, err := NewBuilder().Edge("S", "G", 5).Edge("S", "G", 1).Goal("G").Build(); !errors.Is(err, ErrDuplicateEdge) {
		t.Errorf("parallel arc error = %v, want ErrDuplicateEdge", err)
	}
	if _, err := NewBuilder().Edge("a", "b", 1).Build(); err == nil {
		t.Error("graph without goals should fail")
	}
	g := New()
	if err := g.AddGoal("x"); !errors.Is(err, ErrUnknownNode) {
		t.Errorf("AddGoal on unknown node error = %v", err)
	}
	if err := g.SetHeuristic("x", 1); !errors.Is(err, ErrUnknownNode) {
		t.Errorf("SetHeuristic on unknown node error = %v", err)
	}
}

func TestResultPanicsOnMissingArc(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Result on a missing arc should panic")
		}
	}()
	Exercise().Result("S", "G1")
}

func TestMissingHeuristicIsZero(t *testing.T) {
	g := NewBuilder().Edge("a", "b", 1).Goal("b").MustBuild()
	if h := g.Heuristic("a"); h != 0 {
		t.Errorf("Heuristic(a) = %v, want 0", h)
	}
}

func TestReverseArcIsNotDuplicate(t *testing.T) {
	g, err := NewBuilder().Edge("S", "G", 5).Edge("G", "S", 1).Edge("S", "M", 1).Edge("M", "G", 1).Goal("G").Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if got := g.Actions("S"); !slices.Equal(got, []string{"G", "M"}) {
		t.Errorf("Actions(S) = %v, want [G M]", got)
	}
	if _, c := g.Result("S", "G"); c != 5 {
		t.Errorf("Result(S, G) cost = %v, want 5", c)
	}
	if _, c := g.Result("G", "S"); c != 1 {
		t.Errorf("Result(G, S) cost = %v, want 1", c)
	}
}

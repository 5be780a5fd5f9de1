package search_test

import (
	"cmp"
	"container/heap"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/wayfinder/pkg/problems/folding"
	"github.com/matzehuels/wayfinder/pkg/problems/graphs"
	"github.com/matzehuels/wayfinder/pkg/problems/puzzle"
	"github.com/matzehuels/wayfinder/pkg/problems/queens"
	"github.com/matzehuels/wayfinder/pkg/problems/vacuum"
	"github.com/matzehuels/wayfinder/pkg/search"
)

// checkPlan replays res.Plan from initial and verifies it reproduces the
// reported terminal state and cost.
func checkPlan[S comparable, A any, C search.Cost](t *testing.T, p search.Problem[S, A, C], initial S, res search.Result[S, A, C]) {
	t.Helper()
	if !res.Found {
		t.Fatalf("no solution found: %v", res)
	}
	state := initial
	var total C
	for _, a := range res.Plan {
		next, cost := p.Result(state, a)
		state = next
		total += cost
	}
	if state != res.State {
		t.Errorf("replayed state = %v, want %v", state, res.State)
	}
	if total != res.Cost {
		t.Errorf("replayed cost = %v, want %v", total, res.Cost)
	}
	if !p.IsGoal(state) {
		t.Errorf("replayed state %v is not a goal", state)
	}
}

func TestClassicVacuum(t *testing.T) {
	w := vacuum.Classic()
	left, right := vacuum.Pos{X: 0}, vacuum.Pos{X: 1}

	bothDirty, _ := w.Start(left, left, right)
	leftDirty, _ := w.Start(left, left)
	clean, _ := w.Start(right)

	tests := []struct {
		name  string
		start vacuum.State
		want  []vacuum.Action
	}{
		{"BothDirty", bothDirty, []vacuum.Action{vacuum.Suck, vacuum.Right, vacuum.Suck}},
		{"LeftDirty", leftDirty, []vacuum.Action{vacuum.Suck}},
		{"AlreadyClean", clean, []vacuum.Action{}},
	}
	for _, tt := range tests {
		for _, s := range search.Strategies() {
			t.Run(tt.name+"/"+s.String(), func(t *testing.T) {
				res := search.New[vacuum.State, vacuum.Action, int](w, s).Search(tt.start)
				checkPlan(t, w, tt.start, res)
				if !slices.Equal(res.Plan, tt.want) {
					t.Errorf("Plan = %v, want %v", res.Plan, tt.want)
				}
			})
		}
	}
}

func TestGridVacuumOptimal(t *testing.T) {
	w, err := vacuum.New(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	start, _ := w.Start(vacuum.Pos{X: 1, Y: 1}, vacuum.Pos{}, vacuum.Pos{X: 2, Y: 2}, vacuum.Pos{X: 2})

	tests := []struct {
		strategy  search.Strategy
		wantCost  int
		exactCost bool
	}{
		{search.BreadthFirst, 9, true},
		{search.UniformCost, 9, true},
		{search.AStar, 9, true},
		{search.Greedy, 9, false},
		{search.DepthFirst, 9, false},
	}
	for _, tt := range tests {
		t.Run(tt.strategy.String(), func(t *testing.T) {
			res := search.New[vacuum.State, vacuum.Action, int](w, tt.strategy).Search(start)
			checkPlan(t, w, start, res)
			if tt.exactCost && res.Cost != tt.wantCost {
				t.Errorf("Cost = %d, want %d", res.Cost, tt.wantCost)
			}
			if res.Cost < tt.wantCost {
				t.Errorf("Cost = %d is below the optimum %d", res.Cost, tt.wantCost)
			}
		})
	}
}

func TestExerciseGraphs(t *testing.T) {
	tests := []struct {
		name     string
		graph    *graphs.Graph
		strategy search.Strategy
		wantCost float64
		wantPlan []string
	}{
		{"Exercise/ucs", graphs.Exercise(), search.UniformCost, 14, []string{"D", "C", "F", "G2"}},
		{"Exercise/astar", graphs.Exercise(), search.AStar, 14, []string{"D", "C", "F", "G2"}},
		{"Exercise/bfs", graphs.Exercise(), search.BreadthFirst, 15, []string{"A", "B", "G1"}},
		{"Exercise/dfs", graphs.Exercise(), search.DepthFirst, 15, []string{"D", "E", "G2"}},
		{"Exercise/greedy", graphs.Exercise(), search.Greedy, 16, []string{"B", "G1"}},
		{"ExerciseTwo/ucs", graphs.ExerciseTwo(), search.UniformCost, 19, []string{"B", "I", "H", "G1"}},
		{"ExerciseTwo/astar", graphs.ExerciseTwo(), search.AStar, 19, []string{"B", "I", "H", "G1"}},
		{"ExerciseTwo/bfs", graphs.ExerciseTwo(), search.BreadthFirst, 20, []string{"A", "H", "G1"}},
		{"ExerciseTwo/dfs", graphs.ExerciseTwo(), search.DepthFirst, 23, []string{"D", "C", "G2"}},
		{"ExerciseTwo/greedy", graphs.ExerciseTwo(), search.Greedy, 20, []string{"A", "H", "G1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := search.New[string, string, float64](tt.graph, tt.strategy).Search("S")
			checkPlan(t, tt.graph, "S", res)
			if res.Cost != tt.wantCost {
				t.Errorf("Cost = %v, want %v", res.Cost, tt.wantCost)
			}
			if !slices.Equal(res.Plan, tt.wantPlan) {
				t.Errorf("Plan = %v, want %v", res.Plan, tt.wantPlan)
			}
		})
	}
}

func TestExerciseStatistics(t *testing.T) {
	res := search.New[string, string, float64](graphs.Exercise(), search.AStar).Search("S")
	if res.Iterations != 9 {
		t.Errorf("Iterations = %d, want 9", res.Iterations)
	}
	if res.MaxFrontier != 5 {
		t.Errorf("MaxFrontier = %d, want 5", res.MaxFrontier)
	}
	if res.Generated != 13 {
		t.Errorf("Generated = %d, want 13", res.Generated)
	}
	if res.DepthLimit != -1 || res.Truncated {
		t.Errorf("DepthLimit/Truncated = %d/%v, want -1/false", res.DepthLimit, res.Truncated)
	}
}

func TestTreeSearchOnCyclicGraph(t *testing.T) {
	g := graphs.Exercise()

	// Cost-ordered tree search still terminates and stays optimal.
	res := search.New[string, string, float64](g, search.AStar, search.WithMode(search.TreeSearch)).Search("S")
	checkPlan(t, g, "S", res)
	if res.Cost != 14 {
		t.Errorf("tree A* Cost = %v, want 14", res.Cost)
	}
	if res.Iterations != 13 || res.MaxFrontier != 15 {
		t.Errorf("tree A* Iterations/MaxFrontier = %d/%d, want 13/15", res.Iterations, res.MaxFrontier)
	}

	// DFS without an explored set follows the S→D→S cycle forever.
	res = search.New[string, string, float64](g, search.DepthFirst,
		search.WithMode(search.TreeSearch), search.WithMaxIterations(500)).Search("S")
	if res.Found || !res.Truncated {
		t.Errorf("tree DFS Found/Truncated = %v/%v, want false/true", res.Found, res.Truncated)
	}
}

func TestIterativeDeepeningGraph(t *testing.T) {
	g := graphs.Exercise()
	e := search.New[string, string, float64](g, search.DepthFirst, search.WithMode(search.TreeSearch))
	res := e.IterativeSearch("S", 10)
	checkPlan(t, g, "S", res)
	if res.DepthLimit != 2 || len(res.Plan) != 2 {
		t.Errorf("DepthLimit/len(Plan) = %d/%d, want 2/2", res.DepthLimit, len(res.Plan))
	}

	// Any bounded attempt is no slower than the whole iterative run.
	single := e.SearchWithMaxDepth("S", 2)
	if single.Found != res.Found {
		t.Errorf("bounded search at the final limit disagrees: %v vs %v", single.Found, res.Found)
	}
}

func TestIterativeMatchesBounded(t *testing.T) {
	w, _ := vacuum.New(3, 2)
	start, _ := w.Start(vacuum.Pos{}, vacuum.Pos{X: 2, Y: 1}, vacuum.Pos{X: 1})
	e := search.New[vacuum.State, vacuum.Action, int](w, search.DepthFirst, search.WithMode(search.TreeSearch))

	firstFound := -1
	for d := 1; d <= 8; d++ {
		if e.SearchWithMaxDepth(start, d).Found {
			firstFound = d
			break
		}
	}
	for ceiling := 1; ceiling <= 8; ceiling++ {
		res := e.IterativeSearch(start, ceiling)
		want := firstFound != -1 && firstFound <= ceiling
		if res.Found != want {
			t.Errorf("ceiling %d: Found = %v, want %v", ceiling, res.Found, want)
		}
		if res.Found {
			checkPlan(t, w, start, res)
		}
	}
}

func TestArenaMatchesHeap(t *testing.T) {
	g := graphs.ExerciseTwo()
	arena := search.NewArena[string, string, float64](16)

	for _, s := range search.Strategies() {
		for _, mode := range []search.Mode{search.GraphSearch, search.TreeSearch} {
			t.Run(fmt.Sprintf("%v/%v", s, mode), func(t *testing.T) {
				opts := []search.Option{search.WithMode(mode), search.WithMaxIterations(5000)}
				plain := search.New[string, string, float64](g, s, opts...).Search("S")
				pooled := search.NewWithArena(g, s, arena, opts...).Search("S")

				if plain.Found != pooled.Found || plain.Cost != pooled.Cost {
					t.Errorf("arena = %v/%v, heap = %v/%v", pooled.Found, pooled.Cost, plain.Found, plain.Cost)
				}
				if !slices.Equal(plain.Plan, pooled.Plan) {
					t.Errorf("arena plan %v, heap plan %v", pooled.Plan, plain.Plan)
				}
				if plain.Iterations != pooled.Iterations || plain.Generated != pooled.Generated {
					t.Errorf("arena stats %d/%d, heap stats %d/%d",
						pooled.Iterations, pooled.Generated, plain.Iterations, plain.Generated)
				}
			})
		}
	}
}

func TestArenaPlanSurvivesNextEpisode(t *testing.T) {
	g := graphs.Exercise()
	arena := search.NewArena[string, string, float64](4)
	e := search.NewWithArena(g, search.AStar, arena)

	first := e.Search("S")
	want := slices.Clone(first.Plan)
	e.Search("A") // resets the arena
	if !slices.Equal(first.Plan, want) {
		t.Errorf("plan changed after the next episode: %v, want %v", first.Plan, want)
	}
}

func TestExplorerReuse(t *testing.T) {
	g := graphs.Exercise()
	e := search.New[string, string, float64](g, search.UniformCost)
	a := e.Search("S")
	b := e.Search("S")
	if a.Cost != b.Cost || a.Iterations != b.Iterations || a.Generated != b.Generated {
		t.Errorf("second run differs: %+v vs %+v", b, a)
	}
	if got := e.Search("E"); !got.Found || got.Cost != 7 {
		t.Errorf("Search(E) = %v/%v, want true/7", got.Found, got.Cost)
	}
	if got := e.Search("G1"); !got.Found || len(got.Plan) != 0 || got.Cost != 0 {
		t.Errorf("Search(G1) should be an empty plan at cost 0, got %+v", got)
	}
}

func TestUnreachableGoal(t *testing.T) {
	g := graphs.NewBuilder().Edge("S", "A", 1).Edge("A", "S", 1).Goal("Z").MustBuild()
	for _, s := range search.Strategies() {
		res := search.New[string, string, float64](g, s).Search("S")
		if res.Found || res.Truncated {
			t.Errorf("%v: Found/Truncated = %v/%v, want false/false", s, res.Found, res.Truncated)
		}
		if res.Iterations != 2 {
			t.Errorf("%v: Iterations = %d, want 2", s, res.Iterations)
		}
		if res.Plan != nil {
			t.Errorf("%v: Plan = %v, want nil", s, res.Plan)
		}
	}
}

func TestPuzzle(t *testing.T) {
	p, err := puzzle.New(3)
	if err != nil {
		t.Fatal(err)
	}
	// Two blank moves from the goal.
	start, err := p.Parse([]int{1, 2, 3, 4, 0, 6, 7, 5, 8})
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range []search.Strategy{search.BreadthFirst, search.UniformCost, search.AStar} {
		t.Run(s.String(), func(t *testing.T) {
			res := search.New[puzzle.Board, puzzle.Move, int](p, s).Search(start)
			checkPlan(t, p, start, res)
			if res.Cost != 2 {
				t.Errorf("Cost = %d, want 2", res.Cost)
			}
		})
	}
}

func TestQueensTreeArena(t *testing.T) {
	for _, n := range []int{4, 6, 8} {
		b, _ := queens.New(n)
		arena := search.NewArena[queens.Placement, int, int](0)
		e := search.NewWithArena(b, search.DepthFirst, arena, search.WithMode(search.TreeSearch))
		res := e.Search(queens.Placement{})
		checkPlan(t, b, queens.Placement{}, res)
		rows := res.State.Rows()
		if len(rows) != n {
			t.Fatalf("n=%d: placed %d queens", n, len(rows))
		}
		for i := range rows {
			for j := i + 1; j < len(rows); j++ {
				if rows[i] == rows[j] || j-i == abs(rows[i]-rows[j]) {
					t.Errorf("n=%d: queens %d and %d attack each other", n, i, j)
				}
			}
		}
	}

	b, _ := queens.New(3)
	if res := search.New[queens.Placement, int, int](b, search.DepthFirst).Search(queens.Placement{}); res.Found {
		t.Error("3-queens has no solution")
	}
}

func TestFoldingMaximizesContacts(t *testing.T) {
	tests := []struct {
		seq          string
		wantContacts int
	}{
		{"HPPH", 1},
		{"HPPHPPHH", 3},
	}
	for _, tt := range tests {
		t.Run(tt.seq, func(t *testing.T) {
			p, err := folding.Parse(tt.seq)
			if err != nil {
				t.Fatal(err)
			}
			arena := search.NewArena[folding.Fold, folding.Dir, int](256)
			res := search.NewWithArena(p, search.UniformCost, arena, search.WithMode(search.TreeSearch)).Search(folding.Fold{})
			checkPlan(t, p, folding.Fold{}, res)
			if got := p.Contacts(res.State); got != tt.wantContacts {
				t.Errorf("Contacts = %d, want %d (fold %v)", got, tt.wantContacts, res.State)
			}
		})
	}
}

// dijkstra computes single-source shortest path costs independently of the
// engine.
func dijkstra(g *graphs.Graph, src string) map[string]float64 {
	dist := map[string]float64{src: 0}
	pq := &distHeap{{src, 0}}
	for pq.Len() > 0 {
		cur := heap.Pop(pq).(distItem)
		if cur.d > dist[cur.node] {
			continue
		}
		for _, e := range g.Edges() {
			if e.From != cur.node {
				continue
			}
			nd := cur.d + e.Cost
			if old, ok := dist[e.To]; !ok || nd < old {
				dist[e.To] = nd
				heap.Push(pq, distItem{e.To, nd})
			}
		}
	}
	return dist
}

type distItem struct {
	node string
	d    float64
}

type distHeap []distItem

func (h distHeap) Len() int           { return len(h) }
func (h distHeap) Less(i, j int) bool { return h[i].d < h[j].d }
func (h distHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *distHeap) Push(x any)        { *h = append(*h, x.(distItem)) }
func (h *distHeap) Pop() any {
	old := *h
	it := old[len(old)-1]
	*h = old[:len(old)-1]
	return it
}

func TestUniformCostMatchesDijkstra(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for trial := range 40 {
		const nodes = 12
		b := graphs.NewBuilder()
		name := func(i int) string { return fmt.Sprintf("n%d", i) }
		for i := range nodes {
			for j := range nodes {
				if i != j && rng.IntN(4) == 0 {
					b.Edge(name(i), name(j), float64(rng.IntN(20)))
				}
			}
		}
		goal := name(nodes - 1)
		g, err := b.Goal(goal).Build()
		if err != nil {
			t.Fatal(err)
		}
		want, reachable := dijkstra(g, name(0))[goal]

		for _, s := range []search.Strategy{search.UniformCost, search.AStar} {
			res := search.New[string, string, float64](g, s).Search(name(0))
			if res.Found != reachable {
				t.Fatalf("trial %d %v: Found = %v, reachable = %v", trial, s, res.Found, reachable)
			}
			if !reachable {
				continue
			}
			checkPlan(t, g, name(0), res)
			if cmp.Compare(res.Cost, want) != 0 {
				t.Errorf("trial %d %v: Cost = %v, Dijkstra = %v", trial, s, res.Cost, want)
			}
		}
	}
}

func TestBreadthFirstIsShallowest(t *testing.T) {
	w, _ := vacuum.New(4, 2)
	start, _ := w.Start(vacuum.Pos{X: 1, Y: 1}, vacuum.Pos{}, vacuum.Pos{X: 3}, vacuum.Pos{X: 2, Y: 1})
	bfs := search.New[vacuum.State, vacuum.Action, int](w, search.BreadthFirst).Search(start)
	ucs := search.New[vacuum.State, vacuum.Action, int](w, search.UniformCost).Search(start)
	if len(bfs.Plan) != len(ucs.Plan) {
		t.Errorf("BFS plan length %d, shortest %d", len(bfs.Plan), len(ucs.Plan))
	}
}

func TestResultString(t *testing.T) {
	found := search.New[string, string, float64](graphs.Exercise(), search.AStar).Search("S")
	if s := found.String(); !strings.Contains(s, "actions: [D C F G2]") || !strings.Contains(s, "cost: 14") {
		t.Errorf("String() = %q", s)
	}
	g := graphs.NewBuilder().Edge("S", "A", 1).Goal("Z").MustBuild()
	missing := search.New[string, string, float64](g, search.BreadthFirst).Search("S")
	if s := missing.String(); !strings.Contains(s, "no solution found") {
		t.Errorf("String() = %q", s)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

package search_test

import (
	"fmt"

	"github.com/matzehuels/wayfinder/pkg/problems/graphs"
	"github.com/matzehuels/wayfinder/pkg/problems/vacuum"
	"github.com/matzehuels/wayfinder/pkg/search"
)

func ExampleExplorer_Search() {
	// Two rooms, both dirty, agent on the left.
	w := vacuum.Classic()
	start, _ := w.Start(vacuum.Pos{X: 0}, vacuum.Pos{X: 0}, vacuum.Pos{X: 1})

	e := search.New[vacuum.State, vacuum.Action, int](w, search.BreadthFirst)
	res := e.Search(start)

	fmt.Println("Found:", res.Found)
	fmt.Println("Plan:", res.Plan)
	fmt.Println("Cost:", res.Cost)
	// Output:
	// Found: true
	// Plan: [Suck Right Suck]
	// Cost: 3
}

func ExampleExplorer_Search_oneDirtyRoom() {
	w := vacuum.Classic()
	start, err := w.Start(vacuum.Pos{X: 0}, vacuum.Pos{X: 0})
	if err != nil {
		fmt.Println(err)
		return
	}
	res := search.New[vacuum.State, vacuum.Action, int](w, search.BreadthFirst).Search(start)
	if res.Found {
		fmt.Println(res.Plan)
	}
	// Output:
	// [Suck]
}

func ExampleExplorer_Search_astar() {
	// Weighted route finding with a heuristic table.
	g := graphs.Exercise()
	res := search.New[string, string, float64](g, search.AStar).Search("S")

	fmt.Println("Route:", res.Plan)
	fmt.Println("Cost:", res.Cost)
	// Output:
	// Route: [D C F G2]
	// Cost: 14
}

func ExampleExplorer_IterativeSearch() {
	// Depth-first iterative deepening in tree mode.
	g := graphs.Exercise()
	e := search.New[string, string, float64](g, search.DepthFirst, search.WithMode(search.TreeSearch))
	res := e.IterativeSearch("S", 10)

	fmt.Println("Depth limit:", res.DepthLimit)
	fmt.Println("Route:", res.Plan)
	// Output:
	// Depth limit: 2
	// Route: [B G1]
}

func ExampleFuncs() {
	// Count from 0 to 5 by +1 or +2 steps.
	p := search.Funcs[int, int, int]{
		ActionsFunc: func(int) []int { return []int{2, 1} },
		ResultFunc:  func(s, step int) (int, int) { return s + step, 1 },
		GoalFunc:    func(s int) bool { return s == 5 },
	}
	res := search.New[int, int, int](p, search.BreadthFirst).Search(0)
	fmt.Println(res.Plan, res.Cost)
	// Output:
	// [2 2 1] 3
}

func ExampleFrontier() {
	g := graphs.Exercise()
	f := search.NewFrontier(search.NewPriority(search.ByG[string, string, float64]))

	root := search.NewNode[string, string, float64](nil, g, "S", nil, 0)
	act := "B"
	f.EnqueueOrReplace(search.NewNode(root, g, "B", &act, 7))
	// A cheaper path to B tombstones the first entry.
	replaced := f.EnqueueOrReplace(search.NewNode(root, g, "B", &act, 6))

	n, _ := f.Dequeue()
	fmt.Println("replaced:", replaced)
	fmt.Println("live:", f.Len(), "raw:", f.BackendLen())
	fmt.Println("dequeued g:", n.G())
	// Output:
	// replaced: true
	// live: 0 raw: 1
	// dequeued g: 6
}

// Package search provides a generic best-first state-space search engine.
//
// # Overview
//
// A caller describes a problem through the [Problem] interface: the actions
// executable from a state, the successor state and incremental cost of an
// action, a heuristic estimate of the remaining cost, and a goal test. The
// [Explorer] drives one search episode over that problem and reports the
// outcome as a [Result].
//
// The same driver implements every strategy. Only the ordering of the open
// set changes, selected with a [Strategy]:
//
//   - [BreadthFirst]: FIFO queue
//   - [DepthFirst]: LIFO stack
//   - [UniformCost]: priority by accumulated cost g
//   - [Greedy]: priority by heuristic h
//   - [AStar]: priority by f = g + h
//
// # Basic Usage
//
//	w := vacuum.Classic()
//	start, err := w.Start(vacuum.Pos{X: 0}, vacuum.Pos{X: 0}) // agent on the left, left room dirty
//	if err != nil {
//	    return err
//	}
//	e := search.New[vacuum.State, vacuum.Action, int](w, search.BreadthFirst)
//	res := e.Search(start)
//	if res.Found {
//	    fmt.Println(res.Plan) // [Suck]
//	}
//
// Depth-bounded and iterative-deepening searches use the same explorer:
//
//	res = e.SearchWithMaxDepth(start, 5)
//	res = e.IterativeSearch(start, 20)
//
// # Decrease-Key by Tombstoning
//
// The [Frontier] keeps a state → node index next to its [Backend]. When a
// cheaper path to a state that is still waiting in the open set shows up,
// the older node is marked dead and dropped from the index, and the new node
// is pushed. The dead node stays in the backend and is skipped when it is
// popped. This gives decrease-key semantics on top of queues, stacks and
// binary heaps, none of which can update an entry in place.
//
// # Graph and Tree Search
//
// In [GraphSearch] mode (the default) the explorer keeps an explored set and
// the frontier deduplicates states. In [TreeSearch] mode both are skipped and
// every successor is pushed unconditionally, which is useful when states
// never repeat or when repeats are distinct paths worth exploring.
//
// # Node Lifetime
//
// Nodes are normally ordinary heap objects that reference their parent, so
// live nodes form a DAG that converges on shared ancestors and is reclaimed
// by the garbage collector. [NewWithArena] instead allocates every node from
// an [Arena] that is reset in bulk at the start of each episode. Nodes and
// plans taken from an arena-backed episode must not be used after the next
// episode starts; [Result] copies everything it reports, so results remain
// valid.
//
// # Contract Violations
//
// Programming errors in the engine or in a problem implementation panic with
// a [*ContractError]: a node built with a parent but no action (or the
// reverse), a plan requested from a tombstoned node, or a second live node
// inserted for the same state outside the replace protocol. Failing to find
// a goal is not an error; it is reported as a [Result] with Found == false.
//
// # Concurrency
//
// An Explorer is single-threaded and not safe for concurrent use. Sequential
// reuse is safe: every call resets the frontier, the explored set and the
// arena.
package search

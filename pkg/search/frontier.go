package search

// Frontier is the open set: a [Backend] for ordering plus an index from
// state to the single live node waiting for that state.
//
// The index holds live nodes only. The backend may additionally hold
// tombstoned nodes, which [Frontier.Dequeue] discards. Len therefore counts
// distinct live states while BackendLen counts raw entries.
type Frontier[S comparable, A any, C Cost] struct {
	backend Backend[S, A, C]
	index   map[S]*Node[S, A, C]
}

// NewFrontier wraps backend with an empty index.
func NewFrontier[S comparable, A any, C Cost](backend Backend[S, A, C]) *Frontier[S, A, C] {
	return &Frontier[S, A, C]{
		backend: backend,
		index:   make(map[S]*Node[S, A, C]),
	}
}

// EnqueueOrReplace inserts n unless a live node for the same state is
// already waiting with a path cost no greater than n's. When the waiting
// node is strictly more expensive it is tombstoned and n takes its place.
// It reports whether n was inserted.
func (f *Frontier[S, A, C]) EnqueueOrReplace(n *Node[S, A, C]) bool {
	if old, ok := f.index[n.state]; ok {
		if compareCost(old.g, n.g) <= 0 {
			return false
		}
		old.MarkDead()
		delete(f.index, n.state)
	}
	f.insert(n)
	return true
}

func (f *Frontier[S, A, C]) insert(n *Node[S, A, C]) {
	if old, ok := f.index[n.state]; ok {
		violate("Frontier.insert", "state %v already has live node %v", n.state, old)
	}
	f.index[n.state] = n
	f.backend.Push(n)
}

// Enqueue pushes n without consulting the index. Tree search uses it; a
// node enqueued this way is never replaced.
func (f *Frontier[S, A, C]) Enqueue(n *Node[S, A, C]) {
	f.backend.Push(n)
}

// Dequeue pops the next live node, discarding tombstones on the way. The
// boolean is false once no live node remains.
func (f *Frontier[S, A, C]) Dequeue() (*Node[S, A, C], bool) {
	for {
		n, ok := f.backend.Pop()
		if !ok {
			return nil, false
		}
		if n.dead {
			continue
		}
		if cur, ok := f.index[n.state]; ok && cur == n {
			delete(f.index, n.state)
		}
		return n, true
	}
}

// Contains reports whether a live node for state is waiting.
func (f *Frontier[S, A, C]) Contains(state S) bool {
	_, ok := f.index[state]
	return ok
}

// Len returns the number of distinct live states in the index.
func (f *Frontier[S, A, C]) Len() int { return len(f.index) }

// BackendLen returns the raw backend size, tombstones included.
func (f *Frontier[S, A, C]) BackendLen() int { return f.backend.Len() }

// Reset empties the backend and the index.
func (f *Frontier[S, A, C]) Reset() {
	f.backend.Reset()
	clear(f.index)
}

package search

import "container/heap"

// Backend is the ordered container underneath a [Frontier]. Backends hold
// node references and never inspect liveness; skipping tombstones is the
// frontier's job.
type Backend[S comparable, A any, C Cost] interface {
	Push(n *Node[S, A, C])
	// Pop removes and returns the next node. The boolean is false when the
	// backend is empty.
	Pop() (*Node[S, A, C], bool)
	// Len counts every stored entry, dead ones included.
	Len() int
	Reset()
}

// Key extracts the priority of a node. Lower keys pop first.
type Key[S comparable, A any, C Cost] func(n *Node[S, A, C]) C

// ByG orders nodes by accumulated path cost.
func ByG[S comparable, A any, C Cost](n *Node[S, A, C]) C { return n.g }

// ByH orders nodes by heuristic estimate.
func ByH[S comparable, A any, C Cost](n *Node[S, A, C]) C { return n.h }

// ByF orders nodes by g + h.
func ByF[S comparable, A any, C Cost](n *Node[S, A, C]) C { return n.g + n.h }

// ============================================================================
// FIFO
// ============================================================================

// queueCompactAt is the consumed prefix length after which a Queue shifts its
// live entries back to the start of the slice.
const queueCompactAt = 64

// Queue is a FIFO backend.
type Queue[S comparable, A any, C Cost] struct {
	items []*Node[S, A, C]
	head  int
}

// NewQueue returns an empty FIFO backend.
func NewQueue[S comparable, A any, C Cost]() *Queue[S, A, C] {
	return &Queue[S, A, C]{}
}

func (q *Queue[S, A, C]) Push(n *Node[S, A, C]) { q.items = append(q.items, n) }

func (q *Queue[S, A, C]) Pop() (*Node[S, A, C], bool) {
	if q.head == len(q.items) {
		return nil, false
	}
	n := q.items[q.head]
	q.items[q.head] = nil
	q.head++
	if q.head >= queueCompactAt && q.head*2 >= len(q.items) {
		live := copy(q.items, q.items[q.head:])
		clear(q.items[live:])
		q.items = q.items[:live]
		q.head = 0
	}
	return n, true
}

func (q *Queue[S, A, C]) Len() int { return len(q.items) - q.head }

func (q *Queue[S, A, C]) Reset() {
	clear(q.items)
	q.items = q.items[:0]
	q.head = 0
}

// ============================================================================
// LIFO
// ============================================================================

// Stack is a LIFO backend.
type Stack[S comparable, A any, C Cost] struct {
	items []*Node[S, A, C]
}

// NewStack returns an empty LIFO backend.
func NewStack[S comparable, A any, C Cost]() *Stack[S, A, C] {
	return &Stack[S, A, C]{}
}

func (s *Stack[S, A, C]) Push(n *Node[S, A, C]) { s.items = append(s.items, n) }

func (s *Stack[S, A, C]) Pop() (*Node[S, A, C], bool) {
	last := len(s.items) - 1
	if last < 0 {
		return nil, false
	}
	n := s.items[last]
	s.items[last] = nil
	s.items = s.items[:last]
	return n, true
}

func (s *Stack[S, A, C]) Len() int { return len(s.items) }

func (s *Stack[S, A, C]) Reset() {
	clear(s.items)
	s.items = s.items[:0]
}

// ============================================================================
// Priority
// ============================================================================

// Priority is a binary min-heap backend. Equal keys pop in insertion order.
type Priority[S comparable, A any, C Cost] struct {
	h entries[S, A, C]
}

// NewPriority returns an empty min-heap ordered by key.
func NewPriority[S comparable, A any, C Cost](key Key[S, A, C]) *Priority[S, A, C] {
	return &Priority[S, A, C]{h: entries[S, A, C]{key: key}}
}

func (p *Priority[S, A, C]) Push(n *Node[S, A, C]) {
	heap.Push(&p.h, entry[S, A, C]{node: n, key: p.h.key(n), seq: p.h.seq})
	p.h.seq++
}

func (p *Priority[S, A, C]) Pop() (*Node[S, A, C], bool) {
	if len(p.h.items) == 0 {
		return nil, false
	}
	return heap.Pop(&p.h).(entry[S, A, C]).node, true
}

func (p *Priority[S, A, C]) Len() int { return len(p.h.items) }

func (p *Priority[S, A, C]) Reset() {
	clear(p.h.items)
	p.h.items = p.h.items[:0]
	p.h.seq = 0
}

type entry[S comparable, A any, C Cost] struct {
	node *Node[S, A, C]
	key  C
	seq  uint64
}

// entries implements heap.Interface.
type entries[S comparable, A any, C Cost] struct {
	items []entry[S, A, C]
	key   Key[S, A, C]
	seq   uint64
}

func (e *entries[S, A, C]) Len() int { return len(e.items) }

func (e *entries[S, A, C]) Less(i, j int) bool {
	if c := compareCost(e.items[i].key, e.items[j].key); c != 0 {
		return c < 0
	}
	return e.items[i].seq < e.items[j].seq
}

func (e *entries[S, A, C]) Swap(i, j int) { e.items[i], e.items[j] = e.items[j], e.items[i] }

func (e *entries[S, A, C]) Push(x any) { e.items = append(e.items, x.(entry[S, A, C])) }

func (e *entries[S, A, C]) Pop() any {
	last := len(e.items) - 1
	it := e.items[last]
	e.items[last] = entry[S, A, C]{}
	e.items = e.items[:last]
	return it
}

var (
	_ Backend[int, int, int] = (*Queue[int, int, int])(nil)
	_ Backend[int, int, int] = (*Stack[int, int, int])(nil)
	_ Backend[int, int, int] = (*Priority[int, int, int])(nil)
)

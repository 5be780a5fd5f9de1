package search

// DefaultArenaChunk is the number of nodes per arena chunk when NewArena is
// given a non-positive size.
const DefaultArenaChunk = 4096

// Arena is a chunked node allocator reset in bulk between episodes.
//
// Chunks are kept across resets, so steady-state episodes allocate nothing.
// Every node handed out by an arena is invalid after the next Reset.
type Arena[S comparable, A any, C Cost] struct {
	chunkSize int
	chunks    [][]Node[S, A, C]
	cur       int // chunk being filled
	used      int // nodes used in chunks[cur]
	count     int
}

// NewArena returns an empty arena with chunkSize nodes per chunk.
func NewArena[S comparable, A any, C Cost](chunkSize int) *Arena[S, A, C] {
	if chunkSize <= 0 {
		chunkSize = DefaultArenaChunk
	}
	return &Arena[S, A, C]{chunkSize: chunkSize}
}

// New builds a node in the arena. Arguments and contract are those of
// [NewNode].
func (a *Arena[S, A, C]) New(parent *Node[S, A, C], problem Problem[S, A, C], state S, action *A, cost C) *Node[S, A, C] {
	n := a.alloc()
	n.init(parent, problem, state, action, cost)
	return n
}

func (a *Arena[S, A, C]) alloc() *Node[S, A, C] {
	if a.cur == len(a.chunks) {
		a.chunks = append(a.chunks, make([]Node[S, A, C], a.chunkSize))
	}
	chunk := a.chunks[a.cur]
	n := &chunk[a.used]
	a.used++
	a.count++
	if a.used == len(chunk) {
		a.cur++
		a.used = 0
	}
	return n
}

// Len returns the number of nodes allocated since the last Reset.
func (a *Arena[S, A, C]) Len() int { return a.count }

// Chunks returns the number of chunks held, used or not.
func (a *Arena[S, A, C]) Chunks() int { return len(a.chunks) }

// Reset releases every node at once. Chunk memory is zeroed so states and
// parents from the previous episode are not kept reachable.
func (a *Arena[S, A, C]) Reset() {
	last := min(a.cur, len(a.chunks)-1)
	for i := 0; i <= last; i++ {
		clear(a.chunks[i])
	}
	a.cur, a.used, a.count = 0, 0, 0
}

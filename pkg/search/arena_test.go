package search

import "testing"

func TestArenaAlloc(t *testing.T) {
	p := &line{length: 100}
	a := NewArena[int, int, int](4)

	root := a.New(nil, p, 0, nil, 0)
	prev := root
	step := 1
	for i := 1; i < 10; i++ {
		prev = a.New(prev, p, i, &step, 1)
	}

	if a.Len() != 10 {
		t.Errorf("Len() = %d, want 10", a.Len())
	}
	if a.Chunks() != 3 {
		t.Errorf("Chunks() = %d, want 3 for 10 nodes in chunks of 4", a.Chunks())
	}
	if prev.G() != 9 || prev.Depth() != 9 {
		t.Errorf("tail g/depth = %d/%d, want 9/9", prev.G(), prev.Depth())
	}
	if len(prev.Plan()) != 9 {
		t.Errorf("Plan() length = %d, want 9", len(prev.Plan()))
	}
}

func TestArenaReset(t *testing.T) {
	p := &line{length: 100}
	a := NewArena[int, int, int](2)
	for i := range 5 {
		a.New(nil, p, i, nil, 0)
	}
	chunks := a.Chunks()

	a.Reset()
	if a.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", a.Len())
	}
	if a.Chunks() != chunks {
		t.Errorf("Chunks() after Reset = %d, want %d (memory is kept)", a.Chunks(), chunks)
	}

	n := a.New(nil, p, 42, nil, 0)
	if n.State() != 42 || n.IsDead() || n.Parent() != nil {
		t.Errorf("reused slot not reinitialized: %v", n)
	}
	if a.Chunks() != chunks {
		t.Errorf("allocating after Reset grew the arena to %d chunks", a.Chunks())
	}
}

func TestArenaDefaultChunk(t *testing.T) {
	a := NewArena[int, int, int](0)
	if a.chunkSize != DefaultArenaChunk {
		t.Errorf("chunkSize = %d, want %d", a.chunkSize, DefaultArenaChunk)
	}
	a.Reset() // empty arena
	if a.Len() != 0 {
		t.Errorf("Len() = %d, want 0", a.Len())
	}
}

func TestArenaContract(t *testing.T) {
	p := &line{length: 100}
	a := NewArena[int, int, int](8)
	root := a.New(nil, p, 0, nil, 0)
	mustContract(t, func() { a.New(root, p, 1, nil, 1) })
}

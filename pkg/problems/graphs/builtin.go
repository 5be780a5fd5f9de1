package graphs

// Builder is a fluent helper for literal graphs. Errors are deferred to
// Build.
type Builder struct {
	g   *Graph
	err error
}

// NewBuilder starts an empty graph.
func NewBuilder() *Builder { return &Builder{g: New()} }

// Edge adds an arc.
func (b *Builder) Edge(from, to string, cost float64) *Builder {
	if b.err == nil {
		b.err = b.g.AddEdge(from, to, cost)
	}
	return b
}

// H sets a heuristic value, declaring the node if needed.
func (b *Builder) H(node string, h float64) *Builder {
	b.g.AddNode(node)
	if b.err == nil {
		b.err = b.g.SetHeuristic(node, h)
	}
	return b
}

// Goal marks goal nodes, declaring them if needed.
func (b *Builder) Goal(nodes ...string) *Builder {
	for _, n := range nodes {
		b.g.AddNode(n)
		if b.err == nil {
			b.err = b.g.AddGoal(n)
		}
	}
	return b
}

// Build returns the graph or the first error recorded.
func (b *Builder) Build() (*Graph, error) {
	if b.err != nil {
		return nil, b.err
	}
	if err := b.g.Validate(); err != nil {
		return nil, err
	}
	return b.g, nil
}

// MustBuild is Build for literals known to be valid.
func (b *Builder) MustBuild() *Graph {
	g, err := b.Build()
	if err != nil {
		panic(err)
	}
	return g
}

// Exercise returns the textbook route-finding exercise with start S and
// goals G1 and G2. The cheapest route costs 14 (S D C F G2).
func Exercise() *Graph {
	return NewBuilder().
		Edge("S", "A", 2).Edge("S", "B", 7).Edge("S", "D", 5).
		Edge("A", "B", 4).
		Edge("B", "C", 3).Edge("B", "G1", 9).
		Edge("C", "F", 2).Edge("C", "J", 5).Edge("C", "S", 1).
		Edge("D", "C", 3).Edge("D", "E", 3).Edge("D", "S", 8).
		Edge("E", "G2", 7).
		Edge("F", "D", 1).Edge("F", "G2", 4).
		Edge("J", "G1", 3).
		H("A", 9).H("B", 3).H("C", 2).H("D", 4).H("E", 5).H("F", 3).
		H("G1", 0).H("G2", 0).H("J", 1).H("S", 7).
		Goal("G1", "G2").
		MustBuild()
}

// ExerciseTwo returns the second exercise graph with start S and goals G1
// and G2. The cheapest route costs 19 (S B I H G1). Its heuristic is not
// admissible: h(S) = 20.
func ExerciseTwo() *Graph {
	return NewBuilder().
		Edge("S", "A", 3).Edge("S", "B", 3).Edge("S", "D", 3).
		Edge("A", "E", 1).Edge("A", "H", 8).
		Edge("B", "C", 2).Edge("B", "I", 3).Edge("B", "J", 5).
		Edge("C", "S", 1).Edge("C", "G2", 18).
		Edge("D", "C", 2).
		Edge("E", "D", 2).Edge("E", "H", 7).
		Edge("G1", "E", 2).
		Edge("G2", "B", 15).
		Edge("J", "G2", 12).
		Edge("H", "G1", 9).
		Edge("I", "H", 4).Edge("I", "A", 1).
		H("A", 16).H("B", 16).H("C", 14).H("D", 17).H("E", 15).
		H("G1", 0).H("G2", 0).H("I", 12).H("H", 8).H("J", 10).H("S", 20).
		Goal("G1", "G2").
		MustBuild()
}

package cycle

// Edge is an unordered pair of vertex identifiers. Source and Destination are
// interchangeable; the names only follow the order the pair was written in.
type Edge[V comparable] struct {
	Source      V
	Destination V
}

// IsSelfLoop reports whether the edge connects a vertex to itself.
func (e Edge[V]) IsSelfLoop() bool { return e.Source == e.Destination }

// HasCycle reports whether the undirected graph formed by edges contains a
// cycle. Self-loops and repeated pairs count as cycles. A nil or empty slice is
// acyclic. The slice is not modified.
func HasCycle[V comparable](edges []Edge[V]) bool {
	for _, e := range edges {
		if e.IsSelfLoop() {
			return true
		}
	}

	g, multi := build(edges)
	if multi {
		return true
	}

	p := newPartition(g.order())
	// A non-tree edge is a cycle unless it is the mirror of the edge that
	// discovered v; repeated pairs were already ruled out by build.
	return !p.walk(g.adj, func(st step) bool {
		return st.kind != stepEdge || st.tree || st.nb == p.parent[st.v]
	})
}

// Summary describes the shape of an edge list.
type Summary struct {
	Vertices   int // distinct vertex identifiers
	Edges      int // edge records, including repeats and self-loops
	Components int // connected components
}

// Summarize counts the vertices, edge records and connected components of the
// graph formed by edges. It visits every vertex, so unlike [HasCycle] it never
// stops early.
func Summarize[V comparable](edges []Edge[V]) Summary {
	g, _ := build(edges)
	p := newPartition(g.order())

	s := Summary{Vertices: g.order(), Edges: len(edges)}
	p.walk(g.adj, func(st step) bool {
		if st.kind == stepSeed {
			s.Components++
		}
		return true
	})
	return s
}

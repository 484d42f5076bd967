package cycle

import "github.com/bits-and-blooms/bitset"

// Color is the traversal state of a vertex. A vertex only ever moves forward:
// White -> Gray -> Black.
type Color int

const (
	// White marks a vertex not yet reached by any search.
	White Color = iota
	// Gray marks a vertex on the frontier: discovered but not expanded.
	Gray
	// Black marks a fully expanded vertex.
	Black
)

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Gray:
		return "gray"
	case Black:
		return "black"
	default:
		return "unknown"
	}
}

const noParent = -1

// partition splits the vertices 0..n-1 into white, gray and black sets.
// reached holds gray and black vertices, done holds black ones; white is the
// complement of reached. The frontier queue holds exactly the gray vertices
// in discovery order.
type partition struct {
	n       int
	reached *bitset.BitSet
	done    *bitset.BitSet
	queue   []int
	head    int
	cursor  uint
	parent  []int
}

func newPartition(n int) *partition {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = noParent
	}
	return &partition{
		n:       n,
		reached: bitset.New(uint(n)),
		done:    bitset.New(uint(n)),
		queue:   make([]int, 0, n),
		parent:  parent,
	}
}

func (p *partition) color(v int) Color {
	switch {
	case !p.reached.Test(uint(v)):
		return White
	case p.done.Test(uint(v)):
		return Black
	default:
		return Gray
	}
}

// nextWhite returns the lowest-indexed white vertex. Vertices never return to
// white, so the scan resumes where the previous one stopped.
func (p *partition) nextWhite() (int, bool) {
	i, ok := p.reached.NextClear(p.cursor)
	if !ok || i >= uint(p.n) {
		p.cursor = uint(p.n)
		return 0, false
	}
	p.cursor = i
	return int(i), true
}

// discover moves a white vertex onto the frontier and records the vertex it
// was reached from.
func (p *partition) discover(v, from int) {
	p.reached.Set(uint(v))
	p.parent[v] = from
	p.queue = append(p.queue, v)
}

// expand pops the oldest gray vertex and colors it black.
func (p *partition) expand() (int, bool) {
	if p.head == len(p.queue) {
		return 0, false
	}
	v := p.queue[p.head]
	p.head++
	p.done.Set(uint(v))
	return v, true
}

// stepKind tells a walk visitor what just happened.
type stepKind int

const (
	stepSeed   stepKind = iota // v became gray as the root of a new search
	stepExpand                 // v moved from gray to black
	stepEdge                   // the expanded vertex v looked at neighbor nb
)

// step is one traversal event. For stepEdge, tree reports that nb was white
// and has just been discovered from v.
type step struct {
	kind stepKind
	v    int
	nb   int
	tree bool
}

// walk runs a breadth-first search from every white vertex in index order
// over adj, calling visit after each event. It stops early and returns false
// when visit returns false.
func (p *partition) walk(adj [][]int, visit func(step) bool) bool {
	for {
		seed, ok := p.nextWhite()
		if !ok {
			return true
		}
		p.discover(seed, noParent)
		if !visit(step{kind: stepSeed, v: seed}) {
			return false
		}

		for {
			cur, ok := p.expand()
			if !ok {
				break
			}
			if !visit(step{kind: stepExpand, v: cur}) {
				return false
			}
			for _, nb := range adj[cur] {
				tree := p.color(nb) == White
				if tree {
					p.discover(nb, cur)
				}
				if !visit(step{kind: stepEdge, v: cur, nb: nb, tree: tree}) {
					return false
				}
			}
		}
	}
}

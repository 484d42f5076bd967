package cycle

import (
	"fmt"
	"testing"
)

// counts returns the sizes of the white, gray and black sets.
func (p *partition) counts() (white, gray, black int) {
	reached := int(p.reached.Count())
	black = int(p.done.Count())
	return p.n - reached, reached - black, black
}

func TestPartition_ColorsOnlyMoveForward(t *testing.T) {
	p := newPartition(3)

	for v := 0; v < 3; v++ {
		if got := p.color(v); got != White {
			t.Fatalf("color(%d) = %v, want white", v, got)
		}
	}

	p.discover(1, noParent)
	if got := p.color(1); got != Gray {
		t.Errorf("color(1) after discover = %v, want gray", got)
	}

	v, ok := p.expand()
	if !ok || v != 1 {
		t.Fatalf("expand() = %d, %v, want 1, true", v, ok)
	}
	if got := p.color(1); got != Black {
		t.Errorf("color(1) after expand = %v, want black", got)
	}

	if _, ok := p.expand(); ok {
		t.Error("expand() on empty frontier should report false")
	}
}

func TestPartition_NextWhite(t *testing.T) {
	p := newPartition(4)

	seed, ok := p.nextWhite()
	if !ok || seed != 0 {
		t.Fatalf("nextWhite() = %d, %v, want 0, true", seed, ok)
	}
	p.discover(0, noParent)
	p.discover(2, 0)

	seed, ok = p.nextWhite()
	if !ok || seed != 1 {
		t.Fatalf("nextWhite() = %d, %v, want 1, true", seed, ok)
	}
	p.discover(1, noParent)
	p.discover(3, 1)

	if _, ok := p.nextWhite(); ok {
		t.Error("nextWhite() should report false once every vertex is reached")
	}
}

func TestPartition_EmptyGraph(t *testing.T) {
	p := newPartition(0)
	if _, ok := p.nextWhite(); ok {
		t.Error("nextWhite() on empty partition should report false")
	}
	if _, ok := p.expand(); ok {
		t.Error("expand() on empty partition should report false")
	}
}

// TestPartition_Invariant walks a full traversal and checks after every step
// that white, gray and black cover each vertex exactly once and that the
// frontier queue holds exactly the gray vertices.
func TestPartition_Invariant(t *testing.T) {
	edges := []Edge[int]{
		{0, 1}, {0, 2}, {0, 3}, {1, 4}, {1, 5}, {4, 8}, {4, 9},
		{3, 6}, {3, 7}, {6, 10}, {6, 11}, {20, 21}, {21, 22},
	}
	g, multi := build(edges)
	if multi {
		t.Fatal("build() reported a multi-edge")
	}
	n := g.order()
	p := newPartition(n)

	check := func(step string) {
		t.Helper()
		white, gray, black := p.counts()
		if white+gray+black != n {
			t.Fatalf("%s: white %d + gray %d + black %d != %d vertices", step, white, gray, black, n)
		}
		if frontier := len(p.queue) - p.head; frontier != gray {
			t.Fatalf("%s: frontier has %d entries, gray set has %d", step, frontier, gray)
		}
	}

	check("initial")
	var seeds, expands, treeEdges int
	done := p.walk(g.adj, func(st step) bool {
		switch st.kind {
		case stepSeed:
			seeds++
			if p.color(st.v) != Gray {
				t.Errorf("seed %d is %v, want gray", st.v, p.color(st.v))
			}
		case stepExpand:
			expands++
			if p.color(st.v) != Black {
				t.Errorf("expanded %d is %v, want black", st.v, p.color(st.v))
			}
		case stepEdge:
			if st.tree {
				treeEdges++
				if p.parent[st.nb] != st.v {
					t.Errorf("parent[%d] = %d, want %d", st.nb, p.parent[st.nb], st.v)
				}
			}
		}
		check(fmt.Sprintf("step %+v", st))
		return true
	})

	if !done {
		t.Error("walk() stopped early with a visitor that never stops")
	}
	if white, gray, black := p.counts(); white != 0 || gray != 0 || black != n {
		t.Errorf("final counts = %d/%d/%d, want 0/0/%d", white, gray, black, n)
	}
	if seeds != 2 || expands != n || treeEdges != len(edges) {
		t.Errorf("seeds %d, expands %d, tree edges %d; want 2, %d, %d", seeds, expands, treeEdges, n, len(edges))
	}
}

func TestPartition_WalkStops(t *testing.T) {
	g, _ := build([]Edge[int]{{0, 1}, {1, 2}, {2, 0}})
	p := newPartition(g.order())

	steps := 0
	done := p.walk(g.adj, func(step) bool {
		steps++
		return steps < 3
	})
	if done {
		t.Error("walk() should report false when the visitor stops it")
	}
	if steps != 3 {
		t.Errorf("visitor called %d times after stopping, want 3", steps)
	}
	if white, _, _ := p.counts(); white == 0 {
		t.Error("an early stop should leave white vertices")
	}
}

func TestBuild(t *testing.T) {
	g, multi := build([]Edge[string]{{"a", "b"}, {"b", "c"}, {"c", "c"}, {"b", "a"}})
	if !multi {
		t.Error("build() should report the repeated a-b pair")
	}
	if g.order() != 3 {
		t.Errorf("order() = %d, want 3", g.order())
	}
	if got := g.index["c"]; got != 2 {
		t.Errorf("index[c] = %d, want 2 (first-appearance order)", got)
	}
	if len(g.adj[g.index["a"]]) != 1 {
		t.Errorf("a has %d neighbors, want 1", len(g.adj[g.index["a"]]))
	}
	if len(g.adj[g.index["c"]]) != 1 {
		t.Errorf("self-loop must not add a neighbor, c has %v", g.adj[g.index["c"]])
	}
}

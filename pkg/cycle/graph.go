package cycle

// graph is an arena of vertices addressed by dense index. Index i is the i-th
// distinct label in first-appearance order; adj[i] lists its unique neighbors
// in the order their edges appeared.
type graph[V comparable] struct {
	index  map[V]int
	labels []V
	adj    [][]int
}

// pair is an unordered pair of dense indices with lo <= hi.
type pair struct{ lo, hi int }

func makePair(a, b int) pair {
	if a > b {
		a, b = b, a
	}
	return pair{a, b}
}

// build indexes the labels of edges and collects neighbor sets. It reports
// multi as true when an unordered pair appears more than once. Self-loops
// register their vertex but add no neighbor.
func build[V comparable](edges []Edge[V]) (g *graph[V], multi bool) {
	g = &graph[V]{index: make(map[V]int, len(edges))}
	seen := make(map[pair]struct{}, len(edges))

	for _, e := range edges {
		u := g.intern(e.Source)
		v := g.intern(e.Destination)
		if u == v {
			continue
		}
		key := makePair(u, v)
		if _, dup := seen[key]; dup {
			multi = true
			continue
		}
		seen[key] = struct{}{}
		g.adj[u] = append(g.adj[u], v)
		g.adj[v] = append(g.adj[v], u)
	}
	return g, multi
}

func (g *graph[V]) intern(label V) int {
	if i, ok := g.index[label]; ok {
		return i
	}
	i := len(g.labels)
	g.index[label] = i
	g.labels = append(g.labels, label)
	g.adj = append(g.adj, nil)
	return i
}

func (g *graph[V]) order() int { return len(g.labels) }

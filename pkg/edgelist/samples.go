package edgelist

import "slices"

// Sample is a fixed edge list with a known outcome.
type Sample struct {
	Name     string
	HasCycle bool
	Edges    []Edge
}

// List returns the sample as a named [List]. The edges are copied.
func (s Sample) List() *List {
	return &List{Name: s.Name, Edges: slices.Clone(s.Edges)}
}

func pairs(ps ...[2]int64) []Edge {
	edges := make([]Edge, len(ps))
	for i, p := range ps {
		edges[i] = Edge{Source: p[0], Destination: p[1]}
	}
	return edges
}

// Samples returns the built-in edge lists. Each call returns fresh slices.
func Samples() []Sample {
	return []Sample{
		{Name: "branching-tree", HasCycle: false, Edges: pairs(
			[2]int64{0, 1}, [2]int64{0, 2}, [2]int64{0, 3}, [2]int64{1, 4}, [2]int64{1, 5}, [2]int64{4, 8},
			[2]int64{4, 9}, [2]int64{3, 6}, [2]int64{3, 7}, [2]int64{6, 10}, [2]int64{6, 11},
		)},
		{Name: "branching-tree-closed", HasCycle: true, Edges: pairs(
			[2]int64{0, 1}, [2]int64{0, 2}, [2]int64{0, 3}, [2]int64{1, 4}, [2]int64{1, 5}, [2]int64{4, 8},
			[2]int64{4, 9}, [2]int64{3, 6}, [2]int64{3, 7}, [2]int64{6, 10}, [2]int64{6, 11}, [2]int64{5, 9},
		)},
		{Name: "default-graph", HasCycle: true, Edges: pairs(
			[2]int64{0, 4}, [2]int64{3, 4}, [2]int64{2, 5}, [2]int64{0, 6}, [2]int64{1, 8},
			[2]int64{2, 8}, [2]int64{3, 8}, [2]int64{4, 6}, [2]int64{5, 6}, [2]int64{5, 8},
		)},

		// Cyclic
		{Name: "ranked-1", HasCycle: true, Edges: pairs(
			[2]int64{0, 6}, [2]int64{1, 3}, [2]int64{1, 4}, [2]int64{2, 5}, [2]int64{2, 6}, [2]int64{2, 8}, [2]int64{5, 8}, [2]int64{7, 8},
		)},
		{Name: "ranked-2", HasCycle: true, Edges: pairs(
			[2]int64{1, 2}, [2]int64{0, 6}, [2]int64{1, 5}, [2]int64{1, 8}, [2]int64{2, 7}, [2]int64{2, 8}, [2]int64{3, 5}, [2]int64{4, 6}, [2]int64{4, 7},
		)},
		{Name: "ranked-3", HasCycle: true, Edges: pairs(
			[2]int64{0, 6}, [2]int64{1, 6}, [2]int64{3, 4}, [2]int64{2, 8}, [2]int64{6, 8}, [2]int64{1, 9}, [2]int64{7, 9}, [2]int64{8, 9},
		)},
		{Name: "ranked-4", HasCycle: true, Edges: pairs(
			[2]int64{0, 4}, [2]int64{0, 5}, [2]int64{1, 3}, [2]int64{1, 4}, [2]int64{1, 9}, [2]int64{2, 8}, [2]int64{3, 9}, [2]int64{5, 8}, [2]int64{6, 10}, [2]int64{7, 10},
		)},
		{Name: "ranked-5", HasCycle: true, Edges: pairs(
			[2]int64{0, 4}, [2]int64{0, 7}, [2]int64{1, 4}, [2]int64{1, 6}, [2]int64{2, 7}, [2]int64{3, 6}, [2]int64{1, 9}, [2]int64{3, 9}, [2]int64{7, 9}, [2]int64{8, 9},
		)},
		{Name: "ranked-6", HasCycle: true, Edges: pairs(
			[2]int64{0, 5}, [2]int64{0, 6}, [2]int64{0, 7}, [2]int64{1, 6}, [2]int64{2, 6}, [2]int64{2, 7}, [2]int64{2, 9}, [2]int64{3, 6}, [2]int64{4, 7}, [2]int64{4, 8},
		)},
		{Name: "ranked-7", HasCycle: true, Edges: pairs(
			[2]int64{1, 2}, [2]int64{0, 6}, [2]int64{1, 4}, [2]int64{2, 4}, [2]int64{2, 5}, [2]int64{2, 6}, [2]int64{2, 7}, [2]int64{2, 9},
			[2]int64{2, 10}, [2]int64{2, 11}, [2]int64{3, 10}, [2]int64{5, 8}, [2]int64{5, 11}, [2]int64{6, 11}, [2]int64{7, 8}, [2]int64{7, 11},
		)},
		{Name: "ranked-8", HasCycle: true, Edges: pairs(
			[2]int64{1, 2}, [2]int64{1, 3}, [2]int64{1, 5}, [2]int64{2, 7}, [2]int64{3, 6}, [2]int64{3, 8}, [2]int64{4, 9},
			[2]int64{0, 10}, [2]int64{2, 10}, [2]int64{4, 10}, [2]int64{6, 10}, [2]int64{9, 10}, [2]int64{9, 11},
		)},
		{Name: "ranked-9", HasCycle: true, Edges: pairs(
			[2]int64{1, 3}, [2]int64{1, 4}, [2]int64{1, 6}, [2]int64{2, 4}, [2]int64{0, 8}, [2]int64{1, 8}, [2]int64{3, 7}, [2]int64{4, 7}, [2]int64{5, 8},
		)},
		{Name: "hexagon", HasCycle: true, Edges: pairs(
			[2]int64{1, 2}, [2]int64{2, 3}, [2]int64{3, 4}, [2]int64{4, 5}, [2]int64{5, 6}, [2]int64{6, 1},
		)},
		{Name: "ranked-10", HasCycle: true, Edges: pairs(
			[2]int64{0, 5}, [2]int64{0, 6}, [2]int64{1, 3}, [2]int64{1, 4}, [2]int64{2, 4}, [2]int64{2, 7}, [2]int64{2, 9}, [2]int64{3, 8}, [2]int64{3, 9}, [2]int64{5, 8},
		)},
		{Name: "ranked-with-self-loop", HasCycle: true, Edges: pairs(
			[2]int64{0, 5}, [2]int64{0, 6}, [2]int64{1, 3}, [2]int64{1, 4}, [2]int64{2, 4}, [2]int64{2, 7}, [2]int64{2, 9}, [2]int64{3, 8}, [2]int64{5, 8}, [2]int64{7, 7},
		)},

		// Acyclic
		{Name: "binary-tree", HasCycle: false, Edges: pairs(
			[2]int64{0, 1}, [2]int64{0, 2}, [2]int64{1, 3}, [2]int64{1, 6}, [2]int64{2, 4}, [2]int64{2, 5},
		)},
		{Name: "forest-1", HasCycle: false, Edges: pairs(
			[2]int64{0, 5}, [2]int64{0, 7}, [2]int64{1, 7}, [2]int64{2, 6}, [2]int64{2, 7},
		)},
		{Name: "path", HasCycle: false, Edges: pairs([2]int64{0, 4}, [2]int64{4, 7})},
		{Name: "single-edge", HasCycle: false, Edges: pairs([2]int64{7, 11})},
		{Name: "empty", HasCycle: false, Edges: pairs()},
		{Name: "forest-2", HasCycle: false, Edges: pairs(
			[2]int64{0, 2}, [2]int64{1, 2}, [2]int64{1, 4}, [2]int64{1, 5}, [2]int64{2, 6},
		)},
		{Name: "forest-3", HasCycle: false, Edges: pairs(
			[2]int64{1, 2}, [2]int64{1, 4}, [2]int64{1, 5}, [2]int64{0, 8}, [2]int64{3, 8}, [2]int64{4, 8},
		)},
		{Name: "forest-4", HasCycle: false, Edges: pairs(
			[2]int64{0, 4}, [2]int64{0, 6}, [2]int64{1, 6}, [2]int64{2, 6}, [2]int64{3, 6}, [2]int64{4, 7}, [2]int64{2, 8}, [2]int64{5, 8},
		)},
		{Name: "parallel-pair", HasCycle: true, Edges: pairs([2]int64{0, 1}, [2]int64{0, 1})},
		{Name: "self-loop", HasCycle: true, Edges: pairs([2]int64{0, 0})},
	}
}

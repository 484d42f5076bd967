// Package cycle detects cycles in undirected graphs given as edge lists.
//
// # Overview
//
// An undirected graph is described by a slice of [Edge] values, each an
// unordered pair of vertex identifiers. Identifiers can be any comparable
// type; they are opaque keys, so negative or sparse integers are as valid as
// strings. [HasCycle] reports whether the graph implied by the edges contains
// at least one cycle:
//
//	edges := []cycle.Edge[int]{{0, 1}, {1, 2}, {2, 0}}
//	cycle.HasCycle(edges) // true
//
// # Cycle Kinds
//
// Three shapes count as a cycle:
//
//   - A self-loop: an edge whose Source equals its Destination
//   - A multi-edge: the same unordered pair listed in two or more edges
//   - A simple cycle of length three or more in any connected component
//
// An empty edge list, a single edge and any forest of disjoint trees are
// acyclic.
//
// # Algorithm
//
// Each call maps vertex labels onto dense indices in first-appearance order,
// builds neighbor sets, and then runs a breadth-first search seeded from every
// unvisited vertex in turn. Vertices move through three colors:
//
//   - [White]: not yet reached
//   - [Gray]: queued on the frontier, not yet expanded
//   - [Black]: fully expanded
//
// While expanding a vertex, a neighbor that is already gray or black and is not
// the vertex it was discovered from closes a cycle. Multi-edges are caught while
// the neighbor sets are built, so the discovery edge is identified by the
// parent vertex alone.
//
// Time is O(V + E) expected and memory is O(V + E).
//
// # Concurrency
//
// All functions are pure. Every call owns its working state and never mutates
// the input slice, so callers may run detections concurrently without
// synchronization.
package cycle

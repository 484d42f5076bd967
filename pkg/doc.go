// Package pkg provides the libraries behind cyclecheck, an undirected-graph
// cycle detector.
//
// # Overview
//
// The pkg directory is organized by concern:
//
//  1. [cycle] - The detector: breadth-first search over a white/gray/black
//     vertex partition
//  2. [edgelist] - Edge-list sources (JSON, TOML, DOT, integer pairs) and the
//     built-in sample graphs
//  3. [errors] - Structured error codes shared by the CLI and HTTP API
//  4. [observability] - Optional hooks for load, detection and request events
//  5. [buildinfo] - Version information injected at build time
//
// # Architecture
//
//	file / stdin / request body
//	         ↓
//	    [edgelist] (decode into []cycle.Edge[int64])
//	         ↓
//	    [cycle] (HasCycle, Summarize)
//	         ↓
//	    CLI report or JSON response
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/cyclecheck/pkg/cycle"
//	    "github.com/matzehuels/cyclecheck/pkg/edgelist"
//	)
//
//	l, err := edgelist.Import("graph.json")
//	if err != nil {
//	    return err
//	}
//	if cycle.HasCycle(l.Edges) {
//	    fmt.Println("Graph contains a cycle")
//	}
//
// The detector is generic over any comparable vertex type:
//
//	cycle.HasCycle([]cycle.Edge[string]{{"a", "b"}, {"b", "c"}, {"c", "a"}}) // true
//
// [cycle]: github.com/matzehuels/cyclecheck/pkg/cycle
// [edgelist]: github.com/matzehuels/cyclecheck/pkg/edgelist
// [errors]: github.com/matzehuels/cyclecheck/pkg/errors
// [observability]: github.com/matzehuels/cyclecheck/pkg/observability
// [buildinfo]: github.com/matzehuels/cyclecheck/pkg/buildinfo
package pkg

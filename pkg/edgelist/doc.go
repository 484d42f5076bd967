// Package edgelist loads undirected edge lists for the cycle detector.
//
// # Overview
//
// The detector in [cycle] works on in-memory slices of edges. This package is
// the boundary that turns files, stdin and request bodies into those slices.
// Vertex identifiers are signed 64-bit integers; anything that does not fit
// (fractions, words, values beyond the int64 range) is rejected with an
// INVALID_INPUT error instead of being truncated.
//
// # Formats
//
// Four formats are supported, selected explicitly with [Read] or by file
// extension with [Import]:
//
// JSON (.json):
//
//	{
//	  "name": "triangle",
//	  "edges": [
//	    {"source": 0, "destination": 1},
//	    {"source": 1, "destination": 2},
//	    {"source": 2, "destination": 0}
//	  ]
//	}
//
// TOML (.toml):
//
//	name = "triangle"
//	edges = [[0, 1], [1, 2], [2, 0]]
//
// DOT (.dot, .gv), parsed with Graphviz. Node names must be integers and edge
// direction is ignored, so graph and digraph inputs mean the same thing:
//
//	graph triangle { 0 -- 1; 1 -- 2; 2 -- 0; }
//
// Text (anything else): integers read two at a time. Whitespace, punctuation
// from ",;(){}[]<>=" and arrows separate numbers, and "#" starts a comment.
// This accepts the brace-literal and arrow dumps that ad-hoc tools print:
//
//	{ {0,1},{1,2},{2,0} }
//	0 -> 1
//	(1,2)
//
// # Samples
//
// [Samples] returns a fixed collection of edge lists with known outcomes,
// used by the demo command and by tests.
//
// [cycle]: github.com/matzehuels/cyclecheck/pkg/cycle
package edgelist

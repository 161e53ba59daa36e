// Package graphfile reads and writes the flat-text graph layout consumed by
// MIS solvers:
//
//	<num_vertices>
//	<num_edges>
//	<v1> <v2>
//	...
//
// Each edge line holds two 0-indexed vertices separated by one space; the
// writer emits v1 < v2 in the graph's insertion order. The reader accepts any
// whitespace between tokens, as the solver-side parser does, but rejects
// anything that would not round-trip into a simple graph.
package graphfile

// Package misgen generates random simple undirected graphs as test inputs for
// Maximum Independent Set solvers.
//
// What it does:
//
//	Generate(filename, numVertices, numEdges, opts...) samples exactly
//	numEdges distinct vertex pairs on numVertices vertices and writes them in
//	the flat-text layout:
//
//		<num_vertices>
//		<num_edges>
//		<v1> <v2>
//		...
//
// Under the hood, everything is organized under three subpackages:
//
//	core/      - the integer-vertex simple Graph, canonical Edge, MaxEdges, Stats
//	builder/   - Exhaustive and Rejection sampling constructors, Strategy, seeding options
//	graphfile/ - Write/Read of the flat-text layout
//
// The misgen command in cmd/misgen wraps Generate:
//
//	misgen [-strategy exhaustive|rejection] [-seed N] [-max-draws N] [-v] <filename> <#vertices> <#edges>
//
// Determinism: the same arguments, strategy and seed always yield a
// byte-identical file. The default seed is builder.DefaultSeed.
package misgen

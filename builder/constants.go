// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across the sampling constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodBuildGraph is the canonical name for the BuildGraph orchestrator.
	MethodBuildGraph = "BuildGraph"
	// MethodExhaustive is the canonical name for the Exhaustive constructor.
	MethodExhaustive = "Exhaustive"
	// MethodRejection is the canonical name for the Rejection constructor.
	MethodRejection = "Rejection"
)

//-----------------------------------------------------------------------------
// Minimum Sizes
//-----------------------------------------------------------------------------

// MinVertices is the smallest vertex count a generated graph may have.
const MinVertices = 1

// MinEdges is the smallest requested edge count; zero yields an edgeless graph.
const MinEdges = 0

//-----------------------------------------------------------------------------
// Defaults
//-----------------------------------------------------------------------------

// DefaultSeed is the seed used by callers that do not choose one. Runs with
// identical parameters and this seed produce identical graphs.
const DefaultSeed int64 = 0

// UnlimitedDraws disables the Rejection draw budget (see WithMaxDraws).
const UnlimitedDraws = 0

package misgen

import (
	"fmt"

	"github.com/katalvlaran/misgen/builder"
	"github.com/katalvlaran/misgen/core"
	"github.com/katalvlaran/misgen/graphfile"
)

// Generate samples a simple undirected graph with numVertices vertices and
// exactly numEdges edges and writes it to filename.
//
// Status lines go to the WithLogger logger at info level:
//
//	[Info] Filename: <filename>
//	[Info] #Vertices: <numVertices>
//	[Info] #Edges: <numEdges>
//	[Info] Done!
//
// The first three are emitted before sampling, the last after the file is
// written. On error no file is created unless the failure happened while
// writing it.
//
// Errors: builder.ErrTooFewVertices, builder.ErrInfeasible,
// builder.ErrUnknownStrategy, builder.ErrConstructFailed, or an I/O error from
// graphfile.WriteFile.
func Generate(filename string, numVertices, numEdges int, opts ...Option) error {
	_, err := generate(filename, numVertices, numEdges, newConfig(opts...))

	return err
}

// generate is Generate that also hands back the graph, for callers that
// want diagnostics on it.
func generate(filename string, numVertices, numEdges int, cfg config) (*core.Graph, error) {
	log := cfg.logger
	log.Info().Msgf("Filename: %s", filename)
	log.Info().Msgf("#Vertices: %d", numVertices)
	log.Info().Msgf("#Edges: %d", numEdges)
	log.Debug().Stringer("strategy", cfg.strategy).Int64("seed", cfg.seed).Msg("Sampling")

	g, err := builder.Generate(numVertices, numEdges, cfg.strategy, cfg.builderOptions()...)
	if err != nil {
		return nil, fmt.Errorf("generate %s: %w", filename, err)
	}
	if err := graphfile.WriteFile(filename, g); err != nil {
		return nil, fmt.Errorf("generate %s: %w", filename, err)
	}

	log.Info().Msg("Done!")

	return g, nil
}

// GenerateWithStats is Generate that also logs core.GraphStats at debug level
// and returns them.
func GenerateWithStats(filename string, numVertices, numEdges int, opts ...Option) (*core.GraphStats, error) {
	cfg := newConfig(opts...)
	g, err := generate(filename, numVertices, numEdges, cfg)
	if err != nil {
		return nil, err
	}

	st := g.Stats()
	cfg.logger.Debug().
		Int("vertices", st.VertexCount).
		Int("edges", st.EdgeCount).
		Float64("density", st.Density).
		Int("min_degree", st.MinDegree).
		Int("max_degree", st.MaxDegree).
		Float64("mean_degree", st.MeanDegree).
		Int("isolated", st.IsolatedVertices).
		Int("components", st.Components).
		Msg("Graph stats")

	return st, nil
}

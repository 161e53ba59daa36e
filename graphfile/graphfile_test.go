package graphfile_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/misgen/builder"
	"github.com/katalvlaran/misgen/core"
	"github.com/katalvlaran/misgen/graphfile"
)

func mustGraph(t *testing.T, n int, pairs ...[2]int) *core.Graph {
	t.Helper()
	g := core.NewGraph(n)
	for _, p := range pairs {
		require.NoError(t, g.AddEdge(p[0], p[1]))
	}

	return g
}

func TestWrite_Layout(t *testing.T) {
	g := mustGraph(t, 4, [2]int{2, 0}, [2]int{1, 3}, [2]int{0, 3})

	var buf bytes.Buffer
	require.NoError(t, graphfile.Write(&buf, g))
	assert.Equal(t, "4\n3\n0 2\n1 3\n0 3\n", buf.String())
}

func TestWrite_NoEdges(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, graphfile.Write(&buf, core.NewGraph(7)))
	assert.Equal(t, "7\n0\n", buf.String())
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWrite_PropagatesWriterError(t *testing.T) {
	err := graphfile.Write(failWriter{}, mustGraph(t, 3, [2]int{0, 1}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestRead_RoundTrip(t *testing.T) {
	for _, s := range builder.Strategies() {
		g, err := builder.Generate(25, 60, s, builder.WithSeed(3))
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, graphfile.Write(&buf, g))

		back, err := graphfile.Read(&buf)
		require.NoError(t, err)
		assert.Equal(t, g.VertexCount(), back.VertexCount())
		assert.Equal(t, g.Edges(), back.Edges())
	}
}

func TestRead_LenientWhitespace(t *testing.T) {
	g, err := graphfile.Read(strings.NewReader("  3\r\n2\n\n2 0\t1   2\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, []core.Edge{{V1: 0, V2: 2}, {V1: 1, V2: 2}}, g.Edges())
}

func TestRead_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", graphfile.ErrMalformed},
		{"missing edge count", "4\n", graphfile.ErrMalformed},
		{"non-integer vertex count", "four\n0\n", graphfile.ErrMalformed},
		{"negative edge count", "4\n-1\n", graphfile.ErrMalformed},
		{"infeasible header", "3\n4\n", graphfile.ErrMalformed},
		{"truncated edges", "4\n2\n0 1\n", graphfile.ErrMalformed},
		{"half edge", "4\n1\n0\n", graphfile.ErrMalformed},
		{"non-integer endpoint", "4\n1\n0 x\n", graphfile.ErrMalformed},
		{"trailing data", "4\n1\n0 1\n2 3\n", graphfile.ErrMalformed},
		{"self-loop", "4\n1\n2 2\n", core.ErrLoopNotAllowed},
		{"duplicate", "4\n2\n0 1\n1 0\n", core.ErrMultiEdgeNotAllowed},
		{"out of range", "4\n1\n0 4\n", core.ErrVertexNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := graphfile.Read(strings.NewReader(tt.in))
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.txt")
	g := mustGraph(t, 5, [2]int{4, 1}, [2]int{0, 2})

	require.NoError(t, graphfile.WriteFile(path, g))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "5\n2\n1 4\n0 2\n", string(raw))

	back, err := graphfile.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, g.Edges(), back.Edges())
}

func TestFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := graphfile.ReadFile(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	err = graphfile.WriteFile(filepath.Join(dir, "no", "such", "dir", "g.txt"), core.NewGraph(1))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

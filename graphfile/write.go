package graphfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/misgen/core"
)

// Write serializes g to w: vertex count, edge count, then one "v1 v2" line
// per edge in g's insertion order.
// Complexity: O(E) time, O(1) extra space beyond the write buffer.
func Write(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	edges := g.Edges()

	line := make([]byte, 0, 32)
	line = strconv.AppendInt(line[:0], int64(g.VertexCount()), 10)
	line = append(line, '\n')
	line = strconv.AppendInt(line, int64(len(edges)), 10)
	line = append(line, '\n')
	if _, err := bw.Write(line); err != nil {
		return fmt.Errorf("graphfile: write header: %w", err)
	}

	for _, e := range edges {
		line = strconv.AppendInt(line[:0], int64(e.V1), 10)
		line = append(line, ' ')
		line = strconv.AppendInt(line, int64(e.V2), 10)
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return fmt.Errorf("graphfile: write edge %v: %w", e, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("graphfile: flush: %w", err)
	}

	return nil
}

// WriteFile creates (or truncates) path and writes g to it.
func WriteFile(path string, g *core.Graph) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("graphfile: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("graphfile: close %s: %w", path, cerr)
		}
	}()

	return Write(f, g)
}

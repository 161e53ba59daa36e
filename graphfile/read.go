package graphfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/misgen/core"
)

// tokenReader yields whitespace-separated integers with position context.
type tokenReader struct {
	sc  *bufio.Scanner
	pos int // 1-based index of the last token read
}

func newTokenReader(r io.Reader) *tokenReader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	return &tokenReader{sc: sc}
}

// next returns the next integer token; what names it in error messages.
func (t *tokenReader) next(what string) (int, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return 0, fmt.Errorf("graphfile: read %s: %w", what, err)
		}
		return 0, fmt.Errorf("graphfile: %s: unexpected end of input: %w", what, ErrMalformed)
	}
	t.pos++
	v, err := strconv.Atoi(t.sc.Text())
	if err != nil {
		return 0, fmt.Errorf("graphfile: %s (token %d): %w: %w", what, t.pos, ErrMalformed, err)
	}

	return v, nil
}

// Read parses a graph in the flat-text layout from r.
//
// Errors:
//   - ErrMalformed for non-integer tokens, negative counts, fewer edge lines
//     than announced, or trailing tokens.
//   - core.ErrVertexNotFound, core.ErrLoopNotAllowed, core.ErrMultiEdgeNotAllowed
//     for edges that break the simple-graph invariants (wrapped with line context).
func Read(r io.Reader) (*core.Graph, error) {
	tr := newTokenReader(r)

	n, err := tr.next("vertex count")
	if err != nil {
		return nil, err
	}
	m, err := tr.next("edge count")
	if err != nil {
		return nil, err
	}
	if n < 0 || m < 0 {
		return nil, fmt.Errorf("graphfile: negative header n=%d m=%d: %w", n, m, ErrMalformed)
	}
	if limit := core.MaxEdges(n); m > limit {
		return nil, fmt.Errorf("graphfile: %d edges cannot fit %d vertices (max %d): %w", m, n, limit, ErrMalformed)
	}

	g := core.NewGraph(n, core.WithEdgeCapacity(m))
	for i := 0; i < m; i++ {
		what := "edge " + strconv.Itoa(i)
		a, err := tr.next(what)
		if err != nil {
			return nil, err
		}
		b, err := tr.next(what)
		if err != nil {
			return nil, err
		}
		if err := g.AddEdge(a, b); err != nil {
			return nil, fmt.Errorf("graphfile: %s: %w", what, err)
		}
	}

	if tr.sc.Scan() {
		return nil, fmt.Errorf("graphfile: trailing token %q after %d edges: %w", tr.sc.Text(), m, ErrMalformed)
	}
	if err := tr.sc.Err(); err != nil {
		return nil, fmt.Errorf("graphfile: read: %w", err)
	}

	return g, nil
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphfile: %w", err)
	}
	defer f.Close()

	return Read(f)
}

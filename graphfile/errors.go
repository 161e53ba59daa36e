package graphfile

import "errors"

// ErrMalformed indicates input that does not follow the flat-text layout:
// a non-integer token, a negative count, a missing edge line or data after
// the last edge.
var ErrMalformed = errors.New("graphfile: malformed input")

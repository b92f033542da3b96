package problem

import (
	"errors"

	"github.com/katalvlaran/lavaworld/geometry"
)

// Sentinel errors for parsing.
var (
	// ErrInvalidCount indicates N or Q is missing, non-integer, or negative.
	ErrInvalidCount = errors.New("problem: invalid count")
	// ErrMalformedRectangle indicates a missing or non-integer island coordinate.
	ErrMalformedRectangle = errors.New("problem: malformed rectangle")
	// ErrMalformedQuery indicates a missing or non-integer query ID.
	ErrMalformedQuery = errors.New("problem: malformed query")
	// ErrRead wraps failures of the underlying reader.
	ErrRead = errors.New("problem: read failed")
)

// Query asks whether island Row and island Col are connected.
type Query struct {
	Row, Col int
}

// Problem is a parsed input: islands in ID order (Islands[i] has ID i+1)
// followed by queries in input order.
type Problem struct {
	Islands []geometry.Rect
	Queries []Query
}

package segment

import (
	"fmt"
	"math"
)

// Edge is an undirected, weighted connection between two pixels.
//
// The weight is the absolute luminance difference of the endpoints and is
// never negative. A and B are kept in construction order; that order only
// matters for tie-breaking in Compare.
type Edge struct {
	A      Pixel
	B      Pixel
	Weight float64
}

// NewEdge creates the edge joining a and b.
//
// Returns ErrNegativeCoordinate if either endpoint has a negative coordinate,
// which can only happen for a Pixel not built with NewPixel.
func NewEdge(a, b Pixel) (Edge, error) {
	if a.row < 0 || a.col < 0 || b.row < 0 || b.col < 0 {
		return Edge{}, fmt.Errorf("%w: edge %v-%v", ErrNegativeCoordinate, a, b)
	}
	return newEdge(a, b), nil
}

func newEdge(a, b Pixel) Edge {
	return Edge{A: a, B: b, Weight: math.Abs(a.lum - b.lum)}
}

// Equal reports whether e and other join the same two pixels, in either
// orientation, with the same weight.
func (e Edge) Equal(other Edge) bool {
	if e.Weight != other.Weight {
		return false
	}
	return (e.A.Equal(other.A) && e.B.Equal(other.B)) ||
		(e.A.Equal(other.B) && e.B.Equal(other.A))
}

// Compare orders edges by ascending weight. Edges of equal weight are ordered
// by their first pixel and then by their second pixel. Equal edges compare
// as 0.
func (e Edge) Compare(other Edge) int {
	if e.Equal(other) {
		return 0
	}
	switch {
	case e.Weight < other.Weight:
		return -1
	case e.Weight > other.Weight:
		return 1
	}
	if !e.A.Equal(other.A) {
		return e.A.Compare(other.A)
	}
	return e.B.Compare(other.B)
}

func (e Edge) String() string {
	return fmt.Sprintf("(%v, %v, %g)", e.A, e.B, e.Weight)
}

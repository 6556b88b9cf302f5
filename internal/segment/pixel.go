package segment

import "fmt"

// Channel weights used to derive a pixel's luminance from its RGB colour.
const (
	redWeight   = 0.30
	greenWeight = 0.59
	blueWeight  = 0.11
)

// RGB is an 8-bit-per-channel colour.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Luminance returns the weighted channel sum 0.30*R + 0.59*G + 0.11*B.
func (c RGB) Luminance() float64 {
	// Explicit conversions round each product; no fused multiply-add.
	r := float64(redWeight * float64(c.R))
	g := float64(greenWeight * float64(c.G))
	b := float64(blueWeight * float64(c.B))
	return r + g + b
}

// Pixel is a vertex of the grid graph: a grid coordinate and the luminance of
// the colour found there.
//
// Pixels are identified by coordinate alone. Equal and Compare ignore the
// luminance, so two Pixels at the same (row, col) are the same vertex.
type Pixel struct {
	row int
	col int
	lum float64
}

// NewPixel creates the pixel at (row, col) with colour c.
//
// Returns ErrNegativeCoordinate if row or col is below zero.
func NewPixel(row, col int, c RGB) (Pixel, error) {
	if row < 0 || col < 0 {
		return Pixel{}, fmt.Errorf("%w: (%d, %d)", ErrNegativeCoordinate, row, col)
	}
	return Pixel{row: row, col: col, lum: c.Luminance()}, nil
}

// Row returns the pixel's row index.
func (p Pixel) Row() int { return p.row }

// Col returns the pixel's column index.
func (p Pixel) Col() int { return p.col }

// Luminance returns the pixel's luminance.
func (p Pixel) Luminance() float64 { return p.lum }

// Equal reports whether p and other occupy the same coordinate.
func (p Pixel) Equal(other Pixel) bool {
	return p.row == other.row && p.col == other.col
}

// Compare orders pixels in row-major order: by row, then by column.
// It returns a negative number, zero, or a positive number when p sorts
// before, at, or after other.
func (p Pixel) Compare(other Pixel) int {
	if p.row != other.row {
		return p.row - other.row
	}
	return p.col - other.col
}

func (p Pixel) String() string {
	return fmt.Sprintf("(%d, %d, %g)", p.row, p.col, p.lum)
}

package segment

import (
	"fmt"
	"image"
)

// Raster is a rectangular grid of colours indexed [row][col].
type Raster [][]RGB

// Grid is the immutable pixel arena of an image. Pixels are stored in
// row-major order; the arena index of (row, col) is row*Cols()+col.
type Grid struct {
	rows   int
	cols   int
	pixels []Pixel
}

// NewGrid builds the pixel grid of a raster.
//
// Returns ErrEmptyGrid if the raster has no rows or its first row is empty,
// and ErrRaggedGrid if any row differs in length from the first.
func NewGrid(raster Raster) (*Grid, error) {
	if len(raster) == 0 || len(raster[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(raster), len(raster[0])
	for r, row := range raster {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrRaggedGrid, r, len(row), cols)
		}
	}

	g := &Grid{rows: rows, cols: cols, pixels: make([]Pixel, rows*cols)}
	for r, row := range raster {
		for c, rgb := range row {
			g.pixels[r*cols+c] = Pixel{row: r, col: c, lum: rgb.Luminance()}
		}
	}
	return g, nil
}

// NewGridFromImage builds the pixel grid of img. Row 0 is the top of the
// image bounds and column 0 the left edge; colours are reduced to 8 bits per
// channel and alpha is ignored.
//
// Returns ErrEmptyGrid for an image with empty bounds.
func NewGridFromImage(img image.Image) (*Grid, error) {
	return NewGrid(RasterFromImage(img))
}

// RasterFromImage converts img into a Raster. An image with empty bounds
// yields an empty Raster.
func RasterFromImage(img image.Image) Raster {
	bounds := img.Bounds()
	raster := make(Raster, bounds.Dy())
	for y := 0; y < bounds.Dy(); y++ {
		row := make([]RGB, bounds.Dx())
		for x := 0; x < bounds.Dx(); x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			row[x] = RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
		}
		raster[y] = row
	}
	return raster
}

// Rows returns the number of rows (image height).
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns (image width).
func (g *Grid) Cols() int { return g.cols }

// Len returns the number of pixels.
func (g *Grid) Len() int { return len(g.pixels) }

// Pixel returns the pixel at (row, col). It panics if the coordinate is out
// of range, like a slice index.
func (g *Grid) Pixel(row, col int) Pixel {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		panic(fmt.Sprintf("segment: pixel (%d, %d) outside %dx%d grid", row, col, g.rows, g.cols))
	}
	return g.pixels[row*g.cols+col]
}

// At returns the pixel stored at arena index i.
func (g *Grid) At(i int) Pixel { return g.pixels[i] }

// Index returns the arena index of p.
//
// Returns ErrPixelOutOfGrid if p's coordinate lies outside the grid.
func (g *Grid) Index(p Pixel) (int, error) {
	if p.row < 0 || p.row >= g.rows || p.col < 0 || p.col >= g.cols {
		return 0, fmt.Errorf("%w: %v in %dx%d grid", ErrPixelOutOfGrid, p, g.rows, g.cols)
	}
	return p.row*g.cols + p.col, nil
}

func (g *Grid) mustIndex(p Pixel) int {
	i, err := g.Index(p)
	if err != nil {
		panic(err)
	}
	return i
}

package segment

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// sampleRaster is the 3x3 demonstration image used throughout the tests.
func sampleRaster() Raster {
	return Raster{
		{{255, 255, 255}, {0, 0, 0}, {230, 89, 67}},
		{{100, 89, 67}, {245, 89, 67}, {234, 89, 67}},
		{{120, 89, 67}, {230, 89, 67}, {220, 89, 67}},
	}
}

// flatRaster returns a rows x cols raster of a single colour.
func flatRaster(rows, cols int, c RGB) Raster {
	raster := make(Raster, rows)
	for r := range raster {
		raster[r] = make([]RGB, cols)
		for col := range raster[r] {
			raster[r][col] = c
		}
	}
	return raster
}

// checkerRaster returns a rows x cols black/white checkerboard starting black.
func checkerRaster(rows, cols int) Raster {
	raster := make(Raster, rows)
	for r := range raster {
		raster[r] = make([]RGB, cols)
		for c := range raster[r] {
			if (r+c)%2 == 1 {
				raster[r][c] = RGB{255, 255, 255}
			}
		}
	}
	return raster
}

// noisyHalvesRaster returns a grey image whose left half sits near 40 and
// right half near 200, with a small deterministic texture on both.
func noisyHalvesRaster(rows, cols int) Raster {
	raster := make(Raster, rows)
	for r := range raster {
		raster[r] = make([]RGB, cols)
		for c := range raster[r] {
			base := 40
			if c >= cols/2 {
				base = 200
			}
			v := uint8(base + (r*7+c*13)%11)
			raster[r][c] = RGB{v, v, v}
		}
	}
	return raster
}

func mustGrid(t *testing.T, raster Raster) *Grid {
	t.Helper()
	g, err := NewGrid(raster)
	require.NoError(t, err)
	return g
}

func mustRun(t *testing.T, g *Grid, opts Options) *Result {
	t.Helper()
	res, err := Run(g, opts)
	require.NoError(t, err)
	return res
}

// coords flattens a segment into [row, col] pairs for readable assertions.
func coords(s Segment) [][2]int {
	out := make([][2]int, len(s.Pixels))
	for i, p := range s.Pixels {
		out[i] = [2]int{p.Row(), p.Col()}
	}
	return out
}

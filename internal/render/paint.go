package render

import (
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/image-segment-mcp/internal/segment"
)

// ColorSource yields one colour per call.
type ColorSource interface {
	Next() colorful.Color
}

// Painting is a rendered segmentation.
type Painting struct {
	// Image has the grid's dimensions with its origin at (0, 0); column is
	// X and row is Y.
	Image *image.NRGBA
	// Colors[i] is the colour given to the i-th segment.
	Colors []colorful.Color
}

// Paint fills every pixel of every segment with that segment's colour.
//
// Parameters:
//   - g: The grid the segments partition; it fixes the output size.
//   - segments: The partition, typically segment.Result.Segments.
//   - src: Colour source, asked once per segment in slice order.
//
// Pixels covered by no segment stay transparent black, which cannot happen
// for a partition produced by segment.Forest.
func Paint(g *segment.Grid, segments []segment.Segment, src ColorSource) *Painting {
	img := image.NewNRGBA(image.Rect(0, 0, g.Cols(), g.Rows()))
	colors := make([]colorful.Color, len(segments))

	for i, s := range segments {
		c := src.Next()
		colors[i] = c
		r, gr, b := c.RGB255()
		fill := color.NRGBA{R: r, G: gr, B: b, A: 255}
		for _, p := range s.Pixels {
			img.SetNRGBA(p.Col(), p.Row(), fill)
		}
	}

	return &Painting{Image: img, Colors: colors}
}

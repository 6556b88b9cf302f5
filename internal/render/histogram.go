package render

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/ironsheep/image-segment-mcp/internal/segment"
)

// DefaultHistogramBins is the bin count used when the caller passes 0.
const DefaultHistogramBins = 20

// SaveSizeHistogram plots the distribution of segment sizes and writes it to
// path. The format follows the extension (.png, .svg, .pdf, ...).
func SaveSizeHistogram(path string, segments []segment.Segment, bins int) error {
	if len(segments) == 0 {
		return fmt.Errorf("no segments to plot")
	}
	if bins <= 0 {
		bins = DefaultHistogramBins
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Segment sizes (%d segments)", len(segments))
	p.X.Label.Text = "pixels per segment"
	p.Y.Label.Text = "segments"

	h, err := plotter.NewHist(plotter.Values(Sizes(segments)), bins)
	if err != nil {
		return fmt.Errorf("failed to build histogram: %w", err)
	}
	h.LineStyle.Width = vg.Points(0.5)
	p.Add(h)

	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save histogram: %w", err)
	}
	return nil
}

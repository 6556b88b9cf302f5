// Package pipeline runs the full segmentation of one image: preprocessing,
// graph segmentation, painting and statistics.
package pipeline

import (
	"fmt"
	"image"

	"github.com/ironsheep/image-segment-mcp/internal/config"
	"github.com/ironsheep/image-segment-mcp/internal/imaging"
	"github.com/ironsheep/image-segment-mcp/internal/palette"
	"github.com/ironsheep/image-segment-mcp/internal/render"
	"github.com/ironsheep/image-segment-mcp/internal/segment"
)

// Params configures Run.
type Params struct {
	Granularity float64
	MinSize     int
	Seed        int64
	Prepare     imaging.PrepareOptions

	// Largest is how many segments Stats lists; render.DefaultLargest if <= 0.
	Largest int

	// Logf, if set, receives progress lines from every stage.
	Logf segment.LogFunc
}

// DefaultParams returns Params for granularity k with the default seed and
// no preprocessing.
func DefaultParams(k float64) Params {
	return Params{Granularity: k, Seed: palette.DefaultSeed}
}

// ParamsFromConfig copies the segmentation settings out of cfg. cfg must
// have a granularity; call cfg.Validate first.
func ParamsFromConfig(cfg config.Config, logf segment.LogFunc) Params {
	p := Params{
		MinSize: cfg.MinSize,
		Seed:    cfg.Seed,
		Prepare: imaging.PrepareOptions{
			MaxDimension: cfg.MaxDimension,
			Sigma:        cfg.Sigma,
		},
		Logf: logf,
	}
	if cfg.Granularity != nil {
		p.Granularity = *cfg.Granularity
	}
	return p
}

// Output is everything one run produces.
type Output struct {
	// Source is the image after preprocessing, the one actually segmented.
	Source image.Image
	Grid   *segment.Grid
	Result *segment.Result
	// Painting holds the segment image and the colour of each segment.
	Painting *render.Painting
	Stats    render.Stats
}

// Image returns the painted segment image.
func (o *Output) Image() image.Image {
	return o.Painting.Image
}

func (p Params) logf(format string, args ...any) {
	if p.Logf != nil {
		p.Logf(format, args...)
	}
}

// Run segments img.
//
// Preprocessing errors wrap imaging.ErrInvalidRegion or
// imaging.ErrInvalidOption; segmentation errors wrap
// segment.ErrInvalidArgument. The same img and Params always give a
// pixel-identical Output.
func Run(img image.Image, p Params) (*Output, error) {
	src, err := imaging.Prepare(img, p.Prepare)
	if err != nil {
		return nil, fmt.Errorf("prepare: %w", err)
	}
	if b := src.Bounds(); b != img.Bounds() {
		p.logf("prepared image: %dx%d (from %dx%d)", b.Dx(), b.Dy(), img.Bounds().Dx(), img.Bounds().Dy())
	}

	grid, err := segment.NewGridFromImage(src)
	if err != nil {
		return nil, err
	}

	res, err := segment.Run(grid, segment.Options{
		Granularity: p.Granularity,
		MinSize:     p.MinSize,
		Logf:        p.Logf,
	})
	if err != nil {
		return nil, err
	}

	painting := render.Paint(grid, res.Segments, palette.NewPastel(p.Seed))
	stats := render.Summarize(res.Segments, painting.Colors, p.Largest)
	p.logf("painted %d segments (seed %d)", len(res.Segments), p.Seed)

	return &Output{
		Source:   src,
		Grid:     grid,
		Result:   res,
		Painting: painting,
		Stats:    stats,
	}, nil
}

// RunFile loads path through cache and segments it.
func RunFile(cache *imaging.ImageCache, path string, p Params) (*Output, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}
	p.logf("loaded %s", path)
	return Run(img, p)
}

package imaging

import (
	"fmt"
	"image"
	"math"

	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"
)

// Region represents a rectangular region within an image.
//
// Coordinates follow the standard image convention:
//   - (X1, Y1) is the top-left corner (inclusive)
//   - (X2, Y2) is the bottom-right corner (exclusive)
type Region struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// MaxSigma is the largest accepted blur radius.
const MaxSigma = 256

// PrepareOptions selects the preprocessing applied before segmentation.
// The zero value leaves the image untouched.
type PrepareOptions struct {
	// Region, if set, crops the image to that rectangle first.
	Region *Region

	// MaxDimension, if positive, downscales the image (Lanczos) so neither
	// side exceeds it. Images already within the limit are not resized.
	MaxDimension int

	// Sigma, if positive, applies a Gaussian blur of that radius, at most
	// MaxSigma. A light blur (0.5-1.0) suppresses sensor noise and JPEG
	// artifacts that would otherwise fragment flat areas into many tiny
	// segments.
	Sigma float64
}

// Prepare applies the crop, fit and blur steps of opts in that order.
//
// Returns an error wrapping ErrInvalidRegion if the region lies outside the
// image or is empty, and one wrapping ErrInvalidOption if MaxDimension is
// negative or Sigma is negative, NaN, infinite or above MaxSigma.
func Prepare(img image.Image, opts PrepareOptions) (image.Image, error) {
	if opts.MaxDimension < 0 {
		return nil, fmt.Errorf("%w: max dimension must be non-negative, got %d", ErrInvalidOption, opts.MaxDimension)
	}
	if !ValidSigma(opts.Sigma) {
		return nil, fmt.Errorf("%w: sigma must be between 0 and %d, got %g", ErrInvalidOption, MaxSigma, opts.Sigma)
	}

	out := img
	if opts.Region != nil {
		r := opts.Region
		bounds := img.Bounds()
		if r.X1 < bounds.Min.X || r.Y1 < bounds.Min.Y || r.X2 > bounds.Max.X || r.Y2 > bounds.Max.Y {
			return nil, fmt.Errorf("%w: (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
				ErrInvalidRegion, r.X1, r.Y1, r.X2, r.Y2, bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
		}
		if r.X1 >= r.X2 || r.Y1 >= r.Y2 {
			return nil, fmt.Errorf("%w: x1 must be < x2 and y1 must be < y2", ErrInvalidRegion)
		}
		out = imaging.Crop(out, image.Rect(r.X1, r.Y1, r.X2, r.Y2))
	}

	if opts.MaxDimension > 0 {
		b := out.Bounds()
		if b.Dx() > opts.MaxDimension || b.Dy() > opts.MaxDimension {
			out = imaging.Fit(out, opts.MaxDimension, opts.MaxDimension, imaging.Lanczos)
		}
	}

	if opts.Sigma > 0 {
		out = blur.Gaussian(out, opts.Sigma)
	}

	return out, nil
}

// ValidSigma reports whether sigma is an acceptable blur radius: finite and
// in [0, MaxSigma].
func ValidSigma(sigma float64) bool {
	return !math.IsNaN(sigma) && sigma >= 0 && sigma <= MaxSigma
}

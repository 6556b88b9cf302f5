package imaging

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult contains a color value in several representations.
//
// Luminance is the weighted sum 0.30*R + 0.59*G + 0.11*B that the
// segmentation graph uses for edge weights, so two samples can be compared
// the way the segmenter compares them.
type ColorResult struct {
	Hex       string   `json:"hex"`       // Hex format "#RRGGBB" (no alpha)
	RGB       RGBColor `json:"rgb"`       // RGB components
	Alpha     uint8    `json:"alpha"`     // Opacity (0-255), ignored by segmentation
	HSL       HSLColor `json:"hsl"`       // HSL representation
	Luminance float64  `json:"luminance"` // Segmentation luminance (0-255)
}

// DescribeColor converts c to 8-bit components and reports it in every
// representation of ColorResult.
func DescribeColor(c color.Color) ColorResult {
	r, g, b, a := c.RGBA()
	r8, g8, b8, a8 := uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8)

	cf := colorful.Color{R: float64(r8) / 255, G: float64(g8) / 255, B: float64(b8) / 255}
	h, s, l := cf.Hsl()
	if math.IsNaN(h) {
		h = 0
	}

	return ColorResult{
		Hex:   fmt.Sprintf("#%02X%02X%02X", r8, g8, b8),
		RGB:   RGBColor{R: r8, G: g8, B: b8},
		Alpha: a8,
		HSL: HSLColor{
			H: int(h),
			S: int(s * 100),
			L: int(l * 100),
		},
		Luminance: float64(0.30*float64(r8)) + float64(0.59*float64(g8)) + float64(0.11*float64(b8)),
	}
}

// SampleColor extracts the color value at a specific pixel coordinate.
//
// Parameters:
//   - img: The source image to sample from.
//   - x: X coordinate (0-based, 0 = leftmost pixel).
//   - y: Y coordinate (0-based, 0 = topmost pixel).
//
// Returns:
//   - *ColorResult: The color at (x, y).
//   - error: Non-nil if coordinates are outside the image bounds.
func SampleColor(img image.Image, x, y int) (*ColorResult, error) {
	bounds := img.Bounds()
	if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	result := DescribeColor(img.At(x, y))
	return &result, nil
}

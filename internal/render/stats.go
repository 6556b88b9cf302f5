package render

import (
	"sort"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/ironsheep/image-segment-mcp/internal/segment"
)

// DefaultLargest is how many segments Summarize lists individually.
const DefaultLargest = 5

// Point is a pixel coordinate; X is the column and Y the row.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// SegmentInfo describes one segment.
type SegmentInfo struct {
	// Root is the segment's representative pixel.
	Root Point `json:"root"`
	// Size is the number of pixels in the segment.
	Size int `json:"size"`
	// Share is Size as a percentage of all pixels (0-100).
	Share float64 `json:"share"`
	// Color is the paint colour as "#rrggbb", empty if none was assigned.
	Color string `json:"color,omitempty"`
}

// Stats summarises the segment size distribution of a segmentation.
type Stats struct {
	Segments   int           `json:"segments"`
	Pixels     int           `json:"pixels"`
	MinSize    int           `json:"min_size"`
	MaxSize    int           `json:"max_size"`
	MeanSize   float64       `json:"mean_size"`
	MedianSize float64       `json:"median_size"`
	StdDevSize float64       `json:"stddev_size"`
	Largest    []SegmentInfo `json:"largest"`
}

// Sizes returns the pixel count of every segment, in segment order.
func Sizes(segments []segment.Segment) []float64 {
	sizes := make([]float64, len(segments))
	for i, s := range segments {
		sizes[i] = float64(len(s.Pixels))
	}
	return sizes
}

// Summarize computes size statistics for segments and lists the largest
// ones (at most largest; DefaultLargest when largest <= 0).
//
// colors may be nil; when present colors[i] belongs to segments[i], as
// returned by Paint. Ties in size keep segment order.
func Summarize(segments []segment.Segment, colors []colorful.Color, largest int) Stats {
	if len(segments) == 0 {
		return Stats{Largest: []SegmentInfo{}}
	}
	if largest <= 0 {
		largest = DefaultLargest
	}

	sizes := Sizes(segments)
	total := floats.Sum(sizes)

	sorted := append([]float64(nil), sizes...)
	sort.Float64s(sorted)

	st := Stats{
		Segments:   len(segments),
		Pixels:     int(total),
		MinSize:    int(floats.Min(sizes)),
		MaxSize:    int(floats.Max(sizes)),
		MeanSize:   stat.Mean(sizes, nil),
		MedianSize: stat.Quantile(0.5, stat.Empirical, sorted, nil),
	}
	if len(sizes) > 1 {
		st.StdDevSize = stat.StdDev(sizes, nil)
	}

	order := make([]int, len(segments))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return sizes[order[a]] > sizes[order[b]]
	})
	if len(order) > largest {
		order = order[:largest]
	}

	st.Largest = make([]SegmentInfo, 0, len(order))
	for _, i := range order {
		info := SegmentInfo{
			Root:  Point{X: segments[i].Root.Col(), Y: segments[i].Root.Row()},
			Size:  len(segments[i].Pixels),
			Share: sizes[i] / total * 100,
		}
		if i < len(colors) {
			info.Color = colors[i].Hex()
		}
		st.Largest = append(st.Largest, info)
	}
	return st
}

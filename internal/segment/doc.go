// Package segment implements graph-based image segmentation.
//
// An image is modelled as an undirected grid graph: every pixel is a vertex
// and every pixel is joined to its up-to-8 neighbours by an edge whose weight
// is the absolute difference of the two pixels' luminance. Segmentation is
// the greedy merge of Felzenszwalb and Huttenlocher ("Efficient Graph-Based
// Image Segmentation"): edges are visited once in ascending weight order and
// the two regions an edge connects are fused when the edge is lighter than
// both regions' merge thresholds.
//
// # Merge Rule
//
// Each region r carries its size |r| and its internal difference Int(r), the
// weight of the edge that last merged into it (0 for a single pixel). An edge
// of weight w between regions a and b merges them when
//
//	w < min(Int(a) + k/|a|, Int(b) + k/|b|)
//
// where k is the granularity. Small regions merge easily because k/|r| is
// large; large regions only absorb edges close to their internal difference.
// Larger k gives fewer, larger segments.
//
// # Luminance
//
// Pixel luminance is 0.30*R + 0.59*G + 0.11*B over 8-bit channels.
//
// # Determinism
//
// Edges are ordered by weight and then by endpoint coordinates, union ties
// are broken toward the first operand, and segments are reported in
// row-major order of their first pixel. Identical input therefore yields
// identical roots and identical segment order on every run and platform.
//
// # Thread Safety
//
// Grid, Pixel and Edge values are immutable. A Forest is mutated by Find
// (path compression) as well as by Union and must not be shared between
// goroutines without external locking.
package segment

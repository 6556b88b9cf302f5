package segment

import "slices"

// forwardOffsets are the neighbours of a pixel that come after it in
// row-major order: E, SW, S, SE. Visiting only these from every pixel yields
// each undirected 8-neighbour pair exactly once, oriented earlier-to-later.
var forwardOffsets = [4][2]int{{0, 1}, {1, -1}, {1, 0}, {1, 1}}

// BuildEdges returns the 8-neighbourhood edges of g. Every adjacent pair of
// pixels appears once, with A the pixel that comes first in row-major order.
//
// An R×C grid yields 4RC - 3R - 3C + 2 edges.
func BuildEdges(g *Grid) []Edge {
	edges := make([]Edge, 0, edgeCount(g.rows, g.cols))
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			p := g.pixels[row*g.cols+col]
			for _, off := range forwardOffsets {
				r, c := row+off[0], col+off[1]
				if r >= g.rows || c < 0 || c >= g.cols {
					continue
				}
				edges = append(edges, newEdge(p, g.pixels[r*g.cols+c]))
			}
		}
	}
	return edges
}

func edgeCount(rows, cols int) int {
	n := 4*rows*cols - 3*rows - 3*cols + 2
	if n < 0 {
		return 0
	}
	return n
}

// SortEdges sorts edges in place by Edge.Compare: ascending weight, ties
// broken by endpoint coordinates.
func SortEdges(edges []Edge) {
	slices.SortFunc(edges, Edge.Compare)
}

// Merge runs the greedy merge pass over edges, which must already be sorted
// with SortEdges. For every edge whose endpoints lie in different segments,
// the segments are merged when the edge weight is strictly below both
// segments' thresholds InternalDifference + granularity/Size. A rejected
// edge is never revisited.
//
// Merge returns the number of unions performed.
func Merge(f *Forest, edges []Edge, granularity float64) int {
	merges := 0
	for _, e := range edges {
		ru := f.find(f.grid.mustIndex(e.A))
		rv := f.find(f.grid.mustIndex(e.B))
		if ru == rv {
			continue
		}
		if e.Weight < min(f.threshold(ru, granularity), f.threshold(rv, granularity)) {
			f.union(ru, rv, e.Weight)
			merges++
		}
	}
	return merges
}

// mergeSmall unions any two distinct segments joined by an edge when either
// holds fewer than minSize pixels. Edges are visited in the given order.
func mergeSmall(f *Forest, edges []Edge, minSize int) int {
	merges := 0
	for _, e := range edges {
		ru := f.find(f.grid.mustIndex(e.A))
		rv := f.find(f.grid.mustIndex(e.B))
		if ru == rv {
			continue
		}
		if f.nodes[ru].size < minSize || f.nodes[rv].size < minSize {
			f.union(ru, rv, e.Weight)
			merges++
		}
	}
	return merges
}

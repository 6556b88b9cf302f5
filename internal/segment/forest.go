package segment

// node is the union-find record of one pixel.
type node struct {
	parent int     // arena index of the parent, or -1 for a root
	rank   int     // upper bound on the height of the tree below this node
	size   int     // pixels in the tree; maintained on roots only
	id     float64 // internal difference; maintained on roots only
}

// Segment is one region of the final partition.
type Segment struct {
	// Root is the representative pixel of the region.
	Root Pixel
	// Pixels lists every member, Root included, in row-major order.
	Pixels []Pixel
}

// Forest is a disjoint-set forest over the pixels of a Grid, with union by
// rank, full path compression, and per-root size and internal difference.
//
// Node records live in an arena indexed by the grid's row-major pixel index.
// Methods taking a Pixel panic with ErrPixelOutOfGrid if the pixel does not
// belong to the grid the forest was built for.
type Forest struct {
	grid  *Grid
	nodes []node
}

// NewForest creates a forest in which every pixel of g is its own segment of
// size 1 and internal difference 0.
func NewForest(g *Grid) *Forest {
	nodes := make([]node, g.Len())
	for i := range nodes {
		nodes[i] = node{parent: -1, size: 1}
	}
	return &Forest{grid: g, nodes: nodes}
}

// Grid returns the grid the forest partitions.
func (f *Forest) Grid() *Grid { return f.grid }

// Find returns the root pixel of the segment containing p. Every node on the
// path from p to the root is re-pointed directly at the root.
func (f *Forest) Find(p Pixel) Pixel {
	return f.grid.At(f.find(f.grid.mustIndex(p)))
}

// find walks to the root of i, then compresses the walked path.
func (f *Forest) find(i int) int {
	root := i
	for f.nodes[root].parent >= 0 {
		root = f.nodes[root].parent
	}
	for f.nodes[i].parent >= 0 {
		next := f.nodes[i].parent
		f.nodes[i].parent = root
		i = next
	}
	return root
}

// Union merges the segments containing a and b and returns the new root.
//
// The root of higher rank becomes the parent; on equal ranks the root of a
// wins and its rank grows by one. The surviving root's size becomes the sum
// of both sizes and its internal difference is set to weight.
//
// Callers are expected to check that a and b lie in different segments. If
// they do not, Union changes nothing and returns the shared root.
func (f *Forest) Union(a, b Pixel, weight float64) Pixel {
	return f.grid.At(f.union(f.grid.mustIndex(a), f.grid.mustIndex(b), weight))
}

func (f *Forest) union(a, b int, weight float64) int {
	ra, rb := f.find(a), f.find(b)
	if ra == rb {
		return ra
	}
	parent, child := ra, rb
	if f.nodes[ra].rank < f.nodes[rb].rank {
		parent, child = rb, ra
	} else if f.nodes[ra].rank == f.nodes[rb].rank {
		f.nodes[ra].rank++
	}
	f.nodes[child].parent = parent
	f.nodes[parent].size += f.nodes[child].size
	f.nodes[parent].id = weight
	return parent
}

// Size returns the number of pixels in the segment rooted at root. The value
// is only meaningful for a root as returned by Find.
func (f *Forest) Size(root Pixel) int {
	return f.nodes[f.grid.mustIndex(root)].size
}

// InternalDifference returns the internal difference of the segment rooted
// at root: the weight of the edge that last merged into it, or 0 for a
// segment that has never merged.
func (f *Forest) InternalDifference(root Pixel) float64 {
	return f.nodes[f.grid.mustIndex(root)].id
}

// threshold is the merge threshold Int(r) + k/|r| of the root at index r.
func (f *Forest) threshold(r int, granularity float64) float64 {
	n := f.nodes[r]
	return n.id + granularity/float64(n.size)
}

// SegmentCount returns the number of segments currently in the forest.
func (f *Forest) SegmentCount() int {
	count := 0
	for _, n := range f.nodes {
		if n.parent < 0 {
			count++
		}
	}
	return count
}

// Segments groups every pixel of the grid by root.
//
// Segments are ordered by the row-major position of their first pixel and
// each segment lists its pixels in row-major order, so the result is the
// same on every call for an unchanged forest.
func (f *Forest) Segments() []Segment {
	slot := make(map[int]int)
	var segments []Segment
	for i := range f.nodes {
		root := f.find(i)
		s, ok := slot[root]
		if !ok {
			s = len(segments)
			slot[root] = s
			segments = append(segments, Segment{
				Root:   f.grid.At(root),
				Pixels: make([]Pixel, 0, f.nodes[root].size),
			})
		}
		segments[s].Pixels = append(segments[s].Pixels, f.grid.At(i))
	}
	return segments
}

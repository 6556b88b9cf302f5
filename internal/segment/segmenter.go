package segment

import (
	"fmt"
	"math"
)

// LogFunc receives progress messages. log.Printf satisfies it.
type LogFunc func(format string, args ...any)

// Options controls a segmentation run.
type Options struct {
	// Granularity is k in the merge threshold Int(r) + k/|r|. It must be
	// finite and non-negative. It is not normalised against image size:
	// callers pick a scale suited to their resolution.
	Granularity float64

	// MinSize, when positive, merges every final segment smaller than
	// MinSize pixels into a neighbour, visiting edges in ascending weight
	// order. Zero disables the pass.
	MinSize int

	// Logf, if set, receives progress messages.
	Logf LogFunc
}

// Validate checks the options.
func (o Options) Validate() error {
	if math.IsNaN(o.Granularity) || math.IsInf(o.Granularity, 0) || o.Granularity < 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidGranularity, o.Granularity)
	}
	if o.MinSize < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidMinSize, o.MinSize)
	}
	return nil
}

func (o Options) logf(format string, args ...any) {
	if o.Logf != nil {
		o.Logf(format, args...)
	}
}

// Result is the outcome of Run.
type Result struct {
	// Forest holds the final union-find state.
	Forest *Forest
	// Segments is the final partition in deterministic order.
	Segments []Segment
	// Edges is the number of graph edges considered.
	Edges int
	// Merges is the number of unions made by the greedy pass.
	Merges int
	// SmallMerges is the number of unions made by the minimum-size pass.
	SmallMerges int
}

// Run partitions g.
//
// Steps:
//  1. Validate opts.
//  2. Build the 8-neighbourhood edges and sort them by weight.
//  3. Run the greedy merge pass (see Merge).
//  4. If opts.MinSize > 0, fold undersized segments into neighbours.
//  5. Collect the segments.
//
// Returns an error wrapping ErrInvalidArgument if g is nil or opts are
// invalid. Otherwise segmentation cannot fail.
func Run(g *Grid, opts Options) (*Result, error) {
	if g == nil {
		return nil, ErrEmptyGrid
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	opts.logf("segment: %dx%d grid, granularity %g", g.rows, g.cols, opts.Granularity)

	edges := BuildEdges(g)
	SortEdges(edges)
	opts.logf("segment: %d edges sorted", len(edges))

	forest := NewForest(g)
	res := &Result{Forest: forest, Edges: len(edges)}
	res.Merges = Merge(forest, edges, opts.Granularity)
	opts.logf("segment: merge pass made %d unions", res.Merges)

	if opts.MinSize > 0 {
		res.SmallMerges = mergeSmall(forest, edges, opts.MinSize)
		opts.logf("segment: minimum size %d made %d unions", opts.MinSize, res.SmallMerges)
	}

	res.Segments = forest.Segments()
	opts.logf("segment: %d segments", len(res.Segments))
	return res, nil
}

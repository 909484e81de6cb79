// SPDX-License-Identifier: MIT
package segment

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/gbseg/disjoint"
	"github.com/katalvlaran/gbseg/gridgraph"
)

// Tau is the size-adaptive threshold τ(size) = k / size.
// Complexity: O(1).
func Tau(k float64, size int) float64 {
	return k / float64(size)
}

// Threshold computes MInt for two regions:
// min(Int(a) + τ(|a|), Int(b) + τ(|b|)).
// Complexity: O(1).
func Threshold(a, b disjoint.Stats, k float64) float64 {
	return min(a.MaxInternalDiff+Tau(k, a.Size), b.MaxInternalDiff+Tau(k, b.Size))
}

// Segment builds the graph of grid under opts.Connectivity and runs Merge.
//
// Error Conditions:
//   - ErrInvalidOptions: opts fails Validate.
//   - gridgraph.ErrInvalidImage: nil grid or non-finite pixel values.
//   - disjoint.ErrInvariantViolation: a malformed distance function.
func Segment(grid *gridgraph.Grid, opts Options) (*Partition, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	graph, err := gridgraph.Build(grid, opts.Connectivity, opts.buildOptions()...)
	if err != nil {
		return nil, fmt.Errorf("segment: build graph: %w", err)
	}

	return Merge(graph, opts)
}

// Merge runs the ordered merge pass over a prebuilt graph. Only opts.K and
// opts.OnDecision are consulted.
//
// Steps:
//  1. Validate k; copy the edge list and stable-sort it by ascending weight,
//     so equal weights keep their enumeration order.
//  2. Start one region per pixel (size 1, internal difference 0).
//  3. For each edge (a, b, w) in order:
//     a. ra, rb := Find(a), Find(b); skip when ra == rb.
//     b. accept iff w ≤ Threshold(Stats(ra), Stats(rb), k) and union the
//     regions with w as the new internal difference;
//     c. otherwise reject the edge permanently.
//  4. Freeze the forest into a Partition.
//
// Any invariant violation reported by the region structure aborts the run
// and no partition is returned.
//
// Complexity: O(E log E + E·α(V)) time, O(V + E) memory.
func Merge(graph *gridgraph.Graph, opts Options) (*Partition, error) {
	if graph == nil || graph.Grid() == nil {
		return nil, fmt.Errorf("%w: nil graph", gridgraph.ErrInvalidImage)
	}
	if err := validateK(opts.K); err != nil {
		return nil, err
	}

	// 1. Stable sort keeps enumeration order for ties (bit-identical reruns).
	edges := graph.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 2. One singleton region per pixel.
	grid := graph.Grid()
	forest := disjoint.New(grid.Len())

	// 3. Single ordered pass.
	summary := Summary{Edges: len(edges)}
	for step, e := range edges {
		ra, rb := forest.Find(e.A), forest.Find(e.B)
		if ra == rb {
			summary.Skipped++
			continue
		}
		sa, err := forest.Stats(ra)
		if err != nil {
			return nil, fmt.Errorf("segment: step %d: %w", step, err)
		}
		sb, err := forest.Stats(rb)
		if err != nil {
			return nil, fmt.Errorf("segment: step %d: %w", step, err)
		}

		d := Decision{
			Step:      step,
			Edge:      e,
			RootA:     ra,
			RootB:     rb,
			Threshold: Threshold(sa, sb, opts.K),
			Root:      -1,
		}
		if e.Weight <= d.Threshold {
			root, err := forest.Union(ra, rb, e.Weight)
			if err != nil {
				return nil, fmt.Errorf("segment: step %d: %w", step, err)
			}
			d.Accepted = true
			d.Root = root
			d.Stats, _ = forest.Stats(root)
			summary.Accepted++
		} else {
			summary.Rejected++
		}
		if opts.OnDecision != nil {
			opts.OnDecision(d)
		}
	}

	// 4. Freeze.
	return newPartition(grid.Height, grid.Width, forest, summary), nil
}

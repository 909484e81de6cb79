// Package gridgraph defines the grid, edge and graph types together with
// the build options.
package gridgraph

import (
	"github.com/katalvlaran/gbseg/pixel"
)

// ValueFunc returns the scalar value of the pixel at (row, col).
// It is called once per pixel during Build.
type ValueFunc func(row, col int) float64

// Grid is an H×W image exposed through a ValueFunc. Construct it with NewGrid
// or FromValues and treat it as immutable; Build rejects a Grid whose
// dimensions are not positive or whose accessor is missing.
type Grid struct {
	Height, Width int
	value         ValueFunc
}

// Edge connects two pixel ids A < B with a non-negative Weight.
type Edge struct {
	A, B   int     // Endpoint node ids, A < B
	Weight float64 // Minimum contributing dissimilarity
}

// Graph is the edge list produced by Build for one Grid.
// Edges are stored in enumeration order: row-major over source pixels,
// neighborhood offset order within a pixel.
type Graph struct {
	grid  *Grid
	edges []Edge
	// contrib holds every contributing weight for pairs enumerated more than
	// once, keyed by edge index. Nil for duplicate-free policies.
	contrib map[int][]float64
}

// buildConfig aggregates the knobs used by Build.
type buildConfig struct {
	distance pixel.DistanceFunc
	workers  int
}

// BuildOption customizes Build.
type BuildOption func(*buildConfig)

// WithDistance overrides the dissimilarity metric. Panics on nil.
func WithDistance(fn pixel.DistanceFunc) BuildOption {
	if fn == nil {
		panic("gridgraph: WithDistance(nil)")
	}
	return func(c *buildConfig) { c.distance = fn }
}

// WithWorkers splits weight computation over n concurrent row bands.
// Panics when n < 1.
func WithWorkers(n int) BuildOption {
	if n < 1 {
		panic("gridgraph: WithWorkers(n < 1)")
	}
	return func(c *buildConfig) { c.workers = n }
}

// newBuildConfig applies opts in order over the defaults.
func newBuildConfig(opts ...BuildOption) buildConfig {
	cfg := buildConfig{distance: pixel.AbsDiff, workers: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

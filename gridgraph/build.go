package gridgraph

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
)

// band is one contiguous run of rows [lo, hi) evaluated by a single worker.
type band struct {
	lo, hi  int
	edges   []Edge
	contrib map[int][]float64 // keyed by band-local edge index
	err     error
}

// Build enumerates every edge of grid under conn and weighs it once.
//
// Steps:
//  1. Validate grid (positive dimensions, non-nil accessor) and conn; resolve the Neighborhood for the grid size.
//  2. Read every pixel value once; a NaN or infinite value is ErrInvalidImage.
//  3. For each pixel in row-major order and each forward offset in scan
//     order, emit Edge{A: pixel, B: neighbor, Weight: distance(va, vb)}.
//     Revisited pairs keep the minimum weight and record all contributions.
//  4. With WithWorkers(n > 1) steps 2 and 3 run on row bands concurrently;
//     bands are concatenated in row order, so the output equals the
//     sequential build. On failure the error of the first failing band is
//     returned.
//
// Complexity: O(H×W×d) time, O(H×W + E) memory.
func Build(grid *Grid, conn Connectivity, opts ...BuildOption) (*Graph, error) {
	if err := grid.check(); err != nil {
		return nil, err
	}
	if conn == nil {
		return nil, ErrNilConnectivity
	}
	cfg := newBuildConfig(opts...)
	nb, err := conn.Neighborhood(grid.Height, grid.Width)
	if err != nil {
		return nil, err
	}

	bands := splitBands(grid.Height, cfg.workers)
	values := make([]float64, grid.Len())

	// Phase 1: read and validate pixel values.
	if err = runBands(bands, func(b *band) error {
		return readValues(grid, values, b)
	}); err != nil {
		return nil, err
	}

	// Phase 2: emit weighted edges.
	if err = runBands(bands, func(b *band) error {
		return emitEdges(grid, nb, cfg, values, b)
	}); err != nil {
		return nil, err
	}

	total := 0
	for _, b := range bands {
		total += len(b.edges)
	}
	g := &Graph{grid: grid, edges: make([]Edge, 0, total)}
	for _, b := range bands {
		base := len(g.edges)
		for i, ws := range b.contrib {
			if g.contrib == nil {
				g.contrib = make(map[int][]float64)
			}
			g.contrib[base+i] = ws
		}
		g.edges = append(g.edges, b.edges...)
	}

	return g, nil
}

// splitBands cuts height rows into at most workers contiguous bands.
func splitBands(height, workers int) []*band {
	n := min(workers, height)
	if n < 1 {
		n = 1
	}
	bands := make([]*band, 0, n)
	step := (height + n - 1) / n
	for lo := 0; lo < height; lo += step {
		bands = append(bands, &band{lo: lo, hi: min(lo+step, height)})
	}

	return bands
}

// runBands executes fn on every band, concurrently when there is more than
// one, and returns the error of the lowest failing band.
func runBands(bands []*band, fn func(*band) error) error {
	if len(bands) == 1 {
		bands[0].err = fn(bands[0])
		return bands[0].err
	}
	var eg errgroup.Group
	for _, b := range bands {
		eg.Go(func() error {
			b.err = fn(b)
			return b.err
		})
	}
	if eg.Wait() == nil {
		return nil
	}
	for _, b := range bands {
		if b.err != nil {
			return b.err
		}
	}

	return nil
}

// readValues fills values for the rows of b and rejects non-finite samples.
func readValues(grid *Grid, values []float64, b *band) error {
	for row := b.lo; row < b.hi; row++ {
		for col := 0; col < grid.Width; col++ {
			v := grid.value(row, col)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: value %v at (%d,%d)", ErrInvalidImage, v, row, col)
			}
			values[grid.Index(row, col)] = v
		}
	}

	return nil
}

// emitEdges appends the edges whose source pixel lies in b's rows.
func emitEdges(grid *Grid, nb Neighborhood, cfg buildConfig, values []float64, b *band) error {
	dist := cfg.distance
	b.edges = make([]Edge, 0, (b.hi-b.lo)*grid.Width*len(nb.offsets))
	for row := b.lo; row < b.hi; row++ {
		for col := 0; col < grid.Width; col++ {
			a := grid.Index(row, col)
			va := values[a]
			for k, d := range nb.offsets {
				nr, nc := row+d[0], col+d[1]
				if !grid.InBounds(nr, nc) {
					continue
				}
				bID := grid.Index(nr, nc)
				vb := values[bID]

				orients := nb.orients[k]
				var w float64
				if len(orients) == 1 {
					// Single contribution: the common path for Grid4 and Disc.
					if orients[0] {
						w = dist(va, vb)
					} else {
						w = dist(vb, va)
					}
					if err := checkWeight(w, a, bID); err != nil {
						return err
					}
				} else {
					ws := make([]float64, len(orients))
					w = math.Inf(1)
					for i, fwd := range orients {
						if fwd {
							ws[i] = dist(va, vb)
						} else {
							ws[i] = dist(vb, va)
						}
						if err := checkWeight(ws[i], a, bID); err != nil {
							return err
						}
						w = min(w, ws[i])
					}
					if b.contrib == nil {
						b.contrib = make(map[int][]float64)
					}
					b.contrib[len(b.edges)] = ws
				}
				b.edges = append(b.edges, Edge{A: a, B: bID, Weight: w})
			}
		}
	}

	return nil
}

// checkWeight rejects weights a well-formed distance can never produce.
func checkWeight(w float64, a, b int) error {
	if math.IsNaN(w) || w < 0 {
		return fmt.Errorf("%w: %v between %d and %d", ErrNegativeWeight, w, a, b)
	}

	return nil
}

// Grid returns the grid the graph was built from.
func (g *Graph) Grid() *Grid { return g.grid }

// Len returns the number of edges.
func (g *Graph) Len() int { return len(g.edges) }

// Edge returns the i-th edge in enumeration order.
func (g *Graph) Edge(i int) Edge { return g.edges[i] }

// Edges returns a copy of the edge list in enumeration order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Contributions returns every weight that contributed to edge i, or a
// single-element slice holding its weight when the pair was seen once.
func (g *Graph) Contributions(i int) []float64 {
	if ws, ok := g.contrib[i]; ok {
		out := make([]float64, len(ws))
		copy(out, ws)
		return out
	}

	return []float64{g.edges[i].Weight}
}

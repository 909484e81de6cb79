package gridgraph

import (
	"fmt"
	"iter"
	"strings"
)

// Connectivity is a neighbor policy. Given the image dimensions it resolves
// to a Neighborhood: the ordered list of forward offsets to scan from
// every pixel.
type Connectivity interface {
	Neighborhood(height, width int) (Neighborhood, error)
}

// Neighborhood is a resolved set of forward half-plane offsets for one
// image size. The zero value has no offsets and yields no neighbors.
type Neighborhood struct {
	height, width int
	offsets       [][2]int // (dRow, dCol), each on the forward half-plane
	// orients records, per offset, the orientation of every request that
	// mapped onto it (true = requested forward). Standard policies hold a
	// single true per offset; more entries mean the pair is revisited.
	orients [][]bool
}

// Grid4 connects each pixel to (+1,−1), (+1,0), (+1,+1) and (0,+1).
// Across the whole image this covers 8-connectivity without revisiting a pair.
type Grid4 struct{}

// grid4Offsets is the half 8-neighborhood, in scan order.
var grid4Offsets = [][2]int{{1, -1}, {1, 0}, {1, 1}, {0, 1}}

// Neighborhood implements Connectivity.
func (Grid4) Neighborhood(height, width int) (Neighborhood, error) {
	return newNeighborhood(height, width, grid4Offsets)
}

// String names the policy.
func (Grid4) String() string { return "grid4" }

// Disc connects each pixel to every pixel within Euclidean distance Radius.
// The radius is clamped to a quarter of the smaller image dimension, and
// never below 1, so the edge count stays proportional to the image size.
type Disc struct {
	Radius int
}

// Neighborhood implements Connectivity. Radius < 1 returns ErrInvalidRadius.
func (d Disc) Neighborhood(height, width int) (Neighborhood, error) {
	if d.Radius < 1 {
		return Neighborhood{}, fmt.Errorf("%w: got %d", ErrInvalidRadius, d.Radius)
	}

	return newNeighborhood(height, width, discOffsets(d.EffectiveRadius(height, width)))
}

// EffectiveRadius returns the radius actually used for an image of the
// given size: min(Radius, min(height, width)/4). It is 0 when the smaller
// side is below 4, and the Neighborhood then has no offsets.
func (d Disc) EffectiveRadius(height, width int) int {
	return max(0, min(d.Radius, min(height, width)/4))
}

// String names the policy.
func (d Disc) String() string { return fmt.Sprintf("disc(r=%d)", d.Radius) }

// discOffsets enumerates the forward half-disc of radius r:
// row 0 contributes columns 1..r, rows 1..r contribute −r..r.
func discOffsets(r int) [][2]int {
	offsets := make([][2]int, 0, 2*r*r+2*r)
	for dr := 0; dr <= r; dr++ {
		for dc := -r; dc <= r; dc++ {
			if dr == 0 && dc <= 0 {
				continue // base point or backward half
			}
			if dr*dr+dc*dc > r*r {
				continue // outside the disc
			}
			offsets = append(offsets, [2]int{dr, dc})
		}
	}

	return offsets
}

// Offsets is a caller-defined neighborhood. Offsets may point in any
// direction; each is folded onto the forward half-plane, so an offset given
// in both orientations (or twice) revisits the same pair and is merged into
// a single edge by Build.
type Offsets [][2]int

// Neighborhood implements Connectivity. A (0,0) offset is ErrInvalidOffset.
func (o Offsets) Neighborhood(height, width int) (Neighborhood, error) {
	return newNeighborhood(height, width, o)
}

// String names the policy.
func (o Offsets) String() string { return fmt.Sprintf("offsets(%d)", len(o)) }

// ParseConnectivity maps a policy name to a Connectivity.
// Recognised names are "grid4" and "disc" (alias "nn"); radius applies to disc.
func ParseConnectivity(name string, radius int) (Connectivity, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "grid4", "grid":
		return Grid4{}, nil
	case "disc", "nn":
		if radius < 1 {
			return nil, fmt.Errorf("%w: got %d", ErrInvalidRadius, radius)
		}
		return Disc{Radius: radius}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownConnectivity, name)
	}
}

// newNeighborhood folds raw offsets onto the forward half-plane, keeping
// first-seen order and recording the orientation of every request.
func newNeighborhood(height, width int, raw [][2]int) (Neighborhood, error) {
	n := Neighborhood{height: height, width: width}
	seen := make(map[[2]int]int, len(raw))
	for _, d := range raw {
		forward := true
		switch {
		case d[0] == 0 && d[1] == 0:
			return Neighborhood{}, fmt.Errorf("%w: (0,0)", ErrInvalidOffset)
		case d[0] < 0 || (d[0] == 0 && d[1] < 0):
			d = [2]int{-d[0], -d[1]}
			forward = false
		}
		if i, ok := seen[d]; ok {
			n.orients[i] = append(n.orients[i], forward)
			continue
		}
		seen[d] = len(n.offsets)
		n.offsets = append(n.offsets, d)
		n.orients = append(n.orients, []bool{forward})
	}

	return n, nil
}

// Offsets returns a copy of the forward offsets in scan order.
func (n Neighborhood) Offsets() [][2]int {
	out := make([][2]int, len(n.offsets))
	copy(out, n.offsets)

	return out
}

// Revisits reports whether any pair is enumerated more than once or in the
// backward orientation, i.e. whether Build has to merge contributions.
func (n Neighborhood) Revisits() bool {
	for _, o := range n.orients {
		if len(o) != 1 || !o[0] {
			return true
		}
	}

	return false
}

// Neighbors yields the in-bounds forward neighbors (row, col) of a pixel,
// lazily and in offset order.
func (n Neighborhood) Neighbors(row, col int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for _, d := range n.offsets {
			r, c := row+d[0], col+d[1]
			if !n.inBounds(r, c) {
				continue
			}
			if !yield(r, c) {
				return
			}
		}
	}
}

// Adjacent yields the in-bounds neighbors of a pixel in both orientations:
// forward offsets first, then their mirrors.
func (n Neighborhood) Adjacent(row, col int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for _, sign := range [2]int{1, -1} {
			for _, d := range n.offsets {
				r, c := row+sign*d[0], col+sign*d[1]
				if !n.inBounds(r, c) {
					continue
				}
				if !yield(r, c) {
					return
				}
			}
		}
	}
}

func (n Neighborhood) inBounds(row, col int) bool {
	return row >= 0 && row < n.height && col >= 0 && col < n.width
}

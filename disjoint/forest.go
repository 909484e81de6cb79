// SPDX-License-Identifier: MIT
package disjoint

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for disjoint-set operations.
var (
	// ErrInvariantViolation indicates a broken caller contract. It is never
	// recoverable and must not be ignored.
	ErrInvariantViolation = errors.New("disjoint: invariant violation")

	// ErrIDOutOfRange indicates an element id outside [0, Len()).
	ErrIDOutOfRange = errors.New("disjoint: id out of range")
)

// Stats are the aggregate statistics carried by a region's representative.
type Stats struct {
	// Size is the number of elements in the region.
	Size int
	// MaxInternalDiff is the largest edge weight accepted inside the region.
	MaxInternalDiff float64
}

// Forest is a disjoint-set forest over the dense ids [0, n).
//
// parent[i] == i marks a root. size and maxDiff are meaningful on roots only;
// absorbed roots have size 0.
type Forest struct {
	parent  []int
	size    []int
	maxDiff []float64
	count   int
}

// New creates a Forest of n singleton regions, each of size 1 and internal
// difference 0. A negative n is treated as 0.
// Complexity: O(n) time and memory.
func New(n int) *Forest {
	if n < 0 {
		n = 0
	}
	f := &Forest{
		parent:  make([]int, n),
		size:    make([]int, n),
		maxDiff: make([]float64, n),
		count:   n,
	}
	for i := range f.parent {
		f.parent[i] = i
		f.size[i] = 1
	}

	return f
}

// Len returns the number of elements the forest was created with.
func (f *Forest) Len() int { return len(f.parent) }

// Count returns the number of live regions.
func (f *Forest) Count() int { return f.count }

// Find returns the representative of the region containing id.
// After the call every node on the walked path points directly at the root.
// id must lie in [0, Len()); Find panics otherwise, like a slice index.
// Complexity: O(α(n)) amortised.
func (f *Forest) Find(id int) int {
	// 1. Walk up to the root.
	root := id
	for f.parent[root] != root {
		root = f.parent[root]
	}
	// 2. Second pass: repoint every visited node at the root.
	for f.parent[id] != root {
		id, f.parent[id] = f.parent[id], root
	}

	return root
}

// Union merges the regions containing a and b after an edge of the given
// weight was accepted between them, and returns the surviving root.
//
// Contract:
//   - a and b must belong to different regions.
//   - weight must be finite, ≥ 0, and ≥ both regions' MaxInternalDiff.
//
// Any breach returns ErrInvariantViolation (wrapped with the offending ids)
// and leaves the forest unchanged.
//
// The larger region survives (ties: smaller id). The survivor's size becomes
// the sum of both sizes and its MaxInternalDiff becomes weight.
// Complexity: O(α(n)) amortised.
func (f *Forest) Union(a, b int, weight float64) (int, error) {
	if err := f.check(a); err != nil {
		return -1, err
	}
	if err := f.check(b); err != nil {
		return -1, err
	}
	ra, rb := f.Find(a), f.Find(b)
	if ra == rb {
		return -1, fmt.Errorf("%w: union of %d and %d inside region %d", ErrInvariantViolation, a, b, ra)
	}
	if math.IsNaN(weight) || weight < 0 {
		return -1, fmt.Errorf("%w: weight %v between %d and %d", ErrInvariantViolation, weight, a, b)
	}
	if weight < f.maxDiff[ra] || weight < f.maxDiff[rb] {
		return -1, fmt.Errorf("%w: weight %v below internal difference (%v, %v) of regions %d and %d",
			ErrInvariantViolation, weight, f.maxDiff[ra], f.maxDiff[rb], ra, rb)
	}

	// Pick the survivor: larger size wins, equal sizes keep the smaller id.
	keep, drop := ra, rb
	if f.size[rb] > f.size[ra] || (f.size[rb] == f.size[ra] && rb < ra) {
		keep, drop = rb, ra
	}
	f.parent[drop] = keep
	f.size[keep] += f.size[drop]
	f.maxDiff[keep] = weight
	// Absorbed root is dead; clear its bookkeeping.
	f.size[drop] = 0
	f.maxDiff[drop] = 0
	f.count--

	return keep, nil
}

// Stats returns the statistics of the region containing id.
// Complexity: O(α(n)) amortised.
func (f *Forest) Stats(id int) (Stats, error) {
	if err := f.check(id); err != nil {
		return Stats{}, err
	}
	r := f.Find(id)

	return Stats{Size: f.size[r], MaxInternalDiff: f.maxDiff[r]}, nil
}

// IsRoot reports whether id is currently a representative.
func (f *Forest) IsRoot(id int) bool {
	return id >= 0 && id < len(f.parent) && f.parent[id] == id
}

// Roots returns every live representative in ascending order.
// Complexity: O(n).
func (f *Forest) Roots() []int {
	roots := make([]int, 0, f.count)
	for i, p := range f.parent {
		if p == i {
			roots = append(roots, i)
		}
	}

	return roots
}

// check validates that id addresses an element of the forest.
func (f *Forest) check(id int) error {
	if id < 0 || id >= len(f.parent) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIDOutOfRange, id, len(f.parent))
	}

	return nil
}

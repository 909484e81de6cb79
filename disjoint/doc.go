// SPDX-License-Identifier: MIT
// Package disjoint implements the region structure used by graph-based
// segmentation: a disjoint-set forest whose roots carry aggregate
// statistics about the region they represent.
//
// What & Why
//
//   - Plain union-find only answers "are a and b connected?". The merge
//     predicate of the segmentation engine also needs, at decision time,
//     each region's Size and MaxInternalDiff (the weight of the edge that
//     last grew it). Both are kept on the representative so a lookup is
//     O(1) after Find.
//
//   - Find compacts the full path: every node visited is repointed straight
//     at the root, giving amortised near-constant lookups over a merge run.
//
//   - Union is size-weighted. The larger region survives; equal sizes keep
//     the smaller numeric id so that repeated runs pick identical roots.
//
// Invariants
//
//   - Size ≥ 1 for every live root; sizes only grow.
//   - MaxInternalDiff only grows: Union rejects a weight below either
//     region's current value.
//   - An absorbed root's statistics are zeroed and never read again.
//
// Error Conditions
//
//   - ErrInvariantViolation: union of a region with itself, a negative or
//     NaN weight, or a weight below an existing internal difference.
//   - ErrIDOutOfRange: an id outside [0, Len()).
//
// Concurrency: a Forest has no locks. It is owned and mutated by exactly
// one caller (the merge engine) for the duration of a run.
//
// Complexity: Find/Union O(α(n)) amortised, Stats O(α(n)), memory O(n).
package disjoint

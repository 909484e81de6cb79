// SPDX-License-Identifier: MIT
// Package segment partitions an image into regions of visually similar
// pixels with the Felzenszwalb–Huttenlocher graph-based merge procedure.
//
// What & Why
//
//   - The image is a gridgraph.Graph: one node per pixel, edges weighted by
//     pixel dissimilarity. Every node starts as its own region.
//
//   - Edges are consumed once, from lowest to highest weight (ties keep
//     their enumeration order). For an edge (a, b, w) whose endpoints lie
//     in different regions A and B, the merge predicate is
//
//     w ≤ MInt(A, B) = min(Int(A) + τ(|A|), Int(B) + τ(|B|)),  τ(n) = k / n
//
//     where Int is the region's largest accepted edge weight and k is the
//     single granularity constant (larger k → fewer, larger regions).
//
//   - Accepted edges union the regions; rejected edges are discarded for
//     good. Because weights never decrease along the pass, MInt is always
//     evaluated against each region's current internal difference.
//
// Operations
//
//   - Segment(grid, opts)  builds the graph and runs Merge.
//   - Merge(graph, opts)   runs the ordered merge pass on a prebuilt graph.
//   - Threshold / Tau      expose the predicate for inspection and tests.
//   - Partition            the read-only result: RegionOf, RegionSize,
//     Regions (descending size), Members, Labels, Fingerprint.
//   - FromLabels           rebuilds a Partition from a saved label map.
//
// Determinism: fixed pixel values, connectivity and k give the same
// accept/reject sequence and the same representative ids on every run;
// Partition.Fingerprint makes that checkable.
//
// Errors
//
//   - ErrInvalidOptions    k ≤ 0, NaN/Inf k, nil connectivity, negative workers.
//   - ErrPixelOutOfRange   RegionOf with an id outside [0, H·W).
//   - ErrUnknownRegion     RegionSize/Members on a non-representative id.
//   - gridgraph.ErrInvalidImage and disjoint.ErrInvariantViolation propagate
//     unchanged (wrapped with context). No partial partition is ever returned.
//
// Complexity: O(E log E) for the sort plus O(E·α(V)) for the pass.
package segment

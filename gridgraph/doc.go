// Package gridgraph treats a raster of pixel values as a weighted,
// undirected graph: one node per pixel, one edge per neighboring pair,
// weighted by the dissimilarity of the two pixel values.
//
// What:
//
//   - Grid wraps an H×W image behind a ValueFunc accessor (row, col) → value.
//     Node ids are row-major: id = row·W + col, dense in [0, H·W).
//   - Connectivity selects which pairs become edges. Two policies ship:
//     Grid4 (half of the 8-neighborhood) and Disc (every neighbor within a
//     Euclidean radius). Offsets lets callers plug in other schemes.
//   - Build enumerates every edge exactly once and weighs it with a
//     pixel.DistanceFunc (pixel.AbsDiff by default).
//   - LabelComponents flood-fills a label map into spatially connected
//     components, which callers use to verify that regions are contiguous.
//
// Why half-neighborhoods:
//
//	Scanning only the forward half-plane (dr > 0, or dr == 0 with dc > 0)
//	from every pixel reaches each unordered pair once, so the edge list never
//	holds symmetric duplicates. Grid4's offsets {(+1,−1),(+1,0),(+1,+1),(0,+1)}
//	give the full 8-connectivity of the image this way.
//
// Complexity:
//
//   - Build: O(H×W×d) time, O(H×W + E) memory, where d is the number of
//     forward offsets (4 for Grid4, about πr²/2 for Disc).
//   - LabelComponents: O(H×W×d) time, O(H×W) memory.
//
// Options:
//
//   - WithDistance: replaces the dissimilarity metric.
//   - WithWorkers: evaluates weights on that many row bands concurrently.
//     The resulting edge order is identical to the sequential build.
//
// Errors:
//
//   - ErrInvalidImage: zero-area or negative dimensions, nil accessor,
//     non-finite pixel values, ragged input rows.
//   - ErrInvalidRadius: Disc radius below 1.
//   - ErrInvalidOffset: a (0,0) offset in a custom Offsets policy.
//   - ErrNegativeWeight: the distance function produced a negative or NaN
//     weight; wraps disjoint.ErrInvariantViolation.
//   - ErrUnknownConnectivity: ParseConnectivity got an unknown name.
package gridgraph

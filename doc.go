// Package gbseg is graph-based image segmentation in pure Go: an image
// becomes a weighted pixel graph, and regions grow by merging along the
// lightest edges while the Felzenszwalb–Huttenlocher MInt predicate holds.
//
// What's inside
//
//	pixel/      scalar pixel values (luminance) and the distance extension point
//	gridgraph/  pixel grids, connectivity policies (Grid4, Disc, Offsets), edge lists
//	disjoint/   union-find forest carrying region size and internal difference
//	segment/    the merge engine and the read-only Partition it returns
//	imageio/    decoding (PNG, JPEG, GIF, BMP, TIFF, WebP), PNG output, label files
//	render/     colorized and monochrome views of a partition
//	cmd/gbseg   command-line driver
//
// Quick example:
//
//	img, _, _ := imageio.Load("photo.png")
//	grid, _ := imageio.Grid(img)
//	p, _ := segment.Segment(grid, segment.DefaultOptions())
//	_ = imageio.SavePNG("regions.png", render.Colorize(p, 40, 1))
//
// Larger K gives fewer, larger regions. Results are deterministic: the same
// image and options always produce the same Partition.Fingerprint.
//
//	go get github.com/katalvlaran/gbseg
package gbseg

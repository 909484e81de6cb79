// Package imageio adapts files and image.Image values to the segmentation
// core and writes results back out.
//
//   - Load / Decode read PNG, JPEG and GIF (standard library) plus BMP, TIFF
//     and WebP (golang.org/x/image).
//   - Grid exposes an image.Image as a gridgraph.Grid whose values come from
//     pixel.FromColor, with the image bounds translated to a zero origin.
//   - SavePNG writes a rendered partition.
//   - WriteLabels / ReadLabels persist a partition's label map as a
//     zstd-compressed binary stream (see labels.go for the layout).
package imageio

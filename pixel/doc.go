// Package pixel reduces raw per-pixel samples to the single comparable
// scalar that the segmentation graph is weighted by.
//
// What:
//
//   - Luminance folds an RGB triple into one value with fixed weights
//     (LumaRed, LumaGreen, LumaBlue). Alpha never contributes.
//   - FromSample accepts 1, 3 or 4 channel samples; one channel passes
//     through unchanged.
//   - FromColor does the same for any image/color.Color on the 0..255 scale.
//   - DistanceFunc is the pluggable dissimilarity between two values;
//     AbsDiff (|a−b|) is the default used by gridgraph.Build.
//
// All functions are pure and safe for concurrent use.
//
// Errors:
//
//   - ErrChannelCount: a sample has a channel count other than 1, 3 or 4.
package pixel

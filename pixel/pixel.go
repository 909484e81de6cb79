package pixel

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

// ErrChannelCount indicates a sample whose channel count is not 1, 3 or 4.
var ErrChannelCount = errors.New("pixel: sample must have 1, 3 or 4 channels")

// Luminance weights for the red, green and blue channels.
const (
	LumaRed   = 0.298912
	LumaGreen = 0.586611
	LumaBlue  = 0.114478
)

// Pixel is a grid position together with its derived scalar value.
// It is a plain value and never changes after construction.
type Pixel struct {
	Row, Col int     // Coordinates within the image
	Value    float64 // Scalar used for edge weighting
}

// DistanceFunc measures the dissimilarity of two pixel values.
// Implementations must return a non-negative, non-NaN result.
type DistanceFunc func(a, b float64) float64

// AbsDiff is the default DistanceFunc: |a − b|.
// Complexity: O(1).
func AbsDiff(a, b float64) float64 {
	return math.Abs(a - b)
}

// Luminance returns the weighted luminance of an RGB triple.
// Complexity: O(1).
func Luminance(r, g, b float64) float64 {
	return LumaRed*r + LumaGreen*g + LumaBlue*b
}

// FromSample reduces a raw sample to its scalar value.
//
//   - 1 channel   → the channel itself
//   - 3 channels  → Luminance(r, g, b)
//   - 4 channels  → Luminance(r, g, b); alpha is ignored
//
// Any other length returns ErrChannelCount.
// Complexity: O(1).
func FromSample(sample []float64) (float64, error) {
	switch len(sample) {
	case 1:
		return sample[0], nil
	case 3, 4:
		return Luminance(sample[0], sample[1], sample[2]), nil
	default:
		return 0, fmt.Errorf("%w: got %d", ErrChannelCount, len(sample))
	}
}

// FromColor reduces c to its scalar value on the 0..255 scale.
// Gray and Gray16 colors pass through; every other model is first
// converted to non-premultiplied RGBA so alpha cannot darken the result.
func FromColor(c color.Color) float64 {
	switch v := c.(type) {
	case color.Gray:
		return float64(v.Y)
	case color.Gray16:
		return float64(v.Y) / 257
	case color.NRGBA:
		return Luminance(float64(v.R), float64(v.G), float64(v.B))
	}
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)

	return Luminance(float64(n.R)/257, float64(n.G)/257, float64(n.B)/257)
}

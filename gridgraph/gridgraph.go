// Package gridgraph provides utilities to treat a 2D raster of pixel values
// as a graph. This file holds the Grid constructors and coordinate helpers.
package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/gbseg/pixel"
)

// NewGrid constructs a Grid of the given dimensions backed by value.
// Returns ErrInvalidImage if either dimension is negative, the area is zero,
// or value is nil.
// Complexity: O(1).
func NewGrid(height, width int, value ValueFunc) (*Grid, error) {
	if height < 0 || width < 0 || height*width == 0 {
		return nil, fmt.Errorf("%w: zero-area image %dx%d", ErrInvalidImage, height, width)
	}
	if value == nil {
		return nil, fmt.Errorf("%w: nil value accessor", ErrInvalidImage)
	}

	return &Grid{Height: height, Width: width, value: value}, nil
}

// FromValues constructs a Grid from a non-empty, rectangular 2D slice
// indexed as values[row][col]. It deep-copies the input to ensure
// immutability. Ragged rows return ErrInvalidImage.
// Complexity: O(H×W) time and memory.
func FromValues(values [][]float64) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, fmt.Errorf("%w: input must have at least one row and one column", ErrInvalidImage)
	}
	h, w := len(values), len(values[0])
	// Deep copy to prevent external mutation
	flat := make([]float64, 0, h*w)
	for r, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidImage, r, len(row), w)
		}
		flat = append(flat, row...)
	}

	return NewGrid(h, w, func(row, col int) float64 { return flat[row*w+col] })
}

// Len returns the number of pixels, H×W.
func (g *Grid) Len() int { return g.Height * g.Width }

// InBounds reports whether (row, col) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Height && col >= 0 && col < g.Width
}

// Index maps (row, col) to its row-major node id: row·W + col.
// Complexity: O(1).
func (g *Grid) Index(row, col int) int {
	return row*g.Width + col
}

// Coordinate converts a row-major node id back to (row, col).
// Complexity: O(1).
func (g *Grid) Coordinate(id int) (row, col int) {
	return id / g.Width, id % g.Width
}

// check re-validates g, which may be a struct literal or have had its
// exported dimensions changed after NewGrid.
func (g *Grid) check() error {
	switch {
	case g == nil:
		return fmt.Errorf("%w: nil grid", ErrInvalidImage)
	case g.Height <= 0 || g.Width <= 0:
		return fmt.Errorf("%w: zero-area image %dx%d", ErrInvalidImage, g.Height, g.Width)
	case g.value == nil:
		return fmt.Errorf("%w: nil value accessor", ErrInvalidImage)
	}

	return nil
}

// Value returns the raw accessor value at (row, col).
func (g *Grid) Value(row, col int) float64 {
	return g.value(row, col)
}

// Pixel returns the pixel at (row, col) with its value.
func (g *Grid) Pixel(row, col int) pixel.Pixel {
	return pixel.Pixel{Row: row, Col: col, Value: g.value(row, col)}
}

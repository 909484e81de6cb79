// SPDX-License-Identifier: MIT
// Package render turns a segment.Partition into images for inspection.
//
// Colorize paints the largest regions with random, reproducible colors and
// leaves the rest black. Monochrome assigns each region a gray level by its
// rank in Partition.Regions order.
package render

import (
	"image"
	"image/color"
	"math/rand"

	"github.com/katalvlaran/gbseg/segment"
)

// maxColors is the number of distinct non-black 24-bit colors.
const maxColors = 1<<24 - 1

// Palette returns n opaque colors drawn from a RNG seeded with seed. Colors
// are distinct and never black while n ≤ 2^24-1; past that they repeat.
// The same (n, seed) always yields the same palette. n < 0 is treated as 0.
func Palette(n int, seed int64) []color.RGBA {
	if n <= 0 {
		return nil
	}
	r := rand.New(rand.NewSource(seed))
	out := make([]color.RGBA, 0, n)
	seen := make(map[uint32]struct{}, min(n, maxColors))
	for len(out) < n {
		v := uint32(r.Int31n(1 << 24))
		if len(seen) < maxColors {
			if _, dup := seen[v]; dup || v == 0 {
				continue
			}
			seen[v] = struct{}{}
		}
		out = append(out, color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff})
	}

	return out
}

// Colorize paints the topN largest regions of p with Palette(topN, seed), in
// Regions order, and every other pixel opaque black. topN ≤ 0 or larger than
// p.Len() colors every region.
func Colorize(p *segment.Partition, topN int, seed int64) *image.RGBA {
	regions := p.Regions()
	if topN <= 0 || topN > len(regions) {
		topN = len(regions)
	}
	palette := Palette(topN, seed)
	lookup := make(map[int]color.RGBA, topN)
	for i, reg := range regions[:topN] {
		lookup[reg.ID] = palette[i]
	}

	img := image.NewRGBA(image.Rect(0, 0, p.Width(), p.Height()))
	black := color.RGBA{A: 0xff}
	for id, rep := range p.Labels() {
		c, ok := lookup[rep]
		if !ok {
			c = black
		}
		img.SetRGBA(id%p.Width(), id/p.Width(), c)
	}

	return img
}

// Monochrome paints region i of p.Regions() with gray level i*255/p.Len(),
// so the largest region is black.
func Monochrome(p *segment.Partition) *image.Gray {
	regions := p.Regions()
	level := make(map[int]uint8, len(regions))
	for i, reg := range regions {
		level[reg.ID] = uint8(i * 255 / len(regions))
	}

	img := image.NewGray(image.Rect(0, 0, p.Width(), p.Height()))
	for id, rep := range p.Labels() {
		img.Pix[img.PixOffset(id%p.Width(), id/p.Width())] = level[rep]
	}

	return img
}

// SPDX-License-Identifier: MIT
package segment

import (
	"encoding/binary"
	"fmt"
	"sort"

	"lukechampine.com/blake3"

	"github.com/katalvlaran/gbseg/disjoint"
)

// Region is one final segment: its representative id and pixel count.
type Region struct {
	ID   int
	Size int
}

// Summary counts the outcome of a merge pass.
type Summary struct {
	Edges    int // Edges considered
	Accepted int // Edges that merged two regions
	Rejected int // Edges that failed the MInt predicate
	Skipped  int // Edges whose endpoints already shared a region
}

// Partition is the final, read-only mapping from pixel id to region.
// It never changes after construction and is safe for concurrent reads.
type Partition struct {
	height, width int
	labels        []int       // pixel id → representative id
	sizes         map[int]int // representative id → size
	regions       []Region    // descending size, then ascending id
	summary       Summary
}

// newPartition freezes a finished forest.
func newPartition(height, width int, forest *disjoint.Forest, summary Summary) *Partition {
	labels := make([]int, forest.Len())
	for id := range labels {
		labels[id] = forest.Find(id)
	}
	p := build(height, width, labels)
	p.summary = summary

	return p
}

// FromLabels rebuilds a Partition from a row-major label map, such as one
// read back from disk. Every label must be a pixel id in range whose own
// label is itself (i.e. a representative).
// Complexity: O(H·W + R log R) for R regions.
func FromLabels(height, width int, labels []int) (*Partition, error) {
	if height <= 0 || width <= 0 || len(labels) != height*width {
		return nil, fmt.Errorf("%w: %d labels for a %dx%d image", ErrPixelOutOfRange, len(labels), height, width)
	}
	for id, rep := range labels {
		if rep < 0 || rep >= len(labels) {
			return nil, fmt.Errorf("%w: pixel %d labelled %d", ErrPixelOutOfRange, id, rep)
		}
		if labels[rep] != rep {
			return nil, fmt.Errorf("%w: pixel %d labelled %d, which is not a representative", ErrUnknownRegion, id, rep)
		}
	}
	cp := make([]int, len(labels))
	copy(cp, labels)

	return build(height, width, cp), nil
}

// build groups labels by representative and orders the regions.
func build(height, width int, labels []int) *Partition {
	sizes := make(map[int]int)
	for _, rep := range labels {
		sizes[rep]++
	}
	regions := make([]Region, 0, len(sizes))
	for id, n := range sizes {
		regions = append(regions, Region{ID: id, Size: n})
	}
	sort.Slice(regions, func(i, j int) bool {
		if regions[i].Size != regions[j].Size {
			return regions[i].Size > regions[j].Size
		}
		return regions[i].ID < regions[j].ID
	})

	return &Partition{height: height, width: width, labels: labels, sizes: sizes, regions: regions}
}

// Height returns the image height in pixels.
func (p *Partition) Height() int { return p.height }

// Width returns the image width in pixels.
func (p *Partition) Width() int { return p.width }

// Len returns the number of regions.
func (p *Partition) Len() int { return len(p.regions) }

// Summary returns the merge pass counters. It is zero for partitions
// rebuilt with FromLabels.
func (p *Partition) Summary() Summary { return p.summary }

// RegionOf returns the representative id of the region containing pixelID.
// Complexity: O(1).
func (p *Partition) RegionOf(pixelID int) (int, error) {
	if pixelID < 0 || pixelID >= len(p.labels) {
		return -1, fmt.Errorf("%w: %d not in [0, %d)", ErrPixelOutOfRange, pixelID, len(p.labels))
	}

	return p.labels[pixelID], nil
}

// RegionSize returns the pixel count of the region represented by rep.
// Complexity: O(1).
func (p *Partition) RegionSize(rep int) (int, error) {
	n, ok := p.sizes[rep]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownRegion, rep)
	}

	return n, nil
}

// Regions returns every region ordered by descending size; equal sizes
// are ordered by ascending representative id.
func (p *Partition) Regions() []Region {
	out := make([]Region, len(p.regions))
	copy(out, p.regions)

	return out
}

// Members returns the pixel ids of region rep in ascending order.
// Complexity: O(H·W).
func (p *Partition) Members(rep int) ([]int, error) {
	n, ok := p.sizes[rep]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownRegion, rep)
	}
	members := make([]int, 0, n)
	for id, r := range p.labels {
		if r == rep {
			members = append(members, id)
		}
	}

	return members, nil
}

// Labels returns a copy of the row-major label map.
func (p *Partition) Labels() []int {
	out := make([]int, len(p.labels))
	copy(out, p.labels)

	return out
}

// Fingerprint returns the BLAKE3-256 digest of the dimensions and the label
// map (all little-endian uint64). Two partitions with equal fingerprints
// assign every pixel to the same representative.
func (p *Partition) Fingerprint() [32]byte {
	h := blake3.New(32, nil)
	var buf [8]byte
	for _, v := range [2]int{p.height, p.width} {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		_, _ = h.Write(buf[:])
	}
	for _, rep := range p.labels {
		binary.LittleEndian.PutUint64(buf[:], uint64(rep))
		_, _ = h.Write(buf[:])
	}
	var sum [32]byte
	copy(sum[:], h.Sum(nil))

	return sum
}

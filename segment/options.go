// SPDX-License-Identifier: MIT
package segment

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/gbseg/disjoint"
	"github.com/katalvlaran/gbseg/gridgraph"
	"github.com/katalvlaran/gbseg/pixel"
)

// Sentinel errors for segmentation.
var (
	// ErrInvalidOptions indicates an Options value outside its documented range.
	ErrInvalidOptions = errors.New("segment: invalid options")
	// ErrPixelOutOfRange indicates a pixel id outside [0, H·W).
	ErrPixelOutOfRange = errors.New("segment: pixel id out of range")
	// ErrUnknownRegion indicates an id that is not a region representative.
	ErrUnknownRegion = errors.New("segment: unknown region")
)

// DefaultK is the granularity constant used by DefaultOptions.
const DefaultK = 125.0

// Decision describes one accept/reject step of the merge pass.
// Edges whose endpoints already share a region are skipped and not reported.
type Decision struct {
	Step      int            // Position of the edge in sorted order
	Edge      gridgraph.Edge // The edge being decided
	RootA     int            // Representative of Edge.A before the step
	RootB     int            // Representative of Edge.B before the step
	Threshold float64        // MInt(RootA, RootB)
	Accepted  bool           // Edge.Weight ≤ Threshold
	Root      int            // Surviving representative; -1 when rejected
	Stats     disjoint.Stats // Survivor statistics after the union (accepted only)
}

// Options configures a segmentation run. The zero value is not valid;
// start from DefaultOptions.
type Options struct {
	// K is the granularity constant of τ(size) = K / size. Must be > 0 and finite.
	K float64
	// Connectivity selects the neighbor policy used by Segment.
	Connectivity gridgraph.Connectivity
	// Distance is the pixel dissimilarity; nil means pixel.AbsDiff.
	Distance pixel.DistanceFunc
	// Workers is the number of row bands for weight computation; 0 means 1.
	Workers int
	// OnDecision, if set, observes every accept/reject decision in order.
	OnDecision func(Decision)
}

// DefaultOptions returns Options with K=DefaultK, Grid4 connectivity,
// absolute-difference weights and a single worker.
func DefaultOptions() Options {
	return Options{
		K:            DefaultK,
		Connectivity: gridgraph.Grid4{},
		Distance:     pixel.AbsDiff,
		Workers:      1,
	}
}

// Validate reports whether o can drive Segment.
func (o Options) Validate() error {
	if err := validateK(o.K); err != nil {
		return err
	}
	if o.Connectivity == nil {
		return fmt.Errorf("%w: nil connectivity", ErrInvalidOptions)
	}
	if o.Workers < 0 {
		return fmt.Errorf("%w: workers %d < 0", ErrInvalidOptions, o.Workers)
	}

	return nil
}

func validateK(k float64) error {
	if math.IsNaN(k) || math.IsInf(k, 0) || k <= 0 {
		return fmt.Errorf("%w: k must be finite and > 0, got %v", ErrInvalidOptions, k)
	}

	return nil
}

// buildOptions translates o into gridgraph build options.
func (o Options) buildOptions() []gridgraph.BuildOption {
	var opts []gridgraph.BuildOption
	if o.Distance != nil {
		opts = append(opts, gridgraph.WithDistance(o.Distance))
	}
	if o.Workers > 1 {
		opts = append(opts, gridgraph.WithWorkers(o.Workers))
	}

	return opts
}

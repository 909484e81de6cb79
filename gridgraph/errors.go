package gridgraph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gbseg/disjoint"
)

var (
	// ErrInvalidImage indicates an image that cannot be turned into a graph.
	ErrInvalidImage = errors.New("gridgraph: invalid image")
	// ErrInvalidRadius indicates a Disc radius below 1.
	ErrInvalidRadius = errors.New("gridgraph: disc radius must be at least 1")
	// ErrInvalidOffset indicates a zero offset in a custom neighborhood.
	ErrInvalidOffset = errors.New("gridgraph: neighbor offset must be non-zero")
	// ErrNilConnectivity indicates Build was called without a neighbor policy.
	ErrNilConnectivity = errors.New("gridgraph: nil connectivity")
	// ErrUnknownConnectivity indicates an unrecognised connectivity name.
	ErrUnknownConnectivity = errors.New("gridgraph: unknown connectivity")
	// ErrNegativeWeight indicates a distance function returned a weight < 0 or NaN.
	ErrNegativeWeight = fmt.Errorf("gridgraph: negative or NaN edge weight: %w", disjoint.ErrInvariantViolation)
)

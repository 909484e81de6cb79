// File: gridgraph/components_test.go
package gridgraph_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gbseg/gridgraph"
)

// TestLabelComponents_Simple tests LabelComponents on a 3×4 label map
// with orthogonal connectivity (Disc radius 1).
//
// Labels:
//
//	0 1 1 0
//	1 1 0 0
//	0 0 1 1
//
// Expected under 4-adjacency: {0}, {1,2,4,5}, {3,6,7}, {8,9}, {10,11}.
func TestLabelComponents_Simple(t *testing.T) {
	labels := []int{
		0, 1, 1, 0,
		1, 1, 0, 0,
		0, 0, 1, 1,
	}
	comps, err := gridgraph.LabelComponents(3, 4, labels, gridgraph.Disc{Radius: 1})
	require.NoError(t, err)

	var sizes []int
	for _, c := range comps {
		sizes = append(sizes, len(c))
	}
	sort.Ints(sizes)
	assert.Equal(t, []int{1, 2, 2, 3, 4}, sizes)
	assert.Equal(t, []int{0}, comps[0])
}

// TestLabelComponents_Diagonal uses Grid4 (full 8-adjacency) to join
// touching corners: the X of ones becomes a single component.
//
// Labels:
//
//	1 0 0 0 1
//	0 1 0 1 0
//	0 0 1 0 0
//	0 1 0 1 0
//	1 0 0 0 1
func TestLabelComponents_Diagonal(t *testing.T) {
	labels := []int{
		1, 0, 0, 0, 1,
		0, 1, 0, 1, 0,
		0, 0, 1, 0, 0,
		0, 1, 0, 1, 0,
		1, 0, 0, 0, 1,
	}
	comps, err := gridgraph.LabelComponents(5, 5, labels, gridgraph.Grid4{})
	require.NoError(t, err)

	ones := 0
	for _, c := range comps {
		if labels[c[0]] == 1 {
			ones++
			assert.Len(t, c, 9)
		}
	}
	assert.Equal(t, 1, ones)
}

// TestLabelComponents_Invalid ensures malformed label maps are rejected.
func TestLabelComponents_Invalid(t *testing.T) {
	_, err := gridgraph.LabelComponents(0, 3, nil, gridgraph.Grid4{})
	assert.ErrorIs(t, err, gridgraph.ErrInvalidImage)

	_, err = gridgraph.LabelComponents(2, 2, []int{0, 0, 0}, gridgraph.Grid4{})
	assert.ErrorIs(t, err, gridgraph.ErrInvalidImage)
}

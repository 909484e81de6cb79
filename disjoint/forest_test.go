package disjoint_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gbseg/disjoint"
)

// TestNew_Singletons verifies the initial state: every id is its own root
// with size 1 and internal difference 0.
func TestNew_Singletons(t *testing.T) {
	f := disjoint.New(5)
	assert.Equal(t, 5, f.Len())
	assert.Equal(t, 5, f.Count())
	for i := 0; i < 5; i++ {
		assert.Equal(t, i, f.Find(i))
		st, err := f.Stats(i)
		require.NoError(t, err)
		assert.Equal(t, disjoint.Stats{Size: 1, MaxInternalDiff: 0}, st)
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4}, f.Roots())

	empty := disjoint.New(-3)
	assert.Zero(t, empty.Len())
	assert.Empty(t, empty.Roots())
}

// TestUnion_SurvivorRule checks size-weighted survival and the
// smaller-id tie break.
func TestUnion_SurvivorRule(t *testing.T) {
	f := disjoint.New(6)

	// Equal sizes: the smaller id survives regardless of argument order.
	root, err := f.Union(4, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, root)

	// {1,4} (size 2) absorbs 0 (size 1) even though 0 is smaller.
	root, err = f.Union(0, 4, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, root)

	st, err := f.Stats(0)
	require.NoError(t, err)
	assert.Equal(t, 3, st.Size)
	assert.Equal(t, 2.0, st.MaxInternalDiff)
	assert.Equal(t, 4, f.Count())
	assert.Equal(t, []int{1, 2, 3, 5}, f.Roots())
	assert.False(t, f.IsRoot(0))
	assert.True(t, f.IsRoot(1))
}

// TestUnion_InvariantViolations ensures contract breaches are reported and
// leave the forest untouched.
func TestUnion_InvariantViolations(t *testing.T) {
	f := disjoint.New(4)
	_, err := f.Union(0, 1, 5)
	require.NoError(t, err)

	cases := []struct {
		name   string
		a, b   int
		weight float64
		err    error
	}{
		{"SameRegion", 0, 1, 9, disjoint.ErrInvariantViolation},
		{"SelfUnion", 2, 2, 9, disjoint.ErrInvariantViolation},
		{"NegativeWeight", 2, 3, -1, disjoint.ErrInvariantViolation},
		{"NaNWeight", 2, 3, math.NaN(), disjoint.ErrInvariantViolation},
		{"WeightRegression", 0, 2, 4, disjoint.ErrInvariantViolation},
		{"OutOfRangeLow", -1, 2, 9, disjoint.ErrIDOutOfRange},
		{"OutOfRangeHigh", 1, 4, 9, disjoint.ErrIDOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			root, err := f.Union(tc.a, tc.b, tc.weight)
			assert.ErrorIs(t, err, tc.err)
			assert.Equal(t, -1, root)
			assert.Equal(t, 3, f.Count())
		})
	}
}

// TestFind_PathCompaction builds a deliberately deep chain through the
// size tie break and checks that one Find flattens it.
func TestFind_PathCompaction(t *testing.T) {
	f := disjoint.New(8)
	// Pairs, then pairs of pairs, then the two halves: roots 0, 0, 0.
	for _, p := range [][2]int{{0, 1}, {2, 3}, {4, 5}, {6, 7}} {
		_, err := f.Union(p[0], p[1], 1)
		require.NoError(t, err)
	}
	for _, p := range [][2]int{{0, 2}, {4, 6}} {
		_, err := f.Union(p[0], p[1], 2)
		require.NoError(t, err)
	}
	_, err := f.Union(0, 4, 3)
	require.NoError(t, err)

	for i := 0; i < 8; i++ {
		assert.Equal(t, 0, f.Find(i))
	}
	// Compaction leaves every element one hop from the root; repeated Find
	// calls are stable.
	for i := 0; i < 8; i++ {
		assert.Equal(t, f.Find(i), f.Find(i))
	}
	st, err := f.Stats(7)
	require.NoError(t, err)
	assert.Equal(t, disjoint.Stats{Size: 8, MaxInternalDiff: 3}, st)
}

// TestStats_OutOfRange checks id validation on Stats.
func TestStats_OutOfRange(t *testing.T) {
	f := disjoint.New(2)
	_, err := f.Stats(2)
	assert.ErrorIs(t, err, disjoint.ErrIDOutOfRange)
}

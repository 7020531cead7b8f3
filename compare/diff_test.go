package compare_test

import (
	"testing"

	"github.com/katalvlaran/seqcomb/compare"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMissingIndex_Middle verifies the canonical case: the shorter sequence
// lacks one element from the middle of the longer one.
func TestMissingIndex_Middle(t *testing.T) {
	i, err := compare.MissingIndex([]int{1, 2, 4}, []int{1, 2, 3, 4})
	require.NoError(t, err, "single middle gap must be accepted")
	assert.Equal(t, 2, i, "element 3 is missing at index 2 of the longer sequence")
}

// TestMissingIndex_Leading verifies a gap at index 0 is reported as 0,
// not confused with "no difference".
func TestMissingIndex_Leading(t *testing.T) {
	i, err := compare.MissingIndex([]int{2, 3}, []int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 0, i, "leading extra element lives at index 0")
}

// TestMissingIndex_Trailing verifies a clean parallel scan resolves to the
// trailing element of the longer sequence.
func TestMissingIndex_Trailing(t *testing.T) {
	i, err := compare.MissingIndex([]int{1, 2, 3}, []int{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, 3, i, "trailing extra element lives at index len(shorter)")
}

// TestMissingIndex_EmptyShorter covers the degenerate one-element case.
func TestMissingIndex_EmptyShorter(t *testing.T) {
	i, err := compare.MissingIndex([]string{}, []string{"only"})
	require.NoError(t, err)
	assert.Equal(t, 0, i)
}

// TestMissingIndex_LengthMismatch ensures any length delta other than one
// is rejected before scanning.
func TestMissingIndex_LengthMismatch(t *testing.T) {
	_, err := compare.MissingIndex([]int{1, 2}, []int{1, 2, 3, 4})
	assert.ErrorIs(t, err, compare.ErrLengthMismatch, "delta of two must error")

	_, err = compare.MissingIndex([]int{1, 2, 3}, []int{1, 2, 3})
	assert.ErrorIs(t, err, compare.ErrLengthMismatch, "equal lengths must error")
}

// TestMissingIndex_MultipleDifferences ensures a second divergence point is
// a contract violation, whether it shows up at the skip or later.
func TestMissingIndex_MultipleDifferences(t *testing.T) {
	// Divergence directly after the skipped element.
	_, err := compare.MissingIndex([]int{1, 5, 6}, []int{1, 2, 3, 4})
	assert.ErrorIs(t, err, compare.ErrMultipleDifferences)

	// Divergence later in the tail.
	_, err = compare.MissingIndex([]int{1, 3, 9}, []int{1, 2, 3, 4})
	assert.ErrorIs(t, err, compare.ErrMultipleDifferences)
}

// TestExtraIndex_MirrorsMissingIndex verifies the longer-side phrasing
// returns the same index as the shorter-side one.
func TestExtraIndex_MirrorsMissingIndex(t *testing.T) {
	longer := []string{"a", "b", "x", "c"}
	shorter := []string{"a", "b", "c"}

	got, err := compare.ExtraIndex(longer, shorter)
	require.NoError(t, err)
	assert.Equal(t, 2, got, "the extra element x lives at index 2")

	mirror, err := compare.MissingIndex(shorter, longer)
	require.NoError(t, err)
	assert.Equal(t, got, mirror, "both phrasings must agree")
}

// TestSwappedIndex_Single verifies the single-mismatch position is found.
func TestSwappedIndex_Single(t *testing.T) {
	i, err := compare.SwappedIndex([]int{1, 2, 3}, []int{1, 2, 4})
	require.NoError(t, err)
	assert.Equal(t, 2, i, "sequences disagree only at index 2")
}

// TestSwappedIndex_Identical ensures identical sequences are a state error,
// never a valid "index 0" answer.
func TestSwappedIndex_Identical(t *testing.T) {
	_, err := compare.SwappedIndex([]int{7, 8, 9}, []int{7, 8, 9})
	assert.ErrorIs(t, err, compare.ErrNoDifference)
}

// TestSwappedIndex_TooManyDifferences ensures a second mismatch aborts.
func TestSwappedIndex_TooManyDifferences(t *testing.T) {
	_, err := compare.SwappedIndex([]int{1, 2, 3}, []int{9, 2, 4})
	assert.ErrorIs(t, err, compare.ErrMultipleDifferences)
}

// TestSwappedIndex_LengthMismatch ensures unequal lengths are rejected.
func TestSwappedIndex_LengthMismatch(t *testing.T) {
	_, err := compare.SwappedIndex([]int{1, 2, 3}, []int{1, 2})
	assert.ErrorIs(t, err, compare.ErrLengthMismatch)
}

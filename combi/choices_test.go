package combi_test

import (
	"testing"

	"github.com/katalvlaran/seqcomb/combi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestChoose_Lexicographic pins size-k generation order and content.
func TestChoose_Lexicographic(t *testing.T) {
	seq, err := combi.Choose([]int{1, 2, 3, 4}, 2)
	require.NoError(t, err)

	want := []string{"[1 2]", "[1 3]", "[1 4]", "[2 3]", "[2 4]", "[3 4]"}
	assert.Equal(t, want, drain(seq))
}

// TestChoose_Bounds covers k == 0, k == n and out-of-range sizes.
func TestChoose_Bounds(t *testing.T) {
	seq, err := combi.Choose([]int{1, 2}, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"[]"}, drain(seq), "choosing nothing yields the empty pick")

	seq, err = combi.Choose([]int{1, 2}, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"[1 2]"}, drain(seq), "choosing everything yields one pick")

	_, err = combi.Choose([]int{1, 2}, 3)
	assert.ErrorIs(t, err, combi.ErrIndexOutOfRange)

	_, err = combi.Choose([]int{1, 2}, -1)
	assert.ErrorIs(t, err, combi.ErrIndexOutOfRange)
}

// TestAllChoices_PowerSet verifies size ordering, count and endpoints of
// the power-set enumeration.
func TestAllChoices_PowerSet(t *testing.T) {
	got := drain(combi.AllChoices([]int{1, 2, 3}))

	want := []string{
		"[]",
		"[1]", "[2]", "[3]",
		"[1 2]", "[1 3]", "[2 3]",
		"[1 2 3]",
	}
	assert.Equal(t, want, got, "sizes 0..n in increasing order, lexicographic within a size")
}

// TestAllChoices_Empty yields exactly the empty subset.
func TestAllChoices_Empty(t *testing.T) {
	got := drain(combi.AllChoices([]int{}))
	assert.Equal(t, []string{"[]"}, got)
}

// TestAllChoices_EarlyStop ensures breaking out does not drain 2ⁿ subsets.
func TestAllChoices_EarlyStop(t *testing.T) {
	n := 0
	for range combi.AllChoices(make([]int, 20)) {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}

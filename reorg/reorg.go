package reorg

import (
	"errors"
	"fmt"
)

var (
	// ErrRangeInvalid indicates start/end violate 0 <= start <= end <= len.
	ErrRangeInvalid = errors.New("reorg: invalid range")

	// ErrIndexOutOfRange indicates a change entry falls outside the
	// replaced range's local index domain [0, end-start).
	ErrIndexOutOfRange = errors.New("reorg: change index out of range")
)

// Replace returns a new sequence in which the sub-range [start, end) of s is
// replaced by one element per entry of change: entry c contributes
// s[start+c], always evaluated against the original contents. Entries may
// repeat or be omitted, so the rebuilt range's length is len(change) and the
// result may grow or shrink relative to s. The input is never mutated.
//
// Contract (validated before anything is built):
//   - 0 <= start <= end <= len(s), else ErrRangeInvalid;
//   - every c in change satisfies 0 <= c < end-start, else ErrIndexOutOfRange.
//
// Complexity: O(len(s) + len(change)) time and memory.
func Replace[T any](s []T, start, end int, change []int) ([]T, error) {
	if start < 0 || start > end || end > len(s) {
		return nil, fmt.Errorf("%w: [%d, %d) with length %d", ErrRangeInvalid, start, end, len(s))
	}
	width := end - start
	for _, c := range change {
		if c < 0 || c >= width {
			return nil, fmt.Errorf("%w: %d with range width %d", ErrIndexOutOfRange, c, width)
		}
	}

	out := make([]T, 0, len(s)-width+len(change))
	out = append(out, s[:start]...)
	for _, c := range change {
		out = append(out, s[start+c])
	}
	out = append(out, s[end:]...)

	return out, nil
}

// PartitionInOrder greedily groups adjacent elements of s: the open
// partition absorbs each element for which pred returns true, and a new
// partition starts whenever it returns false. pred receives the previous
// element, the current one, the current element's index, and a read-only
// view of the partition built so far.
//
// Every partition is non-empty, concatenating them in order reproduces s
// exactly, and each is an independent copy with no aliasing into s.
// Empty input yields an empty partition list.
//
// Complexity: O(n) time and memory, plus whatever pred costs.
func PartitionInOrder[T any](s []T, pred func(prev, cur T, index int, part []T) bool) [][]T {
	if len(s) == 0 {
		return [][]T{}
	}

	parts := make([][]T, 0, 1)
	open := []T{s[0]}
	for i := 1; i < len(s); i++ {
		if pred(s[i-1], s[i], i, open) {
			open = append(open, s[i])

			continue
		}
		parts = append(parts, open)
		open = []T{s[i]}
	}

	return append(parts, open)
}

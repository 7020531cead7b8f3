package seq

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange indicates a position falls outside [0, len).
var ErrIndexOutOfRange = errors.New("seq: index out of range")

// IsSingle reports whether s holds exactly one element.
func IsSingle[T any](s []T) bool {
	return len(s) == 1
}

// Count returns the number of occurrences of v in s.
func Count[T comparable](s []T, v T) int {
	n := 0
	for _, e := range s {
		if e == v {
			n++
		}
	}

	return n
}

// CountWhere returns the number of elements satisfying pred.
func CountWhere[T any](s []T, pred func(T) bool) int {
	n := 0
	for _, e := range s {
		if pred(e) {
			n++
		}
	}

	return n
}

// HasDuplicates reports whether any element occurs more than once in s.
//
// Complexity: O(n) time, O(n) memory.
func HasDuplicates[T comparable](s []T) bool {
	seen := make(map[T]struct{}, len(s))
	for _, e := range s {
		if _, dup := seen[e]; dup {
			return true
		}
		seen[e] = struct{}{}
	}

	return false
}

// IndicesOf returns, in ascending order, every index whose element equals v.
// No match yields an empty, non-nil slice.
func IndicesOf[T comparable](s []T, v T) []int {
	return IndicesWhere(s, func(e T) bool { return e == v })
}

// IndicesWhere returns, in ascending order, every index whose element
// satisfies pred. No match yields an empty, non-nil slice.
func IndicesWhere[T any](s []T, pred func(T) bool) []int {
	out := make([]int, 0)
	for i, e := range s {
		if pred(e) {
			out = append(out, i)
		}
	}

	return out
}

// Swap exchanges the elements at positions i and j in place.
//
// Contract: both positions in [0, len(s)), else ErrIndexOutOfRange and s is
// untouched.
func Swap[T any](s []T, i, j int) error {
	if i < 0 || i >= len(s) || j < 0 || j >= len(s) {
		return fmt.Errorf("%w: swap(%d, %d) with length %d", ErrIndexOutOfRange, i, j, len(s))
	}
	s[i], s[j] = s[j], s[i]

	return nil
}

// UpdateAll replaces every element of s with fn(element), in place.
func UpdateAll[T any](s []T, fn func(T) T) {
	for i := range s {
		s[i] = fn(s[i])
	}
}

// InsertBetween returns a copy of s with sep inserted between each adjacent
// pair. The iteration count is snapshotted from the input's length up
// front, so the growing output never feeds back into the loop. Sequences
// shorter than two elements come back as plain copies.
//
// Complexity: O(n) time and memory.
func InsertBetween[T any](s []T, sep T) []T {
	n := len(s) // snapshot: the loop bound must not track the growing output
	if n < 2 {
		out := make([]T, n)
		copy(out, s)

		return out
	}

	out := make([]T, 0, 2*n-1)
	out = append(out, s[0])
	for i := 1; i < n; i++ {
		out = append(out, sep, s[i])
	}

	return out
}

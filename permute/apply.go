package permute

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateIndex indicates an index occurs more than once where
	// pairwise-distinct indices are required.
	ErrDuplicateIndex = errors.New("permute: duplicate index")

	// ErrIndexOutOfRange indicates an index falls outside [0, len).
	ErrIndexOutOfRange = errors.New("permute: index out of range")

	// ErrOrderLength indicates the order passed to WithOrder does not have
	// exactly one entry per element of the sequence.
	ErrOrderLength = errors.New("permute: order length must equal sequence length")

	// ErrLengthMismatch indicates the two sequences differ in length where
	// equal lengths are required.
	ErrLengthMismatch = errors.New("permute: sequences must have equal length")

	// ErrNoDifference indicates the sequences are identical where at least
	// one positional mismatch was required.
	ErrNoDifference = errors.New("permute: no difference between sequences")
)

// Cycle relocates elements of s along the index cycle described by indices:
// the value at indices[k] moves to indices[k+1], and the value at the last
// index wraps around to indices[0]. Positions not named in indices are left
// untouched. Zero or one index is a no-op.
//
// Contract (validated before any mutation):
//   - every index in [0, len(s)), else ErrIndexOutOfRange;
//   - no index twice, else ErrDuplicateIndex.
//
// Complexity: O(len(indices)) time and memory.
func Cycle[T any](s []T, indices []int) error {
	if err := validateCycle(len(s), indices); err != nil {
		return err
	}
	if len(indices) < 2 {
		return nil
	}

	carry := s[indices[len(indices)-1]]
	for k := len(indices) - 1; k > 0; k-- {
		s[indices[k]] = s[indices[k-1]]
	}
	s[indices[0]] = carry

	return nil
}

// validateCycle checks range and uniqueness of a partial index cycle.
func validateCycle(n int, indices []int) error {
	seen := make(map[int]struct{}, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= n {
			return fmt.Errorf("%w: %d with length %d", ErrIndexOutOfRange, idx, n)
		}
		if _, dup := seen[idx]; dup {
			return fmt.Errorf("%w: %d", ErrDuplicateIndex, idx)
		}
		seen[idx] = struct{}{}
	}

	return nil
}

// WithOrder returns a new sequence in which position i holds s[order[i]].
// The input is never mutated.
//
// Contract (validated before allocation):
//   - len(order) == len(s), else ErrOrderLength;
//   - every entry in [0, len(s)), else ErrIndexOutOfRange;
//   - every index used exactly once, else ErrDuplicateIndex.
//
// For any valid order, WithOrder is a bijection: applying the inverse order
// to the result restores the original sequence.
//
// Complexity: O(n) time and memory.
func WithOrder[T any](s []T, order []int) ([]T, error) {
	if len(order) != len(s) {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrOrderLength, len(order), len(s))
	}
	if err := validateCycle(len(s), order); err != nil {
		return nil, err
	}

	out := make([]T, len(s))
	for i, src := range order {
		out[i] = s[src]
	}

	return out, nil
}

// Inverse returns the permutation that undoes order: if order maps input
// position order[i] to output position i, the result maps it back.
//
// Contract: order must be a bijection on [0, len(order)) — same sentinels
// as WithOrder.
//
// Complexity: O(n).
func Inverse(order []int) ([]int, error) {
	if err := validateCycle(len(order), order); err != nil {
		return nil, err
	}

	inv := make([]int, len(order))
	for i, src := range order {
		inv[src] = i
	}

	return inv, nil
}

// Factorial returns n!, the size of the full permutation space of n
// elements. For n <= 1 it returns 1. Factorials overflow 64-bit integers
// past n = 20; bounding n is the caller's concern.
func Factorial(n int) int {
	result := 1
	for i := 2; i <= n; i++ {
		result *= i
	}

	return result
}

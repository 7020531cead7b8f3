package combi

import (
	"errors"
	"fmt"
	"iter"
)

var (
	// ErrEmptyRow indicates a source row has no candidates to pick from.
	ErrEmptyRow = errors.New("combi: source row must not be empty")

	// ErrIndexOutOfRange indicates a flat index or combination size falls
	// outside its valid range.
	ErrIndexOutOfRange = errors.New("combi: index out of range")

	// ErrLengthMismatch indicates a tuple's arity differs from the number
	// of source rows.
	ErrLengthMismatch = errors.New("combi: tuple length must equal row count")

	// ErrValueNotFound indicates a tuple element is absent from its row.
	ErrValueNotFound = errors.New("combi: value not found in its row")
)

// Total returns the number of tuples the rows spread into, ∏Lᵢ.
// The empty row list has exactly one tuple: the empty one.
//
// Errors: ErrEmptyRow if any row has no candidates.
func Total[T any](rows [][]T) (int, error) {
	total := 1
	for r, row := range rows {
		if len(row) == 0 {
			return 0, fmt.Errorf("%w: row %d", ErrEmptyRow, r)
		}
		total *= len(row)
	}

	return total, nil
}

// Combinations spreads the rows and combines them: a lazy, restartable
// enumeration of every tuple formed by picking exactly one element from each
// row, preserving row order positionally. Tuples appear in odometer order —
// row 0 varies slowest, the last row fastest — so the k-th yielded tuple is
// exactly AtIndex(rows, k). Each yielded tuple is an independent copy.
//
// Row emptiness is validated before the enumeration is returned; mutating
// rows while ranging is undefined behavior.
//
// Complexity: O(∏Lᵢ·N) total, O(N) memory beyond the yielded copies.
func Combinations[T any](rows [][]T) (iter.Seq[[]T], error) {
	if _, err := Total(rows); err != nil {
		return nil, err
	}

	seq := func(yield func([]T) bool) {
		if len(rows) == 0 {
			yield([]T{})

			return
		}

		// Odometer over row cursors, most-significant row first.
		cursors := make([]int, len(rows))
		for {
			tuple := make([]T, len(rows))
			for r, c := range cursors {
				tuple[r] = rows[r][c]
			}
			if !yield(tuple) {
				return
			}

			// Advance the fastest (last) row, carrying leftward.
			r := len(rows) - 1
			for ; r >= 0; r-- {
				cursors[r]++
				if cursors[r] < len(rows[r]) {
					break
				}
				cursors[r] = 0
			}
			if r < 0 {
				return // odometer wrapped: space exhausted
			}
		}
	}

	return seq, nil
}

// AtIndex decodes a flat index directly into its tuple without enumerating
// the product: a mixed-radix decomposition with the same digit order as
// Combinations (row 0 most significant).
//
// Contract: 0 <= index < ∏Lᵢ, else ErrIndexOutOfRange; ErrEmptyRow as in
// Total.
//
// Complexity: O(N) time and memory.
func AtIndex[T any](rows [][]T, index int) ([]T, error) {
	total, err := Total(rows)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= total {
		return nil, fmt.Errorf("%w: %d with %d combinations", ErrIndexOutOfRange, index, total)
	}

	tuple := make([]T, len(rows))
	rem := index
	for r := len(rows) - 1; r >= 0; r-- {
		tuple[r] = rows[r][rem%len(rows[r])]
		rem /= len(rows[r])
	}

	return tuple, nil
}

// IndexOf encodes a tuple back into its flat index, the inverse of AtIndex.
// Each tuple element is resolved to a row position by equality; duplicates
// within a row resolve to the first match, consistent with the row's own
// lookup semantics.
//
// Contract: len(tuple) == len(rows), else ErrLengthMismatch; every element
// present in its row, else ErrValueNotFound; ErrEmptyRow as in Total.
//
// Round trip: IndexOf(rows, t) == i for t, err := AtIndex(rows, i), and the
// reverse holds for every tuple Combinations yields.
//
// Complexity: O(Σ Lᵢ) time, O(1) extra memory.
func IndexOf[T comparable](rows [][]T, tuple []T) (int, error) {
	if _, err := Total(rows); err != nil {
		return 0, err
	}
	if len(tuple) != len(rows) {
		return 0, fmt.Errorf("%w: got %d, want %d", ErrLengthMismatch, len(tuple), len(rows))
	}

	index := 0
	for r, row := range rows {
		pos := -1
		for c, v := range row {
			if v == tuple[r] {
				pos = c

				break
			}
		}
		if pos < 0 {
			return 0, fmt.Errorf("%w: row %d", ErrValueNotFound, r)
		}
		index = index*len(row) + pos
	}

	return index, nil
}

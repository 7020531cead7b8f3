package combi

import (
	"fmt"
	"iter"
)

// Choose returns a lazy, restartable enumeration of every size-k
// combination of s, in lexicographic order of source indices. Elements keep
// their relative order; each yielded combination is an independent copy.
//
// Contract: 0 <= k <= len(s), else ErrIndexOutOfRange.
//
// Complexity: O(C(n,k)·k) total, O(k) memory beyond the yielded copies.
func Choose[T any](s []T, k int) (iter.Seq[[]T], error) {
	if k < 0 || k > len(s) {
		return nil, fmt.Errorf("%w: size %d of %d elements", ErrIndexOutOfRange, k, len(s))
	}

	seq := func(yield func([]T) bool) {
		if k == 0 {
			yield([]T{})

			return
		}

		// idx holds the k chosen source positions, strictly increasing.
		idx := make([]int, k)
		for i := range idx {
			idx[i] = i
		}
		for {
			pick := make([]T, k)
			for i, p := range idx {
				pick[i] = s[p]
			}
			if !yield(pick) {
				return
			}

			// Advance the rightmost position that still has headroom.
			i := k - 1
			for ; i >= 0; i-- {
				if idx[i] < len(s)-k+i {
					break
				}
			}
			if i < 0 {
				return // last combination emitted
			}
			idx[i]++
			for j := i + 1; j < k; j++ {
				idx[j] = idx[j-1] + 1
			}
		}
	}

	return seq, nil
}

// AllChoices returns the power set of s as a lazy enumeration: every subset
// of every size, sizes 0..len(s) concatenated in increasing size order,
// lexicographic within each size. 2ⁿ subsets total, the empty one first and
// the full sequence last.
//
// Complexity: O(2ⁿ·n) total.
func AllChoices[T any](s []T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for k := 0; k <= len(s); k++ {
			perSize, _ := Choose(s, k) // k is always in range here
			for pick := range perSize {
				if !yield(pick) {
					return
				}
			}
		}
	}
}

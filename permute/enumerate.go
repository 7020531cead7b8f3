package permute

import (
	"iter"
	"slices"
)

// All returns a lazy, restartable enumeration of every ordering of s.
// It walks the n! orderings with Heap's algorithm; the enumeration order is
// implementation-defined, but it is exhaustive and, for distinct elements,
// duplicate-free. Each yielded slice is an independent copy, safe to keep or
// modify. Ranging over the result a second time restarts the enumeration.
//
// The empty sequence has exactly one ordering: itself.
//
// Mutating s while ranging is undefined behavior.
//
// Complexity: O(n!·n) total, O(n) memory beyond the yielded copies.
func All[T any](s []T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		work := slices.Clone(s)
		heapGenerate(work, len(work), yield)
	}
}

// heapGenerate emits every ordering of work[:k+...] via Heap's algorithm,
// stopping early when yield returns false. Reports whether to continue.
func heapGenerate[T any](work []T, k int, yield func([]T) bool) bool {
	if k <= 1 {
		return yield(slices.Clone(work))
	}
	if !heapGenerate(work, k-1, yield) {
		return false
	}
	for i := 0; i < k-1; i++ {
		// Swap choice depends on the parity of k.
		if k%2 == 0 {
			work[i], work[k-1] = work[k-1], work[i]
		} else {
			work[0], work[k-1] = work[k-1], work[0]
		}
		if !heapGenerate(work, k-1, yield) {
			return false
		}
	}

	return true
}

// Others returns All(s) minus the single ordering that is elementwise equal
// to s itself. With distinct elements that leaves n!-1 orderings; with
// duplicated elements every ordering equal to s is filtered.
//
// Complexity: as All, plus an O(n) equality check per ordering.
func Others[T comparable](s []T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for p := range All(s) {
			if slices.Equal(p, s) {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}
}

// FirstDifference returns the first index at which b disagrees with a.
// b is assumed to be a permutation of a (not validated); equal lengths are
// validated.
//
// Errors: ErrLengthMismatch on unequal lengths; ErrNoDifference when the
// sequences agree everywhere.
//
// Complexity: O(n).
func FirstDifference[T comparable](a, b []T) (int, error) {
	if len(a) != len(b) {
		return 0, ErrLengthMismatch
	}
	for i := range a {
		if a[i] != b[i] {
			return i, nil
		}
	}

	return 0, ErrNoDifference
}

// Distance returns the number of positions at which b disagrees with a.
// Identical sequences have distance zero; a transposition of two distinct
// elements has distance two.
//
// Errors: ErrLengthMismatch on unequal lengths.
//
// Complexity: O(n).
func Distance[T comparable](a, b []T) (int, error) {
	if len(a) != len(b) {
		return 0, ErrLengthMismatch
	}

	d := 0
	for i := range a {
		if a[i] != b[i] {
			d++
		}
	}

	return d, nil
}

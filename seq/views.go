package seq

import (
	"fmt"
	"iter"
)

// Mapped is a lazily-evaluated, index-addressable view of a source slice
// under a transform. Nothing is precomputed: every access applies the
// transform to the source element on demand. The view back-references the
// source without owning it — it stays valid as long as the source does and
// observes later writes to it.
type Mapped[T, U any] struct {
	src []T
	fn  func(T) U
}

// NewMapped builds a lazy view of src under fn.
func NewMapped[T, U any](src []T, fn func(T) U) *Mapped[T, U] {
	return &Mapped[T, U]{src: src, fn: fn}
}

// Len returns the view's length, which tracks the source slice.
func (m *Mapped[T, U]) Len() int {
	return len(m.src)
}

// ElementAt computes the transformed element at position i.
//
// Contract: i in [0, Len()), else ErrIndexOutOfRange.
//
// Complexity: O(1) plus one transform application.
func (m *Mapped[T, U]) ElementAt(i int) (U, error) {
	if i < 0 || i >= len(m.src) {
		var zero U

		return zero, fmt.Errorf("%w: %d with length %d", ErrIndexOutOfRange, i, len(m.src))
	}

	return m.fn(m.src[i]), nil
}

// All returns a restartable enumeration of the transformed elements in
// source order. Mutating the source while ranging is undefined behavior.
func (m *Mapped[T, U]) All() iter.Seq[U] {
	return func(yield func(U) bool) {
		for _, e := range m.src {
			if !yield(m.fn(e)) {
				return
			}
		}
	}
}

// Pair is one aligned element pair of a Zipped view.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Zipped is a lazily-evaluated element-wise pair view over two source
// slices. Its length is the shorter source's length; the longer source's
// tail is never touched. Like Mapped, it back-references its sources
// without owning them.
type Zipped[A, B any] struct {
	a []A
	b []B
}

// NewZipped builds a lazy pair view over a and b.
func NewZipped[A, B any](a []A, b []B) *Zipped[A, B] {
	return &Zipped[A, B]{a: a, b: b}
}

// Len returns the number of aligned pairs, min(len(a), len(b)).
func (z *Zipped[A, B]) Len() int {
	if len(z.a) < len(z.b) {
		return len(z.a)
	}

	return len(z.b)
}

// ElementAt returns the pair at position i.
//
// Contract: i in [0, Len()), else ErrIndexOutOfRange.
func (z *Zipped[A, B]) ElementAt(i int) (Pair[A, B], error) {
	if i < 0 || i >= z.Len() {
		return Pair[A, B]{}, fmt.Errorf("%w: %d with length %d", ErrIndexOutOfRange, i, z.Len())
	}

	return Pair[A, B]{First: z.a[i], Second: z.b[i]}, nil
}

// All returns a restartable enumeration of the aligned pairs in order.
// Mutating either source while ranging is undefined behavior.
func (z *Zipped[A, B]) All() iter.Seq[Pair[A, B]] {
	return func(yield func(Pair[A, B]) bool) {
		n := z.Len()
		for i := 0; i < n; i++ {
			if !yield(Pair[A, B]{First: z.a[i], Second: z.b[i]}) {
				return
			}
		}
	}
}

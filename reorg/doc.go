// Package reorg rewrites bounded sub-ranges of a sequence from local index
// maps and partitions sequences by adjacency.
//
// 🚀 What does reorg do?
//
//	  • Replace — rebuild the sub-range [start, end) from a change array of
//	    range-local indices: each entry c contributes original[start+c].
//	    All lookups hit the original contents, never intermediate states,
//	    and the new range may be longer or shorter than the old one.
//	  • PartitionInOrder — greedily group adjacent elements: a caller
//	    predicate decides whether the current element continues the open
//	    partition or starts a new one.
//
// ✨ Key guarantees:
//   - range and change-array contracts are validated before anything is
//     built — no partial results
//   - the input sequence is never mutated; partitions are independent
//     copies with no aliasing
//   - PartitionInOrder drops nothing, duplicates nothing, and keeps
//     concatenation order
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/seqcomb/reorg"
//
//	s := []int{0, 1, 2, 3, 4, 5}
//	out, err := reorg.Replace(s, 1, 4, []int{2, 0, 1, 0})
//	// out == [0 3 1 2 1 4 5]: the range [1 2 3] rebuilt as [3 1 2 1]
//
// Errors:
//   - ErrRangeInvalid    — start/end violate 0 <= start <= end <= len.
//   - ErrIndexOutOfRange — a change entry falls outside [0, end-start).
//
// See examples in example_test.go.
package reorg

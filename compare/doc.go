// Package compare detects the single structural difference between two
// near-equal ordered sequences and answers ordered-containment questions.
//
// 🚀 What does compare do?
//
//	Given two sequences that are supposed to agree except for one element,
//	it pinpoints that element:
//	  • MissingIndex / ExtraIndex — lengths differ by exactly one; find the
//	    index (in the longer sequence) of the element the shorter one lacks
//	  • SwappedIndex — equal lengths; find the single position where the
//	    two sequences disagree
//	And it answers ordered-matching questions:
//	  • ContainsInOrder  — uninterrupted in-order run containment
//	  • ContainsSequence — contiguous sub-list containment
//	  • StartsWith / EndsWith — prefix and suffix agreement
//
// ✨ Key guarantees:
//   - single pass, independent cursors — O(n) time, O(1) memory
//   - a second divergence is never tolerated silently: ErrMultipleDifferences
//   - "no difference where one was required" is an error, not index 0
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/seqcomb/compare"
//
//	i, err := compare.MissingIndex([]int{1, 2, 4}, []int{1, 2, 3, 4})
//	// i == 2: the longer sequence's element 3 is absent from the shorter.
//
//	ok := compare.ContainsInOrder([]int{1, 2, 3, 4, 2}, []int{2, 3, 4})
//	// ok == true: 2, 3, 4 form an uninterrupted run.
//
// Errors:
//   - ErrLengthMismatch      — length precondition violated.
//   - ErrMultipleDifferences — a second divergence point was found.
//   - ErrNoDifference        — the sequences are identical where exactly one
//     difference was required.
//
// See examples in example_test.go.
package compare

// Package permute applies, enumerates, and measures permutations of ordered
// sequences.
//
// 🚀 What does permute do?
//
//	  • Cycle     — in-place cyclic relocation along an explicit index cycle
//	  • WithOrder — a fresh sequence reordered by a full index bijection
//	  • All       — lazy, restartable enumeration of all n! orderings
//	  • Others    — All minus the ordering equal to the input
//	  • FirstDifference / Distance — positional mismatch metrics between a
//	    sequence and one of its permutations
//
// ✨ Key guarantees:
//   - every index contract (uniqueness, range, arity) is validated before a
//     single element moves — no partially permuted sequences
//   - enumeration is pull-based iter.Seq: nothing is materialized, ranging a
//     second time restarts from scratch, and every yielded slice is an
//     independent copy
//   - exhaustive and duplicate-free enumeration for distinct elements
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/seqcomb/permute"
//
//	words := []string{"I", "would", "have", "known", "not", "that"}
//	_ = permute.Cycle(words, []int{2, 3, 4})
//	// words is now [I would not have known that]
//
//	for p := range permute.All([]int{1, 2, 3}) {
//	    fmt.Println(p) // six orderings, each its own slice
//	}
//
// ⚠️ n! grows brutally fast: 13! already exceeds 6·10⁹. Bounding the input
// size of All/Others is the caller's responsibility. Mutating the source
// while ranging an enumeration is undefined behavior.
//
// Errors:
//   - ErrDuplicateIndex  — an index appears twice where uniqueness is required.
//   - ErrIndexOutOfRange — an index falls outside [0, len).
//   - ErrOrderLength     — WithOrder received an order of the wrong arity.
//   - ErrLengthMismatch  — metric operands differ in length.
//   - ErrNoDifference    — FirstDifference found identical sequences.
//
// See examples in example_test.go.
package permute

// Package combi enumerates cartesian products, maps product tuples to flat
// indices and back, and generates combinations and power sets.
//
// 🚀 What does combi do?
//
//	Given N non-empty "rows" (candidate lists), it spreads and combines:
//	  • Combinations — every tuple picking one element per row, lazily, in
//	    odometer order (row 0 varies slowest, the last row fastest)
//	  • AtIndex      — decode a flat index straight into its tuple without
//	    materializing the product (mixed-radix decomposition)
//	  • IndexOf      — the inverse: a tuple's flat index
//	  • Total        — the product size ∏Lᵢ
//	And over a single sequence:
//	  • Choose     — all size-k combinations, lexicographic by index
//	  • AllChoices — the power set, sizes 0..n in increasing size order
//
// ✨ Key guarantees:
//   - tuple ↔ flat index is a bijection on [0, ∏Lᵢ): decoding then encoding
//     (or the reverse) always round-trips
//   - enumeration is pull-based iter.Seq — restartable, nothing materialized,
//     every yielded tuple an independent copy
//   - empty rows are rejected up front, before any element is produced
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/seqcomb/combi"
//
//	rows := [][]int{{1, 2}, {3}, {4, 5, 6}}
//	tuples, err := combi.Combinations(rows)
//	// [1 3 4] [1 3 5] [1 3 6] [2 3 4] [2 3 5] [2 3 6]
//
//	tuple, err := combi.AtIndex(rows, 4)   // [2 3 5]
//	i, err := combi.IndexOf(rows, tuple)   // 4
//
// ⚠️ ∏Lᵢ and 2ⁿ grow fast; bounding row sizes is the caller's concern.
// Mutating rows while ranging an enumeration is undefined behavior.
//
// Errors:
//   - ErrEmptyRow        — a source row has no candidates.
//   - ErrIndexOutOfRange — a flat index or size k falls outside its range.
//   - ErrLengthMismatch  — a tuple's arity differs from the row count.
//   - ErrValueNotFound   — a tuple element is absent from its row.
//
// See examples in example_test.go.
package combi

// Package seq provides the ordered-sequence primitives the algebra packages
// build on: counting and duplicate predicates, index collection, in-place
// element moves, and lazy index-addressable views.
//
// Primitives:
//   - IsSingle / Count / CountWhere / HasDuplicates — existence & counting
//   - IndicesOf / IndicesWhere — every matching index, ascending
//   - Swap / UpdateAll — in-place mutation, validated before touching
//   - InsertBetween — a copy with a separator between each adjacent pair
//
// Lazy views:
//   - Mapped — a transform over a source slice, evaluated on demand, with
//     O(1) random access via ElementAt and a restartable All() enumeration
//   - Zipped — an element-wise pair view over two sources, length capped at
//     the shorter one
//
// Views hold a back-reference to their source and own nothing: they stay
// valid exactly as long as the source does, and they observe later writes
// to it. Mutating a source while ranging a view's enumeration is undefined
// behavior. In-place operations assume exclusive access for the duration
// of the call.
package seq

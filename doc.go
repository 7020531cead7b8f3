// Package seqcomb is your in-memory toolkit for positional and combinatorial
// sequence algebra — reordering, diffing, and enumerating ordered collections.
//
// 🚀 What is seqcomb?
//
//	A modern, generic, dependency-light library that brings together:
//		• Sequence diffing: single missing / extra / swapped element detection
//		• Ordered matching: subsequence, contiguous sub-list, prefix & suffix
//		• Permutations: cyclic relocation, explicit reorder, lazy n! enumeration
//		• Combinatorics: cartesian products with bidirectional index↔tuple
//		  mixed-radix mapping, combinations, power sets
//		• Reorganisation: sub-range rewrites from local index maps,
//		  adjacency-driven partitioning
//
// ✨ Why choose seqcomb?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid contracts – every precondition is a sentinel error, never a
//     silent no-op or a partial mutation
//   - Pure Go – generics + iter.Seq, no cgo, no hidden deps
//   - Lazy where it counts – n! and ∏Lᵢ enumerations are pull-based and
//     restartable
//
// Under the hood, everything is organized in small leaf packages:
//
//	compare/ — single-difference detection & ordered containment
//	permute/ — permutation application, enumeration & distance metrics
//	combi/   — cartesian "spread and combine", flat-index codec, power sets
//	reorg/   — bounded sub-range reorganisation & in-order partitioning
//	seq/     — ordered-sequence primitives & lazy views
//	mapx/    — map first/single/reverse lookups
//	textx/   — pattern matching & multi-delimiter splitting
//
// Quick ASCII example:
//
//	rows [[1 2] [3] [4 5 6]]
//	       │     │    │
//	       └──┬──┴────┘        flat index 4
//	  combi.Combinations  ⇄  combi.AtIndex / combi.IndexOf
//	       │
//	[1 3 4] [1 3 5] [1 3 6] [2 3 4] [2 3 5] [2 3 6]
//
// Every operation runs synchronously on the caller's goroutine; lazy
// enumerations must not observe concurrent mutation of their source.
// Dive into each package's doc.go for contracts, complexity and examples.
//
//	go get github.com/katalvlaran/seqcomb
package seqcomb

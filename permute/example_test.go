package permute_test

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/seqcomb/permute"
)

// ExampleCycle repairs a sentence whose words drifted along a cycle.
//
// Scenario:
//
//	Positions 2→3→4→2 were rotated; rotating them once more by the same
//	cycle puts every word back in place after three applications.
func ExampleCycle() {
	words := []string{"I", "would", "have", "known", "not", "that"}

	if err := permute.Cycle(words, []int{2, 3, 4}); err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(words)
	// Output:
	// [I would not have known that]
}

// ExampleWithOrder reorders a sequence by an explicit index bijection.
func ExampleWithOrder() {
	s := []string{"bronze", "silver", "gold"}

	podium, err := permute.WithOrder(s, []int{2, 1, 0})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(podium)
	// Output:
	// [gold silver bronze]
}

// ExampleAll enumerates every ordering lazily; sorting the fingerprints
// makes the implementation-defined order stable for display.
func ExampleAll() {
	var orderings []string
	for p := range permute.All([]int{1, 2, 3}) {
		orderings = append(orderings, fmt.Sprint(p))
	}
	sort.Strings(orderings)

	for _, o := range orderings {
		fmt.Println(o)
	}
	// Output:
	// [1 2 3]
	// [1 3 2]
	// [2 1 3]
	// [2 3 1]
	// [3 1 2]
	// [3 2 1]
}

// ExampleDistance measures how far a shuffle strayed from the original.
func ExampleDistance() {
	original := []rune{'a', 'b', 'c', 'd'}
	shuffled := []rune{'b', 'a', 'c', 'd'}

	d, err := permute.Distance(original, shuffled)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("disturbed positions:", d)
	// Output:
	// disturbed positions: 2
}

package reorg_test

import (
	"fmt"

	"github.com/katalvlaran/seqcomb/reorg"
)

// ExampleReplace rebuilds the middle of a sequence from a local index map:
// the range may grow, and every lookup reads the original contents.
func ExampleReplace() {
	s := []int{0, 1, 2, 3, 4, 5}

	out, err := reorg.Replace(s, 1, 4, []int{2, 0, 1, 0})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(out)
	// Output:
	// [0 3 1 2 1 4 5]
}

// ExamplePartitionInOrder splits a walk into its ascending stretches.
func ExamplePartitionInOrder() {
	altitude := []int{100, 120, 150, 90, 95, 60}

	climbs := reorg.PartitionInOrder(altitude, func(prev, cur int, _ int, _ []int) bool {
		return prev <= cur
	})
	for _, c := range climbs {
		fmt.Println(c)
	}
	// Output:
	// [100 120 150]
	// [90 95]
	// [60]
}

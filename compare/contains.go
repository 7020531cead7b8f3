package compare

// ContainsInOrder reports whether host contains the elements of subset as
// one uninterrupted in-order run. A single cursor into subset advances on
// each expected match and resets on any interruption; the interrupting
// element itself is not reconsidered. Reaching the end of subset anywhere
// signals success.
//
// Two deliberate divergences from the usual subsequence convention:
//   - an empty subset matches only an empty host, not every host;
//   - progress does not survive an interruption, so
//     ContainsInOrder([1,2,3,4,2], [1,3,4]) is false even though 1, 3, 4
//     appear in order with gaps.
//
// Complexity: O(len(host)) time, O(1) memory.
func ContainsInOrder[T comparable](host, subset []T) bool {
	if len(subset) == 0 {
		return len(host) == 0
	}

	next := 0 // cursor into subset
	for _, v := range host {
		if v != subset[next] {
			next = 0

			continue
		}
		next++
		if next == len(subset) {
			return true
		}
	}

	return false
}

// ContainsSequence reports whether needle occurs in host as a contiguous
// run. An empty needle is contained in every host.
//
// Complexity: O(len(host)·len(needle)) worst case.
func ContainsSequence[T comparable](host, needle []T) bool {
	if len(needle) == 0 {
		return true
	}
	for i := 0; i+len(needle) <= len(host); i++ {
		if StartsWith(host[i:], needle) {
			return true
		}
	}

	return false
}

// StartsWith reports whether s is at least as long as prefix and agrees with
// it elementwise over prefix's length.
//
// Complexity: O(len(prefix)).
func StartsWith[T comparable](s, prefix []T) bool {
	if len(s) < len(prefix) {
		return false
	}
	for i := range prefix {
		if s[i] != prefix[i] {
			return false
		}
	}

	return true
}

// EndsWith reports whether s is at least as long as suffix and agrees with
// it elementwise over suffix's length, aligned to the end of s.
//
// Complexity: O(len(suffix)).
func EndsWith[T comparable](s, suffix []T) bool {
	if len(s) < len(suffix) {
		return false
	}

	return StartsWith(s[len(s)-len(suffix):], suffix)
}

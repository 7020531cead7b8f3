package compare

import "errors"

var (
	// ErrLengthMismatch indicates the two sequences do not satisfy the
	// length relationship the operation requires.
	ErrLengthMismatch = errors.New("compare: sequence lengths violate the operation's precondition")

	// ErrMultipleDifferences indicates more than one divergence point was
	// found where exactly one was required.
	ErrMultipleDifferences = errors.New("compare: more than one difference between sequences")

	// ErrNoDifference indicates the sequences are identical where exactly
	// one difference was required.
	ErrNoDifference = errors.New("compare: no difference between sequences")
)

// MissingIndex reports the single index in longer whose element is absent
// from shorter. Apart from that one element the sequences must agree
// positionally once it is skipped.
//
// Contract:
//   - len(longer) == len(shorter)+1, else ErrLengthMismatch.
//   - exactly one divergence point, else ErrMultipleDifferences.
//
// A scan that finishes with no recorded mismatch means the extra element is
// the trailing one; len(shorter) is returned.
//
// Complexity: O(n) time, O(1) memory.
func MissingIndex[T comparable](shorter, longer []T) (int, error) {
	return singleGapIndex(longer, shorter)
}

// ExtraIndex reports the single index in s at which s carries an element the
// shorter sequence lacks. It is MissingIndex phrased from the longer side:
// s is the longer sequence, shorter the reference.
//
// Contract and complexity are identical to MissingIndex.
func ExtraIndex[T comparable](s, shorter []T) (int, error) {
	return singleGapIndex(s, shorter)
}

// singleGapIndex walks longer and shorter with independent cursors. On the
// first mismatch only the longer cursor advances and the index is recorded;
// any later mismatch is a contract violation.
func singleGapIndex[T comparable](longer, shorter []T) (int, error) {
	if len(longer) != len(shorter)+1 {
		return 0, ErrLengthMismatch
	}

	gap := -1
	i := 0 // cursor into longer
	for j := 0; j < len(shorter); i, j = i+1, j+1 {
		if longer[i] == shorter[j] {
			continue
		}
		if gap >= 0 {
			return 0, ErrMultipleDifferences
		}
		gap = i
		i++ // skip the extra element; re-check this j against the next i
		if longer[i] != shorter[j] {
			return 0, ErrMultipleDifferences
		}
	}
	if gap < 0 {
		// Clean parallel scan: the extra element trails the shorter sequence.
		gap = len(shorter)
	}

	return gap, nil
}

// SwappedIndex reports the single position at which two equal-length
// sequences disagree.
//
// Contract:
//   - len(a) == len(b), else ErrLengthMismatch.
//   - exactly one mismatch: zero → ErrNoDifference,
//     two or more → ErrMultipleDifferences.
//
// Complexity: O(n) time, O(1) memory.
func SwappedIndex[T comparable](a, b []T) (int, error) {
	if len(a) != len(b) {
		return 0, ErrLengthMismatch
	}

	at := -1
	for i := range a {
		if a[i] == b[i] {
			continue
		}
		if at >= 0 {
			return 0, ErrMultipleDifferences
		}
		at = i
	}
	if at < 0 {
		return 0, ErrNoDifference
	}

	return at, nil
}

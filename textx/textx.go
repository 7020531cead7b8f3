// Package textx provides pattern matching and multi-delimiter splitting for
// strings, on top of the standard regexp engine.
package textx

import (
	"errors"
	"regexp"
	"strings"
)

// ErrEmptySeparator indicates the separator set is empty or contains an
// empty separator.
var ErrEmptySeparator = errors.New("textx: separator must not be empty")

// MatchAll returns every non-overlapping match of the pattern in s, in
// order. A pattern matching nothing yields an empty, non-nil slice.
//
// Errors: pattern compilation errors are returned verbatim.
func MatchAll(s, pattern string) ([]string, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}

	out := re.FindAllString(s, -1)
	if out == nil {
		out = []string{}
	}

	return out, nil
}

// SplitByAll splits s at every occurrence of any separator. Longer
// separators are tried first at each position, so overlapping separators
// resolve deterministically. Adjacent separators produce empty fields,
// matching the standard strings.Split convention.
//
// Contract: at least one separator, none of them empty, else
// ErrEmptySeparator.
func SplitByAll(s string, seps []string) ([]string, error) {
	if len(seps) == 0 {
		return nil, ErrEmptySeparator
	}
	quoted := make([]string, len(seps))
	for i, sep := range seps {
		if sep == "" {
			return nil, ErrEmptySeparator
		}
		quoted[i] = regexp.QuoteMeta(sep)
	}
	// Longest-first alternation keeps "ab" from losing to "a".
	for i := 0; i < len(quoted); i++ {
		for j := i + 1; j < len(quoted); j++ {
			if len(quoted[j]) > len(quoted[i]) {
				quoted[i], quoted[j] = quoted[j], quoted[i]
			}
		}
	}
	re := regexp.MustCompile(strings.Join(quoted, "|"))

	return re.Split(s, -1), nil
}

// SplitFirst cuts s around the first occurrence of sep. Absent separators
// leave everything in before, with an empty after.
func SplitFirst(s, sep string) (before, after string) {
	before, after, _ = strings.Cut(s, sep)

	return before, after
}

// SplitLast cuts s around the last occurrence of sep. Absent separators
// leave everything in before, with an empty after.
func SplitLast(s, sep string) (before, after string) {
	i := strings.LastIndex(s, sep)
	if i < 0 {
		return s, ""
	}

	return s[:i], s[i+len(sep):]
}

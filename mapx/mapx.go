// Package mapx provides first/single entry access and reverse lookups over
// built-in maps. Reverse lookups resolve by value equality; where several
// keys share a value, "first" follows Go's (unspecified) map iteration
// order, so FirstKey and KeyOf are only deterministic for unique values.
package mapx

import "errors"

var (
	// ErrNotSingle indicates the map does not hold exactly one entry.
	ErrNotSingle = errors.New("mapx: map must hold exactly one entry")

	// ErrValueNotFound indicates no key maps to the requested value.
	ErrValueNotFound = errors.New("mapx: value not found")
)

// FirstKey returns some key of m and true, or the zero key and false when m
// is empty. With more than one entry the choice follows map iteration order
// and is not deterministic.
func FirstKey[K comparable, V any](m map[K]V) (K, bool) {
	for k := range m {
		return k, true
	}
	var zero K

	return zero, false
}

// SingleKey returns the key of a one-entry map.
//
// Errors: ErrNotSingle unless len(m) == 1.
func SingleKey[K comparable, V any](m map[K]V) (K, error) {
	if len(m) != 1 {
		var zero K

		return zero, ErrNotSingle
	}
	k, _ := FirstKey(m)

	return k, nil
}

// KeyOf reverse-looks-up v: it returns a key mapping to v, or
// ErrValueNotFound when no key does. With duplicated values the returned
// key follows map iteration order.
func KeyOf[K, V comparable](m map[K]V, v V) (K, error) {
	for k, mv := range m {
		if mv == v {
			return k, nil
		}
	}
	var zero K

	return zero, ErrValueNotFound
}

// KeysOf returns every key mapping to v, in unspecified order. No match
// yields an empty, non-nil slice.
func KeysOf[K, V comparable](m map[K]V, v V) []K {
	out := make([]K, 0)
	for k, mv := range m {
		if mv == v {
			out = append(out, k)
		}
	}

	return out
}

package transforms

import (
	"cmp"
	"maps"
	"slices"
)

// ── Rotation ─────────────────────────────────────────────────────────────────
// Both directions build a new slice from two contiguous halves. d is reduced
// modulo len(s), so any d (negative included) is valid; a negative d rotates
// the opposite way.

// RotateLeft returns s[d:] followed by s[:d].
func RotateLeft[T any](s []T, d int) []T {
	n := len(s)
	if n == 0 {
		return []T{}
	}
	d = ((d % n) + n) % n

	out := make([]T, 0, n)
	out = append(out, s[d:]...)
	return append(out, s[:d]...)
}

// RotateRight returns the last d elements of s followed by the rest.
func RotateRight[T any](s []T, d int) []T {
	return RotateLeft(s, -d)
}

// ── Set-like operations ──────────────────────────────────────────────────────

// Common returns the values present in both a and b, each once, in the order
// they first appear in a.
func Common[T comparable](a, b []T) []T {
	inB := make(map[T]struct{}, len(b))
	for _, v := range b {
		inB[v] = struct{}{}
	}

	out := []T{}
	seen := make(map[T]struct{})
	for _, v := range a {
		if _, ok := inB[v]; !ok {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Dedup collapses s to its unique values. Callers must not rely on the
// order; the current implementation returns them ascending.
func Dedup[T cmp.Ordered](s []T) []T {
	set := make(map[T]struct{}, len(s))
	for _, v := range s {
		set[v] = struct{}{}
	}
	return slices.Sorted(maps.Keys(set))
}

// Concat returns a new slice holding a followed by b.
func Concat[T any](a, b []T) []T {
	out := make([]T, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

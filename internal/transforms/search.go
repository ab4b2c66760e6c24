// Package transforms holds small, stateless algorithms over slices, strings
// and maps. Every function is deterministic and leaves its inputs untouched.
//
// Functions that have no meaningful answer for some inputs (an empty slice,
// a string with no unique rune) return a zero value and ok=false instead of
// panicking.
package transforms

import (
	"cmp"
	"slices"
)

// ── Pair-sum search ──────────────────────────────────────────────────────────

// TwoSum returns the first pair of indices [i, j] (i < j) whose values add up
// to target, scanning left to right. It remembers every value already seen so
// each lookback is O(1); j is the smallest index that completes a pair and i
// is the latest earlier index holding the complement. Returns nil when no
// pair exists.
func TwoSum(nums []int, target int) []int {
	seen := make(map[int]int, len(nums)) // value → latest index
	for j, n := range nums {
		if i, ok := seen[target-n]; ok {
			return []int{i, j}
		}
		seen[n] = j
	}
	return nil
}

// ── Leaders ──────────────────────────────────────────────────────────────────

// Leaders returns the elements that are strictly greater than every element
// to their right, in their original left-to-right order. The last element is
// always a leader.
func Leaders[T cmp.Ordered](s []T) []T {
	var out []T
	for i := len(s) - 1; i >= 0; i-- {
		if len(out) == 0 || s[i] > out[len(out)-1] {
			out = append(out, s[i])
		}
	}
	slices.Reverse(out)
	return out
}

// ── Frequency-based picks ────────────────────────────────────────────────────

// MostCommon returns the element with the highest occurrence count. Ties go
// to whichever element appears first in s.
func MostCommon[T comparable](s []T) (T, bool) {
	if len(s) == 0 {
		var zero T
		return zero, false
	}

	counts := make(map[T]int, len(s))
	for _, v := range s {
		counts[v]++
	}

	best, bestN := s[0], 0
	for _, v := range s {
		if counts[v] > bestN { // strict: an earlier element keeps a tie
			best, bestN = v, counts[v]
		}
	}
	return best, true
}

// FirstNonRepeated returns the first rune, in original order, that occurs
// exactly once in s.
func FirstNonRepeated(s string) (rune, bool) {
	counts := CountChars(s)
	for _, r := range s {
		if counts[r] == 1 {
			return r, true
		}
	}
	return 0, false
}

// ── Extremes ─────────────────────────────────────────────────────────────────

// Max returns the largest value in s, or ok=false if s is empty.
func Max[T cmp.Ordered](s []T) (T, bool) {
	if len(s) == 0 {
		var zero T
		return zero, false
	}
	return slices.Max(s), true
}

// SecondLargest returns the second-largest distinct value in s. ok is false
// when s holds fewer than two distinct values.
func SecondLargest[T cmp.Ordered](s []T) (T, bool) {
	u := Dedup(s) // ascending
	if len(u) < 2 {
		var zero T
		return zero, false
	}
	return u[len(u)-2], true
}

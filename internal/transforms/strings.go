package transforms

import (
	"slices"
	"strings"
)

// Reverse returns s with its runes in reverse order. Multi-byte characters
// stay intact.
func Reverse(s string) string {
	runes := []rune(s)
	slices.Reverse(runes)
	return string(runes)
}

// ReverseAlphabets reverses every character of s, letters or not.
func ReverseAlphabets(s string) string {
	return Reverse(s)
}

// IsPalindrome reports whether s reads the same in both directions. The
// comparison is exact: case and spaces count.
func IsPalindrome(s string) bool {
	return s == Reverse(s)
}

// DedupWords drops repeated words from s, keeping the first occurrence of
// each, and joins the result with single spaces.
func DedupWords(s string) string {
	words := strings.Fields(s)
	seen := make(map[string]struct{}, len(words))
	kept := words[:0]
	for _, w := range words {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		kept = append(kept, w)
	}
	return strings.Join(kept, " ")
}

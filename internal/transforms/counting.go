package transforms

import "strings"

// CountWords splits s on whitespace and counts each word.
func CountWords(s string) map[string]int {
	counts := make(map[string]int)
	for _, w := range strings.Fields(s) {
		counts[w]++
	}
	return counts
}

// CountChars counts every rune in s, spaces and punctuation included.
func CountChars(s string) map[rune]int {
	counts := make(map[rune]int)
	for _, r := range s {
		counts[r]++
	}
	return counts
}

// Factorial returns n! computed recursively. Any n <= 1 yields 1. The result
// silently overflows for n > 20.
func Factorial(n int) int {
	if n <= 1 {
		return 1
	}
	return n * Factorial(n-1)
}

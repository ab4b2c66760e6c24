package transforms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountWords(t *testing.T) {
	assert.Equal(t, map[string]int{"hello": 2, "world": 1}, CountWords("hello world hello"))
	assert.Equal(t, map[string]int{"a": 3}, CountWords(" a\ta\na "))
	assert.Empty(t, CountWords("   "))
}

func TestCountChars(t *testing.T) {
	got := CountChars("hello world")
	assert.Equal(t, map[rune]int{
		'h': 1, 'e': 1, 'l': 3, 'o': 2, ' ': 1, 'w': 1, 'r': 1, 'd': 1,
	}, got)
	assert.Equal(t, map[rune]int{'é': 2}, CountChars("éé"))
}

func TestFactorial(t *testing.T) {
	cases := []struct{ n, want int }{
		{-3, 1},
		{0, 1},
		{1, 1},
		{5, 120},
		{10, 3628800},
		{20, 2432902008176640000},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Factorial(c.n), "Factorial(%d)", c.n)
	}
}

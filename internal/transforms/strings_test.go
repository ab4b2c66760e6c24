package transforms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReverse(t *testing.T) {
	cases := []struct{ in, want string }{
		{"hello", "olleh"},
		{"abcdef", "fedcba"},
		{"", ""},
		{"a", "a"},
		{"héllo, 世界", "界世 ,olléh"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Reverse(c.in), "Reverse(%q)", c.in)
		assert.Equal(t, c.want, ReverseAlphabets(c.in), "ReverseAlphabets(%q)", c.in)
		assert.Equal(t, c.in, Reverse(Reverse(c.in)), "double reverse of %q", c.in)
	}
}

func TestIsPalindrome(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"radar", true},
		{"abba", true},
		{"", true},
		{"z", true},
		{"hello", false},
		{"Radar", false},
		{"never odd or even", false},
		{"été", true},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, IsPalindrome(c.in), "IsPalindrome(%q)", c.in)
		assert.Equal(t, Reverse(c.in) == c.in, IsPalindrome(c.in))
	}
}

func TestDedupWords(t *testing.T) {
	cases := []struct{ in, want string }{
		{"hello world hello universe", "hello world universe"},
		{"  go   go\tgo\n", "go"},
		{"a b c", "a b c"},
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, DedupWords(c.in), "DedupWords(%q)", c.in)
	}
}

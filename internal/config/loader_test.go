package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "inputs.yaml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	in, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), in)
}

func TestDefaultsAreValid(t *testing.T) {
	assert.NoError(t, Defaults().Validate())
}

func TestLoadOverlaysFile(t *testing.T) {
	p := writeFile(t, `
two_sum:
  nums: [1, 4, 6]
  target: 10
rotate:
  by: 3
person:
  name: Ada
leaders: []
merge:
  b:
    X: Xigua
`)
	in, err := Load(p)
	require.NoError(t, err)

	def := Defaults()
	assert.Equal(t, []int{1, 4, 6}, in.TwoSum.Nums)
	assert.Equal(t, 10, in.TwoSum.Target)
	assert.Equal(t, def.Rotate.Nums, in.Rotate.Nums, "unset nested field keeps default")
	assert.Equal(t, 3, in.Rotate.By)
	assert.Equal(t, 1, in.Person.ID)
	assert.Equal(t, "Ada", in.Person.Name)
	assert.Equal(t, []int{}, in.Leaders, "explicit empty list replaces default")
	assert.Equal(t, def.Merge.A, in.Merge.A)
	assert.Equal(t, map[string]string{"X": "Xigua"}, in.Merge.B, "maps are replaced, not merged")
	assert.Equal(t, def.Sentence, in.Sentence)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse(strings.NewReader("sentense: typo\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestParseEmptyDocument(t *testing.T) {
	in, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), in)
}

func TestParseAcceptsInputsTheTransformsHandle(t *testing.T) {
	in, err := Parse(strings.NewReader("rotate: {by: -1}\nfactorial: -3\n"))
	require.NoError(t, err)
	assert.Equal(t, -1, in.Rotate.By)
	assert.Equal(t, -3, in.Factorial)
}

func TestValidation(t *testing.T) {
	cases := []struct {
		name  string
		yaml  string
		field string
	}{
		{"two-sum needs two numbers", "two_sum: {nums: [1]}", "TwoSum.Nums"},
		{"factorial overflows", "factorial: 21", "Factorial"},
		{"empty max", "max: []", "Max"},
		{"empty most common", "most_common: []", "MostCommon"},
		{"blank person name", `person: {name: ""}`, "Person.Name"},
		{"blank greeting", `greeting: ""`, "Greeting"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(c.yaml))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), c.field)
		})
	}
}

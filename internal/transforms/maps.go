package transforms

import (
	"cmp"
	"maps"
	"slices"
)

// MergeSeparator joins the two values of a key present in both inputs to
// MergeMaps.
const MergeSeparator = ", "

// MergeMaps returns the union of a and b. A key found in both maps does not
// take b's value: the result holds a[k] + MergeSeparator + b[k].
func MergeMaps(a, b map[string]string) map[string]string {
	out := make(map[string]string, len(a)+len(b))
	maps.Copy(out, a)
	for k, v := range b {
		if prev, ok := out[k]; ok {
			out[k] = prev + MergeSeparator + v
			continue
		}
		out[k] = v
	}
	return out
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	return slices.Sorted(maps.Keys(m))
}

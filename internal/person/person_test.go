package person

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccessors(t *testing.T) {
	p := New(1, "Zeeshan")
	assert.Equal(t, 1, p.ID())
	assert.Equal(t, "Zeeshan", p.Name())
	assert.Equal(t, "Person(1, Zeeshan)", p.String())
}

// TestComparable: equal fields mean equal values, so a Person works as a map key.
func TestComparable(t *testing.T) {
	seen := map[Person]bool{New(7, "Ada"): true}
	assert.True(t, seen[New(7, "Ada")])
	assert.False(t, seen[New(8, "Ada")])
}

func TestConcurrentReads(t *testing.T) {
	p := New(3, "Linus")
	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, "Linus", p.Name())
		}()
	}
	wg.Wait()
}

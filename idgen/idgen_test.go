package idgen

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerator_StrictlyIncreasing(t *testing.T) {
	gen := New()

	prev := int64(0)
	for i := 0; i < 1000; i++ {
		id := gen.Next()
		assert.Greater(t, id, prev)
		prev = id
	}
}

func TestGenerator_StartsAboveZero(t *testing.T) {
	gen := New()

	assert.Equal(t, int64(1), gen.Next())
}

func TestGenerator_ConcurrentCallsDistinct(t *testing.T) {
	gen := New()

	const goroutines = 8
	const perGoroutine = 500

	ids := make(chan int64, goroutines*perGoroutine)
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				ids <- gen.Next()
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[int64]bool{}
	for id := range ids {
		assert.False(t, seen[id], "id %d issued twice", id)
		seen[id] = true
	}
	assert.Equal(t, goroutines*perGoroutine, len(seen))
}

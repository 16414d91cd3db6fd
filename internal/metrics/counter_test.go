package metrics

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounter(t *testing.T) {
	var c Counter
	assert.Equal(t, int64(0), c.Load())

	c.Inc()
	c.Inc()
	assert.Equal(t, int64(2), c.Load())

	assert.Equal(t, int64(0), c.Reset())
	assert.Equal(t, int64(0), c.Load())
}

func TestCounterConcurrentInc(t *testing.T) {
	var c Counter
	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				c.Inc()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(5000), c.Load())
}

package metrics

import "sync/atomic"

// Counter counts file server hits for the lifetime of the process.
// The zero value is ready to use.
type Counter struct {
	hits atomic.Int64
}

func (c *Counter) Inc() {
	c.hits.Add(1)
}

func (c *Counter) Load() int64 {
	return c.hits.Load()
}

func (c *Counter) Reset() int64 {
	c.hits.Store(0)
	return 0
}

package service

import (
	"sync"
	"time"
)

// Clock hands out strictly increasing millisecond timestamps and tracks
// which of them belong to writes that have not finished yet.
type Clock struct {
	mu      sync.Mutex
	now     func() time.Time
	last    int64
	pending map[int64]struct{}
}

func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now, pending: make(map[int64]struct{})}
}

// Next returns max(now, last+1) and marks it in flight until Done.
func (c *Clock) Next() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	ts := c.now().UnixMilli()
	if ts <= c.last {
		ts = c.last + 1
	}
	c.last = ts
	c.pending[ts] = struct{}{}
	return ts
}

func (c *Clock) Done(ts int64) {
	c.mu.Lock()
	delete(c.pending, ts)
	c.mu.Unlock()
}

// Advance raises the floor to ts, e.g. the newest stored timestamp at startup.
func (c *Clock) Advance(ts int64) {
	c.mu.Lock()
	if ts > c.last {
		c.last = ts
	}
	c.mu.Unlock()
}

// Watermark returns the highest timestamp below which every issued write has
// finished. Timestamps issued afterwards are always greater.
func (c *Clock) Watermark() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.pending) > 0 {
		low := int64(-1)
		for ts := range c.pending {
			if low < 0 || ts < low {
				low = ts
			}
		}
		return low - 1
	}

	w := c.now().UnixMilli()
	if w < c.last {
		w = c.last
	}
	c.last = w
	return w
}

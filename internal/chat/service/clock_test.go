package service

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClock_NextIsStrictlyIncreasing(t *testing.T) {
	c := NewClock(func() time.Time { return time.UnixMilli(500) })

	a := c.Next()
	b := c.Next()
	c.Done(a)
	c.Done(b)

	assert.Equal(t, int64(500), a)
	assert.Equal(t, int64(501), b)
}

func TestClock_Advance(t *testing.T) {
	c := NewClock(func() time.Time { return time.UnixMilli(500) })
	c.Advance(9_000)

	assert.Equal(t, int64(9_001), c.Next())
}

func TestClock_WatermarkStaysBelowPendingWrites(t *testing.T) {
	c := NewClock(func() time.Time { return time.UnixMilli(100) })

	a := c.Next()
	b := c.Next()
	assert.Equal(t, a-1, c.Watermark())

	c.Done(a)
	assert.Equal(t, b-1, c.Watermark())

	c.Done(b)
	assert.Equal(t, b, c.Watermark())
}

func TestClock_NextAfterWatermarkIsGreater(t *testing.T) {
	c := NewClock(func() time.Time { return time.UnixMilli(100) })

	w := c.Watermark()
	ts := c.Next()

	assert.Greater(t, ts, w)
}

func TestClock_Concurrent(t *testing.T) {
	c := NewClock(nil)
	seen := sync.Map{}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				ts := c.Next()
				_, dup := seen.LoadOrStore(ts, true)
				assert.False(t, dup)
				c.Done(ts)
			}
		}()
	}
	wg.Wait()
}

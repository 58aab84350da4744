package bus

import (
	"sync"
	"time"

	"mendel-server/models"
)

// coalescer collapses bursts of results into at most one emit per window:
// the first pending result arms a timer, later results within the window
// overwrite the pending one, and the timer fires with whatever is latest.
type coalescer struct {
	window time.Duration
	emit   func(models.FilterResult)

	mu      sync.Mutex
	latest  models.FilterResult
	pending bool
	timer   *time.Timer
	stopped bool
}

func newCoalescer(window time.Duration, emit func(models.FilterResult)) *coalescer {
	return &coalescer{window: window, emit: emit}
}

// Offer records result as the latest pending value and arms the delivery
// timer if none is running. Last write wins within a window.
func (c *coalescer) Offer(result models.FilterResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopped {
		return
	}

	c.latest = result
	c.pending = true
	if c.timer == nil {
		c.timer = time.AfterFunc(c.window, c.fire)
	}
}

func (c *coalescer) fire() {
	c.mu.Lock()
	if c.stopped || !c.pending {
		c.timer = nil
		c.mu.Unlock()
		return
	}
	result := c.latest
	c.pending = false
	c.timer = nil
	c.mu.Unlock()

	c.emit(result)
}

// Stop cancels any pending delivery. Idempotent.
func (c *coalescer) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopped = true
	c.pending = false
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

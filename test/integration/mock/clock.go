package mock

import (
	"sync"
	"time"
)

// Clock is a settable time source injected into clock-aware use cases.
type Clock struct {
	mu      sync.Mutex
	current time.Time
}

// NewClock starts at the real current time.
func NewClock() *Clock {
	return &Clock{current: time.Now().UTC()}
}

// Set pins the clock to the given instant.
func (c *Clock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = t
}

// Now returns the pinned instant.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

package mocks

import (
	"sort"
	"sync"
	"time"

	"github.com/typefight/typefighter-go/internal/dependencies/clock"
)

// MockClock is a mock implementation of Clock for testing. Scheduled
// callbacks fire synchronously from Advance, in deadline order, on the
// caller's goroutine.
type MockClock struct {
	mu      sync.Mutex
	now     time.Time
	nextID  int
	pending []*mockTimer
}

type mockTimer struct {
	id       int
	deadline time.Time
	fn       func()
	stopped  bool
}

// Ensure MockClock implements Clock
var _ clock.Clock = (*MockClock)(nil)

// NewMockClock creates a MockClock set to the given time
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{now: t}
}

// Now returns the mocked current time
func (c *MockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// AfterFunc registers f to fire when the clock advances past d
func (c *MockClock) AfterFunc(d time.Duration, f func()) clock.StopFunc {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextID++
	t := &mockTimer{
		id:       c.nextID,
		deadline: c.now.Add(d),
		fn:       f,
	}
	c.pending = append(c.pending, t)

	return func() bool {
		c.mu.Lock()
		defer c.mu.Unlock()
		if t.stopped {
			return false
		}
		t.stopped = true
		return true
	}
}

// Advance moves the clock forward by d, firing due callbacks in deadline
// order. Callbacks scheduled while firing are themselves fired if they come
// due within the same advance.
func (c *MockClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	c.mu.Unlock()

	for {
		t := c.popDue(target)
		if t == nil {
			break
		}
		t.fn()
	}

	c.mu.Lock()
	c.now = target
	c.mu.Unlock()
}

// PendingCount returns the number of callbacks still scheduled
func (c *MockClock) PendingCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.pending {
		if !t.stopped {
			n++
		}
	}
	return n
}

// popDue removes and returns the earliest unexpired timer due at or before
// target, advancing the mock time to its deadline
func (c *MockClock) popDue(target time.Time) *mockTimer {
	c.mu.Lock()
	defer c.mu.Unlock()

	sort.SliceStable(c.pending, func(i, j int) bool {
		if c.pending[i].deadline.Equal(c.pending[j].deadline) {
			return c.pending[i].id < c.pending[j].id
		}
		return c.pending[i].deadline.Before(c.pending[j].deadline)
	})

	for i, t := range c.pending {
		if t.stopped {
			continue
		}
		if t.deadline.After(target) {
			break
		}
		c.pending = append(c.pending[:i], c.pending[i+1:]...)
		if t.deadline.After(c.now) {
			c.now = t.deadline
		}
		return t
	}
	return nil
}

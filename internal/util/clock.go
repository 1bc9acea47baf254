package util

import (
	"sync"
	"time"
)

// Clock supplies post creation times.
type Clock interface {
	NowUtc() time.Time
}

type RealClock struct{}

func NewRealClock() *RealClock {
	return &RealClock{}
}

func (c *RealClock) NowUtc() time.Time {
	return time.Now().UTC()
}

// StubEpoch is where every StubClock starts.
var StubEpoch = time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC)

// StubClock is a Clock for tests. It only moves when told to, or by Step
// after each reading when Step is set.
type StubClock struct {
	Step time.Duration

	lock sync.Mutex
	now  time.Time
}

func NewStubClock() *StubClock {
	return &StubClock{now: StubEpoch}
}

// NowUtc returns the current stub time, then moves it forward by Step.
func (c *StubClock) NowUtc() time.Time {
	c.lock.Lock()
	defer c.lock.Unlock()
	now := c.now
	c.now = c.now.Add(c.Step)
	return now
}

func (c *StubClock) SetNow(now time.Time) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.now = now.UTC()
}

// Advance moves the clock forward by d and returns the new time.
func (c *StubClock) Advance(d time.Duration) time.Time {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.now = c.now.Add(d)
	return c.now
}

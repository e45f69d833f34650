// Package clock abstracts time so run durations are deterministic in tests.
package clock

import "time"

// Clock provides the current time.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system time.
type RealClock struct{}

// Now returns the current system time.
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// Since returns the time elapsed on clk since start.
func Since(clk Clock, start time.Time) time.Duration {
	return clk.Now().Sub(start)
}

// FakeClock implements Clock for testing. Every call to Now advances the
// clock by Step after returning the current value.
type FakeClock struct {
	current time.Time

	// Step is added to the clock after each Now call.
	Step time.Duration
}

// NewFakeClock creates a new FakeClock starting at t that advances by step.
func NewFakeClock(t time.Time, step time.Duration) *FakeClock {
	return &FakeClock{current: t, Step: step}
}

// Now returns the current fake time and then advances it by Step.
func (c *FakeClock) Now() time.Time {
	now := c.current
	c.current = c.current.Add(c.Step)
	return now
}

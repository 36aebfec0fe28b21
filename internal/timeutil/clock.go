// Package timeutil provides a testable abstraction over time operations.
package timeutil

import "time"

// Clock provides an abstraction over the wall clock so date-dependent
// behaviour can be tested deterministically.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system time.
type RealClock struct{}

// NewRealClock returns a Clock backed by the system time.
func NewRealClock() Clock { return RealClock{} }

func (RealClock) Now() time.Time { return time.Now() }

// FakeClock implements Clock with a fixed instant.
type FakeClock struct {
	Time time.Time
}

// NewFakeClock returns a Clock frozen at t.
func NewFakeClock(t time.Time) *FakeClock { return &FakeClock{Time: t} }

func (c *FakeClock) Now() time.Time { return c.Time }

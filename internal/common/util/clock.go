package util

import "time"

// Clock abstracts wall-clock access so run prefixes can be derived
// deterministically in tests.
type Clock interface {
	Now() time.Time
}

type DefaultClock struct{}

func (c *DefaultClock) Now() time.Time { return time.Now() }

// DummyClock always returns the fixed time T.
type DummyClock struct {
	T time.Time
}

func (c *DummyClock) Now() time.Time {
	return c.T
}

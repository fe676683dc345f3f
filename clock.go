// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package congestion

import (
	"sync"
	"time"
)

// Clock supplies the current time. Controllers only require that it never
// goes backwards; time.Now satisfies this via its monotonic reading.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SimulatedClock is a Clock that only moves when told to. It lets tests and
// simulations drive a controller through probe intervals without sleeping.
// Safe for concurrent use.
type SimulatedClock struct {
	mutex sync.RWMutex
	now   time.Time
}

// NewSimulatedClock creates a SimulatedClock starting at the given time.
func NewSimulatedClock(start time.Time) *SimulatedClock {
	return &SimulatedClock{now: start}
}

// Now returns the simulated time.
func (c *SimulatedClock) Now() time.Time {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return c.now
}

// Advance moves the simulated time forward by d. Negative values are ignored.
func (c *SimulatedClock) Advance(d time.Duration) {
	if d < 0 {
		return
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.now = c.now.Add(d)
}

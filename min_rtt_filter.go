// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package congestion

import (
	"math"
	"time"
)

// minRTTUnset is the sentinel the filter starts from so any valid sample wins.
const minRTTUnset = time.Duration(math.MaxInt64)

// minRTTFilter keeps the lowest round-trip time seen. Non-positive samples
// are rejected. The minimum is never aged out; PROBE_RTT shrinks the window
// so fresh samples can establish a new one instead.
// Not thread-safe; the owning controller serializes access.
type minRTTFilter struct {
	best time.Duration
}

func newMinRTTFilter() minRTTFilter {
	return minRTTFilter{best: minRTTUnset}
}

func (f *minRTTFilter) update(rtt time.Duration) {
	if rtt <= 0 {
		return
	}

	if rtt < f.best {
		f.best = rtt
	}
}

// estimate returns the lowest RTT seen, 0 before the first sample.
func (f *minRTTFilter) estimate() time.Duration {
	if f.best == minRTTUnset {
		return 0
	}

	return f.best
}

// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package congestion

import (
	"math"
	"time"
)

// Bandwidth is a transfer rate in bytes per second.
type Bandwidth float64

// IsZero reports whether the rate carries no information (unset or zero).
func (b Bandwidth) IsZero() bool { return b <= 0 }

// bytesForInterval returns how many bytes the rate allows over d.
func (b Bandwidth) bytesForInterval(d time.Duration) uint32 {
	if b.IsZero() || d <= 0 {
		return 0
	}

	bytes := float64(b) * d.Seconds()
	if bytes >= math.MaxUint32 {
		return math.MaxUint32
	}

	return uint32(bytes)
}

// transferTime returns how long sending the given number of bytes takes at
// this rate, or 0 for a zero rate.
func (b Bandwidth) transferTime(bytes uint32) time.Duration {
	if b.IsZero() {
		return 0
	}

	return time.Duration(float64(bytes) / float64(b) * float64(time.Second))
}

// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package congestion

import (
	"time"
)

// maxBandwidthFilter keeps the best delivery rate seen over the lifetime of
// the connection. It is a plain running maximum: no window, no decay, so a
// path-bandwidth decrease is never reflected in the estimate.
// Not thread-safe; the owning controller serializes access.
type maxBandwidthFilter struct {
	best Bandwidth
}

// update folds in one delivery sample. Samples with a non-positive RTT are
// rejected; they carry no usable rate.
func (f *maxBandwidthFilter) update(deliveredBytes uint32, rtt time.Duration) {
	if rtt <= 0 {
		return
	}

	sample := Bandwidth(float64(deliveredBytes) / rtt.Seconds())
	if sample > f.best {
		f.best = sample
	}
}

// estimate returns the best rate seen so far, 0 before the first sample.
func (f *maxBandwidthFilter) estimate() Bandwidth {
	return f.best
}

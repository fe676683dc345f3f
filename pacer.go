// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package congestion

import (
	"time"
)

// maxBurstSegments bounds how much budget the pacer can accumulate while idle.
const maxBurstSegments = 10

// pacer is a token bucket fed by the controller's pacing rate. Budget
// accrues between sends at the current rate and is capped at a small burst.
// A zero rate (cold start) leaves the bucket full so the connection can
// bootstrap its first measurements.
type pacer struct {
	segmentSize uint32
	minDelay    time.Duration
	rate        func() Bandwidth

	budgetAtLastSent uint32
	lastSent         time.Time
}

func newPacer(segmentSize uint32, minDelay time.Duration, rate func() Bandwidth) *pacer {
	return &pacer{
		segmentSize: segmentSize,
		minDelay:    minDelay,
		rate:        rate,
	}
}

func (p *pacer) maxBurst() uint32 {
	return maxBurstSegments * p.segmentSize
}

// budget returns the bytes that may be sent at now.
func (p *pacer) budget(now time.Time) uint32 {
	if p.lastSent.IsZero() {
		return p.maxBurst()
	}

	budget := uint64(p.budgetAtLastSent) + uint64(p.bytesForInterval(now.Sub(p.lastSent)))
	if budget > uint64(p.maxBurst()) {
		return p.maxBurst()
	}

	return uint32(budget)
}

// onSent debits one send from the bucket.
func (p *pacer) onSent(now time.Time, bytes uint32) {
	if !p.lastSent.IsZero() {
		p.budgetAtLastSent = p.budget(now)
	}
	p.lastSent = now

	if bytes > p.budgetAtLastSent {
		p.budgetAtLastSent = 0
	} else {
		p.budgetAtLastSent -= bytes
	}
}

// canSend reports whether a full segment fits in the current budget. If it
// does not, next is when it will, never sooner than the minimum pacing delay.
func (p *pacer) canSend(now time.Time) (bool, time.Time) {
	budget := p.budget(now)
	if budget >= p.segmentSize {
		return true, time.Time{}
	}

	wait := p.rate().transferTime(p.segmentSize - budget)
	if wait < p.minDelay {
		wait = p.minDelay
	}

	return false, p.lastSent.Add(wait)
}

// bytesForInterval converts elapsed time into budget at the current rate.
func (p *pacer) bytesForInterval(interval time.Duration) uint32 {
	rate := p.rate()
	if rate.IsZero() {
		return p.maxBurst()
	}

	return rate.bytesForInterval(interval)
}

// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package congestion

import (
	"time"

	"github.com/pion/logging"
)

const initialSSThreshold = 1_000_000

// reno implements Controller with classic NewReno window dynamics: slow
// start below ssthresh, one-segment-per-window congestion avoidance above
// it, and a halved window on timeout. It does not pace.
type reno struct {
	log  logging.LeveledLogger
	name string

	segmentSize       uint32
	minWindow         uint32
	ssThreshold       uint32
	cwnd              uint32
	partialBytesAcked uint32
}

func newReno(cfg *Config) *reno {
	minWindow := initialWindowSegments * cfg.SegmentSize

	return &reno{
		log:         cfg.LoggerFactory.NewLogger("reno"),
		name:        cfg.Name,
		segmentSize: cfg.SegmentSize,
		minWindow:   minWindow,
		ssThreshold: initialSSThreshold,
		cwnd:        minWindow,
	}
}

// OnACK implements Controller. The RTT sample is irrelevant to NewReno; only
// the acked byte count moves the window.
func (r *reno) OnACK(ackedBytes uint32, _ time.Time) {
	if r.cwnd < r.ssThreshold {
		r.cwnd += ackedBytes
		r.log.Tracef("[%s] updated cwnd=%d ssthresh=%d acked=%d (SS)", r.name, r.cwnd, r.ssThreshold, ackedBytes)

		return
	}

	r.partialBytesAcked += ackedBytes
	if r.partialBytesAcked >= r.cwnd {
		r.partialBytesAcked -= r.cwnd
		r.cwnd += r.segmentSize
		r.log.Tracef("[%s] updated cwnd=%d ssthresh=%d acked=%d (CA)", r.name, r.cwnd, r.ssThreshold, ackedBytes)
	}
}

// OnSend implements Controller.
func (r *reno) OnSend(uint32) {}

// OnTimeout implements Controller.
func (r *reno) OnTimeout(kind TimeoutKind) {
	r.partialBytesAcked = 0
	r.cwnd = max(r.cwnd/2, r.minWindow)
	r.ssThreshold = r.cwnd
	r.log.Tracef("[%s] timeout kind=%d cwnd=%d ssthresh=%d", r.name, kind, r.cwnd, r.ssThreshold)
}

// GetWindow implements Controller.
func (r *reno) GetWindow() uint32 {
	return r.cwnd
}

// PacingRate implements Controller. NewReno is window-limited only; a zero
// rate means unpaced.
func (r *reno) PacingRate() Bandwidth {
	return 0
}

// CanSend implements Controller.
func (r *reno) CanSend() (bool, time.Time) {
	return true, time.Time{}
}

// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package congestion

import (
	"time"
)

// probeScheduler decides when a BBR controller enters and leaves PROBE_RTT.
// It only compares clock readings; the state machine owns the transitions.
type probeScheduler struct {
	probeInterval time.Duration
	probeDuration time.Duration

	lastRTTProbe time.Time
	phaseStart   time.Time
}

func newProbeScheduler(interval, duration time.Duration, now time.Time) probeScheduler {
	// Connection start counts as the last probe so the first probe happens
	// one full interval in.
	return probeScheduler{
		probeInterval: interval,
		probeDuration: duration,
		lastRTTProbe:  now,
		phaseStart:    now,
	}
}

// timeToProbeRTT reports whether the cruising phase has run long enough that
// the minimum-RTT estimate should be re-validated.
func (s *probeScheduler) timeToProbeRTT(now time.Time) bool {
	return now.Sub(s.lastRTTProbe) > s.probeInterval
}

// rttStableForLongEnough reports whether the controller has dwelt in
// PROBE_RTT long enough for queues to drain and a clean sample to be taken.
func (s *probeScheduler) rttStableForLongEnough(now time.Time) bool {
	return now.Sub(s.phaseStart) > s.probeDuration
}

func (s *probeScheduler) markRTTProbe(now time.Time) {
	s.lastRTTProbe = now
}

func (s *probeScheduler) markPhaseStart(now time.Time) {
	s.phaseStart = now
}

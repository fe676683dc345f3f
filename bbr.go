// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package congestion

import (
	"time"

	"github.com/pion/logging"
)

const (
	// initialWindowSegments sizes the congestion window before the first
	// acknowledgment arrives.
	initialWindowSegments = 10

	// startupExitWindowSegments: once the window outgrows this many
	// segments with a positive bandwidth estimate, startup is considered
	// to have filled the pipe.
	startupExitWindowSegments = 10

	// probeRTTWindowSegments is the fixed window held while probing for a
	// new minimum RTT, small enough that queues drain.
	probeRTTWindowSegments = 4
)

type bbrPhase int

const (
	// bbrStartup grows quickly until the bandwidth estimate stops moving.
	bbrStartup bbrPhase = iota
	// bbrDrain lets the queue built during startup empty out.
	bbrDrain
	// bbrProbeBW cruises at the estimate, cycling the pacing gain to
	// periodically re-test for more bandwidth.
	bbrProbeBW
	// bbrProbeRTT shrinks the window so a clean minimum-RTT sample can be
	// observed.
	bbrProbeRTT
)

func (p bbrPhase) String() string {
	switch p {
	case bbrStartup:
		return "STARTUP"
	case bbrDrain:
		return "DRAIN"
	case bbrProbeBW:
		return "PROBE_BW"
	case bbrProbeRTT:
		return "PROBE_RTT"
	default:
		return "UNKNOWN"
	}
}

// bbr is a bandwidth-and-RTT-probing congestion controller. Every
// acknowledgment updates two estimators (best delivery rate, lowest RTT) and
// runs one step of a four-phase state machine; the pacing rate and window
// are recomputed from the estimates and the phase's gains on every event.
//
// One instance per connection. Not thread-safe: the transport must deliver
// events in arrival order from a single goroutine.
type bbr struct {
	log   logging.LeveledLogger
	name  string
	clock Clock

	segmentSize uint32

	phase bbrPhase
	bw    maxBandwidthFilter
	rtt   minRTTFilter
	cycle gainCycle
	sched probeScheduler

	pacingGain float64

	pacingRate Bandwidth
	cwnd       uint32

	pacer *pacer
}

func newBBR(cfg *Config) *bbr {
	b := &bbr{
		log:         cfg.LoggerFactory.NewLogger("bbr"),
		name:        cfg.Name,
		clock:       cfg.Clock,
		segmentSize: cfg.SegmentSize,
		phase:       bbrStartup,
		rtt:         newMinRTTFilter(),
		sched:       newProbeScheduler(cfg.ProbeRTTInterval, cfg.ProbeRTTDuration, cfg.Clock.Now()),
		pacingGain:  1.0,
		cwnd:        initialWindowSegments * cfg.SegmentSize,
	}
	b.pacer = newPacer(cfg.SegmentSize, cfg.MinPacingDelay, b.PacingRate)

	return b
}

// OnACK implements Controller. This is the single measurement event: it
// feeds the estimators, evaluates the current phase's exit condition, and
// recomputes the outputs.
func (b *bbr) OnACK(ackedBytes uint32, sentAt time.Time) {
	now := b.clock.Now()
	rtt := now.Sub(sentAt)

	b.bw.update(ackedBytes, rtt)
	b.rtt.update(rtt)

	// PROBE_RTT's dwell check needs a stable phase start; every other
	// phase tracks the most recent event.
	if b.phase != bbrProbeRTT {
		b.sched.markPhaseStart(now)
	}

	// Exit conditions look at the window as of the previous event.
	switch b.phase {
	case bbrStartup:
		if b.bw.estimate() > 0 && b.cwnd > startupExitWindowSegments*b.segmentSize {
			b.enterPhase(bbrDrain, now)
		}
	case bbrDrain:
		if b.cwnd <= b.targetInflight() {
			b.enterPhase(bbrProbeBW, now)
		}
	case bbrProbeBW:
		b.pacingGain = b.cycle.next()
		if b.sched.timeToProbeRTT(now) {
			b.sched.markRTTProbe(now)
			b.enterPhase(bbrProbeRTT, now)
		}
	case bbrProbeRTT:
		if b.sched.rttStableForLongEnough(now) {
			b.enterPhase(bbrProbeBW, now)
		}
	}

	b.updateOutputs()
}

// OnSend implements Controller.
func (b *bbr) OnSend(bytes uint32) {
	b.pacingRate = Bandwidth(b.pacingGain * float64(b.bw.estimate()))
	b.pacer.onSent(b.clock.Now(), bytes)
}

// OnTimeout implements Controller. Timeouts belong to the transport's
// retransmission machinery; they do not move the estimators or the phase.
func (b *bbr) OnTimeout(kind TimeoutKind) {
	b.log.Tracef("[%s] timeout kind=%d phase=%s (no-op)", b.name, kind, b.phase)
}

// GetWindow implements Controller.
func (b *bbr) GetWindow() uint32 {
	return b.cwnd
}

// PacingRate implements Controller.
func (b *bbr) PacingRate() Bandwidth {
	return b.pacingRate
}

// CanSend implements Controller.
func (b *bbr) CanSend() (bool, time.Time) {
	return b.pacer.canSend(b.clock.Now())
}

func (b *bbr) enterPhase(next bbrPhase, now time.Time) {
	b.log.Tracef("[%s] phase %s -> %s bw=%.0f minRtt=%v", b.name, b.phase, next, float64(b.bw.estimate()), b.rtt.estimate())
	b.phase = next
	b.sched.markPhaseStart(now)
}

// targetInflight is the bandwidth-delay product, truncated to whole bytes.
func (b *bbr) targetInflight() uint32 {
	return uint32(float64(b.bw.estimate()) * b.rtt.estimate().Seconds())
}

// updateOutputs recomputes the pacing rate and window from the estimates and
// the phase's gains. The window is floored at one segment so a zero estimate
// can never stall the connection; PROBE_RTT overrides the formula entirely.
func (b *bbr) updateOutputs() {
	b.pacingRate = Bandwidth(b.pacingGain * float64(b.bw.estimate()))

	if b.phase == bbrProbeRTT {
		b.cwnd = probeRTTWindowSegments * b.segmentSize
	} else {
		cwnd := uint32(cwndGain * float64(b.bw.estimate()) * b.rtt.estimate().Seconds())
		if cwnd < b.segmentSize {
			cwnd = b.segmentSize
		}
		b.cwnd = cwnd
	}

	b.log.Tracef("[%s] updated cwnd=%d pacing=%.0f gain=%.2f phase=%s", b.name, b.cwnd, float64(b.pacingRate), b.pacingGain, b.phase)
}

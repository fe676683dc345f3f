// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package congestion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSegmentSize = 1000

func newTestBBR(clock Clock) *bbr {
	cfg := defaultConfig()
	cfg.Clock = clock
	cfg.SegmentSize = testSegmentSize

	return newBBR(cfg)
}

// ackAfter feeds an acknowledgment whose RTT sample is rtt: the send
// timestamp is backdated from the current clock reading.
func ackAfter(b *bbr, rtt time.Duration, deliveredBytes uint32) {
	b.OnACK(deliveredBytes, b.clock.Now().Add(-rtt))
}

func TestBBRStartupToDrain(t *testing.T) {
	clock := NewSimulatedClock(time.Unix(0, 0))
	b := newTestBBR(clock)

	require.Equal(t, bbrStartup, b.phase, "connections start in STARTUP")

	// Delivery rate ramps while the pipe fills; the window follows the
	// growing bandwidth-delay product.
	for _, delivered := range []uint32{1000, 2000, 4000, 8000} {
		clock.Advance(50 * time.Millisecond)
		ackAfter(b, 50*time.Millisecond, delivered)
		assert.GreaterOrEqual(t, b.cwnd, uint32(testSegmentSize), "window floor")
	}

	// bw = 160000 B/s, minRtt = 50ms: cwnd = 2 * 160000 * 0.05 = 16000.
	assert.Equal(t, bbrStartup, b.phase)
	assert.Equal(t, uint32(16000), b.cwnd)

	// The window exceeds ten segments, so the next event exits STARTUP.
	clock.Advance(50 * time.Millisecond)
	ackAfter(b, 50*time.Millisecond, 1000)
	assert.Equal(t, bbrDrain, b.phase)
}

func TestBBRDrainToProbeBW(t *testing.T) {
	clock := NewSimulatedClock(time.Unix(0, 0))
	b := newTestBBR(clock)
	b.phase = bbrDrain
	b.bw.best = 200000
	b.rtt.best = 50 * time.Millisecond
	b.cwnd = 20000

	// Above the 10000-byte BDP the controller keeps draining.
	for i := 0; i < 3; i++ {
		clock.Advance(50 * time.Millisecond)
		ackAfter(b, 50*time.Millisecond, 1000)
		assert.Equal(t, bbrDrain, b.phase, "event %d", i)
	}

	// Once the window is down to the target in-flight, the next event
	// moves to PROBE_BW.
	b.cwnd = 10000
	clock.Advance(50 * time.Millisecond)
	ackAfter(b, 50*time.Millisecond, 1000)
	assert.Equal(t, bbrProbeBW, b.phase)
}

func TestBBRProbeRTTSchedule(t *testing.T) {
	clock := NewSimulatedClock(time.Unix(0, 0))
	b := newTestBBR(clock)
	b.phase = bbrProbeBW
	b.bw.best = 200000
	b.rtt.best = 50 * time.Millisecond

	// Inside the probe interval PROBE_BW keeps cruising.
	clock.Advance(5 * time.Second)
	ackAfter(b, 50*time.Millisecond, 1000)
	assert.Equal(t, bbrProbeBW, b.phase)

	// Past the interval the next event enters PROBE_RTT and re-arms the
	// probe timer at the current clock.
	clock.Advance(6 * time.Second)
	ackAfter(b, 50*time.Millisecond, 1000)
	assert.Equal(t, bbrProbeRTT, b.phase)
	assert.Equal(t, clock.Now(), b.sched.lastRTTProbe)
	assert.Equal(t, uint32(4*testSegmentSize), b.cwnd, "PROBE_RTT clamps the window")
}

func TestBBRProbeRTTDwell(t *testing.T) {
	clock := NewSimulatedClock(time.Unix(0, 0))
	b := newTestBBR(clock)
	b.phase = bbrProbeRTT
	b.bw.best = 200000
	b.rtt.best = 50 * time.Millisecond
	b.sched.markPhaseStart(clock.Now())

	// Every event inside the dwell time holds the minimal window.
	for i := 0; i < 4; i++ {
		clock.Advance(50 * time.Millisecond)
		ackAfter(b, 50*time.Millisecond, 1000)
		assert.Equal(t, bbrProbeRTT, b.phase, "event %d", i)
		assert.Equal(t, uint32(4*testSegmentSize), b.cwnd, "event %d", i)
	}

	// 250ms in: dwell exceeded, back to PROBE_BW with a formula window.
	clock.Advance(50 * time.Millisecond)
	ackAfter(b, 50*time.Millisecond, 1000)
	assert.Equal(t, bbrProbeBW, b.phase)
	assert.Equal(t, uint32(20000), b.cwnd, "cwnd = 2 * 200000 B/s * 50ms")
}

func TestBBRRejectsNonPositiveRTT(t *testing.T) {
	clock := NewSimulatedClock(time.Unix(0, 0))
	b := newTestBBR(clock)

	clock.Advance(50 * time.Millisecond)
	ackAfter(b, 50*time.Millisecond, 1000)
	bw, rtt := b.bw.estimate(), b.rtt.estimate()

	// Send timestamp equal to now: zero RTT.
	b.OnACK(5000, clock.Now())
	assert.Equal(t, bw, b.bw.estimate(), "estimator must ignore zero RTT")
	assert.Equal(t, rtt, b.rtt.estimate(), "estimator must ignore zero RTT")

	// Send timestamp in the future: negative RTT.
	b.OnACK(5000, clock.Now().Add(time.Second))
	assert.Equal(t, bw, b.bw.estimate(), "estimator must ignore negative RTT")
	assert.Equal(t, rtt, b.rtt.estimate(), "estimator must ignore negative RTT")
}

func TestBBRWindowFloor(t *testing.T) {
	clock := NewSimulatedClock(time.Unix(0, 0))
	b := newTestBBR(clock)

	// With no usable samples the formula yields zero; the floor keeps the
	// connection able to send one segment.
	b.OnACK(0, clock.Now())
	assert.Equal(t, uint32(testSegmentSize), b.cwnd)
	assert.Equal(t, Bandwidth(0), b.PacingRate())

	// Tiny but valid samples still respect the floor.
	clock.Advance(time.Second)
	ackAfter(b, time.Second, 1)
	assert.GreaterOrEqual(t, b.GetWindow(), uint32(testSegmentSize))
}

func TestBBRDeterminism(t *testing.T) {
	run := func() *bbr {
		clock := NewSimulatedClock(time.Unix(0, 0))
		b := newTestBBR(clock)
		for i, delivered := range []uint32{1000, 3000, 500, 8000, 8000, 1000, 2000} {
			clock.Advance(time.Duration(10+i*7) * time.Millisecond)
			ackAfter(b, time.Duration(20+i*5)*time.Millisecond, delivered)
		}
		clock.Advance(11 * time.Second)
		ackAfter(b, 40*time.Millisecond, 4000)

		return b
	}

	b1, b2 := run(), run()
	assert.Equal(t, b1.phase, b2.phase)
	assert.Equal(t, b1.cwnd, b2.cwnd)
	assert.Equal(t, b1.pacingRate, b2.pacingRate)
	assert.Equal(t, b1.pacingGain, b2.pacingGain)
	assert.Equal(t, b1.bw.estimate(), b2.bw.estimate())
	assert.Equal(t, b1.rtt.estimate(), b2.rtt.estimate())
}

func TestBBRTimeoutDoesNotMoveState(t *testing.T) {
	clock := NewSimulatedClock(time.Unix(0, 0))
	b := newTestBBR(clock)

	clock.Advance(50 * time.Millisecond)
	ackAfter(b, 50*time.Millisecond, 4000)
	phase, cwnd, bw := b.phase, b.cwnd, b.bw.estimate()

	b.OnTimeout(TimeoutRetransmission)
	assert.Equal(t, phase, b.phase)
	assert.Equal(t, cwnd, b.cwnd)
	assert.Equal(t, bw, b.bw.estimate())
}

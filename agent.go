// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package congestion

import (
	"time"

	"github.com/pion/logging"
	"github.com/pion/randutil"
)

var globalMathRandomGenerator = randutil.NewMathRandomGenerator() // nolint:gochecknoglobals

// maxSendQuantum bounds a single send burst regardless of pacing rate.
const maxSendQuantum = 64 * 1024

// AckEvent is one acknowledgment as reported by the network: how many bytes
// it covers and when the acknowledged data was sent. The controller derives
// the RTT sample from the send timestamp and its own clock.
type AckEvent struct {
	DeliveredBytes uint32
	SentAt         time.Time
}

// Agent is a minimal stand-in for the transport runtime that owns a
// Controller: it feeds acknowledgment and timeout events in arrival order,
// tracks bytes in flight, maintains the retransmission timeout, and answers
// how much new data may be sent. It implements no retransmission or wire
// format; it is the seam a real transport plugs a Controller into.
//
// An Agent must be driven from a single goroutine.
type Agent struct {
	log  logging.LeveledLogger
	name string

	clock       Clock
	segmentSize uint32

	cc     Controller
	rtoMgr *rtoManager

	bytesInFlight uint32
	nextSeq       uint32
}

// NewAgent creates an Agent driving the given controller. The controller
// should be built with the same clock the agent is given.
func NewAgent(cc Controller, opts ...Option) (*Agent, error) {
	if cc == nil {
		return nil, errNilController
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt.apply(cfg); err != nil {
			return nil, err
		}
	}

	return &Agent{
		log:         cfg.LoggerFactory.NewLogger("agent"),
		name:        cfg.Name,
		clock:       cfg.Clock,
		segmentSize: cfg.SegmentSize,
		cc:          cc,
		rtoMgr:      newRTOManager(),
		nextSeq:     globalMathRandomGenerator.Uint32(),
	}, nil
}

// HandleAck processes one acknowledgment event. Events must be delivered in
// the order the network produced them.
func (a *Agent) HandleAck(ev AckEvent) {
	now := a.clock.Now()
	rtt := now.Sub(ev.SentAt)

	if ev.DeliveredBytes >= a.bytesInFlight {
		a.bytesInFlight = 0
	} else {
		a.bytesInFlight -= ev.DeliveredBytes
	}

	a.cc.OnACK(ev.DeliveredBytes, ev.SentAt)

	if rtt > 0 {
		srtt := a.rtoMgr.setNewRTT(float64(rtt) / float64(time.Millisecond))
		a.log.Tracef("[%s] ack: acked=%d measured-rtt=%v srtt=%.3fms rto=%.3fms cwnd=%d",
			a.name, ev.DeliveredBytes, rtt, srtt, a.rtoMgr.getRTO(), a.cc.GetWindow())
	}
}

// HandleTimeout forwards a timer expiry to the controller.
func (a *Agent) HandleTimeout(kind TimeoutKind) {
	a.log.Tracef("[%s] timeout kind=%d rto=%.3fms", a.name, kind, a.rtoMgr.getRTO())
	a.cc.OnTimeout(kind)
}

// Send asks for permission to put up to maxBytes of new data on the wire and
// returns how many bytes were granted: bounded by the congestion window
// minus bytes in flight, the pacer, and the send quantum. The granted bytes
// are counted as in flight.
func (a *Agent) Send(maxBytes uint32) uint32 {
	if ok, _ := a.cc.CanSend(); !ok {
		return 0
	}

	window := a.cc.GetWindow()
	if a.bytesInFlight >= window {
		return 0
	}

	grant := window - a.bytesInFlight
	if maxBytes < grant {
		grant = maxBytes
	}
	if quantum := a.sendQuantum(); grant > quantum {
		grant = quantum
	}
	if grant == 0 {
		return 0
	}

	a.bytesInFlight += grant
	seq := a.nextSeq
	a.nextSeq++
	a.cc.OnSend(grant)
	a.log.Tracef("[%s] sent seq=%d bytes=%d inflight=%d window=%d", a.name, seq, grant, a.bytesInFlight, window)

	return grant
}

// sendQuantum sizes one burst from the pacing rate: roughly a millisecond of
// data, clamped between two segments and maxSendQuantum. An unpaced
// controller gets the full quantum.
func (a *Agent) sendQuantum() uint32 {
	rate := a.cc.PacingRate()
	if rate.IsZero() {
		return maxSendQuantum
	}

	quantum := min(rate.bytesForInterval(time.Millisecond), maxSendQuantum)

	return max(quantum, 2*a.segmentSize)
}

// BytesInFlight returns the bytes currently counted as in flight.
func (a *Agent) BytesInFlight() uint32 {
	return a.bytesInFlight
}

// RTO returns the current retransmission timeout.
func (a *Agent) RTO() time.Duration {
	return time.Duration(a.rtoMgr.getRTO() * float64(time.Millisecond))
}

// Controller returns the controller the agent drives.
func (a *Agent) Controller() Controller {
	return a.cc
}

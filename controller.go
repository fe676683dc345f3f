// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package congestion implements congestion-control algorithms for reliable
// byte-stream transports. A transport holds a Controller, feeds it
// acknowledgment and timeout events in arrival order, and reads back the
// pacing rate and congestion window before each send decision.
package congestion

import (
	"time"
)

// TimeoutKind identifies the timer that fired. The congestion controller
// receives it unmodified from the transport; retransmission policy stays
// with the transport.
type TimeoutKind int

const (
	// TimeoutRetransmission is an expired retransmission timer.
	TimeoutRetransmission TimeoutKind = iota
	// TimeoutIdle is an expired idle/heartbeat timer.
	TimeoutIdle
)

// Controller is the capability interface a transport holds for congestion
// control. Implementations are not safe for concurrent use; the transport
// must confine a Controller to a single goroutine at a time.
type Controller interface {
	// OnACK processes one acknowledgment. ackedBytes is the delivery size
	// the acknowledgment reports and sentAt is the send timestamp of the
	// acknowledged data; the controller derives the RTT sample from its
	// own clock.
	OnACK(ackedBytes uint32, sentAt time.Time)
	// OnSend records that bytes were handed to the network.
	OnSend(bytes uint32)
	// OnTimeout processes a timer expiry of the given kind.
	OnTimeout(kind TimeoutKind)
	// GetWindow returns the congestion window in bytes. It is always at
	// least one segment.
	GetWindow() uint32
	// PacingRate returns the rate at which new data should be released.
	PacingRate() Bandwidth
	// CanSend reports whether pacing permits a send now. If it does not,
	// next is the earliest time at which it will.
	CanSend() (canSend bool, next time.Time)
}

// Algorithm selects a congestion-control strategy. The set is closed and
// resolved at connection setup; there is no runtime registry.
type Algorithm int

const (
	// AlgorithmBBR probes for bandwidth and round-trip time and paces
	// sends at a gain-adjusted multiple of the estimated bottleneck
	// bandwidth.
	AlgorithmBBR Algorithm = iota
	// AlgorithmNewReno grows the window by slow start and congestion
	// avoidance and halves it on timeout. It does not pace.
	AlgorithmNewReno
)

func (a Algorithm) String() string {
	switch a {
	case AlgorithmBBR:
		return "bbr"
	case AlgorithmNewReno:
		return "newreno"
	default:
		return "unknown"
	}
}

// NewController creates a Controller for the given algorithm.
func NewController(alg Algorithm, opts ...Option) (Controller, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt.apply(cfg); err != nil {
			return nil, err
		}
	}

	return newControllerFromConfig(alg, cfg)
}

func newControllerFromConfig(alg Algorithm, cfg *Config) (Controller, error) {
	switch alg {
	case AlgorithmBBR:
		return newBBR(cfg), nil
	case AlgorithmNewReno:
		return newReno(cfg), nil
	default:
		return nil, errUnknownAlgorithm
	}
}

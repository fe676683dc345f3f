// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package congestion

import (
	"math"
	"sync"
)

// RTO constants in milliseconds, per RFC 6298.
const (
	rtoInitial float64 = 3.0 * 1000
	rtoMin     float64 = 1.0 * 1000
	rtoMax     float64 = 60.0 * 1000
	rtoAlpha   float64 = 0.125
	rtoBeta    float64 = 0.25
)

// rtoManager maintains the smoothed RTT, its variance and the derived
// retransmission timeout for an agent.
type rtoManager struct {
	srtt   float64
	rttvar float64
	rto    float64
	mutex  sync.RWMutex
}

func newRTOManager() *rtoManager {
	return &rtoManager{rto: rtoInitial}
}

// setNewRTT folds in a measured RTT in milliseconds and returns the new
// smoothed RTT.
func (m *rtoManager) setNewRTT(rtt float64) float64 {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.srtt == 0 {
		m.srtt = rtt
		m.rttvar = rtt / 2
	} else {
		m.rttvar = (1-rtoBeta)*m.rttvar + rtoBeta*(math.Abs(m.srtt-rtt))
		m.srtt = (1-rtoAlpha)*m.srtt + rtoAlpha*rtt
	}

	m.rto = math.Min(math.Max(m.srtt+4*m.rttvar, rtoMin), rtoMax)

	return m.srtt
}

// getRTO returns the current retransmission timeout in milliseconds.
func (m *rtoManager) getRTO() float64 {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return m.rto
}

// reset discards all measurements.
func (m *rtoManager) reset() {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.srtt = 0
	m.rttvar = 0
	m.rto = rtoInitial
}

// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package congestion

// gainCycleLength is the period of the PROBE_BW pacing-gain cycle.
const gainCycleLength = 8

// pacingGainCycle drives PROBE_BW: one step probing above the estimated
// bandwidth, one step below it to drain the queue the probe built, and six
// steps cruising at the estimate.
var pacingGainCycle = [gainCycleLength]float64{1.25, 0.75, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0} // nolint:gochecknoglobals

// cwndGain is the fixed multiplier applied to the bandwidth-delay product
// when sizing the congestion window, independent of phase.
const cwndGain = 2.0

// gainCycle tracks one connection's position in the pacing-gain cycle. The
// index is per connection so concurrent connections never share a position.
type gainCycle struct {
	index int
}

// next advances the cycle by one step and returns the pacing gain for the
// new position. A fresh cycle therefore yields 0.75 on its first call and
// 1.25 on its eighth.
func (g *gainCycle) next() float64 {
	g.index = (g.index + 1) % gainCycleLength

	return pacingGainCycle[g.index]
}

// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package congestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGainCycle(t *testing.T) {
	t.Run("fresh cycle sequence", func(t *testing.T) {
		var g gainCycle
		expected := []float64{0.75, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.25}

		for i, want := range expected {
			assert.Equal(t, want, g.next(), "step %d", i)
		}
	})

	t.Run("period is exactly eight", func(t *testing.T) {
		var g gainCycle
		var first []float64
		for i := 0; i < gainCycleLength; i++ {
			first = append(first, g.next())
		}

		// Three more full periods repeat the first one.
		for period := 0; period < 3; period++ {
			for i := 0; i < gainCycleLength; i++ {
				assert.Equal(t, first[i], g.next(), "period %d step %d", period, i)
			}
		}
	})

	t.Run("probe gains appear once per period", func(t *testing.T) {
		g := gainCycle{index: 5} // arbitrary starting position

		for period := 0; period < 4; period++ {
			var up, down int
			for i := 0; i < gainCycleLength; i++ {
				switch g.next() {
				case 1.25:
					up++
				case 0.75:
					down++
				}
			}
			assert.Equal(t, 1, up, "period %d should probe up once", period)
			assert.Equal(t, 1, down, "period %d should drain once", period)
		}
	})
}

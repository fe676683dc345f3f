// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package congestion

import (
	"time"

	"github.com/pion/logging"
)

const (
	defaultSegmentSize      = 1228
	defaultProbeRTTInterval = 10 * time.Second
	defaultProbeRTTDuration = 200 * time.Millisecond
	defaultMinPacingDelay   = time.Millisecond
)

// Config collects the knobs shared by all congestion-control strategies.
// Zero values are replaced by defaults; use the With* options to set fields.
type Config struct {
	// Name is used as a prefix in log lines.
	Name string

	// LoggerFactory creates the leveled loggers used by controllers and
	// agents.
	LoggerFactory logging.LoggerFactory

	// Clock supplies the current time. Defaults to the system clock.
	Clock Clock

	// SegmentSize is the sender's maximum segment size in bytes. It is the
	// unit of the congestion-window floor.
	SegmentSize uint32

	// ProbeRTTInterval is how long a BBR controller cruises in PROBE_BW
	// before it schedules an RTT probe.
	ProbeRTTInterval time.Duration

	// ProbeRTTDuration is how long a BBR controller dwells in PROBE_RTT
	// before returning to PROBE_BW.
	ProbeRTTDuration time.Duration

	// MinPacingDelay is the shortest interval the pacer will ask the
	// transport to wait between sends.
	MinPacingDelay time.Duration
}

func defaultConfig() *Config {
	return &Config{
		Name:             "cc",
		LoggerFactory:    logging.NewDefaultLoggerFactory(),
		Clock:            systemClock{},
		SegmentSize:      defaultSegmentSize,
		ProbeRTTInterval: defaultProbeRTTInterval,
		ProbeRTTDuration: defaultProbeRTTDuration,
		MinPacingDelay:   defaultMinPacingDelay,
	}
}

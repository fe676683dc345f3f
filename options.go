// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package congestion

import (
	"time"

	"github.com/pion/logging"
)

// Option configures a Controller or an Agent.
type Option interface {
	apply(*Config) error
}

// optionFunc wraps an apply function.
type optionFunc func(*Config) error

func (o optionFunc) apply(c *Config) error { return o(c) }

// WithName sets the name used in log lines.
func WithName(name string) Option {
	return optionFunc(func(c *Config) error {
		c.Name = name

		return nil
	})
}

// WithLoggerFactory sets the logger factory.
func WithLoggerFactory(loggerFactory logging.LoggerFactory) Option {
	return optionFunc(func(c *Config) error {
		if loggerFactory == nil {
			return errNilLoggerFactory
		}
		c.LoggerFactory = loggerFactory

		return nil
	})
}

// WithClock sets the time source. Tests typically pass a SimulatedClock.
func WithClock(clock Clock) Option {
	return optionFunc(func(c *Config) error {
		if clock == nil {
			return errNilClock
		}
		c.Clock = clock

		return nil
	})
}

// WithSegmentSize sets the maximum segment size in bytes.
// By default this is 1228.
func WithSegmentSize(size uint32) Option {
	return optionFunc(func(c *Config) error {
		if size == 0 {
			return errZeroSegmentSize
		}
		c.SegmentSize = size

		return nil
	})
}

// WithProbeRTTInterval sets the cruising time between RTT probes.
// By default this is 10s.
func WithProbeRTTInterval(interval time.Duration) Option {
	return optionFunc(func(c *Config) error {
		if interval <= 0 {
			return errInvalidProbeRTTInterval
		}
		c.ProbeRTTInterval = interval

		return nil
	})
}

// WithProbeRTTDuration sets the dwell time in PROBE_RTT.
// By default this is 200ms.
func WithProbeRTTDuration(duration time.Duration) Option {
	return optionFunc(func(c *Config) error {
		if duration <= 0 {
			return errInvalidProbeRTTDuration
		}
		c.ProbeRTTDuration = duration

		return nil
	})
}

// WithMinPacingDelay sets the shortest pacing interval.
// By default this is 1ms.
func WithMinPacingDelay(delay time.Duration) Option {
	return optionFunc(func(c *Config) error {
		if delay <= 0 {
			return errInvalidMinPacingDelay
		}
		c.MinPacingDelay = delay

		return nil
	})
}

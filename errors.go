// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package congestion

import (
	"errors"
)

var (
	errNilLoggerFactory = errors.New("loggerFactory must not be nil")
	errNilClock         = errors.New("clock must not be nil")
	errNilController    = errors.New("controller must not be nil")

	// errZeroSegmentSize indicates that the segment size option was set to zero.
	errZeroSegmentSize = errors.New("SegmentSize option cannot be set to zero")

	// errUnknownAlgorithm indicates a request for an algorithm outside the closed set.
	errUnknownAlgorithm = errors.New("unknown congestion-control algorithm")

	// errInvalidProbeRTTInterval indicates the probe interval was set to <= 0.
	errInvalidProbeRTTInterval = errors.New("ProbeRTTInterval was set to <= 0")

	// errInvalidProbeRTTDuration indicates the probe dwell time was set to <= 0.
	errInvalidProbeRTTDuration = errors.New("ProbeRTTDuration was set to <= 0")

	// errInvalidMinPacingDelay indicates the minimum pacing delay was set to <= 0.
	errInvalidMinPacingDelay = errors.New("MinPacingDelay was set to <= 0")
)

// SPDX-License-Identifier: EPL-2.0

package bitstream

import "errors"

var (
	// ErrInsufficientData is returned when fewer bits remain than were
	// requested. The read position is left unchanged.
	ErrInsufficientData = errors.New("bitstream: insufficient data")

	// ErrBitCount is returned when a read asks for fewer than 1 or more
	// than 32 bits at once.
	ErrBitCount = errors.New("bitstream: bit count out of range")
)

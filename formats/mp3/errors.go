// SPDX-License-Identifier: EPL-2.0

package mp3

import "errors"

var (
	ErrNoFrames          = errors.New("no MPEG audio frames found")
	ErrFrameUnavailable  = errors.New("frame unavailable")
	ErrIndexMismatch     = errors.New("index entry does not match stream")
	ErrMalformedFrame    = errors.New("malformed frame")
	ErrReservoirUnderrun = errors.New("bit reservoir underrun")
	ErrUnsupportedLayer  = errors.New("unsupported layer")
	ErrCRCMismatch       = errors.New("frame CRC mismatch")
	ErrIndexNotReady     = errors.New("index not ready")
	ErrStreamClosed      = errors.New("stream closed")
	ErrMalformedIndex    = errors.New("malformed index")
	ErrIndexRange        = errors.New("index value out of range")
)

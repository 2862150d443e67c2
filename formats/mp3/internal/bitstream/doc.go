// SPDX-License-Identifier: EPL-2.0

// Package bitstream reads MSB-first bit fields out of MPEG audio frames.
//
// Reader walks a single byte slice and is used for headers, side
// information and the Layer I/II payload. Reservoir implements the Layer III
// bit reservoir: frame payloads are appended to a circular buffer and each
// frame's main data may start up to 511 bytes before its own payload.
//
// Both types share the same read vocabulary (GetBits, PeekBits, SkipBits,
// RewindBits, BitsRead) and both fail with ErrInsufficientData instead of
// returning garbage when a read would run past the available data.
package bitstream

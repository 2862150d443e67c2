// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"

	"github.com/ik5/mp3seek/internal/bufpool"
)

// Frame is a validated header plus the frame's raw bytes, header included.
// The bytes come from a shared pool; call Release once the frame is no
// longer needed.
type Frame struct {
	Header FrameHeader
	data   []byte
}

func newFrame(h FrameHeader) *Frame {
	return &Frame{Header: h, data: bufpool.Get(h.FrameLength)}
}

// NewFrame copies b into a pooled frame after validating its header and
// length.
func NewFrame(b []byte) (*Frame, error) {
	h, ok := ParseHeader(b)
	if !ok {
		return nil, ErrMalformedFrame
	}
	if len(b) < h.FrameLength {
		return nil, ErrFrameUnavailable
	}
	f := newFrame(h)
	copy(f.data, b)
	return f, nil
}

// Bytes returns the raw frame bytes. The slice is only valid until Release.
func (f *Frame) Bytes() []byte { return f.data }

// Payload returns the bytes following the header and optional CRC word.
func (f *Frame) Payload() []byte { return f.data[f.Header.DataOffset():] }

// Release returns the frame's buffer to the pool. It is safe to call more
// than once.
func (f *Frame) Release() {
	if f == nil || f.data == nil {
		return
	}
	bufpool.Put(f.data)
	f.data = nil
}

// Equal reports whether both frames have the same header and bytes.
func (f *Frame) Equal(o *Frame) bool {
	if f == nil || o == nil {
		return f == o
	}
	return f.Header == o.Header && bytes.Equal(f.data, o.data)
}

// CheckCRC verifies the CRC-16 of a protected Layer III frame. Frames
// without CRC, and Layer I/II frames whose protected range depends on the
// bit allocation, always pass.
func (f *Frame) CheckCRC() bool {
	h := f.Header
	if !h.HasCRC || h.Layer != LayerIII {
		return true
	}
	side := h.SideInfoSize()
	if len(f.data) < HeaderSize+2+side {
		return false
	}
	crc := crc16Update(0xFFFF, f.data[2:4])
	crc = crc16Update(crc, f.data[6:6+side])
	return crc == uint16(f.data[4])<<8|uint16(f.data[5])
}

var crc16Table = func() (t [256]uint16) {
	for i := range t {
		c := uint16(i) << 8
		for range 8 {
			if c&0x8000 != 0 {
				c = c<<1 ^ 0x8005
			} else {
				c <<= 1
			}
		}
		t[i] = c
	}
	return t
}()

func crc16Update(crc uint16, p []byte) uint16 {
	for _, b := range p {
		crc = crc<<8 ^ crc16Table[byte(crc>>8)^b]
	}
	return crc
}

// SPDX-License-Identifier: EPL-2.0

// Package audiotest builds synthetic MPEG audio streams for tests: headers,
// silent frames, hand-made payloads, Xing and ID3v2 tags.
package audiotest

// Raw header field values.
const (
	MPEG25 = 0
	MPEG2  = 2
	MPEG1  = 3

	Layer3 = 1
	Layer2 = 2
	Layer1 = 3

	Stereo      = 0
	JointStereo = 1
	DualChannel = 2
	Mono        = 3
)

var bitratesKbps = [2][3][15]int{
	{ // MPEG-1: Layer I, II, III
		{0, 32, 64, 96, 128, 160, 192, 224, 256, 288, 320, 352, 384, 416, 448},
		{0, 32, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320, 384},
		{0, 32, 40, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320},
	},
	{ // MPEG-2 and 2.5
		{0, 32, 48, 56, 64, 80, 96, 112, 128, 144, 160, 176, 192, 224, 256},
		{0, 8, 16, 24, 32, 40, 48, 56, 64, 80, 96, 112, 128, 144, 160},
		{0, 8, 16, 24, 32, 40, 48, 56, 64, 80, 96, 112, 128, 144, 160},
	},
}

var baseRates = [3]int{44100, 48000, 32000}

// Spec describes the header of a synthetic frame.
type Spec struct {
	Version         int
	Layer           int
	BitrateIndex    int
	SampleRateIndex int
	Mode            int
	ModeExt         int
	Padding         bool
	CRC             bool
}

// CBR128 is MPEG-1 Layer III, 128 kbit/s, 44.1 kHz, the given mode.
func CBR128(mode int) Spec {
	return Spec{Version: MPEG1, Layer: Layer3, BitrateIndex: 9, Mode: mode}
}

func (s Spec) lsf() bool { return s.Version != MPEG1 }

// Bitrate returns the bit rate in bits per second.
func (s Spec) Bitrate() int {
	v := 0
	if s.lsf() {
		v = 1
	}
	return bitratesKbps[v][3-s.Layer][s.BitrateIndex] * 1000
}

// SampleRate returns the sample rate in Hz.
func (s Spec) SampleRate() int {
	r := baseRates[s.SampleRateIndex]
	switch s.Version {
	case MPEG2:
		r /= 2
	case MPEG25:
		r /= 4
	}
	return r
}

// Samples returns the samples per channel in one frame.
func (s Spec) Samples() int {
	switch {
	case s.Layer == Layer1:
		return 384
	case s.Layer == Layer3 && s.lsf():
		return 576
	}
	return 1152
}

// Channels returns 1 for mono and 2 otherwise.
func (s Spec) Channels() int {
	if s.Mode == Mono {
		return 1
	}
	return 2
}

// FrameLength returns the frame size in bytes, header included.
func (s Spec) FrameLength() int {
	pad := 0
	if s.Padding {
		pad = 1
	}
	if s.Layer == Layer1 {
		return (12*s.Bitrate()/s.SampleRate() + pad) * 4
	}
	return s.Samples()/8*s.Bitrate()/s.SampleRate() + pad
}

// SideInfoSize returns the Layer III side information size in bytes.
func (s Spec) SideInfoSize() int {
	switch {
	case !s.lsf() && s.Mode == Mono:
		return 17
	case !s.lsf():
		return 32
	case s.Mode == Mono:
		return 9
	}
	return 17
}

// DataOffset returns the offset of the first byte after the header and
// optional CRC word.
func (s Spec) DataOffset() int {
	if s.CRC {
		return 6
	}
	return 4
}

// Header returns the four header bytes.
func (s Spec) Header() [4]byte {
	var h [4]byte
	h[0] = 0xFF
	h[1] = 0xE0 | byte(s.Version)<<3 | byte(s.Layer)<<1
	if !s.CRC {
		h[1] |= 1
	}
	h[2] = byte(s.BitrateIndex)<<4 | byte(s.SampleRateIndex)<<2
	if s.Padding {
		h[2] |= 2
	}
	h[3] = byte(s.Mode)<<6 | byte(s.ModeExt)<<4
	return h
}

// Frame returns a complete frame: header, a zero CRC word when enabled,
// then payload, zero-padded or cut to the frame length.
func (s Spec) Frame(payload []byte) []byte {
	b := make([]byte, s.FrameLength())
	h := s.Header()
	copy(b, h[:])
	copy(b[s.DataOffset():], payload)
	return b
}

// Silent returns a frame that decodes to silence in every layer: all
// allocations, side information and main data are zero.
func (s Spec) Silent() []byte { return s.Frame(nil) }

// Stream concatenates n silent frames.
func Stream(s Spec, n int) []byte {
	out := make([]byte, 0, n*s.FrameLength())
	for range n {
		out = append(out, s.Silent()...)
	}
	return out
}

// Xing returns an Info/Xing tag frame announcing frames audio frames. With
// lame set it carries a LAME extension with the given delay and padding.
func (s Spec) Xing(frames int, lame bool, delay, padding int) []byte {
	b := s.Silent()
	at := s.DataOffset() + s.SideInfoSize()
	copy(b[at:], "Xing")
	b[at+7] = 0x01 // frames field present
	putBE32(b[at+8:], uint32(frames))
	if lame {
		l := at + 12
		copy(b[l:], "LAME3.100")
		d := l + 9 + 12
		b[d] = byte(delay >> 4)
		b[d+1] = byte(delay<<4) | byte(padding>>8)
		b[d+2] = byte(padding)
	}
	return b
}

// ID3v2 returns an ID3v2.4 tag with a body of size zero bytes. The body is
// filled with 0xFF so a scanner that does not skip the tag would find false
// sync words in it.
func ID3v2(size int) []byte {
	b := make([]byte, 10+size)
	copy(b, "ID3")
	b[3] = 4
	b[6] = byte(size >> 21 & 0x7F)
	b[7] = byte(size >> 14 & 0x7F)
	b[8] = byte(size >> 7 & 0x7F)
	b[9] = byte(size & 0x7F)
	for i := 10; i < len(b); i++ {
		b[i] = 0xFF
	}
	return b
}

func putBE32(b []byte, v uint32) {
	b[0], b[1], b[2], b[3] = byte(v>>24), byte(v>>16), byte(v>>8), byte(v)
}

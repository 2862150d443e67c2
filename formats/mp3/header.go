// SPDX-License-Identifier: EPL-2.0

package mp3

import "fmt"

// HeaderSize is the size of an MPEG audio frame header in bytes.
const HeaderSize = 4

// Version is the raw 2-bit MPEG version field.
type Version uint8

const (
	MPEG25          Version = 0
	versionReserved Version = 1
	MPEG2           Version = 2
	MPEG1           Version = 3
)

func (v Version) String() string {
	switch v {
	case MPEG1:
		return "MPEG-1"
	case MPEG2:
		return "MPEG-2"
	case MPEG25:
		return "MPEG-2.5"
	}
	return "reserved"
}

// Layer is the raw 2-bit layer field.
type Layer uint8

const (
	layerReserved Layer = 0
	LayerIII      Layer = 1
	LayerII       Layer = 2
	LayerI        Layer = 3
)

func (l Layer) String() string {
	switch l {
	case LayerI:
		return "Layer I"
	case LayerII:
		return "Layer II"
	case LayerIII:
		return "Layer III"
	}
	return "reserved"
}

// ChannelMode is the raw 2-bit mode field.
type ChannelMode uint8

const (
	Stereo ChannelMode = iota
	JointStereo
	DualChannel
	Mono
)

func (m ChannelMode) String() string {
	return [...]string{"stereo", "joint stereo", "dual channel", "mono"}[m&3]
}

// FrameHeader is a validated MPEG audio frame header together with the
// values derived from it.
type FrameHeader struct {
	Version          Version
	Layer            Layer
	HasCRC           bool
	BitrateIndex     int
	SampleRateIndex  int
	Padding          bool
	Private          bool
	ChannelMode      ChannelMode
	ChannelExtension int
	Copyright        bool
	Original         bool
	Emphasis         int

	SampleRate  int // Hz
	BitRate     int // bit/s
	SampleCount int // samples per channel
	FrameLength int // bytes, header included
}

// ParseHeader decodes the first four bytes of b. It reports false when the
// bytes are not a usable frame header: no sync word, a reserved version,
// layer, bitrate or sample rate, free format, or a mode extension outside
// joint stereo.
func ParseHeader(b []byte) (FrameHeader, bool) {
	if len(b) < HeaderSize || b[0] != 0xFF || b[1]&0xE0 != 0xE0 {
		return FrameHeader{}, false
	}

	h := FrameHeader{
		Version:          Version(b[1] >> 3 & 3),
		Layer:            Layer(b[1] >> 1 & 3),
		HasCRC:           b[1]&1 == 0,
		BitrateIndex:     int(b[2] >> 4),
		SampleRateIndex:  int(b[2] >> 2 & 3),
		Padding:          b[2]&2 != 0,
		Private:          b[2]&1 != 0,
		ChannelMode:      ChannelMode(b[3] >> 6),
		ChannelExtension: int(b[3] >> 4 & 3),
		Copyright:        b[3]&8 != 0,
		Original:         b[3]&4 != 0,
		Emphasis:         int(b[3] & 3),
	}

	switch {
	case h.Version == versionReserved,
		h.Layer == layerReserved,
		h.BitrateIndex == 0 || h.BitrateIndex == 15,
		h.SampleRateIndex == 3,
		h.ChannelExtension != 0 && h.ChannelMode != JointStereo:
		return FrameHeader{}, false
	}

	h.derive()
	return h, true
}

func (h *FrameHeader) derive() {
	class, li := h.Version.class(), h.Layer.index()
	h.SampleRate = sampleRates[h.Version][h.SampleRateIndex]
	h.BitRate = bitrates[class][li][h.BitrateIndex] * 1000
	h.SampleCount = samplesPerFrame[class][li]

	pad := 0
	if h.Padding {
		pad = 1
	}
	if h.Layer == LayerI {
		h.FrameLength = (12*h.BitRate/h.SampleRate + pad) * 4
	} else {
		h.FrameLength = h.SampleCount/8*h.BitRate/h.SampleRate + pad
	}
}

// Bytes encodes the header fields back into their four-byte form.
func (h FrameHeader) Bytes() [HeaderSize]byte {
	var b [HeaderSize]byte
	b[0] = 0xFF
	b[1] = 0xE0 | byte(h.Version&3)<<3 | byte(h.Layer&3)<<1 | bit(!h.HasCRC)
	b[2] = byte(h.BitrateIndex&15)<<4 | byte(h.SampleRateIndex&3)<<2 | bit(h.Padding)<<1 | bit(h.Private)
	b[3] = byte(h.ChannelMode&3)<<6 | byte(h.ChannelExtension&3)<<4 |
		bit(h.Copyright)<<3 | bit(h.Original)<<2 | byte(h.Emphasis&3)
	return b
}

func bit(b bool) byte {
	if b {
		return 1
	}
	return 0
}

// Channels returns 1 for mono frames and 2 otherwise.
func (h FrameHeader) Channels() int {
	if h.ChannelMode == Mono {
		return 1
	}
	return 2
}

// LSF reports whether the frame uses the MPEG-2/2.5 low sampling frequency
// extensions.
func (h FrameHeader) LSF() bool { return h.Version != MPEG1 }

// SideInfoSize returns the Layer III side information size in bytes, or 0
// for the other layers.
func (h FrameHeader) SideInfoSize() int {
	if h.Layer != LayerIII {
		return 0
	}
	switch {
	case !h.LSF() && h.ChannelMode == Mono:
		return 17
	case !h.LSF():
		return 32
	case h.ChannelMode == Mono:
		return 9
	}
	return 17
}

// DataOffset returns the offset of the first byte after the header and the
// optional CRC word.
func (h FrameHeader) DataOffset() int {
	if h.HasCRC {
		return HeaderSize + 2
	}
	return HeaderSize
}

// SameStream reports whether o describes frames of the same elementary
// stream: identical version, layer and sample rate.
func (h FrameHeader) SameStream(o FrameHeader) bool {
	return h.Version == o.Version && h.Layer == o.Layer && h.SampleRate == o.SampleRate
}

func (h FrameHeader) String() string {
	return fmt.Sprintf("%s %s %d Hz %d kbit/s %s, %d bytes",
		h.Version, h.Layer, h.SampleRate, h.BitRate/1000, h.ChannelMode, h.FrameLength)
}

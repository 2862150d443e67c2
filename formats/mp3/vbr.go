// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"strings"
)

const (
	xingFrames  = 0x1
	xingBytes   = 0x2
	xingTOC     = 0x4
	xingQuality = 0x8
)

// VBRInfo is the content of a Xing or Info tag, optionally extended by a
// LAME tag, found in the first frame of a stream.
type VBRInfo struct {
	// Xing is true for a "Xing" tag (VBR) and false for "Info" (CBR).
	Xing bool

	Frames  int // audio frames, tag frame excluded; 0 if absent
	Bytes   int // stream bytes; 0 if absent
	Quality int // 0 (best) to 100; -1 if absent
	TOC     []byte

	Encoder string // e.g. "LAME3.100"; empty without a LAME tag
	Delay   int    // encoder delay in samples
	Padding int    // encoder padding in samples

	samplesPerFrame int
}

// TotalSamples returns the per-channel sample count implied by the frame
// count, or -1 when the tag does not carry one.
func (v *VBRInfo) TotalSamples() int64 {
	if v == nil || v.Frames == 0 {
		return -1
	}
	return int64(v.Frames) * int64(v.samplesPerFrame)
}

// parseVBRInfo looks for a Xing/Info tag right after the side information
// of f. It returns nil when there is none.
func parseVBRInfo(f *Frame) *VBRInfo {
	h := f.Header
	if h.Layer != LayerIII {
		return nil
	}
	b := f.Bytes()
	pos := h.DataOffset() + h.SideInfoSize()
	if len(b) < pos+8 {
		return nil
	}
	tag := string(b[pos : pos+4])
	if tag != "Xing" && tag != "Info" {
		return nil
	}

	info := &VBRInfo{Xing: tag == "Xing", Quality: -1, samplesPerFrame: h.SampleCount}
	flags := binary.BigEndian.Uint32(b[pos+4:])
	pos += 8

	field := func(n int) []byte {
		if len(b) < pos+n {
			return nil
		}
		v := b[pos : pos+n]
		pos += n
		return v
	}
	if flags&xingFrames != 0 {
		v := field(4)
		if v == nil {
			return info
		}
		info.Frames = int(binary.BigEndian.Uint32(v))
	}
	if flags&xingBytes != 0 {
		v := field(4)
		if v == nil {
			return info
		}
		info.Bytes = int(binary.BigEndian.Uint32(v))
	}
	if flags&xingTOC != 0 {
		v := field(100)
		if v == nil {
			return info
		}
		info.TOC = append([]byte(nil), v...)
	}
	if flags&xingQuality != 0 {
		v := field(4)
		if v == nil {
			return info
		}
		info.Quality = int(binary.BigEndian.Uint32(v))
	}

	// LAME extension: 9-byte version, 12 bytes of encoder settings, then
	// 12-bit delay and 12-bit padding.
	enc := field(9)
	if enc == nil || !isLAMETag(enc) {
		return info
	}
	info.Encoder = strings.TrimRight(string(enc), "\x00 ")
	pos += 12
	if v := field(3); v != nil {
		info.Delay = int(v[0])<<4 | int(v[1])>>4
		info.Padding = int(v[1]&0x0F)<<8 | int(v[2])
	}
	return info
}

func isLAMETag(b []byte) bool {
	switch string(b[:4]) {
	case "LAME", "L3.9", "Gogo", "GOGO", "Lavf", "Lavc":
		return true
	}
	return false
}

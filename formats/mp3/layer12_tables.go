// SPDX-License-Identifier: EPL-2.0

package mp3

import "math"

// quantClass describes one Layer II quantizer: the number of levels, whether
// three samples share one grouped code word, and the code word size.
type quantClass struct {
	levels  int
	grouped bool
	bits    int
}

// layer2Quant is ISO/IEC 11172-3 table B.4; entry 0 means "no allocation".
var layer2Quant = [18]quantClass{
	{},
	{3, true, 5},
	{5, true, 7},
	{7, false, 3},
	{9, true, 10},
	{15, false, 4},
	{31, false, 5},
	{63, false, 6},
	{127, false, 7},
	{255, false, 8},
	{511, false, 9},
	{1023, false, 10},
	{2047, false, 11},
	{4095, false, 12},
	{8191, false, 13},
	{16383, false, 14},
	{32767, false, 15},
	{65535, false, 16},
}

// layer2Rows maps an allocation code to a layer2Quant entry, one row per
// distinct subband class of the allocation tables.
var layer2Rows = [6][]uint8{
	{0, 1, 2, 17},
	{0, 1, 2, 3, 4, 5, 6, 17},
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 17},
	{0, 1, 3, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17},
	{0, 1, 2, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16},
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
}

const (
	allocLowRate = iota
	allocHighRate
	allocLSF
)

// layer2Subbands lists, per allocation table, each subband's allocation
// field width (high nibble) and layer2Rows row (low nibble).
var layer2Subbands = [3][]uint8{
	allocLowRate: {
		0x44, 0x44,
		0x34, 0x34, 0x34, 0x34, 0x34, 0x34, 0x34, 0x34, 0x34, 0x34,
	},
	allocHighRate: {
		0x43, 0x43, 0x43,
		0x42, 0x42, 0x42, 0x42, 0x42, 0x42, 0x42, 0x42,
		0x31, 0x31, 0x31, 0x31, 0x31, 0x31, 0x31, 0x31, 0x31, 0x31, 0x31, 0x31,
		0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20,
	},
	allocLSF: {
		0x45, 0x45, 0x45, 0x45,
		0x34, 0x34, 0x34, 0x34, 0x34, 0x34, 0x34,
		0x24, 0x24, 0x24, 0x24, 0x24, 0x24, 0x24, 0x24, 0x24, 0x24,
		0x24, 0x24, 0x24, 0x24, 0x24, 0x24, 0x24, 0x24, 0x24,
	},
}

// layer2RateClass buckets the MPEG-1 bitrate index (minus one) by bitrate
// per channel: 0 is up to 48 kbit/s, 1 is 56–80, 2 is 96 and above.
var layer2RateClass = [2][14]uint8{
	{0, 0, 1, 1, 1, 2, 2, 2, 2, 2, 2, 2, 2, 2}, // mono
	{0, 0, 0, 0, 0, 0, 1, 1, 1, 2, 2, 2, 2, 2}, // two channels
}

type allocChoice struct {
	table   int
	sblimit int
}

// layer2Choice picks table B.2a–d by rate class and sample rate index.
var layer2Choice = [3][3]allocChoice{
	{{allocLowRate, 8}, {allocLowRate, 8}, {allocLowRate, 12}},
	{{allocHighRate, 27}, {allocHighRate, 27}, {allocHighRate, 27}},
	{{allocHighRate, 30}, {allocHighRate, 27}, {allocHighRate, 30}},
}

func layer2Allocation(h FrameHeader) allocChoice {
	if h.LSF() {
		return allocChoice{allocLSF, 30}
	}
	ch := 1
	if h.ChannelMode == Mono {
		ch = 0
	}
	class := layer2RateClass[ch][h.BitrateIndex-1]
	return layer2Choice[class][h.SampleRateIndex]
}

// scaleFactors[i] = 2^(1 - i/3), ISO/IEC 11172-3 table B.1. Index 63 is
// reserved and decodes as silence.
var scaleFactors = func() (t [64]float32) {
	for i := range 63 {
		t[i] = float32(math.Pow(2, 1-float64(i)/3))
	}
	return t
}()

// requantize maps a code of a quantizer with the given number of levels
// onto (-1, 1).
func requantize(code, levels int) float32 {
	return float32(2*code-(levels-1)) / float32(levels)
}

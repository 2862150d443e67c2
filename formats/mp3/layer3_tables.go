// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"math"
	"sync"
)

const granuleLines = 576

// sfbLong and sfbShort hold scalefactor band boundaries, indexed by
// version offset (MPEG-1 0, MPEG-2 3, MPEG-2.5 6) plus the sample rate
// index. MPEG-2.5 at 11.025 and 12 kHz shares the 16 kHz layout.
var sfbLong = [9][23]int{
	{0, 4, 8, 12, 16, 20, 24, 30, 36, 44, 52, 62, 74, 90, 110, 134, 162, 196, 238, 288, 342, 418, 576},
	{0, 4, 8, 12, 16, 20, 24, 30, 36, 42, 50, 60, 72, 88, 106, 128, 156, 190, 230, 276, 330, 384, 576},
	{0, 4, 8, 12, 16, 20, 24, 30, 36, 44, 54, 66, 82, 102, 126, 156, 194, 240, 296, 364, 448, 550, 576},
	{0, 6, 12, 18, 24, 30, 36, 44, 54, 66, 80, 96, 116, 140, 168, 200, 238, 284, 336, 396, 464, 522, 576},
	{0, 6, 12, 18, 24, 30, 36, 44, 54, 66, 80, 96, 114, 136, 162, 194, 232, 278, 332, 394, 464, 540, 576},
	{0, 6, 12, 18, 24, 30, 36, 44, 54, 66, 80, 96, 116, 140, 168, 200, 238, 284, 336, 396, 464, 522, 576},
	{0, 6, 12, 18, 24, 30, 36, 44, 54, 66, 80, 96, 116, 140, 168, 200, 238, 284, 336, 396, 464, 522, 576},
	{0, 6, 12, 18, 24, 30, 36, 44, 54, 66, 80, 96, 116, 140, 168, 200, 238, 284, 336, 396, 464, 522, 576},
	{0, 12, 24, 36, 48, 60, 72, 88, 108, 132, 160, 192, 232, 280, 336, 400, 476, 566, 568, 570, 572, 574, 576},
}

var sfbShort = [9][14]int{
	{0, 4, 8, 12, 16, 22, 30, 40, 52, 66, 84, 106, 136, 192},
	{0, 4, 8, 12, 16, 22, 28, 38, 50, 64, 80, 100, 126, 192},
	{0, 4, 8, 12, 16, 22, 30, 42, 58, 78, 104, 138, 180, 192},
	{0, 4, 8, 12, 18, 24, 32, 42, 56, 74, 100, 132, 174, 192},
	{0, 4, 8, 12, 18, 26, 36, 48, 62, 80, 104, 136, 180, 192},
	{0, 4, 8, 12, 18, 26, 36, 48, 62, 80, 104, 134, 174, 192},
	{0, 4, 8, 12, 18, 26, 36, 48, 62, 80, 104, 134, 174, 192},
	{0, 4, 8, 12, 18, 26, 36, 48, 62, 80, 104, 134, 174, 192},
	{0, 8, 16, 24, 36, 52, 72, 96, 124, 160, 162, 164, 166, 192},
}

func bandTable(h FrameHeader) int {
	switch h.Version {
	case MPEG2:
		return 3 + h.SampleRateIndex
	case MPEG25:
		return 6 + h.SampleRateIndex
	}
	return h.SampleRateIndex
}

// MPEG-1 scalefac_compress → (slen1, slen2).
var slen1 = [16]int{0, 0, 0, 0, 3, 1, 1, 1, 2, 2, 2, 3, 3, 3, 4, 4}
var slen2 = [16]int{0, 1, 2, 3, 0, 1, 2, 3, 1, 2, 3, 1, 2, 3, 2, 3}

// scfsiBands are the long-band groups that scfsi bits refer to.
var scfsiBands = [5]int{0, 6, 11, 16, 21}

var pretab = [22]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 3, 3, 3, 2, 0}

// lsfPartitions is ISO/IEC 13818-3 table nr_of_sfb_block, indexed by
// slen table, block kind (long, short, mixed) and partition.
var lsfPartitions = [6][3][4]int{
	{{6, 5, 5, 5}, {9, 9, 9, 9}, {6, 9, 9, 9}},
	{{6, 5, 7, 3}, {9, 9, 12, 6}, {6, 9, 12, 6}},
	{{11, 10, 0, 0}, {18, 18, 0, 0}, {15, 18, 0, 0}},
	{{7, 7, 7, 0}, {12, 12, 12, 0}, {6, 15, 12, 0}},
	{{6, 6, 6, 3}, {12, 9, 9, 6}, {6, 12, 9, 6}},
	{{8, 8, 5, 0}, {15, 12, 9, 0}, {6, 18, 9, 0}},
}

// Alias reduction butterflies.
var aliasCS, aliasCA [8]float32

// IMDCT kernels and windows. imdctWindow is indexed by block type; the
// short window is applied per 12-point transform.
var (
	imdctLong   [36][18]float32
	imdctShort  [12][6]float32
	imdctWindow [4][36]float32
	shortWindow [12]float32
)

// MPEG-1 intensity stereo ratios for is_pos 0..6: left and right gains.
var isRatio [7][2]float32

func init() {
	ci := [8]float64{-0.6, -0.535, -0.33, -0.185, -0.095, -0.041, -0.0142, -0.0037}
	for i, c := range ci {
		sq := math.Sqrt(1 + c*c)
		aliasCS[i] = float32(1 / sq)
		aliasCA[i] = float32(c / sq)
	}

	for i := range 36 {
		for k := range 18 {
			imdctLong[i][k] = float32(math.Cos(math.Pi / 72 * float64((2*i+1+18)*(2*k+1))))
		}
	}
	for i := range 12 {
		for k := range 6 {
			imdctShort[i][k] = float32(math.Cos(math.Pi / 24 * float64((2*i+1+6)*(2*k+1))))
		}
		shortWindow[i] = float32(math.Sin(math.Pi / 12 * (float64(i) + 0.5)))
	}

	for i := range 36 {
		imdctWindow[0][i] = float32(math.Sin(math.Pi / 36 * (float64(i) + 0.5)))
	}
	for i := range 18 {
		imdctWindow[1][i] = imdctWindow[0][i]
		imdctWindow[3][i+18] = imdctWindow[0][i+18]
	}
	for i := 18; i < 24; i++ {
		imdctWindow[1][i] = 1
	}
	for i := 24; i < 30; i++ {
		imdctWindow[1][i] = float32(math.Sin(math.Pi / 12 * (float64(i-18) + 0.5)))
	}
	for i := 6; i < 12; i++ {
		imdctWindow[3][i] = float32(math.Sin(math.Pi / 12 * (float64(i-6) + 0.5)))
	}
	for i := 12; i < 18; i++ {
		imdctWindow[3][i] = 1
	}

	for p := range 7 {
		if p == 6 {
			isRatio[p] = [2]float32{1, 0}
			continue
		}
		k := math.Tan(float64(p) * math.Pi / 12)
		isRatio[p] = [2]float32{float32(k / (1 + k)), float32(1 / (1 + k))}
	}
}

// pow43 returns |v|^(4/3) for the Huffman magnitudes 0..8206.
var pow43 = sync.OnceValue(func() []float32 {
	t := make([]float32, 8207)
	for i := range t {
		t[i] = float32(math.Pow(float64(i), 4.0/3.0))
	}
	return t
})

// SPDX-License-Identifier: EPL-2.0

package mp3

// bitrates in kbit/s, indexed by [version class][layer index][bitrate index].
// Version class 0 is MPEG-1, 1 is MPEG-2 and MPEG-2.5. Layer index 0 is
// Layer I. Index 0 is free format.
var bitrates = [2][3][15]int{
	{
		{0, 32, 64, 96, 128, 160, 192, 224, 256, 288, 320, 352, 384, 416, 448},
		{0, 32, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320, 384},
		{0, 32, 40, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320},
	},
	{
		{0, 32, 48, 56, 64, 80, 96, 112, 128, 144, 160, 176, 192, 224, 256},
		{0, 8, 16, 24, 32, 40, 48, 56, 64, 80, 96, 112, 128, 144, 160},
		{0, 8, 16, 24, 32, 40, 48, 56, 64, 80, 96, 112, 128, 144, 160},
	},
}

// sampleRates in Hz, indexed by the raw version field.
var sampleRates = [4][3]int{
	MPEG25: {11025, 12000, 8000},
	MPEG2:  {22050, 24000, 16000},
	MPEG1:  {44100, 48000, 32000},
}

// samplesPerFrame indexed by [version class][layer index].
var samplesPerFrame = [2][3]int{
	{384, 1152, 1152},
	{384, 1152, 576},
}

func (v Version) class() int {
	if v == MPEG1 {
		return 0
	}
	return 1
}

func (l Layer) index() int { return int(LayerI - l) }

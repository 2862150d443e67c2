// SPDX-License-Identifier: EPL-2.0

package mp3

import "github.com/ik5/mp3seek/formats/mp3/internal/synth"

// maxFrameSamples is the largest number of samples per channel in a frame.
const maxFrameSamples = 1152

type pcmScratch [2][maxFrameSamples]float32

// layerDecoder turns one frame into PCM in the scratch buffers. It returns
// the number of samples per output channel and the number of output
// channels.
type layerDecoder interface {
	decode(f *Frame, out *pcmScratch) (n, channels int, err error)
	resetForSeek()
	base() *layerBase
}

// layerBase owns what all layers share: the synthesis filterbank and the
// rendering of coded channels into output channels.
type layerBase struct {
	fb     synth.Filterbank
	stereo StereoMode
}

func (b *layerBase) outChannels(coded int) int {
	if coded == 2 && b.stereo == StereoBoth {
		return 2
	}
	return 1
}

// synthesize renders one block of 32 subband samples per coded channel into
// out at sample offset at. Every coded channel goes through its own
// filterbank history whatever the stereo mode, so switching modes between
// frames never windows one channel against another's history.
func (b *layerBase) synthesize(blk *[2][synth.Bands]float32, coded int, out *pcmScratch, at int) {
	var pcm [2][synth.Bands]float32
	for ch := range coded {
		b.fb.Synthesize(ch, &blk[ch], &pcm[ch])
	}

	dst := out[0][at : at+synth.Bands]
	switch {
	case coded == 1, b.stereo == StereoLeft:
		copy(dst, pcm[0][:])
	case b.stereo == StereoRight:
		copy(dst, pcm[1][:])
	case b.stereo == StereoDownmix:
		for i := range dst {
			dst[i] = (pcm[0][i] + pcm[1][i]) * 0.5
		}
	default:
		copy(dst, pcm[0][:])
		copy(out[1][at:at+synth.Bands], pcm[1][:])
	}
}

func (b *layerBase) resetForSeek() { b.fb.Reset() }

func (b *layerBase) base() *layerBase { return b }

// SPDX-License-Identifier: EPL-2.0

package synth

import "math"

// Bands is the number of subbands per block.
const Bands = 32

const (
	historyLen  = 1024
	historyMask = 511
)

type channelState struct {
	history [historyLen]float32
	offset  int
}

// Filterbank holds the per-channel synthesis history. Channels are
// allocated on first use. A Filterbank is not safe for concurrent use.
type Filterbank struct {
	channels []*channelState
	eq       *[Bands]float32
}

// SetEqualizer sets per-subband gains in decibels. Missing trailing bands
// stay at 0 dB; an empty or nil slice disables the equalizer.
func (f *Filterbank) SetEqualizer(db []float32) {
	if len(db) == 0 {
		f.eq = nil
		return
	}
	var eq [Bands]float32
	for i := range eq {
		eq[i] = 1
		if i < len(db) {
			eq[i] = float32(math.Pow(2, float64(db[i])/6))
		}
	}
	f.eq = &eq
}

// Reset clears the history of every channel.
func (f *Filterbank) Reset() {
	for _, c := range f.channels {
		if c != nil {
			*c = channelState{}
		}
	}
}

func (f *Filterbank) channel(ch int) *channelState {
	for len(f.channels) <= ch {
		f.channels = append(f.channels, nil)
	}
	if f.channels[ch] == nil {
		f.channels[ch] = &channelState{}
	}
	return f.channels[ch]
}

// Synthesize converts one block of subband samples for channel ch into 32
// PCM samples.
func (f *Filterbank) Synthesize(ch int, in, out *[Bands]float32) {
	c := f.channel(ch)

	x := *in
	if f.eq != nil {
		for i := range x {
			x[i] *= f.eq[i]
		}
	}

	c.offset = (c.offset - Bands) & historyMask
	dst := c.history[c.offset : c.offset+Bands]
	dct32(&x, dst)
	copy(c.history[c.offset+512:c.offset+512+Bands], dst)

	blocks := c.history[c.offset : c.offset+512]
	if wide {
		windowWide(blocks, out)
	} else {
		windowScalar(blocks, out)
	}
}

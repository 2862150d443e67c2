// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/ik5/mp3seek/internal/bufpool"
	"github.com/ik5/mp3seek/utils"
)

// PCM is one decoded frame as interleaved little-endian float32 samples.
// The buffer is pooled; call Release when done with it.
type PCM struct {
	Channels   int
	Samples    int // per channel
	SampleRate int

	buf []byte
}

// Bytes returns Samples*Channels*4 bytes of interleaved float32 samples.
func (p *PCM) Bytes() []byte { return p.buf }

// Release hands the buffer back to the pool. It is safe to call more than
// once.
func (p *PCM) Release() {
	if p == nil || p.buf == nil {
		return
	}
	bufpool.Put(p.buf)
	p.buf = nil
}

// FrameDecoder decodes frames of one stream in order. Layer decoders are
// created on first use and keep the state that carries between frames; call
// Reset whenever the next frame does not follow the previous one.
//
// A FrameDecoder is not safe for concurrent use.
type FrameDecoder struct {
	log      *slog.Logger
	stereo   StereoMode
	eq       []float32
	checkCRC bool

	layers  [4]layerDecoder
	scratch pcmScratch
	inter   [2 * maxFrameSamples]float32
}

// NewFrameDecoder returns a decoder configured by WithStereoMode,
// WithEqualizer, WithCRCCheck and WithLogger.
func NewFrameDecoder(opts ...Option) *FrameDecoder {
	c := newConfig(opts)
	return &FrameDecoder{
		log:      c.logger,
		stereo:   c.stereo,
		eq:       c.eq,
		checkCRC: c.checkCRC,
	}
}

func (d *FrameDecoder) layer(l Layer) (layerDecoder, error) {
	if l != LayerI && l != LayerII && l != LayerIII {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedLayer, l)
	}
	if d.layers[l] != nil {
		return d.layers[l], nil
	}

	var ld layerDecoder
	if l == LayerIII {
		ld = newLayer3Decoder(d.stereo)
	} else {
		ld = newLayer12Decoder(l, d.stereo)
	}
	ld.base().fb.SetEqualizer(d.eq)
	d.layers[l] = ld
	d.log.Debug("layer decoder created", "layer", l.String())
	return ld, nil
}

func (d *FrameDecoder) run(f *Frame) (int, int, error) {
	if f == nil || f.data == nil {
		return 0, 0, ErrFrameUnavailable
	}
	ld, err := d.layer(f.Header.Layer)
	if err != nil {
		return 0, 0, err
	}
	if d.checkCRC && !f.CheckCRC() {
		return 0, 0, ErrCRCMismatch
	}
	return ld.decode(f, &d.scratch)
}

// Decode decodes f into a pooled PCM buffer.
func (d *FrameDecoder) Decode(f *Frame) (*PCM, error) {
	n, nch, err := d.run(f)
	if err != nil {
		return nil, err
	}

	d.interleave(d.inter[:], n, nch)
	p := &PCM{Channels: nch, Samples: n, SampleRate: f.Header.SampleRate, buf: bufpool.Get(n * nch * 4)}
	utils.PutFloat32s(p.buf, d.inter[:n*nch])
	return p, nil
}

func (d *FrameDecoder) interleave(dst []float32, n, nch int) {
	for i := range n {
		for ch := range nch {
			dst[i*nch+ch] = d.scratch[ch][i]
		}
	}
}

// DecodeFloat decodes f into dst as interleaved samples and returns the
// samples per channel and the channel count. dst must hold at least
// 2*1152 values.
func (d *FrameDecoder) DecodeFloat(f *Frame, dst []float32) (int, int, error) {
	if len(dst) < 2*maxFrameSamples {
		return 0, 0, io.ErrShortBuffer
	}
	n, nch, err := d.run(f)
	if err != nil {
		return 0, 0, err
	}
	d.interleave(dst, n, nch)
	return n, nch, nil
}

// Reset clears the bit reservoir, IMDCT overlap and synthesis history of
// every layer. The stereo mode and equalizer are kept.
func (d *FrameDecoder) Reset() {
	for _, ld := range d.layers {
		if ld != nil {
			ld.resetForSeek()
		}
	}
}

// SetStereoMode changes how two-channel frames are rendered from the next
// frame on.
func (d *FrameDecoder) SetStereoMode(m StereoMode) {
	d.stereo = m
	for _, ld := range d.layers {
		if ld != nil {
			ld.base().stereo = m
		}
	}
}

// SetEqualizer sets per-subband gains in decibels; nil restores a flat
// response.
func (d *FrameDecoder) SetEqualizer(db []float32) {
	d.eq = append([]float32(nil), db...)
	for _, ld := range d.layers {
		if ld != nil {
			ld.base().fb.SetEqualizer(d.eq)
		}
	}
}

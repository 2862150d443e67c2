// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"

	"github.com/ik5/mp3seek/formats/mp3/internal/bitstream"
	"github.com/ik5/mp3seek/formats/mp3/internal/synth"
)

// layer12Decoder decodes Layer I and Layer II frames. Layer I is handled as
// the degenerate case: one 4-bit allocation per subband, one scalefactor
// and twelve samples per subband.
type layer12Decoder struct {
	layerBase
	layer Layer

	rd    bitstream.Reader
	alloc [2][synth.Bands]quantClass
	scfsi [2][synth.Bands]int
	scale [2][synth.Bands][3]float32
	codes [2][synth.Bands][3]int
}

func newLayer12Decoder(l Layer, stereo StereoMode) *layer12Decoder {
	return &layer12Decoder{layerBase: layerBase{stereo: stereo}, layer: l}
}

func (d *layer12Decoder) decode(f *Frame, out *pcmScratch) (int, int, error) {
	h := f.Header
	d.rd.Reset(f.Payload())
	br := bits{src: &d.rd}

	nch := h.Channels()
	bound := synth.Bands
	if h.ChannelMode == JointStereo {
		bound = (h.ChannelExtension + 1) * 4
	}

	var err error
	if d.layer == LayerI {
		err = d.decodeLayerI(&br, nch, bound, out)
	} else {
		err = d.decodeLayerII(h, &br, nch, bound, out)
	}
	if err != nil {
		return 0, 0, err
	}
	return h.SampleCount, d.outChannels(nch), nil
}

func malformed(what string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrMalformedFrame, what, err)
}

func (d *layer12Decoder) decodeLayerI(br *bits, nch, bound int, out *pcmScratch) error {
	bound = min(bound, synth.Bands)

	for sb := range synth.Bands {
		for ch := range nch {
			if sb >= bound && ch > 0 {
				d.alloc[ch][sb] = d.alloc[0][sb]
				continue
			}
			a := br.read(4)
			if a == 15 {
				return fmt.Errorf("%w: Layer I allocation 15", ErrMalformedFrame)
			}
			d.alloc[ch][sb] = quantClass{}
			if a > 0 {
				d.alloc[ch][sb] = quantClass{levels: 1<<(a+1) - 1, bits: a + 1}
			}
		}
	}
	for sb := range synth.Bands {
		for ch := range nch {
			if d.alloc[ch][sb].bits > 0 {
				d.scale[ch][sb][0] = scaleFactors[br.read(6)]
			}
		}
	}
	if br.err != nil {
		return malformed("Layer I side data", br.err)
	}

	var blk [2][synth.Bands]float32
	for s := range 12 {
		for sb := range synth.Bands {
			shared := 0
			for ch := range nch {
				q := d.alloc[ch][sb]
				if q.bits == 0 {
					blk[ch][sb] = 0
					continue
				}
				code := shared
				if sb < bound || ch == 0 {
					code = br.read(q.bits)
					shared = code
				}
				blk[ch][sb] = requantize(code, q.levels) * d.scale[ch][sb][0]
			}
		}
		if br.err != nil {
			return malformed("Layer I samples", br.err)
		}
		d.synthesize(&blk, nch, out, s*synth.Bands)
	}
	return nil
}

func (d *layer12Decoder) decodeLayerII(h FrameHeader, br *bits, nch, bound int, out *pcmScratch) error {
	choice := layer2Allocation(h)
	sblimit := choice.sblimit
	bound = min(bound, sblimit)
	table := layer2Subbands[choice.table]

	for sb := range sblimit {
		width, row := int(table[sb]>>4), layer2Rows[table[sb]&15]
		for ch := range nch {
			if sb >= bound && ch > 0 {
				d.alloc[ch][sb] = d.alloc[0][sb]
				continue
			}
			d.alloc[ch][sb] = layer2Quant[row[br.read(width)]]
		}
	}
	for sb := sblimit; sb < synth.Bands; sb++ {
		for ch := range nch {
			d.alloc[ch][sb] = quantClass{}
		}
	}

	for sb := range sblimit {
		for ch := range nch {
			if d.alloc[ch][sb].levels != 0 {
				d.scfsi[ch][sb] = br.read(2)
			}
		}
	}
	for sb := range sblimit {
		for ch := range nch {
			if d.alloc[ch][sb].levels == 0 {
				continue
			}
			sf := &d.scale[ch][sb]
			switch d.scfsi[ch][sb] {
			case 0:
				sf[0], sf[1], sf[2] = scaleFactors[br.read(6)], scaleFactors[br.read(6)], scaleFactors[br.read(6)]
			case 1:
				sf[0] = scaleFactors[br.read(6)]
				sf[1], sf[2] = sf[0], scaleFactors[br.read(6)]
			case 2:
				sf[0] = scaleFactors[br.read(6)]
				sf[1], sf[2] = sf[0], sf[0]
			case 3:
				sf[0] = scaleFactors[br.read(6)]
				sf[1] = scaleFactors[br.read(6)]
				sf[2] = sf[1]
			}
		}
	}
	if br.err != nil {
		return malformed("Layer II side data", br.err)
	}

	var blk [2][synth.Bands]float32
	for part := range 3 {
		for gr := range 4 {
			for sb := range sblimit {
				for ch := range nch {
					if sb >= bound && ch > 0 {
						d.codes[ch][sb] = d.codes[0][sb]
						continue
					}
					d.readTriplet(br, d.alloc[ch][sb], &d.codes[ch][sb])
				}
			}
			if br.err != nil {
				return malformed("Layer II samples", br.err)
			}

			for s := range 3 {
				for ch := range nch {
					for sb := range synth.Bands {
						q := d.alloc[ch][sb]
						if q.levels == 0 {
							blk[ch][sb] = 0
							continue
						}
						blk[ch][sb] = requantize(d.codes[ch][sb][s], q.levels) * d.scale[ch][sb][part]
					}
				}
				d.synthesize(&blk, nch, out, ((part*4+gr)*3+s)*synth.Bands)
			}
		}
	}
	return nil
}

// readTriplet reads the three consecutive samples of one subband, either as
// one grouped code word or as three separate codes.
func (d *layer12Decoder) readTriplet(br *bits, q quantClass, dst *[3]int) {
	switch {
	case q.levels == 0:
		*dst = [3]int{}
	case q.grouped:
		v := br.read(q.bits)
		dst[0] = v % q.levels
		v /= q.levels
		dst[1] = v % q.levels
		dst[2] = v / q.levels
	default:
		dst[0] = br.read(q.bits)
		dst[1] = br.read(q.bits)
		dst[2] = br.read(q.bits)
	}
}

// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"math"

	"github.com/ik5/mp3seek/formats/mp3/internal/bitstream"
	"github.com/ik5/mp3seek/formats/mp3/internal/synth"
)

// layer3Decoder decodes Layer III frames. Main data is read through the
// bit reservoir; IMDCT overlap and synthesis history carry over between
// frames until resetForSeek.
type layer3Decoder struct {
	layerBase

	rd   bitstream.Reader
	res  bitstream.Reservoir
	side sideInfo

	sf      [2][2]scalefactors
	is      [granuleLines]int
	xr      [2][granuleLines]float32
	tmp     [granuleLines]float32
	nz      [2]int
	layout  [40]band
	overlap [2][synth.Bands][18]float32
}

func newLayer3Decoder(stereo StereoMode) *layer3Decoder {
	return &layer3Decoder{layerBase: layerBase{stereo: stereo}}
}

func (d *layer3Decoder) resetForSeek() {
	d.res.Reset()
	d.overlap = [2][synth.Bands][18]float32{}
	d.layerBase.resetForSeek()
}

func (d *layer3Decoder) decode(f *Frame, out *pcmScratch) (int, int, error) {
	h := f.Header
	payload := f.Payload()
	si := h.SideInfoSize()
	if len(payload) < si {
		return 0, 0, fmt.Errorf("%w: %d byte payload holds no side info", ErrMalformedFrame, len(payload))
	}

	d.rd.Reset(payload[:si])
	if err := d.side.parse(&bits{src: &d.rd}, h); err != nil {
		return 0, 0, err
	}
	if !d.res.AddBits(payload[si:], d.side.mainDataBegin*8) {
		return 0, 0, ErrReservoirUnderrun
	}

	nch := h.Channels()
	tbl := bandTable(h)
	for gr := range d.side.granules {
		for ch := range nch {
			if err := d.readMainData(h, gr, ch); err != nil {
				return 0, 0, err
			}
		}
		if nch == 2 && h.ChannelMode == JointStereo {
			d.jointStereo(h, gr)
		}
		for ch := range nch {
			g := &d.side.gr[gr][ch]
			reorder(&d.xr[ch], g, tbl, &d.tmp)
			antialias(&d.xr[ch], g)
			hybrid(&d.xr[ch], g, &d.overlap[ch])
		}

		var blk [2][synth.Bands]float32
		for t := range 18 {
			for ch := range nch {
				for sb := range synth.Bands {
					blk[ch][sb] = d.xr[ch][18*sb+t]
				}
			}
			d.synthesize(&blk, nch, out, gr*granuleLines+t*synth.Bands)
		}
	}
	return h.SampleCount, d.outChannels(nch), nil
}

// readMainData reads one channel's scalefactors and Huffman data and
// requantizes it into xr. The read cursor always ends exactly
// part2_3_length bits after where it started.
func (d *layer3Decoder) readMainData(h FrameHeader, gr, ch int) error {
	g := &d.side.gr[gr][ch]
	sf := &d.sf[gr][ch]
	start := d.res.BitsRead()
	end := start + int64(g.part23Length)

	br := bits{src: &d.res}
	if h.LSF() {
		intensityRight := ch == 1 && h.ChannelMode == JointStereo && h.ChannelExtension&1 != 0
		g.preflag = readScalefactorsLSF(&br, g, sf, intensityRight)
	} else {
		readScalefactorsMPEG1(&br, g, sf, &d.sf[0][ch], &d.side.scfsi[ch], gr)
	}
	if br.err != nil {
		return malformed("Layer III scalefactors", br.err)
	}
	if d.res.BitsRead() > end {
		return fmt.Errorf("%w: scalefactors overrun part2_3_length", ErrMalformedFrame)
	}

	n, err := d.readHuffman(h, g, end)
	if err != nil {
		return malformed("Layer III Huffman data", err)
	}
	if pos := d.res.BitsRead(); pos < end {
		err = d.res.SkipBits(int(end - pos))
	} else if pos > end {
		err = d.res.RewindBits(int(pos - end))
	}
	if err != nil {
		return malformed("Layer III main data", err)
	}

	d.nz[ch] = n
	d.requantize(h, g, sf, ch)
	return nil
}

func regionBounds(g *granuleInfo, tbl int) (int, int) {
	if g.short() {
		if g.mixed {
			return 36, granuleLines
		}
		return 3 * sfbShort[tbl][3], granuleLines
	}
	r1 := sfbLong[tbl][min(g.region0Count+1, 22)]
	r2 := sfbLong[tbl][min(g.region0Count+g.region1Count+2, 22)]
	return r1, r2
}

// readHuffman fills d.is and returns the number of lines decoded; lines
// past it are zero. A count1 quadruple that straddles end is dropped.
func (d *layer3Decoder) readHuffman(h FrameHeader, g *granuleInfo, end int64) (int, error) {
	r1, r2 := regionBounds(g, bandTable(h))
	big := g.bigValues * 2

	i := 0
	for ; i < big; i += 2 {
		table := g.tableSelect[0]
		switch {
		case i >= r2:
			table = g.tableSelect[2]
		case i >= r1:
			table = g.tableSelect[1]
		}
		x, y, err := readPair(&d.res, table)
		if err != nil {
			return 0, err
		}
		d.is[i], d.is[i+1] = x, y
	}

	for i+4 <= granuleLines && d.res.BitsRead() < end {
		q, err := readQuad(&d.res, g.count1Table)
		if err != nil {
			return 0, err
		}
		if d.res.BitsRead() > end {
			break
		}
		copy(d.is[i:i+4], q[:])
		i += 4
	}
	clear(d.is[i:])
	return i, nil
}

func (d *layer3Decoder) requantize(h FrameHeader, g *granuleInfo, sf *scalefactors, ch int) {
	xr := &d.xr[ch]
	*xr = [granuleLines]float32{}
	nz := d.nz[ch]
	p43 := pow43()
	mult := 0.5 * float64(1+g.scalefacScale)

	for _, b := range layoutFor(g, bandTable(h), &d.layout) {
		if b.start >= nz {
			break
		}
		var e float64
		if b.win < 0 {
			v := sf.l[b.sfb]
			if g.preflag {
				v += pretab[b.sfb]
			}
			e = 0.25*float64(g.globalGain-210) - mult*float64(v)
		} else {
			e = 0.25*float64(g.globalGain-210-8*g.subblockGain[b.win]) - mult*float64(sf.s[b.sfb][b.win])
		}
		scale := float32(math.Exp2(e))

		for i := b.start; i < min(b.start+b.width, nz); i++ {
			switch v := d.is[i]; {
			case v > 0:
				xr[i] = p43[v] * scale
			case v < 0:
				xr[i] = -p43[-v] * scale
			}
		}
	}
}

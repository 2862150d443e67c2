// SPDX-License-Identifier: EPL-2.0

package mp3

import "math"

// band is one scalefactor band of a granule, in coded (pre-reorder) line
// order. win is -1 for long bands.
type band struct {
	start, width int
	sfb, win     int
}

// layoutFor lists the bands of a granule. Mixed blocks are long up to the
// start of short band 3 and short after it.
func layoutFor(g *granuleInfo, tbl int, dst *[40]band) []band {
	out := dst[:0]
	long, short := &sfbLong[tbl], &sfbShort[tbl]

	if !g.short() {
		for sfb := range 22 {
			out = append(out, band{start: long[sfb], width: long[sfb+1] - long[sfb], sfb: sfb, win: -1})
		}
		return out
	}

	first := 0
	if g.mixed {
		split := 3 * short[3]
		for sfb := 0; long[sfb] < split; sfb++ {
			out = append(out, band{start: long[sfb], width: min(long[sfb+1], split) - long[sfb], sfb: sfb, win: -1})
		}
		first = 3
	}
	for sfb := first; sfb < 13; sfb++ {
		width := short[sfb+1] - short[sfb]
		for w := range 3 {
			out = append(out, band{start: 3*short[sfb] + w*width, width: width, sfb: sfb, win: w})
		}
	}
	return out
}

// jointStereo applies mid/side and intensity stereo to one granule. Bands
// above the right channel's last non-zero line are intensity coded, unless
// their is_pos is the illegal value, in which case mid/side (if enabled)
// applies as for every other band.
func (d *layer3Decoder) jointStereo(h FrameHeader, gr int) {
	ms := h.ChannelExtension&2 != 0
	intensity := h.ChannelExtension&1 != 0
	l, r := &d.xr[0], &d.xr[1]

	if !intensity {
		if ms {
			midSide(l[:], r[:])
		}
		return
	}

	g := &d.side.gr[gr][1]
	sf := &d.sf[gr][1]
	layout := layoutFor(g, bandTable(h), &d.layout)

	// Walk backwards marking bands that lie above the last non-zero line
	// of the right channel, tracked separately for each short window.
	var seen [4]bool
	var above [40]bool
	for i := len(layout) - 1; i >= 0; i-- {
		b := layout[i]
		grp := b.win + 1
		if grp == 0 && g.mixed {
			seen[0] = seen[0] || seen[1] || seen[2] || seen[3]
		}
		if !seen[grp] && allZero(r[b.start:b.start+b.width]) {
			above[i] = true
			continue
		}
		seen[grp] = true
	}

	lsf := h.LSF()
	for i, b := range layout {
		lines := b.start + b.width
		if above[i] {
			if kl, kr, ok := intensityGains(sf, b, lsf); ok {
				for j := b.start; j < lines; j++ {
					v := l[j]
					l[j], r[j] = v*kl, v*kr
				}
				continue
			}
		}
		if ms {
			midSide(l[b.start:lines], r[b.start:lines])
		}
	}
}

func allZero(s []float32) bool {
	for _, v := range s {
		if v != 0 {
			return false
		}
	}
	return true
}

func midSide(l, r []float32) {
	for i := range l {
		m, s := l[i], r[i]
		l[i] = (m + s) * math.Sqrt2 / 2
		r[i] = (m - s) * math.Sqrt2 / 2
	}
}

// intensityGains returns the left and right gains for an intensity band.
// The top band of each layout reuses the position of the band below it.
func intensityGains(sf *scalefactors, b band, lsf bool) (kl, kr float32, ok bool) {
	var pos, illegal int
	if b.win < 0 {
		sfb := min(b.sfb, 20)
		pos, illegal = sf.l[sfb], sf.isMaxL[sfb]
	} else {
		sfb := min(b.sfb, 11)
		pos, illegal = sf.s[sfb][b.win], sf.isMaxS[sfb][b.win]
	}

	if !lsf {
		if pos >= 7 {
			return 0, 0, false
		}
		return isRatio[pos][0], isRatio[pos][1], true
	}

	if pos == illegal {
		return 0, 0, false
	}
	io := math.Exp2(-float64(sf.intensityScale+1) / 4)
	switch {
	case pos == 0:
		return 1, 1, true
	case pos&1 == 1:
		return float32(math.Pow(io, float64(pos+1)/2)), 1, true
	default:
		return 1, float32(math.Pow(io, float64(pos)/2)), true
	}
}

// SPDX-License-Identifier: EPL-2.0

package mp3

import "github.com/ik5/mp3seek/formats/mp3/internal/synth"

// reorder moves short-block lines from band/window order into the
// window-interleaved order the IMDCT reads (three windows per line).
func reorder(xr *[granuleLines]float32, g *granuleInfo, tbl int, tmp *[granuleLines]float32) {
	if !g.short() {
		return
	}
	short := &sfbShort[tbl]
	first := 0
	if g.mixed {
		first = 3
	}
	for sfb := first; sfb < 13; sfb++ {
		base := 3 * short[sfb]
		width := short[sfb+1] - short[sfb]
		for w := range 3 {
			for i := range width {
				tmp[base+3*i+w] = xr[base+w*width+i]
			}
		}
		copy(xr[base:base+3*width], tmp[base:base+3*width])
	}
}

func antialias(xr *[granuleLines]float32, g *granuleInfo) {
	limit := synth.Bands
	if g.short() {
		if !g.mixed {
			return
		}
		limit = 2
	}
	for sb := 1; sb < limit; sb++ {
		for i := range 8 {
			lo, hi := 18*sb-1-i, 18*sb+i
			a, b := xr[lo], xr[hi]
			xr[lo] = a*aliasCS[i] - b*aliasCA[i]
			xr[hi] = b*aliasCS[i] + a*aliasCA[i]
		}
	}
}

// hybrid runs the IMDCT with overlap-add for every subband, leaving 18
// time samples per subband in xr, then inverts the odd subbands' odd
// samples for the polyphase filterbank.
func hybrid(xr *[granuleLines]float32, g *granuleInfo, overlap *[synth.Bands][18]float32) {
	var z [36]float32
	for sb := range synth.Bands {
		bt := 0
		if g.windowSwitching && !(g.mixed && sb < 2) {
			bt = g.blockType
		}
		x := xr[18*sb : 18*sb+18]

		if bt == 2 {
			imdctShortBlock(x, &z)
		} else {
			imdctLongBlock(x, &imdctWindow[bt], &z)
		}
		ov := &overlap[sb]
		for i := range 18 {
			x[i] = z[i] + ov[i]
			ov[i] = z[i+18]
		}
		if sb&1 == 1 {
			for i := 1; i < 18; i += 2 {
				x[i] = -x[i]
			}
		}
	}
}

func imdctLongBlock(x []float32, win *[36]float32, z *[36]float32) {
	for i := range 36 {
		var acc float32
		row := &imdctLong[i]
		for k := range 18 {
			acc += x[k] * row[k]
		}
		z[i] = acc * win[i]
	}
}

func imdctShortBlock(x []float32, z *[36]float32) {
	*z = [36]float32{}
	for w := range 3 {
		for i := range 12 {
			var acc float32
			row := &imdctShort[i]
			for k := range 6 {
				acc += x[3*k+w] * row[k]
			}
			z[6+6*w+i] += acc * shortWindow[i]
		}
	}
}

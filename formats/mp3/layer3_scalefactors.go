// SPDX-License-Identifier: EPL-2.0

package mp3

// scalefactors for one granule and channel. isMax holds, for the right
// channel of an LSF intensity-stereo frame, the illegal is_pos value of
// each band (2^slen - 1).
type scalefactors struct {
	l [22]int
	s [13][3]int

	isMaxL         [22]int
	isMaxS         [13][3]int
	intensityScale int
}

func readScalefactorsMPEG1(br *bits, g *granuleInfo, sf, first *scalefactors, scfsi *[4]bool, gr int) {
	n1, n2 := slen1[g.scalefacCompress], slen2[g.scalefacCompress]

	if g.short() {
		*sf = scalefactors{}
		sfb := 0
		if g.mixed {
			for ; sfb < 8; sfb++ {
				sf.l[sfb] = br.read(n1)
			}
			sfb = 3
		}
		for ; sfb < 12; sfb++ {
			n := n1
			if sfb >= 6 {
				n = n2
			}
			for w := range 3 {
				sf.s[sfb][w] = br.read(n)
			}
		}
		return
	}

	for band := range 4 {
		n := n1
		if band >= 2 {
			n = n2
		}
		lo, hi := scfsiBands[band], scfsiBands[band+1]
		if gr == 1 && scfsi[band] {
			copy(sf.l[lo:hi], first.l[lo:hi])
			continue
		}
		for sfb := lo; sfb < hi; sfb++ {
			sf.l[sfb] = br.read(n)
		}
	}
	sf.l[21] = 0
}

// readScalefactorsLSF reads MPEG-2/2.5 scalefactors. intensityRight
// selects the slen tables used for the right channel of an intensity
// stereo frame. It reports whether pretab applies.
func readScalefactorsLSF(br *bits, g *granuleInfo, sf *scalefactors, intensityRight bool) bool {
	*sf = scalefactors{}
	sfc := g.scalefacCompress

	var slen [4]int
	var table int
	preflag := false
	if !intensityRight {
		switch {
		case sfc < 400:
			slen = [4]int{(sfc >> 4) / 5, (sfc >> 4) % 5, (sfc & 15) >> 2, sfc & 3}
			table = 0
		case sfc < 500:
			sfc -= 400
			slen = [4]int{(sfc >> 2) / 5, (sfc >> 2) % 5, sfc & 3, 0}
			table = 1
		default:
			sfc -= 500
			slen = [4]int{sfc / 3, sfc % 3, 0, 0}
			table = 2
			preflag = true
		}
	} else {
		sf.intensityScale = sfc & 1
		isfc := sfc >> 1
		switch {
		case isfc < 180:
			slen = [4]int{isfc / 36, (isfc % 36) / 6, (isfc % 36) % 6, 0}
			table = 3
		case isfc < 244:
			isfc -= 180
			slen = [4]int{(isfc % 64) >> 4, (isfc % 16) >> 2, isfc % 4, 0}
			table = 4
		default:
			isfc -= 244
			slen = [4]int{isfc / 3, isfc % 3, 0, 0}
			table = 5
		}
	}

	kind := 0
	if g.short() {
		kind = 1
		if g.mixed {
			kind = 2
		}
	}

	k := 0
	for p, count := range lsfPartitions[table][kind] {
		for range count {
			v := br.read(slen[p])
			illegal := 1<<slen[p] - 1
			switch {
			case kind == 0:
				sf.l[k], sf.isMaxL[k] = v, illegal
			case kind == 2 && k < 6:
				sf.l[k], sf.isMaxL[k] = v, illegal
			default:
				j := k
				if kind == 2 {
					j = k - 6 + 9
				}
				sf.s[j/3][j%3], sf.isMaxS[j/3][j%3] = v, illegal
			}
			k++
		}
	}
	// The last band of each layout has no scalefactor and inherits its
	// neighbour's intensity limit.
	sf.isMaxL[21] = sf.isMaxL[20]
	sf.isMaxS[12] = sf.isMaxS[11]
	return preflag
}

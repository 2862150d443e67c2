// SPDX-License-Identifier: EPL-2.0

package mp3

import "fmt"

// granuleInfo is the per-granule, per-channel side information.
type granuleInfo struct {
	part23Length     int
	bigValues        int
	globalGain       int
	scalefacCompress int
	windowSwitching  bool
	blockType        int
	mixed            bool
	tableSelect      [3]int
	subblockGain     [3]int
	region0Count     int
	region1Count     int
	preflag          bool
	scalefacScale    int
	count1Table      int
}

func (g *granuleInfo) short() bool { return g.windowSwitching && g.blockType == 2 }

type sideInfo struct {
	mainDataBegin int
	granules      int
	scfsi         [2][4]bool
	gr            [2][2]granuleInfo
}

func (s *sideInfo) parse(br *bits, h FrameHeader) error {
	nch := h.Channels()
	lsf := h.LSF()

	if lsf {
		s.granules = 1
		s.mainDataBegin = br.read(8)
		br.read(nch)
	} else {
		s.granules = 2
		s.mainDataBegin = br.read(9)
		if nch == 1 {
			br.read(5)
		} else {
			br.read(3)
		}
		for ch := range nch {
			for band := range 4 {
				s.scfsi[ch][band] = br.flag()
			}
		}
	}

	for gr := range s.granules {
		for ch := range nch {
			g := &s.gr[gr][ch]
			*g = granuleInfo{}
			g.part23Length = br.read(12)
			g.bigValues = br.read(9)
			g.globalGain = br.read(8)
			if lsf {
				g.scalefacCompress = br.read(9)
			} else {
				g.scalefacCompress = br.read(4)
			}
			g.windowSwitching = br.flag()
			if g.windowSwitching {
				g.blockType = br.read(2)
				g.mixed = br.flag()
				g.tableSelect[0] = br.read(5)
				g.tableSelect[1] = br.read(5)
				for w := range 3 {
					g.subblockGain[w] = br.read(3)
				}
				g.region0Count = 7
				if g.blockType == 2 && !g.mixed {
					g.region0Count = 8
				}
				g.region1Count = 20 - g.region0Count
			} else {
				for i := range 3 {
					g.tableSelect[i] = br.read(5)
				}
				g.region0Count = br.read(4)
				g.region1Count = br.read(3)
			}
			if !lsf {
				g.preflag = br.flag()
			}
			g.scalefacScale = br.read(1)
			g.count1Table = br.read(1)

			if br.err != nil {
				return malformed("Layer III side info", br.err)
			}
			if err := g.validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (g *granuleInfo) validate() error {
	switch {
	case g.bigValues > granuleLines/2:
		return fmt.Errorf("%w: big_values %d", ErrMalformedFrame, g.bigValues)
	case g.windowSwitching && g.blockType == 0:
		return fmt.Errorf("%w: window switching with block type 0", ErrMalformedFrame)
	}
	for _, t := range g.tableSelect {
		if t == 4 || t == 14 {
			return fmt.Errorf("%w: Huffman table %d", ErrMalformedFrame, t)
		}
	}
	return nil
}

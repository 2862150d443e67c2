// SPDX-License-Identifier: EPL-2.0

package synth

// windowWide computes the same result as windowScalar without the
// intermediate vector. Eight outputs are produced per pass, each with
// separate even and odd block accumulators, which is the shape a vector
// unit reduces well.
func windowWide(blocks []float32, out *[Bands]float32) {
	_ = blocks[511]
	for base := 0; base < Bands; base += 8 {
		var even, odd [8]float32
		for g := 0; g < 16; g += 2 {
			xe := blocks[32*g : 32*g+32 : 32*g+32]
			xo := blocks[32*g+32 : 32*g+64 : 32*g+64]
			de := dewindow[32*g : 32*g+32 : 32*g+32]
			do := dewindow[32*g+32 : 32*g+64 : 32*g+64]
			for l := range 8 {
				j := base + l
				even[l] += evenTap(xe, j) * de[j]
				odd[l] += oddTap(xo, j) * do[j]
			}
		}
		for l := range 8 {
			out[base+l] = even[l] + odd[l]
		}
	}
}

func evenTap(x []float32, j int) float32 {
	switch {
	case j < 16:
		return x[16+j]
	case j == 16:
		return 0
	default:
		return -x[48-j]
	}
}

func oddTap(x []float32, j int) float32 {
	if j <= 16 {
		return -x[16-j]
	}
	return -x[j-16]
}

// SPDX-License-Identifier: EPL-2.0

package synth

// expand writes the 512-entry windowing vector for sixteen history blocks.
//
// With x the stored DCT output of a block, the 64-point matrixing result is
// V = [x16..x31, 0, -x31..-x17, -x16..-x1, -x0, -x1..-x15]. Even blocks
// contribute V[0:32], odd blocks V[32:64].
func expand(blocks []float32, u *[512]float32) {
	for g := range 16 {
		x := blocks[32*g : 32*g+32 : 32*g+32]
		v := u[32*g : 32*g+32 : 32*g+32]
		if g&1 == 0 {
			for j := range 16 {
				v[j] = x[16+j]
			}
			v[16] = 0
			for j := 17; j < 32; j++ {
				v[j] = -x[48-j]
			}
		} else {
			for j := 0; j <= 16; j++ {
				v[j] = -x[16-j]
			}
			for j := 17; j < 32; j++ {
				v[j] = -x[j-16]
			}
		}
	}
}

// windowScalar builds the full vector, applies the window and folds the
// sixteen 32-sample groups.
func windowScalar(blocks []float32, out *[Bands]float32) {
	var u [512]float32
	expand(blocks, &u)
	for i := range u {
		u[i] *= dewindow[i]
	}
	for j := range Bands {
		var sum float32
		for g := range 16 {
			sum += u[j+32*g]
		}
		out[j] = sum
	}
}

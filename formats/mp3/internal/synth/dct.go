// SPDX-License-Identifier: EPL-2.0

package synth

import "math"

// cos64 holds the Lee butterfly factors 1/(2cos((2i+1)π/2N)) for
// N = 32 (16 entries), 16 (8), 8 (4), 4 (2) and 2 (1).
var cos64 [31]float32

func init() {
	k := 0
	for n := 32; n >= 2; n /= 2 {
		for i := range n / 2 {
			cos64[k] = float32(1 / (2 * math.Cos(math.Pi*float64(2*i+1)/float64(2*n))))
			k++
		}
	}
}

// dct32 computes out[k] = Σ in[n]·cos(π(2n+1)k/64).
func dct32(in *[32]float32, out []float32) {
	var a, b, ta, tb [16]float32
	for i := range 16 {
		a[i] = in[i] + in[31-i]
		b[i] = (in[i] - in[31-i]) * cos64[i]
	}
	dct16(&a, &ta)
	dct16(&b, &tb)
	for k := range 16 {
		out[2*k] = ta[k]
		if k < 15 {
			out[2*k+1] = tb[k] + tb[k+1]
		} else {
			out[2*k+1] = tb[k]
		}
	}
}

func dct16(in, out *[16]float32) {
	var a, b, ta, tb [8]float32
	for i := range 8 {
		a[i] = in[i] + in[15-i]
		b[i] = (in[i] - in[15-i]) * cos64[16+i]
	}
	dct8(&a, &ta)
	dct8(&b, &tb)
	for k := range 8 {
		out[2*k] = ta[k]
		if k < 7 {
			out[2*k+1] = tb[k] + tb[k+1]
		} else {
			out[2*k+1] = tb[k]
		}
	}
}

func dct8(in, out *[8]float32) {
	a := [4]float32{in[0] + in[7], in[1] + in[6], in[2] + in[5], in[3] + in[4]}
	b := [4]float32{
		(in[0] - in[7]) * cos64[24],
		(in[1] - in[6]) * cos64[25],
		(in[2] - in[5]) * cos64[26],
		(in[3] - in[4]) * cos64[27],
	}
	var ta, tb [4]float32
	dct4(&a, &ta)
	dct4(&b, &tb)
	out[0] = ta[0]
	out[1] = tb[0] + tb[1]
	out[2] = ta[1]
	out[3] = tb[1] + tb[2]
	out[4] = ta[2]
	out[5] = tb[2] + tb[3]
	out[6] = ta[3]
	out[7] = tb[3]
}

func dct4(in, out *[4]float32) {
	a0 := in[0] + in[3]
	a1 := in[1] + in[2]
	b0 := (in[0] - in[3]) * cos64[28]
	b1 := (in[1] - in[2]) * cos64[29]

	out[0] = a0 + a1
	out[2] = (a0 - a1) * cos64[30]
	lo := b0 + b1
	hi := (b0 - b1) * cos64[30]
	out[1] = lo + hi
	out[3] = hi
}

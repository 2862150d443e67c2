// SPDX-License-Identifier: EPL-2.0

package audiotest

// BitWriter packs values MSB first, the MPEG bitstream order.
type BitWriter struct {
	buf []byte
	n   int // bits written
}

// Write appends the low width bits of v.
func (w *BitWriter) Write(v uint32, width int) {
	for i := width - 1; i >= 0; i-- {
		if w.n%8 == 0 {
			w.buf = append(w.buf, 0)
		}
		if v>>i&1 == 1 {
			w.buf[w.n/8] |= 0x80 >> (w.n % 8)
		}
		w.n++
	}
}

// Len returns the number of bits written.
func (w *BitWriter) Len() int { return w.n }

// Bytes returns the packed bits, zero-padded to a whole byte.
func (w *BitWriter) Bytes() []byte { return w.buf }

// LayerIMono returns the payload of a mono Layer I frame in which subband
// sb carries a constant code with the given allocation and scalefactor
// index, and every other subband is silent.
func LayerIMono(sb, alloc, scalefactor int, code uint32) []byte {
	var w BitWriter
	for i := range 32 {
		if i == sb {
			w.Write(uint32(alloc), 4)
		} else {
			w.Write(0, 4)
		}
	}
	w.Write(uint32(scalefactor), 6)
	for range 12 {
		w.Write(code, alloc+1)
	}
	return w.Bytes()
}

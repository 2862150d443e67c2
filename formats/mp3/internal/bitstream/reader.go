// SPDX-License-Identifier: EPL-2.0

package bitstream

// Reader reads bits from a fixed byte slice.
type Reader struct {
	buf []byte
	pos int // bit position
}

// NewReader returns a Reader positioned at the first bit of b.
func NewReader(b []byte) *Reader {
	return &Reader{buf: b}
}

// Reset points r at b and rewinds to its first bit.
func (r *Reader) Reset(b []byte) {
	r.buf = b
	r.pos = 0
}

// BitsRead returns the current bit position.
func (r *Reader) BitsRead() int { return r.pos }

// BitsAvailable returns the number of unread bits.
func (r *Reader) BitsAvailable() int { return len(r.buf)*8 - r.pos }

// PeekBits returns the next n bits without consuming them.
func (r *Reader) PeekBits(n int) (uint32, error) {
	if n < 1 || n > 32 {
		return 0, ErrBitCount
	}
	if r.pos+n > len(r.buf)*8 {
		return 0, ErrInsufficientData
	}
	return peek(r.buf, r.pos, n, -1), nil
}

// GetBits consumes and returns the next n bits.
func (r *Reader) GetBits(n int) (uint32, error) {
	v, err := r.PeekBits(n)
	if err != nil {
		return 0, err
	}
	r.pos += n
	return v, nil
}

// GetBit is GetBits(1) as a bool.
func (r *Reader) GetBit() (bool, error) {
	v, err := r.GetBits(1)
	return v == 1, err
}

// SkipBits advances the position by n bits.
func (r *Reader) SkipBits(n int) error {
	if n < 0 || r.pos+n > len(r.buf)*8 {
		return ErrInsufficientData
	}
	r.pos += n
	return nil
}

// RewindBits moves the position back by n bits.
func (r *Reader) RewindBits(n int) error {
	if n < 0 || n > r.pos {
		return ErrInsufficientData
	}
	r.pos -= n
	return nil
}

// peek assembles n bits starting at bit position pos. A non-negative mask
// wraps byte indexes for the circular reservoir buffer. The caller has
// already checked that pos+n is in range.
func peek(buf []byte, pos, n, mask int) uint32 {
	var v uint64
	idx := pos >> 3
	shift := pos & 7
	need := (shift + n + 7) >> 3
	for i := range need {
		j := idx + i
		if mask >= 0 {
			j &= mask
		}
		v = v<<8 | uint64(buf[j])
	}
	v >>= uint(need*8 - shift - n)
	return uint32(v & (1<<uint(n) - 1))
}

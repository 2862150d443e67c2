// SPDX-License-Identifier: EPL-2.0

package mp3

// bitSource is satisfied by bitstream.Reader and bitstream.Reservoir.
type bitSource interface {
	GetBits(n int) (uint32, error)
}

// bits wraps a bitSource with a sticky error so field-by-field parsing can
// check once at the end.
type bits struct {
	src bitSource
	err error
}

// read returns the next n bits; n == 0 reads nothing and returns 0.
func (b *bits) read(n int) int {
	if n == 0 || b.err != nil {
		return 0
	}
	v, err := b.src.GetBits(n)
	if err != nil {
		b.err = err
		return 0
	}
	return int(v)
}

func (b *bits) flag() bool { return b.read(1) == 1 }

// SPDX-License-Identifier: EPL-2.0

package bitstream

// ReservoirSize is the capacity of the circular buffer in bytes. It holds
// the largest main_data_begin back-reference (511 bytes) plus several
// maximum-size frame payloads.
const ReservoirSize = 8192

const reservoirMask = ReservoirSize - 1

// Reservoir is the Layer III bit reservoir.
//
// Positions are kept as monotonically increasing counters (bytes written,
// bits read) and mapped into the buffer modulo its size, so the buffer
// never has to be compacted. The zero value is an empty reservoir.
type Reservoir struct {
	buf [ReservoirSize]byte

	written int64 // total bytes appended
	readBit int64 // absolute bit cursor
	floor   int64 // first valid bit after the last Reset
}

// AddBits appends one frame's main-data payload and positions the read
// cursor overlapBits before the payload's first bit.
//
// It reports false when fewer than overlapBits of history are buffered,
// which happens after Reset or a dropped frame. The payload is stored
// either way so later frames can reference it, but the current frame's
// main data must be discarded.
func (r *Reservoir) AddBits(payload []byte, overlapBits int) bool {
	if len(payload) > ReservoirSize/2 {
		payload = payload[:ReservoirSize/2]
	}

	frameStart := r.written * 8
	at := int(r.written & reservoirMask)
	n := copy(r.buf[at:], payload)
	copy(r.buf[:], payload[n:])
	r.written += int64(len(payload))

	start := frameStart - int64(overlapBits)
	if overlapBits < 0 || start < r.oldest() {
		r.readBit = frameStart
		return false
	}
	r.readBit = start
	return true
}

func (r *Reservoir) oldest() int64 {
	return max(r.floor, (r.written-ReservoirSize)*8)
}

// Reset drops all buffered history. Call it on every seek.
func (r *Reservoir) Reset() {
	r.floor = r.written * 8
	r.readBit = r.floor
}

// BitsRead returns the absolute read position. Differences between two
// calls give the number of bits consumed in between.
func (r *Reservoir) BitsRead() int64 { return r.readBit }

// BitsAvailable returns the number of buffered, unread bits.
func (r *Reservoir) BitsAvailable() int { return int(r.written*8 - r.readBit) }

// PeekBits returns the next n bits (1..32) without consuming them.
func (r *Reservoir) PeekBits(n int) (uint32, error) {
	if n < 1 || n > 32 {
		return 0, ErrBitCount
	}
	if r.readBit+int64(n) > r.written*8 {
		return 0, ErrInsufficientData
	}
	return peek(r.buf[:], int(r.readBit&(ReservoirSize*8-1)), n, reservoirMask), nil
}

// GetBits consumes and returns the next n bits (1..32).
func (r *Reservoir) GetBits(n int) (uint32, error) {
	v, err := r.PeekBits(n)
	if err != nil {
		return 0, err
	}
	r.readBit += int64(n)
	return v, nil
}

// GetBit is GetBits(1) as a bool.
func (r *Reservoir) GetBit() (bool, error) {
	v, err := r.GetBits(1)
	return v == 1, err
}

// SkipBits advances the cursor by n bits.
func (r *Reservoir) SkipBits(n int) error {
	if n < 0 || r.readBit+int64(n) > r.written*8 {
		return ErrInsufficientData
	}
	r.readBit += int64(n)
	return nil
}

// RewindBits moves the cursor back by n bits, as far as the oldest bit
// still held in the buffer.
func (r *Reservoir) RewindBits(n int) error {
	if n < 0 || r.readBit-int64(n) < r.oldest() {
		return ErrInsufficientData
	}
	r.readBit -= int64(n)
	return nil
}

// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"context"
	"io"
	"sync"
)

// Ring is a bounded byte FIFO between one producer and one consumer.
//
// Every Reset starts a new generation and drops buffered bytes. Writers tag
// their writes with the generation they were produced for, so a producer
// that raced with a Reset cannot leak stale data into the new generation.
// The ring also tracks the byte offset of its read cursor in the logical
// stream, which Reset repositions.
type Ring struct {
	mu      sync.Mutex
	buf     []byte
	rd, wr  int64 // monotone cursors, mapped modulo len(buf)
	offset  int64 // stream offset of rd
	gen     uint64
	eof     bool
	err     error
	changed chan struct{}
}

// NewRing returns a ring holding up to size bytes.
func NewRing(size int) *Ring {
	return &Ring{buf: make([]byte, max(size, 1)), changed: make(chan struct{})}
}

// signal wakes every waiter. Callers hold r.mu.
func (r *Ring) signal() {
	close(r.changed)
	r.changed = make(chan struct{})
}

// Cap returns the capacity in bytes.
func (r *Ring) Cap() int { return len(r.buf) }

// Len returns the number of buffered bytes.
func (r *Ring) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return int(r.wr - r.rd)
}

// Generation returns the current generation.
func (r *Ring) Generation() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.gen
}

// Offset returns the stream offset of the next byte Read returns.
func (r *Ring) Offset() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.offset
}

// Write copies all of p into the ring for generation gen, blocking while the
// ring is full. It returns ErrStaleGeneration as soon as the ring moves on to
// a newer generation.
func (r *Ring) Write(ctx context.Context, gen uint64, p []byte) (int, error) {
	n := 0
	for len(p) > 0 {
		r.mu.Lock()
		switch {
		case r.err != nil:
			err := r.err
			r.mu.Unlock()
			return n, err
		case gen != r.gen:
			r.mu.Unlock()
			return n, ErrStaleGeneration
		case r.eof:
			r.mu.Unlock()
			return n, ErrRingClosed
		}

		if free := len(r.buf) - int(r.wr-r.rd); free > 0 {
			at := int(r.wr % int64(len(r.buf)))
			k := copy(r.buf[at:], p[:min(free, len(p))])
			if k < free && k < len(p) {
				k += copy(r.buf, p[k:min(free, len(p))])
			}
			r.wr += int64(k)
			p = p[k:]
			n += k
			r.signal()
			r.mu.Unlock()
			continue
		}

		ch := r.changed
		r.mu.Unlock()
		select {
		case <-ch:
		case <-ctx.Done():
			return n, ctx.Err()
		}
	}
	return n, nil
}

// Read copies buffered bytes into p, blocking until at least one byte is
// available. Once the current generation is closed and drained it returns
// io.EOF; after CloseWithError it returns that error.
func (r *Ring) Read(ctx context.Context, p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	for {
		r.mu.Lock()
		if r.err != nil {
			err := r.err
			r.mu.Unlock()
			return 0, err
		}
		if avail := int(r.wr - r.rd); avail > 0 {
			want := min(avail, len(p))
			at := int(r.rd % int64(len(r.buf)))
			k := copy(p[:want], r.buf[at:])
			k += copy(p[k:want], r.buf)
			r.rd += int64(k)
			r.offset += int64(k)
			r.signal()
			r.mu.Unlock()
			return k, nil
		}
		if r.eof {
			r.mu.Unlock()
			return 0, io.EOF
		}

		ch := r.changed
		r.mu.Unlock()
		select {
		case <-ch:
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	}
}

// Reset drops buffered bytes, reopens the write side and moves the read
// cursor to stream offset. It returns the new generation. A ring closed
// with an error stays closed.
func (r *Ring) Reset(offset int64) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rd = r.wr
	r.offset = offset
	r.eof = false
	r.gen++
	r.signal()
	return r.gen
}

// CloseWrite marks the end of generation gen. Readers see io.EOF after
// draining it. It is a no-op for a stale generation.
func (r *Ring) CloseWrite(gen uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if gen == r.gen && !r.eof {
		r.eof = true
		r.signal()
	}
}

// CloseWithError closes the ring for good. Buffered bytes are dropped and
// both sides return err from then on. Only the first error is kept.
func (r *Ring) CloseWithError(err error) {
	if err == nil {
		err = ErrRingClosed
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err == nil {
		r.err = err
		r.rd = r.wr
		r.signal()
	}
}

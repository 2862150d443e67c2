// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"

	"github.com/ik5/mp3seek/internal/bufpool"
)

const scanBufferSize = 16 << 10

type indexed struct {
	entry FrameIndex
	frame *Frame
}

// Indexer scans a byte stream for MPEG audio frames in a single forward
// pass. It never seeks; bytes between frames are skipped one at a time
// until a valid header is found again.
type Indexer struct {
	br  *bufio.Reader
	log *slog.Logger

	pos     int64 // stream offset of the next unread byte
	samples int64 // sample position of the next yielded frame
	atStart bool  // no frame seen yet at the start of the stream
	pending *indexed
	held    *indexed
	vbr     *VBRInfo
	resyncs int
	err     error
}

// NewIndexer returns an Indexer reading from r.
func NewIndexer(r io.Reader, opts ...Option) *Indexer {
	c := newConfig(opts)
	return &Indexer{
		br:      bufio.NewReaderSize(r, scanBufferSize),
		log:     c.logger,
		pos:     c.startAt,
		samples: c.startAfter,
		atStart: !c.resume,
	}
}

// VBR returns the Xing/Info tag if the stream starts with one. It is only
// meaningful once the first frame has been returned.
func (ix *Indexer) VBR() *VBRInfo { return ix.vbr }

// Resyncs returns how many times the scanner lost and regained sync.
func (ix *Indexer) Resyncs() int { return ix.resyncs }

// Err returns the error that stopped the scan, or nil if it reached the end
// of the stream.
func (ix *Indexer) Err() error {
	if errors.Is(ix.err, io.EOF) {
		return nil
	}
	return ix.err
}

// All yields every remaining frame. The caller owns each frame and must
// Release it. Check Err after the loop.
func (ix *Indexer) All() iter.Seq2[FrameIndex, *Frame] {
	return func(yield func(FrameIndex, *Frame) bool) {
		for {
			e, f, err := ix.Next()
			if err != nil {
				return
			}
			if !yield(e, f) {
				return
			}
		}
	}
}

// Next returns the next audio frame and its index entry. It returns io.EOF
// once the stream is exhausted, including when the last frame is cut off.
func (ix *Indexer) Next() (FrameIndex, *Frame, error) {
	if ix.held != nil {
		h := ix.held
		ix.held = nil
		return ix.emit(h)
	}
	if ix.err != nil {
		return FrameIndex{}, nil, ix.err
	}

	for {
		next, err := ix.scan()
		if err != nil {
			ix.err = err
			if p := ix.pending; p != nil {
				ix.pending = nil
				return ix.emit(p)
			}
			return FrameIndex{}, nil, err
		}

		if ix.atStart {
			ix.atStart = false
			if info := parseVBRInfo(next.frame); info != nil {
				ix.vbr = info
				ix.log.Debug("mp3: info tag frame excluded from index",
					"offset", next.entry.StreamPosition, "xing", info.Xing, "frames", info.Frames)
				next.frame.Release()
				continue
			}
			ix.pending = next
			continue
		}

		if p := ix.pending; p != nil {
			ix.pending = nil
			ph, nh := p.frame.Header, next.frame.Header
			if ph.SampleRate != nh.SampleRate || ph.ChannelMode != nh.ChannelMode {
				ix.log.Debug("mp3: first frame disagrees with second, treating it as metadata",
					"offset", p.entry.StreamPosition, "first", ph.String(), "second", nh.String())
				p.frame.Release()
				return ix.emit(next)
			}
			ix.held = next
			return ix.emit(p)
		}

		return ix.emit(next)
	}
}

func (ix *Indexer) emit(x *indexed) (FrameIndex, *Frame, error) {
	x.entry.SamplePosition = ix.samples
	ix.samples += int64(x.entry.SampleCount)
	return x.entry, x.frame, nil
}

// scan finds the next frame whose header parses and whose bytes are all
// present.
func (ix *Indexer) scan() (*indexed, error) {
	if ix.atStart && ix.pos == 0 {
		n, err := skipID3v2(ix.br)
		ix.pos += n
		if err != nil {
			return nil, fmt.Errorf("skipping ID3v2 tag: %w", err)
		}
		if n > 0 {
			ix.log.Debug("mp3: skipped ID3v2 tag", "bytes", n)
		}
	}

	skipped := 0
	for {
		b, err := ix.br.Peek(HeaderSize)
		if err != nil {
			return nil, endOfScan(err)
		}
		h, ok := ParseHeader(b)
		if ok && skipped > 0 && !ix.confirm(h) {
			ok = false
		}
		if !ok {
			if _, err := ix.br.Discard(1); err != nil {
				return nil, endOfScan(err)
			}
			ix.pos++
			skipped++
			continue
		}

		data, err := ix.br.Peek(h.FrameLength)
		if err != nil {
			if errors.Is(err, io.EOF) {
				ix.log.Debug("mp3: truncated final frame discarded",
					"offset", ix.pos, "have", len(data), "want", h.FrameLength)
				_, _ = ix.br.Discard(len(data))
				ix.pos += int64(len(data))
			}
			return nil, endOfScan(err)
		}

		if skipped > 0 {
			ix.resyncs++
			ix.log.Debug("mp3: resynchronised", "offset", ix.pos, "skipped", skipped)
		}

		f := &Frame{Header: h, data: bufpool.Get(h.FrameLength)}
		copy(f.data, data)
		x := &indexed{
			entry: FrameIndex{
				StreamPosition: ix.pos,
				SampleCount:    h.SampleCount,
				FrameLength:    h.FrameLength,
			},
			frame: f,
		}
		if _, err := ix.br.Discard(h.FrameLength); err != nil {
			f.Release()
			return nil, endOfScan(err)
		}
		ix.pos += int64(h.FrameLength)
		return x, nil
	}
}

// confirm guards against false sync words found while resynchronising: the
// candidate must be followed by another header of the same stream, or by
// the end of the data.
func (ix *Indexer) confirm(h FrameHeader) bool {
	b, err := ix.br.Peek(h.FrameLength + HeaderSize)
	if err != nil {
		return true
	}
	next, ok := ParseHeader(b[h.FrameLength:])
	return ok && next.SameStream(h)
}

func endOfScan(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return io.EOF
	}
	return err
}

// LoadFrame reads the frame described by e from r and re-validates its
// header. A short read yields ErrFrameUnavailable; a header that no longer
// matches the entry yields ErrIndexMismatch.
func LoadFrame(r io.ReaderAt, e FrameIndex) (*Frame, error) {
	if e.FrameLength < HeaderSize {
		return nil, ErrIndexMismatch
	}
	buf := bufpool.Get(e.FrameLength)
	n, err := r.ReadAt(buf, e.StreamPosition)
	if n < e.FrameLength {
		bufpool.Put(buf)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %w", ErrFrameUnavailable, err)
		}
		return nil, ErrFrameUnavailable
	}

	h, ok := ParseHeader(buf)
	if !ok || h.FrameLength != e.FrameLength {
		bufpool.Put(buf)
		return nil, fmt.Errorf("%w at offset %d", ErrIndexMismatch, e.StreamPosition)
	}
	return &Frame{Header: h, data: buf}, nil
}

// BuildIndex scans r to the end and returns the complete index.
func BuildIndex(r io.Reader, opts ...Option) ([]FrameIndex, *VBRInfo, error) {
	ix := NewIndexer(r, opts...)
	var entries []FrameIndex
	for e, f := range ix.All() {
		f.Release()
		entries = append(entries, e)
	}
	if err := ix.Err(); err != nil {
		return entries, ix.vbr, err
	}
	if len(entries) == 0 {
		return nil, ix.vbr, ErrNoFrames
	}
	return entries, ix.vbr, nil
}

// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"sync"
	"sync/atomic"

	"github.com/ik5/mp3seek/audio"
	"github.com/ik5/mp3seek/formats/mp3/internal/bitstream"
	"github.com/ik5/mp3seek/internal/bufpool"
	"github.com/ik5/mp3seek/utils"
)

// File is an opened MPEG audio stream. It runs one background goroutine
// that indexes frames into a FrameList shared by all of its Streams.
type File struct {
	src  io.ReaderAt
	list *FrameList
	log  *slog.Logger
	opts []Option

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}

	mu      sync.Mutex
	streams map[*Stream]struct{}
	closed  bool
}

// Open starts indexing r in the background and returns immediately.
// Sources implementing io.ReaderAt are read in place; other readers are
// spooled into memory as they are indexed.
//
// The options are also the defaults for every Stream of the file.
func Open(r io.Reader, opts ...Option) (*File, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: nil reader", ErrNoFrames)
	}
	c := newConfig(opts)

	f := &File{
		list:    newFrameList(),
		log:     c.logger,
		opts:    opts,
		done:    make(chan struct{}),
		streams: make(map[*Stream]struct{}),
	}
	f.ctx, f.cancel = context.WithCancel(context.Background())

	var from io.Reader
	if ra, ok := r.(io.ReaderAt); ok {
		f.src = ra
	} else {
		sp := newSpool(r)
		f.src, from = sp, sp
	}

	seed := c.index
	if len(seed) > 0 {
		f.list.seed(seed)
	}
	go f.index(from, seed)
	return f, nil
}

// index is the single producer of f.list.
func (f *File) index(from io.Reader, seed []FrameIndex) {
	defer close(f.done)

	var start int64
	var opts []Option
	opts = append(opts, WithLogger(f.log))
	if len(seed) > 0 {
		last := seed[len(seed)-1]
		start = last.StreamPosition + int64(last.FrameLength)
		opts = append(opts, WithResume(start, last.End()))
	}

	if from == nil {
		from = io.NewSectionReader(f.src, start, math.MaxInt64-start)
	} else if start > 0 {
		if _, err := io.CopyN(io.Discard, from, start); err != nil {
			f.list.finish(endOfScan(err))
			return
		}
	}

	if len(seed) > 0 {
		fr, err := LoadFrame(f.src, seed[0])
		if err != nil {
			f.log.Error("mp3: seeded index does not match stream", "err", err)
			f.list.finish(err)
			return
		}
		f.list.setFormat(fr.Header)
		fr.Release()
	}

	ix := NewIndexer(from, opts...)
	frames := 0
	for e, fr := range ix.All() {
		if frames == 0 && ix.VBR() != nil {
			f.list.setVBR(ix.VBR())
		}
		f.list.append(e, fr.Header)
		fr.Release()
		frames++

		if f.ctx.Err() != nil {
			f.list.finish(f.ctx.Err())
			return
		}
	}

	err := ix.Err()
	if err == nil && frames == 0 && len(seed) == 0 {
		err = ErrNoFrames
	}
	f.log.Debug("mp3: indexing finished",
		"frames", frames, "resyncs", ix.Resyncs(), "err", err)
	f.list.finish(err)
}

// Index returns the shared frame list.
func (f *File) Index() *FrameList { return f.list }

// Wait blocks until indexing has finished and returns its error.
func (f *File) Wait(ctx context.Context) error {
	select {
	case <-f.done:
	case <-ctx.Done():
		return ctx.Err()
	}
	_, err := f.list.Done()
	return err
}

// Close stops indexing and closes every stream of the file. It does not
// close the underlying reader.
func (f *File) Close() error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return nil
	}
	f.closed = true
	streams := make([]*Stream, 0, len(f.streams))
	for s := range f.streams {
		streams = append(streams, s)
	}
	f.mu.Unlock()

	for _, s := range streams {
		_ = s.Close()
	}
	f.cancel()
	<-f.done
	return nil
}

func (f *File) forget(s *Stream) {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.streams, s)
}

// State is the life-cycle state of a Stream's decode loop.
type State int32

const (
	WaitingForIndex State = iota
	Decoding
	Seeking
	Flushed
	Stopped
)

func (s State) String() string {
	switch s {
	case WaitingForIndex:
		return "waiting for index"
	case Decoding:
		return "decoding"
	case Seeking:
		return "seeking"
	case Flushed:
		return "flushed"
	case Stopped:
		return "stopped"
	}
	return "unknown"
}

// Stream decodes one File from its own cursor into a PCM ring. Several
// streams of one file run independently.
//
// Stream implements audio.Source and io.Reader. Read and ReadSamples must
// not be called concurrently with each other; Seek may be called from any
// goroutine.
type Stream struct {
	file     *File
	log      *slog.Logger
	ring     *audio.Ring
	format   FrameHeader
	channels int

	// mu makes decoding a frame and seeking mutually exclusive.
	mu      sync.Mutex
	dec     *FrameDecoder
	cursor  int
	preroll int
	gen     uint64

	state atomic.Int32
	kick  chan struct{}
	rbuf  []byte
	mix   [2][2 * maxFrameSamples]float32

	ctx       context.Context
	cancel    context.CancelFunc
	done      chan struct{}
	closeOnce sync.Once
}

// NewStream waits for the first audio frame to be indexed and starts a
// decode loop at the beginning of the file. opts are applied on top of the
// file's options.
func (f *File) NewStream(opts ...Option) (*Stream, error) {
	return f.NewStreamContext(context.Background(), opts...)
}

// NewStreamContext is NewStream with a context bounding the wait for the
// first frame; when it ends first the error wraps ErrIndexNotReady. The
// context does not govern the stream's lifetime.
func (f *File) NewStreamContext(ctx context.Context, opts ...Option) (*Stream, error) {
	if err := f.list.WaitFormat(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIndexNotReady, err)
	}
	h, ok := f.list.Format()
	if !ok {
		if _, err := f.list.Done(); err != nil && !errors.Is(err, ErrNoFrames) {
			return nil, fmt.Errorf("%w: %w", ErrNoFrames, err)
		}
		return nil, ErrNoFrames
	}

	all := append(append([]Option(nil), f.opts...), opts...)
	c := newConfig(all)
	s := &Stream{
		file:   f,
		log:    c.logger,
		ring:   audio.NewRing(c.ringSize),
		format: h,
		dec:    NewFrameDecoder(all...),
		kick:   make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	s.channels = h.Channels()
	if c.stereo != StereoBoth {
		s.channels = 1
	}
	s.ctx, s.cancel = context.WithCancel(context.Background())

	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return nil, ErrStreamClosed
	}
	f.streams[s] = struct{}{}
	f.mu.Unlock()

	s.gen = s.ring.Generation()
	go s.run()
	return s, nil
}

// State returns the current state of the decode loop.
func (s *Stream) State() State { return State(s.state.Load()) }

func (s *Stream) setState(st State) {
	if s.State() != Stopped {
		s.state.Store(int32(st))
	}
}

// SampleRate implements audio.Source.
func (s *Stream) SampleRate() int { return s.format.SampleRate }

// Channels implements audio.Source.
func (s *Stream) Channels() int { return s.channels }

// BufSize returns the ring capacity in samples.
func (s *Stream) BufSize() int { return s.ring.Cap() / 4 }

// Position returns the sample position (per channel) of the next sample
// Read returns.
func (s *Stream) Position() int64 {
	return s.ring.Offset() / int64(4*s.channels)
}

// Length returns the stream length in samples per channel: the Xing/Info
// frame count when the file has one, else the indexed length once indexing
// has finished. It returns -1 while the length is unknown.
func (s *Stream) Length() int64 {
	if v := s.file.list.VBR(); v != nil {
		if n := v.TotalSamples(); n >= 0 {
			return n
		}
	}
	if done, _ := s.file.list.Done(); done {
		return s.file.list.IndexedSamples()
	}
	return -1
}

// Read implements io.Reader over interleaved little-endian float32 samples.
func (s *Stream) Read(p []byte) (int, error) {
	n, err := s.ring.Read(s.ctx, p)
	return n, s.readErr(err)
}

func (s *Stream) readErr(err error) error {
	if err != nil && s.ctx.Err() != nil && !errors.Is(err, io.EOF) {
		return ErrStreamClosed
	}
	return err
}

// ReadSamples implements audio.Source. len(dst) must be a multiple of
// Channels.
func (s *Stream) ReadSamples(dst []float32) (int, error) {
	if len(dst)%s.channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}
	if len(dst) == 0 {
		return 0, nil
	}
	if cap(s.rbuf) < len(dst)*4 {
		s.rbuf = make([]byte, len(dst)*4)
	}
	b := s.rbuf[:len(dst)*4]

	n, err := s.ring.Read(s.ctx, b)
	// Complete a partially read sample.
	for n%4 != 0 && err == nil {
		var k int
		k, err = s.ring.Read(s.ctx, b[n:n+4-n%4])
		n += k
	}
	utils.Float32s(dst, b[:n])
	if n > 0 && errors.Is(err, io.EOF) {
		err = nil
	}
	return n / 4, s.readErr(err)
}

// Seek moves the stream to the frame boundary at or before target, a
// sample position per channel. Targets past the end clamp to the end and
// targets below zero to the start. Seek waits until the index covers
// target or indexing ends.
func (s *Stream) Seek(target int64) error {
	return s.SeekContext(context.Background(), target)
}

// SeekContext is Seek with a context bounding the wait for the index. When
// the context ends first the error wraps both ErrIndexNotReady and the
// context's error, and the stream keeps its position.
func (s *Stream) SeekContext(ctx context.Context, target int64) error {
	if s.ctx.Err() != nil {
		return ErrStreamClosed
	}
	list := s.file.list
	target = max(target, 0)

	for {
		ch := list.changedChan()
		done, _ := list.Done()
		if done || list.IndexedSamples() > target {
			break
		}
		select {
		case <-ch:
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", ErrIndexNotReady, ctx.Err())
		case <-s.ctx.Done():
			return ErrStreamClosed
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ctx.Err() != nil {
		return ErrStreamClosed
	}
	s.setState(Seeking)

	n := list.Len()
	if n == 0 {
		return ErrNoFrames
	}
	var i int
	var pos int64
	if total := list.IndexedSamples(); target >= total {
		i, pos = n, total
	} else {
		i = max(list.Search(target), 0)
		pos = list.At(i).SamplePosition
	}

	s.cursor = max(i-2, 0)
	s.preroll = i - s.cursor
	s.dec.Reset()
	s.gen = s.ring.Reset(pos * int64(4*s.channels))
	s.log.Debug("mp3: seek", "target", target, "frame", i, "position", pos)

	select {
	case s.kick <- struct{}{}:
	default:
	}
	return nil
}

// Close stops the decode loop. Blocked and later reads return
// ErrStreamClosed.
func (s *Stream) Close() error {
	s.closeOnce.Do(func() {
		s.cancel()
		s.ring.CloseWithError(ErrStreamClosed)
		<-s.done
		s.state.Store(int32(Stopped))
		s.file.forget(s)
	})
	return nil
}

// skippable reports whether a decode error only costs the current frame.
func skippable(err error) bool {
	for _, e := range []error{
		ErrFrameUnavailable,
		ErrMalformedFrame,
		ErrReservoirUnderrun,
		ErrCRCMismatch,
		bitstream.ErrInsufficientData,
	} {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}

func (s *Stream) fail(err error) {
	s.log.Error("mp3: decode loop stopped", "err", err, "state", s.State().String())
	s.state.Store(int32(Stopped))
	s.ring.CloseWithError(err)
}

func (s *Stream) run() {
	defer close(s.done)
	defer func() {
		if r := recover(); r != nil {
			s.fail(fmt.Errorf("mp3: decode panic: %v", r))
		}
	}()

	list := s.file.list
	for s.ctx.Err() == nil {
		wake := list.changedChan()

		s.mu.Lock()
		gen, cursor := s.gen, s.cursor
		if cursor >= list.Len() {
			done, ierr := list.Done()
			s.mu.Unlock()

			if done {
				if ierr != nil && !errors.Is(ierr, ErrNoFrames) {
					s.log.Warn("mp3: indexing ended early", "err", ierr)
				}
				s.ring.CloseWrite(gen)
				s.setState(Flushed)
				wake = nil
			} else {
				s.setState(WaitingForIndex)
			}
			select {
			case <-wake:
			case <-s.kick:
			case <-s.ctx.Done():
			}
			continue
		}

		s.setState(Decoding)
		pcm, discard, err := s.step(list.At(cursor))
		s.mu.Unlock()

		if err != nil {
			if skippable(err) {
				s.log.Debug("mp3: frame skipped", "frame", cursor, "err", err)
				continue
			}
			s.fail(err)
			return
		}
		if discard {
			pcm.Release()
			continue
		}

		_, err = s.ring.Write(s.ctx, gen, pcm.Bytes())
		pcm.Release()
		switch {
		case err == nil, errors.Is(err, audio.ErrStaleGeneration):
		case s.ctx.Err() != nil:
			return
		default:
			s.fail(err)
			return
		}
	}
}

// step decodes the frame at the cursor and advances it. Callers hold s.mu.
func (s *Stream) step(e FrameIndex) (*PCM, bool, error) {
	s.cursor++
	discard := s.preroll > 0
	if discard {
		s.preroll--
	}

	fr, err := LoadFrame(s.file.src, e)
	if err != nil {
		return nil, false, err
	}
	defer fr.Release()

	pcm, err := s.dec.Decode(fr)
	if err != nil {
		return nil, discard, err
	}
	return s.conform(pcm), discard, nil
}

// conform converts a frame whose channel count differs from the stream's
// (a mono frame inside a stereo stream or the reverse) so the ring stays
// interleaved with s.channels. Mono is duplicated; stereo is averaged.
// Callers hold s.mu.
func (s *Stream) conform(p *PCM) *PCM {
	if p.Channels == s.channels {
		return p
	}
	n := p.Samples
	in, out := s.mix[0][:n*p.Channels], s.mix[1][:n*s.channels]
	utils.Float32s(in, p.Bytes())

	switch {
	case p.Channels == 1 && s.channels == 2:
		for i, v := range in {
			out[2*i], out[2*i+1] = v, v
		}
	case p.Channels == 2 && s.channels == 1:
		for i := range out {
			out[i] = (in[2*i] + in[2*i+1]) * 0.5
		}
	}

	q := &PCM{Channels: s.channels, Samples: n, SampleRate: p.SampleRate, buf: bufpool.Get(len(out) * 4)}
	utils.PutFloat32s(q.buf, out)
	p.Release()
	return q
}

// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"context"
	"errors"
	"io"
	"slices"
	"testing"
	"time"

	"github.com/ik5/mp3seek/audio"
	"github.com/ik5/mp3seek/internal/audiotest"
)

const testFrames = 100

func testStream() []byte {
	return audiotest.Stream(audiotest.CBR128(audiotest.Stereo), testFrames)
}

func openTest(t *testing.T, r io.Reader, opts ...Option) *File {
	t.Helper()

	f, err := Open(r, opts...)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func newTestStream(t *testing.T, f *File, opts ...Option) *Stream {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s, err := f.NewStreamContext(ctx, opts...)
	if err != nil {
		t.Fatalf("NewStream() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// drain reads s to the end and returns the number of values read.
func drain(t *testing.T, s *Stream) int {
	t.Helper()

	buf := make([]float32, 4096)
	total := 0
	for {
		n, err := s.ReadSamples(buf)
		total += n
		if errors.Is(err, io.EOF) {
			return total
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v after %d values", err, total)
		}
	}
}

func TestStream_ReadAll(t *testing.T) {
	t.Parallel()

	f := openTest(t, bytes.NewReader(testStream()))
	s := newTestStream(t, f)

	if s.SampleRate() != 44100 || s.Channels() != 2 {
		t.Errorf("format = %d Hz × %d, want 44100 × 2", s.SampleRate(), s.Channels())
	}
	if got, want := drain(t, s), testFrames*1152*2; got != want {
		t.Errorf("read %d values, want %d", got, want)
	}
	if got := s.Position(); got != testFrames*1152 {
		t.Errorf("Position() = %d, want %d", got, testFrames*1152)
	}
	if got := s.Length(); got != testFrames*1152 {
		t.Errorf("Length() = %d, want %d", got, testFrames*1152)
	}
}

func TestStream_Read(t *testing.T) {
	t.Parallel()

	f := openTest(t, bytes.NewReader(testStream()))
	s := newTestStream(t, f, WithRingSize(4096))

	b, err := io.ReadAll(s)
	if err != nil {
		t.Fatalf("io.ReadAll() error = %v", err)
	}
	if want := testFrames * 1152 * 2 * 4; len(b) != want {
		t.Errorf("read %d bytes, want %d", len(b), want)
	}
	if !bytes.Equal(b, make([]byte, len(b))) {
		t.Error("silent stream decoded to non-zero bytes")
	}
}

func TestStream_Seek(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		target    int64
		wantPos   int64
		wantValue int
	}{
		{"middle", 50000, 43 * 1152, (testFrames - 43) * 1152 * 2},
		{"frame boundary", 10 * 1152, 10 * 1152, (testFrames - 10) * 1152 * 2},
		{"first frame", 1, 0, testFrames * 1152 * 2},
		{"negative", -500, 0, testFrames * 1152 * 2},
		{"past the end", 1 << 40, testFrames * 1152, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := openTest(t, bytes.NewReader(testStream()))
			s := newTestStream(t, f)

			if err := s.Seek(tt.target); err != nil {
				t.Fatalf("Seek() error = %v", err)
			}
			if got := s.Position(); got != tt.wantPos {
				t.Errorf("Position() = %d, want %d", got, tt.wantPos)
			}
			if got := drain(t, s); got != tt.wantValue {
				t.Errorf("read %d values after seek, want %d", got, tt.wantValue)
			}
		})
	}
}

func TestStream_SeekWhileReading(t *testing.T) {
	t.Parallel()

	f := openTest(t, bytes.NewReader(testStream()))
	s := newTestStream(t, f, WithRingSize(8192))

	buf := make([]float32, 1000)
	if _, err := s.ReadSamples(buf); err != nil {
		t.Fatal(err)
	}
	if err := s.Seek(90 * 1152); err != nil {
		t.Fatal(err)
	}
	if got, want := drain(t, s), 10*1152*2; got != want {
		t.Errorf("read %d values after seek, want %d", got, want)
	}

	if err := s.Seek(0); err != nil {
		t.Fatal(err)
	}
	if got, want := drain(t, s), testFrames*1152*2; got != want {
		t.Errorf("read %d values after seeking back, want %d", got, want)
	}
}

func TestStream_IndependentStreams(t *testing.T) {
	t.Parallel()

	f := openTest(t, bytes.NewReader(testStream()))
	a := newTestStream(t, f)
	b := newTestStream(t, f, WithStereoMode(StereoDownmix))

	if err := a.Seek(60 * 1152); err != nil {
		t.Fatal(err)
	}
	if b.Channels() != 1 {
		t.Errorf("downmix stream Channels() = %d, want 1", b.Channels())
	}
	if got, want := drain(t, b), testFrames*1152; got != want {
		t.Errorf("second stream read %d values, want %d", got, want)
	}
	if got, want := drain(t, a), 40*1152*2; got != want {
		t.Errorf("first stream read %d values, want %d", got, want)
	}
}

func TestStream_NonSeekableSource(t *testing.T) {
	t.Parallel()

	r := struct{ io.Reader }{bytes.NewReader(testStream())}
	f := openTest(t, r)
	s := newTestStream(t, f)

	if err := s.Seek(50 * 1152); err != nil {
		t.Fatal(err)
	}
	if got, want := drain(t, s), 50*1152*2; got != want {
		t.Errorf("read %d values, want %d", got, want)
	}
}

func TestStream_Close(t *testing.T) {
	t.Parallel()

	f := openTest(t, bytes.NewReader(testStream()))
	s := newTestStream(t, f, WithRingSize(1024))

	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("second Close() error = %v", err)
	}
	if _, err := s.ReadSamples(make([]float32, 8)); !errors.Is(err, ErrStreamClosed) {
		t.Errorf("ReadSamples() after Close error = %v, want %v", err, ErrStreamClosed)
	}
	if err := s.Seek(0); !errors.Is(err, ErrStreamClosed) {
		t.Errorf("Seek() after Close error = %v, want %v", err, ErrStreamClosed)
	}
	if s.State() != Stopped {
		t.Errorf("State() = %v, want %v", s.State(), Stopped)
	}
}

func TestFile_CloseStopsStreams(t *testing.T) {
	t.Parallel()

	f, err := Open(bytes.NewReader(testStream()))
	if err != nil {
		t.Fatal(err)
	}
	s := newTestStream(t, f, WithRingSize(1024))

	if err := f.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if _, err := s.ReadSamples(make([]float32, 8)); !errors.Is(err, ErrStreamClosed) {
		t.Errorf("ReadSamples() error = %v, want %v", err, ErrStreamClosed)
	}
	if _, err := f.NewStream(); !errors.Is(err, ErrStreamClosed) {
		t.Errorf("NewStream() after Close error = %v, want %v", err, ErrStreamClosed)
	}
}

func TestStream_InvalidDst(t *testing.T) {
	t.Parallel()

	f := openTest(t, bytes.NewReader(testStream()))
	s := newTestStream(t, f)

	if _, err := s.ReadSamples(make([]float32, 3)); !errors.Is(err, audio.ErrInvalidDstSize) {
		t.Errorf("ReadSamples(3) error = %v, want %v", err, audio.ErrInvalidDstSize)
	}
	if n, err := s.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v; want 0, nil", n, err)
	}
}

func TestStream_StateFlushed(t *testing.T) {
	t.Parallel()

	f := openTest(t, bytes.NewReader(audiotest.Stream(audiotest.CBR128(audiotest.Mono), 3)))
	s := newTestStream(t, f)
	drain(t, s)

	deadline := time.Now().Add(5 * time.Second)
	for s.State() != Flushed {
		if time.Now().After(deadline) {
			t.Fatalf("State() = %v, want %v", s.State(), Flushed)
		}
		time.Sleep(time.Millisecond)
	}
}

func TestStream_MixedChannelFrames(t *testing.T) {
	t.Parallel()

	mono := layerIMono.Frame(audiotest.LayerIMono(0, 14, 3, halfScaleI))
	stereo := layerIStereo.Frame(layerIStereoPayload(halfScaleI))

	tests := []struct {
		name     string
		frames   [][]byte
		channels int
		want     []float64 // steady level per output channel in the last frame
	}{
		{"mono frames in stereo stream", append(repeat(stereo, 4), repeat(mono, 4)...), 2, []float64{0.50008, 0.50008}},
		{"stereo frames in mono stream", append(repeat(mono, 4), repeat(stereo, 4)...), 1, []float64{0.25004}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := openTest(t, bytes.NewReader(slices.Concat(tt.frames...)))
			s := newTestStream(t, f)
			if s.Channels() != tt.channels {
				t.Fatalf("Channels() = %d, want %d", s.Channels(), tt.channels)
			}

			pcm, err := audio.ReadAll(s)
			if err != nil {
				t.Fatalf("ReadAll() error = %v", err)
			}
			const samples = 8 * 384
			if len(pcm) != samples*tt.channels {
				t.Fatalf("read %d values, want %d", len(pcm), samples*tt.channels)
			}
			if got := s.Position(); got != samples {
				t.Errorf("Position() = %d, want %d", got, samples)
			}
			last := pcm[len(pcm)-384*tt.channels:]
			for ch, want := range tt.want {
				assertLevel(t, last, tt.channels, ch, want, 2e-3)
			}
		})
	}
}

func TestStream_VBRLength(t *testing.T) {
	t.Parallel()

	spec := audiotest.CBR128(audiotest.Stereo)
	data := append(spec.Xing(7, false, 0, 0), audiotest.Stream(spec, 3)...)
	f := openTest(t, bytes.NewReader(data))
	s := newTestStream(t, f)

	if got := s.Length(); got != 7*1152 {
		t.Errorf("Length() = %d, want the tag's %d", got, 7*1152)
	}
	if got, want := drain(t, s), 3*1152*2; got != want {
		t.Errorf("read %d values, want %d", got, want)
	}
}

func TestOpen_NoFrames(t *testing.T) {
	t.Parallel()

	f := openTest(t, bytes.NewReader(bytes.Repeat([]byte("garbage!"), 500)))
	if _, err := f.NewStream(); !errors.Is(err, ErrNoFrames) {
		t.Errorf("NewStream() error = %v, want %v", err, ErrNoFrames)
	}
	if err := f.Wait(context.Background()); !errors.Is(err, ErrNoFrames) {
		t.Errorf("Wait() error = %v, want %v", err, ErrNoFrames)
	}

	if _, err := Open(nil); !errors.Is(err, ErrNoFrames) {
		t.Errorf("Open(nil) error = %v, want %v", err, ErrNoFrames)
	}
}

func TestOpen_WithIndex(t *testing.T) {
	t.Parallel()

	data := testStream()
	full, _, err := BuildIndex(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}

	for _, r := range []io.Reader{bytes.NewReader(data), struct{ io.Reader }{bytes.NewReader(data)}} {
		f := openTest(t, r, WithIndex(full[:40]))
		if err := f.Wait(context.Background()); err != nil {
			t.Fatalf("Wait() error = %v", err)
		}
		if got := f.Index().Snapshot(); !slices.Equal(got, full) {
			t.Errorf("seeded index has %d entries, want %d matching a full scan", len(got), len(full))
		}
	}
}

func TestOpen_WithMismatchedIndex(t *testing.T) {
	t.Parallel()

	bogus := []FrameIndex{{StreamPosition: 3, SampleCount: 1152, FrameLength: 417}}
	f := openTest(t, bytes.NewReader(testStream()), WithIndex(bogus))
	if err := f.Wait(context.Background()); !errors.Is(err, ErrIndexMismatch) {
		t.Errorf("Wait() error = %v, want %v", err, ErrIndexMismatch)
	}
}

func TestRegister(t *testing.T) {
	t.Parallel()

	reg := audio.NewRegistry()
	Register(reg, WithStereoMode(StereoLeft))

	for _, key := range []string{"mp3", "mp2", "mp1"} {
		if _, ok := reg.Get(key); !ok {
			t.Errorf("Registry has no decoder for %q", key)
		}
	}

	d, _ := reg.Get("mp3")
	src, err := d.Decode(bytes.NewReader(testStream()))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if src.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", src.Channels())
	}
	buf := make([]float32, 1152)
	if n, err := src.ReadSamples(buf); err != nil || n == 0 {
		t.Errorf("ReadSamples() = %d, %v", n, err)
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}

	if _, err := d.Decode(bytes.NewReader([]byte("nope"))); !errors.Is(err, ErrNoFrames) {
		t.Errorf("Decode(garbage) error = %v, want %v", err, ErrNoFrames)
	}
}

func BenchmarkStreamRead(b *testing.B) {
	data := audiotest.Stream(audiotest.CBR128(audiotest.JointStereo), 200)
	buf := make([]float32, 8192)

	b.ReportAllocs()
	for b.Loop() {
		f, err := Open(bytes.NewReader(data))
		if err != nil {
			b.Fatal(err)
		}
		s, err := f.NewStream()
		if err != nil {
			b.Fatal(err)
		}
		for {
			if _, err := s.ReadSamples(buf); err != nil {
				break
			}
		}
		_ = f.Close()
	}
}

func TestStream_IndexNotReady(t *testing.T) {
	t.Parallel()

	pr, pw := io.Pipe()
	f := openTest(t, pr)
	t.Cleanup(func() { _ = pw.Close() })

	canceled, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := f.NewStreamContext(canceled); !errors.Is(err, ErrIndexNotReady) {
		t.Fatalf("NewStreamContext() error = %v, want %v", err, ErrIndexNotReady)
	}

	go func() {
		_, _ = pw.Write(audiotest.Stream(audiotest.CBR128(audiotest.Stereo), 10))
	}()
	s := newTestStream(t, f)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := s.SeekContext(ctx, 1<<30)
	if !errors.Is(err, ErrIndexNotReady) || !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("SeekContext() error = %v, want %v and %v", err, ErrIndexNotReady, context.DeadlineExceeded)
	}
	if s.Position() != 0 {
		t.Errorf("Position() after failed seek = %d, want 0", s.Position())
	}
}

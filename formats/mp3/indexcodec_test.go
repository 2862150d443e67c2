// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"errors"
	"io"
	"math"
	"slices"
	"testing"

	"github.com/ik5/mp3seek/internal/audiotest"
)

func cbrEntries(n, length, count int) []FrameIndex {
	out := make([]FrameIndex, n)
	for i := range out {
		out[i] = FrameIndex{
			StreamPosition: int64(i * length),
			SamplePosition: int64(i * count),
			SampleCount:    count,
			FrameLength:    length,
		}
	}
	return out
}

func TestWriteIndex_RoundTrip(t *testing.T) {
	t.Parallel()

	mixed := cbrEntries(4, 417, 1152)
	mixed[3].SampleCount = 384

	manyLengths := make([]FrameIndex, 300)
	var pos, samples int64
	for i := range manyLengths {
		manyLengths[i] = FrameIndex{StreamPosition: pos, SamplePosition: samples, SampleCount: 1152, FrameLength: 100 + i}
		pos += int64(100 + i)
		samples += 1152
	}

	huge := cbrEntries(2, 1000, 1152)
	huge[1].StreamPosition = math.MaxUint32 + 1

	tests := []struct {
		name    string
		entries []FrameIndex
	}{
		{"empty", nil},
		{"single", cbrEntries(1, 417, 1152)},
		{"constant CBR", cbrEntries(500, 417, 1152)},
		{"varying sample count", mixed},
		{"dictionary overflow", manyLengths},
		{"eight byte offsets", huge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := WriteIndex(&buf, tt.entries); err != nil {
				t.Fatalf("WriteIndex() error = %v", err)
			}
			got, err := ReadIndex(&buf)
			if err != nil {
				t.Fatalf("ReadIndex() error = %v", err)
			}
			if !slices.Equal(got, tt.entries) {
				t.Errorf("round trip mismatch: got %d entries, want %d", len(got), len(tt.entries))
			}
		})
	}
}

func TestWriteIndex_Layout(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteIndex(&buf, cbrEntries(2, 417, 1152)); err != nil {
		t.Fatal(err)
	}
	want := []byte{
		1, 0x80, 0x04, // constant sample count 1152
		1, 1, 0xA1, 0x01, // dictionary: one length, 417
		2, 2, // both positions fit in two bytes
		0, 0, 0, 0, 0,
		0xA1, 0x01, 0x80, 0x04, 0,
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("WriteIndex() = % x, want % x", buf.Bytes(), want)
	}
}

func TestWriteIndex_Range(t *testing.T) {
	t.Parallel()

	for _, e := range []FrameIndex{
		{StreamPosition: -1, FrameLength: 417},
		{SampleCount: math.MaxUint16 + 1, FrameLength: 417},
		{FrameLength: math.MaxUint16 + 1},
	} {
		if err := WriteIndex(io.Discard, []FrameIndex{e}); !errors.Is(err, ErrIndexRange) {
			t.Errorf("WriteIndex(%+v) error = %v, want %v", e, err, ErrIndexRange)
		}
	}
}

func TestReadIndex_Truncated(t *testing.T) {
	t.Parallel()

	entries := cbrEntries(10, 417, 1152)
	var buf bytes.Buffer
	if err := WriteIndex(&buf, entries); err != nil {
		t.Fatal(err)
	}
	full := buf.Bytes()

	for cut := range len(full) {
		got, err := ReadIndex(bytes.NewReader(full[:cut]))
		if err != nil {
			t.Fatalf("ReadIndex(%d bytes) error = %v", cut, err)
		}
		if !slices.Equal(got, entries[:len(got)]) {
			t.Fatalf("ReadIndex(%d bytes) returned entries that are not a prefix", cut)
		}
	}
}

func TestReadIndex_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{"bad width", []byte{0, 0, 3, 2}},
		{"slot outside dictionary", []byte{1, 0x80, 0x04, 1, 1, 0xA1, 0x01, 1, 1, 0, 0, 5}},
	}
	for _, tt := range tests {
		if _, err := ReadIndex(bytes.NewReader(tt.data)); !errors.Is(err, ErrMalformedIndex) {
			t.Errorf("%s: error = %v, want %v", tt.name, err, ErrMalformedIndex)
		}
	}
}

func TestIndex_PersistAndResume(t *testing.T) {
	t.Parallel()

	data := audiotest.Stream(audiotest.CBR128(audiotest.Stereo), 20)
	entries, _, err := BuildIndex(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteIndex(&buf, entries[:8]); err != nil {
		t.Fatal(err)
	}
	saved, err := ReadIndex(&buf)
	if err != nil {
		t.Fatal(err)
	}

	last := saved[len(saved)-1]
	from := last.StreamPosition + int64(last.FrameLength)
	rest, _, err := BuildIndex(bytes.NewReader(data[from:]), WithResume(from, last.End()))
	if err != nil {
		t.Fatal(err)
	}
	if got := append(saved, rest...); !slices.Equal(got, entries) {
		t.Errorf("resumed index differs from a full scan")
	}
}

func BenchmarkWriteIndex(b *testing.B) {
	entries := cbrEntries(10000, 417, 1152)

	b.ReportAllocs()
	for b.Loop() {
		if err := WriteIndex(io.Discard, entries); err != nil {
			b.Fatal(err)
		}
	}
}

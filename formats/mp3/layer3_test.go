// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"errors"
	"io"
	"math"
	"os"
	"testing"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/mp3seek/audio"
	"github.com/ik5/mp3seek/formats/mp3/internal/bitstream"
	"github.com/ik5/mp3seek/internal/audiotest"
)

// testGranule holds the side information fields the tests vary; all other
// fields are zero.
type testGranule struct {
	part23, bigValues, globalGain, table0 int
}

// monoSideInfo encodes MPEG-1 mono side information with g in granule 0
// and an empty granule 1.
func monoSideInfo(mainDataBegin int, g testGranule) []byte {
	var w audiotest.BitWriter
	w.Write(uint32(mainDataBegin), 9)
	w.Write(0, 5) // private bits
	w.Write(0, 4) // scfsi
	for gr := range 2 {
		if gr == 1 {
			g = testGranule{}
		}
		w.Write(uint32(g.part23), 12)
		w.Write(uint32(g.bigValues), 9)
		w.Write(uint32(g.globalGain), 8)
		w.Write(0, 4) // scalefac_compress
		w.Write(0, 1) // window switching
		w.Write(uint32(g.table0), 5)
		w.Write(0, 5)
		w.Write(0, 5)
		w.Write(0, 4) // region0_count
		w.Write(0, 3) // region1_count
		w.Write(0, 3) // preflag, scalefac_scale, count1table_select
	}
	return w.Bytes()
}

func TestLayer3_Silence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		spec    audiotest.Spec
		samples int
		chans   int
	}{
		{"MPEG-1 stereo", audiotest.CBR128(audiotest.Stereo), 1152, 2},
		{"MPEG-1 joint stereo", audiotest.Spec{Version: audiotest.MPEG1, Layer: audiotest.Layer3, BitrateIndex: 9, Mode: audiotest.JointStereo, ModeExt: 3}, 1152, 2},
		{"MPEG-1 mono", audiotest.CBR128(audiotest.Mono), 1152, 1},
		{"MPEG-2 stereo", audiotest.Spec{Version: audiotest.MPEG2, Layer: audiotest.Layer3, BitrateIndex: 8, Mode: audiotest.Stereo}, 576, 2},
		{"MPEG-2.5 mono", audiotest.Spec{Version: audiotest.MPEG25, Layer: audiotest.Layer3, BitrateIndex: 4, SampleRateIndex: 2, Mode: audiotest.Mono}, 576, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			pcm, n, nch := decodeFrames(t, NewFrameDecoder(), repeat(tt.spec.Silent(), 3)...)
			if n != tt.samples || nch != tt.chans {
				t.Fatalf("decoded %d samples × %d channels, want %d × %d", n, nch, tt.samples, tt.chans)
			}
			for i, v := range pcm {
				if v != 0 {
					t.Fatalf("sample %d = %v, want 0", i, v)
				}
			}
		})
	}
}

func TestLayer3_SingleLine(t *testing.T) {
	t.Parallel()

	// Table 1 code "01" is (x=1, y=0), then a positive sign bit.
	side := monoSideInfo(0, testGranule{part23: 3, bigValues: 1, globalGain: 210, table0: 1})
	frame := audiotest.CBR128(audiotest.Mono).Frame(append(side, 0x40))

	pcm, n, _ := decodeFrames(t, NewFrameDecoder(), frame)
	if n != 1152 {
		t.Fatalf("n = %d, want 1152", n)
	}
	nonzero := 0
	for i, v := range pcm {
		if math.Abs(float64(v)) >= 4 {
			t.Fatalf("sample %d = %v out of range", i, v)
		}
		if v != 0 {
			nonzero++
		}
	}
	if nonzero == 0 {
		t.Error("a non-zero spectral line produced silence")
	}
}

func TestLayer3_Errors(t *testing.T) {
	t.Parallel()

	mono := audiotest.CBR128(audiotest.Mono)
	tests := []struct {
		name    string
		payload []byte
		want    error
	}{
		{"reservoir underrun", monoSideInfo(100, testGranule{}), ErrReservoirUnderrun},
		{"table 4", monoSideInfo(0, testGranule{table0: 4}), ErrMalformedFrame},
		{"big_values too large", monoSideInfo(0, testGranule{bigValues: 289}), ErrMalformedFrame},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, err := NewFrame(mono.Frame(tt.payload))
			if err != nil {
				t.Fatal(err)
			}
			defer f.Release()

			_, _, err = NewFrameDecoder().DecodeFloat(f, make([]float32, 2*maxFrameSamples))
			if !errors.Is(err, tt.want) {
				t.Errorf("DecodeFloat() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLayer3_UnderrunRecovers(t *testing.T) {
	t.Parallel()

	mono := audiotest.CBR128(audiotest.Mono)
	d := NewFrameDecoder()
	out := make([]float32, 2*maxFrameSamples)

	first, _ := NewFrame(mono.Frame(monoSideInfo(100, testGranule{})))
	defer first.Release()
	if _, _, err := d.DecodeFloat(first, out); !errors.Is(err, ErrReservoirUnderrun) {
		t.Fatalf("first frame error = %v, want %v", err, ErrReservoirUnderrun)
	}

	// The first frame's payload is now history the second one can use.
	second, _ := NewFrame(mono.Frame(monoSideInfo(100, testGranule{})))
	defer second.Release()
	if _, _, err := d.DecodeFloat(second, out); err != nil {
		t.Fatalf("second frame error = %v", err)
	}

	d.Reset()
	if _, _, err := d.DecodeFloat(second, out); !errors.Is(err, ErrReservoirUnderrun) {
		t.Errorf("after Reset error = %v, want %v", err, ErrReservoirUnderrun)
	}
}

func TestHuffmanTrees_DecodeEveryCode(t *testing.T) {
	t.Parallel()

	for table, s := range huffmanSpecs {
		if s.dim == 0 {
			continue
		}
		var w audiotest.BitWriter
		var syms []int
		for sym, n := range s.lens {
			if n == 0 {
				continue
			}
			w.Write(s.codes[sym], int(n))
			syms = append(syms, sym)
		}

		var r bitstream.Reservoir
		r.AddBits(w.Bytes(), 0)
		tree := huffTrees[table]()
		for _, want := range syms {
			got, err := tree.decode(&r)
			if err != nil {
				t.Fatalf("table %d: decode error = %v", table, err)
			}
			if got != want {
				t.Fatalf("table %d: decoded %d, want %d", table, got, want)
			}
		}
	}
}

func TestReadPair_Escape(t *testing.T) {
	t.Parallel()

	// Table 16 symbol (15, 1) carries a 1-bit escape on x, then both signs.
	s := huffmanSpecs[16]
	sym := 15*16 + 1
	var w audiotest.BitWriter
	w.Write(s.codes[sym], int(s.lens[sym]))
	w.Write(1, 1) // linbits: x = 16
	w.Write(1, 1) // x negative
	w.Write(0, 1) // y positive

	var r bitstream.Reservoir
	r.AddBits(w.Bytes(), 0)
	x, y, err := readPair(&r, 16)
	if err != nil {
		t.Fatal(err)
	}
	if x != -16 || y != 1 {
		t.Errorf("readPair() = (%d, %d), want (-16, 1)", x, y)
	}
}

func TestLayoutFor_CoversGranule(t *testing.T) {
	t.Parallel()

	for tbl := range sfbLong {
		for _, g := range []granuleInfo{
			{},
			{windowSwitching: true, blockType: 2},
			{windowSwitching: true, blockType: 2, mixed: true},
		} {
			var buf [40]band
			next := 0
			for _, b := range layoutFor(&g, tbl, &buf) {
				if b.start != next {
					t.Fatalf("table %d %+v: band starts at %d, want %d", tbl, g, b.start, next)
				}
				next = b.start + b.width
			}
			if next != granuleLines {
				t.Errorf("table %d %+v: layout ends at %d, want %d", tbl, g, next, granuleLines)
			}
		}
	}
}

func TestJointStereo(t *testing.T) {
	t.Parallel()

	h := FrameHeader{Version: MPEG1, Layer: LayerIII, SampleRateIndex: 0, ChannelMode: JointStereo}

	t.Run("mid/side", func(t *testing.T) {
		t.Parallel()

		d := newLayer3Decoder(StereoBoth)
		h := h
		h.ChannelExtension = 2
		for i := range granuleLines {
			d.xr[0][i], d.xr[1][i] = 1, 1
		}
		d.jointStereo(h, 0)
		if math.Abs(float64(d.xr[0][100])-math.Sqrt2) > 1e-6 || d.xr[1][100] != 0 {
			t.Errorf("got (%v, %v), want (√2, 0)", d.xr[0][100], d.xr[1][100])
		}
	})

	t.Run("intensity", func(t *testing.T) {
		t.Parallel()

		d := newLayer3Decoder(StereoBoth)
		h := h
		h.ChannelExtension = 1
		for i := range granuleLines {
			d.xr[0][i] = 1
		}
		for sfb := range d.sf[0][1].l {
			d.sf[0][1].l[sfb] = 3
		}
		d.jointStereo(h, 0)
		for _, i := range []int{0, 300, 575} {
			if math.Abs(float64(d.xr[0][i])-0.5) > 1e-6 || math.Abs(float64(d.xr[1][i])-0.5) > 1e-6 {
				t.Errorf("line %d = (%v, %v), want (0.5, 0.5)", i, d.xr[0][i], d.xr[1][i])
			}
		}
	})

	t.Run("illegal position falls back to mid/side", func(t *testing.T) {
		t.Parallel()

		d := newLayer3Decoder(StereoBoth)
		h := h
		h.ChannelExtension = 3
		for i := range granuleLines {
			d.xr[0][i] = 1
		}
		for sfb := range d.sf[0][1].l {
			d.sf[0][1].l[sfb] = 7
		}
		d.jointStereo(h, 0)
		want := float32(math.Sqrt2 / 2)
		if d.xr[0][10] != want || d.xr[1][10] != want {
			t.Errorf("got (%v, %v), want (%v, %v)", d.xr[0][10], d.xr[1][10], want, want)
		}
	})
}

func TestLayer3_MatchesGoMP3Length(t *testing.T) {
	t.Parallel()

	const frames = 20
	data := audiotest.Stream(audiotest.CBR128(audiotest.JointStereo), frames)

	ref, err := gomp3.NewDecoder(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("go-mp3 NewDecoder() error = %v", err)
	}
	if ref.SampleRate() != 44100 {
		t.Errorf("go-mp3 SampleRate() = %d, want 44100", ref.SampleRate())
	}

	ix := NewIndexer(bytes.NewReader(data))
	d := NewFrameDecoder()
	out := make([]float32, 2*maxFrameSamples)
	total := 0
	for _, f := range ix.All() {
		n, _, err := d.DecodeFloat(f, out)
		f.Release()
		if err != nil {
			t.Fatal(err)
		}
		total += n
	}

	// go-mp3 always produces 16-bit stereo: four bytes per sample.
	if got := ref.Length() / 4; got != int64(total) {
		t.Errorf("go-mp3 length %d samples, decoded %d", got, total)
	}

	head := make([]byte, 4096)
	if _, err := io.ReadFull(ref, head); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(head, make([]byte, len(head))) {
		t.Error("go-mp3 decoded the silent stream to non-zero samples")
	}
}

func BenchmarkLayer3Decode(b *testing.B) {
	f, err := NewFrame(audiotest.CBR128(audiotest.JointStereo).Silent())
	if err != nil {
		b.Fatal(err)
	}
	defer f.Release()
	d := NewFrameDecoder()
	out := make([]float32, 2*maxFrameSamples)

	b.ReportAllocs()
	for b.Loop() {
		if _, _, err := d.DecodeFloat(f, out); err != nil {
			b.Fatal(err)
		}
	}
}

// speech_mpeg2.mp3 is the first 80 frames of the public domain speech
// sample shipped with go-mp3: MPEG-2 Layer III, 22050 Hz mono, 48 kbps,
// behind an ID3v2 tag.
func TestLayer3_MatchesGoMP3Samples(t *testing.T) {
	t.Parallel()

	const (
		frames = 80
		// Frames skipped before comparing, while both reservoirs settle.
		preRoll = 4
	)

	data, err := os.ReadFile("testdata/speech_mpeg2.mp3")
	if err != nil {
		t.Fatal(err)
	}

	ref, err := gomp3.NewDecoder(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("go-mp3 NewDecoder() error = %v", err)
	}
	raw, err := io.ReadAll(ref)
	if err != nil {
		t.Fatalf("go-mp3 Read() error = %v", err)
	}

	s := newTestStream(t, openTest(t, bytes.NewReader(data)))
	if s.SampleRate() != 22050 || s.Channels() != 1 {
		t.Fatalf("format = %d Hz x%d, want 22050 Hz x1", s.SampleRate(), s.Channels())
	}
	got, err := audio.ReadAll(s)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	// go-mp3 duplicates mono into 16-bit stereo.
	if len(got) != frames*576 || len(raw) != 4*len(got) {
		t.Fatalf("decoded %d samples, go-mp3 %d bytes, want %d samples", len(got), len(raw), frames*576)
	}

	var sqErr, sqRef float64
	maxDiff := 0
	for i := preRoll * 576; i < len(got); i++ {
		want := int(int16(uint16(raw[4*i]) | uint16(raw[4*i+1])<<8))
		have := int(got[i] * 32767)
		have = min(max(have, -32767), 32767)
		d := have - want
		sqErr += float64(d * d)
		sqRef += float64(want * want)
		if d < 0 {
			d = -d
		}
		maxDiff = max(maxDiff, d)
	}
	n := float64(len(got) - preRoll*576)

	if rms := math.Sqrt(sqRef / n); rms < 100 {
		t.Fatalf("reference RMS = %.1f, fixture looks silent", rms)
	}
	if mse := sqErr / n; mse > 1 {
		t.Errorf("mean squared error = %.3f LSB^2, want <= 1", mse)
	}
	if maxDiff > 64 {
		t.Errorf("max sample difference = %d LSB, want <= 64", maxDiff)
	}
}

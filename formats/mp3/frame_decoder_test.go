// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"errors"
	"io"
	"testing"

	"github.com/ik5/mp3seek/internal/audiotest"
	"github.com/ik5/mp3seek/utils"
)

func TestFrameDecoder_StereoModes(t *testing.T) {
	t.Parallel()

	frame := layerIStereo.Frame(layerIStereoPayload(halfScaleI))
	tests := []struct {
		mode  StereoMode
		chans int
		want  []float64
	}{
		{StereoBoth, 2, []float64{0.50008, 0}},
		{StereoDownmix, 1, []float64{0.25004}},
		{StereoLeft, 1, []float64{0.50008}},
		{StereoRight, 1, []float64{0}},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			t.Parallel()

			pcm, n, nch := decodeFrames(t, NewFrameDecoder(WithStereoMode(tt.mode)), repeat(frame, 4)...)
			if n != 384 || nch != tt.chans {
				t.Fatalf("decoded %d samples × %d channels, want 384 × %d", n, nch, tt.chans)
			}
			for ch, want := range tt.want {
				assertLevel(t, pcm, nch, ch, want, 2e-3)
			}
		})
	}
}

func TestFrameDecoder_SetStereoMode(t *testing.T) {
	t.Parallel()

	frame := layerIStereo.Frame(layerIStereoPayload(halfScaleI))
	d := NewFrameDecoder()
	if _, _, nch := decodeFrames(t, d, repeat(frame, 4)...); nch != 2 {
		t.Fatalf("channels = %d, want 2", nch)
	}

	// Each switch is followed by a single frame, so any history carried
	// over from another channel would show as a transient.
	steps := []struct {
		mode StereoMode
		want []float64
	}{
		{StereoRight, []float64{0}},
		{StereoLeft, []float64{0.50008}},
		{StereoDownmix, []float64{0.25004}},
		{StereoRight, []float64{0}},
		{StereoBoth, []float64{0.50008, 0}},
	}
	for i, st := range steps {
		d.SetStereoMode(st.mode)
		pcm, n, nch := decodeFrames(t, d, frame)
		if n != 384 || nch != len(st.want) {
			t.Fatalf("step %d (%s): decoded %d × %d, want 384 × %d", i, st.mode, n, nch, len(st.want))
		}
		for ch, want := range st.want {
			tol := 2e-3
			if want == 0 {
				tol = 0
			}
			assertLevel(t, pcm, nch, ch, want, tol)
		}
	}
}

func TestFrameDecoder_Decode(t *testing.T) {
	t.Parallel()

	frame := layerIMono.Frame(audiotest.LayerIMono(0, 14, 3, halfScaleI))
	d := NewFrameDecoder()
	want, _, _ := decodeFrames(t, NewFrameDecoder(), repeat(frame, 2)...)

	var p *PCM
	for range 2 {
		f, err := NewFrame(frame)
		if err != nil {
			t.Fatal(err)
		}
		p.Release()
		p, err = d.Decode(f)
		f.Release()
		if err != nil {
			t.Fatalf("Decode() error = %v", err)
		}
	}
	defer p.Release()

	if p.Channels != 1 || p.Samples != 384 || p.SampleRate != 44100 {
		t.Errorf("PCM = %d ch, %d samples, %d Hz; want 1, 384, 44100", p.Channels, p.Samples, p.SampleRate)
	}
	if len(p.Bytes()) != 384*4 {
		t.Fatalf("len(Bytes()) = %d, want %d", len(p.Bytes()), 384*4)
	}

	got := make([]float32, 384)
	utils.Float32s(got, p.Bytes())
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("sample %d = %v, DecodeFloat gave %v", i, got[i], want[i])
		}
	}

	p.Release()
	if p.Bytes() != nil {
		t.Error("Bytes() after Release not nil")
	}
}

func TestFrameDecoder_Errors(t *testing.T) {
	t.Parallel()

	d := NewFrameDecoder()
	out := make([]float32, 2*maxFrameSamples)

	if _, _, err := d.DecodeFloat(nil, out); !errors.Is(err, ErrFrameUnavailable) {
		t.Errorf("nil frame: error = %v, want %v", err, ErrFrameUnavailable)
	}

	released, _ := NewFrame(layerIMono.Silent())
	released.Release()
	if _, _, err := d.DecodeFloat(released, out); !errors.Is(err, ErrFrameUnavailable) {
		t.Errorf("released frame: error = %v, want %v", err, ErrFrameUnavailable)
	}

	reserved := &Frame{Header: FrameHeader{Layer: layerReserved}, data: make([]byte, 8)}
	if _, err := d.Decode(reserved); !errors.Is(err, ErrUnsupportedLayer) {
		t.Errorf("reserved layer: error = %v, want %v", err, ErrUnsupportedLayer)
	}

	f, _ := NewFrame(layerIMono.Silent())
	defer f.Release()
	if _, _, err := d.DecodeFloat(f, out[:100]); !errors.Is(err, io.ErrShortBuffer) {
		t.Errorf("short buffer: error = %v, want %v", err, io.ErrShortBuffer)
	}
}

func TestFrameDecoder_CRCCheck(t *testing.T) {
	t.Parallel()

	good := protectedFrame(t)
	bad := append([]byte(nil), good...)
	bad[4] ^= 0xFF

	out := make([]float32, 2*maxFrameSamples)
	for _, tt := range []struct {
		name  string
		raw   []byte
		opts  []Option
		check error
	}{
		{"correct CRC", good, []Option{WithCRCCheck()}, nil},
		{"bad CRC", bad, []Option{WithCRCCheck()}, ErrCRCMismatch},
		{"bad CRC unchecked", bad, nil, nil},
	} {
		f, err := NewFrame(tt.raw)
		if err != nil {
			t.Fatal(err)
		}
		_, _, err = NewFrameDecoder(tt.opts...).DecodeFloat(f, out)
		f.Release()
		if tt.check == nil {
			if errors.Is(err, ErrCRCMismatch) {
				t.Errorf("%s: unexpected %v", tt.name, err)
			}
			continue
		}
		if !errors.Is(err, tt.check) {
			t.Errorf("%s: error = %v, want %v", tt.name, err, tt.check)
		}
	}
}

func TestFrameDecoder_Equalizer(t *testing.T) {
	t.Parallel()

	frame := layerIMono.Frame(audiotest.LayerIMono(0, 14, 3, halfScaleI))
	gains := make([]float32, 32)
	gains[0] = -6 // half amplitude

	pcm, _, _ := decodeFrames(t, NewFrameDecoder(WithEqualizer(gains)), repeat(frame, 4)...)
	assertLevel(t, pcm, 1, 0, 0.25004, 2e-3)

	d := NewFrameDecoder()
	d.SetEqualizer(gains)
	pcm, _, _ = decodeFrames(t, d, repeat(frame, 4)...)
	assertLevel(t, pcm, 1, 0, 0.25004, 2e-3)

	d.SetEqualizer(nil)
	pcm, _, _ = decodeFrames(t, d, repeat(frame, 4)...)
	assertLevel(t, pcm, 1, 0, 0.50008, 2e-3)
}

func TestFrameDecoder_DecodeFloatAllocs(t *testing.T) {
	f, err := NewFrame(audiotest.CBR128(audiotest.Stereo).Silent())
	if err != nil {
		t.Fatal(err)
	}
	defer f.Release()
	d := NewFrameDecoder()
	out := make([]float32, 2*maxFrameSamples)
	d.DecodeFloat(f, out)

	allocs := testing.AllocsPerRun(20, func() {
		d.DecodeFloat(f, out)
	})
	if allocs != 0 {
		t.Errorf("DecodeFloat allocates %v times per frame, want 0", allocs)
	}
}

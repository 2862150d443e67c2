// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/mp3seek/audio"
	"github.com/ik5/mp3seek/utils"
)

const defaultChunk = 4096

// WriteSource drains src into w as 16-bit PCM WAV and returns the number of
// sample frames written. The RIFF sizes are patched when the encoder is
// closed, hence the io.WriteSeeker.
func WriteSource(w io.WriteSeeker, src audio.Source) (int64, error) {
	channels, rate := src.Channels(), src.SampleRate()
	switch {
	case channels < 1:
		return 0, ErrInvalidChannels
	case rate < 1:
		return 0, ErrInvalidSampleRate
	}

	size := max(src.BufSize(), defaultChunk)
	size -= size % channels
	in := make([]float32, size)
	out := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: rate},
		Data:           make([]int, size),
		SourceBitDepth: 16,
	}

	enc := gowav.NewEncoder(w, rate, 16, channels, 1)
	var frames int64
	for {
		n, err := src.ReadSamples(in)
		if n > 0 {
			out.Data = out.Data[:n]
			for i, x := range in[:n] {
				out.Data[i] = int(utils.Float32ToInt16(x))
			}
			if werr := enc.Write(out); werr != nil {
				return frames, fmt.Errorf("wav encode: %w", werr)
			}
			frames += int64(n / channels)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return frames, err
		}
	}

	if frames == 0 {
		// The encoder only emits its header on the first Write.
		out.Data = out.Data[:0]
		if err := enc.Write(out); err != nil {
			return 0, fmt.Errorf("wav encode: %w", err)
		}
	}
	if err := enc.Close(); err != nil {
		return frames, fmt.Errorf("wav close: %w", err)
	}
	return frames, nil
}

// WriteBuffer encodes a go-audio float buffer as 16-bit PCM WAV.
func WriteBuffer(w io.WriteSeeker, buf *goaudio.Float32Buffer) error {
	if buf == nil || buf.Format == nil {
		return ErrInvalidChannels
	}
	_, err := WriteSource(w, &bufferSource{buf: buf})
	return err
}

// bufferSource replays a Float32Buffer as an audio.Source.
type bufferSource struct {
	buf *goaudio.Float32Buffer
	off int
}

func (b *bufferSource) SampleRate() int { return b.buf.Format.SampleRate }
func (b *bufferSource) Channels() int   { return b.buf.Format.NumChannels }
func (b *bufferSource) BufSize() int    { return defaultChunk }
func (b *bufferSource) Close() error    { return nil }

func (b *bufferSource) ReadSamples(dst []float32) (int, error) {
	if b.off >= len(b.buf.Data) {
		return 0, io.EOF
	}
	n := copy(dst, b.buf.Data[b.off:])
	b.off += n
	return n, nil
}

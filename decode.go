// SPDX-License-Identifier: EPL-2.0

package mp3seek

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/mp3seek/audio"
	"github.com/ik5/mp3seek/formats/mp3"
	"github.com/ik5/mp3seek/formats/wav"
)

// DecodeAll decodes every frame of r into one interleaved buffer.
//
// The whole stream is held in memory, so this is meant for short clips and
// tests. Use mp3.Open and Stream for anything that needs seeking or
// bounded memory.
func DecodeAll(r io.Reader, opts ...mp3.Option) (*goaudio.Float32Buffer, error) {
	src, err := mp3.Decoder{Options: opts}.Decode(r)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	data, err := audio.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return &goaudio.Float32Buffer{
		Format: &goaudio.Format{
			NumChannels: src.Channels(),
			SampleRate:  src.SampleRate(),
		},
		Data: data,
	}, nil
}

// TranscodeToWAV streams r into w as 16-bit PCM WAV and returns the number
// of sample frames written. When w can seek, memory stays bounded by the
// ring size; other writers get the file once decoding is complete.
func TranscodeToWAV(w io.Writer, r io.Reader, opts ...mp3.Option) (int64, error) {
	src, err := mp3.Decoder{Options: opts}.Decode(r)
	if err != nil {
		return 0, err
	}
	defer src.Close()

	return wav.WriteStream(w, src)
}

// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/orcaman/writerseeker"

	"github.com/ik5/mp3seek/audio"
)

const headerSize = 44

// WriteWAV16 writes interleaved 16-bit PCM samples as a canonical WAV
// file. Unlike WriteSource it needs the whole signal up front but works
// with any io.Writer.
func WriteWAV16(w io.Writer, sampleRate, channels int, samples []int16) error {
	switch {
	case channels < 1:
		return ErrInvalidChannels
	case sampleRate < 1:
		return ErrInvalidSampleRate
	case len(samples)%channels != 0:
		return ErrPartialFrame
	}

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           make([]int, len(samples)),
		SourceBitDepth: 16,
	}
	for i, s := range samples {
		buf.Data[i] = int(s)
	}

	return throughMemory(w, func(ws io.WriteSeeker) error {
		enc := gowav.NewEncoder(ws, sampleRate, 16, channels, 1)
		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("wav encode: %w", err)
		}
		return enc.Close()
	})
}

// WriteStream is WriteSource for any io.Writer. Writers that can seek are
// encoded in place; others, such as pipes, receive the file once src is
// drained, so the whole file is held in memory meanwhile.
func WriteStream(w io.Writer, src audio.Source) (int64, error) {
	if ws, ok := w.(io.WriteSeeker); ok {
		return WriteSource(ws, src)
	}

	var frames int64
	err := throughMemory(w, func(ws io.WriteSeeker) error {
		var err error
		frames, err = WriteSource(ws, src)
		return err
	})
	return frames, err
}

// throughMemory runs encode against an in-memory io.WriteSeeker and copies
// the finished file to w.
func throughMemory(w io.Writer, encode func(io.WriteSeeker) error) error {
	ws := &writerseeker.WriterSeeker{}
	if err := encode(ws); err != nil {
		return err
	}
	if _, err := io.Copy(w, ws.Reader()); err != nil {
		return fmt.Errorf("wav copy: %w", err)
	}
	return nil
}

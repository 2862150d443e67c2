// SPDX-License-Identifier: EPL-2.0

// Package wav writes decoded PCM as 16-bit WAV files.
//
// WriteSource drains any audio.Source, such as an MP3 stream, through the
// github.com/go-audio/wav encoder. It needs an io.WriteSeeker because the
// RIFF sizes are only known at the end:
//
//	src, _ := mp3.Decoder{}.Decode(in)
//	defer src.Close()
//	out, _ := os.Create("output.wav")
//	frames, err := wav.WriteSource(out, src)
//
// WriteStream accepts any io.Writer; writers that cannot seek receive the
// file from memory once the source is drained. WriteWAV16 writes an
// in-memory signal to any io.Writer.
//
// Float samples are clamped to [-1, 1] and scaled by 32767.
package wav

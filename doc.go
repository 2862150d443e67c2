// SPDX-License-Identifier: EPL-2.0

// Package mp3seek decodes MPEG-1, MPEG-2 and MPEG-2.5 audio (Layers I, II
// and III) with sample accurate seeking.
//
// The work happens in the subpackages:
//   - formats/mp3 indexes frames, decodes them and exposes seekable streams
//   - formats/wav writes decoded audio as 16-bit PCM WAV
//   - audio holds the Source interface, the decoder Registry and the Ring
//     that connects a decode goroutine to its reader
//   - utils converts between float32 samples and PCM bytes
//
// # Quick Start
//
// DecodeAll is the shortest path from bytes to samples:
//
//	buf, err := mp3seek.DecodeAll(file)
//	// buf.Data holds interleaved float32 samples
//
// TranscodeToWAV streams a file to disk without holding it in memory:
//
//	out, _ := os.Create("out.wav")
//	frames, err := mp3seek.TranscodeToWAV(out, file)
//
// # Seeking
//
// For random access open the file and create one or more streams:
//
//	f, _ := mp3.Open(file)
//	defer f.Close()
//
//	s, _ := f.NewStream()
//	_ = s.Seek(44100 * 30) // 30 seconds in
//	n, err := s.ReadSamples(buf)
//
// Open returns as soon as the first frames are indexed. Indexing continues
// in the background and seeks past the indexed range wait for it.
//
// See the individual subpackages for more detailed documentation.
package mp3seek

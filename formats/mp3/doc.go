// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1, MPEG-2 and MPEG-2.5 audio, Layers I, II and
// III, with sample-accurate seeking backed by a frame index.
//
// # Opening a File
//
// Open starts a background goroutine that scans the input once, front to
// back, and appends one FrameIndex per audio frame to a shared FrameList.
// Streams can be created as soon as the first frame is indexed:
//
//	f, err := mp3.Open(r)
//	if err != nil {
//	    // Handle error
//	}
//	defer f.Close()
//
//	s, err := f.NewStream()
//	buf := make([]float32, 4096)
//	n, err := s.ReadSamples(buf)
//
// Inputs that implement io.ReaderAt (files, bytes.Reader) are read in
// place. Any other io.Reader is spooled into memory as it is indexed.
//
// # Seeking
//
// Stream.Seek takes a sample position per channel. It waits until the
// index covers the target, restarts decoding two frames early so the bit
// reservoir and the IMDCT overlap are primed, and discards the output of
// those frames. Position reports the frame boundary the stream landed on:
//
//	if err := s.Seek(int64(30 * s.SampleRate())); err != nil {
//	    // Handle error
//	}
//	fmt.Println(s.Position())
//
// # Output Format
//
// Samples are float32, nominally in [-1.0, 1.0], interleaved by channel.
// Read exposes the same samples as little-endian bytes. WithStereoMode
// renders two-channel input as a downmix or as a single channel.
//
// # Persisting the Index
//
// WriteIndex and ReadIndex store a FrameList compactly. Passing a stored
// index to Open with WithIndex lets seeking start at once; scanning
// resumes after the last stored frame.
//
// # Lower Level
//
// Indexer, LoadFrame and FrameDecoder are the building blocks Stream uses
// and can be driven directly, for example to decode a file in one pass:
//
//	ix := mp3.NewIndexer(r)
//	dec := mp3.NewFrameDecoder()
//	for _, frame := range ix.All() {
//	    pcm, err := dec.Decode(frame)
//	    frame.Release()
//	    // use pcm.Bytes(), then pcm.Release()
//	}
//
// # Limitations
//
// Free-format bitstreams are not supported, and CRC words are only checked
// for Layer III frames (see WithCRCCheck).
package mp3

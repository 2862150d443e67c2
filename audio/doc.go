// SPDX-License-Identifier: EPL-2.0

// Package audio provides the format-independent building blocks shared by
// the decoders: the Source and Seeker interfaces, a decoder Registry and
// the Ring that carries PCM from a decode goroutine to its reader.
//
// # Source Interface
//
// The Source interface is the foundation of audio processing:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Seeker extends it with a sample-addressed timeline (Seek, Position,
// Length) for sources that support random access.
//
// # Format Registry
//
// The registry allows dynamic decoder registration:
//
//	registry := audio.NewRegistry()
//	mp3.Register(registry)
//	decoder, _ := registry.Get("mp3")
//
// # Ring
//
// Ring is a bounded byte FIFO with generations. A seek calls Reset, which
// drops buffered bytes and starts a new generation; writes tagged with an
// older generation fail with ErrStaleGeneration instead of leaking
// pre-seek audio. Ring also tracks the stream offset of its read cursor,
// so a reader can tell its position without talking to the producer.
//
// # Sample Format
//
// Audio samples are float32, nominally in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// # Error Handling
//
// ReadSamples returns io.EOF when no more data is available. Other errors
// indicate problems with the source:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    // Process n samples from buf
//	    if errors.Is(err, io.EOF) {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
//
// ReadAll wraps that loop for sources small enough to hold in memory.
package audio

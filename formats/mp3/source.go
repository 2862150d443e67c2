// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"errors"
	"io"

	"github.com/ik5/mp3seek/audio"
)

// source owns the File behind its Stream so closing the source releases
// both.
type source struct {
	*Stream
}

func (s source) Close() error {
	return errors.Join(s.Stream.Close(), s.file.Close())
}

// Decoder adapts Open and NewStream to audio.Decoder so MPEG audio can be
// registered in an audio.Registry. Options apply to both.
type Decoder struct {
	Options []Option
}

// Decode opens r and returns a stream positioned at its first sample. It
// fails with ErrNoFrames when r holds no MPEG audio.
func (d Decoder) Decode(r io.Reader) (audio.Source, error) {
	f, err := Open(r, d.Options...)
	if err != nil {
		return nil, err
	}
	s, err := f.NewStream()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return source{Stream: s}, nil
}

// Register adds Decoder under the keys "mp3", "mp2" and "mp1".
func Register(reg *audio.Registry, opts ...Option) {
	d := Decoder{Options: opts}
	for _, key := range []string{"mp3", "mp2", "mp1"} {
		reg.Register(key, d)
	}
}

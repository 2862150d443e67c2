// SPDX-License-Identifier: EPL-2.0

package mp3

import "log/slog"

// StereoMode selects how two-channel frames are rendered.
type StereoMode int

const (
	// StereoBoth keeps both channels interleaved.
	StereoBoth StereoMode = iota
	// StereoDownmix averages both channels into one.
	StereoDownmix
	// StereoLeft keeps only the left channel.
	StereoLeft
	// StereoRight keeps only the right channel.
	StereoRight
)

func (m StereoMode) String() string {
	switch m {
	case StereoBoth:
		return "both"
	case StereoDownmix:
		return "downmix"
	case StereoLeft:
		return "left"
	case StereoRight:
		return "right"
	}
	return "unknown"
}

const defaultRingSize = 1 << 16

type config struct {
	logger     *slog.Logger
	stereo     StereoMode
	eq         []float32
	ringSize   int
	index      []FrameIndex
	checkCRC   bool
	startAt    int64
	startAfter int64
	resume     bool
}

func newConfig(opts []Option) config {
	c := config{
		logger:   slog.New(slog.DiscardHandler),
		ringSize: defaultRingSize,
	}
	for _, o := range opts {
		o(&c)
	}
	return c
}

// Option configures Open, File.NewStream, NewIndexer and NewFrameDecoder.
// Each constructor ignores the options that do not concern it.
type Option func(*config)

// WithLogger routes diagnostics to l. The default discards them.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithStereoMode sets how two-channel frames are rendered.
func WithStereoMode(m StereoMode) Option {
	return func(c *config) { c.stereo = m }
}

// WithEqualizer sets per-subband gains in decibels, lowest band first.
func WithEqualizer(db []float32) Option {
	return func(c *config) { c.eq = append([]float32(nil), db...) }
}

// WithRingSize sets the capacity in bytes of a stream's PCM ring.
func WithRingSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.ringSize = n
		}
	}
}

// WithIndex seeds a File with a previously persisted index. Background
// indexing resumes after its last entry.
func WithIndex(entries []FrameIndex) Option {
	return func(c *config) { c.index = entries }
}

// WithCRCCheck makes the frame decoder reject protected frames whose
// CRC-16 does not match.
func WithCRCCheck() Option {
	return func(c *config) { c.checkCRC = true }
}

// WithResume tells an Indexer that its reader is positioned at byte offset
// streamPos of the stream and that the next frame starts at samplePos. The
// leading-tag handling that only applies at the start of a stream is
// skipped.
func WithResume(streamPos, samplePos int64) Option {
	return func(c *config) {
		c.startAt = streamPos
		c.startAfter = samplePos
		c.resume = true
	}
}

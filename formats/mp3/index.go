// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"context"
	"sort"
	"sync"
)

// FrameIndex locates one frame in the byte stream and on the sample
// timeline.
type FrameIndex struct {
	StreamPosition int64 // offset of the frame's first header byte
	SamplePosition int64 // samples per channel before this frame
	SampleCount    int   // samples per channel in this frame
	FrameLength    int   // bytes, header included
}

// End returns the sample position just past the frame.
func (e FrameIndex) End() int64 { return e.SamplePosition + int64(e.SampleCount) }

// FrameList is the append-only index shared by the background indexer and
// every stream reading the same file. Readers hold plain integer cursors.
type FrameList struct {
	mu      sync.RWMutex
	entries []FrameIndex
	changed chan struct{}
	done    bool
	err     error
	vbr     *VBRInfo
	format  FrameHeader
	hasFmt  bool
}

func newFrameList() *FrameList {
	return &FrameList{changed: make(chan struct{})}
}

// signal wakes every waiter. Callers hold l.mu.
func (l *FrameList) signal() {
	close(l.changed)
	l.changed = make(chan struct{})
}

func (l *FrameList) append(e FrameIndex, h FrameHeader) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, e)
	if !l.hasFmt {
		l.format, l.hasFmt = h, true
	}
	l.signal()
}

func (l *FrameList) seed(entries []FrameIndex) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, entries...)
	l.signal()
}

func (l *FrameList) setFormat(h FrameHeader) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.hasFmt {
		l.format, l.hasFmt = h, true
		l.signal()
	}
}

func (l *FrameList) setVBR(v *VBRInfo) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.vbr = v
}

func (l *FrameList) finish(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.done = true
	l.err = err
	l.signal()
}

// Len returns the number of entries appended so far.
func (l *FrameList) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.entries)
}

// At returns entry i, which must be below Len.
func (l *FrameList) At(i int) FrameIndex {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.entries[i]
}

// Snapshot copies the entries appended so far.
func (l *FrameList) Snapshot() []FrameIndex {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return append([]FrameIndex(nil), l.entries...)
}

// Done reports whether indexing has finished and with which error. A clean
// end of stream finishes with a nil error.
func (l *FrameList) Done() (bool, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.done, l.err
}

// VBR returns the Xing/Info tag of the stream, if one was found.
func (l *FrameList) VBR() *VBRInfo {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.vbr
}

// Format returns the header of the first audio frame.
func (l *FrameList) Format() (FrameHeader, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.format, l.hasFmt
}

// IndexedSamples returns the sample position just past the last entry.
func (l *FrameList) IndexedSamples() int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(l.entries) == 0 {
		return 0
	}
	return l.entries[len(l.entries)-1].End()
}

// Wait blocks until more than have entries exist, indexing finishes or ctx
// ends.
func (l *FrameList) Wait(ctx context.Context, have int) error {
	return l.waitFor(ctx, func() bool { return len(l.entries) > have })
}

// WaitFormat blocks until the first audio frame is known or indexing
// finishes.
func (l *FrameList) WaitFormat(ctx context.Context) error {
	return l.waitFor(ctx, func() bool { return l.hasFmt })
}

func (l *FrameList) waitFor(ctx context.Context, ready func() bool) error {
	for {
		l.mu.RLock()
		ok, done, ch := ready(), l.done, l.changed
		l.mu.RUnlock()

		if ok || done {
			return nil
		}
		select {
		case <-ch:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Search returns the index of the last entry whose SamplePosition is at or
// before sample, or -1 if the list is empty.
func (l *FrameList) Search(sample int64) int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	i := sort.Search(len(l.entries), func(i int) bool {
		return l.entries[i].SamplePosition > sample
	})
	return i - 1
}

// changedChan returns a channel closed on the next append or when indexing
// finishes. Capture it before checking the list to avoid missing a wakeup.
func (l *FrameList) changedChan() <-chan struct{} {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.changed
}

// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"io"
	"sync"
)

// spool gives a forward-only reader random access to everything already
// read from it by keeping those bytes in memory. Only one goroutine reads;
// any number may call ReadAt.
type spool struct {
	r io.Reader

	mu   sync.RWMutex
	data []byte
}

func newSpool(r io.Reader) *spool { return &spool{r: r} }

func (s *spool) Read(p []byte) (int, error) {
	n, err := s.r.Read(p)
	if n > 0 {
		s.mu.Lock()
		s.data = append(s.data, p[:n]...)
		s.mu.Unlock()
	}
	return n, err
}

// ReadAt serves bytes that have already been read. Asking past them is a
// short read with io.EOF.
func (s *spool) ReadAt(p []byte, off int64) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if off < 0 || off >= int64(len(s.data)) {
		return 0, io.EOF
	}
	n := copy(p, s.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// Len returns the number of bytes spooled so far.
func (s *spool) Len() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(len(s.data))
}

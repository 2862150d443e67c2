// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bufio"
	"errors"
	"io"
)

const id3HeaderSize = 10

// id3v2Size returns the total size of the ID3v2 tag at the start of b
// (header, body and optional footer), or 0 if b does not start with one.
func id3v2Size(b []byte) int {
	if len(b) < id3HeaderSize || string(b[:3]) != "ID3" || b[3] == 0xFF || b[4] == 0xFF {
		return 0
	}
	size := 0
	for _, c := range b[6:10] {
		if c&0x80 != 0 {
			return 0
		}
		size = size<<7 | int(c)
	}
	size += id3HeaderSize
	if b[5]&0x10 != 0 {
		size += id3HeaderSize // footer
	}
	return size
}

// skipID3v2 discards any ID3v2 tags at the current position and returns the
// number of bytes skipped.
func skipID3v2(br *bufio.Reader) (int64, error) {
	var skipped int64
	for {
		b, err := br.Peek(id3HeaderSize)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, bufio.ErrBufferFull) {
				return skipped, nil
			}
			return skipped, err
		}
		size := id3v2Size(b)
		if size == 0 {
			return skipped, nil
		}
		n, err := br.Discard(size)
		skipped += int64(n)
		if err != nil {
			return skipped, err
		}
	}
}

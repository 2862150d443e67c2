// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// Index file layout, little-endian:
//
//	constant sample count flag (1 byte)
//	  sample count (u16)                 if the flag is set
//	frame length dictionary flag (1 byte)
//	  entry count (u8), entries (u16...) if the flag is set
//	stream position width (1 byte: 1, 2, 4 or 8)
//	sample position width (1 byte)
//	entries until end of stream:
//	  stream position, sample position  (chosen widths)
//	  sample count (u16)                 unless constant
//	  frame length: u8 dictionary slot or raw u16

const maxDictionary = 255

func widthFor(v int64) uint8 {
	switch {
	case v <= math.MaxUint8:
		return 1
	case v <= math.MaxUint16:
		return 2
	case v <= math.MaxUint32:
		return 4
	}
	return 8
}

func putUint(b []byte, width uint8, v uint64) []byte {
	switch width {
	case 1:
		return append(b, byte(v))
	case 2:
		return binary.LittleEndian.AppendUint16(b, uint16(v))
	case 4:
		return binary.LittleEndian.AppendUint32(b, uint32(v))
	}
	return binary.LittleEndian.AppendUint64(b, v)
}

func getUint(b []byte, width uint8) uint64 {
	switch width {
	case 1:
		return uint64(b[0])
	case 2:
		return uint64(binary.LittleEndian.Uint16(b))
	case 4:
		return uint64(binary.LittleEndian.Uint32(b))
	}
	return binary.LittleEndian.Uint64(b)
}

// WriteIndex serialises entries in the most compact of the layouts above.
func WriteIndex(w io.Writer, entries []FrameIndex) error {
	constant := true
	count := 0
	if len(entries) > 0 {
		count = entries[0].SampleCount
	}
	var maxStream, maxSample int64
	slots := make(map[int]int)
	var dict []int
	for _, e := range entries {
		if e.StreamPosition < 0 || e.SamplePosition < 0 ||
			e.SampleCount < 0 || e.SampleCount > math.MaxUint16 ||
			e.FrameLength < 0 || e.FrameLength > math.MaxUint16 {
			return fmt.Errorf("%w: %+v", ErrIndexRange, e)
		}
		if e.SampleCount != count {
			constant = false
		}
		maxStream = max(maxStream, e.StreamPosition)
		maxSample = max(maxSample, e.SamplePosition)
		if _, ok := slots[e.FrameLength]; !ok && len(dict) <= maxDictionary {
			slots[e.FrameLength] = len(dict)
			dict = append(dict, e.FrameLength)
		}
	}
	useDict := len(dict) <= maxDictionary

	hdr := make([]byte, 0, 8+2*len(dict))
	if constant {
		hdr = append(hdr, 1)
		hdr = binary.LittleEndian.AppendUint16(hdr, uint16(count))
	} else {
		hdr = append(hdr, 0)
	}
	if useDict {
		hdr = append(hdr, 1, byte(len(dict)))
		for _, l := range dict {
			hdr = binary.LittleEndian.AppendUint16(hdr, uint16(l))
		}
	} else {
		hdr = append(hdr, 0)
	}
	sw, pw := widthFor(maxStream), widthFor(maxSample)
	hdr = append(hdr, sw, pw)

	bw := bufio.NewWriter(w)
	if _, err := bw.Write(hdr); err != nil {
		return fmt.Errorf("writing index header: %w", err)
	}

	rec := make([]byte, 0, 20)
	for _, e := range entries {
		rec = putUint(rec[:0], sw, uint64(e.StreamPosition))
		rec = putUint(rec, pw, uint64(e.SamplePosition))
		if !constant {
			rec = binary.LittleEndian.AppendUint16(rec, uint16(e.SampleCount))
		}
		if useDict {
			rec = append(rec, byte(slots[e.FrameLength]))
		} else {
			rec = binary.LittleEndian.AppendUint16(rec, uint16(e.FrameLength))
		}
		if _, err := bw.Write(rec); err != nil {
			return fmt.Errorf("writing index entry: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing index: %w", err)
	}
	return nil
}

// IndexReader decodes an index written by WriteIndex one entry at a time.
type IndexReader struct {
	r        *bufio.Reader
	header   bool
	constant bool
	count    int
	dict     []int
	useDict  bool
	sw, pw   uint8
	rec      []byte
	done     bool
}

// NewIndexReader returns a reader for the index stored in r.
func NewIndexReader(r io.Reader) *IndexReader {
	return &IndexReader{r: bufio.NewReader(r)}
}

// Next returns the next entry. It returns io.EOF at the end of the data,
// including when the data ends inside the header or inside an entry: an
// index that is still being written is not corrupt. Invalid header values
// yield ErrMalformedIndex.
func (ir *IndexReader) Next() (FrameIndex, error) {
	if ir.done {
		return FrameIndex{}, io.EOF
	}
	if !ir.header {
		if err := ir.readHeader(); err != nil {
			ir.done = true
			return FrameIndex{}, err
		}
		ir.header = true
	}

	if _, err := io.ReadFull(ir.r, ir.rec); err != nil {
		ir.done = true
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return FrameIndex{}, io.EOF
		}
		return FrameIndex{}, err
	}

	b := ir.rec
	e := FrameIndex{SampleCount: ir.count}
	e.StreamPosition = int64(getUint(b, ir.sw))
	b = b[ir.sw:]
	e.SamplePosition = int64(getUint(b, ir.pw))
	b = b[ir.pw:]
	if !ir.constant {
		e.SampleCount = int(binary.LittleEndian.Uint16(b))
		b = b[2:]
	}
	if ir.useDict {
		slot := int(b[0])
		if slot >= len(ir.dict) {
			ir.done = true
			return FrameIndex{}, fmt.Errorf("%w: dictionary slot %d of %d", ErrMalformedIndex, slot, len(ir.dict))
		}
		e.FrameLength = ir.dict[slot]
	} else {
		e.FrameLength = int(binary.LittleEndian.Uint16(b))
	}
	return e, nil
}

func (ir *IndexReader) readHeader() error {
	var b [2]byte
	read := func(n int) ([]byte, error) {
		if _, err := io.ReadFull(ir.r, b[:n]); err != nil {
			if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
				return nil, io.EOF
			}
			return nil, err
		}
		return b[:n], nil
	}

	v, err := read(1)
	if err != nil {
		return err
	}
	ir.constant = v[0] != 0
	if ir.constant {
		if v, err = read(2); err != nil {
			return err
		}
		ir.count = int(binary.LittleEndian.Uint16(v))
	}

	if v, err = read(1); err != nil {
		return err
	}
	ir.useDict = v[0] != 0
	if ir.useDict {
		if v, err = read(1); err != nil {
			return err
		}
		ir.dict = make([]int, v[0])
		for i := range ir.dict {
			if v, err = read(2); err != nil {
				return err
			}
			ir.dict[i] = int(binary.LittleEndian.Uint16(v))
		}
	}

	if v, err = read(2); err != nil {
		return err
	}
	ir.sw, ir.pw = v[0], v[1]
	for _, w := range []uint8{ir.sw, ir.pw} {
		if w != 1 && w != 2 && w != 4 && w != 8 {
			return fmt.Errorf("%w: field width %d", ErrMalformedIndex, w)
		}
	}

	size := int(ir.sw) + int(ir.pw) + 1
	if !ir.constant {
		size += 2
	}
	if !ir.useDict {
		size++
	}
	ir.rec = make([]byte, size)
	return nil
}

// ReadIndex decodes every complete entry in r.
func ReadIndex(r io.Reader) ([]FrameIndex, error) {
	ir := NewIndexReader(r)
	var entries []FrameIndex
	for {
		e, err := ir.Next()
		if errors.Is(err, io.EOF) {
			return entries, nil
		}
		if err != nil {
			return entries, err
		}
		entries = append(entries, e)
	}
}

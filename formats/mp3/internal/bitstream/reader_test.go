// SPDX-License-Identifier: EPL-2.0

package bitstream

import (
	"errors"
	"testing"
)

func TestReader_GetBits(t *testing.T) {
	t.Parallel()

	r := NewReader([]byte{0b1010_1100, 0b0101_0011, 0xFF, 0x00, 0x80})

	tests := []struct {
		n    int
		want uint32
	}{
		{1, 1},
		{3, 0b010},
		{4, 0b1100},
		{8, 0b0101_0011},
		{12, 0xFF0},
		{12, 0x080},
	}

	for i, tt := range tests {
		got, err := r.GetBits(tt.n)
		if err != nil {
			t.Fatalf("step %d: GetBits(%d) error = %v", i, tt.n, err)
		}
		if got != tt.want {
			t.Errorf("step %d: GetBits(%d) = %#b, want %#b", i, tt.n, got, tt.want)
		}
	}

	if r.BitsAvailable() != 0 {
		t.Errorf("BitsAvailable() = %d, want 0", r.BitsAvailable())
	}
	if _, err := r.GetBits(1); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("GetBits past end error = %v, want ErrInsufficientData", err)
	}
}

func TestReader_ThirtyTwoBitsUnaligned(t *testing.T) {
	t.Parallel()

	r := NewReader([]byte{0x0F, 0xFF, 0xFF, 0xFF, 0xF0})
	if err := r.SkipBits(4); err != nil {
		t.Fatal(err)
	}
	got, err := r.GetBits(32)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0xFFFFFFFF {
		t.Errorf("GetBits(32) = %#x, want 0xffffffff", got)
	}
}

func TestReader_BitCount(t *testing.T) {
	t.Parallel()

	r := NewReader(make([]byte, 8))
	for _, n := range []int{0, -1, 33} {
		if _, err := r.PeekBits(n); !errors.Is(err, ErrBitCount) {
			t.Errorf("PeekBits(%d) error = %v, want ErrBitCount", n, err)
		}
	}
}

func TestReader_RewindAndSkip(t *testing.T) {
	t.Parallel()

	r := NewReader([]byte{0xA5, 0x5A})
	first, _ := r.GetBits(7)
	if err := r.RewindBits(7); err != nil {
		t.Fatal(err)
	}
	again, _ := r.GetBits(7)
	if first != again {
		t.Errorf("re-read = %#b, want %#b", again, first)
	}
	if err := r.RewindBits(8); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("RewindBits before start error = %v", err)
	}
	if err := r.SkipBits(10); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("SkipBits past end error = %v", err)
	}
	r.Reset([]byte{0x80})
	if bit, _ := r.GetBit(); !bit {
		t.Error("GetBit after Reset = false, want true")
	}
}

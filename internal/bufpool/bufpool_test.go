// SPDX-License-Identifier: EPL-2.0

package bufpool

import "testing"

func TestGet_LengthAndClass(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n       int
		wantCap int
	}{
		{0, 64},
		{1, 64},
		{64, 64},
		{65, 128},
		{417, 512},
		{1152 * 8, 16384},
		{1 << 20, 1 << 20},
	}

	for _, tt := range tests {
		b := Get(tt.n)
		if len(b) != tt.n {
			t.Errorf("Get(%d) len = %d, want %d", tt.n, len(b), tt.n)
		}
		if cap(b) != tt.wantCap {
			t.Errorf("Get(%d) cap = %d, want %d", tt.n, cap(b), tt.wantCap)
		}
		Put(b)
	}
}

func TestGet_Oversized(t *testing.T) {
	t.Parallel()

	b := Get(1<<20 + 1)
	if len(b) != 1<<20+1 {
		t.Fatalf("len = %d", len(b))
	}
	Put(b) // must not panic
}

func TestPut_IgnoresForeignSlices(t *testing.T) {
	t.Parallel()

	Put(make([]byte, 100)) // not a power of two
	Put(make([]byte, 8))   // below the smallest class
	Put(nil)
}

func TestGet_Negative(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("Get(-1) did not panic")
		}
	}()
	Get(-1)
}

func BenchmarkGetPut(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		buf := Get(4608)
		Put(buf)
	}
}

// SPDX-License-Identifier: EPL-2.0

// Package bufpool rents byte slices out of power-of-two size classes.
//
// A slice obtained from Get belongs to the caller until it is handed back
// with Put. Slices that did not come from Get (or were re-sliced to a
// different capacity) are dropped by Put.
package bufpool

import (
	"math/bits"
	"sync"
)

const (
	minShift = 6  // 64 bytes
	maxShift = 20 // 1 MiB
)

var classes [maxShift - minShift + 1]sync.Pool

func class(n int) int {
	if n <= 1<<minShift {
		return 0
	}
	return bits.Len(uint(n-1)) - minShift
}

// Get returns a slice of length n. Requests above the largest class are
// served by make and are not pooled on return.
func Get(n int) []byte {
	if n < 0 {
		panic("bufpool: negative size")
	}
	c := class(n)
	if c >= len(classes) {
		return make([]byte, n)
	}
	if p, ok := classes[c].Get().(*[]byte); ok {
		return (*p)[:n]
	}
	return make([]byte, n, 1<<(c+minShift))
}

// Put returns b to its size class.
func Put(b []byte) {
	c := cap(b)
	if c < 1<<minShift || c&(c-1) != 0 {
		return
	}
	idx := bits.Len(uint(c)) - 1 - minShift
	if idx >= len(classes) {
		return
	}
	b = b[:0]
	classes[idx].Put(&b)
}

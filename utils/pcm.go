// SPDX-License-Identifier: EPL-2.0

// Package utils holds PCM sample conversions shared by the decoders and
// writers.
package utils

import (
	"encoding/binary"
	"math"
)

// Float32ToInt16 clamps x to [-1, 1] and scales it by 32767.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}
	return int16(x * 32767.0)
}

// PutFloat32s encodes src as little-endian float32 into dst and returns the
// number of bytes written. dst must hold 4*len(src) bytes.
func PutFloat32s(dst []byte, src []float32) int {
	if len(src) == 0 {
		return 0
	}
	_ = dst[4*len(src)-1]
	for i, v := range src {
		binary.LittleEndian.PutUint32(dst[4*i:], math.Float32bits(v))
	}
	return 4 * len(src)
}

// Float32s decodes little-endian float32 values from src into dst and
// returns how many it decoded. A trailing partial value is ignored.
func Float32s(dst []float32, src []byte) int {
	n := min(len(dst), len(src)/4)
	for i := range n {
		dst[i] = math.Float32frombits(binary.LittleEndian.Uint32(src[4*i:]))
	}
	return n
}

// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize  = errors.New("dst size must be multiple of channels")
	ErrStaleGeneration = errors.New("ring was reset to a newer generation")
	ErrRingClosed      = errors.New("ring closed")
)

// SPDX-License-Identifier: EPL-2.0

package synth

import "golang.org/x/sys/cpu"

// wide selects windowWide over windowScalar.
var wide = cpu.X86.HasAVX2 || cpu.ARM64.HasASIMD

// Wide reports whether the wide windowing path is active.
func Wide() bool { return wide }

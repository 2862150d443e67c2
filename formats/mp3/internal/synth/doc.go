// SPDX-License-Identifier: EPL-2.0

// Package synth implements the MPEG audio polyphase synthesis filterbank.
//
// Each call to Filterbank.Synthesize turns one block of 32 subband samples
// into 32 PCM samples:
//
//  1. the optional equalizer scales each subband;
//  2. a 32-point DCT-II (Lee's recursive split, 32 → 16 → 8 → 4 → 2)
//     produces the block's matrixed values, which are stored in the
//     channel's history at an offset that moves back by 32 per block;
//  3. the sixteen most recent blocks are expanded into the 512-entry
//     windowing vector, even blocks contributing their first half of the
//     64-point matrix output and odd blocks their second half;
//  4. the vector is multiplied by the synthesis window and folded into
//     32 outputs by summing 16 strided groups.
//
// The history is kept twice (at p and p+512) so step 3 reads sixteen
// consecutive blocks without wrapping.
//
// Two windowing implementations exist: a scalar one that materialises the
// 512-entry vector, and a wide one that accumulates eight outputs at a time
// with split even/odd partial sums. The wide path is selected when the CPU
// has wide vector units; the two agree to within float32 rounding.
package synth

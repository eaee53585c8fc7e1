//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha1

import (
	"math/bits"
)

// expand derives the 80-word message schedule from a block. Words
// 0..15 are the block's words verbatim; words 16..79 follow the FIPS
// 180-4 recurrence
//
//	W[t] = ROTL1(W[t-3] XOR W[t-8] XOR W[t-14] XOR W[t-16])
//
// The schedule is a pure function of the block and is discarded after
// the block's compression.
func expand(b block) [80]uint32 {
	var w [80]uint32
	copy(w[:16], b[:])
	for t := 16; t < 80; t++ {
		w[t] = bits.RotateLeft32(w[t-3]^w[t-8]^w[t-14]^w[t-16], 1)
	}
	return w
}

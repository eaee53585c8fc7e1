//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha1

import (
	"math/bits"
)

// Round constants (FIPS 180-4 Section 4.2.1), one per 20-round range.
const (
	k0 = 0x5A827999
	k1 = 0x6ED9EBA1
	k2 = 0x8F1BBCDC
	k3 = 0xCA62C1D6
)

// compress folds one block's message schedule into the hash state and
// returns the updated state. It is a pure function: blocks must be
// compressed in message order, each call consuming the previous
// call's result. All additions are modulo 2^32.
func compress(state [5]uint32, w [80]uint32) [5]uint32 {
	a, b, c, d, e := state[0], state[1], state[2], state[3], state[4]

	for t := 0; t < 80; t++ {
		var f, k uint32
		switch {
		case t < 20:
			// Ch: bitwise choice of c or d by b.
			f = b&c | ^b&d
			k = k0
		case t < 40:
			f = b ^ c ^ d
			k = k1
		case t < 60:
			// Maj: majority of b, c, d.
			f = b&c | b&d | c&d
			k = k2
		default:
			f = b ^ c ^ d
			k = k3
		}
		temp := bits.RotateLeft32(a, 5) + f + e + k + w[t]
		e, d, c, b, a = d, c, bits.RotateLeft32(b, 30), a, temp
	}

	state[0] += a
	state[1] += b
	state[2] += c
	state[3] += d
	state[4] += e
	return state
}

//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package sha1 implements the SHA-1 hash algorithm as defined in RFC
// 3174 and FIPS 180-4. The implementation is a one-shot pipeline over
// an in-memory message: the message is padded to a multiple of the
// block size, split into 512-bit blocks, each block is expanded into
// an 80-word message schedule and compressed into the running
// five-word hash state, and the final state is serialized as the
// 20-byte digest.
//
// SHA-1 is cryptographically broken and must not be used where
// collision resistance matters.
package sha1

import (
	"encoding/binary"
)

// Size is the length of a SHA-1 digest in bytes.
const Size = 20

// BlockSize is the SHA-1 block size in bytes.
const BlockSize = 64

// Initial hash state H0..H4 (FIPS 180-4 Section 5.3.1).
const (
	init0 = 0x67452301
	init1 = 0xEFCDAB89
	init2 = 0x98BADCFE
	init3 = 0x10325476
	init4 = 0xC3D2E1F0
)

// Sum computes the SHA-1 digest of data. The computation is
// deterministic and total: every input produces a digest. The hash
// state is threaded as a value through the blocks so concurrent Sum
// calls share nothing.
func Sum(data []byte) [Size]byte {
	state := [5]uint32{init0, init1, init2, init3, init4}
	for _, b := range split(pad(data)) {
		state = compress(state, expand(b))
	}
	return finalize(state)
}

// finalize serializes the hash state as the 20-byte digest: H0..H4
// concatenated in order, each big-endian.
func finalize(state [5]uint32) [Size]byte {
	var digest [Size]byte
	for i, h := range state {
		binary.BigEndian.PutUint32(digest[i*4:], h)
	}
	return digest
}

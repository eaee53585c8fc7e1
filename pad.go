//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha1

import (
	"encoding/binary"
)

// pad appends the SHA-1 message padding: the 0x80 terminator byte,
// zero bytes until the length is congruent to 56 mod 64, and the
// original message length in bits as a 64-bit big-endian integer. The
// result is always a positive multiple of BlockSize bytes; the empty
// message pads to a single block.
//
// The bit count is a uint64 and wraps modulo 2^64 for longer
// messages. A message that long (more than 2^61-1 bytes) cannot be
// materialized as a byte slice, so the wrap is documented rather than
// checked.
func pad(msg []byte) []byte {
	n := uint64(len(msg))

	padlen := BlockSize - int(n%BlockSize)
	if padlen <= 8 {
		padlen += BlockSize
	}

	padded := make([]byte, len(msg)+padlen)
	copy(padded, msg)
	padded[len(msg)] = 0x80

	// Bit length of the original message.
	binary.BigEndian.PutUint64(padded[len(padded)-8:], n<<3)

	return padded
}

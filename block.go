//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha1

import (
	"encoding/binary"
	"fmt"
)

// A block is one 512-bit unit of padded message data, held as sixteen
// big-endian 32-bit words.
type block [16]uint32

// split slices a padded message into its blocks, in message order.
// The input length must be a multiple of BlockSize; pad guarantees
// this, so a violation is an internal error, not a user error.
func split(padded []byte) []block {
	if len(padded)%BlockSize != 0 {
		panic(fmt.Sprintf("sha1: padded length %d not a multiple of %d",
			len(padded), BlockSize))
	}
	blocks := make([]block, len(padded)/BlockSize)
	for i := range blocks {
		chunk := padded[i*BlockSize:]
		for w := 0; w < 16; w++ {
			blocks[i][w] = binary.BigEndian.Uint32(chunk[w*4:])
		}
	}
	return blocks
}

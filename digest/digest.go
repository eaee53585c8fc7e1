// Package digest wraps SHA-1 sums as multihashes for
// content-addressing callers. The raw 20-byte digest stays available;
// Bytes returns the multihash encoding and Format renders it in a
// multibase of the caller's choice.
package digest

import (
	"github.com/multiformats/go-multibase"
	"github.com/multiformats/go-multicodec"
	"github.com/multiformats/go-multihash"

	"github.com/markkurossi/sha1"
)

// Code is the multicodec code of SHA-1.
const Code = uint64(multicodec.Sha1)

// Size is the length of the raw digest in bytes.
const Size = sha1.Size

// Digest is a SHA-1 sum together with its multihash encoding.
type Digest struct {
	sum   [sha1.Size]byte
	bytes []byte
}

// Sum computes the SHA-1 digest of data and wraps it as a multihash.
func Sum(data []byte) (Digest, error) {
	sum := sha1.Sum(data)
	bytes, err := multihash.Encode(sum[:], Code)
	if err != nil {
		return Digest{}, err
	}
	return Digest{sum: sum, bytes: bytes}, nil
}

// Code returns the multicodec code of the digest.
func (d Digest) Code() uint64 {
	return Code
}

// Size returns the length of the raw digest in bytes.
func (d Digest) Size() uint64 {
	return Size
}

// Digest returns the raw 20-byte SHA-1 sum.
func (d Digest) Digest() []byte {
	return d.sum[:]
}

// Bytes returns the multihash encoding of the sum.
func (d Digest) Bytes() []byte {
	return d.bytes
}

// Format renders the multihash in the given multibase encoding.
func (d Digest) Format(base multibase.Encoding) (string, error) {
	return multibase.Encode(base, d.bytes)
}

// String renders the multihash in lowercase base16 multibase.
func (d Digest) String() string {
	s, err := d.Format(multibase.Base16)
	if err != nil {
		// Base16 encoding cannot fail for non-empty bytes.
		panic(err)
	}
	return s
}

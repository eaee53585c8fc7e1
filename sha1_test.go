//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha1

import (
	"bytes"
	stdsha1 "crypto/sha1"
	"encoding/binary"
	"encoding/hex"
	"math/bits"
	mrand "math/rand"
	"strings"
	"testing"
)

// Known-answer vectors from RFC 3174 and FIPS 180-4 examples.
var vectors = []struct {
	in     string
	digest string
}{
	{"", "da39a3ee5e6b4b0d3255bfef95601890afd80709"},
	{"a", "86f7e437faa5a7fce15d1ddcb9eaeaea377667b8"},
	{"abc", "a9993e364706816aba3e25717850c26c9cd0d89d"},
	{"Hello World", "0a4d55a8d778e5022fab701977c5d840bbc486d0"},
	{
		"abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq",
		"84983e441c3bd26ebaae4aa1f95129e5e54670f1",
	},
	{
		"The quick brown fox jumps over the lazy dog",
		"2fd4e1c67a2d28fced849ee1bb76e7391b93eb12",
	},
}

func TestVectors(t *testing.T) {
	for _, v := range vectors {
		digest := Sum([]byte(v.in))
		if got := hex.EncodeToString(digest[:]); got != v.digest {
			t.Errorf("Sum(%q): got %s, expected %s", v.in, got, v.digest)
		}
	}
}

// TestMillionA exercises the RFC 3174 repeated-input vector.
func TestMillionA(t *testing.T) {
	digest := Sum([]byte(strings.Repeat("a", 1000000)))
	expected := "34aa973cd4c4daa4f61eeb2bdbad27316534016f"
	if got := hex.EncodeToString(digest[:]); got != expected {
		t.Errorf("got %s, expected %s", got, expected)
	}
}

func TestDeterminism(t *testing.T) {
	msg := []byte("determinism probe")
	first := Sum(msg)
	for i := 0; i < 10; i++ {
		if Sum(msg) != first {
			t.Fatalf("digest changed between calls")
		}
	}
}

// TestPaddingBoundaries checks message lengths around the one- and
// two-block padding boundaries against crypto/sha1. 55 bytes is the
// longest message fitting in one block after the terminator and
// length field; 56 bytes forces a second block.
func TestPaddingBoundaries(t *testing.T) {
	for _, n := range []int{0, 1, 55, 56, 57, 63, 64, 65, 119, 120, 128} {
		msg := bytes.Repeat([]byte{0xa5}, n)
		got := Sum(msg)
		expected := stdsha1.Sum(msg)
		if got != expected {
			t.Errorf("length %d: got %x, expected %x", n, got, expected)
		}
	}
}

func TestCrossCheckRandom(t *testing.T) {
	rng := mrand.New(mrand.NewSource(42))
	for i := 0; i < 200; i++ {
		msg := make([]byte, rng.Intn(1024))
		rng.Read(msg)
		got := Sum(msg)
		expected := stdsha1.Sum(msg)
		if got != expected {
			t.Fatalf("length %d: got %x, expected %x", len(msg), got, expected)
		}
	}
}

// TestPadInvariants verifies the padded-message shape for short
// message lengths: a positive multiple of the block size, the 0x80
// terminator, zero fill, and the trailing 64-bit bit count.
func TestPadInvariants(t *testing.T) {
	for n := 0; n <= 130; n++ {
		msg := bytes.Repeat([]byte{0x42}, n)
		padded := pad(msg)

		if len(padded) == 0 || len(padded)%BlockSize != 0 {
			t.Fatalf("length %d: padded to %d bytes", n, len(padded))
		}
		if !bytes.Equal(padded[:n], msg) {
			t.Fatalf("length %d: message bytes modified", n)
		}
		if padded[n] != 0x80 {
			t.Fatalf("length %d: terminator %#x", n, padded[n])
		}
		for i := n + 1; i < len(padded)-8; i++ {
			if padded[i] != 0 {
				t.Fatalf("length %d: non-zero fill at %d", n, i)
			}
		}
		bitLen := binary.BigEndian.Uint64(padded[len(padded)-8:])
		if bitLen != uint64(n)*8 {
			t.Fatalf("length %d: bit count %d", n, bitLen)
		}
	}
}

// TestScheduleRecurrence re-derives every expanded word from its
// predecessors and checks the input words survive verbatim.
func TestScheduleRecurrence(t *testing.T) {
	rng := mrand.New(mrand.NewSource(7))
	for i := 0; i < 10; i++ {
		var b block
		for w := range b {
			b[w] = rng.Uint32()
		}
		sched := expand(b)

		for w := 0; w < 16; w++ {
			if sched[w] != b[w] {
				t.Fatalf("W[%d] != block word", w)
			}
		}
		for w := 16; w < 80; w++ {
			expected := bits.RotateLeft32(
				sched[w-3]^sched[w-8]^sched[w-14]^sched[w-16], 1)
			if sched[w] != expected {
				t.Fatalf("W[%d]: got %#x, expected %#x",
					w, sched[w], expected)
			}
		}
	}
}

// TestAvalanche is a sanity check only: flipping one input bit should
// flip roughly half of the 160 output bits.
func TestAvalanche(t *testing.T) {
	msg := []byte("avalanche smoke test input")
	base := Sum(msg)

	flipped := make([]byte, len(msg))
	copy(flipped, msg)
	flipped[3] ^= 0x10
	other := Sum(flipped)

	var diff int
	for i := range base {
		diff += bits.OnesCount8(base[i] ^ other[i])
	}
	if diff < 40 || diff > 120 {
		t.Errorf("one-bit flip changed %d of 160 output bits", diff)
	}
}

func TestSplitInvariant(t *testing.T) {
	for _, n := range []int{0, 1, 56, 64, 200} {
		padded := pad(bytes.Repeat([]byte{0xff}, n))
		blocks := split(padded)
		if len(blocks) != len(padded)/BlockSize {
			t.Fatalf("length %d: %d blocks for %d padded bytes",
				n, len(blocks), len(padded))
		}
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("split accepted a partial block")
		}
	}()
	split(make([]byte, 63))
}

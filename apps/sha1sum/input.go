//
// input.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"golang.org/x/crypto/chacha20"
)

// keystream expands a fixed seed into an n-byte benchmark input using
// ChaCha20 with a zero nonce. The output depends only on n so
// benchmark runs are comparable across machines.
func keystream(n int) []byte {
	seed := []byte("sha1sum benchmark input")
	key := make([]byte, chacha20.KeySize)
	for i := 0; i < len(key); i++ {
		key[i] = seed[i%len(seed)]
	}
	nonce := make([]byte, chacha20.NonceSize)
	c, _ := chacha20.NewUnauthenticatedCipher(key, nonce)

	out := make([]byte, n)
	zeros := make([]byte, n)
	c.XORKeyStream(out, zeros)
	return out
}

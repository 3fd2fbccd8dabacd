// Package internal provides the hashing and keystream primitives used by
// the hash- and cipher-based sources.
// This package wraps golang.org/x/crypto and crypto/* packages.
package internal

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

// Blake2bConfig specifies Blake2b hashing configuration.
type Blake2bConfig struct {
	OutputSize int    // Hash output size in bytes
	Key        []byte // Optional key for keyed hashing
}

// Blake2bHash computes a Blake2b hash with the specified configuration.
func Blake2bHash(data []byte, config Blake2bConfig) ([]byte, error) {
	hasher, err := blake2b.New(config.OutputSize, config.Key)
	if err != nil {
		return nil, err
	}
	hasher.Write(data)
	return hasher.Sum(nil), nil
}

// Blake2b512 computes a 512-bit Blake2b hash (64 bytes).
func Blake2b512(data []byte) [64]byte {
	return blake2b.Sum512(data)
}

// SeedBytes encodes a 32-bit seed in little-endian order.
func SeedBytes(seed uint32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], seed)
	return b[:]
}

// SeedKey derives a size-byte key from a 32-bit seed with Blake2b keyed by
// label, so that different consumers of the same seed get unrelated keys.
func SeedKey(seed uint32, size int, label string) ([]byte, error) {
	return Blake2bHash(SeedBytes(seed), Blake2bConfig{
		OutputSize: size,
		Key:        []byte(label),
	})
}

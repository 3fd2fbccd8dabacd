package internal

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"golang.org/x/crypto/chacha20"
)

// NewAESCTR returns an AES stream in counter mode with an all-zero IV.
// Key must be 16, 24, or 32 bytes (AES-128, AES-192, or AES-256).
func NewAESCTR(key []byte) (cipher.Stream, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	iv := make([]byte, aes.BlockSize)
	return cipher.NewCTR(block, iv), nil
}

// NewChaCha20 returns a ChaCha20 stream with an all-zero nonce.
// Key must be 32 bytes.
func NewChaCha20(key []byte) (cipher.Stream, error) {
	c, err := chacha20.NewUnauthenticatedCipher(key, make([]byte, chacha20.NonceSize))
	if err != nil {
		return nil, fmt.Errorf("chacha20: %w", err)
	}
	return c, nil
}

// Fill overwrites dst with keystream bytes, i.e. the encryption of zeros.
func Fill(s cipher.Stream, dst []byte) {
	clear(dst)
	s.XORKeyStream(dst, dst)
}

package ecies

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// cbcEncrypt encrypts plaintext with AES-256-CBC under key and iv,
// applying pkcs7 padding. The caller must supply a fresh random iv
// for every call; an iv reused under the same key is a
// confidentiality failure.
func cbcEncrypt(iv, key, plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	padded := pad(plaintext, block.BlockSize())
	ct := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ct, padded)
	return ct, nil
}

// cbcDecrypt inverts cbcEncrypt. It must only be called after the
// authentication check has passed; it rejects rather than silently
// returning garbage, but a padding failure here reveals nothing
// useful because the MAC has already been verified.
func cbcDecrypt(iv, key, ct []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	if len(ct) == 0 || len(ct)%block.BlockSize() != 0 {
		return nil, ciphError(ErrCipherFailure, fmt.Sprintf("ciphertext is %d bytes, must be whole blocks", len(ct)))
	}
	pt := make([]byte, len(ct))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(pt, ct)
	return unpad(pt, block.BlockSize())
}

// pkcs7: append n copies of n where n is the bytes needed to fill the
// final block. Empty input pads to one full block, so the empty
// plaintext round-trips.
func pad(b []byte, blockSize int) []byte {
	n := blockSize - len(b)%blockSize
	padded := make([]byte, len(b)+n)
	copy(padded, b)
	for i := len(b); i < len(padded); i++ {
		padded[i] = byte(n)
	}
	return padded
}

func unpad(b []byte, blockSize int) ([]byte, error) {
	n := int(b[len(b)-1])
	if n == 0 || n > blockSize || n > len(b) {
		return nil, ciphError(ErrCipherFailure, "invalid padding")
	}
	for _, p := range b[len(b)-n:] {
		if int(p) != n {
			return nil, ciphError(ErrCipherFailure, "invalid padding")
		}
	}
	return b[:len(b)-n], nil
}

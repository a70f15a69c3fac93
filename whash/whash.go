// Small wrapper around the sha3 package to
// canonicalize how key material is fingerprinted
package whash

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

func Keccak32(d []byte) [32]byte {
	return *(*[32]byte)(Keccak(d))
}

func Keccak(d []byte) []byte {
	k := sha3.NewLegacyKeccak256()
	k.Write(d)
	return k.Sum(nil)
}

// Fingerprint returns a short identifier for hex encoded key
// material, suitable for log lines and CLI output. It is derived
// from the keccak hash of the decoded bytes so no part of the key
// itself appears in the result.
func Fingerprint(keyHex string) string {
	b, err := hex.DecodeString(keyHex)
	if err != nil {
		return "invalid"
	}
	h := Keccak(b)
	return hex.EncodeToString(h[:4])
}

// wsecp256k1 provides a wrapper around the secp256k1 package
// from dcrec --which is an actively maintained codebase built from
// btcd.
//
// The rest of this module exchanges keys as hex strings: a private
// key is a raw 32-byte scalar (64 hex chars) and a public key is a
// 33-byte compressed point (66 hex chars). This package encapsulates
// the encoding rules so that the ecies and wecdsa packages can use
// the secp256k1 code in the 'right way.'
package wsecp256k1

import (
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/sealbase/eccbox/hexb"
)

const (
	// PrivKeyLen is the length of a serialized private key scalar.
	PrivKeyLen = 32
	// PubKeyLen is the length of a compressed public key point.
	PubKeyLen = 33
	// SecretLen is the length of an ECDH shared secret.
	SecretLen = 32
)

func GenerateKey() (*secp256k1.PrivateKey, error) {
	return secp256k1.GeneratePrivateKey()
}

// Decodes a 64 hex char raw scalar. Zero scalars and scalars
// that overflow the group order are rejected.
func DecodePrivate(s string) (*secp256k1.PrivateKey, error) {
	b, err := hexb.DecodeFixed(s, PrivKeyLen)
	if err != nil {
		return nil, keyError(ErrInvalidKey, fmt.Sprintf("private key: %s", err))
	}
	var scalar secp256k1.ModNScalar
	if overflow := scalar.SetByteSlice(b); overflow {
		return nil, keyError(ErrInvalidKey, "private key overflows the group order")
	}
	if scalar.IsZero() {
		return nil, keyError(ErrInvalidKey, "private key is zero")
	}
	return secp256k1.NewPrivateKey(&scalar), nil
}

// Decodes a 66 hex char compressed point.
func DecodePublic(s string) (*secp256k1.PublicKey, error) {
	b, err := hexb.DecodeFixed(s, PubKeyLen)
	if err != nil {
		return nil, keyError(ErrInvalidKey, fmt.Sprintf("public key: %s", err))
	}
	pub, err := secp256k1.ParsePubKey(b)
	if err != nil {
		return nil, keyError(ErrInvalidKey, fmt.Sprintf("public key: %s", err))
	}
	return pub, nil
}

// EncodePrivate returns the raw scalar. Always 64 hex chars.
func EncodePrivate(prv *secp256k1.PrivateKey) string {
	return hexb.Bytes(prv.Serialize()).String()
}

// EncodePublic returns the compressed point. Always 66 hex chars.
func EncodePublic(pub *secp256k1.PublicKey) string {
	return hexb.Bytes(pub.SerializeCompressed()).String()
}

// DerivePublic computes the compressed public key for a hex encoded
// private key. The result is guaranteed to round-trip through
// DecodePublic.
func DerivePublic(privHex string) (string, error) {
	prv, err := DecodePrivate(privHex)
	if err != nil {
		return "", err
	}
	return EncodePublic(prv.PubKey()), nil
}

// SharedSecret computes the Diffie-Hellman shared secret between prv
// and pub: the x-coordinate of prv*pub, left padded to exactly 32
// bytes (RFC 5903 Section 9 states we should only return x).
//
// ECDH is commutative, so SharedSecret(ephemeral, recipientPub) on
// the encrypt path equals SharedSecret(recipient, ephemeralPub) on
// the decrypt path. An x-coordinate wider than 32 bytes cannot occur
// for a valid curve point; the check is kept as a guard against a
// broken encoder.
func SharedSecret(prv *secp256k1.PrivateKey, pub *secp256k1.PublicKey) ([SecretLen]byte, error) {
	x := secp256k1.GenerateSharedSecret(prv, pub)
	secret, err := hexb.Pad32(x)
	if err != nil {
		return secret, keyError(ErrEncoding, fmt.Sprintf("shared secret: %s", err))
	}
	return secret, nil
}

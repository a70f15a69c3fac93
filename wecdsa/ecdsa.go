// wecdsa provides ECDSA signing and verification over secp256k1
// using the ecdsa package from dcrec.
//
// Content is hashed with sha256 before signing. Nonces are derived
// deterministically per RFC 6979 by the underlying package, so the
// same key never reuses a nonce across different messages. Signatures
// travel as DER, hex encoded.
package wecdsa

import (
	"crypto/sha256"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/sealbase/eccbox/hexb"
	"github.com/sealbase/eccbox/wsecp256k1"
)

// Signature pairs a DER encoded signature with the compressed public
// key it verifies under. The public key is derived from the signing
// key, never supplied by the caller, so the two cannot disagree.
type Signature struct {
	Sig       hexb.Bytes `json:"signature"`
	PublicKey string     `json:"publicKey"`
}

// Sign hashes content with sha256 and signs the digest with the hex
// encoded private key.
func Sign(privHex string, content []byte) (*Signature, error) {
	prv, err := wsecp256k1.DecodePrivate(privHex)
	if err != nil {
		return nil, err
	}
	digest := sha256.Sum256(content)
	sig := ecdsa.Sign(prv, digest[:])
	return &Signature{
		Sig:       sig.Serialize(),
		PublicKey: wsecp256k1.EncodePublic(prv.PubKey()),
	}, nil
}

// Verify hashes content exactly as Sign does and reports whether
// sigHex is a valid DER signature over it under pubHex. A well-formed
// signature that does not verify returns (false, nil); a malformed
// public key or signature returns an ErrInvalidInput error so callers
// can tell garbage input apart from a failed check.
func Verify(content []byte, pubHex, sigHex string) (bool, error) {
	pub, err := wsecp256k1.DecodePublic(pubHex)
	if err != nil {
		return false, inputError(fmt.Sprintf("public key: %s", err))
	}
	der, err := hexb.Decode(sigHex)
	if err != nil {
		return false, inputError(fmt.Sprintf("signature: %s", err))
	}
	sig, err := ecdsa.ParseDERSignature(der)
	if err != nil {
		return false, inputError(fmt.Sprintf("signature: %s", err))
	}
	digest := sha256.Sum256(content)
	return sig.Verify(digest[:], pub), nil
}

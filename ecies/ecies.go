// Provides ECIES encryption using:
// secp256k1 key agreement, a sha512 split KDF,
// aes 256 cbc (32 byte key) encryption, and hmac-sha256 authentication.
//
// The encrypted result is a CipherObject:
//
//	r = ephemeral private key, R = r * G (compressed, 33 bytes)
//	S = Px where (Px, Py) = r * KB, left padded to 32 bytes
//	kE || kM = sha512(S)
//	iv = 16 random bytes
//	c = AES-256-CBC(kE, iv, m) with pkcs7 padding
//	d = HMAC-sha256(kM, iv || R || c)
//
// Decryption recomputes d and compares in constant time before any
// cipher work, so a tampered object is rejected without touching
// the block cipher.
package ecies

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/goccy/go-json"
	"github.com/sealbase/eccbox/hexb"
	"github.com/sealbase/eccbox/werrors"
	"github.com/sealbase/eccbox/wsecp256k1"
)

const (
	// IVLen is the AES-CBC initialization vector length.
	IVLen = 16
	// MacLen is the HMAC-sha256 output length.
	MacLen = 32
	keyLen = 32
)

// CipherObject is the result of Encrypt and the input to Decrypt.
// All byte fields are hex encoded on the wire. Mac authenticates
// exactly IV || EphemPublicKey || CipherText; WasString records
// whether the plaintext was text so Decrypt can restore it losslessly.
type CipherObject struct {
	IV             hexb.Bytes `json:"iv"`
	EphemPublicKey hexb.Bytes `json:"ephemeralPK"`
	CipherText     hexb.Bytes `json:"cipherText"`
	Mac            hexb.Bytes `json:"mac"`
	WasString      bool       `json:"wasString"`
}

// ParseCipherObject decodes the JSON wire form and checks the fixed
// field widths. The ciphertext length is only constrained to whole
// cipher blocks, and that is checked during Decrypt.
func ParseCipherObject(b []byte) (*CipherObject, error) {
	co := new(CipherObject)
	if err := json.Unmarshal(b, co); err != nil {
		return nil, ciphError(ErrCipherObject, fmt.Sprintf("decoding cipher object: %s", err))
	}
	if err := co.check(); err != nil {
		return nil, err
	}
	return co, nil
}

// Bytes returns the JSON wire form.
func (co *CipherObject) Bytes() ([]byte, error) {
	return json.Marshal(co)
}

func (co *CipherObject) check() error {
	if len(co.IV) != IVLen {
		return ciphError(ErrCipherObject, fmt.Sprintf("iv must be %d bytes", IVLen))
	}
	if len(co.EphemPublicKey) != wsecp256k1.PubKeyLen {
		return ciphError(ErrCipherObject, fmt.Sprintf("ephemeral public key must be %d bytes", wsecp256k1.PubKeyLen))
	}
	if len(co.Mac) != MacLen {
		return ciphError(ErrCipherObject, fmt.Sprintf("mac must be %d bytes", MacLen))
	}
	return nil
}

// EncryptString encrypts s so that only the holder of the private key
// matching pubHex can read it. Decrypt restores it as a string.
func EncryptString(pubHex, s string) (*CipherObject, error) {
	return Encrypt(pubHex, []byte(s), true)
}

// EncryptBytes encrypts b so that only the holder of the private key
// matching pubHex can read it. Decrypt restores it as raw bytes.
func EncryptBytes(pubHex string, b []byte) (*CipherObject, error) {
	return Encrypt(pubHex, b, false)
}

// Encrypt encrypts content to the compressed public key pubHex using
// a fresh ephemeral key pair and a fresh random IV. Nothing is
// retained between calls.
func Encrypt(pubHex string, content []byte, wasString bool) (*CipherObject, error) {
	pub, err := wsecp256k1.DecodePublic(pubHex)
	if err != nil {
		return nil, err
	}
	ephem, err := wsecp256k1.GenerateKey()
	if err != nil {
		return nil, werrors.Errorf("generating ephemeral key: %w", err)
	}
	iv := make([]byte, IVLen)
	if _, err := rand.Read(iv); err != nil {
		return nil, werrors.Errorf("generating iv: %w", err)
	}
	return encrypt(pub, content, wasString, ephem, iv)
}

// Reuse of an ephemeral key or iv under the same recipient key breaks
// confidentiality. Only Encrypt and tests with pinned vectors may
// call this.
func encrypt(pub *secp256k1.PublicKey, content []byte, wasString bool, ephem *secp256k1.PrivateKey, iv []byte) (*CipherObject, error) {
	secret, err := wsecp256k1.SharedSecret(ephem, pub)
	if err != nil {
		return nil, err
	}
	encKey, macKey := deriveKeys(secret)

	ct, err := cbcEncrypt(iv, encKey[:], content)
	if err != nil {
		return nil, err
	}

	ephemPub := ephem.PubKey().SerializeCompressed()
	co := &CipherObject{WasString: wasString}
	co.IV.Write(iv)
	co.EphemPublicKey.Write(ephemPub)
	co.CipherText.Write(ct)
	co.Mac.Write(sum(macKey[:], iv, ephemPub, ct))
	return co, nil
}

// Decrypt authenticates and decrypts co with the private key privHex.
// It returns the plaintext along with the recorded string/bytes
// distinction. On a failed authentication check it returns
// ErrMacMismatch and performs no decryption; the error carries no
// detail about which field differed.
func Decrypt(privHex string, co *CipherObject) ([]byte, bool, error) {
	if err := co.check(); err != nil {
		return nil, false, err
	}
	prv, err := wsecp256k1.DecodePrivate(privHex)
	if err != nil {
		return nil, false, err
	}
	ephem, err := secp256k1.ParsePubKey(co.EphemPublicKey)
	if err != nil {
		return nil, false, ciphError(ErrCipherObject, fmt.Sprintf("ephemeral public key: %s", err))
	}
	secret, err := wsecp256k1.SharedSecret(prv, ephem)
	if err != nil {
		return nil, false, err
	}
	encKey, macKey := deriveKeys(secret)

	want := sum(macKey[:], co.IV, co.EphemPublicKey, co.CipherText)
	if !constantTimeEqual(want, co.Mac) {
		return nil, false, ciphError(ErrMacMismatch, "MAC check failed")
	}

	content, err := cbcDecrypt(co.IV, encKey[:], co.CipherText)
	if err != nil {
		return nil, false, err
	}
	return content, co.WasString, nil
}

// DecryptString decrypts co and returns the plaintext as a string.
// It fails if co was not encrypted from a string.
func DecryptString(privHex string, co *CipherObject) (string, error) {
	content, wasString, err := Decrypt(privHex, co)
	if err != nil {
		return "", err
	}
	if !wasString {
		return "", ciphError(ErrCipherObject, "content was not encrypted from a string")
	}
	return string(content), nil
}

// deriveKeys splits one shared secret into independent encryption and
// MAC keys: the first 32 bytes of sha512(secret) encrypt, the last 32
// authenticate. Deterministic, no state.
func deriveKeys(secret [wsecp256k1.SecretLen]byte) (encKey, macKey [keyLen]byte) {
	h := sha512.Sum512(secret[:])
	copy(encKey[:], h[:keyLen])
	copy(macKey[:], h[keyLen:])
	return encKey, macKey
}

// sum computes HMAC-sha256 over iv || ephem || ct, in that exact
// order. Reordering breaks compatibility with other implementations
// of this scheme.
func sum(key, iv, ephem, ct []byte) []byte {
	m := hmac.New(sha256.New, key)
	m.Write(iv)
	m.Write(ephem)
	m.Write(ct)
	return m.Sum(nil)
}

// constantTimeEqual reports whether a and b are equal without leaking
// where they differ. A length mismatch is not secret and may branch;
// equal-length inputs are compared with an accumulated XOR inspected
// once at the end.
func constantTimeEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}

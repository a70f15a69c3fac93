package wecdsa

import (
	"strings"
	"testing"

	"github.com/sealbase/eccbox/tc"
	"github.com/sealbase/eccbox/wsecp256k1"
	"kr.dev/diff"
)

func testKey(t *testing.T) (privHex, pubHex string) {
	t.Helper()
	prv, err := wsecp256k1.GenerateKey()
	tc.NoErr(t, err)
	return wsecp256k1.EncodePrivate(prv), wsecp256k1.EncodePublic(prv.PubKey())
}

func TestSignVerify(t *testing.T) {
	privHex, pubHex := testKey(t)
	content := []byte("message to sign")

	sig, err := Sign(privHex, content)
	tc.NoErr(t, err)
	diff.Test(t, t.Errorf, sig.PublicKey, pubHex)

	ok, err := Verify(content, sig.PublicKey, sig.Sig.String())
	tc.NoErr(t, err)
	diff.Test(t, t.Errorf, ok, true)
}

func TestSignDeterministic(t *testing.T) {
	privHex, _ := testKey(t)
	content := []byte("rfc 6979 nonce")

	a, err := Sign(privHex, content)
	tc.NoErr(t, err)
	b, err := Sign(privHex, content)
	tc.NoErr(t, err)
	diff.Test(t, t.Errorf, a.Sig, b.Sig)
}

func TestVerifyWrongContent(t *testing.T) {
	privHex, pubHex := testKey(t)
	sig, err := Sign(privHex, []byte("original"))
	tc.NoErr(t, err)

	ok, err := Verify([]byte("tampered"), pubHex, sig.Sig.String())
	tc.NoErr(t, err)
	diff.Test(t, t.Errorf, ok, false)
}

func TestVerifyWrongKey(t *testing.T) {
	privHex, _ := testKey(t)
	_, otherPub := testKey(t)
	content := []byte("signed under a different key")

	sig, err := Sign(privHex, content)
	tc.NoErr(t, err)

	ok, err := Verify(content, otherPub, sig.Sig.String())
	tc.NoErr(t, err)
	diff.Test(t, t.Errorf, ok, false)
}

func TestVerifyMalformedInput(t *testing.T) {
	privHex, pubHex := testKey(t)
	content := []byte("x")
	sig, err := Sign(privHex, content)
	tc.NoErr(t, err)

	// malformed public keys
	for _, pub := range []string{"", "02ff", strings.Repeat("zz", 33)} {
		_, err := Verify(content, pub, sig.Sig.String())
		tc.ErrIs(t, err, ErrInvalidInput)
	}

	// malformed DER
	for _, der := range []string{"zz", "00", "3006020101020101ff"} {
		_, err := Verify(content, pubHex, der)
		tc.ErrIs(t, err, ErrInvalidInput)
	}
}

func TestSignInvalidKey(t *testing.T) {
	_, err := Sign("not hex", []byte("x"))
	tc.ErrIs(t, err, wsecp256k1.ErrInvalidKey)

	_, err = Sign(strings.Repeat("00", 32), []byte("x"))
	tc.ErrIs(t, err, wsecp256k1.ErrInvalidKey)
}

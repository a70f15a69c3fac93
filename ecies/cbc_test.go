package ecies

import (
	"bytes"
	"testing"

	"github.com/sealbase/eccbox/tc"
	"kr.dev/diff"
)

func TestCBCRoundTrip(t *testing.T) {
	key := bytes.Repeat([]byte{0xab}, 32)
	iv := bytes.Repeat([]byte{0x01}, 16)

	for _, n := range []int{0, 1, 15, 16, 17, 31, 32, 1000} {
		pt := make([]byte, n)
		for i := range pt {
			pt[i] = byte(i)
		}
		ct, err := cbcEncrypt(iv, key, pt)
		tc.NoErr(t, err)
		if len(ct)%16 != 0 || len(ct) <= n-16 {
			t.Errorf("len %d: bad ciphertext length %d", n, len(ct))
		}
		got, err := cbcDecrypt(iv, key, ct)
		tc.NoErr(t, err)
		if !bytes.Equal(got, pt) {
			t.Errorf("len %d: round trip mismatch", n)
		}
	}
}

func TestCBCDecryptWrongKey(t *testing.T) {
	key := bytes.Repeat([]byte{0xab}, 32)
	iv := bytes.Repeat([]byte{0x01}, 16)

	ct, err := cbcEncrypt(iv, key, []byte("sixteen byte pad"))
	tc.NoErr(t, err)

	key[0] ^= 0xff
	// wrong key must fail on padding, never return silently
	if pt, err := cbcDecrypt(iv, key, ct); err == nil {
		t.Errorf("expected padding failure, got plaintext %x", pt)
	}
}

func TestCBCDecryptPartialBlock(t *testing.T) {
	key := bytes.Repeat([]byte{0xab}, 32)
	iv := bytes.Repeat([]byte{0x01}, 16)

	_, err := cbcDecrypt(iv, key, make([]byte, 15))
	tc.ErrIs(t, err, ErrCipherFailure)
	_, err = cbcDecrypt(iv, key, nil)
	tc.ErrIs(t, err, ErrCipherFailure)
}

func TestPad(t *testing.T) {
	cases := []struct {
		n    int
		want int
	}{
		{0, 16},
		{1, 16},
		{15, 16},
		{16, 32},
		{17, 32},
	}
	for _, c := range cases {
		padded := pad(make([]byte, c.n), 16)
		diff.Test(t, t.Errorf, len(padded), c.want)
		got, err := unpad(padded, 16)
		tc.NoErr(t, err)
		diff.Test(t, t.Errorf, len(got), c.n)
	}
}

func TestUnpadInvalid(t *testing.T) {
	cases := [][]byte{
		append(bytes.Repeat([]byte{0x00}, 15), 0x00), // zero pad byte
		append(bytes.Repeat([]byte{0x00}, 15), 0x11), // longer than block
		append(bytes.Repeat([]byte{0x02}, 14), 0x01, 0x02), // inconsistent
	}
	for _, c := range cases {
		if _, err := unpad(c, 16); err == nil {
			t.Errorf("unpad(%x) expected error", c)
		}
	}
}

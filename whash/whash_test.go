package whash

import (
	"testing"

	"kr.dev/diff"
)

func TestKeccak(t *testing.T) {
	// keccak256 of the empty input
	diff.Test(t, t.Errorf,
		Keccak32(nil),
		*(*[32]byte)(Keccak([]byte{})),
	)
	got := Keccak([]byte{})
	want := "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"
	if len(got) != 32 {
		t.Fatalf("want 32 bytes got %d", len(got))
	}
	diff.Test(t, t.Errorf, Fingerprint(""), want[:8])
}

func TestFingerprintInvalidHex(t *testing.T) {
	diff.Test(t, t.Errorf, Fingerprint("zz"), "invalid")
}

// hex encoded byte values for key material and wire fields
package hexb

import (
	"encoding/hex"
	"fmt"

	"github.com/holiman/uint256"
)

type Bytes []byte

func (hb Bytes) Bytes() []byte {
	return []byte(hb)
}

func (hb Bytes) String() string {
	return hex.EncodeToString(hb)
}

func (hb *Bytes) Write(p []byte) (int, error) {
	if len(*hb) < len(p) {
		*hb = append(*hb, make([]byte, len(p)-len(*hb))...)
	}
	*hb = (*hb)[:len(p)]
	return copy(*hb, p), nil
}

func (hb Bytes) MarshalJSON() ([]byte, error) {
	return []byte(`"` + hex.EncodeToString(hb) + `"`), nil
}

func (hb *Bytes) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("hexb: expected quoted hex string")
	}
	data = data[1 : len(data)-1] // remove quotes
	if len(*hb) < len(data)/2 {
		n := len(data)/2 - len(*hb)
		*hb = append(*hb, make(Bytes, n)...)
	}
	*hb = (*hb)[:len(data)/2]
	_, err := hex.Decode(*hb, data)
	return err
}

func Decode(s string) (Bytes, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("hexb: decoding %q: %w", s, err)
	}
	return Bytes(b), nil
}

// Decodes s enforcing an exact decoded length of n bytes.
// Key material, IVs, and MACs all have fixed widths on the
// wire so a length mismatch is always an input error.
func DecodeFixed(s string, n int) (Bytes, error) {
	b, err := Decode(s)
	if err != nil {
		return nil, err
	}
	if len(b) != n {
		return nil, fmt.Errorf("hexb: want %d bytes got %d", n, len(b))
	}
	return b, nil
}

// Left pads b with zero bytes to exactly 32 bytes.
// Curve field values must always encode to 64 hex chars.
// An input longer than 32 bytes indicates a broken
// encoder upstream and is returned as an error rather
// than truncated.
func Pad32(b []byte) ([32]byte, error) {
	var out [32]byte
	if len(b) > 32 {
		return out, fmt.Errorf("hexb: value is %d bytes, exceeds 32", len(b))
	}
	copy(out[32-len(b):], b)
	return out, nil
}

// 32-byte big-endian encoding of x. Always 64 hex chars
// once hex encoded, matching Pad32 for in-range values.
func Uint256(x *uint256.Int) [32]byte {
	return x.Bytes32()
}

package wsecp256k1

// ErrorKind identifies a kind of error. It has full support for
// errors.Is and errors.As, so the caller can directly check against
// an error kind when determining the reason for an error.
type ErrorKind string

const (
	// ErrInvalidKey is returned when key material is malformed or has
	// the wrong length for a raw scalar or compressed curve point.
	ErrInvalidKey = ErrorKind("ErrInvalidKey")

	// ErrEncoding is returned when a derived curve value does not fit
	// the expected 32-byte field encoding. This indicates a broken
	// invariant, not bad caller input.
	ErrEncoding = ErrorKind("ErrEncoding")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to secp256k1 key handling. It has
// full support for errors.Is and errors.As, so the caller can
// ascertain the specific reason for the error by checking the
// underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

func keyError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}

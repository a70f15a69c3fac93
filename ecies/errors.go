package ecies

// ErrorKind identifies a kind of error. It has full support for
// errors.Is and errors.As, so the caller can directly check against
// an error kind when determining the reason for an error.
type ErrorKind string

const (
	// ErrMacMismatch is returned when the authentication check fails
	// during decryption. This happens because of either a wrong
	// private key or a tampered cipher object. It always surfaces
	// before any decryption work is done.
	ErrMacMismatch = ErrorKind("ErrMacMismatch")

	// ErrCipherFailure is returned when the block cipher rejects the
	// ciphertext after a passing authentication check. This should
	// not occur and indicates corruption introduced after the MAC
	// was computed.
	ErrCipherFailure = ErrorKind("ErrCipherFailure")

	// ErrCipherObject is returned when a cipher object has a field
	// with the wrong width for this scheme.
	ErrCipherObject = ErrorKind("ErrCipherObject")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an encryption or decryption failure. It has full
// support for errors.Is and errors.As, so the caller can ascertain
// the specific reason for the error by checking the underlying error.
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

func ciphError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}

package wecdsa

// ErrorKind identifies a kind of error. It has full support for
// errors.Is and errors.As, so the caller can directly check against
// an error kind when determining the reason for an error.
type ErrorKind string

const (
	// ErrInvalidInput is returned when a public key or DER signature
	// given to Verify is malformed. It is distinct from a well-formed
	// signature that simply does not verify, which is reported as
	// (false, nil).
	ErrInvalidInput = ErrorKind("ErrInvalidInput")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies a signing or verification input error. It has full
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

func inputError(desc string) Error {
	return Error{Err: ErrInvalidInput, Description: desc}
}

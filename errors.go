package silentpay

// ErrorKind identifies a kind of error. It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

const (
	// ErrInvalidScalar indicates a provided or derived scalar is zero or not
	// less than the group order.
	ErrInvalidScalar = ErrorKind("ErrInvalidScalar")

	// ErrInvalidPoint indicates a provided point is malformed, not on the
	// curve, or the identity element.
	ErrInvalidPoint = ErrorKind("ErrInvalidPoint")

	// ErrPointAtInfinity indicates a computed point addition yielded the
	// identity element.
	ErrPointAtInfinity = ErrorKind("ErrPointAtInfinity")

	// ErrEncodingMismatch indicates a byte encoding that does not follow the
	// agreed convention, such as a bad format or parity byte or a digest of
	// the wrong size.
	ErrEncodingMismatch = ErrorKind("ErrEncodingMismatch")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to tweak derivation. It has full support
// for errors.Is and errors.As, so the caller can ascertain the specific reason
// for the error by checking the underlying error.
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

func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}

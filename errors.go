package dnsstamp

import (
	"fmt"

	"github.com/AdguardTeam/golibs/errors"
)

const (
	// ErrInvalidScheme is returned by [Parse] when the address doesn't start
	// with the sdns:// scheme.
	ErrInvalidScheme errors.Error = "not an sdns:// address"

	// ErrFormat is returned when the base64 payload of a stamp or the
	// hexadecimal form of a field is not well-formed.
	ErrFormat errors.Error = "malformed stamp data"

	// ErrTruncatedData is returned by [Parse] when the payload ends before
	// the fields it declares do.
	ErrTruncatedData errors.Error = "unexpected end of stamp"
)

// UnsupportedProtocolError is returned by [Parse] when the protocol
// discriminant of a stamp matches no supported protocol.
type UnsupportedProtocolError struct {
	// Protocol is the raw discriminant byte of the stamp.
	Protocol byte
}

// type check
var _ error = (*UnsupportedProtocolError)(nil)

// Error implements the error interface for *UnsupportedProtocolError.
func (e *UnsupportedProtocolError) Error() (msg string) {
	return fmt.Sprintf("unsupported protocol: %d", e.Protocol)
}

// FieldTooLongError is returned by [Encode] when the encoded form of a field
// does not fit into the single length byte the stamp format allows.
type FieldTooLongError struct {
	// Field is the human-readable name of the field.
	Field string

	// Length is the encoded length of the field, in bytes.
	Length int
}

// type check
var _ error = (*FieldTooLongError)(nil)

// Error implements the error interface for *FieldTooLongError.
func (e *FieldTooLongError) Error() (msg string) {
	return fmt.Sprintf("%s is too long: %d bytes, max %d", e.Field, e.Length, maxFieldLen)
}

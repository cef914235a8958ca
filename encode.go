package dnsstamp

import (
	"encoding/base64"
	"fmt"

	"github.com/fcchbjm/dnsstamp/internal/transcode"
)

// Scheme is the URI scheme of a DNS stamp, including the separator.
const Scheme = "sdns://"

const (
	// headerLen is the length of the fixed stamp header: one protocol byte,
	// one properties byte, and reservedLen reserved bytes.
	headerLen = 2 + reservedLen

	// reservedLen is the number of reserved bytes between the properties
	// byte and the first length-prefixed field.
	reservedLen = 7

	// maxFieldLen is the maximum encoded length of a single stamp field,
	// the largest value its one-byte length prefix can hold.
	maxFieldLen = 255
)

// Encode serializes s into its sdns:// form.  The result is deterministic:
// the same stamp always encodes to the same string.  Hexadecimal fields are
// sanitized before encoding; any other field whose encoded form exceeds
// [maxFieldLen] bytes makes Encode fail with a [*FieldTooLongError].
func Encode(s Stamp) (stamp string, err error) {
	buf := make([]byte, headerLen, headerLen+maxFieldLen)
	buf[0] = byte(s.Protocol())
	buf[1] = s.Properties().pack()

	// Bytes 2 through 8 are reserved by the format and stay zero.

	buf, err = s.appendFields(buf)
	if err != nil {
		return "", fmt.Errorf("encoding %s stamp: %w", s.Protocol(), err)
	}

	return Scheme + base64.RawURLEncoding.EncodeToString(buf), nil
}

// appendText appends the length-prefixed UTF-8 form of the text field named
// field to buf.
func appendText(buf []byte, field, val string) (res []byte, err error) {
	if len(val) > maxFieldLen {
		return nil, &FieldTooLongError{Field: field, Length: len(val)}
	}

	buf = append(buf, byte(len(val)))

	return append(buf, val...), nil
}

// appendHex appends the length-prefixed raw form of the hexadecimal field
// named field to buf.  Characters outside of [0-9a-fA-F] in val are ignored;
// an odd count of hex digits is an error.
func appendHex(buf []byte, field, val string) (res []byte, err error) {
	b, err := transcode.DecodeHex(val)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", field, ErrFormat, err)
	}

	if len(b) > maxFieldLen {
		return nil, &FieldTooLongError{Field: field, Length: len(b)}
	}

	buf = append(buf, byte(len(b)))

	return append(buf, b...), nil
}

// appendFields implements the [Stamp] interface for *DNSCrypt.
func (s *DNSCrypt) appendFields(buf []byte) (res []byte, err error) {
	if buf, err = appendText(buf, "address", s.Address); err != nil {
		return nil, err
	}

	if buf, err = appendHex(buf, "public key", s.PublicKey); err != nil {
		return nil, err
	}

	return appendText(buf, "provider name", s.ProviderName)
}

// appendFields implements the [Stamp] interface for *DoH.
func (s *DoH) appendFields(buf []byte) (res []byte, err error) {
	if buf, err = appendText(buf, "address", s.Address); err != nil {
		return nil, err
	}

	if buf, err = appendHex(buf, "hash", s.Hash); err != nil {
		return nil, err
	}

	if buf, err = appendText(buf, "host name", s.HostName); err != nil {
		return nil, err
	}

	return appendText(buf, "path", s.Path)
}

// appendFields implements the [Stamp] interface for *DoT.
func (s *DoT) appendFields(buf []byte) (res []byte, err error) {
	if buf, err = appendText(buf, "address", s.Address); err != nil {
		return nil, err
	}

	if buf, err = appendHex(buf, "hash", s.Hash); err != nil {
		return nil, err
	}

	return appendText(buf, "host name", s.HostName)
}

// appendFields implements the [Stamp] interface for *Plain.
func (s *Plain) appendFields(buf []byte) (res []byte, err error) {
	return appendText(buf, "address", s.Address)
}

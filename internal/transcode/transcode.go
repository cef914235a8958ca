// Package transcode contains helpers for converting stamp fields between
// their textual and wire representations.
package transcode

import (
	"encoding/hex"
	"strings"
)

// SanitizeHex returns s with every character outside of [0-9a-fA-F] removed.
// Keys and certificate hashes are often copied with colon, dash, or space
// separators, so those are tolerated rather than rejected.
func SanitizeHex(s string) (sanitized string) {
	return strings.Map(func(r rune) (res rune) {
		switch {
		case
			r >= '0' && r <= '9',
			r >= 'a' && r <= 'f',
			r >= 'A' && r <= 'F':
			return r
		default:
			return -1
		}
	}, s)
}

// DecodeHex sanitizes s and decodes the remaining digits into raw bytes,
// most significant nibble first.  An odd count of digits is an error.
func DecodeHex(s string) (b []byte, err error) {
	return hex.DecodeString(SanitizeHex(s))
}

// EncodeHex returns the lowercase hexadecimal form of b.
func EncodeHex(b []byte) (s string) {
	return hex.EncodeToString(b)
}

// Package dnsstamp implements encoding and decoding of DNS stamps, compact
// URL-safe sdns:// addresses that carry everything a client needs to reach a
// secure DNS resolver: the protocol, the server address, the resolver policy
// flags, and the protocol-specific parameters such as provider keys or
// certificate hashes.
//
// The package is a pure codec.  It performs no network I/O and keeps no
// state; [Encode] and [Parse] may be called concurrently on independent
// values.
package dnsstamp

import "fmt"

// Protocol is the protocol discriminant of a DNS stamp, the first byte of
// its payload.
type Protocol uint8

// Supported stamp protocols.  The numeric values are part of the wire format
// and must not change.
const (
	ProtocolDNSCrypt Protocol = 1
	ProtocolDoH      Protocol = 2
	ProtocolDoT      Protocol = 3
	ProtocolPlain    Protocol = 4
)

// type check
var _ fmt.Stringer = ProtocolPlain

// String implements the [fmt.Stringer] interface for Protocol.
func (p Protocol) String() (s string) {
	switch p {
	case ProtocolDNSCrypt:
		return "dnscrypt"
	case ProtocolDoH:
		return "doh"
	case ProtocolDoT:
		return "dot"
	case ProtocolPlain:
		return "plain"
	default:
		return fmt.Sprintf("!bad_protocol_%d", uint8(p))
	}
}

// DefaultPort returns the conventional port of p, for use when a stamp's
// address carries none.
func (p Protocol) DefaultPort() (port uint16) {
	switch p {
	case ProtocolDNSCrypt, ProtocolDoH:
		return 443
	case ProtocolDoT:
		return 853
	default:
		return 53
	}
}

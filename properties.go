package dnsstamp

// Properties are the informal resolver policy flags carried by every DNS
// stamp.  The zero value has every flag unset; resolvers about which nothing
// is known should use [DefaultProperties] instead.
type Properties struct {
	// DNSSEC is true if the resolver validates DNSSEC.
	DNSSEC bool

	// NoLog is true if the resolver claims not to keep query logs.
	NoLog bool

	// NoFilter is true if the resolver claims not to filter responses.
	NoFilter bool
}

// Bit positions of the flags within the properties byte.  Bits 3-7 are
// reserved: they are zero on encode and ignored on decode.
const (
	propBitDNSSEC   byte = 1 << 0
	propBitNoLog    byte = 1 << 1
	propBitNoFilter byte = 1 << 2
)

// DefaultProperties returns the properties assumed for a resolver by default:
// all flags set.
func DefaultProperties() (props Properties) {
	return Properties{
		DNSSEC:   true,
		NoLog:    true,
		NoFilter: true,
	}
}

// pack returns the wire form of props.
func (p Properties) pack() (b byte) {
	if p.DNSSEC {
		b |= propBitDNSSEC
	}
	if p.NoLog {
		b |= propBitNoLog
	}
	if p.NoFilter {
		b |= propBitNoFilter
	}

	return b
}

// unpackProperties returns the properties encoded in b.
func unpackProperties(b byte) (props Properties) {
	return Properties{
		DNSSEC:   b&propBitDNSSEC != 0,
		NoLog:    b&propBitNoLog != 0,
		NoFilter: b&propBitNoFilter != 0,
	}
}

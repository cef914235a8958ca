package dnsstamp

// Stamp is a single parsed DNS stamp.  It is implemented only by the four
// stamp kinds in this package: [*DNSCrypt], [*DoH], [*DoT], and [*Plain].
//
// A stamp is a plain value: build one, pass it to [Encode], and forget it.
// None of the methods mutate the stamp.
type Stamp interface {
	// Protocol returns the protocol discriminant of the stamp.
	Protocol() (p Protocol)

	// Addr returns the server address field of the stamp.  It may be empty
	// or lack an explicit port, see [ServerAddr].
	Addr() (addr string)

	// Properties returns the resolver policy flags of the stamp.
	Properties() (props Properties)

	// appendFields appends the stamp's length-prefixed wire fields to buf.
	// Being unexported, it limits the implementations of Stamp to this
	// package.
	appendFields(buf []byte) (res []byte, err error)
}

// DNSCrypt is the stamp of a DNSCrypt resolver.
type DNSCrypt struct {
	// Props are the resolver policy flags.
	Props Properties

	// Address is the resolver address, an IP with an optional port.
	Address string

	// PublicKey is the hexadecimal form of the provider's public key.
	// Characters outside of [0-9a-fA-F] are stripped when encoding, so keys
	// copied with colon or dash separators are accepted as is.
	PublicKey string

	// ProviderName is the DNSCrypt provider name.
	ProviderName string
}

// type check
var _ Stamp = (*DNSCrypt)(nil)

// Protocol implements the [Stamp] interface for *DNSCrypt.
func (s *DNSCrypt) Protocol() (p Protocol) { return ProtocolDNSCrypt }

// Addr implements the [Stamp] interface for *DNSCrypt.
func (s *DNSCrypt) Addr() (addr string) { return s.Address }

// Properties implements the [Stamp] interface for *DNSCrypt.
func (s *DNSCrypt) Properties() (props Properties) { return s.Props }

// DoH is the stamp of a DNS-over-HTTPS resolver.
type DoH struct {
	// Props are the resolver policy flags.
	Props Properties

	// Address is the resolver address.  It may be empty, in which case
	// HostName is resolved through other means.
	Address string

	// Hash is the hexadecimal SHA-256 digest of one of the TBS certificates
	// in the server's validation chain.  Characters outside of [0-9a-fA-F]
	// are stripped when encoding.
	Hash string

	// HostName is the server hostname, also used for TLS verification.
	HostName string

	// Path is the HTTP path of the DNS query endpoint.
	Path string
}

// type check
var _ Stamp = (*DoH)(nil)

// Protocol implements the [Stamp] interface for *DoH.
func (s *DoH) Protocol() (p Protocol) { return ProtocolDoH }

// Addr implements the [Stamp] interface for *DoH.
func (s *DoH) Addr() (addr string) { return s.Address }

// Properties implements the [Stamp] interface for *DoH.
func (s *DoH) Properties() (props Properties) { return s.Props }

// DoT is the stamp of a DNS-over-TLS resolver.
type DoT struct {
	// Props are the resolver policy flags.
	Props Properties

	// Address is the resolver address.  It may be empty, in which case
	// HostName is resolved through other means.
	Address string

	// Hash is the hexadecimal SHA-256 digest of one of the TBS certificates
	// in the server's validation chain.  Characters outside of [0-9a-fA-F]
	// are stripped when encoding.
	Hash string

	// HostName is the server hostname, also used for TLS verification.
	HostName string
}

// type check
var _ Stamp = (*DoT)(nil)

// Protocol implements the [Stamp] interface for *DoT.
func (s *DoT) Protocol() (p Protocol) { return ProtocolDoT }

// Addr implements the [Stamp] interface for *DoT.
func (s *DoT) Addr() (addr string) { return s.Address }

// Properties implements the [Stamp] interface for *DoT.
func (s *DoT) Properties() (props Properties) { return s.Props }

// Plain is the stamp of a plain DNS resolver.
type Plain struct {
	// Props are the resolver policy flags.
	Props Properties

	// Address is the resolver address, an IP with an optional port.
	Address string
}

// type check
var _ Stamp = (*Plain)(nil)

// Protocol implements the [Stamp] interface for *Plain.
func (s *Plain) Protocol() (p Protocol) { return ProtocolPlain }

// Addr implements the [Stamp] interface for *Plain.
func (s *Plain) Addr() (addr string) { return s.Address }

// Properties implements the [Stamp] interface for *Plain.
func (s *Plain) Properties() (props Properties) { return s.Props }

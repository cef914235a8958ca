package dnsstamp

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/fcchbjm/dnsstamp/internal/transcode"
)

// Parse parses an sdns:// address into one of the stamp kinds.  It returns
// either a fully constructed stamp or an error, never both; see the errors
// in this package for the ways parsing can fail.
func Parse(stamp string) (s Stamp, err error) {
	payload, ok := strings.CutPrefix(stamp, Scheme)
	if !ok {
		return nil, ErrInvalidScheme
	}

	bin, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}

	if len(bin) < headerLen {
		return nil, fmt.Errorf(
			"%w: got %d bytes, want at least %d",
			ErrTruncatedData,
			len(bin),
			headerLen,
		)
	}

	proto := Protocol(bin[0])
	props := unpackProperties(bin[1])
	r := &fieldReader{buf: bin, pos: headerLen}

	switch proto {
	case ProtocolDNSCrypt:
		s, err = parseDNSCrypt(r, props)
	case ProtocolDoH:
		s, err = parseDoH(r, props)
	case ProtocolDoT:
		s, err = parseDoT(r, props)
	case ProtocolPlain:
		s, err = parsePlain(r, props)
	default:
		return nil, &UnsupportedProtocolError{Protocol: bin[0]}
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s stamp: %w", proto, err)
	}

	if n := r.remaining(); n > 0 {
		return nil, fmt.Errorf("%w: %d bytes of trailing data", ErrFormat, n)
	}

	return s, nil
}

// fieldReader reads length-prefixed fields from the payload of a stamp.  It
// validates every declared length against the remaining data before slicing,
// so a malformed length byte can never cause an out-of-range read.
type fieldReader struct {
	buf []byte
	pos int
}

// next returns the contents of the next length-prefixed field.
func (r *fieldReader) next() (data []byte, err error) {
	if r.pos >= len(r.buf) {
		return nil, fmt.Errorf("%w: no length byte at offset %d", ErrTruncatedData, r.pos)
	}

	l := int(r.buf[r.pos])
	if rest := len(r.buf) - r.pos - 1; l > rest {
		return nil, fmt.Errorf(
			"%w: field of %d bytes at offset %d, only %d left",
			ErrTruncatedData,
			l,
			r.pos+1,
			rest,
		)
	}

	data = r.buf[r.pos+1 : r.pos+1+l]
	r.pos += 1 + l

	return data, nil
}

// nextText returns the next field as UTF-8 text.
func (r *fieldReader) nextText() (val string, err error) {
	data, err := r.next()

	return string(data), err
}

// nextHex returns the next field as lowercase hexadecimal text.
func (r *fieldReader) nextHex() (val string, err error) {
	data, err := r.next()

	return transcode.EncodeHex(data), err
}

// remaining returns the number of unread payload bytes.
func (r *fieldReader) remaining() (n int) {
	return len(r.buf) - r.pos
}

// parseDNSCrypt reads the DNSCrypt-specific fields from r.
func parseDNSCrypt(r *fieldReader, props Properties) (s *DNSCrypt, err error) {
	s = &DNSCrypt{Props: props}
	if s.Address, err = r.nextText(); err != nil {
		return nil, fmt.Errorf("address: %w", err)
	}

	if s.PublicKey, err = r.nextHex(); err != nil {
		return nil, fmt.Errorf("public key: %w", err)
	}

	if s.ProviderName, err = r.nextText(); err != nil {
		return nil, fmt.Errorf("provider name: %w", err)
	}

	return s, nil
}

// parseDoH reads the DNS-over-HTTPS-specific fields from r.
func parseDoH(r *fieldReader, props Properties) (s *DoH, err error) {
	s = &DoH{Props: props}
	if s.Address, err = r.nextText(); err != nil {
		return nil, fmt.Errorf("address: %w", err)
	}

	if s.Hash, err = r.nextHex(); err != nil {
		return nil, fmt.Errorf("hash: %w", err)
	}

	if s.HostName, err = r.nextText(); err != nil {
		return nil, fmt.Errorf("host name: %w", err)
	}

	if s.Path, err = r.nextText(); err != nil {
		return nil, fmt.Errorf("path: %w", err)
	}

	return s, nil
}

// parseDoT reads the DNS-over-TLS-specific fields from r.
func parseDoT(r *fieldReader, props Properties) (s *DoT, err error) {
	s = &DoT{Props: props}
	if s.Address, err = r.nextText(); err != nil {
		return nil, fmt.Errorf("address: %w", err)
	}

	if s.Hash, err = r.nextHex(); err != nil {
		return nil, fmt.Errorf("hash: %w", err)
	}

	if s.HostName, err = r.nextText(); err != nil {
		return nil, fmt.Errorf("host name: %w", err)
	}

	return s, nil
}

// parsePlain reads the plain-DNS-specific fields from r.
func parsePlain(r *fieldReader, props Properties) (s *Plain, err error) {
	s = &Plain{Props: props}
	if s.Address, err = r.nextText(); err != nil {
		return nil, fmt.Errorf("address: %w", err)
	}

	return s, nil
}

package dnsstamp

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

// ServerAddr returns the address of the stamp's server with an explicit
// port, applying the default port of the stamp's protocol when the address
// carries none.  An empty address is returned as is.
func ServerAddr(s Stamp) (addr string) {
	addr = s.Addr()
	if addr == "" {
		return ""
	}

	if _, _, err := net.SplitHostPort(addr); err == nil {
		return addr
	}

	host := strings.TrimSuffix(strings.TrimPrefix(addr, "["), "]")
	port := strconv.Itoa(int(s.Protocol().DefaultPort()))

	return net.JoinHostPort(host, port)
}

// UpstreamAddress returns the address of the stamp's server in the form
// upstream factories accept: the plain address itself, a tls:// or https://
// URL, or, for DNSCrypt, the encoded stamp, since the upstream needs the
// provider key from it.
func UpstreamAddress(s Stamp) (addr string, err error) {
	switch s := s.(type) {
	case *Plain:
		return ServerAddr(s), nil
	case *DoT:
		return "tls://" + s.HostName, nil
	case *DoH:
		return "https://" + s.HostName + s.Path, nil
	case *DNSCrypt:
		return Encode(s)
	default:
		// Unreachable while Stamp remains sealed.
		return "", fmt.Errorf("unsupported stamp type %T", s)
	}
}

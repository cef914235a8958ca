package dnsstamp_test

import (
	"testing"

	"github.com/AdguardTeam/golibs/testutil"
	"github.com/fcchbjm/dnsstamp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// Stamp strings used by tests across the package.  The payload bytes follow
// the layout described in the package documentation; properties byte 0x07
// has all flags set, 0x05 has NoLog unset.
const (
	plainStamp    = "sdns://BAcAAAAAAAAABzkuOS45Ljk"
	dotStamp      = "sdns://AwUAAAAAAAAACzEuMS4xLjE6ODUzAqvND29uZS5vbmUub25lLm9uZQ"
	dohStamp      = "sdns://AgcAAAAAAAAADDk0LjE0MC4xNC4xNAQBAgMEE2Rucy5hZGd1YXJkLWRucy5jb20KL2Rucy1xdWVyeQ"
	dnscryptStamp = "sdns://AQcAAAAAAAAAFDE3Ni4xMDMuMTMwLjEzMDo1NDQzIAABAgMEBQYHCAkKCwwNDg8QERITFBUWFxgZGhscHR4fIjIuZG5zY3J5cHQuZGVmYXVsdC5uczEuYWRndWFyZC5jb20"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		in   string
		want dnsstamp.Stamp
	}{{
		name: "plain",
		in:   plainStamp,
		want: &dnsstamp.Plain{
			Props:   dnsstamp.DefaultProperties(),
			Address: "9.9.9.9",
		},
	}, {
		name: "dot",
		in:   dotStamp,
		want: &dnsstamp.DoT{
			Props:    dnsstamp.Properties{DNSSEC: true, NoFilter: true},
			Address:  "1.1.1.1:853",
			Hash:     "abcd",
			HostName: "one.one.one.one",
		},
	}, {
		name: "doh",
		in:   dohStamp,
		want: &dnsstamp.DoH{
			Props:    dnsstamp.DefaultProperties(),
			Address:  "94.140.14.14",
			Hash:     "01020304",
			HostName: "dns.adguard-dns.com",
			Path:     "/dns-query",
		},
	}, {
		name: "dnscrypt",
		in:   dnscryptStamp,
		want: &dnsstamp.DNSCrypt{
			Props:        dnsstamp.DefaultProperties(),
			Address:      "176.103.130.130:5443",
			PublicKey:    "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f",
			ProviderName: "2.dnscrypt.default.ns1.adguard.com",
		},
	}}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s, err := dnsstamp.Parse(tc.in)
			require.NoError(t, err)

			assert.Equal(t, tc.want, s)
		})
	}
}

func TestParse_errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		in         string
		wantErrMsg string
	}{{
		name:       "no_scheme",
		in:         "https://example",
		wantErrMsg: "not an sdns:// address",
	}, {
		name:       "empty",
		in:         "",
		wantErrMsg: "not an sdns:// address",
	}, {
		name:       "empty_payload",
		in:         "sdns://",
		wantErrMsg: "unexpected end of stamp: got 0 bytes, want at least 9",
	}, {
		name:       "bad_base64",
		in:         "sdns://!!!!",
		wantErrMsg: "malformed stamp data: illegal base64 data at input byte 0",
	}, {
		name:       "bad_base64_alphabet",
		in:         "sdns://+/+/",
		wantErrMsg: "malformed stamp data: illegal base64 data at input byte 0",
	}, {
		name:       "bad_base64_length",
		in:         "sdns://AAAAA",
		wantErrMsg: "malformed stamp data: illegal base64 data at input byte 4",
	}, {
		name: "short_header",
		// A five-byte payload, four short of the fixed header.
		in:         "sdns://BAcAAAA",
		wantErrMsg: "unexpected end of stamp: got 5 bytes, want at least 9",
	}, {
		name: "header_only",
		// A complete header with no address field after it.
		in:         "sdns://BAcAAAAAAAAA",
		wantErrMsg: "parsing plain stamp: address: unexpected end of stamp: " +
			"no length byte at offset 9",
	}, {
		name: "overrunning_field",
		// An address field declaring ten bytes with four present.
		in:         "sdns://BAcAAAAAAAAACmFiY2Q",
		wantErrMsg: "parsing plain stamp: address: unexpected end of stamp: " +
			"field of 10 bytes at offset 10, only 4 left",
	}, {
		name: "trailing_data",
		// A valid plain stamp followed by one stray byte.
		in:         "sdns://BAcAAAAAAAAABzkuOS45LjkA",
		wantErrMsg: "malformed stamp data: 1 bytes of trailing data",
	}, {
		name: "unsupported_protocol",
		// Discriminant byte 0x99 and a complete header.
		in:         "sdns://mQcAAAAAAAAA",
		wantErrMsg: "unsupported protocol: 153",
	}}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := dnsstamp.Parse(tc.in)
			testutil.AssertErrorMsg(t, tc.wantErrMsg, err)
		})
	}
}

func TestParse_errorKinds(t *testing.T) {
	t.Parallel()

	_, err := dnsstamp.Parse("https://example")
	assert.ErrorIs(t, err, dnsstamp.ErrInvalidScheme)

	_, err = dnsstamp.Parse("sdns://BAcAAAA")
	assert.ErrorIs(t, err, dnsstamp.ErrTruncatedData)

	_, err = dnsstamp.Parse("sdns://+/+/")
	assert.ErrorIs(t, err, dnsstamp.ErrFormat)

	_, err = dnsstamp.Parse("sdns://mQcAAAAAAAAA")

	var protoErr *dnsstamp.UnsupportedProtocolError
	require.ErrorAs(t, err, &protoErr)

	assert.Equal(t, byte(153), protoErr.Protocol)
}

func TestParse_propertiesBits(t *testing.T) {
	t.Parallel()

	t.Run("flags", func(t *testing.T) {
		t.Parallel()

		// Properties byte 0x05: DNSSEC and NoFilter set, NoLog unset.
		s, err := dnsstamp.Parse("sdns://BAUAAAAAAAAABzkuOS45Ljk")
		require.NoError(t, err)

		want := dnsstamp.Properties{DNSSEC: true, NoLog: false, NoFilter: true}
		assert.Equal(t, want, s.Properties())
	})

	t.Run("reserved_bits_ignored", func(t *testing.T) {
		t.Parallel()

		// Properties byte 0xFF: bits 3-7 must be ignored, not rejected.
		s, err := dnsstamp.Parse("sdns://BP8AAAAAAAAABzkuOS45Ljk")
		require.NoError(t, err)

		assert.Equal(t, dnsstamp.DefaultProperties(), s.Properties())
	})
}

func TestParse_yamlUpstreams(t *testing.T) {
	t.Parallel()

	// Upstream lists in proxy configuration files carry stamps as plain
	// strings among other address kinds.
	conf := struct {
		Upstreams []string `yaml:"upstreams"`
	}{}

	data := "upstreams:\n" +
		"  - " + plainStamp + "\n" +
		"  - " + dotStamp + "\n"
	require.NoError(t, yaml.Unmarshal([]byte(data), &conf))
	require.Len(t, conf.Upstreams, 2)

	wantProtos := []dnsstamp.Protocol{
		dnsstamp.ProtocolPlain,
		dnsstamp.ProtocolDoT,
	}
	for i, u := range conf.Upstreams {
		s, err := dnsstamp.Parse(u)
		require.NoError(t, err)

		assert.Equal(t, wantProtos[i], s.Protocol())
	}
}

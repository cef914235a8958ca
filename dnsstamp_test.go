package dnsstamp_test

import (
	"testing"

	"github.com/fcchbjm/dnsstamp"
	"github.com/stretchr/testify/assert"
)

func TestProtocol_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "dnscrypt", dnsstamp.ProtocolDNSCrypt.String())
	assert.Equal(t, "doh", dnsstamp.ProtocolDoH.String())
	assert.Equal(t, "dot", dnsstamp.ProtocolDoT.String())
	assert.Equal(t, "plain", dnsstamp.ProtocolPlain.String())
	assert.Equal(t, "!bad_protocol_153", dnsstamp.Protocol(153).String())
}

func TestProtocol_DefaultPort(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint16(443), dnsstamp.ProtocolDNSCrypt.DefaultPort())
	assert.Equal(t, uint16(443), dnsstamp.ProtocolDoH.DefaultPort())
	assert.Equal(t, uint16(853), dnsstamp.ProtocolDoT.DefaultPort())
	assert.Equal(t, uint16(53), dnsstamp.ProtocolPlain.DefaultPort())
}

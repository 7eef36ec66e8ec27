package models

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterfaceIntentNetwork(t *testing.T) {
	t.Parallel()

	intf := InterfaceIntent{IPAddr: "172.20.12.1 255.255.255.0"}

	ip, network, err := intf.Network()
	require.NoError(t, err)

	assert.Equal(t, "172.20.12.1", ip.String())
	assert.Equal(t, "172.20.12.0/24", network.String())

	assert.True(t, network.Contains(ip))
}

func TestInterfaceIntentNetwork_Contains(t *testing.T) {
	t.Parallel()

	intf := InterfaceIntent{IPAddr: "172.20.12.1 255.255.255.0"}

	_, network, err := intf.Network()
	require.NoError(t, err)

	tests := []struct {
		addr string
		want bool
	}{
		{"172.20.12.2", true},
		{"172.20.12.254", true},
		{"172.20.13.3", false},
		{"10.0.0.1", false},
	}

	for _, tt := range tests {
		ip := net.ParseIP(tt.addr)
		require.NotNil(t, ip)
		assert.Equal(t, tt.want, network.Contains(ip), "contains %s", tt.addr)
	}
}

func TestInterfaceIntentNetwork_BadInput(t *testing.T) {
	t.Parallel()

	bad := []string{
		"",
		"172.20.12.1",
		"172.20.12.1/24",
		"not-an-ip 255.255.255.0",
		"172.20.12.1 not-a-mask",
	}

	for _, addr := range bad {
		intf := InterfaceIntent{IPAddr: addr}

		_, _, err := intf.Network()
		require.ErrorIs(t, err, errBadInterfaceAddress, "address %q", addr)
	}
}

func TestInterfaceIntentCIDR(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ipaddr string
		want   string
	}{
		{"172.20.12.1 255.255.255.0", "172.20.12.1/24"},
		{"10.0.0.5 255.255.255.252", "10.0.0.5/30"},
		{"192.168.1.1 255.255.0.0", "192.168.1.1/16"},
	}

	for _, tt := range tests {
		intf := InterfaceIntent{IPAddr: tt.ipaddr}

		cidr, err := intf.CIDR()
		require.NoError(t, err)
		assert.Equal(t, tt.want, cidr)
	}
}

func TestInterfaceIntentCIDR_BadInput(t *testing.T) {
	t.Parallel()

	intf := InterfaceIntent{IPAddr: "garbage"}

	_, err := intf.CIDR()
	require.Error(t, err)
}

package validate

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/carverauto/wanprov/pkg/logger"
	"github.com/carverauto/wanprov/pkg/models"
	"github.com/carverauto/wanprov/pkg/transport"
)

func testDevice() *models.DeviceRecord {
	return &models.DeviceRecord{
		Name:           "wan-rtr-01",
		ManagementAddr: "10.0.0.11",
		Lifecycle:      models.LifecycleProvisioning,
	}
}

func twoLinkIntent() *models.ConfigIntent {
	return &models.ConfigIntent{
		BGP: models.RoutingIntent{
			ASN: 65512,
			Neighbors: []models.BGPNeighbor{
				{IPAddr: "172.20.12.2", RemoteASN: 65513},
				{IPAddr: "172.20.13.3", RemoteASN: 65514},
			},
		},
		Interfaces: map[string]models.InterfaceIntent{
			"GigabitEthernet2": {IPAddr: "172.20.12.1 255.255.255.0", State: "up"},
			"GigabitEthernet3": {IPAddr: "172.20.13.1 255.255.255.0", State: "up"},
		},
	}
}

func TestConnectivityValidator_ProbesMatchingPairsOnly(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockTransport := transport.NewMockTransport(ctrl)

	device := testDevice()

	// Each neighbor shares a subnet with exactly one local interface,
	// so exactly two of the four candidate pairs are probed.
	mockTransport.EXPECT().
		Probe(gomock.Any(), device, "172.20.12.1", "172.20.12.2").
		Return(&models.ProbeResult{Success: true, PacketLoss: 0, SourceAddr: "172.20.12.1", DestAddr: "172.20.12.2"}, nil)
	mockTransport.EXPECT().
		Probe(gomock.Any(), device, "172.20.13.1", "172.20.13.3").
		Return(&models.ProbeResult{Success: true, PacketLoss: 1, SourceAddr: "172.20.13.1", DestAddr: "172.20.13.3"}, nil)

	validator := NewConnectivityValidator(mockTransport, logger.NewTestLogger())

	results, err := validator.Validate(context.Background(), device, twoLinkIntent())
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "GigabitEthernet2", results[0].Interface)
	assert.Equal(t, "GigabitEthernet3", results[1].Interface)

	for _, result := range results {
		assert.False(t, ProbeFailed(&result))
	}
}

func TestConnectivityValidator_NeighborOnMultipleInterfaces(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockTransport := transport.NewMockTransport(ctrl)

	device := testDevice()

	// Two interfaces on overlapping networks both match the neighbor;
	// the probe runs from each one independently.
	intent := &models.ConfigIntent{
		BGP: models.RoutingIntent{
			Neighbors: []models.BGPNeighbor{{IPAddr: "172.20.12.2", RemoteASN: 65513}},
		},
		Interfaces: map[string]models.InterfaceIntent{
			"GigabitEthernet2": {IPAddr: "172.20.12.1 255.255.255.0"},
			"GigabitEthernet3": {IPAddr: "172.20.12.9 255.255.0.0"},
		},
	}

	mockTransport.EXPECT().
		Probe(gomock.Any(), device, "172.20.12.1", "172.20.12.2").
		Return(&models.ProbeResult{Success: true}, nil)
	mockTransport.EXPECT().
		Probe(gomock.Any(), device, "172.20.12.9", "172.20.12.2").
		Return(&models.ProbeResult{Success: true}, nil)

	validator := NewConnectivityValidator(mockTransport, logger.NewTestLogger())

	results, err := validator.Validate(context.Background(), device, intent)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestConnectivityValidator_NoMatchingInterface(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockTransport := transport.NewMockTransport(ctrl)

	intent := &models.ConfigIntent{
		BGP: models.RoutingIntent{
			Neighbors: []models.BGPNeighbor{{IPAddr: "192.168.99.1", RemoteASN: 65513}},
		},
		Interfaces: map[string]models.InterfaceIntent{
			"GigabitEthernet2": {IPAddr: "172.20.12.1 255.255.255.0"},
		},
	}

	validator := NewConnectivityValidator(mockTransport, logger.NewTestLogger())

	results, err := validator.Validate(context.Background(), testDevice(), intent)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestConnectivityValidator_TransportError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockTransport := transport.NewMockTransport(ctrl)

	errDial := errors.New("dial tcp: connection refused")

	mockTransport.EXPECT().
		Probe(gomock.Any(), gomock.Any(), "172.20.12.1", "172.20.12.2").
		Return(nil, errDial)

	intent := &models.ConfigIntent{
		BGP: models.RoutingIntent{
			Neighbors: []models.BGPNeighbor{{IPAddr: "172.20.12.2", RemoteASN: 65513}},
		},
		Interfaces: map[string]models.InterfaceIntent{
			"GigabitEthernet2": {IPAddr: "172.20.12.1 255.255.255.0"},
		},
	}

	validator := NewConnectivityValidator(mockTransport, logger.NewTestLogger())

	_, err := validator.Validate(context.Background(), testDevice(), intent)
	require.ErrorIs(t, err, errDial)
}

func TestConnectivityValidator_BadNeighborAddress(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockTransport := transport.NewMockTransport(ctrl)

	intent := &models.ConfigIntent{
		BGP: models.RoutingIntent{
			Neighbors: []models.BGPNeighbor{{IPAddr: "not-an-ip"}},
		},
	}

	validator := NewConnectivityValidator(mockTransport, logger.NewTestLogger())

	_, err := validator.Validate(context.Background(), testDevice(), intent)
	require.Error(t, err)
}

func TestProbeFailed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		result models.ProbeResult
		want   bool
	}{
		{"no loss", models.ProbeResult{Success: true, PacketLoss: 0}, false},
		{"one lost packet passes", models.ProbeResult{Success: true, PacketLoss: 1}, false},
		{"two lost packets fail", models.ProbeResult{Success: true, PacketLoss: 2}, true},
		{"total loss", models.ProbeResult{Success: true, PacketLoss: 5}, true},
		{"no success outcome", models.ProbeResult{Success: false}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, ProbeFailed(&tt.result))
		})
	}
}

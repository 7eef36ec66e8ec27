package reconcile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/carverauto/wanprov/pkg/logger"
	"github.com/carverauto/wanprov/pkg/models"
	"github.com/carverauto/wanprov/pkg/netbox"
	"github.com/carverauto/wanprov/pkg/transport"
)

// fakeInventory is an in-memory stand-in for the NetBox API, stateful
// across calls so reconciliation can be run twice against it.
type fakeInventory struct {
	interfaces []netbox.Interface
	ips        map[string]*netbox.IPAddress
	nextID     int

	createCalls int
	updateCalls int
	ipCreates   int

	deviceUpdates []netbox.DeviceUpdate
}

func newFakeInventory() *fakeInventory {
	return &fakeInventory{
		ips:    make(map[string]*netbox.IPAddress),
		nextID: 100,
	}
}

func (f *fakeInventory) DevicesByRole(_ context.Context, _ string) ([]netbox.Device, error) {
	return nil, nil
}

func (f *fakeInventory) ConfigContext(_ context.Context, _ int) (*models.ConfigIntent, error) {
	return nil, nil
}

func (f *fakeInventory) Interfaces(_ context.Context, _ int) ([]netbox.Interface, error) {
	return append([]netbox.Interface(nil), f.interfaces...), nil
}

func (f *fakeInventory) CreateInterface(_ context.Context, req *netbox.CreateInterfaceRequest) (*netbox.Interface, error) {
	f.createCalls++

	record := netbox.Interface{
		ID:          f.nextID,
		Name:        req.Name,
		Description: req.Description,
		MACAddress:  req.MACAddress,
	}
	f.nextID++

	f.interfaces = append(f.interfaces, record)

	return &record, nil
}

func (f *fakeInventory) UpdateInterface(_ context.Context, interfaceID int, req *netbox.UpdateInterfaceRequest) error {
	f.updateCalls++

	for i := range f.interfaces {
		if f.interfaces[i].ID == interfaceID {
			f.interfaces[i].Description = req.Description
			f.interfaces[i].MACAddress = req.MACAddress

			return nil
		}
	}

	return netbox.ErrInterfaceNotFound
}

func (f *fakeInventory) IPAddressByAddress(_ context.Context, address string) (*netbox.IPAddress, error) {
	return f.ips[address], nil
}

func (f *fakeInventory) CreateIPAddress(_ context.Context, address string, interfaceID int) (*netbox.IPAddress, error) {
	f.ipCreates++

	record := &netbox.IPAddress{
		ID:               f.nextID,
		Address:          address,
		AssignedObjectID: interfaceID,
	}
	f.nextID++

	f.ips[address] = record

	return record, nil
}

func (f *fakeInventory) UpdateDevice(_ context.Context, _ int, update *netbox.DeviceUpdate) error {
	f.deviceUpdates = append(f.deviceUpdates, *update)
	return nil
}

var _ netbox.Inventory = (*fakeInventory)(nil)

func observedInterfaces() map[string]models.InterfaceFacts {
	return map[string]models.InterfaceFacts{
		"GigabitEthernet1": {Description: "MGMT", MACAddress: "AA:BB:CC:00:11:01", OperUp: true},
		"GigabitEthernet2": {Description: "WAN-A", MACAddress: "AA:BB:CC:00:11:02", OperUp: true},
		"Loopback0":        {Description: "RID", MACAddress: "None"},
	}
}

func reconcileDevice() *models.DeviceRecord {
	device := &models.DeviceRecord{
		Name:      "wan-rtr-01",
		Lifecycle: models.LifecycleProvisioning,
	}
	device.Scratch.InventoryID = 7
	device.Scratch.Intent = &models.ConfigIntent{
		Interfaces: map[string]models.InterfaceIntent{
			"GigabitEthernet2": {IPAddr: "172.20.12.1 255.255.255.0"},
		},
	}

	return device
}

func testEngine(t *testing.T, inv netbox.Inventory, facts map[string]models.InterfaceFacts, runs int) *Engine {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockTransport := transport.NewMockTransport(ctrl)

	// Facts are fetched once for the upsert and once for the refresh.
	mockTransport.EXPECT().
		InterfaceFacts(gomock.Any(), gomock.Any()).
		Return(facts, nil).
		Times(2 * runs)

	cfg := Config{
		ProductionDeviceTypeID: 3,
		ProductionRoleID:       4,
		SiteID:                 1,
	}

	return NewEngine(inv, mockTransport, cfg, logger.NewTestLogger())
}

func TestEngine_Reconcile_CreatesEverythingFirstRun(t *testing.T) {
	t.Parallel()

	inv := newFakeInventory()
	engine := testEngine(t, inv, observedInterfaces(), 1)

	device := reconcileDevice()

	report, err := engine.Reconcile(context.Background(), device)
	require.NoError(t, err)

	assert.Equal(t, []string{"GigabitEthernet1", "GigabitEthernet2", "Loopback0"}, report.CreatedInterfaces)
	assert.Empty(t, report.UpdatedInterfaces)
	assert.Equal(t, []string{"172.20.12.1/24"}, report.CreatedIPs)
	assert.Empty(t, report.ConflictIPs)

	require.Len(t, inv.deviceUpdates, 1)
	assert.Equal(t, 3, inv.deviceUpdates[0].DeviceTypeID)
	assert.Equal(t, 4, inv.deviceUpdates[0].RoleID)

	assert.Equal(t, models.LifecycleProduction, device.Lifecycle)

	// The created IP is bound to the interface record created for
	// GigabitEthernet2 moments earlier.
	ip := inv.ips["172.20.12.1/24"]
	require.NotNil(t, ip)
	assert.NotZero(t, ip.AssignedObjectID)
}

func TestEngine_Reconcile_SecondRunCreatesNothing(t *testing.T) {
	t.Parallel()

	inv := newFakeInventory()
	facts := observedInterfaces()

	first := testEngine(t, inv, facts, 1)

	_, err := first.Reconcile(context.Background(), reconcileDevice())
	require.NoError(t, err)

	recordsAfterFirst := len(inv.interfaces)
	ipsAfterFirst := len(inv.ips)

	second := testEngine(t, inv, facts, 1)

	report, err := second.Reconcile(context.Background(), reconcileDevice())
	require.NoError(t, err)

	// Everything resolves to updates; the address created by the first
	// run is flagged, not duplicated.
	assert.Empty(t, report.CreatedInterfaces)
	assert.ElementsMatch(t, []string{"GigabitEthernet1", "GigabitEthernet2", "Loopback0"}, report.UpdatedInterfaces)
	assert.Empty(t, report.CreatedIPs)
	assert.Equal(t, []string{"172.20.12.1/24"}, report.ConflictIPs)

	assert.Len(t, inv.interfaces, recordsAfterFirst)
	assert.Len(t, inv.ips, ipsAfterFirst)
}

func TestEngine_Reconcile_PreExistingIPIsFlaggedNotTouched(t *testing.T) {
	t.Parallel()

	inv := newFakeInventory()
	inv.ips["172.20.12.1/24"] = &netbox.IPAddress{ID: 55, Address: "172.20.12.1/24", AssignedObjectID: 9}

	engine := testEngine(t, inv, observedInterfaces(), 1)

	device := reconcileDevice()

	report, err := engine.Reconcile(context.Background(), device)
	require.NoError(t, err)

	assert.Equal(t, []string{"172.20.12.1/24"}, report.ConflictIPs)
	assert.Empty(t, report.CreatedIPs)
	assert.Zero(t, inv.ipCreates)

	// The conflicting record keeps its original binding.
	assert.Equal(t, 9, inv.ips["172.20.12.1/24"].AssignedObjectID)

	// Conflicts do not block the lifecycle transition.
	assert.Equal(t, models.LifecycleProduction, device.Lifecycle)
}

func TestEngine_Reconcile_DeclaredInterfaceAbsentFromDevice(t *testing.T) {
	t.Parallel()

	inv := newFakeInventory()

	// The device never brought up GigabitEthernet2, so no inventory
	// interface exists to attach the declared address to.
	facts := map[string]models.InterfaceFacts{
		"GigabitEthernet1": {Description: "MGMT", MACAddress: "AA:BB:CC:00:11:01"},
	}

	engine := testEngine(t, inv, facts, 1)

	report, err := engine.Reconcile(context.Background(), reconcileDevice())
	require.NoError(t, err)

	assert.Empty(t, report.CreatedIPs)
	assert.Empty(t, report.ConflictIPs)
	assert.Zero(t, inv.ipCreates)
}

func TestEngine_Reconcile_NoIntentSkipsIPs(t *testing.T) {
	t.Parallel()

	inv := newFakeInventory()
	engine := testEngine(t, inv, observedInterfaces(), 1)

	device := reconcileDevice()
	device.Scratch.Intent = nil

	report, err := engine.Reconcile(context.Background(), device)
	require.NoError(t, err)

	assert.NotEmpty(t, report.CreatedInterfaces)
	assert.Empty(t, report.CreatedIPs)
}

func TestEngine_Reconcile_SentinelMACForVirtualInterfaces(t *testing.T) {
	t.Parallel()

	inv := newFakeInventory()
	engine := testEngine(t, inv, observedInterfaces(), 1)

	_, err := engine.Reconcile(context.Background(), reconcileDevice())
	require.NoError(t, err)

	macs := make(map[string]string, len(inv.interfaces))
	for _, record := range inv.interfaces {
		macs[record.Name] = record.MACAddress
	}

	assert.Equal(t, SentinelMAC, macs["Loopback0"])
	assert.Equal(t, "AA:BB:CC:00:11:02", macs["GigabitEthernet2"])
}

func TestNormalizeMAC(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"", SentinelMAC},
		{"None", SentinelMAC},
		{"Unspecified", SentinelMAC},
		{"AA:BB:CC:00:11:22", "AA:BB:CC:00:11:22"},
		{"ee:ee:ee:ee:ee:ee", "ee:ee:ee:ee:ee:ee"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeMAC(tt.in), "mac %q", tt.in)
	}
}

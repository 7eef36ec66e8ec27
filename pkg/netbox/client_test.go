package netbox

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/wanprov/pkg/logger"
)

func testClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(Config{
		Endpoint: server.URL,
		APIToken: "test-token",
	}, logger.NewTestLogger())

	return client, server
}

func deviceJSON(id int, name string) map[string]any {
	return map[string]any{
		"id":   id,
		"name": name,
		"primary_ip4": map[string]any{
			"id":      id * 10,
			"address": fmt.Sprintf("10.0.0.%d/24", id),
		},
	}
}

func TestClient_DevicesByRole_FollowsPagination(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	requestedOffsets := make(map[string]bool)

	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/dcim/devices/" {
			http.NotFound(w, r)
			return
		}
		if r.Header.Get("Authorization") != "Token test-token" {
			http.Error(w, "missing/invalid auth", http.StatusUnauthorized)
			return
		}
		if r.URL.Query().Get("role") != "provisioning" {
			http.Error(w, "missing role filter", http.StatusBadRequest)
			return
		}

		offset := r.URL.Query().Get("offset")
		if offset == "" {
			offset = "0"
		}

		mu.Lock()
		requestedOffsets[offset] = true
		mu.Unlock()

		switch offset {
		case "0":
			resp := map[string]any{
				"count":   3,
				"next":    fmt.Sprintf("%s/api/dcim/devices/?role=provisioning&offset=2", server.URL),
				"results": []any{deviceJSON(1, "wan-rtr-01"), deviceJSON(2, "wan-rtr-02")},
			}
			_ = json.NewEncoder(w).Encode(resp)
		case "2":
			resp := map[string]any{
				"count":   3,
				"next":    nil,
				"results": []any{deviceJSON(3, "wan-rtr-03")},
			}
			_ = json.NewEncoder(w).Encode(resp)
		default:
			http.Error(w, "unexpected offset", http.StatusBadRequest)
		}
	}))
	t.Cleanup(server.Close)

	client := NewClient(Config{Endpoint: server.URL, APIToken: "test-token"}, logger.NewTestLogger())

	devices, err := client.DevicesByRole(context.Background(), "provisioning")
	require.NoError(t, err)
	require.Len(t, devices, 3)

	assert.Equal(t, "wan-rtr-01", devices[0].Name)
	assert.Equal(t, "wan-rtr-03", devices[2].Name)
	assert.Equal(t, "10.0.0.1/24", devices[0].PrimaryIP4.Address)

	mu.Lock()
	defer mu.Unlock()
	assert.True(t, requestedOffsets["0"])
	assert.True(t, requestedOffsets["2"])
}

func TestClient_ConfigContext(t *testing.T) {
	t.Parallel()

	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/dcim/devices/7/", r.URL.Path)

		resp := map[string]any{
			"id":   7,
			"name": "wan-rtr-01",
			"local_context_data": map[string]any{
				"bgp": map[string]any{
					"asn": 65512,
					"rid": "1.1.1.1",
					"neighbors": []any{
						map[string]any{"ipaddr": "172.20.12.2", "remote_asn": 65513},
					},
					"networks": []any{
						map[string]any{"net": "172.20.12.0", "mask": "255.255.255.0"},
					},
				},
				"interfaces": map[string]any{
					"GigabitEthernet2": map[string]any{
						"description": "WAN-A",
						"ipaddr":      "172.20.12.1 255.255.255.0",
						"state":       "up",
					},
				},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))

	intent, err := client.ConfigContext(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, 65512, intent.BGP.ASN)
	assert.Equal(t, "1.1.1.1", intent.BGP.RouterID)
	require.Len(t, intent.BGP.Neighbors, 1)
	assert.Equal(t, "172.20.12.2", intent.BGP.Neighbors[0].IPAddr)
	assert.Equal(t, 65513, intent.BGP.Neighbors[0].RemoteASN)

	intf, ok := intent.Interfaces["GigabitEthernet2"]
	require.True(t, ok)
	assert.Equal(t, "172.20.12.1 255.255.255.0", intf.IPAddr)
	assert.Equal(t, "up", intf.State)
}

func TestClient_ConfigContext_Missing(t *testing.T) {
	t.Parallel()

	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		resp := map[string]any{
			"id":                 7,
			"name":               "wan-rtr-01",
			"local_context_data": nil,
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))

	_, err := client.ConfigContext(context.Background(), 7)
	require.ErrorIs(t, err, ErrNoConfigContext)
}

func TestClient_IPAddressByAddress_Absent(t *testing.T) {
	t.Parallel()

	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "172.20.12.1/24", r.URL.Query().Get("address"))

		resp := map[string]any{"count": 0, "results": []any{}}
		_ = json.NewEncoder(w).Encode(resp)
	}))

	record, err := client.IPAddressByAddress(context.Background(), "172.20.12.1/24")
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestClient_IPAddressByAddress_Present(t *testing.T) {
	t.Parallel()

	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		resp := map[string]any{
			"count": 1,
			"results": []any{
				map[string]any{"id": 42, "address": "172.20.12.1/24", "assigned_object_id": 9},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))

	record, err := client.IPAddressByAddress(context.Background(), "172.20.12.1/24")
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, 42, record.ID)
	assert.Equal(t, 9, record.AssignedObjectID)
}

func TestClient_CreateInterface_DefaultsType(t *testing.T) {
	t.Parallel()

	var got CreateInterfaceRequest

	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/dcim/interfaces/", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{"id": 101, "name": got.Name})
	}))

	created, err := client.CreateInterface(context.Background(), &CreateInterfaceRequest{
		DeviceID:    7,
		Name:        "GigabitEthernet2",
		Description: "WAN-A",
		MACAddress:  "AA:BB:CC:00:11:02",
	})
	require.NoError(t, err)

	assert.Equal(t, 101, created.ID)
	assert.Equal(t, defaultInterfaceType, got.Type)
	assert.Equal(t, 7, got.DeviceID)
}

func TestClient_CreateIPAddress(t *testing.T) {
	t.Parallel()

	var got map[string]any

	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/ipam/ip-addresses/", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{"id": 55, "address": "172.20.12.1/24"})
	}))

	created, err := client.CreateIPAddress(context.Background(), "172.20.12.1/24", 101)
	require.NoError(t, err)

	assert.Equal(t, 55, created.ID)
	assert.Equal(t, "dcim.interface", got["assigned_object_type"])
	assert.Equal(t, float64(101), got["assigned_object_id"])
}

func TestClient_UpdateDevice(t *testing.T) {
	t.Parallel()

	var got DeviceUpdate

	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/api/dcim/devices/7/", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.WriteHeader(http.StatusOK)
	}))

	err := client.UpdateDevice(context.Background(), 7, &DeviceUpdate{
		DeviceTypeID: 3,
		RoleID:       4,
		SiteID:       1,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, got.DeviceTypeID)
	assert.Equal(t, 4, got.RoleID)
	assert.Equal(t, 1, got.SiteID)
}

func TestClient_UnexpectedStatus(t *testing.T) {
	t.Parallel()

	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))

	_, err := client.DevicesByRole(context.Background(), "provisioning")
	require.ErrorIs(t, err, errUnexpectedStatusCode)
}

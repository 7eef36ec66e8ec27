package netbox

import "encoding/json"

// Device represents a NetBox device as returned by the API.
type Device struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	DeviceType struct {
		ID    int    `json:"id"`
		Model string `json:"model"`
	} `json:"device_type"`
	Role struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
		Slug string `json:"slug"`
	} `json:"role"`
	Site struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"site"`
	Status struct {
		Value string `json:"value"`
		Label string `json:"label"`
	} `json:"status"`
	PrimaryIP4 struct {
		ID      int    `json:"id"`
		Address string `json:"address"`
	} `json:"primary_ip4"`
	// LocalContextData holds the device's config context verbatim;
	// it is decoded separately into models.ConfigIntent.
	LocalContextData json.RawMessage `json:"local_context_data"`
}

// DeviceResponse represents a paginated NetBox device listing.
type DeviceResponse struct {
	Count    int      `json:"count"`
	Next     *string  `json:"next"`
	Previous *string  `json:"previous"`
	Results  []Device `json:"results"`
}

// Interface represents a NetBox dcim interface record.
type Interface struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Device struct {
		ID      int    `json:"id"`
		Name    string `json:"name"`
		Display string `json:"display"`
	} `json:"device"`
	Type struct {
		Value string `json:"value"`
		Label string `json:"label"`
	} `json:"type"`
	Description string `json:"description"`
	MACAddress  string `json:"mac_address"`
}

// InterfaceResponse represents a paginated NetBox interface listing.
type InterfaceResponse struct {
	Count    int         `json:"count"`
	Next     *string     `json:"next"`
	Previous *string     `json:"previous"`
	Results  []Interface `json:"results"`
}

// IPAddress represents a NetBox ipam IP address record.
type IPAddress struct {
	ID      int    `json:"id"`
	Address string `json:"address"`
	// AssignedObjectID is the dcim interface the address is bound to.
	AssignedObjectID int `json:"assigned_object_id"`
}

// IPAddressResponse represents a paginated NetBox IP address listing.
type IPAddressResponse struct {
	Count    int         `json:"count"`
	Next     *string     `json:"next"`
	Previous *string     `json:"previous"`
	Results  []IPAddress `json:"results"`
}

// CreateInterfaceRequest is the payload for creating a dcim interface.
type CreateInterfaceRequest struct {
	DeviceID    int    `json:"device"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	MACAddress  string `json:"mac_address"`
}

// UpdateInterfaceRequest is the payload for patching a dcim interface.
type UpdateInterfaceRequest struct {
	Description string `json:"description"`
	MACAddress  string `json:"mac_address"`
}

// DeviceUpdate patches the catalog-level classification of a device.
type DeviceUpdate struct {
	DeviceTypeID int `json:"device_type"`
	RoleID       int `json:"role"`
	SiteID       int `json:"site"`
}

// defaultInterfaceType is the dcim interface type used for records
// created by reconciliation (1000BASE-T, matching the lab routers).
const defaultInterfaceType = "1000base-t"

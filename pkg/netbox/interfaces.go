/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

//go:generate mockgen -destination=mock_netbox.go -package=netbox github.com/carverauto/wanprov/pkg/netbox Inventory

package netbox

import (
	"context"

	"github.com/carverauto/wanprov/pkg/models"
)

// Inventory is the source-of-truth capability consumed by the
// pipeline. The client is safe for concurrent use across devices.
type Inventory interface {
	// DevicesByRole lists devices carrying the given role slug.
	DevicesByRole(ctx context.Context, role string) ([]Device, error)

	// ConfigContext fetches the declarative intent stored in the
	// device's config context. Returns ErrNoConfigContext when the
	// device has none.
	ConfigContext(ctx context.Context, deviceID int) (*models.ConfigIntent, error)

	// Interfaces lists the dcim interface records for a device.
	Interfaces(ctx context.Context, deviceID int) ([]Interface, error)

	CreateInterface(ctx context.Context, req *CreateInterfaceRequest) (*Interface, error)
	UpdateInterface(ctx context.Context, interfaceID int, req *UpdateInterfaceRequest) error

	// IPAddressByAddress looks up an IP record by its literal CIDR
	// string. Returns (nil, nil) when no record exists.
	IPAddressByAddress(ctx context.Context, address string) (*IPAddress, error)

	CreateIPAddress(ctx context.Context, address string, interfaceID int) (*IPAddress, error)

	// UpdateDevice patches the device's type, role and site.
	UpdateDevice(ctx context.Context, deviceID int, update *DeviceUpdate) error
}

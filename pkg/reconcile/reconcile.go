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

// Package reconcile aligns source-of-truth records with device-observed
// facts via create-or-update, without deletion.
package reconcile

import (
	"context"
	"fmt"
	"sort"

	"github.com/carverauto/wanprov/pkg/logger"
	"github.com/carverauto/wanprov/pkg/models"
	"github.com/carverauto/wanprov/pkg/netbox"
	"github.com/carverauto/wanprov/pkg/transport"
)

// SentinelMAC satisfies the inventory schema when a device reports no
// usable MAC address, e.g. for virtual interfaces.
const SentinelMAC = "EE:EE:EE:EE:EE:EE"

// NormalizeMAC maps absent or unspecified MAC addresses to the
// sentinel value; anything else passes through unchanged.
func NormalizeMAC(mac string) string {
	switch mac {
	case "", "None", "Unspecified":
		return SentinelMAC
	default:
		return mac
	}
}

// Config selects the catalog attributes that mark a device as moved to
// production.
type Config struct {
	ProductionDeviceTypeID int `json:"production_device_type_id"`
	ProductionRoleID       int `json:"production_role_id"`
	SiteID                 int `json:"site_id"`
}

// Engine reconciles one device's observed state into the
// source-of-truth. Re-running against an unchanged device produces no
// new records; updates re-apply identical values.
type Engine struct {
	inventory netbox.Inventory
	transport transport.Transport
	config    Config
	logger    logger.Logger
}

// NewEngine builds a reconciliation engine.
func NewEngine(inv netbox.Inventory, t transport.Transport, cfg Config, log logger.Logger) *Engine {
	return &Engine{
		inventory: inv,
		transport: t,
		config:    cfg,
		logger:    log.WithComponent("reconcile"),
	}
}

// Reconcile runs the full two-phase cycle for one device: interface
// upsert, refresh, IP create-or-flag, lifecycle transition. The cycle
// is not transactional; each mutation stands alone.
func (e *Engine) Reconcile(ctx context.Context, device *models.DeviceRecord) (*models.ReconcileReport, error) {
	report := &models.ReconcileReport{Device: device.Name}

	if err := e.upsertInterfaces(ctx, device, report); err != nil {
		return report, err
	}

	// Refresh: interface identifiers assigned at creation time are
	// required for IP attachment.
	records, err := e.refresh(ctx, device)
	if err != nil {
		return report, err
	}

	if err := e.reconcileIPs(ctx, device, records, report); err != nil {
		return report, err
	}

	if err := e.transitionLifecycle(ctx, device); err != nil {
		return report, err
	}

	return report, nil
}

// upsertInterfaces creates or updates an inventory interface record
// for every observed interface. Stale inventory interfaces absent from
// the device are deliberately left alone: no pruning.
func (e *Engine) upsertInterfaces(ctx context.Context, device *models.DeviceRecord, report *models.ReconcileReport) error {
	observed, err := e.transport.InterfaceFacts(ctx, device)
	if err != nil {
		return fmt.Errorf("fetching interface facts for %s: %w", device.Name, err)
	}

	if device.Scratch.Facts == nil {
		device.Scratch.Facts = &models.ObservedFacts{}
	}

	device.Scratch.Facts.Interfaces = observed

	records, err := e.inventory.Interfaces(ctx, device.Scratch.InventoryID)
	if err != nil {
		return fmt.Errorf("listing inventory interfaces for %s: %w", device.Name, err)
	}

	byName := interfacesByName(records, device.Name)

	for _, name := range sortedKeys(observed) {
		facts := observed[name]
		mac := NormalizeMAC(facts.MACAddress)

		existing, ok := byName[name]
		if !ok {
			e.logger.Info().Str("device", device.Name).Str("interface", name).Msg("Creating inventory interface")

			_, err := e.inventory.CreateInterface(ctx, &netbox.CreateInterfaceRequest{
				DeviceID:    device.Scratch.InventoryID,
				Name:        name,
				Description: facts.Description,
				MACAddress:  mac,
			})
			if err != nil {
				return fmt.Errorf("creating interface %s on %s: %w", name, device.Name, err)
			}

			report.CreatedInterfaces = append(report.CreatedInterfaces, name)

			continue
		}

		e.logger.Info().Str("device", device.Name).Str("interface", name).Msg("Updating inventory interface")

		err := e.inventory.UpdateInterface(ctx, existing.ID, &netbox.UpdateInterfaceRequest{
			Description: facts.Description,
			MACAddress:  mac,
		})
		if err != nil {
			return fmt.Errorf("updating interface %s on %s: %w", name, device.Name, err)
		}

		report.UpdatedInterfaces = append(report.UpdatedInterfaces, name)
	}

	return nil
}

// refresh re-fetches observed facts and inventory records after the
// interface upsert.
func (e *Engine) refresh(ctx context.Context, device *models.DeviceRecord) ([]netbox.Interface, error) {
	observed, err := e.transport.InterfaceFacts(ctx, device)
	if err != nil {
		return nil, fmt.Errorf("refreshing interface facts for %s: %w", device.Name, err)
	}

	device.Scratch.Facts.Interfaces = observed

	records, err := e.inventory.Interfaces(ctx, device.Scratch.InventoryID)
	if err != nil {
		return nil, fmt.Errorf("refreshing inventory interfaces for %s: %w", device.Name, err)
	}

	return records, nil
}

// reconcileIPs creates an IP record for every declared interface
// address that the inventory does not know yet. An address that
// already exists is flagged for manual verification, never
// overwritten: duplicate literal addresses are not auto-resolved.
func (e *Engine) reconcileIPs(ctx context.Context, device *models.DeviceRecord, records []netbox.Interface, report *models.ReconcileReport) error {
	if device.Scratch.Intent == nil {
		return nil
	}

	byName := interfacesByName(records, device.Name)

	for _, name := range sortedKeys(device.Scratch.Intent.Interfaces) {
		intf := device.Scratch.Intent.Interfaces[name]

		cidr, err := intf.CIDR()
		if err != nil {
			return fmt.Errorf("interface %s on %s: %w", name, device.Name, err)
		}

		existing, err := e.inventory.IPAddressByAddress(ctx, cidr)
		if err != nil {
			return fmt.Errorf("looking up %s: %w", cidr, err)
		}

		if existing != nil {
			e.logger.Warn().
				Str("device", device.Name).
				Str("address", cidr).
				Msg("IP address already exists in inventory, verify manually")

			report.ConflictIPs = append(report.ConflictIPs, cidr)

			continue
		}

		record, ok := byName[name]
		if !ok {
			// The declared interface never appeared on the device,
			// so no inventory record exists to attach the address to.
			e.logger.Warn().
				Str("device", device.Name).
				Str("interface", name).
				Msg("No inventory interface for declared address, skipping")

			continue
		}

		if _, err := e.inventory.CreateIPAddress(ctx, cidr, record.ID); err != nil {
			return fmt.Errorf("creating IP %s on %s: %w", cidr, device.Name, err)
		}

		e.logger.Info().Str("device", device.Name).Str("address", cidr).Msg("Created inventory IP address")

		report.CreatedIPs = append(report.CreatedIPs, cidr)
	}

	return nil
}

// transitionLifecycle marks the device moved from Provisioning to
// Production. This runs unconditionally once the earlier steps
// complete; IP conflicts are reported, not blocking.
func (e *Engine) transitionLifecycle(ctx context.Context, device *models.DeviceRecord) error {
	err := e.inventory.UpdateDevice(ctx, device.Scratch.InventoryID, &netbox.DeviceUpdate{
		DeviceTypeID: e.config.ProductionDeviceTypeID,
		RoleID:       e.config.ProductionRoleID,
		SiteID:       e.config.SiteID,
	})
	if err != nil {
		return fmt.Errorf("updating device %s: %w", device.Name, err)
	}

	device.Lifecycle = models.LifecycleProduction

	e.logger.Info().Str("device", device.Name).Msg("Device moved from Provisioning to Production")

	return nil
}

// interfacesByName indexes inventory interface records by name, scoped
// to the given device.
func interfacesByName(records []netbox.Interface, deviceName string) map[string]netbox.Interface {
	byName := make(map[string]netbox.Interface, len(records))

	for _, record := range records {
		if record.Device.Name != "" && record.Device.Name != deviceName {
			continue
		}

		byName[record.Name] = record
	}

	return byName
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

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

package provision

import (
	"context"
	"strings"

	"github.com/carverauto/wanprov/pkg/models"
	"github.com/carverauto/wanprov/pkg/pipeline"
	"github.com/carverauto/wanprov/pkg/validate"
)

const (
	scpEnableConfig  = "ip scp server enable"
	scpDisableConfig = "no ip scp server enable"

	interfaceTemplate = "interfaces.tmpl"
	routingTemplate   = "bgp.tmpl"
)

// enableTransport turns on the device's file transfer service, which
// the config push path requires.
func (p *Provisioner) enableTransport(ctx context.Context, device *models.DeviceRecord, _ *pipeline.Recorder) error {
	if err := p.transport.PushConfig(ctx, device, scpEnableConfig); err != nil {
		return err
	}

	p.logger.Info().Str("device", device.Name).Msg("SCP enabled")

	return nil
}

// fetchIntent pulls the declarative variable set from the
// source-of-truth config context. A device without config context data
// fails the stage.
func (p *Provisioner) fetchIntent(ctx context.Context, device *models.DeviceRecord, _ *pipeline.Recorder) error {
	intent, err := p.inventory.ConfigContext(ctx, device.Scratch.InventoryID)
	if err != nil {
		return err
	}

	device.Scratch.Intent = intent

	p.logger.Info().
		Str("device", device.Name).
		Int("interfaces", len(intent.Interfaces)).
		Int("neighbors", len(intent.BGP.Neighbors)).
		Msg("Config variables fetched")

	return nil
}

// renderConfigs renders both config domains and stores them as
// working-directory artifacts.
func (p *Provisioner) renderConfigs(_ context.Context, device *models.DeviceRecord, _ *pipeline.Recorder) error {
	intfConfig, err := p.renderer.Render(interfaceTemplate, device.Scratch.Intent)
	if err != nil {
		return err
	}

	intfPath, err := p.artifacts.Write(device.Name, "intf", intfConfig)
	if err != nil {
		return err
	}

	device.Scratch.InterfaceConfigPath = intfPath

	routingConfig, err := p.renderer.Render(routingTemplate, device.Scratch.Intent)
	if err != nil {
		return err
	}

	routingPath, err := p.artifacts.Write(device.Name, "bgp", routingConfig)
	if err != nil {
		return err
	}

	device.Scratch.RoutingConfigPath = routingPath

	p.logger.Info().Str("device", device.Name).Msg("Configurations rendered")

	return nil
}

// applyL3 pushes the rendered interface configuration.
func (p *Provisioner) applyL3(ctx context.Context, device *models.DeviceRecord, _ *pipeline.Recorder) error {
	configText, err := p.artifacts.Read(device.Scratch.InterfaceConfigPath)
	if err != nil {
		return err
	}

	if err := p.transport.PushConfig(ctx, device, configText); err != nil {
		return err
	}

	p.logger.Info().Str("device", device.Name).Msg("Interface configuration applied")

	return nil
}

// validateL3 probes reachability to every routing neighbor sharing a
// subnet with a local interface. Failures are observational: they are
// reported but do not exclude the device, operators decide at the next
// gate.
func (p *Provisioner) validateL3(ctx context.Context, device *models.DeviceRecord, rec *pipeline.Recorder) error {
	results, err := p.connectivity.Validate(ctx, device, device.Scratch.Intent)
	if err != nil {
		return err
	}

	failed := 0

	for i := range results {
		probe := &results[i]

		if validate.ProbeFailed(probe) {
			rec.Warnf("ping %s > %s failed (loss %d)", probe.SourceAddr, probe.DestAddr, probe.PacketLoss)

			failed++
		}
	}

	if failed == 0 {
		p.logger.Info().Str("device", device.Name).Int("probes", len(results)).Msg("All ping tests succeeded")
	}

	return nil
}

// applyRouting pushes the rendered BGP configuration.
func (p *Provisioner) applyRouting(ctx context.Context, device *models.DeviceRecord, _ *pipeline.Recorder) error {
	configText, err := p.artifacts.Read(device.Scratch.RoutingConfigPath)
	if err != nil {
		return err
	}

	if err := p.transport.PushConfig(ctx, device, configText); err != nil {
		return err
	}

	p.logger.Info().Str("device", device.Name).Msg("BGP routing configuration applied")

	return nil
}

// validateRouting classifies every BGP peer session and reports the
// down ones.
func (p *Provisioner) validateRouting(ctx context.Context, device *models.DeviceRecord, rec *pipeline.Recorder) error {
	peers, err := p.transport.BGPPeerFacts(ctx, device)
	if err != nil {
		return err
	}

	if device.Scratch.Facts == nil {
		device.Scratch.Facts = &models.ObservedFacts{}
	}

	device.Scratch.Facts.BGPPeers = peers

	for addr, state := range validate.ClassifyAdjacencies(peers) {
		if state == models.AdjacencyUp {
			p.logger.Info().Str("device", device.Name).Str("peer", addr).Msg("BGP peer is up")
			continue
		}

		rec.Warnf("BGP peer %s is down", addr)
	}

	return nil
}

// reconcileInventory writes observed device state back to the
// source-of-truth and transitions the device to production.
func (p *Provisioner) reconcileInventory(ctx context.Context, device *models.DeviceRecord, rec *pipeline.Recorder) error {
	report, err := p.engine.Reconcile(ctx, device)
	if err != nil {
		return err
	}

	for _, addr := range report.ConflictIPs {
		rec.Warnf("%s exists in inventory, verify manually", addr)
	}

	p.logger.Info().
		Str("device", device.Name).
		Int("created_interfaces", len(report.CreatedInterfaces)).
		Int("updated_interfaces", len(report.UpdatedInterfaces)).
		Int("created_ips", len(report.CreatedIPs)).
		Int("ip_conflicts", len(report.ConflictIPs)).
		Msg("Inventory reconciled")

	return nil
}

// finalize captures the software version, disables the transfer
// service and persists the running configuration.
func (p *Provisioner) finalize(ctx context.Context, device *models.DeviceRecord, _ *pipeline.Recorder) error {
	version, err := p.transport.RunCommand(ctx, device, "show version | include Software")
	if err == nil {
		device.Scratch.SoftwareVersion = strings.TrimSpace(strings.SplitN(version, "\n", 2)[0])
	}

	if err := p.transport.PushConfig(ctx, device, scpDisableConfig); err != nil {
		return err
	}

	if err := p.transport.SaveRunningConfig(ctx, device); err != nil {
		return err
	}

	p.logger.Info().
		Str("device", device.Name).
		Str("version", device.Scratch.SoftwareVersion).
		Msg("SCP disabled and configuration saved")

	return nil
}

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

// Package provision assembles the WAN router provisioning pipeline:
// fetch intent from the source-of-truth, push layer-3 and routing
// configuration, validate convergence, and write observed state back.
package provision

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/carverauto/wanprov/pkg/config"
	"github.com/carverauto/wanprov/pkg/logger"
	"github.com/carverauto/wanprov/pkg/models"
	"github.com/carverauto/wanprov/pkg/netbox"
	"github.com/carverauto/wanprov/pkg/pipeline"
	"github.com/carverauto/wanprov/pkg/reconcile"
	"github.com/carverauto/wanprov/pkg/render"
	"github.com/carverauto/wanprov/pkg/transport"
	"github.com/carverauto/wanprov/pkg/validate"
)

// ErrNoDevices is returned when the inventory role filter matches
// nothing; the run never starts.
var ErrNoDevices = errors.New("no matching devices found in inventory")

const defaultSettleDelay = 20 * time.Second

// Config holds the provisioning run settings.
type Config struct {
	// Role is the inventory role slug that selects the cohort.
	Role        string          `json:"role"`
	Concurrency int             `json:"concurrency"`
	SettleDelay config.Duration `json:"settle_delay"`
	ArtifactDir string          `json:"artifact_dir"`

	Reconcile reconcile.Config `json:"reconcile"`
}

func (c *Config) settleDelay() time.Duration {
	if c.SettleDelay.Duration() > 0 {
		return c.SettleDelay.Duration()
	}

	return defaultSettleDelay
}

// Validate implements config.Validator.
func (c *Config) Validate() error {
	if c.Role == "" {
		return errors.New("provision: role filter is required")
	}

	if c.ArtifactDir == "" {
		return errors.New("provision: artifact_dir is required")
	}

	return nil
}

// Provisioner binds the collaborators into a runnable pipeline plan.
type Provisioner struct {
	config       Config
	inventory    netbox.Inventory
	transport    transport.Transport
	renderer     render.Renderer
	artifacts    *render.ArtifactStore
	connectivity *validate.ConnectivityValidator
	engine       *reconcile.Engine
	logger       logger.Logger
}

// New builds a Provisioner.
func New(
	cfg Config,
	inv netbox.Inventory,
	t transport.Transport,
	renderer render.Renderer,
	artifacts *render.ArtifactStore,
	log logger.Logger,
) *Provisioner {
	return &Provisioner{
		config:       cfg,
		inventory:    inv,
		transport:    t,
		renderer:     renderer,
		artifacts:    artifacts,
		connectivity: validate.NewConnectivityValidator(t, log),
		engine:       reconcile.NewEngine(inv, t, cfg.Reconcile, log),
		logger:       log.WithComponent("provision"),
	}
}

// Kickoff filters the inventory by role and builds the per-run device
// records. Devices without a primary management address are skipped.
func (p *Provisioner) Kickoff(ctx context.Context) ([]*models.DeviceRecord, error) {
	nbDevices, err := p.inventory.DevicesByRole(ctx, p.config.Role)
	if err != nil {
		return nil, fmt.Errorf("listing devices by role %q: %w", p.config.Role, err)
	}

	devices := make([]*models.DeviceRecord, 0, len(nbDevices))

	for i := range nbDevices {
		nbDevice := &nbDevices[i]

		if nbDevice.PrimaryIP4.Address == "" {
			p.logger.Warn().Str("device", nbDevice.Name).Msg("Device has no primary IP, skipping")
			continue
		}

		ip, _, err := net.ParseCIDR(nbDevice.PrimaryIP4.Address)
		if err != nil {
			p.logger.Warn().
				Str("device", nbDevice.Name).
				Str("address", nbDevice.PrimaryIP4.Address).
				Msg("Unparseable primary IP, skipping")

			continue
		}

		device := &models.DeviceRecord{
			Name:           nbDevice.Name,
			ManagementAddr: ip.String(),
			Lifecycle:      models.LifecycleProvisioning,
		}
		device.Scratch.InventoryID = nbDevice.ID

		devices = append(devices, device)
	}

	if len(devices) == 0 {
		return nil, fmt.Errorf("%w: role %q", ErrNoDevices, p.config.Role)
	}

	return devices, nil
}

// Plan returns the ordered pipeline for a provisioning run.
func (p *Provisioner) Plan() pipeline.Plan {
	settle := p.config.settleDelay()

	return pipeline.Plan{
		pipeline.StageStep(pipeline.Stage{Name: "enable-transport", Run: p.enableTransport}),
		pipeline.StageStep(pipeline.Stage{Name: "fetch-intent", Run: p.fetchIntent}),
		pipeline.StageStep(pipeline.Stage{Name: "render", Run: p.renderConfigs}),
		pipeline.GateStep("apply-l3"),
		pipeline.StageStep(pipeline.Stage{Name: "apply-l3", Run: p.applyL3}),
		pipeline.SettleStep(settle),
		pipeline.StageStep(pipeline.Stage{Name: "validate-l3", Run: p.validateL3, Observational: true}),
		pipeline.GateStep("apply-routing"),
		pipeline.StageStep(pipeline.Stage{Name: "apply-routing", Run: p.applyRouting}),
		pipeline.SettleStep(settle),
		pipeline.StageStep(pipeline.Stage{Name: "validate-routing", Run: p.validateRouting, Observational: true}),
		pipeline.StageStep(pipeline.Stage{Name: "reconcile-inventory", Run: p.reconcileInventory}),
		pipeline.StageStep(pipeline.Stage{Name: "finalize", Run: p.finalize}),
	}
}

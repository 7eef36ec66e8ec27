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

//go:generate mockgen -destination=mock_transport.go -package=transport github.com/carverauto/wanprov/pkg/transport Transport

package transport

import (
	"context"

	"github.com/carverauto/wanprov/pkg/models"
)

// Transport is the per-device capability used by the pipeline to push
// configuration, run commands, probe reachability and fetch structured
// facts. Implementations are safe for concurrent use across devices.
type Transport interface {
	// PushConfig applies configuration text to the device.
	PushConfig(ctx context.Context, device *models.DeviceRecord, config string) error

	// RunCommand executes one exec-mode command and returns its output.
	RunCommand(ctx context.Context, device *models.DeviceRecord, command string) (string, error)

	// Probe sends a reachability probe from sourceAddr to destAddr.
	// A returned error means the probe could not be issued at all;
	// probe failure is reported through the result.
	Probe(ctx context.Context, device *models.DeviceRecord, sourceAddr, destAddr string) (*models.ProbeResult, error)

	// InterfaceFacts fetches a fresh snapshot of interface state.
	InterfaceFacts(ctx context.Context, device *models.DeviceRecord) (map[string]models.InterfaceFacts, error)

	// BGPPeerFacts fetches a fresh snapshot of routing peer state,
	// keyed by peer address.
	BGPPeerFacts(ctx context.Context, device *models.DeviceRecord) (map[string]models.BGPPeerFacts, error)

	// SaveRunningConfig persists the running configuration.
	SaveRunningConfig(ctx context.Context, device *models.DeviceRecord) error
}

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

// Package validate checks that the network actually converged after
// configuration was applied.
package validate

import (
	"context"
	"fmt"
	"net"
	"sort"

	"github.com/carverauto/wanprov/pkg/logger"
	"github.com/carverauto/wanprov/pkg/models"
	"github.com/carverauto/wanprov/pkg/transport"
)

// maxPacketLoss is the loss count at which a probe counts as failed.
const maxPacketLoss = 2

// ProbeFailed reports whether a probe result counts as failed: the
// transport produced no success outcome, or lost two or more packets.
func ProbeFailed(result *models.ProbeResult) bool {
	return !result.Success || result.PacketLoss >= maxPacketLoss
}

// ConnectivityValidator probes reachability between local interfaces
// and routing neighbors that share a subnet.
type ConnectivityValidator struct {
	transport transport.Transport
	logger    logger.Logger
}

// NewConnectivityValidator builds a validator over the given transport.
func NewConnectivityValidator(t transport.Transport, log logger.Logger) *ConnectivityValidator {
	return &ConnectivityValidator{
		transport: t,
		logger:    log.WithComponent("validate"),
	}
}

// Validate issues one probe for every (neighbor, local interface) pair
// whose networks match under the local interface's mask. Pairs on
// disjoint networks are skipped, not failed: absent adjacency topology
// is not a fault of this stage. A neighbor matching several local
// interfaces is probed from each one independently.
func (v *ConnectivityValidator) Validate(ctx context.Context, device *models.DeviceRecord, intent *models.ConfigIntent) ([]models.ProbeResult, error) {
	names := make([]string, 0, len(intent.Interfaces))
	for name := range intent.Interfaces {
		names = append(names, name)
	}

	sort.Strings(names)

	var results []models.ProbeResult

	for _, neighbor := range intent.BGP.Neighbors {
		dest := net.ParseIP(neighbor.IPAddr)
		if dest == nil {
			return nil, fmt.Errorf("neighbor address %q is not a valid IP", neighbor.IPAddr)
		}

		for _, name := range names {
			intf := intent.Interfaces[name]

			localIP, network, err := intf.Network()
			if err != nil {
				return nil, fmt.Errorf("interface %s: %w", name, err)
			}

			// The neighbor must fall inside the local interface's
			// network under that interface's own mask.
			if !network.Contains(dest) {
				continue
			}

			probe, err := v.transport.Probe(ctx, device, localIP.String(), dest.String())
			if err != nil {
				return nil, fmt.Errorf("probe %s > %s: %w", localIP, dest, err)
			}

			probe.Interface = name

			v.logger.Debug().
				Str("device", device.Name).
				Str("source", localIP.String()).
				Str("dest", dest.String()).
				Bool("failed", ProbeFailed(probe)).
				Int("packet_loss", probe.PacketLoss).
				Msg("Connectivity probe")

			results = append(results, *probe)
		}
	}

	return results, nil
}

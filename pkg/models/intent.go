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

package models

import (
	"errors"
	"fmt"
	"net"
	"strings"
)

var errBadInterfaceAddress = errors.New("interface address is not in \"address mask\" form")

// ConfigIntent is the declarative variable set stored in the
// source-of-truth config context for one device.
type ConfigIntent struct {
	BGP        RoutingIntent              `json:"bgp"`
	Interfaces map[string]InterfaceIntent `json:"interfaces"`
}

// InterfaceIntent describes the desired state of one interface.
type InterfaceIntent struct {
	Description string `json:"description"`
	// IPAddr is stored as "address mask" in the config context,
	// e.g. "172.20.12.1 255.255.255.0".
	IPAddr string `json:"ipaddr"`
	State  string `json:"state"`
}

// Network parses the interface address into the host IP and the
// network it belongs to under the interface's own mask.
func (i InterfaceIntent) Network() (net.IP, *net.IPNet, error) {
	addr, mask, ok := strings.Cut(strings.TrimSpace(i.IPAddr), " ")
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", errBadInterfaceAddress, i.IPAddr)
	}

	ip := net.ParseIP(strings.TrimSpace(addr))
	maskIP := net.ParseIP(strings.TrimSpace(mask))

	if ip == nil || maskIP == nil {
		return nil, nil, fmt.Errorf("%w: %q", errBadInterfaceAddress, i.IPAddr)
	}

	ipMask := net.IPMask(maskIP.To4())
	if ipMask == nil {
		return nil, nil, fmt.Errorf("%w: %q", errBadInterfaceAddress, i.IPAddr)
	}

	return ip, &net.IPNet{IP: ip.Mask(ipMask), Mask: ipMask}, nil
}

// CIDR returns the interface address in canonical CIDR form,
// e.g. "172.20.12.1/24". This is the identity key for IP records in
// the source-of-truth.
func (i InterfaceIntent) CIDR() (string, error) {
	ip, network, err := i.Network()
	if err != nil {
		return "", err
	}

	bits, _ := network.Mask.Size()

	return fmt.Sprintf("%s/%d", ip, bits), nil
}

// RoutingIntent describes the desired BGP configuration for one device.
type RoutingIntent struct {
	ASN       int           `json:"asn"`
	RouterID  string        `json:"rid"`
	Neighbors []BGPNeighbor `json:"neighbors"`
	Networks  []BGPNetwork  `json:"networks"`
}

// BGPNeighbor is one desired peering session.
type BGPNeighbor struct {
	IPAddr    string `json:"ipaddr"`
	RemoteASN int    `json:"remote_asn"`
}

// BGPNetwork is one network statement to advertise.
type BGPNetwork struct {
	Net  string `json:"net"`
	Mask string `json:"mask"`
}

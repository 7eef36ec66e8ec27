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

// ObservedFacts is a snapshot of device state as reported by the
// transport. It is replaced wholesale on every fetch.
type ObservedFacts struct {
	Interfaces map[string]InterfaceFacts `json:"interfaces"`
	BGPPeers   map[string]BGPPeerFacts   `json:"bgp_peers"`
}

// InterfaceFacts is the observed state of a single interface.
type InterfaceFacts struct {
	Description string `json:"description"`
	// MACAddress may be empty or a platform placeholder such as
	// "None" or "Unspecified" for virtual interfaces.
	MACAddress string `json:"mac_address"`
	OperUp     bool   `json:"oper_up"`
	AdminUp    bool   `json:"admin_up"`
	SpeedMbps  int64  `json:"speed_mbps"`
}

// BGPPeerFacts is the observed state of one routing peer, keyed by
// the peer address in the ObservedFacts map.
type BGPPeerFacts struct {
	IsUp             bool  `json:"is_up"`
	RemoteASN        int   `json:"remote_asn"`
	UptimeSec        int64 `json:"uptime_sec"`
	ReceivedPrefixes int64 `json:"received_prefixes"`
}

// ProbeResult is the outcome of a single reachability probe.
type ProbeResult struct {
	// Success reports whether the transport produced a probe result
	// at all; a false value means the probe itself errored.
	Success bool `json:"success"`
	// PacketLoss is the number of probe packets lost out of the
	// transport's sample set.
	PacketLoss int    `json:"packet_loss"`
	SourceAddr string `json:"source_addr"`
	DestAddr   string `json:"dest_addr"`
	Interface  string `json:"interface"`
}

// AdjacencyState classifies a routing peer session.
type AdjacencyState string

const (
	AdjacencyUp   AdjacencyState = "up"
	AdjacencyDown AdjacencyState = "down"
)

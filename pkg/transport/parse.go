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

package transport

import (
	"bufio"
	"net"
	"regexp"
	"strconv"
	"strings"

	"github.com/carverauto/wanprov/pkg/models"
)

// successRateRe matches the IOS ping summary line, e.g.
// "Success rate is 80 percent (4/5), round-trip min/avg/max = 1/2/4 ms".
var successRateRe = regexp.MustCompile(`Success rate is \d+ percent \((\d+)/(\d+)\)`)

// parsePingOutput extracts the probe outcome from IOS ping output. A
// missing summary line means the probe produced no success report at
// all, which the validator treats as failed.
func parsePingOutput(out string) *models.ProbeResult {
	m := successRateRe.FindStringSubmatch(out)
	if m == nil {
		return &models.ProbeResult{Success: false}
	}

	received, _ := strconv.Atoi(m[1])
	sent, _ := strconv.Atoi(m[2])

	return &models.ProbeResult{
		Success:    true,
		PacketLoss: sent - received,
	}
}

// parseBGPSummary extracts per-peer state from "show ip bgp summary"
// output. A peer whose State/PfxRcd column is numeric is established;
// any state word (Idle, Active, Connect...) means the session is down.
func parseBGPSummary(out string) (map[string]models.BGPPeerFacts, error) {
	peers := make(map[string]models.BGPPeerFacts)

	scanner := bufio.NewScanner(strings.NewReader(out))
	inTable := false

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if strings.HasPrefix(line, "Neighbor") {
			inTable = true
			continue
		}

		if !inTable || line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 10 {
			continue
		}

		peerAddr := net.ParseIP(fields[0])
		if peerAddr == nil {
			continue
		}

		remoteASN, err := strconv.Atoi(fields[2])
		if err != nil {
			continue
		}

		last := fields[len(fields)-1]
		prefixes, err := strconv.ParseInt(last, 10, 64)
		isUp := err == nil

		facts := models.BGPPeerFacts{
			IsUp:      isUp,
			RemoteASN: remoteASN,
		}

		if isUp {
			facts.ReceivedPrefixes = prefixes
			facts.UptimeSec = parseUptime(fields[len(fields)-2])
		}

		peers[peerAddr.String()] = facts
	}

	if !inTable {
		return nil, ErrNoBGPSummary
	}

	return peers, nil
}

// parseUptime converts the Up/Down column to seconds. Only the
// hh:mm:ss form is converted; longer forms ("1d02h", "2w3d") and
// "never" yield zero.
func parseUptime(s string) int64 {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0
	}

	h, err1 := strconv.ParseInt(parts[0], 10, 64)
	m, err2 := strconv.ParseInt(parts[1], 10, 64)
	sec, err3 := strconv.ParseInt(parts[2], 10, 64)

	if err1 != nil || err2 != nil || err3 != nil {
		return 0
	}

	return h*3600 + m*60 + sec
}

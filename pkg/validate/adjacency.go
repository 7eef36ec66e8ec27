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

package validate

import "github.com/carverauto/wanprov/pkg/models"

// ClassifyAdjacencies projects raw routing peer facts into up/down
// judgments. The transport-reported establishment state is
// authoritative; no independent verification is performed.
func ClassifyAdjacencies(peers map[string]models.BGPPeerFacts) map[string]models.AdjacencyState {
	states := make(map[string]models.AdjacencyState, len(peers))

	for addr, facts := range peers {
		if facts.IsUp {
			states[addr] = models.AdjacencyUp
		} else {
			states[addr] = models.AdjacencyDown
		}
	}

	return states
}

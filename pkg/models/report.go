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

import "sort"

// StageReport aggregates the outcome of one pipeline stage across the
// cohort that ran it.
type StageReport struct {
	Name string `json:"name"`
	// Failed maps device name to the error that excluded it from
	// the rest of the pipeline.
	Failed map[string]string `json:"failed,omitempty"`
	// Warnings maps device name to observational findings that do
	// not exclude the device (validation failures).
	Warnings  map[string][]string `json:"warnings,omitempty"`
	Succeeded []string            `json:"succeeded,omitempty"`
}

// FailedHosts returns the failed device names in stable order.
func (s *StageReport) FailedHosts() []string {
	hosts := make([]string, 0, len(s.Failed))
	for name := range s.Failed {
		hosts = append(hosts, name)
	}

	sort.Strings(hosts)

	return hosts
}

// RunReport is the result of one full pipeline run.
type RunReport struct {
	RunID  string        `json:"run_id"`
	Stages []StageReport `json:"stages"`
	// Aborted is set when an operator declined a confirmation gate;
	// AbortedAt names the gate.
	Aborted   bool   `json:"aborted"`
	AbortedAt string `json:"aborted_at,omitempty"`
}

// FailedHosts returns every device that failed any stage, in stable order.
func (r *RunReport) FailedHosts() []string {
	seen := make(map[string]struct{})

	for i := range r.Stages {
		for name := range r.Stages[i].Failed {
			seen[name] = struct{}{}
		}
	}

	hosts := make([]string, 0, len(seen))
	for name := range seen {
		hosts = append(hosts, name)
	}

	sort.Strings(hosts)

	return hosts
}

// ReconcileReport records the inventory mutations performed for one device.
type ReconcileReport struct {
	Device            string   `json:"device"`
	CreatedInterfaces []string `json:"created_interfaces,omitempty"`
	UpdatedInterfaces []string `json:"updated_interfaces,omitempty"`
	CreatedIPs        []string `json:"created_ips,omitempty"`
	// ConflictIPs lists addresses that already existed in the
	// source-of-truth and were left untouched for manual review.
	ConflictIPs []string `json:"conflict_ips,omitempty"`
}

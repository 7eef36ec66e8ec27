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

// Package models provides the shared data model for the provisioning pipeline.
package models

// LifecycleState is the catalog-level classification of a device.
type LifecycleState string

const (
	LifecycleProvisioning LifecycleState = "provisioning"
	LifecycleProduction   LifecycleState = "production"
)

// DeviceRecord is the per-run view of one router. The Scratch bag is
// owned exclusively by the pipeline runner for the duration of a run
// and is never shared across concurrent runs.
type DeviceRecord struct {
	Name           string         `json:"name"`
	ManagementAddr string         `json:"management_addr"`
	Lifecycle      LifecycleState `json:"lifecycle"`

	Scratch DeviceScratch `json:"-"`
}

// DeviceScratch carries state between pipeline stages for one device.
// Fields are populated in pipeline order and read-only afterwards.
type DeviceScratch struct {
	// InventoryID is the numeric identifier assigned by the
	// source-of-truth, resolved during the fetch-intent stage.
	InventoryID int

	// Intent is the declarative variable set fetched from the
	// source-of-truth config context. Immutable once fetched.
	Intent *ConfigIntent

	// Facts is the most recently observed device state. Always a
	// fresh snapshot, never merged with a prior one.
	Facts *ObservedFacts

	// Paths of the rendered configuration artifacts.
	InterfaceConfigPath string
	RoutingConfigPath   string

	// Version string reported by the device, captured at finalize.
	SoftwareVersion string
}

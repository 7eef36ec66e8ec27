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

package netbox

import "errors"

var (
	errUnexpectedStatusCode = errors.New("unexpected status code")

	// ErrNoConfigContext is returned when a device has no config
	// context data in the source-of-truth.
	ErrNoConfigContext = errors.New("device has no config context data")

	// ErrInterfaceNotFound is returned when an interface lookup by
	// (device, name) finds no record.
	ErrInterfaceNotFound = errors.New("interface not found in inventory")
)

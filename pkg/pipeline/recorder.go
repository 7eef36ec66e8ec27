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

package pipeline

import "fmt"

// Recorder collects observational findings while a stage runs for one
// device. It is not safe for concurrent use; each device invocation
// gets its own Recorder.
type Recorder struct {
	warnings []string
}

// Warnf records a finding that does not exclude the device from later
// stages.
func (r *Recorder) Warnf(format string, args ...interface{}) {
	r.warnings = append(r.warnings, fmt.Sprintf(format, args...))
}

// Warnings returns the recorded findings in order.
func (r *Recorder) Warnings() []string {
	return r.warnings
}

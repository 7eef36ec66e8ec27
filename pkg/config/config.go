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

// Package config loads and validates JSON configuration files.
package config

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// Validator is implemented by config structs that can check themselves.
type Validator interface {
	Validate() error
}

// Load reads and unmarshals a JSON config file into dst.
func Load(_ context.Context, path string, dst interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file '%s': %w", path, err)
	}

	err = json.Unmarshal(data, dst)
	if err != nil {
		return fmt.Errorf("failed to unmarshal JSON from '%s': %w", path, err)
	}

	return nil
}

// LoadAndValidate loads a configuration and validates it if it
// implements Validator.
func LoadAndValidate(ctx context.Context, path string, cfg interface{}) error {
	if err := Load(ctx, path, cfg); err != nil {
		return err
	}

	v, ok := cfg.(Validator)
	if !ok {
		return nil
	}

	return v.Validate()
}

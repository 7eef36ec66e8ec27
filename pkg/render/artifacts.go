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

package render

import (
	"fmt"
	"os"
	"path/filepath"
)

// ArtifactStore writes rendered configuration files to a working
// directory before they are pushed. These are intermediate build
// artifacts, one file per device per config domain.
type ArtifactStore struct {
	dir string
}

// NewArtifactStore creates the working directory if needed.
func NewArtifactStore(dir string) (*ArtifactStore, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating artifact dir %s: %w", dir, err)
	}

	return &ArtifactStore{dir: dir}, nil
}

// Write stores rendered config for one device and domain, returning
// the file path. Domain is a short tag such as "intf" or "bgp".
func (s *ArtifactStore) Write(device, domain, content string) (string, error) {
	path := filepath.Join(s.dir, fmt.Sprintf("%s_%s.txt", device, domain))

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return "", fmt.Errorf("writing artifact %s: %w", path, err)
	}

	return path, nil
}

// Read returns the stored artifact contents.
func (s *ArtifactStore) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading artifact %s: %w", path, err)
	}

	return string(data), nil
}

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

//go:generate mockgen -destination=mock_pipeline.go -package=pipeline github.com/carverauto/wanprov/pkg/pipeline Confirmer

package pipeline

import "context"

// Confirmer resolves confirmation gates. Declining aborts the
// remaining pipeline for all devices; completed stage effects are not
// reverted.
type Confirmer interface {
	Approve(ctx context.Context, gateName string) (bool, error)
}

// ConfirmerFunc adapts a function to the Confirmer interface.
type ConfirmerFunc func(ctx context.Context, gateName string) (bool, error)

func (f ConfirmerFunc) Approve(ctx context.Context, gateName string) (bool, error) {
	return f(ctx, gateName)
}

// AutoApprove is a Confirmer that approves every gate, for
// non-interactive runs and tests.
var AutoApprove = ConfirmerFunc(func(context.Context, string) (bool, error) {
	return true, nil
})

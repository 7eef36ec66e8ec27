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

// Package pipeline sequences stateful, gated stages over a device
// fleet with per-device failure isolation.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/carverauto/wanprov/pkg/logger"
	"github.com/carverauto/wanprov/pkg/models"
)

// StageFunc executes one stage for one device. Findings that should
// not exclude the device are reported through the Recorder.
type StageFunc func(ctx context.Context, device *models.DeviceRecord, rec *Recorder) error

// Stage is one unit of the pipeline, executed concurrently across the
// cohort.
type Stage struct {
	Name string
	Run  StageFunc

	// Observational marks validation stages: a returned error is
	// recorded as a warning and the device stays in the cohort.
	Observational bool
}

type stepKind int

const (
	stepStage stepKind = iota
	stepGate
	stepSettle
)

// Step is one element of a Plan: a stage, a confirmation gate, or a
// settle delay.
type Step struct {
	kind   stepKind
	stage  Stage
	gate   string
	settle time.Duration
}

// StageStep wraps a stage into a plan step.
func StageStep(s Stage) Step { return Step{kind: stepStage, stage: s} }

// GateStep inserts a confirmation gate before the following steps.
func GateStep(name string) Step { return Step{kind: stepGate, gate: name} }

// SettleStep inserts a fixed delay for network state to converge.
// This is a deliberate wait, not a retry loop.
func SettleStep(d time.Duration) Step { return Step{kind: stepSettle, settle: d} }

// Plan is the ordered pipeline.
type Plan []Step

// Runner drives a Plan over a device set. Devices that fail a stage
// are excluded from later stages but remain in the report. The Runner
// owns the device records for the duration of one run.
type Runner struct {
	concurrency int
	confirmer   Confirmer
	logger      logger.Logger
}

// NewRunner builds a Runner. Concurrency caps the per-stage worker
// pool; zero means one worker per device.
func NewRunner(concurrency int, confirmer Confirmer, log logger.Logger) *Runner {
	if confirmer == nil {
		confirmer = AutoApprove
	}

	return &Runner{
		concurrency: concurrency,
		confirmer:   confirmer,
		logger:      log.WithComponent("pipeline"),
	}
}

// Run executes the plan. The returned report always covers every step
// that ran; the error is non-nil only for run-level failures
// (cancelled context, confirmer failure), never for per-device stage
// errors.
func (r *Runner) Run(ctx context.Context, plan Plan, devices []*models.DeviceRecord) (*models.RunReport, error) {
	report := &models.RunReport{RunID: uuid.NewString()}

	cohort := make([]*models.DeviceRecord, len(devices))
	copy(cohort, devices)

	log := r.logger.With().Str("run_id", report.RunID).Logger()
	log.Info().Int("devices", len(cohort)).Msg("Pipeline run starting")

	for _, step := range plan {
		switch step.kind {
		case stepGate:
			approved, err := r.confirmer.Approve(ctx, step.gate)
			if err != nil {
				return report, fmt.Errorf("confirmation gate %q: %w", step.gate, err)
			}

			if !approved {
				report.Aborted = true
				report.AbortedAt = step.gate

				log.Warn().Str("gate", step.gate).Msg("Gate declined, aborting remaining stages")

				return report, nil
			}

			log.Info().Str("gate", step.gate).Msg("Gate approved")

		case stepSettle:
			log.Info().Dur("delay", step.settle).Msg("Waiting for network state to settle")

			timer := time.NewTimer(step.settle)

			select {
			case <-ctx.Done():
				timer.Stop()
				return report, ctx.Err()
			case <-timer.C:
			}

		case stepStage:
			stageReport := r.runStage(ctx, step.stage, cohort)
			report.Stages = append(report.Stages, stageReport)

			if ctx.Err() != nil {
				return report, ctx.Err()
			}

			log.Info().
				Str("stage", step.stage.Name).
				Strs("failed_hosts", stageReport.FailedHosts()).
				Int("cohort", len(stageReport.Succeeded)).
				Msg("Stage complete")

			cohort = survivors(cohort, stageReport.Failed)
		}
	}

	log.Info().Int("survivors", len(cohort)).Msg("Pipeline run complete")

	return report, nil
}

type stageOutcome struct {
	err      error
	warnings []string
}

// runStage executes one stage concurrently across the cohort on a
// bounded worker pool.
func (r *Runner) runStage(ctx context.Context, stage Stage, cohort []*models.DeviceRecord) models.StageReport {
	limit := r.concurrency
	if limit <= 0 || limit > len(cohort) {
		limit = len(cohort)
	}

	outcomes := make([]stageOutcome, len(cohort))

	var group errgroup.Group

	group.SetLimit(limit)

	for i, device := range cohort {
		group.Go(func() error {
			outcomes[i] = r.runDevice(ctx, stage, device)
			return nil
		})
	}

	// Workers never return errors; failures land in outcomes.
	_ = group.Wait()

	report := models.StageReport{
		Name:     stage.Name,
		Failed:   make(map[string]string),
		Warnings: make(map[string][]string),
	}

	for i, device := range cohort {
		outcome := outcomes[i]

		if len(outcome.warnings) > 0 {
			report.Warnings[device.Name] = outcome.warnings
		}

		if outcome.err != nil {
			report.Failed[device.Name] = outcome.err.Error()
			continue
		}

		report.Succeeded = append(report.Succeeded, device.Name)
	}

	return report
}

// runDevice executes the stage for one device, containing panics and
// folding observational errors into warnings.
func (r *Runner) runDevice(ctx context.Context, stage Stage, device *models.DeviceRecord) (outcome stageOutcome) {
	rec := &Recorder{}

	defer func() {
		outcome.warnings = rec.Warnings()

		if p := recover(); p != nil {
			outcome.err = fmt.Errorf("stage %s panicked for %s: %v", stage.Name, device.Name, p)
		}

		if outcome.err != nil && stage.Observational {
			outcome.warnings = append(outcome.warnings, outcome.err.Error())
			outcome.err = nil
		}

		if outcome.err != nil {
			r.logger.Error().
				Str("stage", stage.Name).
				Str("device", device.Name).
				Str("error", outcome.err.Error()).
				Msg("Stage failed for device")
		}
	}()

	outcome.err = stage.Run(ctx, device, rec)

	return outcome
}

// survivors filters failed devices out of the cohort, preserving order.
func survivors(cohort []*models.DeviceRecord, failed map[string]string) []*models.DeviceRecord {
	if len(failed) == 0 {
		return cohort
	}

	next := make([]*models.DeviceRecord, 0, len(cohort))

	for _, device := range cohort {
		if _, ok := failed[device.Name]; !ok {
			next = append(next, device)
		}
	}

	return next
}

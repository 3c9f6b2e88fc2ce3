// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

// Package remediate drives the one-shot offload remediation flow:
// disable large-send offload everywhere, verify connectivity, restart
// links if it was lost, and escalate to a host reboot as last resort.
package remediate

import (
	"context"
	"fmt"
	"time"

	"github.com/go-logr/logr"

	"github.com/ironcore-dev/nicfix/internal/adapter"
	"github.com/ironcore-dev/nicfix/internal/power"
)

// Discoverer lists the adapters eligible for remediation.
type Discoverer interface {
	Discover() ([]adapter.Adapter, error)
}

// Mutator disables one offload feature on one adapter and reports
// whether a change was actually applied.
type Mutator interface {
	DisableIfEnabled(adapterName, feature string) (bool, error)
}

// Restarter bounces adapter links and reports how many were restarted.
type Restarter interface {
	RestartAll(ctx context.Context, adapters []adapter.Adapter) int
}

// Prober verifies connectivity against an ordered target list.
type Prober interface {
	Any(ctx context.Context, targets []string) bool
}

// Result captures what a remediation run did.
type Result struct {
	Outcome              Outcome
	Adapters             int
	ChangesApplied       int
	LinksRestarted       int
	ProbeRounds          int
	ConnectivityVerified bool
}

// Runner executes one remediation pass. It is strictly sequential;
// every step acts on the result of the previous one.
type Runner struct {
	log       logr.Logger
	config    Config
	discovery Discoverer
	mutator   Mutator
	restarter Restarter
	prober    Prober
	rebooter  power.Rebooter

	sleep func(ctx context.Context, d time.Duration) error
}

// NewRunner wires a Runner from its collaborators.
func NewRunner(
	log logr.Logger,
	config Config,
	discovery Discoverer,
	mutator Mutator,
	restarter Restarter,
	prober Prober,
	rebooter power.Rebooter,
) *Runner {
	return &Runner{
		log:       log,
		config:    config,
		discovery: discovery,
		mutator:   mutator,
		restarter: restarter,
		prober:    prober,
		rebooter:  rebooter,
		sleep:     sleepContext,
	}
}

// Run executes the remediation pass and blocks until a terminal
// outcome is reached. An error is returned only when the run could not
// complete, not for unhealthy outcomes.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	result := Result{}

	adapters, err := r.discovery.Discover()
	if err != nil {
		return result, fmt.Errorf("could not discover adapters: %w", err)
	}
	result.Adapters = len(adapters)
	if len(adapters) == 0 {
		r.log.Info("No eligible adapters found")
		result.Outcome = OutcomeNoAdapters
		return result, nil
	}
	r.log.Info("Discovered adapters", "count", len(adapters))

	result.ChangesApplied = r.disableOffloads(adapters)
	if result.ChangesApplied == 0 {
		r.log.Info("All adapters already healthy, nothing to do")
		result.Outcome = OutcomeHealthyNoChange
		return result, nil
	}

	r.log.Info("Waiting for offload changes to settle", "wait", r.config.InitialWait)
	if err := r.sleep(ctx, r.config.InitialWait); err != nil {
		return result, err
	}

	result.ProbeRounds++
	if r.prober.Any(ctx, r.config.PingTargets) {
		result.ConnectivityVerified = true
		result.Outcome = OutcomeRemediated
		return result, nil
	}

	r.log.Info("Connectivity lost after offload changes, restarting adapter links")
	result.LinksRestarted = r.restarter.RestartAll(ctx, adapters)

	r.log.Info("Waiting for links to reinitialize", "wait", r.config.ReinitializeWait)
	if err := r.sleep(ctx, r.config.ReinitializeWait); err != nil {
		return result, err
	}

	result.ProbeRounds++
	if r.prober.Any(ctx, r.config.PingTargets) {
		result.ConnectivityVerified = true
		result.Outcome = OutcomeRecoveredAfterRestart
		return result, nil
	}

	return r.escalate(ctx, result)
}

// disableOffloads sweeps both segmentation engines over every adapter.
// A failure on one feature is logged and does not stop the sweep.
func (r *Runner) disableOffloads(adapters []adapter.Adapter) int {
	changes := 0
	for _, a := range adapters {
		for _, feature := range adapter.OffloadFeatures {
			changed, err := r.mutator.DisableIfEnabled(a.Name, feature)
			if err != nil {
				r.log.Error(err, "Could not change offload feature", "interface", a.Name, "feature", feature)
				continue
			}
			if changed {
				changes++
			}
		}
	}
	return changes
}

func (r *Runner) escalate(ctx context.Context, result Result) (Result, error) {
	if !r.config.ForceReboot {
		r.log.Info("Connectivity still lost, host reboot recommended. Re-run with --force-reboot to restart the host")
		result.Outcome = OutcomeManualInterventionNeeded
		return result, nil
	}

	r.log.Info("Connectivity still lost, rebooting host", "transport", r.rebooter.Name(), "grace", r.config.RebootGrace)
	if err := r.sleep(ctx, r.config.RebootGrace); err != nil {
		return result, err
	}
	if err := r.rebooter.Reboot(ctx); err != nil {
		r.log.Error(err, "Could not reboot host")
		result.Outcome = OutcomeManualInterventionNeeded
		return result, nil
	}
	result.Outcome = OutcomeRebootInitiated
	return result, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

// Package metrics renders a remediation run as a node_exporter
// textfile-collector report.
package metrics

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"

	"github.com/ironcore-dev/nicfix/internal/remediate"
)

// knownOutcomes pins the label space of the outcome gauge so a scrape
// always sees every series, with exactly one set to 1.
var knownOutcomes = []remediate.Outcome{
	remediate.OutcomeHealthyNoChange,
	remediate.OutcomeRemediated,
	remediate.OutcomeRecoveredAfterRestart,
	remediate.OutcomeManualInterventionNeeded,
	remediate.OutcomeRebootInitiated,
	remediate.OutcomeNoAdapters,
}

// WriteReport renders the run result in the Prometheus text format and
// atomically replaces the file at path.
func WriteReport(log logr.Logger, path string, result remediate.Result, duration time.Duration) error {
	families, err := gather(result, duration)
	if err != nil {
		return err
	}
	return writeFile(log, path, families)
}

func gather(result remediate.Result, duration time.Duration) ([]*dto.MetricFamily, error) {
	registry := prometheus.NewRegistry()

	outcome := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "nicfix_run_outcome",
		Help: "Outcome of the last remediation run, one series per possible outcome.",
	}, []string{"outcome"})
	adapters := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "nicfix_adapters_discovered",
		Help: "Number of eligible adapters discovered by the last run.",
	})
	changes := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "nicfix_offload_changes",
		Help: "Number of offload features the last run disabled.",
	})
	restarts := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "nicfix_links_restarted",
		Help: "Number of adapter links the last run restarted.",
	})
	probeRounds := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "nicfix_probe_rounds",
		Help: "Number of connectivity probe rounds the last run performed.",
	})
	connectivity := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "nicfix_connectivity_verified",
		Help: "Whether the last run verified connectivity after its changes.",
	})
	runDuration := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "nicfix_run_duration_seconds",
		Help: "Wall clock duration of the last run.",
	})
	completed := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "nicfix_run_completed_timestamp_seconds",
		Help: "Unix time the last run finished.",
	})
	registry.MustRegister(outcome, adapters, changes, restarts, probeRounds, connectivity, runDuration, completed)

	for _, known := range knownOutcomes {
		value := 0.0
		if known == result.Outcome {
			value = 1.0
		}
		outcome.WithLabelValues(string(known)).Set(value)
	}
	adapters.Set(float64(result.Adapters))
	changes.Set(float64(result.ChangesApplied))
	restarts.Set(float64(result.LinksRestarted))
	probeRounds.Set(float64(result.ProbeRounds))
	if result.ConnectivityVerified {
		connectivity.Set(1)
	}
	runDuration.Set(duration.Seconds())
	completed.SetToCurrentTime()

	return registry.Gather()
}

// writeFile writes the families to a temp file next to path and
// renames it into place so a scrape never sees a partial report.
func writeFile(log logr.Logger, path string, families []*dto.MetricFamily) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("could not create report file: %w", err)
	}
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
	}()

	encoder := expfmt.NewEncoder(tmp, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, family := range families {
		if err := encoder.Encode(family); err != nil {
			return fmt.Errorf("could not encode metrics: %w", err)
		}
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not write report file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("could not replace report file: %w", err)
	}
	log.V(1).Info("Wrote metrics report", "path", path)
	return nil
}

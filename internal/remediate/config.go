// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package remediate

import "time"

const (
	// DefaultInitialWait is the settle time between offload changes
	// and the first connectivity probe.
	DefaultInitialWait = 45 * time.Second
	// DefaultReinitializeWait is the settle time between link restarts
	// and the second connectivity probe.
	DefaultReinitializeWait = 30 * time.Second
	// DefaultProbeTimeout bounds each individual echo probe.
	DefaultProbeTimeout = 3 * time.Second
	// DefaultRebootGrace is the warning window before a forced reboot.
	DefaultRebootGrace = 10 * time.Second
)

// DefaultPingTargets are the well-known resolvers probed when no
// explicit targets are configured.
var DefaultPingTargets = []string{"8.8.8.8", "1.1.1.1"}

// Config are the orchestration knobs of a remediation run.
type Config struct {
	// PingTargets are probed in order whenever connectivity has to be
	// verified. The first answer wins.
	PingTargets []string
	// InitialWait is the settle time between applying offload changes
	// and the first connectivity probe.
	InitialWait time.Duration
	// ReinitializeWait is the settle time between restarting the
	// adapter links and the second connectivity probe.
	ReinitializeWait time.Duration
	// RebootGrace is the warning window between deciding to reboot and
	// requesting it.
	RebootGrace time.Duration
	// ForceReboot requests a host reboot when connectivity stays lost
	// after the link restarts. Without it the run only recommends one.
	ForceReboot bool
}

// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package app

// Process exit codes. They are part of the CLI interface and must not
// be renumbered.
const (
	// ExitHealthy covers every outcome that left the host connected.
	ExitHealthy = 0
	// ExitNoAdapters means no eligible adapter was found.
	ExitNoAdapters = 1
	// ExitUsage means the invocation itself was invalid.
	ExitUsage = 2
	// ExitIncomplete means the run could not complete, for lack of
	// privileges, kernel support or adapter enumeration.
	ExitIncomplete = 3
	// ExitManualIntervention means connectivity stayed lost and a
	// reboot was recommended but not performed.
	ExitManualIntervention = 4
	// ExitRebootInitiated means connectivity stayed lost and a host
	// reboot was requested.
	ExitRebootInitiated = 5
)

// ExitError carries the process exit code for a run that finished in a
// state the caller must be able to distinguish.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }

func (e *ExitError) Unwrap() error { return e.Err }

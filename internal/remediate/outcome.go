// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package remediate

// Outcome classifies how a remediation run ended. Every outcome maps
// onto a stable exit code so operators can script against the result.
type Outcome string

const (
	// OutcomeHealthyNoChange means every adapter already had its
	// offload features disabled and nothing was touched.
	OutcomeHealthyNoChange Outcome = "HealthyNoChange"
	// OutcomeRemediated means offload features were changed and
	// connectivity was verified afterwards.
	OutcomeRemediated Outcome = "Remediated"
	// OutcomeRecoveredAfterRestart means connectivity came back only
	// after the adapter links were restarted.
	OutcomeRecoveredAfterRestart Outcome = "RecoveredAfterRestart"
	// OutcomeManualInterventionNeeded means connectivity stayed lost
	// and a host reboot was recommended but not performed.
	OutcomeManualInterventionNeeded Outcome = "ManualInterventionNeeded"
	// OutcomeRebootInitiated means connectivity stayed lost and a host
	// reboot was requested.
	OutcomeRebootInitiated Outcome = "RebootInitiated"
	// OutcomeNoAdapters means no eligible adapter was found.
	OutcomeNoAdapters Outcome = "NoAdapters"
)

// ExitCode returns the stable process exit code of the outcome.
func (o Outcome) ExitCode() int {
	switch o {
	case OutcomeHealthyNoChange, OutcomeRemediated, OutcomeRecoveredAfterRestart:
		return 0
	case OutcomeNoAdapters:
		return 1
	case OutcomeManualInterventionNeeded:
		return 4
	case OutcomeRebootInitiated:
		return 5
	}
	return 2
}

// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/ironcore-dev/nicfix/internal/adapter"
	"github.com/ironcore-dev/nicfix/internal/guard"
	"github.com/ironcore-dev/nicfix/internal/hostinfo"
	"github.com/ironcore-dev/nicfix/internal/metrics"
	"github.com/ironcore-dev/nicfix/internal/power"
	"github.com/ironcore-dev/nicfix/internal/probe"
	"github.com/ironcore-dev/nicfix/internal/remediate"
)

var (
	logLevel   string
	configFile string

	pingTargets      []string
	initialWait      time.Duration
	reinitializeWait time.Duration
	probeTimeout     time.Duration
	rebootGrace      time.Duration
	forceReboot      bool
	dryRun           bool
	confirm          bool
	metricsFile      string

	bmcEndpoint     string
	bmcUsername     string
	bmcPassword     string
	bmcPasswordFile string
	bmcSystemURI    string
	bmcInsecure     bool
)

func NewRunCommand() *cobra.Command {
	run := &cobra.Command{
		Use:   "run",
		Short: "Disable send offload on every adapter and verify connectivity",
		Long: `Disables the IPv4 and IPv6 TCP segmentation offload on every physical
adapter with an active link. When nothing had to change the host is
considered healthy and the command returns immediately. Otherwise it
verifies connectivity with ICMP probes and escalates through adapter
link restarts up to a host reboot.

Exit codes:
  0  healthy, remediated, or recovered after link restarts
  1  no eligible adapters found
  2  usage error
  3  run could not complete (privileges, kernel, enumeration)
  4  connectivity lost, manual intervention needed
  5  connectivity lost, host reboot initiated`,
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfiguration(cmd, configFile)
		},
		RunE: runRemediation,
	}

	run.Flags().StringSliceVar(&pingTargets, "ping-targets", remediate.DefaultPingTargets,
		"ordered addresses probed to verify connectivity, first answer wins")
	run.Flags().DurationVar(&initialWait, "initial-wait", remediate.DefaultInitialWait,
		"settle time between offload changes and the first probe")
	run.Flags().DurationVar(&reinitializeWait, "reinitialize-wait", remediate.DefaultReinitializeWait,
		"settle time between link restarts and the second probe")
	run.Flags().DurationVar(&probeTimeout, "probe-timeout", remediate.DefaultProbeTimeout,
		"timeout of each individual echo probe")
	run.Flags().DurationVar(&rebootGrace, "reboot-grace", remediate.DefaultRebootGrace,
		"warning window before a forced reboot")
	run.Flags().BoolVar(&forceReboot, "force-reboot", false,
		"reboot the host when connectivity stays lost after the link restarts")
	run.Flags().BoolVar(&dryRun, "dry-run", false,
		"show what would be changed without touching the adapters")
	run.Flags().BoolVar(&confirm, "confirm", false,
		"ask before every mutating action, a declined action is skipped")
	run.Flags().StringVar(&metricsFile, "metrics-file", "",
		"write a textfile-collector report of the run to this path")
	run.Flags().StringVar(&bmcEndpoint, "bmc-endpoint", "",
		"BMC URL for the out-of-band reboot, the local transports are the default")
	run.Flags().StringVar(&bmcUsername, "bmc-username", "", "BMC user name")
	run.Flags().StringVar(&bmcPassword, "bmc-password", "", "BMC password")
	run.Flags().StringVar(&bmcPasswordFile, "bmc-password-file", "",
		"file containing the BMC password, takes precedence over --bmc-password")
	run.Flags().StringVar(&bmcSystemURI, "bmc-system-uri", "",
		"Redfish URI of the managed system when the BMC exposes more than one")
	run.Flags().BoolVar(&bmcInsecure, "bmc-insecure", false, "skip BMC certificate verification")
	run.Flags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	run.Flags().StringVar(&configFile, "config", "", "YAML file with defaults for unset flags")
	return run
}

func runRemediation(cmd *cobra.Command, _ []string) error {
	log, err := setupLogger(logLevel)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	if err := guard.Check(log); err != nil {
		return &ExitError{Code: ExitIncomplete, Err: err}
	}

	identity := hostinfo.Collect(log)
	log.Info("Starting remediation",
		"machineID", identity.MachineID,
		"manufacturer", identity.Manufacturer,
		"product", identity.Product,
		"dryRun", dryRun,
	)

	handle, err := adapter.NewFeatureHandle()
	if err != nil {
		return &ExitError{Code: ExitIncomplete, Err: err}
	}
	defer handle.Close()

	rebooter, err := newRebooter(log)
	if err != nil {
		return err
	}

	var confirmFn adapter.ConfirmFunc
	if confirm {
		confirmFn = confirmOnTerminal(cmd)
	}

	runner := remediate.NewRunner(
		log,
		remediate.Config{
			PingTargets:      pingTargets,
			InitialWait:      initialWait,
			ReinitializeWait: reinitializeWait,
			RebootGrace:      rebootGrace,
			ForceReboot:      forceReboot,
		},
		adapter.NewDiscovery(log),
		adapter.NewOffloadMutator(log, handle, dryRun, confirmFn),
		adapter.NewRestarter(log, adapter.NewLinkOps(), dryRun, confirmFn),
		probe.New(log, probeTimeout),
		rebooter,
	)

	started := time.Now()
	result, runErr := runner.Run(ctx)
	if metricsFile != "" {
		if err := metrics.WriteReport(log, metricsFile, result, time.Since(started)); err != nil {
			log.Error(err, "Could not write metrics report")
		}
	}
	if runErr != nil {
		return &ExitError{Code: ExitIncomplete, Err: runErr}
	}

	log.Info("Remediation finished", "outcome", result.Outcome, "exitCode", result.Outcome.ExitCode())
	if code := result.Outcome.ExitCode(); code != ExitHealthy {
		return &ExitError{Code: code, Err: fmt.Errorf("remediation outcome: %s", result.Outcome)}
	}
	return nil
}

// newRebooter prefers the BMC when an endpoint is configured, so the
// escalation still works when the host itself cannot act on a local
// reboot request.
func newRebooter(log logr.Logger) (power.Rebooter, error) {
	if bmcEndpoint == "" {
		return power.NewLocalRebooter(log), nil
	}

	password := bmcPassword
	if bmcPasswordFile != "" {
		content, err := os.ReadFile(bmcPasswordFile)
		if err != nil {
			return nil, fmt.Errorf("could not read BMC password file: %w", err)
		}
		password = strings.TrimSpace(string(content))
	}

	return power.NewRedfishRebooter(log, power.RedfishOptions{
		Endpoint:  bmcEndpoint,
		Username:  bmcUsername,
		Password:  password,
		SystemURI: bmcSystemURI,
		Insecure:  bmcInsecure,
	}), nil
}

// confirmOnTerminal asks on stderr and reads a y/N answer from stdin.
func confirmOnTerminal(cmd *cobra.Command) adapter.ConfirmFunc {
	reader := bufio.NewReader(cmd.InOrStdin())
	return func(action string) bool {
		fmt.Fprintf(cmd.ErrOrStderr(), "About to %s. Continue? [y/N]: ", action)
		answer, err := reader.ReadString('\n')
		if err != nil {
			return false
		}
		answer = strings.ToLower(strings.TrimSpace(answer))
		return answer == "y" || answer == "yes"
	}
}

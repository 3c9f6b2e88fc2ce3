// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/cobra"
)

type testFlags struct {
	targets      []string
	probeTimeout time.Duration
	forceReboot  bool
}

func newTestCommand() (*cobra.Command, *testFlags) {
	flags := &testFlags{}
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().StringSliceVar(&flags.targets, "ping-targets", []string{"8.8.8.8", "1.1.1.1"}, "")
	cmd.Flags().DurationVar(&flags.probeTimeout, "probe-timeout", 3*time.Second, "")
	cmd.Flags().BoolVar(&flags.forceReboot, "force-reboot", false, "")
	return cmd, flags
}

func writeConfigFile(content string) string {
	path := filepath.Join(GinkgoT().TempDir(), "config.yaml")
	Expect(os.WriteFile(path, []byte(content), 0o600)).To(Succeed())
	return path
}

var _ = Describe("Configuration", func() {
	It("keeps the flag defaults when nothing else is set", func() {
		cmd, flags := newTestCommand()

		Expect(initConfiguration(cmd, "")).To(Succeed())

		Expect(flags.targets).To(Equal([]string{"8.8.8.8", "1.1.1.1"}))
		Expect(flags.probeTimeout).To(Equal(3 * time.Second))
		Expect(flags.forceReboot).To(BeFalse())
	})

	It("applies config file values to unset flags", func() {
		cmd, flags := newTestCommand()
		path := writeConfigFile("ping_targets:\n  - 10.0.0.1\n  - 10.0.0.2\nprobe_timeout: 5s\nforce_reboot: true\n")

		Expect(initConfiguration(cmd, path)).To(Succeed())

		Expect(flags.targets).To(Equal([]string{"10.0.0.1", "10.0.0.2"}))
		Expect(flags.probeTimeout).To(Equal(5 * time.Second))
		Expect(flags.forceReboot).To(BeTrue())
	})

	It("lets the environment override the config file", func() {
		cmd, flags := newTestCommand()
		path := writeConfigFile("probe_timeout: 5s\n")
		Expect(os.Setenv("NICFIX_PROBE_TIMEOUT", "7s")).To(Succeed())
		DeferCleanup(os.Unsetenv, "NICFIX_PROBE_TIMEOUT")

		Expect(initConfiguration(cmd, path)).To(Succeed())

		Expect(flags.probeTimeout).To(Equal(7 * time.Second))
	})

	It("keeps a flag set on the command line", func() {
		cmd, flags := newTestCommand()
		path := writeConfigFile("probe_timeout: 5s\n")
		Expect(cmd.Flags().Set("probe-timeout", "9s")).To(Succeed())

		Expect(initConfiguration(cmd, path)).To(Succeed())

		Expect(flags.probeTimeout).To(Equal(9 * time.Second))
	})

	It("fails on an unreadable config file", func() {
		cmd, _ := newTestCommand()

		err := initConfiguration(cmd, filepath.Join(GinkgoT().TempDir(), "missing.yaml"))

		Expect(err).To(MatchError(ContainSubstring("could not read config file")))
	})

	It("rejects a config value the flag cannot parse", func() {
		cmd, _ := newTestCommand()
		path := writeConfigFile("probe_timeout: soon\n")

		err := initConfiguration(cmd, path)

		Expect(err).To(MatchError(ContainSubstring("invalid value for probe-timeout")))
	})
})

// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/cobra"

	"github.com/ironcore-dev/nicfix/internal/power"
)

var _ = Describe("setupLogger", func() {
	It("builds a logger for a known level", func() {
		_, err := setupLogger("debug")
		Expect(err).NotTo(HaveOccurred())
	})

	It("rejects an unknown level", func() {
		_, err := setupLogger("chatty")
		Expect(err).To(MatchError(ContainSubstring("invalid log level")))
	})
})

var _ = Describe("confirmOnTerminal", func() {
	var (
		cmd    *cobra.Command
		prompt *bytes.Buffer
	)

	ask := func(input, action string) bool {
		cmd = &cobra.Command{}
		prompt = &bytes.Buffer{}
		cmd.SetIn(strings.NewReader(input))
		cmd.SetErr(prompt)
		return confirmOnTerminal(cmd)(action)
	}

	It("accepts y", func() {
		Expect(ask("y\n", "disable tx-tcp-segmentation on eth0")).To(BeTrue())
		Expect(prompt.String()).To(ContainSubstring("disable tx-tcp-segmentation on eth0"))
	})

	It("accepts yes in any case", func() {
		Expect(ask("YES\n", "restart link eth0")).To(BeTrue())
	})

	It("declines on n", func() {
		Expect(ask("n\n", "restart link eth0")).To(BeFalse())
	})

	It("declines on an empty answer", func() {
		Expect(ask("\n", "restart link eth0")).To(BeFalse())
	})

	It("declines when stdin is closed", func() {
		Expect(ask("", "restart link eth0")).To(BeFalse())
	})
})

var _ = Describe("newRebooter", func() {
	BeforeEach(func() {
		savedEndpoint, savedPassword, savedPasswordFile := bmcEndpoint, bmcPassword, bmcPasswordFile
		DeferCleanup(func() {
			bmcEndpoint, bmcPassword, bmcPasswordFile = savedEndpoint, savedPassword, savedPasswordFile
		})
		bmcEndpoint, bmcPassword, bmcPasswordFile = "", "", ""
	})

	It("acts locally when no BMC endpoint is configured", func() {
		r, err := newRebooter(GinkgoLogr)
		Expect(err).NotTo(HaveOccurred())
		Expect(r).To(BeAssignableToTypeOf(&power.LocalRebooter{}))
	})

	It("acts through the BMC when an endpoint is configured", func() {
		bmcEndpoint = "https://10.0.0.1"
		r, err := newRebooter(GinkgoLogr)
		Expect(err).NotTo(HaveOccurred())
		Expect(r.Name()).To(Equal("redfish"))
	})

	It("reads the BMC password from a file", func() {
		path := filepath.Join(GinkgoT().TempDir(), "password")
		Expect(os.WriteFile(path, []byte("secret\n"), 0o600)).To(Succeed())
		bmcEndpoint = "https://10.0.0.1"
		bmcPasswordFile = path

		_, err := newRebooter(GinkgoLogr)
		Expect(err).NotTo(HaveOccurred())
	})

	It("fails on an unreadable password file", func() {
		bmcEndpoint = "https://10.0.0.1"
		bmcPasswordFile = filepath.Join(GinkgoT().TempDir(), "missing")

		_, err := newRebooter(GinkgoLogr)
		Expect(err).To(MatchError(ContainSubstring("could not read BMC password file")))
	})
})

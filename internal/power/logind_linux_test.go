// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package power

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("LocalRebooter", func() {
	var (
		r     *LocalRebooter
		calls []string
	)

	BeforeEach(func() {
		calls = nil
		r = NewLocalRebooter(GinkgoLogr)
	})

	It("prefers logind", func() {
		r.logindReboot = func() error { calls = append(calls, "logind"); return nil }
		r.syscallReboot = func() error { calls = append(calls, "syscall"); return nil }
		Expect(r.Reboot(context.Background())).To(Succeed())
		Expect(calls).To(Equal([]string{"logind"}))
	})

	It("falls back to the kernel when logind is unavailable", func() {
		r.logindReboot = func() error { return errors.New("dbus: connection refused") }
		r.syscallReboot = func() error { calls = append(calls, "syscall"); return nil }
		Expect(r.Reboot(context.Background())).To(Succeed())
		Expect(calls).To(Equal([]string{"syscall"}))
	})

	It("fails when no transport works", func() {
		r.logindReboot = func() error { return errors.New("dbus: connection refused") }
		r.syscallReboot = func() error { return errors.New("operation not permitted") }
		Expect(r.Reboot(context.Background())).To(HaveOccurred())
	})
})

// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package guard

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("checkKernelRelease", func() {
	It("accepts a current distribution kernel", func() {
		Expect(checkKernelRelease("5.15.0-91-generic")).To(Succeed())
	})

	It("accepts a kernel release without a flavor suffix", func() {
		Expect(checkKernelRelease("6.8.4")).To(Succeed())
	})

	It("accepts the exact minimum", func() {
		Expect(checkKernelRelease("3.10.0-1160.el7.x86_64")).To(Succeed())
	})

	It("accepts a two-field release", func() {
		Expect(checkKernelRelease("4.4")).To(Succeed())
	})

	It("rejects a kernel older than the minimum", func() {
		err := checkKernelRelease("2.6.32-754.el6.x86_64")
		Expect(err).To(MatchError(ErrKernelTooOld))
	})

	It("rejects a same-major kernel below the minimum minor", func() {
		err := checkKernelRelease("3.2.0-4-amd64")
		Expect(err).To(MatchError(ErrKernelTooOld))
	})

	It("errors on garbage input", func() {
		_, _, err := parseKernelRelease("not-a-kernel")
		Expect(err).To(HaveOccurred())
		Expect(checkKernelRelease("not-a-kernel")).NotTo(Succeed())
	})

	It("errors on an empty release", func() {
		Expect(checkKernelRelease("")).NotTo(Succeed())
	})
})

var _ = Describe("parseKernelRelease", func() {
	It("splits major and minor", func() {
		major, minor, err := parseKernelRelease("5.15.0-91-generic")
		Expect(err).NotTo(HaveOccurred())
		Expect(major).To(Equal(5))
		Expect(minor).To(Equal(15))
	})

	It("strips non-numeric trailers from the minor field", func() {
		major, minor, err := parseKernelRelease("4.19-rt")
		Expect(err).NotTo(HaveOccurred())
		Expect(major).To(Equal(4))
		Expect(minor).To(Equal(19))
	})
})

// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"bytes"
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gopkg.in/yaml.v3"

	"github.com/ironcore-dev/nicfix/internal/adapter"
)

var _ = Describe("Show", func() {
	reports := []adapter.Report{
		{
			Adapter: adapter.Adapter{
				Name:       "eth0",
				MACAddress: "aa:bb:cc:dd:ee:01",
				LinkState:  adapter.LinkStateUp,
			},
			Driver: adapter.DriverInfo{Name: "igb", Version: "5.6"},
			Offload: map[string]adapter.FeatureState{
				adapter.FeatureTxTCPSegmentation:  adapter.FeatureOff,
				adapter.FeatureTxTCP6Segmentation: adapter.FeatureOn,
			},
		},
		{
			Adapter: adapter.Adapter{
				Name:       "eth1",
				MACAddress: "aa:bb:cc:dd:ee:02",
				LinkState:  adapter.LinkStateDown,
			},
			Offload: map[string]adapter.FeatureState{
				adapter.FeatureTxTCPSegmentation:  adapter.FeatureUnsupported,
				adapter.FeatureTxTCP6Segmentation: adapter.FeatureUnsupported,
			},
		},
	}

	It("renders a table with one row per adapter", func() {
		var out bytes.Buffer

		Expect(renderReports(&out, "table", reports)).To(Succeed())

		lines := bytes.Split(bytes.TrimSpace(out.Bytes()), []byte("\n"))
		Expect(lines).To(HaveLen(3))
		Expect(string(lines[0])).To(ContainSubstring("NAME"))
		Expect(string(lines[1])).To(ContainSubstring("eth0"))
		Expect(string(lines[1])).To(ContainSubstring("igb"))
		Expect(string(lines[1])).To(ContainSubstring("off"))
		Expect(string(lines[2])).To(ContainSubstring("eth1"))
		Expect(string(lines[2])).To(ContainSubstring("unsupported"))
	})

	It("renders JSON that round-trips", func() {
		var out bytes.Buffer

		Expect(renderReports(&out, "json", reports)).To(Succeed())

		var decoded []adapter.Report
		Expect(json.Unmarshal(out.Bytes(), &decoded)).To(Succeed())
		Expect(decoded).To(Equal(reports))
	})

	It("renders YAML that round-trips", func() {
		var out bytes.Buffer

		Expect(renderReports(&out, "yaml", reports)).To(Succeed())

		var decoded []adapter.Report
		Expect(yaml.Unmarshal(out.Bytes(), &decoded)).To(Succeed())
		Expect(decoded).To(Equal(reports))
	})

	It("refuses an unknown output format", func() {
		var out bytes.Buffer

		err := renderReports(&out, "xml", reports)

		Expect(err).To(MatchError(ContainSubstring("unknown output format")))
	})
})

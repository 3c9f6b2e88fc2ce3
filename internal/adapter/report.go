// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package adapter

import "github.com/go-logr/logr"

// FeatureState is the reported state of one offload feature.
type FeatureState string

const (
	FeatureOn          FeatureState = "on"
	FeatureOff         FeatureState = "off"
	FeatureUnsupported FeatureState = "unsupported"
)

// Report is the inspection view of one adapter.
type Report struct {
	Adapter Adapter                 `json:"adapter" yaml:"adapter"`
	Driver  DriverInfo              `json:"driver" yaml:"driver"`
	Offload map[string]FeatureState `json:"offload" yaml:"offload"`
}

// BuildReports merges discovered adapters with the driver and feature
// state read through the handle. Read errors degrade the report
// instead of failing it.
func BuildReports(log logr.Logger, adapters []Adapter, handle FeatureHandle) []Report {
	reports := make([]Report, 0, len(adapters))
	for _, a := range adapters {
		report := Report{Adapter: a, Offload: map[string]FeatureState{}}

		driver, err := handle.Driver(a.Name)
		if err != nil {
			log.V(1).Info("Could not read driver info", "interface", a.Name, "error", err)
		} else {
			report.Driver = driver
		}

		features, err := handle.Features(a.Name)
		if err != nil {
			log.V(1).Info("Could not read features", "interface", a.Name, "error", err)
			features = nil
		}
		for _, feature := range OffloadFeatures {
			report.Offload[feature] = featureState(features, feature)
		}

		reports = append(reports, report)
	}
	return reports
}

func featureState(features map[string]bool, feature string) FeatureState {
	enabled, ok := features[feature]
	if !ok {
		return FeatureUnsupported
	}
	if enabled {
		return FeatureOn
	}
	return FeatureOff
}

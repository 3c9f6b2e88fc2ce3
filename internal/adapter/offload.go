// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"fmt"

	"github.com/go-logr/logr"
)

// OffloadMutator disables large-send-offload features one adapter and
// feature at a time. Every path that does not apply a real change
// reports changed=false, which is what keeps repeated runs idempotent.
type OffloadMutator struct {
	log     logr.Logger
	handle  FeatureHandle
	dryRun  bool
	confirm ConfirmFunc
}

// NewOffloadMutator returns a mutator operating through the given
// feature handle. With dryRun set, intended changes are logged but not
// applied. A non-nil confirm is consulted before every change.
func NewOffloadMutator(log logr.Logger, handle FeatureHandle, dryRun bool, confirm ConfirmFunc) *OffloadMutator {
	return &OffloadMutator{
		log:     log,
		handle:  handle,
		dryRun:  dryRun,
		confirm: confirm,
	}
}

// DisableIfEnabled turns the named feature off on the adapter if the
// driver exposes it and it is currently enabled. It returns whether a
// change was actually applied. A feature the driver does not expose is
// not an error.
func (m *OffloadMutator) DisableIfEnabled(adapterName, feature string) (bool, error) {
	features, err := m.handle.Features(adapterName)
	if err != nil {
		return false, fmt.Errorf("could not read features of %s: %w", adapterName, err)
	}

	enabled, ok := features[feature]
	if !ok {
		m.log.Info("Feature not exposed by driver, skipping", "interface", adapterName, "feature", feature)
		return false, nil
	}
	if !enabled {
		m.log.V(1).Info("Feature already disabled", "interface", adapterName, "feature", feature)
		return false, nil
	}

	if m.dryRun {
		m.log.Info("Dry run, would disable feature", "interface", adapterName, "feature", feature)
		return false, nil
	}
	if m.confirm != nil && !m.confirm(fmt.Sprintf("disable %s on %s", feature, adapterName)) {
		m.log.Info("Change declined, skipping", "interface", adapterName, "feature", feature)
		return false, nil
	}

	if err := m.handle.Change(adapterName, map[string]bool{feature: false}); err != nil {
		return false, fmt.Errorf("could not disable %s on %s: %w", feature, adapterName, err)
	}
	m.log.Info("Disabled feature", "interface", adapterName, "feature", feature)
	return true, nil
}

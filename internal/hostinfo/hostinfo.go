// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

// Package hostinfo gathers the identity of the host being remediated so
// every run can be attributed after the fact. Collection is best effort:
// missing DMI tables or a locked-down /sys degrade to partial identity,
// never to a failed run.
package hostinfo

import (
	"github.com/denisbrodbeck/machineid"
	"github.com/go-logr/logr"
	"github.com/google/uuid"
)

// Identity describes the host a remediation run executed on.
type Identity struct {
	Manufacturer string `json:"manufacturer,omitempty"`
	Product      string `json:"product,omitempty"`
	SerialNumber string `json:"serialNumber,omitempty"`
	UUID         string `json:"uuid,omitempty"`
	BIOSVersion  string `json:"biosVersion,omitempty"`
	BoardProduct string `json:"boardProduct,omitempty"`
	MachineID    string `json:"machineID"`
}

// machineID returns the stable OS machine ID, or a random identity when
// the host does not expose one (e.g. minimal container images).
func machineID(log logr.Logger) string {
	id, err := machineid.ID()
	if err != nil {
		log.V(1).Info("Machine ID unavailable, using a random run identity", "error", err)
		return uuid.New().String()
	}
	return id
}

func (i Identity) complete() bool {
	return i.Manufacturer != "" && i.Product != "" && i.SerialNumber != ""
}

// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

//go:build !linux

package hostinfo

import (
	"github.com/go-logr/logr"
)

// Collect returns only the machine ID on platforms without DMI access.
func Collect(log logr.Logger) Identity {
	return Identity{MachineID: machineID(log)}
}

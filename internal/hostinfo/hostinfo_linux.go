// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package hostinfo

import (
	"github.com/go-logr/logr"
	"github.com/jaypipes/ghw"
	"github.com/siderolabs/go-smbios/smbios"
)

// Collect reads the host identity from DMI, falling back to the raw
// SMBIOS tables for the system fields when /sys/class/dmi is incomplete.
func Collect(log logr.Logger) Identity {
	id := Identity{MachineID: machineID(log)}

	if product, err := ghw.Product(); err != nil {
		log.V(1).Info("Could not read DMI product information", "error", err)
	} else {
		id.Manufacturer = product.Vendor
		id.Product = product.Name
		id.SerialNumber = product.SerialNumber
		id.UUID = product.UUID
	}

	if bios, err := ghw.BIOS(); err != nil {
		log.V(1).Info("Could not read DMI BIOS information", "error", err)
	} else {
		id.BIOSVersion = bios.Version
	}

	if board, err := ghw.Baseboard(); err != nil {
		log.V(1).Info("Could not read DMI board information", "error", err)
	} else {
		id.BoardProduct = board.Product
	}

	if !id.complete() {
		fillFromSMBIOS(&id, log)
	}
	return id
}

// fillFromSMBIOS parses the SMBIOS entry point directly. ghw reads the
// decoded sysfs files, which some firmware leaves sparse; the tables
// themselves usually still carry the type-1 system fields.
func fillFromSMBIOS(id *Identity, log logr.Logger) {
	sm, err := smbios.New()
	if err != nil {
		log.V(1).Info("SMBIOS tables unavailable", "error", err)
		return
	}
	si := sm.SystemInformation
	if id.Manufacturer == "" {
		id.Manufacturer = si.Manufacturer
	}
	if id.Product == "" {
		id.Product = si.ProductName
	}
	if id.SerialNumber == "" {
		id.SerialNumber = si.SerialNumber
	}
}

// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"fmt"

	"github.com/safchain/ethtool"
)

type ethtoolHandle struct {
	ethtool *ethtool.Ethtool
}

// NewFeatureHandle opens an ethtool control socket. The caller owns
// the handle and must Close it.
func NewFeatureHandle() (FeatureHandle, error) {
	e, err := ethtool.NewEthtool()
	if err != nil {
		return nil, fmt.Errorf("could not open ethtool socket: %w", err)
	}
	return &ethtoolHandle{ethtool: e}, nil
}

func (h *ethtoolHandle) Features(name string) (map[string]bool, error) {
	return h.ethtool.Features(name)
}

func (h *ethtoolHandle) Change(name string, config map[string]bool) error {
	return h.ethtool.Change(name, config)
}

func (h *ethtoolHandle) Driver(name string) (DriverInfo, error) {
	drvInfo, err := h.ethtool.DriverInfo(name)
	if err != nil {
		return DriverInfo{}, fmt.Errorf("could not get driver info: %w", err)
	}
	return DriverInfo{
		Name:            drvInfo.Driver,
		Version:         drvInfo.Version,
		FirmwareVersion: drvInfo.FwVersion,
		BusInfo:         drvInfo.BusInfo,
	}, nil
}

func (h *ethtoolHandle) Close() {
	h.ethtool.Close()
}

// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-logr/logr"
	"github.com/jaypipes/ghw"
	"k8s.io/utils/ptr"
)

var pathSysClassNet = "/sys/class/net"

// Discovery enumerates the network interfaces of the host and narrows
// them down to the physical ones remediation may touch.
type Discovery struct {
	log logr.Logger

	network   func() (*ghw.NetworkInfo, error)
	operState func(name string) (LinkState, error)
}

// NewDiscovery returns a Discovery backed by ghw and netlink.
func NewDiscovery(log logr.Logger) *Discovery {
	return &Discovery{
		log:       log,
		network:   func() (*ghw.NetworkInfo, error) { return ghw.Network() },
		operState: linkOperState,
	}
}

// Discover returns the physical interfaces whose link is operationally
// up, in enumeration order. Virtual devices and interfaces without an
// active link are skipped.
func (d *Discovery) Discover() ([]Adapter, error) {
	return d.discover(false)
}

// DiscoverAll returns every physical interface regardless of link
// state. Virtual devices are still skipped.
func (d *Discovery) DiscoverAll() ([]Adapter, error) {
	return d.discover(true)
}

func (d *Discovery) discover(includeDown bool) ([]Adapter, error) {
	nicinfo, err := d.network()
	if err != nil {
		return nil, fmt.Errorf("could not get network info: %w", err)
	}

	adapters := []Adapter{}
	for _, nic := range nicinfo.NICs {
		if nic.Name == "" {
			continue
		}
		if nic.IsVirtual || isVirtualDevice(nic.Name) {
			d.log.V(1).Info("Skipping virtual interface", "interface", nic.Name)
			continue
		}
		state, err := d.operState(nic.Name)
		if err != nil {
			d.log.V(1).Info("Could not read link state", "interface", nic.Name, "error", err)
			state = LinkStateUnknown
		}
		if state != LinkStateUp && !includeDown {
			d.log.V(1).Info("Skipping interface without active link", "interface", nic.Name, "state", state)
			continue
		}
		adapters = append(adapters, Adapter{
			Name:       nic.Name,
			MACAddress: nic.MACAddress,
			PCIAddress: ptr.Deref(nic.PCIAddress, ""),
			Speed:      nic.Speed,
			LinkState:  state,
		})
	}
	return adapters, nil
}

// isVirtualDevice reports whether sysfs registers the interface under
// the virtual device tree. Loopback, bridge, bond and veth devices all
// end up there. ghw flags most of them already; this covers drivers
// that register without a backing device.
func isVirtualDevice(device string) bool {
	netDeviceLink, err := os.Readlink(filepath.Join(pathSysClassNet, device)) // e.g., ../../devices/virtual/net/lo
	if err != nil {
		return false
	}

	devicePath := filepath.Clean(filepath.Join(pathSysClassNet, netDeviceLink)) // e.g., /sys/devices/virtual/net/lo
	return strings.Contains(devicePath, "devices/virtual/net")
}

// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

// Package adapter discovers physical network interfaces and manipulates
// their large-send-offload features and link state.
package adapter

// LinkState is the operational state of a network interface.
type LinkState string

const (
	LinkStateUp      LinkState = "up"
	LinkStateDown    LinkState = "down"
	LinkStateUnknown LinkState = "unknown"
)

// The ethtool feature names for large-send offload. The IPv4 and IPv6
// segmentation engines are separate features and are toggled separately.
const (
	FeatureTxTCPSegmentation  = "tx-tcp-segmentation"
	FeatureTxTCP6Segmentation = "tx-tcp6-segmentation"
)

// OffloadFeatures lists the features the remediation disables, in the
// order they are applied per adapter.
var OffloadFeatures = []string{
	FeatureTxTCPSegmentation,
	FeatureTxTCP6Segmentation,
}

// Adapter is one physical network interface at discovery time. The Name
// is the handle every later operation uses; the remaining fields are
// informational. An Adapter is not refreshed after a restart operation.
type Adapter struct {
	Name       string    `json:"name" yaml:"name"`
	MACAddress string    `json:"macAddress" yaml:"macAddress"`
	PCIAddress string    `json:"pciAddress,omitempty" yaml:"pciAddress,omitempty"`
	Speed      string    `json:"speed,omitempty" yaml:"speed,omitempty"`
	LinkState  LinkState `json:"linkState" yaml:"linkState"`
}

// ConfirmFunc asks the operator to approve one mutating action. A nil
// ConfirmFunc approves everything; a declined action is treated exactly
// like a simulated one.
type ConfirmFunc func(action string) bool

// DriverInfo is the subset of ethtool driver information surfaced by
// inspection output.
type DriverInfo struct {
	Name            string `json:"name,omitempty" yaml:"name,omitempty"`
	Version         string `json:"version,omitempty" yaml:"version,omitempty"`
	FirmwareVersion string `json:"firmwareVersion,omitempty" yaml:"firmwareVersion,omitempty"`
	BusInfo         string `json:"busInfo,omitempty" yaml:"busInfo,omitempty"`
}

// FeatureHandle reads and mutates adapter offload features. The real
// implementation wraps an ethtool socket; tests substitute fakes.
type FeatureHandle interface {
	// Features returns the feature map of the named interface.
	Features(name string) (map[string]bool, error)
	// Change applies the given feature values to the named interface.
	Change(name string, config map[string]bool) error
	// Driver returns driver identification for the named interface.
	Driver(name string) (DriverInfo, error)
	// Close releases the underlying socket.
	Close()
}

// LinkOps brings adapter links down and up. The real implementation
// talks netlink; tests substitute fakes.
type LinkOps interface {
	SetDown(name string) error
	SetUp(name string) error
	State(name string) (LinkState, error)
}

// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"fmt"
	"net"

	"github.com/vishvananda/netlink"
)

// linkOperState maps the netlink operational state of the named
// interface onto a LinkState.
func linkOperState(name string) (LinkState, error) {
	link, err := netlink.LinkByName(name)
	if err != nil {
		return LinkStateUnknown, fmt.Errorf("could not get link %s: %w", name, err)
	}
	return operStateOf(link), nil
}

func operStateOf(link netlink.Link) LinkState {
	attrs := link.Attrs()
	switch attrs.OperState {
	case netlink.OperUp:
		return LinkStateUp
	case netlink.OperDown, netlink.OperLowerLayerDown:
		return LinkStateDown
	}
	// Some drivers never fill in an operational state. IFF_RUNNING is
	// the older signal for an active link.
	if attrs.Flags&net.FlagRunning != 0 {
		return LinkStateUp
	}
	return LinkStateUnknown
}

type netlinkOps struct{}

// NewLinkOps returns a LinkOps backed by rtnetlink.
func NewLinkOps() LinkOps {
	return netlinkOps{}
}

func (netlinkOps) SetDown(name string) error {
	link, err := netlink.LinkByName(name)
	if err != nil {
		return fmt.Errorf("could not get link %s: %w", name, err)
	}
	if err := netlink.LinkSetDown(link); err != nil {
		return fmt.Errorf("could not set link %s down: %w", name, err)
	}
	return nil
}

func (netlinkOps) SetUp(name string) error {
	link, err := netlink.LinkByName(name)
	if err != nil {
		return fmt.Errorf("could not get link %s: %w", name, err)
	}
	if err := netlink.LinkSetUp(link); err != nil {
		return fmt.Errorf("could not set link %s up: %w", name, err)
	}
	return nil
}

func (netlinkOps) State(name string) (LinkState, error) {
	return linkOperState(name)
}

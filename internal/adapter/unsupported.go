// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

//go:build !linux

package adapter

import (
	"errors"

	"github.com/go-logr/logr"
)

// ErrUnsupported is returned on platforms without netlink and ethtool
// support. The environment check rejects those platforms before any
// adapter operation runs; these stubs exist so the tree compiles
// everywhere.
var ErrUnsupported = errors.New("adapter operations are only supported on linux")

type Discovery struct{}

func NewDiscovery(_ logr.Logger) *Discovery { return &Discovery{} }

func (d *Discovery) Discover() ([]Adapter, error)    { return nil, ErrUnsupported }
func (d *Discovery) DiscoverAll() ([]Adapter, error) { return nil, ErrUnsupported }

func NewFeatureHandle() (FeatureHandle, error) { return nil, ErrUnsupported }

type unsupportedOps struct{}

func NewLinkOps() LinkOps { return unsupportedOps{} }

func (unsupportedOps) SetDown(string) error            { return ErrUnsupported }
func (unsupportedOps) SetUp(string) error              { return ErrUnsupported }
func (unsupportedOps) State(string) (LinkState, error) { return LinkStateUnknown, ErrUnsupported }

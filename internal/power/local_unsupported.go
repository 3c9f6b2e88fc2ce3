// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

//go:build !linux

package power

import (
	"context"
	"errors"

	"github.com/go-logr/logr"
)

// ErrUnsupported is returned on platforms without logind or the linux
// reboot syscall. The environment check rejects those platforms before
// a reboot can be requested.
var ErrUnsupported = errors.New("local reboot is only supported on linux")

type LocalRebooter struct{}

func NewLocalRebooter(_ logr.Logger) *LocalRebooter { return &LocalRebooter{} }

func (r *LocalRebooter) Name() string { return "local" }

func (r *LocalRebooter) Reboot(_ context.Context) error { return ErrUnsupported }

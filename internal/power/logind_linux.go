// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package power

import (
	"context"
	"fmt"

	"github.com/coreos/go-systemd/v22/login1"
	"github.com/go-logr/logr"
	"golang.org/x/sys/unix"
)

// LocalRebooter restarts the host through logind, falling back to the
// reboot syscall when D-Bus is unavailable.
type LocalRebooter struct {
	log logr.Logger

	logindReboot  func() error
	syscallReboot func() error
}

// NewLocalRebooter returns a Rebooter acting on the local host.
func NewLocalRebooter(log logr.Logger) *LocalRebooter {
	return &LocalRebooter{
		log:           log,
		logindReboot:  logindReboot,
		syscallReboot: syscallReboot,
	}
}

func (r *LocalRebooter) Name() string { return "local" }

// Reboot asks logind for a restart so unit shutdown ordering is
// honored. Hosts without a reachable logind get the kernel restart
// directly.
func (r *LocalRebooter) Reboot(_ context.Context) error {
	err := r.logindReboot()
	if err == nil {
		r.log.Info("Reboot requested through logind")
		return nil
	}
	r.log.V(1).Info("Could not reboot through logind, falling back to syscall", "error", err)

	if err := r.syscallReboot(); err != nil {
		return fmt.Errorf("could not reboot host: %w", err)
	}
	r.log.Info("Reboot requested through the kernel")
	return nil
}

func logindReboot() error {
	conn, err := login1.New()
	if err != nil {
		return err
	}
	defer conn.Close()
	conn.Reboot(false)
	return nil
}

func syscallReboot() error {
	unix.Sync()
	return unix.Reboot(unix.LINUX_REBOOT_CMD_RESTART)
}

// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package guard

import (
	"fmt"
	"os"

	"github.com/go-logr/logr"
	"golang.org/x/sys/unix"
)

// Check fails fast when the process lacks the privileges or kernel
// support needed to mutate adapter state. It must run before any other
// component and has no side effects.
func Check(log logr.Logger) error {
	if euid := os.Geteuid(); euid != 0 {
		return fmt.Errorf("%w: effective UID %d", ErrNotRoot, euid)
	}

	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return fmt.Errorf("failed to read kernel release: %w", err)
	}
	release := unix.ByteSliceToString(uts.Release[:])
	if err := checkKernelRelease(release); err != nil {
		return err
	}

	log.V(1).Info("Environment check passed", "kernelRelease", release)
	return nil
}

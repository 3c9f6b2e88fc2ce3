// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

// Package guard verifies that the process is allowed to reconfigure the
// host before any mutating component runs: it must hold root privileges
// and the kernel must be recent enough for the ethtool feature and
// netlink link operations the remediation issues.
package guard

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrNotRoot is returned when the process does not run with effective UID 0.
	ErrNotRoot = errors.New("not running as root")
	// ErrKernelTooOld is returned when the kernel release is below the supported minimum.
	ErrKernelTooOld = errors.New("kernel release below supported minimum")
	// ErrUnsupportedPlatform is returned on builds for platforms without adapter support.
	ErrUnsupportedPlatform = errors.New("unsupported platform")
)

// The ETHTOOL_GFEATURES/SFEATURES ioctls and the netlink operstate
// attribute are all present since 3.10, the oldest enterprise kernel
// still seen in the field.
const (
	minKernelMajor = 3
	minKernelMinor = 10
)

// checkKernelRelease validates a uname release string such as
// "5.15.0-91-generic" against the supported minimum.
func checkKernelRelease(release string) error {
	major, minor, err := parseKernelRelease(release)
	if err != nil {
		return err
	}
	if major > minKernelMajor || (major == minKernelMajor && minor >= minKernelMinor) {
		return nil
	}
	return fmt.Errorf("%w: %s (need at least %d.%d)", ErrKernelTooOld, release, minKernelMajor, minKernelMinor)
}

func parseKernelRelease(release string) (major, minor int, err error) {
	// Everything after the first non-numeric separator ("-flavor",
	// "+", local suffixes) is irrelevant for the version comparison.
	fields := strings.SplitN(release, ".", 3)
	if len(fields) < 2 {
		return 0, 0, fmt.Errorf("malformed kernel release %q", release)
	}
	major, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed kernel release %q: %w", release, err)
	}
	minorStr := fields[1]
	if i := strings.IndexFunc(minorStr, func(r rune) bool { return r < '0' || r > '9' }); i >= 0 {
		minorStr = minorStr[:i]
	}
	minor, err = strconv.Atoi(minorStr)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed kernel release %q: %w", release, err)
	}
	return major, minor, nil
}

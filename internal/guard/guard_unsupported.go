// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

//go:build !linux

package guard

import (
	"fmt"
	"runtime"

	"github.com/go-logr/logr"
)

// Check always fails on non-Linux builds: the remediation mutates
// adapter state through interfaces only Linux provides.
func Check(_ logr.Logger) error {
	return fmt.Errorf("%w: %s", ErrUnsupportedPlatform, runtime.GOOS)
}

// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

// Package power restarts the host when remediation cannot restore
// connectivity.
package power

import "context"

// A Rebooter triggers a host restart. Implementations decide the
// transport; a returned error means the restart was not initiated.
type Rebooter interface {
	// Name identifies the transport in logs.
	Name() string
	// Reboot initiates a host restart. It returns once the transport
	// accepted the request, not when the restart completes.
	Reboot(ctx context.Context) error
}

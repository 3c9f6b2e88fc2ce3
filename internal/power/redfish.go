// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package power

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"
	"github.com/stmcginnis/gofish"
	"github.com/stmcginnis/gofish/redfish"
)

// RedfishOptions contain the connection details of the BMC.
type RedfishOptions struct {
	// Endpoint is the BMC base URL, e.g. https://10.0.0.1
	Endpoint string
	Username string
	Password string
	// SystemURI selects the managed system when the BMC exposes more
	// than one. Empty selects the only system.
	SystemURI string
	Insecure  bool
	BasicAuth bool
}

// RedfishRebooter restarts the host out of band through its BMC. It is
// the escalation for hosts that may be too wedged to act on a local
// reboot request.
type RedfishRebooter struct {
	log     logr.Logger
	options RedfishOptions
}

// NewRedfishRebooter returns a Rebooter acting through the BMC at the
// configured endpoint. The connection is established per reboot
// request, not up front.
func NewRedfishRebooter(log logr.Logger, options RedfishOptions) *RedfishRebooter {
	return &RedfishRebooter{log: log, options: options}
}

func (r *RedfishRebooter) Name() string { return "redfish" }

// Reboot force-restarts the system through the BMC.
func (r *RedfishRebooter) Reboot(ctx context.Context) error {
	clientConfig := gofish.ClientConfig{
		Endpoint:  r.options.Endpoint,
		Username:  r.options.Username,
		Password:  r.options.Password,
		Insecure:  r.options.Insecure,
		BasicAuth: r.options.BasicAuth,
	}
	client, err := gofish.ConnectContext(ctx, clientConfig)
	if err != nil {
		return fmt.Errorf("could not connect to BMC: %w", err)
	}
	defer client.Logout()

	system, err := r.selectSystem(client)
	if err != nil {
		return err
	}
	if err := system.Reset(redfish.ForceRestartResetType); err != nil {
		return fmt.Errorf("could not reset system %s: %w", system.ODataID, err)
	}
	r.log.Info("Reboot requested through BMC", "system", system.ODataID)
	return nil
}

func (r *RedfishRebooter) selectSystem(client *gofish.APIClient) (*redfish.ComputerSystem, error) {
	systems, err := client.Service.Systems()
	if err != nil {
		return nil, fmt.Errorf("could not list systems: %w", err)
	}

	if r.options.SystemURI != "" {
		for _, system := range systems {
			if system.ODataID == r.options.SystemURI {
				return system, nil
			}
		}
		return nil, fmt.Errorf("no system found for %v", r.options.SystemURI)
	}

	switch len(systems) {
	case 0:
		return nil, fmt.Errorf("BMC exposes no systems")
	case 1:
		return systems[0], nil
	default:
		return nil, fmt.Errorf("BMC exposes %d systems, select one with a system URI", len(systems))
	}
}

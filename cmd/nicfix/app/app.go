// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"github.com/spf13/cobra"
)

const Name string = "nicfix"

func NewCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   Name,
		Short: "One-shot send-offload remediation for the local host",
		Args:  cobra.NoArgs,
		// Errors out of RunE are run outcomes, not usage problems;
		// main prints them once and maps the exit code.
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.AddCommand(NewRunCommand())
	root.AddCommand(NewShowCommand())
	return root
}

// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ironcore-dev/nicfix/internal/adapter"
)

var output string

func NewShowCommand() *cobra.Command {
	show := &cobra.Command{
		Use:   "show",
		Short: "Show every physical adapter with its offload state",
		Args:  cobra.NoArgs,
		RunE:  runShow,
	}
	show.Flags().StringVarP(&output, "output", "o", "table", "output format (table, json, yaml)")
	show.Flags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	return show
}

func runShow(cmd *cobra.Command, _ []string) error {
	log, err := setupLogger(logLevel)
	if err != nil {
		return err
	}

	handle, err := adapter.NewFeatureHandle()
	if err != nil {
		return &ExitError{Code: ExitIncomplete, Err: err}
	}
	defer handle.Close()

	adapters, err := adapter.NewDiscovery(log).DiscoverAll()
	if err != nil {
		return &ExitError{Code: ExitIncomplete, Err: err}
	}
	if len(adapters) == 0 {
		return &ExitError{Code: ExitNoAdapters, Err: errors.New("no physical adapters found")}
	}

	reports := adapter.BuildReports(log, adapters, handle)
	return renderReports(cmd.OutOrStdout(), output, reports)
}

func renderReports(w io.Writer, format string, reports []adapter.Report) error {
	switch format {
	case "table":
		return renderTable(w, reports)
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(reports)
	case "yaml":
		return yaml.NewEncoder(w).Encode(reports)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func renderTable(w io.Writer, reports []adapter.Report) error {
	table := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(table, "NAME\tMAC\tLINK\tDRIVER\tTSO4\tTSO6")
	for _, report := range reports {
		fmt.Fprintf(table, "%s\t%s\t%s\t%s\t%s\t%s\n",
			report.Adapter.Name,
			report.Adapter.MACAddress,
			report.Adapter.LinkState,
			report.Driver.Name,
			report.Offload[adapter.FeatureTxTCPSegmentation],
			report.Offload[adapter.FeatureTxTCP6Segmentation],
		)
	}
	return table.Flush()
}

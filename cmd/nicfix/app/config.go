// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "NICFIX"

// initConfiguration merges config file and environment values into
// every flag the command line left untouched. Precedence is flags,
// then environment, then config file, then flag defaults.
func initConfiguration(cmd *cobra.Command, configFile string) error {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if len(configFile) > 0 {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("could not read config file %s: %w", configFile, err)
		}
	}

	return bindFlags(cmd, v)
}

// bindFlags binds each cobra flag to its viper key and environment
// variable. Dashes are valid in neither, so keys and variables use
// underscores, e.g. ping_targets and NICFIX_PING_TARGETS.
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if err := v.BindEnv(key, fmt.Sprintf("%s_%s", envPrefix, strings.ToUpper(key))); err != nil {
			if bindErr == nil {
				bindErr = err
			}
			return
		}

		if f.Changed || !v.IsSet(key) {
			return
		}
		if err := cmd.Flags().Set(f.Name, flagValue(v.Get(key))); err != nil && bindErr == nil {
			bindErr = fmt.Errorf("invalid value for %s: %w", f.Name, err)
		}
	})
	return bindErr
}

// flagValue renders a viper value the way pflag parses it. Lists from
// a config file arrive as []any and have to become comma separated.
func flagValue(value any) string {
	items, ok := value.([]any)
	if !ok {
		return fmt.Sprintf("%v", value)
	}
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%v", item))
	}
	return strings.Join(parts, ",")
}

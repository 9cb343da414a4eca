// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/jeranaias/lampstand/internal/config"
)

// =============================================================================
// CONFIG COMMAND
// =============================================================================

// newConfigCmd shows, locates or resets the configuration file.
//
//	lampstand config          Show the effective configuration (default)
//	lampstand config show     Same
//	lampstand config path     Print the config file location
//	lampstand config reset    Write the built-in defaults to the file
func newConfigCmd(e *env) *cobra.Command {
	show := func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()
		mutedColor.Fprintf(w, "# %s\n", e.watchPath)
		fmt.Fprint(w, config.Global().String())
	}

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or reset the configuration",
		Long:  "Show the effective configuration: the config file with environment overrides and flags applied.",
		Args:  cobra.NoArgs,
		Run:   show,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show the effective configuration",
			Args:  cobra.NoArgs,
			Run:   show,
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the config file location",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintln(cmd.OutOrStdout(), e.watchPath)
			},
		},
		&cobra.Command{
			Use:   "reset",
			Short: "Replace the config file with the defaults",
			Args:  cobra.NoArgs,
			// A broken file must not stop its own reset.
			PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
			RunE: func(cmd *cobra.Command, args []string) error {
				path, err := resetConfig(e.opts.ConfigPath)
				if err != nil {
					return err
				}
				formatColor.Fprintf(cmd.OutOrStdout(), "Configuration reset: %s\n", path)
				return nil
			},
		},
	)
	return cmd
}

// resetConfig writes the defaults to path, or to the default location when
// path is empty, and returns where it wrote.
func resetConfig(path string) (string, error) {
	cfg := config.Default()
	if path == "" {
		if err := config.Save(cfg); err != nil {
			return "", errors.Wrap(err, "reset config")
		}
		return config.ConfigPath()
	}
	if err := config.SaveToPath(cfg, path); err != nil {
		return "", errors.Wrap(err, "reset config")
	}
	return path, nil
}

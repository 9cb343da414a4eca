// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/jeranaias/lampstand/internal/config"
	"github.com/jeranaias/lampstand/internal/logging"
	"github.com/jeranaias/lampstand/internal/responder"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// rootOptions holds the global flags.
type rootOptions struct {
	ConfigPath string
	ReplyDelay int
	Debug      bool
}

// env is what every command gets once the config has loaded.
type env struct {
	opts rootOptions

	cfg       *config.Config
	watchPath string // config file to watch for edits
	delaySet  bool   // --reply-delay was given
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	e := &env{}

	cmd := &cobra.Command{
		Use:           "lampstand",
		Short:         "A terminal Bible study companion",
		Long:          "Ask about a verse, seek guidance, or explore biblical themes.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.load(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logging.Close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive() {
				return runTUI(cmd.Context(), e)
			}
			return runREPL(cmd.Context(), e, cmd.OutOrStdout())
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&e.opts.ConfigPath, "config", "", "config file (default ~/.lampstand/config.toml)")
	flags.IntVar(&e.opts.ReplyDelay, "reply-delay", 0, "assistant reply delay in milliseconds")
	flags.BoolVar(&e.opts.Debug, "debug", false, "enable debug logging")

	cmd.AddCommand(
		newChatCmd(e),
		newHistoryCmd(),
		newConfigCmd(e),
		newVersionCmd(),
	)
	return cmd
}

// Execute runs the root command until it finishes or the process is
// interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return NewRootCmd().ExecuteContext(ctx)
}

// =============================================================================
// CONFIG LOADING
// =============================================================================

// load resolves the configuration, applies flags and opens the log file.
// Only an unreadable explicit --config is fatal; the default file falls
// back to built-in defaults with a warning.
func (e *env) load(cmd *cobra.Command) error {
	if err := config.ReloadGlobal(e.opts.ConfigPath); err != nil {
		if e.opts.ConfigPath != "" {
			return errors.Wrap(err, "load config")
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v; using defaults\n", err)
		fallback := config.Default()
		fallback.SetDefaults()
		config.SetGlobal(fallback)
	}
	e.watchPath = e.opts.ConfigPath
	if e.watchPath == "" {
		if path, err := config.ConfigPath(); err == nil {
			e.watchPath = path
		}
	}

	cfg := config.Global().Clone()
	e.delaySet = cmd.Flags().Changed("reply-delay")
	e.applyFlags(cfg)
	if e.delaySet {
		if err := cfg.Validate(); err != nil {
			return errors.Wrap(err, "invalid --reply-delay")
		}
	}

	config.SetGlobal(cfg)
	e.cfg = cfg

	if err := logging.Init(logging.Options{Path: cfg.Log.File, Level: cfg.Log.Level}); err != nil {
		// Logging is best effort; the commands still work without it.
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
	}
	logging.WithFields("command", cmd.Name()).Debug("config loaded",
		"path", e.watchPath,
		"reply_delay_ms", cfg.UI.ReplyDelayMs,
	)
	return nil
}

// applyFlags lays the command-line flags over cfg. Flags win over the
// file, at startup and on every reload.
func (e *env) applyFlags(cfg *config.Config) {
	if e.delaySet {
		cfg.UI.ReplyDelayMs = e.opts.ReplyDelay
	}
	if e.opts.Debug {
		cfg.Log.Level = "debug"
	}
}

// reload installs a config file that changed while the program runs and
// applies the settings owned by the process. The interface applies the
// rest when it receives app.ConfigReloadedMsg.
func (e *env) reload(cfg *config.Config, stub *responder.Stub) {
	e.applyFlags(cfg)
	config.SetGlobal(cfg)
	stub.SetDelay(cfg.ReplyDelay())
	logging.SetLevel(logging.ParseLevel(cfg.Log.Level))
	logging.Logger().Info("config file reloaded", "path", e.watchPath, "reply_delay_ms", cfg.UI.ReplyDelayMs)
}

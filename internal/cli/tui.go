// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"

	"github.com/jeranaias/lampstand/internal/auth"
	"github.com/jeranaias/lampstand/internal/config"
	"github.com/jeranaias/lampstand/internal/logging"
	"github.com/jeranaias/lampstand/internal/responder"
	"github.com/jeranaias/lampstand/internal/session"
	"github.com/jeranaias/lampstand/internal/ui/app"
	"github.com/jeranaias/lampstand/internal/ui/styles"
)

// configDebounce is how long the config file must be quiet before a reload.
const configDebounce = 250 * time.Millisecond

// newSession creates a conversation whose replies use the configured delay.
// The stub is returned so a config reload can change the delay.
func newSession(ctx context.Context, cfg *config.Config) (*session.Manager, *responder.Stub) {
	stub := responder.NewStub(cfg.ReplyDelay())
	return session.NewManager(ctx, session.Config{Responder: stub}), stub
}

// logEvents records every session transition at debug level.
func logEvents(mgr *session.Manager, log *slog.Logger) {
	mgr.OnChange(func(ev session.Event) {
		attrs := []any{"event", ev.Kind.String(), "state", ev.State.String()}
		if ev.Err != nil {
			attrs = append(attrs, "error", ev.Err)
		}
		log.Debug("session event", attrs...)
	})
}

// runTUI runs the full-screen interface until the user quits.
func runTUI(ctx context.Context, e *env) error {
	mgr, stub := newSession(ctx, e.cfg)
	defer mgr.Close()

	ctx = logging.WithSessionID(ctx, mgr.SessionID())
	log := logging.FromContext(ctx)
	logEvents(mgr, log)

	// Query the terminal before the program owns stdin.
	styles.DetectBackground()

	user := auth.User{
		DisplayName: e.cfg.Profile.DisplayName,
		Email:       e.cfg.Profile.Email,
	}
	m := app.New(app.Options{
		Theme:   styles.NewTheme(e.cfg.UI.Theme),
		Session: mgr,
		Config:  e.cfg,
		Auth:    auth.NewLocal(user, e.cfg.Profile.FailSignOut),
		User:    user,

		ExportDir: defaultExportDir(),
	})

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	if e.watchPath != "" {
		w, err := config.NewWatcher(e.watchPath, configDebounce, func(cfg *config.Config, err error) {
			if err == nil {
				e.reload(cfg, stub)
			}
			p.Send(app.ConfigReloadedMsg{Err: err})
		})
		if err == nil {
			err = w.Watch()
			defer w.Close()
		}
		if err != nil {
			log.Warn("config watcher disabled", "error", err)
		}
	}

	log.Info("tui started", "reply_delay_ms", e.cfg.UI.ReplyDelayMs)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		err = nil
	}
	log.Info("tui stopped", "messages", mgr.Len())
	return errors.Wrap(err, "run tui")
}

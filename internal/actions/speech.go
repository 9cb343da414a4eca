// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package actions

import (
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

// speechCommands are tried in order; the first one on PATH is used.
// Each takes the text as its final argument.
var speechCommands = []string{"say", "spd-say", "espeak-ng", "espeak"}

// Speaker reads text aloud with the platform's text-to-speech command.
// When no such command exists, Speak is a silent no-op.
type Speaker struct {
	command string

	start func(name string, args ...string) error
}

// NewSpeaker looks up a text-to-speech command on PATH.
func NewSpeaker() *Speaker {
	return newSpeaker(exec.LookPath, startDetached)
}

func newSpeaker(lookPath func(string) (string, error), start func(string, ...string) error) *Speaker {
	s := &Speaker{start: start}
	for _, name := range speechCommands {
		if path, err := lookPath(name); err == nil {
			s.command = path
			break
		}
	}
	return s
}

// Available reports whether a text-to-speech command was found.
func (s *Speaker) Available() bool {
	return s.command != ""
}

// Speak starts reading text aloud with the default voice and rate and
// returns without waiting for speech to finish.
func (s *Speaker) Speak(text string) error {
	if !s.Available() || strings.TrimSpace(text) == "" {
		return nil
	}
	if err := s.start(s.command, text); err != nil {
		return errors.Wrapf(err, "start %s", s.command)
	}
	return nil
}

// startDetached starts the command and reaps it in the background.
func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go cmd.Wait() //nolint:errcheck
	return nil
}

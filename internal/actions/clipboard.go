// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package actions implements the per-message utilities offered on assistant
// replies: copy, read aloud and share.
package actions

import (
	"github.com/atotto/clipboard"
	"github.com/pkg/errors"
)

// Copier writes plain text to the system clipboard.
type Copier struct {
	write func(string) error
}

// NewCopier creates a copier backed by the system clipboard.
func NewCopier() *Copier {
	return &Copier{write: clipboard.WriteAll}
}

// Supported reports whether a clipboard backend is available.
func (c *Copier) Supported() bool {
	return !clipboard.Unsupported
}

// Copy writes text to the clipboard. Callers treat this as fire-and-forget;
// the error is only returned so it can be logged.
func (c *Copier) Copy(text string) error {
	if err := c.write(text); err != nil {
		return errors.Wrap(err, "write clipboard")
	}
	return nil
}

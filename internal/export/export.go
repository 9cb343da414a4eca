// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/jeranaias/lampstand/internal/model"
	"github.com/jeranaias/lampstand/internal/util"
)

// ErrEmptyTranscript is returned when there is nothing to export.
var ErrEmptyTranscript = errors.New("export: transcript has no messages")

// =============================================================================
// TRANSCRIPT
// =============================================================================

// Transcript is one study session as it is exported.
type Transcript struct {
	Title     string          `json:"title"`
	SessionID string          `json:"session_id,omitempty"`
	Exported  time.Time       `json:"exported"`
	Messages  []model.Message `json:"messages"`
	Notes     []model.Note    `json:"notes,omitempty"`
}

// =============================================================================
// EXPORT INTERFACE
// =============================================================================

// Exporter defines the interface for transcript exporters.
type Exporter interface {
	// Export converts a transcript to the target format.
	Export(t Transcript) ([]byte, error)

	// FileExtension returns the file extension, including the dot.
	FileExtension() string
}

// Options configures export behavior.
type Options struct {
	// IncludeInsights adds theologian commentary under each reply.
	IncludeInsights bool

	// IncludeNotes appends the session's notes.
	IncludeNotes bool
}

// DefaultOptions returns default export options.
func DefaultOptions() *Options {
	return &Options{
		IncludeInsights: true,
		IncludeNotes:    true,
	}
}

// ByName returns the exporter for "md"/"markdown" or "json".
func ByName(name string, opts *Options) (Exporter, error) {
	switch strings.ToLower(name) {
	case "", "md", "markdown":
		return NewMarkdownExporter(opts), nil
	case "json":
		return NewJSONExporter(), nil
	default:
		return nil, errors.Errorf("export: unknown format %q", name)
	}
}

// =============================================================================
// EXPORT FUNCTIONS
// =============================================================================

// ExportToFile writes t into dir and returns the file path. The file name
// is derived from the title and the export time.
func ExportToFile(t Transcript, exporter Exporter, dir string) (string, error) {
	if t.Exported.IsZero() {
		t.Exported = time.Now()
	}

	content, err := exporter.Export(t)
	if err != nil {
		return "", errors.Wrap(err, "export failed")
	}

	filename := fmt.Sprintf("study_%s_%s%s",
		sanitizeFilename(t.Title),
		t.Exported.Format("20060102_150405"),
		exporter.FileExtension(),
	)
	path := filepath.Join(dir, filename)
	if err := util.AtomicWriteFile(path, content, 0o600); err != nil {
		return "", errors.Wrap(err, "write export")
	}
	return path, nil
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// sanitizeFilename replaces characters that are invalid in file names.
func sanitizeFilename(s string) string {
	s = util.TruncateRunes(strings.TrimSpace(s), 50)

	var b strings.Builder
	for _, r := range s {
		switch {
		case strings.ContainsRune(`/\:*?"<>|`, r):
			b.WriteRune('-')
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			b.WriteRune('_')
		case r < 32 || r == 127:
			b.WriteRune('-')
		default:
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "conversation"
	}
	return b.String()
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/lampstand/internal/model"
)

var exportedAt = time.Date(2025, 3, 4, 9, 7, 0, 0, time.UTC)

func sampleTranscript() Transcript {
	return Transcript{
		Title:     "What does Psalm 23 teach?",
		SessionID: "sess_1",
		Exported:  exportedAt,
		Messages: []model.Message{
			model.NewUserMessage("What does Psalm 23 teach?", exportedAt),
			model.NewAIMessage("It teaches trust.", "Psalm 23:1", []model.Insight{
				{Theologian: "C.S. Lewis", Commentary: "On trust."},
			}, exportedAt),
		},
		Notes: []model.Note{
			{ID: "n1", Title: "Shepherd", Body: "The Lord provides.", Tags: []string{"trust", "psalms"}},
		},
	}
}

func TestMarkdownExporter_Export(t *testing.T) {
	out, err := NewMarkdownExporter(nil).Export(sampleTranscript())
	require.NoError(t, err)
	md := string(out)

	assert.True(t, strings.HasPrefix(md, "---\n"))
	assert.Contains(t, md, "title: What does Psalm 23 teach?\n")
	assert.Contains(t, md, "# What does Psalm 23 teach?")
	assert.Contains(t, md, "### You <sub>09:07</sub>")
	assert.Contains(t, md, "### Assistant <sub>09:07</sub>")
	assert.Contains(t, md, "> Psalm 23:1")
	assert.Contains(t, md, "**C.S. Lewis**: On trust.")
	assert.Contains(t, md, "## Notes")
	assert.Contains(t, md, "Tags: trust, psalms")
	assert.Contains(t, md, "March 4, 2025 at 9:07 AM")
}

func TestMarkdownExporter_OptionsOmitSections(t *testing.T) {
	out, err := NewMarkdownExporter(&Options{}).Export(sampleTranscript())
	require.NoError(t, err)
	assert.NotContains(t, string(out), "Theologian Insights")
	assert.NotContains(t, string(out), "## Notes")
}

func TestExporters_RejectEmptyTranscript(t *testing.T) {
	_, err := NewMarkdownExporter(nil).Export(Transcript{})
	assert.ErrorIs(t, err, ErrEmptyTranscript)

	_, err = NewJSONExporter().Export(Transcript{})
	assert.ErrorIs(t, err, ErrEmptyTranscript)
}

func TestJSONExporter_Export(t *testing.T) {
	out, err := NewJSONExporter().Export(sampleTranscript())
	require.NoError(t, err)

	var got Transcript
	require.NoError(t, json.Unmarshal(out, &got))
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "Psalm 23:1", got.Messages[1].Citation)
	assert.Equal(t, []string{"trust", "psalms"}, got.Notes[0].Tags)
}

func TestByName(t *testing.T) {
	for _, name := range []string{"", "md", "Markdown"} {
		e, err := ByName(name, nil)
		require.NoError(t, err)
		assert.Equal(t, ".md", e.FileExtension())
	}

	e, err := ByName("json", nil)
	require.NoError(t, err)
	assert.Equal(t, ".json", e.FileExtension())

	_, err = ByName("pdf", nil)
	assert.Error(t, err)
}

func TestExportToFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")

	path, err := ExportToFile(sampleTranscript(), NewMarkdownExporter(nil), dir)
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))
	assert.Equal(t, "study_What_does_Psalm_23_teach-_20250304_090700.md", filepath.Base(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "It teaches trust.")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"John 3:16", "John_3-16"},
		{"a/b\\c", "a-b-c"},
		{"   ", "conversation"},
		{"", "conversation"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, sanitizeFilename(tc.in), tc.in)
	}
}

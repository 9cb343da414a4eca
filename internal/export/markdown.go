// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/jeranaias/lampstand/internal/insights"
	"github.com/jeranaias/lampstand/internal/model"
)

// =============================================================================
// MARKDOWN EXPORTER
// =============================================================================

// MarkdownExporter exports transcripts to Markdown.
type MarkdownExporter struct {
	options *Options
}

// NewMarkdownExporter creates a new Markdown exporter.
func NewMarkdownExporter(opts *Options) *MarkdownExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &MarkdownExporter{options: opts}
}

// Export converts a transcript to Markdown.
func (e *MarkdownExporter) Export(t Transcript) ([]byte, error) {
	if len(t.Messages) == 0 {
		return nil, ErrEmptyTranscript
	}

	title := t.Title
	if title == "" {
		title = "Bible Study"
	}

	var sb strings.Builder

	// YAML frontmatter
	sb.WriteString("---\n")
	fmt.Fprintf(&sb, "title: %s\n", escapeYAML(title))
	if t.SessionID != "" {
		fmt.Fprintf(&sb, "session: %s\n", t.SessionID)
	}
	fmt.Fprintf(&sb, "messages: %d\n", len(t.Messages))
	fmt.Fprintf(&sb, "exported: %s\n", t.Exported.Format(time.RFC3339))
	sb.WriteString("generator: lampstand\n")
	sb.WriteString("---\n\n")

	fmt.Fprintf(&sb, "# %s\n\n", escapeMarkdown(title))

	for i, msg := range t.Messages {
		fmt.Fprintf(&sb, "### %s <sub>%s</sub>\n\n", msg.Role.DisplayName(), msg.Clock())
		sb.WriteString(strings.TrimSpace(msg.Text))
		sb.WriteString("\n\n")

		if msg.Citation != "" {
			fmt.Fprintf(&sb, "> %s\n\n", msg.Citation)
		}
		if e.options.IncludeInsights && msg.HasInsights() {
			e.writeInsights(&sb, msg)
		}
		if i < len(t.Messages)-1 {
			sb.WriteString("---\n\n")
		}
	}

	if e.options.IncludeNotes && len(t.Notes) > 0 {
		sb.WriteString("## Notes\n\n")
		for _, n := range t.Notes {
			fmt.Fprintf(&sb, "### %s\n\n%s\n\n", escapeMarkdown(n.Title), strings.TrimSpace(n.Body))
			if n.HasTags() {
				fmt.Fprintf(&sb, "Tags: %s\n\n", strings.Join(n.Tags, ", "))
			}
		}
	}

	fmt.Fprintf(&sb, "*Exported from lampstand on %s*\n",
		t.Exported.Format("January 2, 2006 at 3:04 PM"))

	return []byte(sb.String()), nil
}

// FileExtension returns the file extension for Markdown.
func (e *MarkdownExporter) FileExtension() string {
	return ".md"
}

func (e *MarkdownExporter) writeInsights(sb *strings.Builder, msg model.Message) {
	sb.WriteString("#### Theologian Insights\n\n")
	for _, in := range msg.Insights {
		fmt.Fprintf(sb, "- %s **%s**: %s\n", insights.Avatar(in.Theologian), in.Theologian, in.Commentary)
	}
	sb.WriteString("\n")
}

// =============================================================================
// ESCAPING HELPERS
// =============================================================================

// escapeMarkdown escapes characters that would break headings.
func escapeMarkdown(s string) string {
	r := strings.NewReplacer(
		"#", `\#`,
		"*", `\*`,
		"_", `\_`,
		"[", `\[`,
		"]", `\]`,
	)
	return r.Replace(s)
}

// escapeYAML quotes s when it contains YAML special characters.
func escapeYAML(s string) string {
	if strings.ContainsAny(s, ":#|>@`\"'[]{}!%&*\n\r\\") || strings.HasPrefix(s, " ") || strings.HasSuffix(s, " ") {
		s = strings.ReplaceAll(s, `\`, `\\`)
		s = strings.ReplaceAll(s, `"`, `\"`)
		s = strings.ReplaceAll(s, "\n", `\n`)
		s = strings.ReplaceAll(s, "\r", `\r`)
		return `"` + s + `"`
	}
	return s
}

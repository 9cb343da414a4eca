// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/jeranaias/lampstand/internal/insights"
	"github.com/jeranaias/lampstand/internal/model"
	"github.com/jeranaias/lampstand/internal/util"
)

var (
	// Colors.
	userColor     = color.New(color.Bold)
	aiColor       = color.New(color.FgCyan)
	citationColor = color.New(color.FgYellow, color.Italic)
	insightColor  = color.New(color.FgMagenta, color.Bold)
	mutedColor    = color.New(color.FgHiBlack)
	formatColor   = color.New(color.FgGreen)
	errorColor    = color.New(color.FgRed, color.Bold)
)

// separator prints a full-width rule.
func separator(w io.Writer, width int) {
	formatColor.Fprintln(w, strings.Repeat("-", width))
}

// title prints text centered in a rule.
func title(w io.Writer, width int, text string, args ...any) {
	label := "   " + fmt.Sprintf(text, args...) + "   "
	left := max((width-len(label))/2, 0)
	right := max(width-len(label)-left, 0)
	formatColor.Fprintln(w, strings.Repeat("-", left)+label+strings.Repeat("-", right))
}

// printUser echoes a submitted message.
func printUser(w io.Writer, msg model.Message) {
	userColor.Fprintf(w, "-> %s  ", msg.Role.DisplayName())
	mutedColor.Fprintln(w, msg.Clock())
	fmt.Fprintln(w, msg.Text)
}

// printReply prints an assistant message with its citation and insights.
func printReply(w io.Writer, msg model.Message) {
	aiColor.Fprintf(w, "%s  ", msg.Role.DisplayName())
	mutedColor.Fprintln(w, msg.Clock())
	aiColor.Fprintln(w, msg.Text)

	if msg.Citation != "" {
		fmt.Fprintln(w)
		citationColor.Fprintf(w, "  %s\n", msg.Citation)
	}
	if !msg.HasInsights() {
		return
	}

	fmt.Fprintln(w)
	insightColor.Fprintln(w, "Theologian Insights")
	for _, in := range msg.Insights {
		insightColor.Fprintf(w, "  [%s] %s\n", insights.Avatar(in.Theologian), in.Theologian)
		mutedColor.Fprintf(w, "      %q\n", in.Commentary)
	}
}

// printHistoryItem prints one history entry.
func printHistoryItem(w io.Writer, item model.HistoryItem, now time.Time, width int) {
	userColor.Fprintln(w, item.Title)
	fmt.Fprintf(w, "  %s\n", util.TruncateWidth(util.SingleLine(item.Preview), max(width-2, 10)))
	mutedColor.Fprintf(w, "  %s · %s · %d messages\n",
		item.Stamp(), util.RelativeAge(item.Timestamp, now), item.MessageCount)
}

// printError prints a non-fatal error.
func printError(w io.Writer, err error) {
	errorColor.Fprintf(w, "[Error] ")
	fmt.Fprintln(w, err)
}

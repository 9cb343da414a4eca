// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jeranaias/lampstand/internal/history"
)

// newHistoryCmd prints the conversation history, filtered like the drawer.
func newHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history [query]",
		Short: "List past conversations",
		Long:  "List past conversations. A query keeps entries whose title or preview contains it, ignoring case.",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			query := ""
			if len(args) == 1 {
				query = args[0]
			}

			w := cmd.OutOrStdout()
			width := terminalWidth(80)
			now := time.Now()

			title(w, width, "CHAT HISTORY")
			drawer := history.NewDrawer(history.Seed(now))
			drawer.SetQuery(query)
			items := drawer.Visible()
			if len(items) == 0 {
				mutedColor.Fprintln(w, "No conversations found")
				return
			}
			for i, item := range items {
				if i > 0 {
					w.Write([]byte("\n"))
				}
				printHistoryItem(w, item, now, width)
			}
			if q := strings.TrimSpace(query); q != "" {
				mutedColor.Fprintf(w, "\n%d of %d match %q\n", len(items), len(drawer.Items()), q)
			}
		},
	}
}

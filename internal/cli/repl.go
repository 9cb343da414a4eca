// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/peterh/liner"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/jeranaias/lampstand/internal/config"
	"github.com/jeranaias/lampstand/internal/export"
	"github.com/jeranaias/lampstand/internal/history"
	"github.com/jeranaias/lampstand/internal/logging"
	"github.com/jeranaias/lampstand/internal/notes"
	"github.com/jeranaias/lampstand/internal/session"
	"github.com/jeranaias/lampstand/internal/util"
)

const replPrompt = "lampstand> "

// replCommands is the /help listing.
var replCommands = [][2]string{
	{"/history [query]", "list past conversations"},
	{"/note TITLE | BODY [| TAGS]", "save a quick note"},
	{"/notes", "list notes"},
	{"/export [md|json] [DIR]", "save the conversation to a file"},
	{"/status", "show the session state"},
	{"/quit", "exit"},
}

func newChatCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start a line-mode conversation",
		Long: `Start a line-mode conversation.

Commands:
  /help                       Show commands
  /history [query]            List past conversations
  /note TITLE | BODY [| TAGS] Save a quick note
  /notes                      List notes
  /export [md|json] [DIR]     Save the conversation to a file
  /quit                       Exit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL(cmd.Context(), e, cmd.OutOrStdout())
		},
	}
}

// =============================================================================
// INPUT HISTORY
// =============================================================================

// lineInput provides line editing with a persistent input history.
type lineInput struct {
	line        *liner.State
	historyFile string
}

func newLineInput() *lineInput {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	dir, err := config.ConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	in := &lineInput{line: line, historyFile: filepath.Join(dir, "chat_history")}
	if f, err := os.Open(in.historyFile); err == nil {
		in.line.ReadHistory(f)
		f.Close()
	}
	return in
}

// read prompts for one line; non-blank input joins the history.
func (in *lineInput) read(prompt string) (string, error) {
	s, err := in.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(s) != "" {
		in.line.AppendHistory(s)
	}
	return s, nil
}

// close saves the history with owner-only permissions.
func (in *lineInput) close() {
	if err := os.MkdirAll(filepath.Dir(in.historyFile), 0o700); err == nil {
		if f, err := os.OpenFile(in.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600); err == nil {
			in.line.WriteHistory(f)
			f.Close()
		}
	}
	in.line.Close()
}

// =============================================================================
// REPL
// =============================================================================

// repl is one line-mode conversation.
type repl struct {
	mgr    *session.Manager
	drawer *history.Drawer
	notes  *notes.Collection
	out    io.Writer
	width  int
	now    func() time.Time

	exportDir string
}

func runREPL(ctx context.Context, e *env, out io.Writer) error {
	mgr, _ := newSession(ctx, e.cfg)
	defer mgr.Close()

	r := &repl{
		mgr:    mgr,
		drawer: history.NewDrawer(history.Seed(time.Now())),
		notes:  notes.NewCollection(),
		out:    out,
		width:  terminalWidth(80),
		now:    time.Now,

		exportDir: defaultExportDir(),
	}

	in := newLineInput()
	defer in.close()

	title(out, r.width, "BIBLE AI")
	mutedColor.Fprintln(out, "Ask about a verse, seek guidance, or explore biblical themes. /help for commands.")

	log := logging.FromContext(logging.WithSessionID(ctx, mgr.SessionID()))
	logEvents(mgr, log)
	log.Info("repl started")
	defer func() { log.Info("repl stopped", "messages", mgr.Len()) }()

	for {
		line, err := in.read(replPrompt)
		if err != nil {
			// Ctrl+C, Ctrl+D and end of input all end the conversation.
			fmt.Fprintln(out)
			return nil
		}
		if !r.handle(line) {
			return nil
		}
	}
}

// handle processes one input line. It reports false when the user asked
// to leave.
func (r *repl) handle(line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return true
	}
	if strings.HasPrefix(input, "/") {
		return r.command(input)
	}
	if strings.EqualFold(input, "exit") || strings.EqualFold(input, "quit") {
		return false
	}

	if err := r.ask(line); err != nil {
		printError(r.out, err)
	}
	return true
}

// ask submits text and waits for the reply.
func (r *repl) ask(text string) error {
	msg, err := r.mgr.Submit(text)
	if err != nil {
		return errors.Wrap(err, "submit")
	}
	printUser(r.out, msg)
	mutedColor.Fprintln(r.out, "AI is thinking...")

	reply, err := r.mgr.Await()
	if errors.Is(err, session.ErrClosed) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "reply")
	}
	fmt.Fprintln(r.out)
	printReply(r.out, reply)
	separator(r.out, r.width)
	return nil
}

// command runs a slash command.
func (r *repl) command(input string) bool {
	name, rest, _ := strings.Cut(input, " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToLower(name) {
	case "/quit", "/q", "/exit":
		return false

	case "/help", "/h":
		for _, c := range replCommands {
			fmt.Fprintln(r.out, util.PadRight(c[0], 29)+c[1])
		}

	case "/status":
		st := r.mgr.GetStatus()
		fmt.Fprintln(r.out, util.PadRight("session", 10)+st.SessionID)
		fmt.Fprintln(r.out, util.PadRight("state", 10)+st.State.String())
		fmt.Fprintf(r.out, "%s%d\n", util.PadRight("messages", 10), st.MessageCount)
		fmt.Fprintln(r.out, util.PadRight("active", 10)+st.Duration.Round(time.Second).String())

	case "/history":
		r.drawer.SetQuery(rest)
		items := r.drawer.Visible()
		if len(items) == 0 {
			mutedColor.Fprintln(r.out, "No conversations found")
			break
		}
		now := r.now()
		for _, item := range items {
			printHistoryItem(r.out, item, now, r.width)
		}

	case "/note":
		parts := strings.SplitN(rest, "|", 3)
		d := notes.Draft{Title: strings.TrimSpace(parts[0])}
		if len(parts) > 1 {
			d.Body = strings.TrimSpace(parts[1])
		}
		if len(parts) > 2 {
			d.Tags = parts[2]
		}
		note, _, ok := r.notes.Save(d)
		if !ok {
			printError(r.out, errors.New("a note needs a title and a body"))
			break
		}
		formatColor.Fprintf(r.out, "Saved %q\n", note.Title)

	case "/notes":
		list := r.notes.List()
		if len(list) == 0 {
			mutedColor.Fprintln(r.out, "No notes yet")
			break
		}
		for _, n := range list {
			userColor.Fprintln(r.out, n.Title)
			fmt.Fprintf(r.out, "  %s\n", n.Body)
			if n.HasTags() {
				citationColor.Fprintf(r.out, "  #%s\n", strings.Join(n.Tags, " #"))
			}
		}

	case "/export":
		format, dir, _ := strings.Cut(rest, " ")
		path, err := r.export(format, strings.TrimSpace(dir))
		if err != nil {
			printError(r.out, err)
			break
		}
		formatColor.Fprintf(r.out, "Exported to %s\n", path)

	default:
		printError(r.out, errors.Errorf("unknown command %s (try /help)", name))
	}
	return true
}

// export writes the conversation and notes to dir, or the default export
// directory when dir is empty.
func (r *repl) export(format, dir string) (string, error) {
	exporter, err := export.ByName(format, nil)
	if err != nil {
		return "", err
	}
	if dir == "" {
		dir = r.exportDir
	}
	t := export.Transcript{
		Title:     r.mgr.Summary().Title,
		SessionID: r.mgr.SessionID(),
		Exported:  r.now(),
		Messages:  r.mgr.Messages(),
		Notes:     r.notes.List(),
	}
	return export.ExportToFile(t, exporter, dir)
}

// defaultExportDir is ~/.lampstand/exports, or the working directory when
// the home directory is unknown.
func defaultExportDir() string {
	dir, err := config.ConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, "exports")
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/lampstand/internal/notes"
	"github.com/jeranaias/lampstand/internal/ui/styles"
	"github.com/jeranaias/lampstand/internal/util"
)

// =============================================================================
// NOTES PANEL
// =============================================================================

const (
	fieldTitle = iota
	fieldBody
	fieldTags
	fieldCount
)

// notesPanel is the quick notes overlay: a create form above the list.
type notesPanel struct {
	coll *notes.Collection
	keys KeyMap

	creating bool
	field    int
	title    textinput.Model
	body     textarea.Model
	tags     textinput.Model

	selected int
}

func newNotesPanel(coll *notes.Collection, keys KeyMap) notesPanel {
	title := textinput.New()
	title.Placeholder = "Note title..."
	title.Prompt = ""
	title.CharLimit = 200

	body := textarea.New()
	body.Placeholder = "Write your note..."
	body.ShowLineNumbers = false
	body.Prompt = ""
	body.SetHeight(3)

	tags := textinput.New()
	tags.Placeholder = "Tags (comma separated)..."
	tags.Prompt = ""
	tags.CharLimit = 200

	return notesPanel{
		coll:  coll,
		keys:  keys,
		title: title,
		body:  body,
		tags:  tags,
	}
}

// draft returns the form contents.
func (p notesPanel) draft() notes.Draft {
	return notes.Draft{
		Title: p.title.Value(),
		Body:  p.body.Value(),
		Tags:  p.tags.Value(),
	}
}

func (p *notesPanel) setDraft(d notes.Draft) {
	p.title.SetValue(d.Title)
	p.body.SetValue(d.Body)
	p.tags.SetValue(d.Tags)
}

// startCreating opens the form with the title focused. A draft left by a
// cancelled form is kept.
func (p *notesPanel) startCreating() tea.Cmd {
	p.creating = true
	return p.focusField(fieldTitle)
}

// cancel closes the form without discarding the draft.
func (p *notesPanel) cancel() {
	p.creating = false
	p.title.Blur()
	p.body.Blur()
	p.tags.Blur()
}

// save stores the draft. On success the form is cleared and closed; a
// rejected draft stays in the form.
func (p *notesPanel) save() bool {
	_, remaining, ok := p.coll.Save(p.draft())
	if !ok {
		return false
	}
	p.setDraft(remaining)
	p.cancel()
	p.selected = 0
	return true
}

func (p *notesPanel) focusField(field int) tea.Cmd {
	p.field = field
	p.title.Blur()
	p.body.Blur()
	p.tags.Blur()
	switch field {
	case fieldBody:
		return p.body.Focus()
	case fieldTags:
		return p.tags.Focus()
	default:
		return p.title.Focus()
	}
}

// update handles a key while the panel is open. It reports whether the
// panel consumed the key.
func (p notesPanel) update(msg tea.KeyMsg) (notesPanel, tea.Cmd, bool) {
	if p.creating {
		return p.updateForm(msg)
	}

	list := p.coll.List()
	switch {
	case key.Matches(msg, p.keys.NewNote):
		cmd := p.startCreating()
		return p, cmd, true

	case key.Matches(msg, p.keys.Up):
		if p.selected > 0 {
			p.selected--
		}
		return p, nil, true

	case key.Matches(msg, p.keys.Down):
		if p.selected < len(list)-1 {
			p.selected++
		}
		return p, nil, true

	case key.Matches(msg, p.keys.DeleteNote):
		if p.selected < len(list) {
			p.coll.Delete(list[p.selected].ID)
			if p.selected >= p.coll.Len() && p.selected > 0 {
				p.selected--
			}
		}
		return p, nil, true
	}
	return p, nil, false
}

func (p notesPanel) updateForm(msg tea.KeyMsg) (notesPanel, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, p.keys.Close):
		p.cancel()
		return p, nil, true

	case key.Matches(msg, p.keys.SaveNote):
		p.save()
		return p, nil, true

	case key.Matches(msg, p.keys.Next):
		cmd := p.focusField((p.field + 1) % fieldCount)
		return p, cmd, true

	case msg.Type == tea.KeyShiftTab:
		cmd := p.focusField((p.field + fieldCount - 1) % fieldCount)
		return p, cmd, true

	case msg.Type == tea.KeyEnter && p.field != fieldBody:
		if p.field == fieldTags {
			p.save()
			return p, nil, true
		}
		cmd := p.focusField(p.field + 1)
		return p, cmd, true
	}

	var cmd tea.Cmd
	switch p.field {
	case fieldBody:
		p.body, cmd = p.body.Update(msg)
	case fieldTags:
		p.tags, cmd = p.tags.Update(msg)
	default:
		p.title, cmd = p.title.Update(msg)
	}
	return p, cmd, true
}

// =============================================================================
// VIEW
// =============================================================================

func (p notesPanel) view(theme *styles.Theme, width int) string {
	inner := max(width-4, 10)
	p.title.Width = inner
	p.tags.Width = inner
	p.body.SetWidth(inner)

	var b strings.Builder
	b.WriteString(theme.PanelTitle.Render("✎ Quick Notes"))
	b.WriteString("\n")

	if p.creating {
		b.WriteString(theme.FieldLabel.Render("Title") + "\n" + p.title.View() + "\n")
		b.WriteString(theme.FieldLabel.Render("Note") + "\n" + p.body.View() + "\n")
		b.WriteString(theme.FieldLabel.Render("Tags") + "\n" + p.tags.View() + "\n")
		b.WriteString(theme.Help.Render("C-s save · Tab next field · Esc cancel"))
		b.WriteString("\n\n")
	}

	list := p.coll.List()
	if len(list) == 0 {
		b.WriteString(theme.Muted.Render("No notes yet"))
		b.WriteString("\n")
		b.WriteString(theme.Help.Render("Press n to create one"))
		return theme.Panel.Width(width).Render(b.String())
	}

	for i, n := range list {
		titleStyle := theme.ItemTitle
		prefix := "  "
		if i == p.selected && !p.creating {
			titleStyle = theme.ItemSelected
			prefix = "› "
		}
		b.WriteString(titleStyle.Render(prefix + util.TruncateWidth(n.Title, inner-2)))
		b.WriteString("\n")
		b.WriteString(theme.Muted.Width(inner).PaddingLeft(2).Render(n.Body))
		b.WriteString("\n")
		if n.HasTags() {
			tags := make([]string, len(n.Tags))
			for j, t := range n.Tags {
				tags[j] = "#" + t
			}
			b.WriteString("  " + theme.Tag.Render(strings.Join(tags, " ")))
			b.WriteString("\n")
		}
		b.WriteString("  " + theme.ItemMeta.Render(n.CreatedAt.Format("Jan 2, 15:04")))
		b.WriteString("\n")
	}
	if !p.creating {
		b.WriteString(theme.Help.Render("n new · d delete · Esc close"))
	}
	return theme.Panel.Width(width).Render(b.String())
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package notes

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTags(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"", []string{}},
		{"faith, trust", []string{"faith", "trust"}},
		{" faith ,, trust , ", []string{"faith", "trust"}},
		{"grace,grace", []string{"grace", "grace"}},
		{",,,", []string{}},
		{"one", []string{"one"}},
		{"psalm 23, new testament", []string{"psalm 23", "new testament"}},
	}

	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseTags(tc.raw))
		})
	}
}

func TestCreate_RejectsBlankFields(t *testing.T) {
	c := NewCollection()

	tests := []struct {
		name, title, body string
	}{
		{"empty title", "", "Trust God"},
		{"empty body", "Faith", ""},
		{"whitespace title", "   ", "Trust God"},
		{"whitespace body", "Faith", "\n\t"},
		{"both empty", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := c.Create(tc.title, tc.body, "tag")
			assert.False(t, ok)
			assert.Equal(t, 0, c.Len())
		})
	}
}

func TestCreate_PrependsNoteWithTags(t *testing.T) {
	c := NewCollection()

	first, ok := c.Create("Hope", "Romans 15:13", "")
	require.True(t, ok)

	note, ok := c.Create("Faith", "Trust God", "faith, trust")
	require.True(t, ok)

	assert.Equal(t, "Faith", note.Title)
	assert.Equal(t, "Trust God", note.Body)
	assert.Equal(t, []string{"faith", "trust"}, note.Tags)
	assert.NotEmpty(t, note.ID)
	assert.False(t, note.CreatedAt.IsZero())

	list := c.List()
	require.Len(t, list, 2)
	assert.Equal(t, note.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
	assert.False(t, list[1].HasTags())
}

func TestCreate_FreshIDs(t *testing.T) {
	c := NewCollection()
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		note, ok := c.Create("t"+strconv.Itoa(i), "b", "")
		require.True(t, ok)
		require.False(t, seen[note.ID])
		seen[note.ID] = true
	}
}

func TestDelete(t *testing.T) {
	c := NewCollection()
	a, _ := c.Create("A", "a", "")
	b, _ := c.Create("B", "b", "")
	d, _ := c.Create("C", "c", "")

	assert.True(t, c.Delete(b.ID))

	list := c.List()
	require.Len(t, list, 2)
	assert.Equal(t, d.ID, list[0].ID)
	assert.Equal(t, a.ID, list[1].ID)
}

func TestDelete_UnknownIDLeavesListUnchanged(t *testing.T) {
	c := NewCollection()
	c.Create("A", "a", "x")
	c.Create("B", "b", "y")
	before := c.List()

	assert.False(t, c.Delete("does-not-exist"))
	assert.Equal(t, before, c.List())
}

func TestList_ReturnsCopy(t *testing.T) {
	c := NewCollection()
	c.Create("A", "a", "")

	list := c.List()
	list[0].Title = "changed"

	assert.Equal(t, "A", c.List()[0].Title)
}

func TestSave_Draft(t *testing.T) {
	c := NewCollection()

	rejected := Draft{Title: "Only a title"}
	_, kept, ok := c.Save(rejected)
	assert.False(t, ok)
	assert.Equal(t, rejected, kept)

	note, cleared, ok := c.Save(Draft{Title: "Faith", Body: "Trust God", Tags: "faith, trust"})
	require.True(t, ok)
	assert.True(t, cleared.IsZero())
	assert.Equal(t, []string{"faith", "trust"}, note.Tags)
	assert.Equal(t, 1, c.Len())
}

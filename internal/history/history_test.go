// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/lampstand/internal/model"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func titles(items []model.HistoryItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Title
	}
	return out
}

func TestSeed(t *testing.T) {
	items := Seed(testNow)
	require.Len(t, items, 3)

	assert.Equal(t, "Understanding John 3:16", items[0].Title)
	assert.Equal(t, testNow.Add(-30*time.Minute), items[0].Timestamp)
	assert.Equal(t, 8, items[0].MessageCount)

	assert.Equal(t, "Prayer and Faith", items[1].Title)
	assert.Equal(t, testNow.Add(-2*time.Hour), items[1].Timestamp)
	assert.Equal(t, 12, items[1].MessageCount)

	assert.Equal(t, "Psalms 23 Commentary", items[2].Title)
	assert.Equal(t, testNow.Add(-24*time.Hour), items[2].Timestamp)
	assert.Equal(t, 15, items[2].MessageCount)
}

func TestFilter(t *testing.T) {
	items := Seed(testNow)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty query returns all", "", []string{"Understanding John 3:16", "Prayer and Faith", "Psalms 23 Commentary"}},
		{"title match", "Psalm", []string{"Psalms 23 Commentary"}},
		{"case insensitive", "pSaLm", []string{"Psalms 23 Commentary"}},
		{"preview match", "shepherd", []string{"Psalms 23 Commentary"}},
		{"title or preview", "faith", []string{"Prayer and Faith"}},
		{"matches several in original order", "o", []string{"Understanding John 3:16", "Prayer and Faith", "Psalms 23 Commentary"}},
		{"no match", "Revelation", []string{}},
		{"apostrophe in preview", "god's", []string{"Understanding John 3:16"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, titles(Filter(items, tc.query)))
		})
	}
}

func TestFilter_Idempotent(t *testing.T) {
	items := Seed(testNow)
	for _, q := range []string{"", "Psalm", "faith", "love", "zzz"} {
		once := Filter(items, q)
		twice := Filter(once, q)
		assert.Equal(t, once, twice, "query %q", q)
	}
}

func TestFilter_DoesNotModifyInput(t *testing.T) {
	items := Seed(testNow)
	before := titles(items)

	out := Filter(items, "")
	out[0].Title = "changed"

	assert.Equal(t, before, titles(items))
}

func TestDrawer(t *testing.T) {
	d := NewDrawer(Seed(testNow))
	assert.Len(t, d.Visible(), 3)

	d.SetQuery("Ps")
	assert.Equal(t, "Ps", d.Query())
	assert.Equal(t, []string{"Psalms 23 Commentary"}, titles(d.Visible()))

	d.SetQuery("Psx")
	assert.Empty(t, d.Visible())
	assert.Len(t, d.Items(), 3)

	d.SetQuery("")
	assert.Len(t, d.Visible(), 3)
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package nav describes the top navigation bar: its destinations, the
// notification badge and the profile menu.
package nav

import "strconv"

// Route is a navigation destination.
type Route string

const (
	RouteLanding     Route = "/"
	RouteDashboard   Route = "/dashboard"
	RouteStudyRooms  Route = "/study-rooms"
	RouteDevotionals Route = "/devotionals"
	RouteNotes       Route = "/notes"
	RouteProfile     Route = "/profile"
)

// Link is one entry in the navigation bar.
type Link struct {
	Route Route
	Title string
	Key   string // shortcut shown in the bar
}

// Links returns the bar's destinations in display order.
func Links() []Link {
	return []Link{
		{Route: RouteDashboard, Title: "Bible AI", Key: "f1"},
		{Route: RouteStudyRooms, Title: "Study Rooms", Key: "f2"},
		{Route: RouteDevotionals, Title: "Daily Devotionals", Key: "f3"},
		{Route: RouteNotes, Title: "Notes & Bookmarks", Key: "f4"},
		{Route: RouteProfile, Title: "Profile", Key: "f5"},
	}
}

// Title returns the display title of r.
func (r Route) Title() string {
	if r == RouteLanding {
		return "Welcome"
	}
	for _, l := range Links() {
		if l.Route == r {
			return l.Title
		}
	}
	return string(r)
}

// Bar is the navigation state threaded through the root view.
type Bar struct {
	Current       Route
	Notifications int

	HistoryOpen bool
	NotesOpen   bool
	ProfileOpen bool
	Listening   bool // voice input toggle; recognition is not implemented
}

// NewBar creates a bar on the dashboard with a fixed badge count.
func NewBar(notifications int) Bar {
	return Bar{Current: RouteDashboard, Notifications: notifications}
}

// Navigate switches to r and closes the profile menu.
func (b *Bar) Navigate(r Route) {
	b.Current = r
	b.ProfileOpen = false
}

// ToggleHistory opens or closes the history drawer.
func (b *Bar) ToggleHistory() { b.HistoryOpen = !b.HistoryOpen }

// ToggleNotes opens or closes the notes panel.
func (b *Bar) ToggleNotes() { b.NotesOpen = !b.NotesOpen }

// ToggleProfile opens or closes the profile menu.
func (b *Bar) ToggleProfile() { b.ProfileOpen = !b.ProfileOpen }

// ToggleListening flips the voice input indicator.
func (b *Bar) ToggleListening() { b.Listening = !b.Listening }

// Badge returns the badge text, or "" when there is nothing to show.
func (b Bar) Badge() string {
	switch {
	case b.Notifications <= 0:
		return ""
	case b.Notifications > 99:
		return "99+"
	default:
		return strconv.Itoa(b.Notifications)
	}
}

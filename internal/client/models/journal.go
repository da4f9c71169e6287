// Package models defines the records the client keeps in its local database.
package models

import "time"

// JournalEntry is one saved note from the mental health page.
type JournalEntry struct {
	// ID is assigned by the store when empty.
	ID       string
	Username string
	Mood     string
	Text     string
	// CreatedAt is kept with millisecond precision.
	CreatedAt time.Time
}

package model

import "time"

// Setting is one row of the local key/value table. Keys are grouped by a
// dotted prefix: account., server., user., sync. and prefs.
type Setting struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

package model

import "time"

// FailedUpdateThreshold is the number of consecutive server-side update
// errors after which a feed is considered failed.
const FailedUpdateThreshold = 50

type Feed struct {
	ID          int64
	URL         string
	Name        *string
	Link        *string
	FaviconLink *string
	Added       *time.Time
	FolderID    int64

	// UnreadCount and StarredCount follow every flag flip of the feed's
	// items. StarredCount is never sent by the server.
	UnreadCount  int
	StarredCount int

	Ordering         int
	Pinned           bool
	UpdateErrorCount int
	LastUpdateError  *string
}

func (f Feed) IsConsideredFailed() bool {
	return f.UpdateErrorCount >= FailedUpdateThreshold
}

// Title returns the feed name, falling back to its URL for placeholder
// feeds that have not been synced yet.
func (f Feed) Title() string {
	if f.Name != nil && *f.Name != "" {
		return *f.Name
	}
	return f.URL
}

package model

import "time"

type Item struct {
	ID            int64
	GUID          string
	GUIDHash      string
	URL           *string
	Title         *string
	Author        *string
	PubDate       *time.Time
	UpdatedAt     *time.Time
	Body          *string
	EnclosureMime *string
	EnclosureLink *string
	FeedID        int64

	Unread         bool
	UnreadChanged  bool
	Starred        bool
	StarredChanged bool

	LastModified    int64
	Fingerprint     *string
	ContentHash     *string
	Active          bool
	ReadableContent *string
}

// IsReduced reports whether the item only carries state (id, hash and
// flags) and must be merged into an already stored full item.
func (i Item) IsReduced() bool {
	return i.Title == nil
}

// HasChanges reports whether a local flag flip is waiting to be uploaded.
func (i Item) HasChanges() bool {
	return i.UnreadChanged || i.StarredChanged
}

// EffectiveUpdatedAt returns UpdatedAt, or PubDate when the server never
// sent an update date.
func (i Item) EffectiveUpdatedAt() *time.Time {
	if i.UpdatedAt != nil {
		return i.UpdatedAt
	}
	return i.PubDate
}

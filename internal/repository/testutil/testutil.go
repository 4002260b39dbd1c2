package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"ocreader/internal/db"
	"ocreader/internal/model"
)

// NewTestDB opens a migrated database in a per-test temp dir.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func SeedFolder(t *testing.T, conn *sql.DB, id int64, name string) int64 {
	t.Helper()

	if _, err := conn.Exec(`INSERT INTO folders (id, name) VALUES (?, ?)`, id, name); err != nil {
		t.Fatalf("seed folder: %v", err)
	}
	return id
}

// SeedFeed inserts the feed as is, counters included.
func SeedFeed(t *testing.T, conn *sql.DB, feed model.Feed) int64 {
	t.Helper()

	var name interface{}
	if feed.Name != nil {
		name = *feed.Name
	}
	_, err := conn.Exec(
		`INSERT INTO feeds (id, url, name, folder_id, unread_count, starred_count, ordering, pinned, update_error_count)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		feed.ID, feed.URL, name, feed.FolderID, feed.UnreadCount, feed.StarredCount,
		feed.Ordering, feed.Pinned, feed.UpdateErrorCount,
	)
	if err != nil {
		t.Fatalf("seed feed: %v", err)
	}
	return feed.ID
}

// SeedItem inserts the item without touching feed counters.
func SeedItem(t *testing.T, conn *sql.DB, item model.Item) int64 {
	t.Helper()

	var title, contentHash, pubDate interface{}
	if item.Title != nil {
		title = *item.Title
	}
	if item.ContentHash != nil {
		contentHash = *item.ContentHash
	}
	if item.PubDate != nil {
		pubDate = item.PubDate.UTC().Format("2006-01-02T15:04:05.000Z07:00")
	}
	_, err := conn.Exec(
		`INSERT INTO items (id, guid, guid_hash, title, pub_date, feed_id, unread, unread_changed, starred, starred_changed, last_modified, content_hash)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.GUID, item.GUIDHash, title, pubDate, item.FeedID,
		item.Unread, item.UnreadChanged, item.Starred, item.StarredChanged, item.LastModified, contentHash,
	)
	if err != nil {
		t.Fatalf("seed item: %v", err)
	}
	return item.ID
}

func StringPtr(s string) *string {
	return &s
}

func TimePtr(t time.Time) *time.Time {
	return &t
}

package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"ocreader/internal/model"
)

type FeedRepository interface {
	Insert(ctx context.Context, feed model.Feed) (bool, error)
	GetByID(ctx context.Context, id int64) (model.Feed, error)
	List(ctx context.Context, folderID *int64) ([]model.Feed, error)
	ListFailed(ctx context.Context) ([]model.Feed, error)
	UpdateFolder(ctx context.Context, id int64, folderID int64) error
	UpdateName(ctx context.Context, id int64, name string) error
	UpdateError(ctx context.Context, id int64, count int, lastError *string) error
	RecalculateCounts(ctx context.Context) error
	Delete(ctx context.Context, id int64) error
	DeleteMissing(ctx context.Context, keep []int64) (int64, error)
}

type feedRepository struct {
	db dbtx
}

func NewFeedRepository(db dbtx) FeedRepository {
	return &feedRepository{db: db}
}

const feedColumns = `id, url, name, link, favicon_link, added, folder_id, unread_count, starred_count, ordering, pinned, update_error_count, last_update_error`

// Insert stores or refreshes a feed sent by the server. Feeds without a
// name are skipped and reported as not inserted. The starred counter is
// kept because the server never sends it.
func (r *feedRepository) Insert(ctx context.Context, feed model.Feed) (bool, error) {
	if feed.Name == nil || *feed.Name == "" {
		return false, nil
	}

	err := withTx(ctx, r.db, func(tx dbtx) error {
		if err := ensureFolder(ctx, tx, feed.FolderID); err != nil {
			return err
		}
		_, err := tx.ExecContext(
			ctx,
			`INSERT INTO feeds (id, url, name, link, favicon_link, added, folder_id, unread_count, starred_count, ordering, pinned, update_error_count, last_update_error)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, 0, ?, ?, ?, ?)
			 ON CONFLICT(id) DO UPDATE SET
			   url = excluded.url,
			   name = excluded.name,
			   link = excluded.link,
			   favicon_link = excluded.favicon_link,
			   added = excluded.added,
			   folder_id = excluded.folder_id,
			   unread_count = excluded.unread_count,
			   ordering = excluded.ordering,
			   pinned = excluded.pinned,
			   update_error_count = excluded.update_error_count,
			   last_update_error = excluded.last_update_error`,
			feed.ID,
			feed.URL,
			*feed.Name,
			nullableString(feed.Link),
			nullableString(feed.FaviconLink),
			nullableTime(feed.Added),
			feed.FolderID,
			feed.UnreadCount,
			feed.Ordering,
			boolToInt(feed.Pinned),
			feed.UpdateErrorCount,
			nullableString(feed.LastUpdateError),
		)
		if err != nil {
			return fmt.Errorf("insert feed: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *feedRepository) GetByID(ctx context.Context, id int64) (model.Feed, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+feedColumns+` FROM feeds WHERE id = ?`, id)
	feed, err := scanFeed(row)
	if err != nil {
		return model.Feed{}, fmt.Errorf("get feed: %w", err)
	}
	return feed, nil
}

func (r *feedRepository) List(ctx context.Context, folderID *int64) ([]model.Feed, error) {
	query := `SELECT ` + feedColumns + ` FROM feeds ORDER BY pinned DESC, ordering, name COLLATE NOCASE, id`
	args := []interface{}{}
	if folderID != nil {
		query = `SELECT ` + feedColumns + ` FROM feeds WHERE folder_id = ? ORDER BY pinned DESC, ordering, name COLLATE NOCASE, id`
		args = append(args, *folderID)
	}
	return r.query(ctx, query, args...)
}

func (r *feedRepository) ListFailed(ctx context.Context) ([]model.Feed, error) {
	return r.query(
		ctx,
		`SELECT `+feedColumns+` FROM feeds WHERE update_error_count >= ? ORDER BY name COLLATE NOCASE, id`,
		model.FailedUpdateThreshold,
	)
}

func (r *feedRepository) query(ctx context.Context, query string, args ...interface{}) ([]model.Feed, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list feeds: %w", err)
	}
	defer rows.Close()

	var feeds []model.Feed
	for rows.Next() {
		feed, err := scanFeed(rows)
		if err != nil {
			return nil, fmt.Errorf("scan feed: %w", err)
		}
		feeds = append(feeds, feed)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate feeds: %w", err)
	}

	return feeds, nil
}

func (r *feedRepository) UpdateFolder(ctx context.Context, id int64, folderID int64) error {
	return withTx(ctx, r.db, func(tx dbtx) error {
		if err := ensureFolder(ctx, tx, folderID); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `UPDATE feeds SET folder_id = ? WHERE id = ?`, folderID, id); err != nil {
			return fmt.Errorf("update feed folder: %w", err)
		}
		return nil
	})
}

func (r *feedRepository) UpdateName(ctx context.Context, id int64, name string) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE feeds SET name = ? WHERE id = ?`, name, id); err != nil {
		return fmt.Errorf("update feed name: %w", err)
	}
	return nil
}

func (r *feedRepository) UpdateError(ctx context.Context, id int64, count int, lastError *string) error {
	_, err := r.db.ExecContext(
		ctx,
		`UPDATE feeds SET update_error_count = ?, last_update_error = ? WHERE id = ?`,
		count,
		nullableString(lastError),
		id,
	)
	if err != nil {
		return fmt.Errorf("update feed error: %w", err)
	}
	return nil
}

// RecalculateCounts rebuilds every feed's unread and starred counters
// from its items.
func (r *feedRepository) RecalculateCounts(ctx context.Context) error {
	_, err := r.db.ExecContext(
		ctx,
		`UPDATE feeds SET
		   unread_count = (SELECT COUNT(*) FROM items WHERE items.feed_id = feeds.id AND items.unread = 1),
		   starred_count = (SELECT COUNT(*) FROM items WHERE items.feed_id = feeds.id AND items.starred = 1)`,
	)
	if err != nil {
		return fmt.Errorf("recalculate feed counts: %w", err)
	}
	return nil
}

func (r *feedRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM feeds WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete feed: %w", err)
	}
	return nil
}

// DeleteMissing removes every feed whose id is not in keep. Items follow
// through the foreign key cascade.
func (r *feedRepository) DeleteMissing(ctx context.Context, keep []int64) (int64, error) {
	query := `DELETE FROM feeds`
	if len(keep) > 0 {
		query += ` WHERE id NOT IN (` + strings.Repeat("?,", len(keep)-1) + `?)`
	}
	result, err := r.db.ExecContext(ctx, query, int64Args(keep)...)
	if err != nil {
		return 0, fmt.Errorf("delete missing feeds: %w", err)
	}
	return result.RowsAffected()
}

func ensureFolder(ctx context.Context, db dbtx, folderID int64) error {
	if folderID == 0 {
		return nil
	}
	if _, err := db.ExecContext(ctx, `INSERT INTO folders (id) VALUES (?) ON CONFLICT(id) DO NOTHING`, folderID); err != nil {
		return fmt.Errorf("ensure folder: %w", err)
	}
	return nil
}

// ensureFeed inserts an empty placeholder for a feed an item references
// before the feed itself is stored.
func ensureFeed(ctx context.Context, db dbtx, feedID int64) error {
	if _, err := db.ExecContext(ctx, `INSERT INTO feeds (id) VALUES (?) ON CONFLICT(id) DO NOTHING`, feedID); err != nil {
		return fmt.Errorf("ensure feed: %w", err)
	}
	return nil
}

// adjustFeedCounter moves one of the feed counters by delta without
// letting it drop below zero.
func adjustFeedCounter(ctx context.Context, db dbtx, feedID int64, column string, delta int) error {
	if delta == 0 {
		return nil
	}
	_, err := db.ExecContext(
		ctx,
		`UPDATE feeds SET `+column+` = MAX(0, `+column+` + ?) WHERE id = ?`,
		delta,
		feedID,
	)
	if err != nil {
		return fmt.Errorf("adjust feed %s: %w", column, err)
	}
	return nil
}

func scanFeed(scanner interface {
	Scan(dest ...interface{}) error
}) (model.Feed, error) {
	var feed model.Feed
	var name sql.NullString
	var link sql.NullString
	var faviconLink sql.NullString
	var added sql.NullString
	var pinned int
	var lastUpdateError sql.NullString
	if err := scanner.Scan(
		&feed.ID,
		&feed.URL,
		&name,
		&link,
		&faviconLink,
		&added,
		&feed.FolderID,
		&feed.UnreadCount,
		&feed.StarredCount,
		&feed.Ordering,
		&pinned,
		&feed.UpdateErrorCount,
		&lastUpdateError,
	); err != nil {
		return model.Feed{}, err
	}
	feed.Name = stringPtr(name)
	feed.Link = stringPtr(link)
	feed.FaviconLink = stringPtr(faviconLink)
	feed.LastUpdateError = stringPtr(lastUpdateError)
	feed.Pinned = pinned != 0

	var err error
	feed.Added, err = parseNullTime(added)
	if err != nil {
		return model.Feed{}, fmt.Errorf("parse feed added: %w", err)
	}
	return feed, nil
}

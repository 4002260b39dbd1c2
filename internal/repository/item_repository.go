package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"ocreader/internal/logger"
	"ocreader/internal/model"

	"github.com/huandu/go-sqlbuilder"
)

// ItemListFilter narrows item queries. Zero values do not filter. Offset
// only applies together with a positive Limit.
type ItemListFilter struct {
	FeedIDs        []int64
	FolderID       *int64
	UnreadOnly     bool
	StarredOnly    bool
	PublishedAfter *time.Time
	ActiveOnly     bool
	OldestFirst    bool
	Limit          int
	Offset         int
}

type ItemRepository interface {
	Insert(ctx context.Context, item model.Item) error
	GetByID(ctx context.Context, id int64) (model.Item, error)
	FindByContentHash(ctx context.Context, contentHash string) (*model.Item, error)
	List(ctx context.Context, filter ItemListFilter) ([]model.Item, error)
	Count(ctx context.Context, filter ItemListFilter) (int, error)
	SetUnread(ctx context.Context, id int64, unread bool) (bool, error)
	SetStarred(ctx context.Context, id int64, starred bool) (bool, error)
	MarkAllRead(ctx context.Context, filter ItemListFilter) (int64, error)
	ListChanged(ctx context.Context) ([]model.Item, error)
	ClearUnreadChanged(ctx context.Context, ids []int64, uploaded bool) error
	ClearStarredChanged(ctx context.Context, ids []int64, uploaded bool) error
	MaxLastModified(ctx context.Context) (int64, error)
	SetActive(ctx context.Context, filter ItemListFilter) (int64, error)
	UpdateReadableContent(ctx context.Context, id int64, content string) error
}

type itemRepository struct {
	db dbtx
}

func NewItemRepository(db dbtx) ItemRepository {
	return &itemRepository{db: db}
}

var itemColumns = []string{
	"i.id", "i.guid", "i.guid_hash", "i.url", "i.title", "i.author", "i.pub_date", "i.updated_at",
	"i.body", "i.enclosure_mime", "i.enclosure_link", "i.feed_id", "i.unread", "i.unread_changed",
	"i.starred", "i.starred_changed", "i.last_modified", "i.fingerprint", "i.content_hash",
	"i.active", "i.readable_content",
}

// Insert merges an item received from the server. A reduced item only
// carries flags, which are applied to the stored full item with the same
// content hash through the regular setters. A full item has its feed
// ensured and is upserted, keeping local flags that still wait for upload.
func (r *itemRepository) Insert(ctx context.Context, item model.Item) error {
	if item.IsReduced() {
		return r.insertReduced(ctx, item)
	}

	return withTx(ctx, r.db, func(tx dbtx) error {
		if err := ensureFeed(ctx, tx, item.FeedID); err != nil {
			return err
		}
		_, err := tx.ExecContext(
			ctx,
			`INSERT INTO items (id, guid, guid_hash, url, title, author, pub_date, updated_at, body, enclosure_mime, enclosure_link,
			   feed_id, unread, unread_changed, starred, starred_changed, last_modified, fingerprint, content_hash)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0, ?, 0, ?, ?, ?)
			 ON CONFLICT(id) DO UPDATE SET
			   guid = excluded.guid,
			   guid_hash = excluded.guid_hash,
			   url = excluded.url,
			   title = excluded.title,
			   author = excluded.author,
			   pub_date = excluded.pub_date,
			   updated_at = excluded.updated_at,
			   body = excluded.body,
			   enclosure_mime = excluded.enclosure_mime,
			   enclosure_link = excluded.enclosure_link,
			   feed_id = excluded.feed_id,
			   unread = CASE WHEN items.unread_changed = 1 THEN items.unread ELSE excluded.unread END,
			   starred = CASE WHEN items.starred_changed = 1 THEN items.starred ELSE excluded.starred END,
			   last_modified = excluded.last_modified,
			   fingerprint = excluded.fingerprint,
			   content_hash = excluded.content_hash`,
			item.ID,
			item.GUID,
			item.GUIDHash,
			nullableString(item.URL),
			nullableString(item.Title),
			nullableString(item.Author),
			nullableTime(item.PubDate),
			nullableTime(item.EffectiveUpdatedAt()),
			nullableString(item.Body),
			nullableString(item.EnclosureMime),
			nullableString(item.EnclosureLink),
			item.FeedID,
			boolToInt(item.Unread),
			boolToInt(item.Starred),
			item.LastModified,
			nullableString(item.Fingerprint),
			nullableString(item.ContentHash),
		)
		if err != nil {
			return fmt.Errorf("insert item: %w", err)
		}
		return nil
	})
}

func (r *itemRepository) insertReduced(ctx context.Context, item model.Item) error {
	var full *model.Item
	if item.ContentHash != nil {
		found, err := r.FindByContentHash(ctx, *item.ContentHash)
		if err != nil {
			return err
		}
		full = found
	} else {
		found, err := r.GetByID(ctx, item.ID)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return err
		}
		if err == nil {
			full = &found
		}
	}
	if full == nil {
		logger.Warn("full item is not available", "module", "repository", "action", "insert", "resource", "item", "result", "skipped", "item_id", item.ID)
		return nil
	}

	if _, err := r.SetUnread(ctx, full.ID, item.Unread); err != nil {
		return err
	}
	if _, err := r.SetStarred(ctx, full.ID, item.Starred); err != nil {
		return err
	}
	return nil
}

func (r *itemRepository) GetByID(ctx context.Context, id int64) (model.Item, error) {
	sb := sqlbuilder.SQLite.NewSelectBuilder()
	sb.Select(itemColumns...).From("items i").Where(sb.Equal("i.id", id))
	query, args := sb.Build()

	item, err := scanItem(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return model.Item{}, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}

func (r *itemRepository) FindByContentHash(ctx context.Context, contentHash string) (*model.Item, error) {
	sb := sqlbuilder.SQLite.NewSelectBuilder()
	sb.Select(itemColumns...).From("items i").Where(sb.Equal("i.content_hash", contentHash)).Limit(1)
	query, args := sb.Build()

	item, err := scanItem(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find item: %w", err)
	}
	return &item, nil
}

func (r *itemRepository) List(ctx context.Context, filter ItemListFilter) ([]model.Item, error) {
	sb := sqlbuilder.SQLite.NewSelectBuilder()
	sb.Select(itemColumns...).From("items i")
	filter.apply(sb)
	if filter.OldestFirst {
		sb.OrderBy("i.pub_date ASC", "i.id ASC")
	} else {
		sb.OrderBy("i.pub_date DESC", "i.id DESC")
	}
	if filter.Limit > 0 {
		sb.Limit(filter.Limit)
		if filter.Offset > 0 {
			sb.Offset(filter.Offset)
		}
	}
	query, args := sb.Build()

	return r.query(ctx, query, args...)
}

func (r *itemRepository) Count(ctx context.Context, filter ItemListFilter) (int, error) {
	sb := sqlbuilder.SQLite.NewSelectBuilder()
	sb.Select("COUNT(*)").From("items i")
	filter.apply(sb)
	query, args := sb.Build()

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	return count, nil
}

// SetUnread flips the unread flag, toggles its dirty bit and moves the
// feed's unread counter by one. It reports false when the flag already
// had the requested value.
func (r *itemRepository) SetUnread(ctx context.Context, id int64, unread bool) (bool, error) {
	return r.setFlag(ctx, id, "unread", "unread_count", unread)
}

// SetStarred is SetUnread for the starred flag and counter.
func (r *itemRepository) SetStarred(ctx context.Context, id int64, starred bool) (bool, error) {
	return r.setFlag(ctx, id, "starred", "starred_count", starred)
}

func (r *itemRepository) setFlag(ctx context.Context, id int64, column, counter string, value bool) (bool, error) {
	changed := false
	err := withTx(ctx, r.db, func(tx dbtx) error {
		var current int
		var feedID int64
		row := tx.QueryRowContext(ctx, `SELECT `+column+`, feed_id FROM items WHERE id = ?`, id)
		if err := row.Scan(&current, &feedID); err != nil {
			return fmt.Errorf("get item %s: %w", column, err)
		}
		if (current != 0) == value {
			return nil
		}

		_, err := tx.ExecContext(
			ctx,
			`UPDATE items SET `+column+` = ?, `+column+`_changed = 1 - `+column+`_changed WHERE id = ?`,
			boolToInt(value),
			id,
		)
		if err != nil {
			return fmt.Errorf("update item %s: %w", column, err)
		}

		delta := -1
		if value {
			delta = 1
		}
		if err := adjustFeedCounter(ctx, tx, feedID, counter, delta); err != nil {
			return err
		}
		changed = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return changed, nil
}

// MarkAllRead marks every unread item matching filter as read, following
// the same dirty bit and counter rules as SetUnread.
func (r *itemRepository) MarkAllRead(ctx context.Context, filter ItemListFilter) (int64, error) {
	filter.UnreadOnly = true
	filter.Limit = 0
	filter.Offset = 0

	var total int64
	err := withTx(ctx, r.db, func(tx dbtx) error {
		counts := sqlbuilder.SQLite.NewSelectBuilder()
		counts.Select("i.feed_id", "COUNT(*)").From("items i")
		filter.apply(counts)
		counts.GroupBy("i.feed_id")
		query, args := counts.Build()

		rows, err := tx.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("count unread items: %w", err)
		}
		perFeed := map[int64]int{}
		for rows.Next() {
			var feedID int64
			var count int
			if err := rows.Scan(&feedID, &count); err != nil {
				rows.Close()
				return fmt.Errorf("scan unread count: %w", err)
			}
			perFeed[feedID] = count
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return fmt.Errorf("iterate unread counts: %w", err)
		}
		rows.Close()

		ids := sqlbuilder.SQLite.NewSelectBuilder()
		ids.Select("i.id").From("items i")
		filter.apply(ids)
		subquery, subArgs := ids.Build()

		result, err := tx.ExecContext(
			ctx,
			`UPDATE items SET unread = 0, unread_changed = 1 - unread_changed WHERE id IN (`+subquery+`)`,
			subArgs...,
		)
		if err != nil {
			return fmt.Errorf("mark items read: %w", err)
		}
		total, err = result.RowsAffected()
		if err != nil {
			return fmt.Errorf("mark items read: %w", err)
		}

		for feedID, count := range perFeed {
			if err := adjustFeedCounter(ctx, tx, feedID, "unread_count", -count); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *itemRepository) ListChanged(ctx context.Context) ([]model.Item, error) {
	sb := sqlbuilder.SQLite.NewSelectBuilder()
	sb.Select(itemColumns...).
		From("items i").
		Where(sb.Or(sb.Equal("i.unread_changed", 1), sb.Equal("i.starred_changed", 1))).
		OrderBy("i.id")
	query, args := sb.Build()

	return r.query(ctx, query, args...)
}

// ClearUnreadChanged records that the server now holds uploaded as the
// unread flag of ids. Items toggled again since the upload stay dirty.
func (r *itemRepository) ClearUnreadChanged(ctx context.Context, ids []int64, uploaded bool) error {
	return r.clearChanged(ctx, "unread", ids, uploaded)
}

func (r *itemRepository) ClearStarredChanged(ctx context.Context, ids []int64, uploaded bool) error {
	return r.clearChanged(ctx, "starred", ids, uploaded)
}

func (r *itemRepository) clearChanged(ctx context.Context, column string, ids []int64, uploaded bool) error {
	if len(ids) == 0 {
		return nil
	}
	placeholders := strings.Repeat("?,", len(ids)-1) + "?"
	args := append([]any{boolToInt(uploaded)}, int64Args(ids)...)
	query := `UPDATE items SET ` + column + `_changed = (` + column + ` != ?) WHERE id IN (` + placeholders + `)`
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clear %s_changed: %w", column, err)
	}
	return nil
}

func (r *itemRepository) MaxLastModified(ctx context.Context) (int64, error) {
	var lastModified int64
	if err := r.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(last_modified), 0) FROM items`).Scan(&lastModified); err != nil {
		return 0, fmt.Errorf("max last modified: %w", err)
	}
	return lastModified, nil
}

// SetActive replaces the active snapshot with the items matching filter.
func (r *itemRepository) SetActive(ctx context.Context, filter ItemListFilter) (int64, error) {
	filter.ActiveOnly = false
	filter.Limit = 0
	filter.Offset = 0

	var total int64
	err := withTx(ctx, r.db, func(tx dbtx) error {
		if _, err := tx.ExecContext(ctx, `UPDATE items SET active = 0 WHERE active = 1`); err != nil {
			return fmt.Errorf("reset active items: %w", err)
		}

		sb := sqlbuilder.SQLite.NewSelectBuilder()
		sb.Select("i.id").From("items i")
		filter.apply(sb)
		subquery, args := sb.Build()

		result, err := tx.ExecContext(ctx, `UPDATE items SET active = 1 WHERE id IN (`+subquery+`)`, args...)
		if err != nil {
			return fmt.Errorf("set active items: %w", err)
		}
		total, err = result.RowsAffected()
		return err
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *itemRepository) UpdateReadableContent(ctx context.Context, id int64, content string) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE items SET readable_content = ? WHERE id = ?`, content, id); err != nil {
		return fmt.Errorf("update readable content: %w", err)
	}
	return nil
}

func (r *itemRepository) query(ctx context.Context, query string, args ...interface{}) ([]model.Item, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}

	return items, nil
}

func (f ItemListFilter) apply(sb *sqlbuilder.SelectBuilder) {
	if f.FolderID != nil {
		sb.Join("feeds f", "f.id = i.feed_id")
		sb.Where(sb.Equal("f.folder_id", *f.FolderID))
	}
	if len(f.FeedIDs) > 0 {
		sb.Where(sb.In("i.feed_id", sqlbuilder.Flatten(f.FeedIDs)...))
	}
	if f.UnreadOnly {
		sb.Where(sb.Equal("i.unread", 1))
	}
	if f.StarredOnly {
		sb.Where(sb.Equal("i.starred", 1))
	}
	if f.PublishedAfter != nil {
		sb.Where(sb.GreaterThan("i.pub_date", formatTime(*f.PublishedAfter)))
	}
	if f.ActiveOnly {
		sb.Where(sb.Equal("i.active", 1))
	}
}

func scanItem(scanner interface {
	Scan(dest ...interface{}) error
}) (model.Item, error) {
	var item model.Item
	var url, title, author, body sql.NullString
	var pubDate, updatedAt sql.NullString
	var enclosureMime, enclosureLink sql.NullString
	var fingerprint, contentHash, readableContent sql.NullString
	var unread, unreadChanged, starred, starredChanged, active int
	if err := scanner.Scan(
		&item.ID,
		&item.GUID,
		&item.GUIDHash,
		&url,
		&title,
		&author,
		&pubDate,
		&updatedAt,
		&body,
		&enclosureMime,
		&enclosureLink,
		&item.FeedID,
		&unread,
		&unreadChanged,
		&starred,
		&starredChanged,
		&item.LastModified,
		&fingerprint,
		&contentHash,
		&active,
		&readableContent,
	); err != nil {
		return model.Item{}, err
	}
	item.URL = stringPtr(url)
	item.Title = stringPtr(title)
	item.Author = stringPtr(author)
	item.Body = stringPtr(body)
	item.EnclosureMime = stringPtr(enclosureMime)
	item.EnclosureLink = stringPtr(enclosureLink)
	item.Fingerprint = stringPtr(fingerprint)
	item.ContentHash = stringPtr(contentHash)
	item.ReadableContent = stringPtr(readableContent)
	item.Unread = unread != 0
	item.UnreadChanged = unreadChanged != 0
	item.Starred = starred != 0
	item.StarredChanged = starredChanged != 0
	item.Active = active != 0

	var err error
	item.PubDate, err = parseNullTime(pubDate)
	if err != nil {
		return model.Item{}, fmt.Errorf("parse item pub_date: %w", err)
	}
	item.UpdatedAt, err = parseNullTime(updatedAt)
	if err != nil {
		return model.Item{}, fmt.Errorf("parse item updated_at: %w", err)
	}
	return item, nil
}

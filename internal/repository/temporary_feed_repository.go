package repository

import (
	"context"
	"fmt"

	"ocreader/internal/model"
)

type TemporaryFeedRepository interface {
	Get(ctx context.Context, id int64) (model.TemporaryFeed, error)
	Set(ctx context.Context, feed model.TemporaryFeed) error
}

type temporaryFeedRepository struct {
	db dbtx
}

func NewTemporaryFeedRepository(db dbtx) TemporaryFeedRepository {
	return &temporaryFeedRepository{db: db}
}

func (r *temporaryFeedRepository) Get(ctx context.Context, id int64) (model.TemporaryFeed, error) {
	var feed model.TemporaryFeed
	row := r.db.QueryRowContext(ctx, `SELECT id, tree_item_id, tree_item_kind, name FROM temporary_feeds WHERE id = ?`, id)
	if err := row.Scan(&feed.ID, &feed.TreeItemID, &feed.TreeItemKind, &feed.Name); err != nil {
		return model.TemporaryFeed{}, fmt.Errorf("get temporary feed: %w", err)
	}
	return feed, nil
}

func (r *temporaryFeedRepository) Set(ctx context.Context, feed model.TemporaryFeed) error {
	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO temporary_feeds (id, tree_item_id, tree_item_kind, name) VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   tree_item_id = excluded.tree_item_id,
		   tree_item_kind = excluded.tree_item_kind,
		   name = excluded.name`,
		feed.ID,
		feed.TreeItemID,
		feed.TreeItemKind,
		feed.Name,
	)
	if err != nil {
		return fmt.Errorf("set temporary feed: %w", err)
	}
	return nil
}

package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"ocreader/internal/logger"
	"ocreader/internal/model"
	"ocreader/internal/newsapi"
	"ocreader/internal/repository"
)

type ItemService interface {
	Get(ctx context.Context, id int64) (model.Item, error)
	List(ctx context.Context, ref TreeItemRef, opts ListOptions) ([]model.Item, error)
	SetRead(ctx context.Context, id int64, read bool) (model.Item, error)
	SetStarred(ctx context.Context, id int64, starred bool) (model.Item, error)
	MarkAllRead(ctx context.Context, ref TreeItemRef) (int64, error)
	PendingChanges(ctx context.Context) ([]model.Item, error)
	EncodedChanges(ctx context.Context) ([]byte, error)
}

type itemService struct {
	items repository.ItemRepository
	now   func() time.Time
}

func NewItemService(items repository.ItemRepository) ItemService {
	return &itemService{items: items, now: time.Now}
}

func (s *itemService) Get(ctx context.Context, id int64) (model.Item, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Item{}, ErrNotFound
		}
		return model.Item{}, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}

func (s *itemService) List(ctx context.Context, ref TreeItemRef, opts ListOptions) ([]model.Item, error) {
	filter, err := ItemFilterFor(ref, opts.OnlyUnread, s.now())
	if err != nil {
		return nil, err
	}
	filter.OldestFirst = opts.OldestFirst
	filter.Limit = opts.Limit
	filter.Offset = opts.Offset
	return s.items.List(ctx, filter)
}

func (s *itemService) SetRead(ctx context.Context, id int64, read bool) (model.Item, error) {
	changed, err := s.items.SetUnread(ctx, id, !read)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Item{}, ErrNotFound
		}
		return model.Item{}, fmt.Errorf("set unread: %w", err)
	}
	if changed {
		logger.Debug("item read state changed", "module", "service", "action", "update", "resource", "item", "result", "ok", "item_id", id, "read", read)
	}
	return s.Get(ctx, id)
}

func (s *itemService) SetStarred(ctx context.Context, id int64, starred bool) (model.Item, error) {
	changed, err := s.items.SetStarred(ctx, id, starred)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Item{}, ErrNotFound
		}
		return model.Item{}, fmt.Errorf("set starred: %w", err)
	}
	if changed {
		logger.Debug("item starred state changed", "module", "service", "action", "update", "resource", "item", "result", "ok", "item_id", id, "starred", starred)
	}
	return s.Get(ctx, id)
}

// MarkAllRead marks every unread item below ref as read.
func (s *itemService) MarkAllRead(ctx context.Context, ref TreeItemRef) (int64, error) {
	filter, err := ItemFilterFor(ref, true, s.now())
	if err != nil {
		return 0, err
	}
	filter.UnreadOnly = true
	marked, err := s.items.MarkAllRead(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("mark all read: %w", err)
	}
	logger.Info("items marked read", "module", "service", "action", "update", "resource", "item", "result", "ok", "kind", ref.Kind, "id", ref.ID, "count", marked)
	return marked, nil
}

// PendingChanges lists the items whose flags have not been uploaded yet.
func (s *itemService) PendingChanges(ctx context.Context) ([]model.Item, error) {
	return s.items.ListChanged(ctx)
}

// EncodedChanges renders the pending changes the way they are sent to the
// server.
func (s *itemService) EncodedChanges(ctx context.Context) ([]byte, error) {
	changed, err := s.items.ListChanged(ctx)
	if err != nil {
		return nil, err
	}
	return newsapi.EncodeItemChanges(changed)
}

package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"ocreader/internal/model"
	"ocreader/internal/repository"
)

// Ids of the virtual tree items.
const (
	AllUnreadID int64 = -10
	StarredID   int64 = -11
	FreshID     int64 = -12
)

// Kinds of tree items.
const (
	KindAllUnread = "all"
	KindStarred   = "starred"
	KindFresh     = "fresh"
	KindFolder    = "folder"
	KindFeed      = "feed"
)

// FreshWindow is how far back the Fresh tree item looks.
const FreshWindow = 24 * time.Hour

// TreeItemRef addresses an entry of the feed tree.
type TreeItemRef struct {
	Kind string
	ID   int64
}

// TreeItem is an entry of the feed tree with its counters. Folders carry
// their feeds.
type TreeItem struct {
	Kind         string
	ID           int64
	Name         string
	UnreadCount  int
	StarredCount int
	Failed       bool
	Feeds        []model.Feed
}

type ListOptions struct {
	OnlyUnread  bool
	OldestFirst bool
	Limit       int
	Offset      int
}

type TreeService interface {
	Tree(ctx context.Context) ([]TreeItem, error)
	Resolve(ctx context.Context, ref TreeItemRef) (TreeItem, error)
	Feeds(ctx context.Context, ref TreeItemRef) ([]model.Feed, error)
	Items(ctx context.Context, ref TreeItemRef, opts ListOptions) ([]model.Item, error)
	Select(ctx context.Context, slot int64, ref TreeItemRef, onlyUnread bool) (model.TemporaryFeed, error)
	Selection(ctx context.Context, slot int64) (model.TemporaryFeed, error)
	ActiveItems(ctx context.Context, opts ListOptions) ([]model.Item, error)
}

type treeService struct {
	folders   repository.FolderRepository
	feeds     repository.FeedRepository
	items     repository.ItemRepository
	temporary repository.TemporaryFeedRepository
	now       func() time.Time
}

func NewTreeService(folders repository.FolderRepository, feeds repository.FeedRepository, items repository.ItemRepository, temporary repository.TemporaryFeedRepository) TreeService {
	return &treeService{folders: folders, feeds: feeds, items: items, temporary: temporary, now: time.Now}
}

// ParseTreeItemRef builds a reference from a kind and id. Virtual items
// always get their fixed id.
func ParseTreeItemRef(kind string, id int64) (TreeItemRef, error) {
	switch kind {
	case KindAllUnread:
		return TreeItemRef{Kind: KindAllUnread, ID: AllUnreadID}, nil
	case KindStarred:
		return TreeItemRef{Kind: KindStarred, ID: StarredID}, nil
	case KindFresh:
		return TreeItemRef{Kind: KindFresh, ID: FreshID}, nil
	case KindFolder, KindFeed:
		return TreeItemRef{Kind: kind, ID: id}, nil
	}
	return TreeItemRef{}, fmt.Errorf("%w: unknown tree item kind %q", ErrInvalid, kind)
}

// ItemFilterFor translates a tree item into an item query.
func ItemFilterFor(ref TreeItemRef, onlyUnread bool, now time.Time) (repository.ItemListFilter, error) {
	switch ref.Kind {
	case KindAllUnread:
		return repository.ItemListFilter{UnreadOnly: true}, nil
	case KindStarred:
		return repository.ItemListFilter{StarredOnly: true}, nil
	case KindFresh:
		after := now.Add(-FreshWindow).UTC()
		return repository.ItemListFilter{UnreadOnly: true, PublishedAfter: &after}, nil
	case KindFolder:
		folderID := ref.ID
		return repository.ItemListFilter{FolderID: &folderID, UnreadOnly: onlyUnread}, nil
	case KindFeed:
		return repository.ItemListFilter{FeedIDs: []int64{ref.ID}, UnreadOnly: onlyUnread}, nil
	}
	return repository.ItemListFilter{}, fmt.Errorf("%w: unknown tree item kind %q", ErrInvalid, ref.Kind)
}

// Tree lists the virtual items, then folders with their feeds, then the
// feeds outside of any folder.
func (s *treeService) Tree(ctx context.Context) ([]TreeItem, error) {
	folders, err := s.folders.List(ctx)
	if err != nil {
		return nil, err
	}
	feeds, err := s.feeds.List(ctx, nil)
	if err != nil {
		return nil, err
	}

	fresh, err := s.freshCount(ctx)
	if err != nil {
		return nil, err
	}

	var unread, starred int
	byFolder := make(map[int64][]model.Feed)
	for _, feed := range feeds {
		unread += feed.UnreadCount
		starred += feed.StarredCount
		byFolder[feed.FolderID] = append(byFolder[feed.FolderID], feed)
	}

	tree := []TreeItem{
		{Kind: KindAllUnread, ID: AllUnreadID, Name: "All unread", UnreadCount: unread},
		{Kind: KindStarred, ID: StarredID, Name: "Starred", StarredCount: starred},
		{Kind: KindFresh, ID: FreshID, Name: "Fresh", UnreadCount: fresh},
	}
	for _, folder := range folders {
		item := TreeItem{Kind: KindFolder, ID: folder.ID, Name: folder.Name, Feeds: byFolder[folder.ID]}
		for _, feed := range item.Feeds {
			item.UnreadCount += feed.UnreadCount
			item.StarredCount += feed.StarredCount
		}
		tree = append(tree, item)
	}
	for _, feed := range byFolder[0] {
		tree = append(tree, feedTreeItem(feed))
	}
	return tree, nil
}

func (s *treeService) Resolve(ctx context.Context, ref TreeItemRef) (TreeItem, error) {
	switch ref.Kind {
	case KindAllUnread, KindStarred, KindFresh:
		tree, err := s.Tree(ctx)
		if err != nil {
			return TreeItem{}, err
		}
		for _, item := range tree {
			if item.Kind == ref.Kind {
				return item, nil
			}
		}
	case KindFolder:
		folder, err := s.folders.GetByID(ctx, ref.ID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return TreeItem{}, ErrNotFound
			}
			return TreeItem{}, err
		}
		feeds, err := s.feeds.List(ctx, &folder.ID)
		if err != nil {
			return TreeItem{}, err
		}
		item := TreeItem{Kind: KindFolder, ID: folder.ID, Name: folder.Name, Feeds: feeds}
		for _, feed := range feeds {
			item.UnreadCount += feed.UnreadCount
			item.StarredCount += feed.StarredCount
		}
		return item, nil
	case KindFeed:
		feed, err := s.feeds.GetByID(ctx, ref.ID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return TreeItem{}, ErrNotFound
			}
			return TreeItem{}, err
		}
		return feedTreeItem(feed), nil
	}
	return TreeItem{}, fmt.Errorf("%w: unknown tree item kind %q", ErrInvalid, ref.Kind)
}

// Feeds returns the feeds shown under a tree item. Virtual items cover
// every feed.
func (s *treeService) Feeds(ctx context.Context, ref TreeItemRef) ([]model.Feed, error) {
	switch ref.Kind {
	case KindFolder:
		return s.feeds.List(ctx, &ref.ID)
	case KindFeed:
		feed, err := s.feeds.GetByID(ctx, ref.ID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		return []model.Feed{feed}, nil
	case KindAllUnread, KindStarred, KindFresh:
		return s.feeds.List(ctx, nil)
	}
	return nil, fmt.Errorf("%w: unknown tree item kind %q", ErrInvalid, ref.Kind)
}

func (s *treeService) Items(ctx context.Context, ref TreeItemRef, opts ListOptions) ([]model.Item, error) {
	filter, err := ItemFilterFor(ref, opts.OnlyUnread, s.now())
	if err != nil {
		return nil, err
	}
	filter.OldestFirst = opts.OldestFirst
	filter.Limit = opts.Limit
	filter.Offset = opts.Offset
	return s.items.List(ctx, filter)
}

// Select stores ref in the list or pager slot and snapshots its items as
// the active set.
func (s *treeService) Select(ctx context.Context, slot int64, ref TreeItemRef, onlyUnread bool) (model.TemporaryFeed, error) {
	if slot != model.ListID && slot != model.PagerID {
		return model.TemporaryFeed{}, fmt.Errorf("%w: unknown slot %d", ErrInvalid, slot)
	}
	item, err := s.Resolve(ctx, ref)
	if err != nil {
		return model.TemporaryFeed{}, err
	}
	filter, err := ItemFilterFor(ref, onlyUnread, s.now())
	if err != nil {
		return model.TemporaryFeed{}, err
	}
	if _, err := s.items.SetActive(ctx, filter); err != nil {
		return model.TemporaryFeed{}, err
	}

	selection := model.TemporaryFeed{ID: slot, TreeItemID: item.ID, TreeItemKind: item.Kind, Name: item.Name}
	if err := s.temporary.Set(ctx, selection); err != nil {
		return model.TemporaryFeed{}, err
	}
	return selection, nil
}

func (s *treeService) Selection(ctx context.Context, slot int64) (model.TemporaryFeed, error) {
	selection, err := s.temporary.Get(ctx, slot)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.TemporaryFeed{}, ErrNotFound
		}
		return model.TemporaryFeed{}, err
	}
	return selection, nil
}

func (s *treeService) ActiveItems(ctx context.Context, opts ListOptions) ([]model.Item, error) {
	return s.items.List(ctx, repository.ItemListFilter{
		ActiveOnly:  true,
		UnreadOnly:  opts.OnlyUnread,
		OldestFirst: opts.OldestFirst,
		Limit:       opts.Limit,
		Offset:      opts.Offset,
	})
}

func (s *treeService) freshCount(ctx context.Context) (int, error) {
	filter, err := ItemFilterFor(TreeItemRef{Kind: KindFresh, ID: FreshID}, true, s.now())
	if err != nil {
		return 0, err
	}
	return s.items.Count(ctx, filter)
}

func feedTreeItem(feed model.Feed) TreeItem {
	return TreeItem{
		Kind:         KindFeed,
		ID:           feed.ID,
		Name:         feed.Title(),
		UnreadCount:  feed.UnreadCount,
		StarredCount: feed.StarredCount,
		Failed:       feed.IsConsideredFailed(),
	}
}

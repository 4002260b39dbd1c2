package repository_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"ocreader/internal/model"
	"ocreader/internal/repository"
	"ocreader/internal/repository/testutil"

	"github.com/stretchr/testify/require"
)

func seedFeedWithItems(t *testing.T, db *sql.DB) {
	t.Helper()
	testutil.SeedFolder(t, db, 1, "Tech")
	testutil.SeedFeed(t, db, model.Feed{ID: 10, URL: "u10", Name: testutil.StringPtr("Feed 10"), FolderID: 1, UnreadCount: 2, StarredCount: 1})
	testutil.SeedFeed(t, db, model.Feed{ID: 20, URL: "u20", Name: testutil.StringPtr("Feed 20"), UnreadCount: 1})

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	testutil.SeedItem(t, db, model.Item{ID: 1, FeedID: 10, Title: testutil.StringPtr("one"), Unread: true, PubDate: testutil.TimePtr(base)})
	testutil.SeedItem(t, db, model.Item{ID: 2, FeedID: 10, Title: testutil.StringPtr("two"), Unread: true, Starred: true, PubDate: testutil.TimePtr(base.Add(time.Hour))})
	testutil.SeedItem(t, db, model.Item{ID: 3, FeedID: 20, Title: testutil.StringPtr("three"), Unread: true, PubDate: testutil.TimePtr(base.Add(2 * time.Hour))})
	testutil.SeedItem(t, db, model.Item{ID: 4, FeedID: 20, Title: testutil.StringPtr("four"), PubDate: testutil.TimePtr(base.Add(3 * time.Hour))})
}

func feedCounts(t *testing.T, db *sql.DB, id int64) (int, int) {
	t.Helper()
	feed, err := repository.NewFeedRepository(db).GetByID(context.Background(), id)
	require.NoError(t, err)
	return feed.UnreadCount, feed.StarredCount
}

func TestItemRepository_InsertFullItem(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewItemRepository(db)
	ctx := context.Background()

	pub := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	item := model.Item{
		ID:       7,
		GUID:     "guid-7",
		GUIDHash: "hash-7",
		Title:    testutil.StringPtr("Hello"),
		URL:      testutil.StringPtr("https://example.com/7"),
		PubDate:  &pub,
		FeedID:   99,
		Unread:   true,
	}
	require.NoError(t, repo.Insert(ctx, item))

	stored, err := repo.GetByID(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, "Hello", *stored.Title)
	require.Equal(t, pub, *stored.PubDate)
	require.Equal(t, pub, *stored.UpdatedAt)
	require.True(t, stored.Unread)
	require.False(t, stored.UnreadChanged)

	feed, err := repository.NewFeedRepository(db).GetByID(ctx, 99)
	require.NoError(t, err)
	require.Nil(t, feed.Name)
}

func TestItemRepository_InsertKeepsPendingLocalFlags(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewItemRepository(db)
	ctx := context.Background()
	seedFeedWithItems(t, db)

	changed, err := repo.SetUnread(ctx, 1, false)
	require.NoError(t, err)
	require.True(t, changed)

	require.NoError(t, repo.Insert(ctx, model.Item{ID: 1, FeedID: 10, Title: testutil.StringPtr("one v2"), Unread: true, Starred: true}))

	stored, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "one v2", *stored.Title)
	require.False(t, stored.Unread)
	require.True(t, stored.UnreadChanged)
	require.True(t, stored.Starred)
}

func TestItemRepository_InsertReducedItem(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewItemRepository(db)
	ctx := context.Background()

	testutil.SeedFeed(t, db, model.Feed{ID: 10, URL: "u", Name: testutil.StringPtr("f"), UnreadCount: 1})
	testutil.SeedItem(t, db, model.Item{ID: 1, FeedID: 10, Title: testutil.StringPtr("full"), Unread: true, ContentHash: testutil.StringPtr("abc")})

	require.NoError(t, repo.Insert(ctx, model.Item{ID: 1, ContentHash: testutil.StringPtr("abc"), Unread: false, Starred: true}))

	stored, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "full", *stored.Title)
	require.False(t, stored.Unread)
	require.True(t, stored.Starred)

	unread, starred := feedCounts(t, db, 10)
	require.Equal(t, 0, unread)
	require.Equal(t, 1, starred)

	// Unknown content hash is skipped.
	require.NoError(t, repo.Insert(ctx, model.Item{ID: 2, ContentHash: testutil.StringPtr("missing")}))
	_, err = repo.GetByID(ctx, 2)
	require.ErrorIs(t, err, sql.ErrNoRows)
}

func TestItemRepository_SetUnreadTogglesDirtyBitAndCounter(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewItemRepository(db)
	ctx := context.Background()
	seedFeedWithItems(t, db)

	changed, err := repo.SetUnread(ctx, 1, false)
	require.NoError(t, err)
	require.True(t, changed)

	item, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	require.False(t, item.Unread)
	require.True(t, item.UnreadChanged)
	unread, _ := feedCounts(t, db, 10)
	require.Equal(t, 1, unread)

	// Same value is a no-op.
	changed, err = repo.SetUnread(ctx, 1, false)
	require.NoError(t, err)
	require.False(t, changed)
	unread, _ = feedCounts(t, db, 10)
	require.Equal(t, 1, unread)

	// Flipping back clears the dirty bit.
	changed, err = repo.SetUnread(ctx, 1, true)
	require.NoError(t, err)
	require.True(t, changed)
	item, err = repo.GetByID(ctx, 1)
	require.NoError(t, err)
	require.True(t, item.Unread)
	require.False(t, item.UnreadChanged)
	unread, _ = feedCounts(t, db, 10)
	require.Equal(t, 2, unread)
}

func TestItemRepository_SetStarred(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewItemRepository(db)
	ctx := context.Background()
	seedFeedWithItems(t, db)

	changed, err := repo.SetStarred(ctx, 1, true)
	require.NoError(t, err)
	require.True(t, changed)
	_, starred := feedCounts(t, db, 10)
	require.Equal(t, 2, starred)

	changed, err = repo.SetStarred(ctx, 2, false)
	require.NoError(t, err)
	require.True(t, changed)
	_, starred = feedCounts(t, db, 10)
	require.Equal(t, 1, starred)

	changedItems, err := repo.ListChanged(ctx)
	require.NoError(t, err)
	require.Len(t, changedItems, 2)
	require.True(t, changedItems[0].StarredChanged)
	require.False(t, changedItems[0].UnreadChanged)
}

func TestItemRepository_SetUnreadMissingItem(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewItemRepository(db)

	_, err := repo.SetUnread(context.Background(), 404, true)
	require.ErrorIs(t, err, sql.ErrNoRows)
}

func TestItemRepository_ListFilters(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewItemRepository(db)
	ctx := context.Background()
	seedFeedWithItems(t, db)

	items, err := repo.List(ctx, repository.ItemListFilter{})
	require.NoError(t, err)
	require.Len(t, items, 4)
	require.Equal(t, int64(4), items[0].ID)

	items, err = repo.List(ctx, repository.ItemListFilter{OldestFirst: true, Limit: 2, Offset: 1})
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, int64(2), items[0].ID)

	items, err = repo.List(ctx, repository.ItemListFilter{UnreadOnly: true})
	require.NoError(t, err)
	require.Len(t, items, 3)

	items, err = repo.List(ctx, repository.ItemListFilter{StarredOnly: true})
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, int64(2), items[0].ID)

	folderID := int64(1)
	items, err = repo.List(ctx, repository.ItemListFilter{FolderID: &folderID})
	require.NoError(t, err)
	require.Len(t, items, 2)

	items, err = repo.List(ctx, repository.ItemListFilter{FeedIDs: []int64{20}, UnreadOnly: true})
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, int64(3), items[0].ID)

	after := time.Date(2024, 3, 1, 13, 30, 0, 0, time.UTC)
	count, err := repo.Count(ctx, repository.ItemListFilter{PublishedAfter: &after})
	require.NoError(t, err)
	require.Equal(t, 2, count)
}

func TestItemRepository_MarkAllRead(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewItemRepository(db)
	ctx := context.Background()
	seedFeedWithItems(t, db)

	folderID := int64(1)
	marked, err := repo.MarkAllRead(ctx, repository.ItemListFilter{FolderID: &folderID})
	require.NoError(t, err)
	require.Equal(t, int64(2), marked)

	unread, _ := feedCounts(t, db, 10)
	require.Equal(t, 0, unread)
	unread, _ = feedCounts(t, db, 20)
	require.Equal(t, 1, unread)

	changed, err := repo.ListChanged(ctx)
	require.NoError(t, err)
	require.Len(t, changed, 2)
	for _, item := range changed {
		require.False(t, item.Unread)
		require.True(t, item.UnreadChanged)
	}

	marked, err = repo.MarkAllRead(ctx, repository.ItemListFilter{})
	require.NoError(t, err)
	require.Equal(t, int64(1), marked)
}

func TestItemRepository_ClearChanged(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewItemRepository(db)
	ctx := context.Background()
	seedFeedWithItems(t, db)

	_, err := repo.SetUnread(ctx, 1, false)
	require.NoError(t, err)
	_, err = repo.SetStarred(ctx, 1, true)
	require.NoError(t, err)

	require.NoError(t, repo.ClearUnreadChanged(ctx, []int64{1}, false))
	item, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	require.False(t, item.UnreadChanged)
	require.True(t, item.StarredChanged)

	require.NoError(t, repo.ClearStarredChanged(ctx, []int64{1}, true))
	require.NoError(t, repo.ClearStarredChanged(ctx, nil, true))
	changed, err := repo.ListChanged(ctx)
	require.NoError(t, err)
	require.Empty(t, changed)
}

func TestItemRepository_MaxLastModified(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewItemRepository(db)
	ctx := context.Background()

	lastModified, err := repo.MaxLastModified(ctx)
	require.NoError(t, err)
	require.Zero(t, lastModified)

	testutil.SeedFeed(t, db, model.Feed{ID: 1, URL: "u", Name: testutil.StringPtr("f")})
	testutil.SeedItem(t, db, model.Item{ID: 1, FeedID: 1, Title: testutil.StringPtr("a"), LastModified: 1700000000})
	testutil.SeedItem(t, db, model.Item{ID: 2, FeedID: 1, Title: testutil.StringPtr("b"), LastModified: 1700000500})

	lastModified, err = repo.MaxLastModified(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1700000500), lastModified)
}

func TestItemRepository_SetActive(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewItemRepository(db)
	ctx := context.Background()
	seedFeedWithItems(t, db)

	n, err := repo.SetActive(ctx, repository.ItemListFilter{FeedIDs: []int64{10}})
	require.NoError(t, err)
	require.Equal(t, int64(2), n)

	n, err = repo.SetActive(ctx, repository.ItemListFilter{FeedIDs: []int64{20}, UnreadOnly: true})
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	active, err := repo.List(ctx, repository.ItemListFilter{ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, active, 1)
	require.Equal(t, int64(3), active[0].ID)
}

func TestItemRepository_UpdateReadableContent(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewItemRepository(db)
	ctx := context.Background()
	seedFeedWithItems(t, db)

	require.NoError(t, repo.UpdateReadableContent(ctx, 1, "<p>clean</p>"))
	item, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "<p>clean</p>", *item.ReadableContent)
}

func TestItemRepository_ClearChangedKeepsLaterToggle(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewItemRepository(db)
	ctx := context.Background()
	seedFeedWithItems(t, db)

	_, err := repo.SetUnread(ctx, 1, false)
	require.NoError(t, err)
	// toggled back while "read" is in flight
	_, err = repo.SetUnread(ctx, 1, true)
	require.NoError(t, err)

	require.NoError(t, repo.ClearUnreadChanged(ctx, []int64{1}, false))
	item, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	require.True(t, item.Unread)
	require.True(t, item.UnreadChanged)
}

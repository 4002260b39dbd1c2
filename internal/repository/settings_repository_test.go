package repository_test

import (
	"context"
	"testing"

	"ocreader/internal/model"
	"ocreader/internal/repository"
	"ocreader/internal/repository/testutil"

	"github.com/stretchr/testify/require"
)

func TestSettingsRepository(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSettingsRepository(db)
	ctx := context.Background()

	missing, err := repo.Get(ctx, "account.url")
	require.NoError(t, err)
	require.Nil(t, missing)

	require.NoError(t, repo.Set(ctx, "account.url", "https://cloud.example"))
	require.NoError(t, repo.Set(ctx, "account.username", "alice"))
	require.NoError(t, repo.Set(ctx, "account.username", "bob"))
	require.NoError(t, repo.Set(ctx, "sync.last_modified", "42"))

	got, err := repo.Get(ctx, "account.username")
	require.NoError(t, err)
	require.Equal(t, "bob", got.Value)
	require.False(t, got.UpdatedAt.IsZero())

	account, err := repo.GetByPrefix(ctx, "account.")
	require.NoError(t, err)
	require.Len(t, account, 2)
	require.Equal(t, "account.url", account[0].Key)

	require.NoError(t, repo.Delete(ctx, "sync.last_modified"))
	require.NoError(t, repo.DeleteByPrefix(ctx, "account."))
	all, err := repo.GetByPrefix(ctx, "")
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestTemporaryFeedRepository(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewTemporaryFeedRepository(db)
	ctx := context.Background()

	list, err := repo.Get(ctx, model.ListID)
	require.NoError(t, err)
	require.Equal(t, model.ListID, list.ID)
	require.Empty(t, list.Name)

	require.NoError(t, repo.Set(ctx, model.TemporaryFeed{ID: model.PagerID, TreeItemID: -11, TreeItemKind: "starred", Name: "Starred"}))

	pager, err := repo.Get(ctx, model.PagerID)
	require.NoError(t, err)
	require.Equal(t, int64(-11), pager.TreeItemID)
	require.Equal(t, "starred", pager.TreeItemKind)
	require.Equal(t, "Starred", pager.Name)
}

func TestSyncRunRepository(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSyncRunRepository(db)
	ctx := context.Background()

	first, err := repo.Create(ctx)
	require.NoError(t, err)
	require.Equal(t, model.SyncResultRunning, first.Result)

	first.Result = model.SyncResultOK
	first.ItemsReceived = 12
	first.ChangesSent = 3
	require.NoError(t, repo.Finish(ctx, first))

	second, err := repo.Create(ctx)
	require.NoError(t, err)
	msg := "server unreachable"
	second.Result = model.SyncResultFailed
	second.Error = &msg
	require.NoError(t, repo.Finish(ctx, second))

	runs, err := repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	require.Equal(t, second.ID, runs[0].ID)
	require.Equal(t, "server unreachable", *runs[0].Error)
	require.NotNil(t, runs[1].FinishedAt)
	require.Equal(t, 12, runs[1].ItemsReceived)
	require.Equal(t, 3, runs[1].ChangesSent)
}

func TestLocalDataRepository_Clear(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	testutil.SeedFolder(t, db, 1, "Tech")
	testutil.SeedFeed(t, db, model.Feed{ID: 1, URL: "u", Name: testutil.StringPtr("f"), FolderID: 1})
	testutil.SeedItem(t, db, model.Item{ID: 1, FeedID: 1, Title: testutil.StringPtr("a")})
	require.NoError(t, repository.NewTemporaryFeedRepository(db).Set(ctx, model.TemporaryFeed{ID: model.ListID, TreeItemID: 1, TreeItemKind: "feed", Name: "f"}))
	require.NoError(t, repository.NewSettingsRepository(db).Set(ctx, "account.url", "https://cloud.example"))

	require.NoError(t, repository.NewLocalDataRepository(db).Clear(ctx))

	for _, table := range []string{"items", "feeds", "folders"} {
		var count int
		require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM `+table).Scan(&count))
		require.Zero(t, count, table)
	}
	list, err := repository.NewTemporaryFeedRepository(db).Get(ctx, model.ListID)
	require.NoError(t, err)
	require.Empty(t, list.TreeItemKind)

	setting, err := repository.NewSettingsRepository(db).Get(ctx, "account.url")
	require.NoError(t, err)
	require.NotNil(t, setting)
}

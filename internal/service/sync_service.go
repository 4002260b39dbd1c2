package service

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"ocreader/internal/logger"
	"ocreader/internal/model"
	"ocreader/internal/newsapi"
	"ocreader/internal/repository"
)

type SyncService interface {
	Sync(ctx context.Context) (model.SyncRun, error)
	IsSyncing() bool
	Runs(ctx context.Context, limit int) ([]model.SyncRun, error)
}

type syncService struct {
	api      APIProvider
	folders  repository.FolderRepository
	feeds    repository.FeedRepository
	items    repository.ItemRepository
	settings repository.SettingsRepository
	runs     repository.SyncRunRepository

	mu        sync.Mutex
	isSyncing bool
}

func NewSyncService(
	api APIProvider,
	folders repository.FolderRepository,
	feeds repository.FeedRepository,
	items repository.ItemRepository,
	settings repository.SettingsRepository,
	runs repository.SyncRunRepository,
) SyncService {
	return &syncService{
		api:      api,
		folders:  folders,
		feeds:    feeds,
		items:    items,
		settings: settings,
		runs:     runs,
	}
}

// download is what one sync fetches from the server.
type download struct {
	folders []model.Folder
	feeds   newsapi.FeedList
	items   []model.Item
}

// Sync uploads pending flag changes, then downloads folders, feeds and
// items and merges them into the local store. Only one sync runs at a
// time.
func (s *syncService) Sync(ctx context.Context) (model.SyncRun, error) {
	s.mu.Lock()
	if s.isSyncing {
		s.mu.Unlock()
		return model.SyncRun{}, ErrAlreadySyncing
	}
	s.isSyncing = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.isSyncing = false
		s.mu.Unlock()
	}()

	client, err := s.api.Client(ctx)
	if err != nil {
		return model.SyncRun{}, err
	}

	run, err := s.runs.Create(ctx)
	if err != nil {
		return model.SyncRun{}, err
	}
	start := time.Now()

	syncErr := s.sync(ctx, client, &run)

	finished := time.Now().UTC()
	run.FinishedAt = &finished
	run.Result = model.SyncResultOK
	if syncErr != nil {
		run.Result = model.SyncResultFailed
		msg := syncErr.Error()
		run.Error = &msg
	}
	syncRunsTotal.WithLabelValues(run.Result).Inc()
	syncDuration.Observe(time.Since(start).Seconds())

	// The run is recorded even when ctx was cancelled mid-sync.
	if err := s.runs.Finish(context.WithoutCancel(ctx), run); err != nil {
		logger.Error("record sync run failed", "module", "service", "action", "sync", "resource", "sync_run", "result", "failed", "run_id", run.ID, "error", err)
	}

	if syncErr != nil {
		logger.Warn("sync failed", "module", "service", "action", "sync", "resource", "account", "result", "failed", "run_id", run.ID, "duration", time.Since(start).String(), "error", syncErr)
		return run, syncErr
	}
	logger.Info("sync finished", "module", "service", "action", "sync", "resource", "account", "result", "ok", "run_id", run.ID, "duration", time.Since(start).String(), "items", run.ItemsReceived, "changes", run.ChangesSent)
	return run, nil
}

func (s *syncService) sync(ctx context.Context, client NewsAPI, run *model.SyncRun) error {
	sent, err := s.upload(ctx, client)
	run.ChangesSent = sent
	if err != nil {
		return fmt.Errorf("upload changes: %w", err)
	}

	lastModified, err := settingsStore{repo: s.settings}.getInt64(ctx, keySyncLastModified)
	if err != nil {
		return fmt.Errorf("get last modified: %w", err)
	}

	data, err := s.download(ctx, client, lastModified)
	if err != nil {
		return err
	}
	run.ItemsReceived = len(data.items)
	syncItemsReceived.Add(float64(len(data.items)))

	return s.apply(ctx, data, lastModified)
}

// upload sends the dirty flags grouped by action and clears the dirty bit
// of every group the server accepted.
func (s *syncService) upload(ctx context.Context, client NewsAPI) (int, error) {
	changed, err := s.items.ListChanged(ctx)
	if err != nil {
		return 0, err
	}
	if len(changed) == 0 {
		return 0, nil
	}

	ids := func(items []model.Item) []int64 {
		return lo.Map(items, func(item model.Item, _ int) int64 { return item.ID })
	}
	refs := func(items []model.Item) []newsapi.StarRef {
		return lo.Map(items, func(item model.Item, _ int) newsapi.StarRef {
			return newsapi.StarRef{FeedID: item.FeedID, GUIDHash: item.GUIDHash}
		})
	}

	read := lo.Filter(changed, func(item model.Item, _ int) bool { return item.UnreadChanged && !item.Unread })
	unread := lo.Filter(changed, func(item model.Item, _ int) bool { return item.UnreadChanged && item.Unread })
	starred := lo.Filter(changed, func(item model.Item, _ int) bool { return item.StarredChanged && item.Starred })
	unstarred := lo.Filter(changed, func(item model.Item, _ int) bool { return item.StarredChanged && !item.Starred })

	sent := 0
	if len(read) > 0 {
		if err := client.MarkItems(ctx, true, ids(read)); err != nil {
			return sent, err
		}
		if err := s.items.ClearUnreadChanged(ctx, ids(read), false); err != nil {
			return sent, err
		}
		sent += len(read)
		syncChangesSent.WithLabelValues("read").Add(float64(len(read)))
	}
	if len(unread) > 0 {
		if err := client.MarkItems(ctx, false, ids(unread)); err != nil {
			return sent, err
		}
		if err := s.items.ClearUnreadChanged(ctx, ids(unread), true); err != nil {
			return sent, err
		}
		sent += len(unread)
		syncChangesSent.WithLabelValues("unread").Add(float64(len(unread)))
	}
	if len(starred) > 0 {
		if err := client.StarItems(ctx, true, refs(starred)); err != nil {
			return sent, err
		}
		if err := s.items.ClearStarredChanged(ctx, ids(starred), true); err != nil {
			return sent, err
		}
		sent += len(starred)
		syncChangesSent.WithLabelValues("star").Add(float64(len(starred)))
	}
	if len(unstarred) > 0 {
		if err := client.StarItems(ctx, false, refs(unstarred)); err != nil {
			return sent, err
		}
		if err := s.items.ClearStarredChanged(ctx, ids(unstarred), false); err != nil {
			return sent, err
		}
		sent += len(unstarred)
		syncChangesSent.WithLabelValues("unstar").Add(float64(len(unstarred)))
	}
	return sent, nil
}

// download fetches folders, feeds and items concurrently. Without a stored
// lastModified every unread and every starred item is requested,
// otherwise only the items changed since.
func (s *syncService) download(ctx context.Context, client NewsAPI, lastModified int64) (download, error) {
	var data download
	var items, starredItems []model.Item

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		folders, err := client.Folders(gctx)
		if err != nil {
			return err
		}
		data.folders = folders
		return nil
	})
	g.Go(func() error {
		feeds, err := client.Feeds(gctx)
		if err != nil {
			return err
		}
		data.feeds = feeds
		return nil
	})
	if lastModified > 0 {
		g.Go(func() error {
			fetched, err := client.UpdatedItems(gctx, lastModified)
			if err != nil {
				return err
			}
			items = fetched
			return nil
		})
	} else {
		g.Go(func() error {
			fetched, err := client.AllItems(gctx, newsapi.ItemQuery{Type: newsapi.ItemTypeAll, GetRead: false})
			if err != nil {
				return err
			}
			items = fetched
			return nil
		})
		g.Go(func() error {
			fetched, err := client.AllItems(gctx, newsapi.ItemQuery{Type: newsapi.ItemTypeStarred, GetRead: true})
			if err != nil {
				return err
			}
			starredItems = fetched
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return download{}, fmt.Errorf("download: %w", err)
	}

	data.items = lo.UniqBy(append(items, starredItems...), func(item model.Item) int64 { return item.ID })
	return data, nil
}

func (s *syncService) apply(ctx context.Context, data download, lastModified int64) error {
	for _, folder := range data.folders {
		if err := s.folders.Upsert(ctx, folder); err != nil {
			return err
		}
	}
	if _, err := s.folders.DeleteMissing(ctx, lo.Map(data.folders, func(f model.Folder, _ int) int64 { return f.ID })); err != nil {
		return err
	}

	var kept []int64
	for _, feed := range data.feeds.Feeds {
		inserted, err := s.feeds.Insert(ctx, feed)
		if err != nil {
			return err
		}
		if inserted {
			kept = append(kept, feed.ID)
		}
	}
	if _, err := s.feeds.DeleteMissing(ctx, kept); err != nil {
		return err
	}

	feedIDs := lo.SliceToMap(kept, func(id int64) (int64, struct{}) { return id, struct{}{} })
	for _, item := range data.items {
		if _, ok := feedIDs[item.FeedID]; !ok && !item.IsReduced() {
			logger.Debug("skip item of unknown feed", "module", "service", "action", "sync", "resource", "item", "result", "skipped", "item_id", item.ID, "feed_id", item.FeedID)
			continue
		}
		if err := s.items.Insert(ctx, item); err != nil {
			return err
		}
		if item.LastModified > lastModified {
			lastModified = item.LastModified
		}
	}

	if err := s.feeds.RecalculateCounts(ctx); err != nil {
		return err
	}

	stored, err := s.items.MaxLastModified(ctx)
	if err != nil {
		return err
	}
	if stored > lastModified {
		lastModified = stored
	}
	if lastModified > 0 {
		if err := s.settings.Set(ctx, keySyncLastModified, strconv.FormatInt(lastModified, 10)); err != nil {
			return err
		}
	}
	return s.settings.Set(ctx, keySyncLastSyncAt, time.Now().UTC().Format(time.RFC3339))
}

func (s *syncService) IsSyncing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isSyncing
}

func (s *syncService) Runs(ctx context.Context, limit int) ([]model.SyncRun, error) {
	return s.runs.ListRecent(ctx, limit)
}

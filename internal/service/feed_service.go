package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"ocreader/internal/config"
	"ocreader/internal/logger"
	"ocreader/internal/model"
	"ocreader/internal/network"
	"ocreader/internal/newsapi"
	"ocreader/internal/repository"
)

const previewTimeout = 20 * time.Second

type FeedService interface {
	List(ctx context.Context, folderID *int64) ([]model.Feed, error)
	Get(ctx context.Context, id int64) (model.Feed, error)
	Failed(ctx context.Context) ([]model.Feed, error)
	Preview(ctx context.Context, feedURL string) (FeedPreview, error)
	Subscribe(ctx context.Context, feedURL string, folderID int64) (model.Feed, error)
	Unsubscribe(ctx context.Context, id int64) error
	Move(ctx context.Context, id int64, folderID int64) (model.Feed, error)
	Rename(ctx context.Context, id int64, name string) (model.Feed, error)
}

// FeedPreview is what a feed URL serves before subscribing to it.
type FeedPreview struct {
	URL         string
	Title       string
	Description *string
	SiteURL     *string
	ImageURL    *string
	ItemCount   *int
	LastUpdated *string
}

type feedService struct {
	api           APIProvider
	feeds         repository.FeedRepository
	folders       repository.FolderRepository
	clientFactory HTTPClients
}

func NewFeedService(api APIProvider, feeds repository.FeedRepository, folders repository.FolderRepository, clientFactory HTTPClients) FeedService {
	if clientFactory == nil {
		clientFactory = network.Direct(config.UserAgent)
	}
	return &feedService{api: api, feeds: feeds, folders: folders, clientFactory: clientFactory}
}

func (s *feedService) List(ctx context.Context, folderID *int64) ([]model.Feed, error) {
	return s.feeds.List(ctx, folderID)
}

func (s *feedService) Get(ctx context.Context, id int64) (model.Feed, error) {
	feed, err := s.feeds.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Feed{}, ErrNotFound
		}
		return model.Feed{}, fmt.Errorf("get feed: %w", err)
	}
	return feed, nil
}

// Failed lists the feeds the server could not update for a long time.
func (s *feedService) Failed(ctx context.Context) ([]model.Feed, error) {
	return s.feeds.ListFailed(ctx)
}

func (s *feedService) Preview(ctx context.Context, feedURL string) (FeedPreview, error) {
	trimmedURL := strings.TrimSpace(feedURL)
	if !isValidURL(trimmedURL) {
		return FeedPreview{}, ErrInvalid
	}

	fetched, err := s.fetchFeed(ctx, trimmedURL)
	if err != nil {
		return FeedPreview{}, err
	}

	title := strings.TrimSpace(fetched.Title)
	if title == "" {
		title = trimmedURL
	}
	preview := FeedPreview{
		URL:         trimmedURL,
		Title:       title,
		Description: optionalString(fetched.Description),
		SiteURL:     optionalString(fetched.Link),
	}
	if fetched.Image != nil {
		preview.ImageURL = optionalString(fetched.Image.URL)
	}
	if fetched.Items != nil {
		count := len(fetched.Items)
		preview.ItemCount = &count
	}
	if fetched.UpdatedParsed != nil {
		updated := fetched.UpdatedParsed.UTC().Format(time.RFC3339)
		preview.LastUpdated = &updated
	} else if fetched.PublishedParsed != nil {
		published := fetched.PublishedParsed.UTC().Format(time.RFC3339)
		preview.LastUpdated = &published
	}
	return preview, nil
}

// Subscribe asks the server to add the feed and stores the created feed
// locally. Its items arrive with the next sync.
func (s *feedService) Subscribe(ctx context.Context, feedURL string, folderID int64) (model.Feed, error) {
	trimmedURL := strings.TrimSpace(feedURL)
	if !isValidURL(trimmedURL) {
		return model.Feed{}, ErrInvalid
	}
	if folderID != 0 {
		if _, err := s.folders.GetByID(ctx, folderID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return model.Feed{}, ErrNotFound
			}
			return model.Feed{}, fmt.Errorf("check folder: %w", err)
		}
	}
	client, err := s.api.Client(ctx)
	if err != nil {
		return model.Feed{}, err
	}

	created, err := client.CreateFeed(ctx, trimmedURL, folderID)
	if err != nil {
		switch {
		case errors.Is(err, newsapi.ErrConflict):
			return model.Feed{}, ErrConflict
		case errors.Is(err, newsapi.ErrUnprocessable):
			return model.Feed{}, ErrFeedFetch
		}
		return model.Feed{}, fmt.Errorf("create feed: %w", err)
	}
	if created.Name == nil || *created.Name == "" {
		created.Name = &trimmedURL
	}
	if _, err := s.feeds.Insert(ctx, created); err != nil {
		return model.Feed{}, err
	}
	logger.Info("feed subscribed", "module", "service", "action", "create", "resource", "feed", "result", "ok", "feed_id", created.ID, "host", hostOf(trimmedURL))
	return s.Get(ctx, created.ID)
}

// Unsubscribe deletes the feed on the server and locally. A feed the
// server no longer knows is still removed locally.
func (s *feedService) Unsubscribe(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	client, err := s.api.Client(ctx)
	if err != nil {
		return err
	}
	if err := client.DeleteFeed(ctx, id); err != nil && !errors.Is(err, newsapi.ErrNotFound) {
		return fmt.Errorf("delete feed: %w", err)
	}
	if err := s.feeds.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info("feed unsubscribed", "module", "service", "action", "delete", "resource", "feed", "result", "ok", "feed_id", id)
	return nil
}

func (s *feedService) Move(ctx context.Context, id int64, folderID int64) (model.Feed, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return model.Feed{}, err
	}
	if folderID != 0 {
		if _, err := s.folders.GetByID(ctx, folderID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return model.Feed{}, ErrNotFound
			}
			return model.Feed{}, fmt.Errorf("check folder: %w", err)
		}
	}
	client, err := s.api.Client(ctx)
	if err != nil {
		return model.Feed{}, err
	}
	if err := client.MoveFeed(ctx, id, folderID); err != nil {
		return model.Feed{}, fmt.Errorf("move feed: %w", err)
	}
	if err := s.feeds.UpdateFolder(ctx, id, folderID); err != nil {
		return model.Feed{}, err
	}
	return s.Get(ctx, id)
}

func (s *feedService) Rename(ctx context.Context, id int64, name string) (model.Feed, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return model.Feed{}, ErrInvalid
	}
	if _, err := s.Get(ctx, id); err != nil {
		return model.Feed{}, err
	}
	client, err := s.api.Client(ctx)
	if err != nil {
		return model.Feed{}, err
	}
	if err := client.RenameFeed(ctx, id, trimmed); err != nil {
		return model.Feed{}, fmt.Errorf("rename feed: %w", err)
	}
	if err := s.feeds.UpdateName(ctx, id, trimmed); err != nil {
		return model.Feed{}, err
	}
	return s.Get(ctx, id)
}

func (s *feedService) fetchFeed(ctx context.Context, feedURL string) (*gofeed.Feed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, ErrFeedFetch
	}
	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/xml;q=0.9, */*;q=0.8")

	resp, err := s.clientFactory.NewHTTPClient(previewTimeout).Do(req)
	if err != nil {
		logger.Warn("feed preview fetch failed", "module", "service", "action", "fetch", "resource", "feed", "result", "failed", "host", hostOf(feedURL), "error", err)
		return nil, ErrFeedFetch
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		logger.Warn("feed preview fetch failed", "module", "service", "action", "fetch", "resource", "feed", "result", "failed", "host", hostOf(feedURL), "status_code", resp.StatusCode)
		return nil, ErrFeedFetch
	}

	parsed, err := gofeed.NewParser().Parse(resp.Body)
	if err != nil {
		return nil, ErrFeedFetch
	}
	return parsed, nil
}

func optionalString(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func isValidURL(value string) bool {
	parsed, err := url.ParseRequestURI(value)
	if err != nil {
		return false
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return false
	}
	return parsed.Host != ""
}

func hostOf(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return parsed.Host
}

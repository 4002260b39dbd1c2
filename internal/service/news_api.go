package service

import (
	"context"
	"net/http"
	"time"

	"ocreader/internal/model"
	"ocreader/internal/network"
	"ocreader/internal/newsapi"
)

// NewsAPI is the part of the News REST client the services use.
type NewsAPI interface {
	Status(ctx context.Context) (*model.Status, error)
	User(ctx context.Context) (*model.User, error)
	Folders(ctx context.Context) ([]model.Folder, error)
	Feeds(ctx context.Context) (newsapi.FeedList, error)
	AllItems(ctx context.Context, q newsapi.ItemQuery) ([]model.Item, error)
	UpdatedItems(ctx context.Context, lastModified int64) ([]model.Item, error)
	MarkItems(ctx context.Context, read bool, ids []int64) error
	StarItems(ctx context.Context, starred bool, refs []newsapi.StarRef) error
	CreateFeed(ctx context.Context, feedURL string, folderID int64) (model.Feed, error)
	DeleteFeed(ctx context.Context, id int64) error
	MoveFeed(ctx context.Context, id int64, folderID int64) error
	RenameFeed(ctx context.Context, id int64, title string) error
	CreateFolder(ctx context.Context, name string) (model.Folder, error)
	DeleteFolder(ctx context.Context, id int64) error
}

var _ NewsAPI = (*newsapi.Client)(nil)

// APIProvider hands out a client for the logged in account.
type APIProvider interface {
	Client(ctx context.Context) (NewsAPI, error)
}

// HTTPClients hands out clients for fetching feed and article pages.
type HTTPClients interface {
	NewHTTPClient(timeout time.Duration) *http.Client
}

var _ HTTPClients = (*network.ClientFactory)(nil)

// ClientFactory builds a News API client for the given credentials.
type ClientFactory func(ctx context.Context, creds newsapi.Credentials, allowInsecure bool) (NewsAPI, error)

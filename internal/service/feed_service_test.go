package service_test

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"ocreader/internal/model"
	"ocreader/internal/newsapi"
	"ocreader/internal/repository/mock"
	"ocreader/internal/repository/testutil"
	"ocreader/internal/service"
	servicemock "ocreader/internal/service/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
<title>Test Feed</title>
<link>https://example.com</link>
<description>Desc</description>
<image>
  <url>https://example.com/icon.png</url>
</image>
<item>
  <title>Item 1</title>
  <link>https://example.com/1</link>
  <description>Content 1</description>
  <pubDate>Mon, 02 Jan 2006 15:04:05 GMT</pubDate>
</item>
<item>
  <title>Item 2</title>
  <description>Missing link</description>
</item>
</channel>
</rss>`

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

type staticClients struct {
	client *http.Client
}

func (s staticClients) NewHTTPClient(time.Duration) *http.Client {
	return s.client
}

func staticClientFactory(status int, body string) service.HTTPClients {
	return staticClients{client: &http.Client{Transport: roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: status,
			Header:     make(http.Header),
			Body:       io.NopCloser(strings.NewReader(body)),
			Request:    req,
		}, nil
	})}}
}

type feedFixture struct {
	api     *servicemock.MockNewsAPI
	feeds   *mock.MockFeedRepository
	folders *mock.MockFolderRepository
	svc     service.FeedService
}

func newFeedFixture(t *testing.T, clientFactory service.HTTPClients) *feedFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &feedFixture{
		api:     servicemock.NewMockNewsAPI(ctrl),
		feeds:   mock.NewMockFeedRepository(ctrl),
		folders: mock.NewMockFolderRepository(ctrl),
	}
	provider := servicemock.NewMockAPIProvider(ctrl)
	provider.EXPECT().Client(gomock.Any()).Return(f.api, nil).AnyTimes()
	f.svc = service.NewFeedService(provider, f.feeds, f.folders, clientFactory)
	return f
}

func TestFeedService_Preview(t *testing.T) {
	f := newFeedFixture(t, staticClientFactory(http.StatusOK, sampleRSS))

	preview, err := f.svc.Preview(context.Background(), " https://example.com/rss ")
	require.NoError(t, err)
	require.Equal(t, "https://example.com/rss", preview.URL)
	require.Equal(t, "Test Feed", preview.Title)
	require.Equal(t, "Desc", *preview.Description)
	require.Equal(t, "https://example.com", *preview.SiteURL)
	require.Equal(t, "https://example.com/icon.png", *preview.ImageURL)
	require.Equal(t, 2, *preview.ItemCount)
}

func TestFeedService_Preview_Errors(t *testing.T) {
	f := newFeedFixture(t, staticClientFactory(http.StatusNotFound, ""))

	_, err := f.svc.Preview(context.Background(), "ftp://example.com/rss")
	require.ErrorIs(t, err, service.ErrInvalid)

	_, err = f.svc.Preview(context.Background(), "https://example.com/rss")
	require.ErrorIs(t, err, service.ErrFeedFetch)

	f = newFeedFixture(t, staticClientFactory(http.StatusOK, "not a feed"))
	_, err = f.svc.Preview(context.Background(), "https://example.com/rss")
	require.ErrorIs(t, err, service.ErrFeedFetch)
}

func TestFeedService_Subscribe(t *testing.T) {
	f := newFeedFixture(t, nil)

	created := model.Feed{ID: 42, URL: "https://example.com/rss", Name: testutil.StringPtr("Example"), FolderID: 3}
	f.folders.EXPECT().GetByID(gomock.Any(), int64(3)).Return(model.Folder{ID: 3, Name: "News"}, nil)
	f.api.EXPECT().CreateFeed(gomock.Any(), "https://example.com/rss", int64(3)).Return(created, nil)
	f.feeds.EXPECT().Insert(gomock.Any(), created).Return(true, nil)
	f.feeds.EXPECT().GetByID(gomock.Any(), int64(42)).Return(created, nil)

	feed, err := f.svc.Subscribe(context.Background(), "https://example.com/rss", 3)
	require.NoError(t, err)
	require.Equal(t, int64(42), feed.ID)
}

func TestFeedService_Subscribe_NamelessFeedUsesURL(t *testing.T) {
	f := newFeedFixture(t, nil)

	f.api.EXPECT().CreateFeed(gomock.Any(), "https://example.com/rss", int64(0)).Return(model.Feed{ID: 42, URL: "https://example.com/rss"}, nil)
	f.feeds.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, feed model.Feed) (bool, error) {
		require.NotNil(t, feed.Name)
		require.Equal(t, "https://example.com/rss", *feed.Name)
		return true, nil
	})
	f.feeds.EXPECT().GetByID(gomock.Any(), int64(42)).Return(model.Feed{ID: 42}, nil)

	_, err := f.svc.Subscribe(context.Background(), "https://example.com/rss", 0)
	require.NoError(t, err)
}

func TestFeedService_Subscribe_Conflict(t *testing.T) {
	f := newFeedFixture(t, nil)

	f.api.EXPECT().CreateFeed(gomock.Any(), "https://example.com/rss", int64(0)).
		Return(model.Feed{}, &newsapi.HTTPError{StatusCode: http.StatusConflict, Message: "feed exists"})

	_, err := f.svc.Subscribe(context.Background(), "https://example.com/rss", 0)
	require.ErrorIs(t, err, service.ErrConflict)
}

func TestFeedService_Subscribe_UnknownFolder(t *testing.T) {
	f := newFeedFixture(t, nil)

	f.folders.EXPECT().GetByID(gomock.Any(), int64(9)).Return(model.Folder{}, sql.ErrNoRows)

	_, err := f.svc.Subscribe(context.Background(), "https://example.com/rss", 9)
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestFeedService_Unsubscribe_GoneOnServer(t *testing.T) {
	f := newFeedFixture(t, nil)

	f.feeds.EXPECT().GetByID(gomock.Any(), int64(7)).Return(model.Feed{ID: 7}, nil)
	f.api.EXPECT().DeleteFeed(gomock.Any(), int64(7)).Return(&newsapi.HTTPError{StatusCode: http.StatusNotFound})
	f.feeds.EXPECT().Delete(gomock.Any(), int64(7)).Return(nil)

	require.NoError(t, f.svc.Unsubscribe(context.Background(), 7))
}

func TestFeedService_Unsubscribe_ServerError(t *testing.T) {
	f := newFeedFixture(t, nil)

	f.feeds.EXPECT().GetByID(gomock.Any(), int64(7)).Return(model.Feed{ID: 7}, nil)
	f.api.EXPECT().DeleteFeed(gomock.Any(), int64(7)).Return(errors.New("boom"))

	require.Error(t, f.svc.Unsubscribe(context.Background(), 7))
}

func TestFeedService_MoveAndRename(t *testing.T) {
	f := newFeedFixture(t, nil)
	ctx := context.Background()

	gomock.InOrder(
		f.feeds.EXPECT().GetByID(gomock.Any(), int64(7)).Return(model.Feed{ID: 7}, nil),
		f.api.EXPECT().MoveFeed(gomock.Any(), int64(7), int64(0)).Return(nil),
		f.feeds.EXPECT().UpdateFolder(gomock.Any(), int64(7), int64(0)).Return(nil),
		f.feeds.EXPECT().GetByID(gomock.Any(), int64(7)).Return(model.Feed{ID: 7}, nil),
	)
	_, err := f.svc.Move(ctx, 7, 0)
	require.NoError(t, err)

	_, err = f.svc.Rename(ctx, 7, "   ")
	require.ErrorIs(t, err, service.ErrInvalid)

	gomock.InOrder(
		f.feeds.EXPECT().GetByID(gomock.Any(), int64(7)).Return(model.Feed{ID: 7}, nil),
		f.api.EXPECT().RenameFeed(gomock.Any(), int64(7), "Renamed").Return(nil),
		f.feeds.EXPECT().UpdateName(gomock.Any(), int64(7), "Renamed").Return(nil),
		f.feeds.EXPECT().GetByID(gomock.Any(), int64(7)).Return(model.Feed{ID: 7, Name: testutil.StringPtr("Renamed")}, nil),
	)
	feed, err := f.svc.Rename(ctx, 7, " Renamed ")
	require.NoError(t, err)
	require.Equal(t, "Renamed", feed.Title())
}

func TestFeedService_Failed(t *testing.T) {
	f := newFeedFixture(t, nil)

	f.feeds.EXPECT().ListFailed(gomock.Any()).Return([]model.Feed{{ID: 1, UpdateErrorCount: 60}}, nil)

	failed, err := f.svc.Failed(context.Background())
	require.NoError(t, err)
	require.Len(t, failed, 1)
}

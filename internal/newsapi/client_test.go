package newsapi_test

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"ocreader/internal/newsapi"

	"github.com/stretchr/testify/require"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *newsapi.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := newsapi.NewClient(
		newsapi.Credentials{BaseURL: srv.URL + "/nextcloud/", Username: "alice", Password: "secret"},
		newsapi.Options{AllowInsecure: true, RateLimiter: newsapi.NewRateLimiter(1000), MaxRetryTime: time.Second, BatchSize: 2},
	)
	require.NoError(t, err)
	return client
}

func TestNewClient_RejectsInsecureAndInvalidURLs(t *testing.T) {
	_, err := newsapi.NewClient(newsapi.Credentials{BaseURL: "http://cloud.example"}, newsapi.Options{})
	require.ErrorIs(t, err, newsapi.ErrInsecureConnection)

	_, err = newsapi.NewClient(newsapi.Credentials{BaseURL: "cloud.example"}, newsapi.Options{})
	require.ErrorIs(t, err, newsapi.ErrInvalidURL)

	_, err = newsapi.NewClient(newsapi.Credentials{BaseURL: "ftp://cloud.example"}, newsapi.Options{})
	require.ErrorIs(t, err, newsapi.ErrInvalidURL)

	client, err := newsapi.NewClient(newsapi.Credentials{BaseURL: "https://cloud.example/sub/"}, newsapi.Options{})
	require.NoError(t, err)
	require.Equal(t, "https://cloud.example/sub", client.BaseURL())
}

func TestClient_UnknownHost(t *testing.T) {
	var calls int32
	httpClient := &http.Client{Transport: roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		atomic.AddInt32(&calls, 1)
		return nil, &net.DNSError{Err: "no such host", Name: req.URL.Hostname(), IsNotFound: true}
	})}
	client, err := newsapi.NewClient(
		newsapi.Credentials{BaseURL: "https://does-not-exist.example"},
		newsapi.Options{HTTPClient: httpClient, MaxRetryTime: time.Second},
	)
	require.NoError(t, err)

	_, err = client.Status(context.Background())
	require.ErrorIs(t, err, newsapi.ErrUnknownHost)
	require.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestClient_Status(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/nextcloud/index.php/apps/news/api/v1-2/status", r.URL.Path)
		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		require.Equal(t, "alice", user)
		require.Equal(t, "secret", pass)
		_, _ = io.WriteString(w, `{"version": "18.1.1", "warnings": {"improperlyConfiguredCron": false}}`)
	})

	status, err := client.Status(context.Background())
	require.NoError(t, err)
	require.Equal(t, "18.1.1", status.Version)
}

func TestClient_UnauthorizedIsNotRetried(t *testing.T) {
	var calls int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.Folders(context.Background())
	require.ErrorIs(t, err, newsapi.ErrUnauthorized)
	require.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestClient_RetriesServerErrors(t *testing.T) {
	var calls int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = io.WriteString(w, `{"version": "15.0.0"}`)
	})

	version, err := client.Version(context.Background())
	require.NoError(t, err)
	require.Equal(t, "15.0.0", version)
	require.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestClient_HTTPErrorMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = io.WriteString(w, `{"message": "Feed already exists"}`)
	})

	_, err := client.CreateFeed(context.Background(), "https://blog.example/rss", 0)
	require.ErrorIs(t, err, newsapi.ErrConflict)

	var httpErr *newsapi.HTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Equal(t, "Feed already exists", httpErr.Message)
}

func TestClient_AllItemsPages(t *testing.T) {
	var offsets []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/nextcloud/index.php/apps/news/api/v1-2/items", r.URL.Path)
		q := r.URL.Query()
		require.Equal(t, "3", q.Get("type"))
		require.Equal(t, "true", q.Get("getRead"))
		require.Equal(t, "2", q.Get("batchSize"))
		offsets = append(offsets, q.Get("offset"))

		switch q.Get("offset") {
		case "0":
			_, _ = io.WriteString(w, `{"items": [{"id": 10, "title": "a", "feedId": 1}, {"id": 9, "title": "b", "feedId": 1}]}`)
		case "9":
			_, _ = io.WriteString(w, `{"items": [{"id": 8, "title": "c", "feedId": 1}]}`)
		default:
			t.Fatalf("unexpected offset %s", q.Get("offset"))
		}
	})

	items, err := client.AllItems(context.Background(), newsapi.ItemQuery{Type: newsapi.ItemTypeAll, GetRead: true})
	require.NoError(t, err)
	require.Len(t, items, 3)
	require.Equal(t, []string{"0", "9"}, offsets)
}

func TestClient_UpdatedItems(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/nextcloud/index.php/apps/news/api/v1-2/items/updated", r.URL.Path)
		require.Equal(t, "1700000000", r.URL.Query().Get("lastModified"))
		_, _ = io.WriteString(w, `{"items": [{"id": 1, "title": "a", "feedId": 1, "unread": false}]}`)
	})

	items, err := client.UpdatedItems(context.Background(), 1700000000)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.False(t, items[0].Unread)
}

func TestClient_WriteCalls(t *testing.T) {
	type call struct {
		method string
		path   string
		body   string
	}
	var calls []call
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		calls = append(calls, call{r.Method, r.URL.Path[len("/nextcloud/index.php/apps/news/api/v1-2"):], string(body)})
		switch r.URL.Path {
		case "/nextcloud/index.php/apps/news/api/v1-2/feeds":
			_, _ = io.WriteString(w, `{"feeds": [{"id": 77, "url": "https://blog.example/rss", "title": "Blog", "folderId": 3}], "newestItemId": 5}`)
		case "/nextcloud/index.php/apps/news/api/v1-2/folders":
			_, _ = io.WriteString(w, `{"folders": [{"id": 8, "name": "New"}]}`)
		}
	})
	ctx := context.Background()

	require.NoError(t, client.MarkItems(ctx, true, []int64{1, 2}))
	require.NoError(t, client.MarkItems(ctx, false, nil))
	require.NoError(t, client.StarItems(ctx, false, []newsapi.StarRef{{FeedID: 3, GUIDHash: "h"}}))

	feed, err := client.CreateFeed(ctx, "https://blog.example/rss", 3)
	require.NoError(t, err)
	require.Equal(t, int64(77), feed.ID)

	require.NoError(t, client.MoveFeed(ctx, 77, 0))
	require.NoError(t, client.RenameFeed(ctx, 77, "Renamed"))
	require.NoError(t, client.DeleteFeed(ctx, 77))

	folder, err := client.CreateFolder(ctx, "New")
	require.NoError(t, err)
	require.Equal(t, int64(8), folder.ID)
	require.NoError(t, client.DeleteFolder(ctx, 8))

	require.Len(t, calls, 8)
	require.Equal(t, http.MethodPut, calls[0].method)
	require.Equal(t, "/items/read/multiple", calls[0].path)
	require.JSONEq(t, `{"items": [1, 2]}`, calls[0].body)
	require.Equal(t, "/items/unstar/multiple", calls[1].path)
	require.JSONEq(t, `{"items": [{"feedId": 3, "guidHash": "h"}]}`, calls[1].body)
	require.Equal(t, http.MethodPost, calls[2].method)
	require.JSONEq(t, `{"url": "https://blog.example/rss", "folderId": 3}`, calls[2].body)
	require.Equal(t, "/feeds/77/move", calls[3].path)
	require.JSONEq(t, `{"folderId": 0}`, calls[3].body)
	require.Equal(t, "/feeds/77/rename", calls[4].path)
	require.JSONEq(t, `{"feedTitle": "Renamed"}`, calls[4].body)
	require.Equal(t, http.MethodDelete, calls[5].method)
	require.Equal(t, "/feeds/"+strconv.Itoa(77), calls[5].path)
	require.JSONEq(t, `{"name": "New"}`, calls[6].body)
	require.Equal(t, "/folders/8", calls[7].path)
}

func TestClient_ContextCancelled(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Feeds(ctx)
	require.Error(t, err)
}

func TestClient_PostIsNotRetried(t *testing.T) {
	var calls int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := client.CreateFeed(context.Background(), "https://blog.example/rss", 0)
	var httpErr *newsapi.HTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Equal(t, http.StatusServiceUnavailable, httpErr.StatusCode)
	require.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

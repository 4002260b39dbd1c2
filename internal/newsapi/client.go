package newsapi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"ocreader/internal/logger"
	"ocreader/internal/model"

	"github.com/cenkalti/backoff/v4"
	"github.com/tidwall/gjson"
)

const (
	apiPath          = "/index.php/apps/news/api/v1-2"
	DefaultBatchSize = 200
	maxResponseBytes = 64 << 20
)

// Item types of the items call.
const (
	ItemTypeFeed    = 0
	ItemTypeFolder  = 1
	ItemTypeStarred = 2
	ItemTypeAll     = 3
)

type Credentials struct {
	BaseURL  string
	Username string
	Password string
}

type Options struct {
	HTTPClient    *http.Client
	AllowInsecure bool
	RateLimiter   *RateLimiter
	UserAgent     string
	BatchSize     int
	// MaxRetryTime bounds retries of transient failures. Zero means
	// one minute, a negative value disables retries.
	MaxRetryTime time.Duration
}

// Client talks to the News app REST API.
type Client struct {
	baseURL      *url.URL
	username     string
	password     string
	httpClient   *http.Client
	limiter      *RateLimiter
	userAgent    string
	batchSize    int
	maxRetryTime time.Duration
}

// ItemQuery selects a page of the items call.
type ItemQuery struct {
	Type        int
	ID          int64
	GetRead     bool
	BatchSize   int
	Offset      int64
	OldestFirst bool
}

// NormalizeURL validates a server address and strips trailing slashes.
func NormalizeURL(raw string, allowInsecure bool) (*url.URL, error) {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("%w: missing host in %q", ErrInvalidURL, raw)
	}
	switch parsed.Scheme {
	case "https":
	case "http":
		if !allowInsecure {
			return nil, ErrInsecureConnection
		}
	default:
		return nil, fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURL, parsed.Scheme)
	}
	parsed.Path = strings.TrimRight(parsed.Path, "/")
	parsed.RawQuery = ""
	parsed.Fragment = ""
	return parsed, nil
}

func NewClient(creds Credentials, opts Options) (*Client, error) {
	base, err := NormalizeURL(creds.BaseURL, opts.AllowInsecure)
	if err != nil {
		return nil, err
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	limiter := opts.RateLimiter
	if limiter == nil {
		limiter = NewRateLimiter(DefaultRateLimit)
	}
	batchSize := opts.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	maxRetryTime := opts.MaxRetryTime
	if maxRetryTime == 0 {
		maxRetryTime = time.Minute
	}

	return &Client{
		baseURL:      base,
		username:     creds.Username,
		password:     creds.Password,
		httpClient:   httpClient,
		limiter:      limiter,
		userAgent:    opts.UserAgent,
		batchSize:    batchSize,
		maxRetryTime: maxRetryTime,
	}, nil
}

// BaseURL returns the normalized server address.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

func (c *Client) Status(ctx context.Context) (*model.Status, error) {
	data, err := c.do(ctx, http.MethodGet, "/status", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("get status: %w", err)
	}
	status, err := DecodeStatus(data)
	if err != nil {
		return nil, fmt.Errorf("decode status: %w", err)
	}
	if status == nil {
		return nil, fmt.Errorf("get status: %w: empty status", ErrInvalidResponse)
	}
	return status, nil
}

func (c *Client) Version(ctx context.Context) (string, error) {
	data, err := c.do(ctx, http.MethodGet, "/version", nil, nil)
	if err != nil {
		return "", fmt.Errorf("get version: %w", err)
	}
	version := gjson.GetBytes(data, "version")
	if !version.Exists() {
		return "", fmt.Errorf("get version: %w: missing version", ErrInvalidResponse)
	}
	return version.String(), nil
}

func (c *Client) User(ctx context.Context) (*model.User, error) {
	data, err := c.do(ctx, http.MethodGet, "/user", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("get user: %w: malformed json", ErrInvalidResponse)
	}
	return DecodeUser(gjson.ParseBytes(data)), nil
}

func (c *Client) Folders(ctx context.Context) ([]model.Folder, error) {
	data, err := c.do(ctx, http.MethodGet, "/folders", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("get folders: %w", err)
	}
	folders, err := DecodeFolders(data)
	if err != nil {
		return nil, fmt.Errorf("decode folders: %w", err)
	}
	return folders, nil
}

func (c *Client) Feeds(ctx context.Context) (FeedList, error) {
	data, err := c.do(ctx, http.MethodGet, "/feeds", nil, nil)
	if err != nil {
		return FeedList{}, fmt.Errorf("get feeds: %w", err)
	}
	list, err := DecodeFeeds(data)
	if err != nil {
		return FeedList{}, fmt.Errorf("decode feeds: %w", err)
	}
	return list, nil
}

// Items fetches one page of items.
func (c *Client) Items(ctx context.Context, q ItemQuery) ([]model.Item, error) {
	batchSize := q.BatchSize
	if batchSize == 0 {
		batchSize = c.batchSize
	}
	query := url.Values{}
	query.Set("type", strconv.Itoa(q.Type))
	query.Set("id", strconv.FormatInt(q.ID, 10))
	query.Set("getRead", strconv.FormatBool(q.GetRead))
	query.Set("batchSize", strconv.Itoa(batchSize))
	query.Set("offset", strconv.FormatInt(q.Offset, 10))
	query.Set("oldestFirst", strconv.FormatBool(q.OldestFirst))

	data, err := c.do(ctx, http.MethodGet, "/items", query, nil)
	if err != nil {
		return nil, fmt.Errorf("get items: %w", err)
	}
	items, err := DecodeItems(data)
	if err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}
	return items, nil
}

// AllItems pages through the items call. The offset of each page is the
// smallest id of the previous one, as the API expects for newest-first
// paging.
func (c *Client) AllItems(ctx context.Context, q ItemQuery) ([]model.Item, error) {
	if q.BatchSize <= 0 {
		q.BatchSize = c.batchSize
	}
	q.Offset = 0
	q.OldestFirst = false

	var all []model.Item
	for {
		page, err := c.Items(ctx, q)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < q.BatchSize {
			return all, nil
		}

		next := page[0].ID
		for _, item := range page {
			if item.ID < next {
				next = item.ID
			}
		}
		if q.Offset != 0 && next >= q.Offset {
			return all, nil
		}
		q.Offset = next
	}
}

// UpdatedItems returns every item modified after lastModified.
func (c *Client) UpdatedItems(ctx context.Context, lastModified int64) ([]model.Item, error) {
	query := url.Values{}
	query.Set("lastModified", strconv.FormatInt(lastModified, 10))
	query.Set("type", strconv.Itoa(ItemTypeAll))
	query.Set("id", "0")

	data, err := c.do(ctx, http.MethodGet, "/items/updated", query, nil)
	if err != nil {
		return nil, fmt.Errorf("get updated items: %w", err)
	}
	items, err := DecodeItems(data)
	if err != nil {
		return nil, fmt.Errorf("decode updated items: %w", err)
	}
	return items, nil
}

// MarkItems marks the given items read or unread.
func (c *Client) MarkItems(ctx context.Context, read bool, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	body, err := encodeItemIDs(ids)
	if err != nil {
		return err
	}
	action := "unread"
	if read {
		action = "read"
	}
	if _, err := c.do(ctx, http.MethodPut, "/items/"+action+"/multiple", nil, body); err != nil {
		return fmt.Errorf("mark items %s: %w", action, err)
	}
	return nil
}

// StarItems stars or unstars the given items.
func (c *Client) StarItems(ctx context.Context, starred bool, refs []StarRef) error {
	if len(refs) == 0 {
		return nil
	}
	body, err := encodeStarRefs(refs)
	if err != nil {
		return err
	}
	action := "unstar"
	if starred {
		action = "star"
	}
	if _, err := c.do(ctx, http.MethodPut, "/items/"+action+"/multiple", nil, body); err != nil {
		return fmt.Errorf("%s items: %w", action, err)
	}
	return nil
}

// CreateFeed subscribes to feedURL and returns the feed the server created.
func (c *Client) CreateFeed(ctx context.Context, feedURL string, folderID int64) (model.Feed, error) {
	body, err := encodeFields("url", feedURL, "folderId", folderID)
	if err != nil {
		return model.Feed{}, err
	}
	data, err := c.do(ctx, http.MethodPost, "/feeds", nil, body)
	if err != nil {
		return model.Feed{}, fmt.Errorf("create feed: %w", err)
	}
	list, err := DecodeFeeds(data)
	if err != nil {
		return model.Feed{}, fmt.Errorf("decode created feed: %w", err)
	}
	if len(list.Feeds) == 0 {
		return model.Feed{}, fmt.Errorf("create feed: %w: no feed returned", ErrInvalidResponse)
	}
	return list.Feeds[0], nil
}

func (c *Client) DeleteFeed(ctx context.Context, id int64) error {
	if _, err := c.do(ctx, http.MethodDelete, "/feeds/"+strconv.FormatInt(id, 10), nil, nil); err != nil {
		return fmt.Errorf("delete feed: %w", err)
	}
	return nil
}

func (c *Client) MoveFeed(ctx context.Context, id int64, folderID int64) error {
	body, err := encodeFields("folderId", folderID)
	if err != nil {
		return err
	}
	if _, err := c.do(ctx, http.MethodPut, "/feeds/"+strconv.FormatInt(id, 10)+"/move", nil, body); err != nil {
		return fmt.Errorf("move feed: %w", err)
	}
	return nil
}

func (c *Client) RenameFeed(ctx context.Context, id int64, title string) error {
	body, err := encodeFields("feedTitle", title)
	if err != nil {
		return err
	}
	if _, err := c.do(ctx, http.MethodPut, "/feeds/"+strconv.FormatInt(id, 10)+"/rename", nil, body); err != nil {
		return fmt.Errorf("rename feed: %w", err)
	}
	return nil
}

func (c *Client) CreateFolder(ctx context.Context, name string) (model.Folder, error) {
	body, err := encodeFields("name", name)
	if err != nil {
		return model.Folder{}, err
	}
	data, err := c.do(ctx, http.MethodPost, "/folders", nil, body)
	if err != nil {
		return model.Folder{}, fmt.Errorf("create folder: %w", err)
	}
	folders, err := DecodeFolders(data)
	if err != nil {
		return model.Folder{}, fmt.Errorf("decode created folder: %w", err)
	}
	if len(folders) == 0 {
		return model.Folder{}, fmt.Errorf("create folder: %w: no folder returned", ErrInvalidResponse)
	}
	return folders[0], nil
}

func (c *Client) DeleteFolder(ctx context.Context, id int64) error {
	if _, err := c.do(ctx, http.MethodDelete, "/folders/"+strconv.FormatInt(id, 10), nil, nil); err != nil {
		return fmt.Errorf("delete folder: %w", err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body []byte) ([]byte, error) {
	endpoint := *c.baseURL
	endpoint.Path = c.baseURL.Path + apiPath + path
	if query != nil {
		endpoint.RawQuery = query.Encode()
	}

	attempt := 0
	operation := func() ([]byte, error) {
		attempt++
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, backoff.Permanent(err)
		}

		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
		if err != nil {
			return nil, backoff.Permanent(err)
		}
		req.SetBasicAuth(c.username, c.password)
		req.Header.Set("Accept", "application/json")
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if c.userAgent != "" {
			req.Header.Set("User-Agent", c.userAgent)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, backoff.Permanent(ctx.Err())
			}
			var dnsErr *net.DNSError
			if errors.As(err, &dnsErr) && dnsErr.IsNotFound {
				return nil, backoff.Permanent(fmt.Errorf("%w: %s", ErrUnknownHost, dnsErr.Name))
			}
			logger.Warn("news api request failed", "module", "newsapi", "action", "request", "resource", path, "result", "retry", "attempt", attempt, "error", err)
			return nil, err
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
		if err != nil {
			return nil, fmt.Errorf("read response: %w", err)
		}

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			httpErr := &HTTPError{StatusCode: resp.StatusCode, Message: gjson.GetBytes(data, "message").String()}
			if httpErr.Temporary() {
				logger.Warn("news api request failed", "module", "newsapi", "action", "request", "resource", path, "result", "retry", "attempt", attempt, "status", resp.StatusCode)
				return nil, httpErr
			}
			return nil, backoff.Permanent(httpErr)
		}
		return data, nil
	}

	// POST is not idempotent and is never retried.
	var policy backoff.BackOff = &backoff.StopBackOff{}
	if c.maxRetryTime > 0 && method != http.MethodPost {
		exp := backoff.NewExponentialBackOff()
		exp.InitialInterval = 500 * time.Millisecond
		exp.MaxInterval = 10 * time.Second
		exp.MaxElapsedTime = c.maxRetryTime
		policy = exp
	}

	data, err := backoff.RetryWithData(operation, backoff.WithContext(policy, ctx))
	if err != nil {
		logger.Debug("news api request failed", "module", "newsapi", "action", "request", "resource", path, "result", "failed", "method", method, "error", err)
		return nil, err
	}
	logger.Debug("news api request", "module", "newsapi", "action", "request", "resource", path, "result", "ok", "method", method, "bytes", len(data))
	return data, nil
}

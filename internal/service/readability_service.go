package service

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"time"

	readability "codeberg.org/readeck/go-readability/v2"
	"github.com/microcosm-cc/bluemonday"

	"ocreader/internal/config"
	"ocreader/internal/logger"
	"ocreader/internal/network"
	"ocreader/internal/repository"
)

const (
	articleTimeout  = 30 * time.Second
	maxArticleBytes = 8 << 20
)

// ReadabilityService extracts the full article behind an item's link.
type ReadabilityService interface {
	FetchReadableContent(ctx context.Context, itemID int64) (string, error)
}

type readabilityService struct {
	items         repository.ItemRepository
	clientFactory HTTPClients
	pagePolicy    *bluemonday.Policy
}

func NewReadabilityService(items repository.ItemRepository, clientFactory HTTPClients) ReadabilityService {
	if clientFactory == nil {
		clientFactory = network.Direct(config.UserAgent)
	}
	// Scripts and styles go before parsing; structural tags stay so the
	// parser can still find the article.
	policy := bluemonday.UGCPolicy()
	policy.AllowElements("article", "section", "header", "footer", "nav", "aside", "main", "figure", "figcaption")
	policy.AllowAttrs("id", "class", "lang", "dir").Globally()

	return &readabilityService{items: items, clientFactory: clientFactory, pagePolicy: policy}
}

// FetchReadableContent returns the cached article of an item, downloading
// and extracting it on first use.
func (s *readabilityService) FetchReadableContent(ctx context.Context, itemID int64) (string, error) {
	item, err := s.items.GetByID(ctx, itemID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	if item.ReadableContent != nil && *item.ReadableContent != "" {
		logger.Debug("readable content cached", "module", "service", "action", "fetch", "resource", "item", "result", "ok", "item_id", itemID)
		return *item.ReadableContent, nil
	}
	if item.URL == nil || *item.URL == "" {
		return "", ErrInvalid
	}
	pageURL, err := url.Parse(*item.URL)
	if err != nil || (pageURL.Scheme != "http" && pageURL.Scheme != "https") {
		return "", ErrInvalid
	}

	page, err := s.download(ctx, pageURL)
	if err != nil {
		logger.Warn("article fetch failed", "module", "service", "action", "fetch", "resource", "item", "result", "failed", "item_id", itemID, "host", pageURL.Host, "error", err)
		return "", err
	}

	parser := readability.NewParser()
	article, err := parser.Parse(bytes.NewReader(s.pagePolicy.SanitizeBytes(page)), pageURL)
	if err != nil {
		return "", fmt.Errorf("%w: extract article: %v", ErrFeedFetch, err)
	}
	var buf bytes.Buffer
	if err := article.RenderHTML(&buf); err != nil {
		return "", fmt.Errorf("render article: %w", err)
	}
	if buf.Len() == 0 {
		return "", ErrInvalid
	}

	content := buf.String()
	if err := s.items.UpdateReadableContent(ctx, itemID, content); err != nil {
		return "", err
	}
	logger.Info("readable content stored", "module", "service", "action", "fetch", "resource", "item", "result", "ok", "item_id", itemID, "bytes", len(content))
	return content, nil
}

func (s *readabilityService) download(ctx context.Context, pageURL *url.URL) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFeedFetch, err)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := s.clientFactory.NewHTTPClient(articleTimeout).Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFeedFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrFeedFetch, resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "" {
		mediaType, _, err := mime.ParseMediaType(ct)
		if err != nil || (mediaType != "text/html" && mediaType != "application/xhtml+xml") {
			return nil, fmt.Errorf("%w: content type %q", ErrInvalid, ct)
		}
	}

	page, err := io.ReadAll(io.LimitReader(resp.Body, maxArticleBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read page: %v", ErrFeedFetch, err)
	}
	return page, nil
}

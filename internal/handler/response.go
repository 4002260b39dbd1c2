package handler

import (
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"ocreader/internal/logger"
	"ocreader/internal/model"
	"ocreader/internal/newsapi"
	"ocreader/internal/service"
)

const timeFormat = time.RFC3339

type errorResponse struct {
	Error string `json:"error"`
}

func writeServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalid):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: "resource not found"})
	case errors.Is(err, service.ErrConflict):
		return c.JSON(http.StatusConflict, errorResponse{Error: "conflict"})
	case errors.Is(err, service.ErrFeedFetch):
		return c.JSON(http.StatusBadGateway, errorResponse{Error: "feed fetch failed"})
	case errors.Is(err, service.ErrNotLoggedIn):
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "not logged in"})
	case errors.Is(err, service.ErrAlreadySyncing):
		return c.JSON(http.StatusConflict, errorResponse{Error: "sync already in progress"})
	case errors.Is(err, newsapi.ErrUnauthorized):
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "server rejected the credentials"})
	case errors.Is(err, newsapi.ErrInsecureConnection):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "insecure connection not allowed"})
	case errors.Is(err, newsapi.ErrInvalidURL):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid server url"})
	case errors.Is(err, newsapi.ErrVersionTooOld), errors.Is(err, newsapi.ErrInvalidVersion):
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	case errors.Is(err, newsapi.ErrUnknownHost):
		return c.JSON(http.StatusBadGateway, errorResponse{Error: "unknown host"})
	case errors.Is(err, newsapi.ErrNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: "resource not found on server"})
	case errors.Is(err, newsapi.ErrConflict):
		return c.JSON(http.StatusConflict, errorResponse{Error: "conflict on server"})
	case isUpstreamError(err):
		logger.Warn("upstream request failed", "module", "handler", "action", "request", "resource", "http", "result", "failed", "path", c.Request().URL.Path, "error", err)
		return c.JSON(http.StatusBadGateway, errorResponse{Error: "server request failed"})
	default:
		logger.Error("request failed", "module", "handler", "action", "request", "resource", "http", "result", "failed", "path", c.Request().URL.Path, "error", err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

// isUpstreamError reports failures of the News API call itself.
func isUpstreamError(err error) bool {
	var httpErr *newsapi.HTTPError
	var netErr net.Error
	return errors.As(err, &httpErr) || errors.As(err, &netErr) || errors.Is(err, newsapi.ErrInvalidResponse)
}

// Error returns a JSON error response with the given status and message
func Error(c echo.Context, status int, message string) error {
	return c.JSON(status, errorResponse{Error: message})
}

type feedResponse struct {
	ID               int64   `json:"id"`
	URL              string  `json:"url"`
	Title            string  `json:"title"`
	Link             *string `json:"link,omitempty"`
	FaviconLink      *string `json:"faviconLink,omitempty"`
	Added            *string `json:"added,omitempty"`
	FolderID         int64   `json:"folderId"`
	UnreadCount      int     `json:"unreadCount"`
	StarredCount     int     `json:"starredCount"`
	Pinned           bool    `json:"pinned"`
	Failed           bool    `json:"failed"`
	UpdateErrorCount int     `json:"updateErrorCount"`
	LastUpdateError  *string `json:"lastUpdateError,omitempty"`
}

func toFeedResponse(feed model.Feed) feedResponse {
	return feedResponse{
		ID:               feed.ID,
		URL:              feed.URL,
		Title:            feed.Title(),
		Link:             feed.Link,
		FaviconLink:      feed.FaviconLink,
		Added:            formatTimePtr(feed.Added),
		FolderID:         feed.FolderID,
		UnreadCount:      feed.UnreadCount,
		StarredCount:     feed.StarredCount,
		Pinned:           feed.Pinned,
		Failed:           feed.IsConsideredFailed(),
		UpdateErrorCount: feed.UpdateErrorCount,
		LastUpdateError:  feed.LastUpdateError,
	}
}

func toFeedResponses(feeds []model.Feed) []feedResponse {
	response := make([]feedResponse, 0, len(feeds))
	for _, feed := range feeds {
		response = append(response, toFeedResponse(feed))
	}
	return response
}

type itemResponse struct {
	ID              int64   `json:"id"`
	FeedID          int64   `json:"feedId"`
	GUIDHash        string  `json:"guidHash"`
	Title           *string `json:"title,omitempty"`
	URL             *string `json:"url,omitempty"`
	Author          *string `json:"author,omitempty"`
	Body            *string `json:"body,omitempty"`
	ReadableContent *string `json:"readableContent,omitempty"`
	EnclosureMime   *string `json:"enclosureMime,omitempty"`
	EnclosureLink   *string `json:"enclosureLink,omitempty"`
	PubDate         *string `json:"pubDate,omitempty"`
	UpdatedAt       *string `json:"updatedAt,omitempty"`
	Unread          bool    `json:"unread"`
	Starred         bool    `json:"starred"`
	Pending         bool    `json:"pending"`
}

func toItemResponse(item model.Item) itemResponse {
	return itemResponse{
		ID:              item.ID,
		FeedID:          item.FeedID,
		GUIDHash:        item.GUIDHash,
		Title:           item.Title,
		URL:             item.URL,
		Author:          item.Author,
		Body:            item.Body,
		ReadableContent: item.ReadableContent,
		EnclosureMime:   item.EnclosureMime,
		EnclosureLink:   item.EnclosureLink,
		PubDate:         formatTimePtr(item.PubDate),
		UpdatedAt:       formatTimePtr(item.EffectiveUpdatedAt()),
		Unread:          item.Unread,
		Starred:         item.Starred,
		Pending:         item.HasChanges(),
	}
}

type itemListResponse struct {
	Items   []itemResponse `json:"items"`
	HasMore bool           `json:"hasMore"`
}

// toItemListResponse trims the extra row fetched to detect another page.
func toItemListResponse(items []model.Item, limit int) itemListResponse {
	hasMore := limit > 0 && len(items) > limit
	if hasMore {
		items = items[:limit]
	}
	response := itemListResponse{Items: make([]itemResponse, 0, len(items)), HasMore: hasMore}
	for _, item := range items {
		response.Items = append(response.Items, toItemResponse(item))
	}
	return response
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(timeFormat)
	return &s
}

package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"ocreader/internal/service"
)

type FeedHandler struct {
	service service.FeedService
}

type subscribeRequest struct {
	URL      string `json:"url"`
	FolderID int64  `json:"folderId"`
}

type updateFeedRequest struct {
	Name     *string `json:"name,omitempty"`
	FolderID *int64  `json:"folderId,omitempty"`
}

type feedPreviewResponse struct {
	URL         string  `json:"url"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	SiteURL     *string `json:"siteUrl,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
	ItemCount   *int    `json:"itemCount,omitempty"`
	LastUpdated *string `json:"lastUpdated,omitempty"`
}

func NewFeedHandler(service service.FeedService) *FeedHandler {
	return &FeedHandler{service: service}
}

func (h *FeedHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/feeds", h.Subscribe)
	g.GET("/feeds", h.List)
	g.GET("/feeds/preview", h.Preview)
	g.GET("/feeds/failed", h.Failed)
	g.GET("/feeds/:id", h.Get)
	g.PUT("/feeds/:id", h.Update)
	g.DELETE("/feeds/:id", h.Unsubscribe)
}

// Subscribe adds a feed on the server.
// @Summary Subscribe to a feed
// @Tags feeds
// @Accept json
// @Produce json
// @Param feed body subscribeRequest true "Feed URL and folder"
// @Success 201 {object} feedResponse
// @Failure 400 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Router /feeds [post]
func (h *FeedHandler) Subscribe(c echo.Context) error {
	var req subscribeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	feed, err := h.service.Subscribe(c.Request().Context(), req.URL, req.FolderID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, toFeedResponse(feed))
}

// List returns the feeds, optionally of one folder.
// @Summary List feeds
// @Tags feeds
// @Produce json
// @Param folderId query int false "Filter by folder ID"
// @Success 200 {array} feedResponse
// @Router /feeds [get]
func (h *FeedHandler) List(c echo.Context) error {
	var folderID *int64
	if raw := c.QueryParam("folderId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid folderId"})
		}
		folderID = &id
	}
	feeds, err := h.service.List(c.Request().Context(), folderID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toFeedResponses(feeds))
}

// Preview fetches a feed URL without subscribing.
// @Summary Preview a feed
// @Tags feeds
// @Produce json
// @Param url query string true "Feed URL"
// @Success 200 {object} feedPreviewResponse
// @Failure 400 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /feeds/preview [get]
func (h *FeedHandler) Preview(c echo.Context) error {
	preview, err := h.service.Preview(c.Request().Context(), c.QueryParam("url"))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, feedPreviewResponse{
		URL:         preview.URL,
		Title:       preview.Title,
		Description: preview.Description,
		SiteURL:     preview.SiteURL,
		ImageURL:    preview.ImageURL,
		ItemCount:   preview.ItemCount,
		LastUpdated: preview.LastUpdated,
	})
}

func (h *FeedHandler) Failed(c echo.Context) error {
	feeds, err := h.service.Failed(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toFeedResponses(feeds))
}

func (h *FeedHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	feed, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toFeedResponse(feed))
}

// Update renames a feed and/or moves it to another folder.
// @Summary Update a feed
// @Tags feeds
// @Accept json
// @Produce json
// @Param id path int true "Feed ID"
// @Param feed body updateFeedRequest true "New name and/or folder"
// @Success 200 {object} feedResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /feeds/{id} [put]
func (h *FeedHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	var req updateFeedRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	if req.Name == nil && req.FolderID == nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "nothing to update"})
	}

	ctx := c.Request().Context()
	if req.Name != nil {
		if _, err := h.service.Rename(ctx, id, *req.Name); err != nil {
			return writeServiceError(c, err)
		}
	}
	if req.FolderID != nil {
		if _, err := h.service.Move(ctx, id, *req.FolderID); err != nil {
			return writeServiceError(c, err)
		}
	}
	feed, err := h.service.Get(ctx, id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toFeedResponse(feed))
}

// Unsubscribe deletes a feed on the server and locally.
// @Summary Unsubscribe from a feed
// @Tags feeds
// @Param id path int true "Feed ID"
// @Success 204 "No Content"
// @Failure 404 {object} errorResponse
// @Router /feeds/{id} [delete]
func (h *FeedHandler) Unsubscribe(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	if err := h.service.Unsubscribe(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

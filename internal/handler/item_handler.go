package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ocreader/internal/service"
)

type ItemHandler struct {
	service            service.ItemService
	readabilityService service.ReadabilityService
}

type updateReadRequest struct {
	Read bool `json:"read"`
}

type updateStarredRequest struct {
	Starred bool `json:"starred"`
}

type markAllReadRequest struct {
	Kind string `json:"kind"`
	ID   int64  `json:"id"`
}

type markAllReadResponse struct {
	Marked int64 `json:"marked"`
}

type readableContentResponse struct {
	ReadableContent string `json:"readableContent"`
}

func NewItemHandler(service service.ItemService, readabilityService service.ReadabilityService) *ItemHandler {
	return &ItemHandler{service: service, readabilityService: readabilityService}
}

func (h *ItemHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/items/changes", h.PendingChanges)
	g.POST("/items/mark-read", h.MarkAllRead)
	g.GET("/items/:id", h.Get)
	g.PATCH("/items/:id/read", h.UpdateRead)
	g.PATCH("/items/:id/starred", h.UpdateStarred)
	g.POST("/items/:id/fetch-readable", h.FetchReadable)
}

func (h *ItemHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	item, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toItemResponse(item))
}

// UpdateRead marks an item read or unread locally. The change is sent
// with the next sync.
// @Summary Update read state
// @Tags items
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param body body updateReadRequest true "Read state"
// @Success 200 {object} itemResponse
// @Failure 404 {object} errorResponse
// @Router /items/{id}/read [patch]
func (h *ItemHandler) UpdateRead(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	var req updateReadRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	item, err := h.service.SetRead(c.Request().Context(), id, req.Read)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toItemResponse(item))
}

// UpdateStarred stars or unstars an item locally.
// @Summary Update starred state
// @Tags items
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param body body updateStarredRequest true "Starred state"
// @Success 200 {object} itemResponse
// @Failure 404 {object} errorResponse
// @Router /items/{id}/starred [patch]
func (h *ItemHandler) UpdateStarred(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	var req updateStarredRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	item, err := h.service.SetStarred(c.Request().Context(), id, req.Starred)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toItemResponse(item))
}

// MarkAllRead marks every item below a tree item as read.
// @Summary Mark all items read
// @Tags items
// @Accept json
// @Produce json
// @Param body body markAllReadRequest true "Tree item"
// @Success 200 {object} markAllReadResponse
// @Failure 400 {object} errorResponse
// @Router /items/mark-read [post]
func (h *ItemHandler) MarkAllRead(c echo.Context) error {
	var req markAllReadRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	ref, err := service.ParseTreeItemRef(req.Kind, req.ID)
	if err != nil {
		return writeServiceError(c, err)
	}
	marked, err := h.service.MarkAllRead(c.Request().Context(), ref)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, markAllReadResponse{Marked: marked})
}

// PendingChanges returns the flag changes waiting for the next sync, in
// the form they are uploaded.
func (h *ItemHandler) PendingChanges(c echo.Context) error {
	data, err := h.service.EncodedChanges(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSONBlob(http.StatusOK, data)
}

// FetchReadable extracts the article behind the item link.
// @Summary Fetch readable content
// @Tags items
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} readableContentResponse
// @Failure 404 {object} errorResponse
// @Router /items/{id}/fetch-readable [post]
func (h *ItemHandler) FetchReadable(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	content, err := h.readabilityService.FetchReadableContent(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, readableContentResponse{ReadableContent: content})
}

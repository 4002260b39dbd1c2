package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ocreader/internal/model"
	"ocreader/internal/service"
)

type TreeHandler struct {
	tree     service.TreeService
	settings service.SettingsService
}

type treeItemResponse struct {
	Kind         string         `json:"kind"`
	ID           int64          `json:"id"`
	Name         string         `json:"name"`
	UnreadCount  int            `json:"unreadCount"`
	StarredCount int            `json:"starredCount"`
	Failed       bool           `json:"failed,omitempty"`
	Feeds        []feedResponse `json:"feeds,omitempty"`
}

type selectRequest struct {
	Kind       string `json:"kind"`
	ID         int64  `json:"id"`
	OnlyUnread *bool  `json:"onlyUnread,omitempty"`
}

type selectionResponse struct {
	Slot int64  `json:"slot"`
	Kind string `json:"kind"`
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func NewTreeHandler(tree service.TreeService, settings service.SettingsService) *TreeHandler {
	return &TreeHandler{tree: tree, settings: settings}
}

func (h *TreeHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/tree", h.Tree)
	g.GET("/tree/feeds", h.Feeds)
	g.GET("/tree/items", h.Items)
	g.GET("/selection/:slot", h.Selection)
	g.PUT("/selection/:slot", h.Select)
	g.GET("/selection/items", h.ActiveItems)
}

// Tree returns the virtual items, the folders and the root feeds with
// their counters.
// @Summary Feed tree
// @Tags tree
// @Produce json
// @Success 200 {array} treeItemResponse
// @Router /tree [get]
func (h *TreeHandler) Tree(c echo.Context) error {
	tree, err := h.tree.Tree(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	response := make([]treeItemResponse, 0, len(tree))
	for _, item := range tree {
		response = append(response, toTreeItemResponse(item))
	}
	return c.JSON(http.StatusOK, response)
}

func (h *TreeHandler) Feeds(c echo.Context) error {
	ref, err := parseTreeItemRef(c.QueryParam("kind"), c.QueryParam("id"))
	if err != nil {
		return writeServiceError(c, err)
	}
	feeds, err := h.tree.Feeds(c.Request().Context(), ref)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toFeedResponses(feeds))
}

// Items lists the items below a tree item.
// @Summary List items of a tree item
// @Tags tree
// @Produce json
// @Param kind query string true "all, starred, fresh, folder or feed"
// @Param id query int false "Folder or feed ID"
// @Param onlyUnread query bool false "Only unread items"
// @Param oldestFirst query bool false "Oldest items first"
// @Param limit query int false "Page size (default 50)"
// @Param offset query int false "Offset for pagination"
// @Success 200 {object} itemListResponse
// @Failure 400 {object} errorResponse
// @Router /tree/items [get]
func (h *TreeHandler) Items(c echo.Context) error {
	ref, err := parseTreeItemRef(c.QueryParam("kind"), c.QueryParam("id"))
	if err != nil {
		return writeServiceError(c, err)
	}
	prefs, err := h.settings.GetPreferences(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	opts := parseListOptions(c, prefs)
	limit := opts.Limit
	opts.Limit++

	items, err := h.tree.Items(c.Request().Context(), ref, opts)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toItemListResponse(items, limit))
}

func (h *TreeHandler) Selection(c echo.Context) error {
	slot, err := parseIDParam(c, "slot")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid slot"})
	}
	selection, err := h.tree.Selection(c.Request().Context(), slot)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toSelectionResponse(selection))
}

// Select shows a tree item in the list or pager slot.
// @Summary Select a tree item
// @Tags tree
// @Accept json
// @Produce json
// @Param slot path int true "0 for the list, 1 for the pager"
// @Param selection body selectRequest true "Tree item"
// @Success 200 {object} selectionResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /selection/{slot} [put]
func (h *TreeHandler) Select(c echo.Context) error {
	slot, err := parseIDParam(c, "slot")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid slot"})
	}
	var req selectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	ref, err := service.ParseTreeItemRef(req.Kind, req.ID)
	if err != nil {
		return writeServiceError(c, err)
	}

	var onlyUnread bool
	if req.OnlyUnread != nil {
		onlyUnread = *req.OnlyUnread
	} else {
		prefs, err := h.settings.GetPreferences(c.Request().Context())
		if err != nil {
			return writeServiceError(c, err)
		}
		onlyUnread = prefs.OnlyUnread
	}

	selection, err := h.tree.Select(c.Request().Context(), slot, ref, onlyUnread)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toSelectionResponse(selection))
}

// ActiveItems pages through the items snapshotted by the last selection.
func (h *TreeHandler) ActiveItems(c echo.Context) error {
	prefs, err := h.settings.GetPreferences(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	opts := parseListOptions(c, prefs)
	// The snapshot already reflects the unread filter of the selection.
	if c.QueryParam("onlyUnread") == "" {
		opts.OnlyUnread = false
	}
	limit := opts.Limit
	opts.Limit++

	items, err := h.tree.ActiveItems(c.Request().Context(), opts)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toItemListResponse(items, limit))
}

func toTreeItemResponse(item service.TreeItem) treeItemResponse {
	response := treeItemResponse{
		Kind:         item.Kind,
		ID:           item.ID,
		Name:         item.Name,
		UnreadCount:  item.UnreadCount,
		StarredCount: item.StarredCount,
		Failed:       item.Failed,
	}
	if item.Kind == service.KindFolder {
		response.Feeds = toFeedResponses(item.Feeds)
	}
	return response
}

func toSelectionResponse(selection model.TemporaryFeed) selectionResponse {
	return selectionResponse{
		Slot: selection.ID,
		Kind: selection.TreeItemKind,
		ID:   selection.TreeItemID,
		Name: selection.Name,
	}
}

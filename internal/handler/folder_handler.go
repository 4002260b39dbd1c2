package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ocreader/internal/service"
)

// FolderHandler creates and deletes folders on the server. Reads go
// through the tree so folders come with their counters.
type FolderHandler struct {
	folders service.FolderService
	tree    service.TreeService
}

type createFolderRequest struct {
	Name string `json:"name"`
}

func NewFolderHandler(folders service.FolderService, tree service.TreeService) *FolderHandler {
	return &FolderHandler{folders: folders, tree: tree}
}

func (h *FolderHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/folders", h.List)
	g.POST("/folders", h.Create)
	g.GET("/folders/:id", h.Get)
	g.DELETE("/folders/:id", h.Delete)
}

// List returns the folders with unread and starred counts.
// @Summary List folders
// @Tags folders
// @Produce json
// @Success 200 {array} treeItemResponse
// @Router /folders [get]
func (h *FolderHandler) List(c echo.Context) error {
	tree, err := h.tree.Tree(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	response := []treeItemResponse{}
	for _, item := range tree {
		if item.Kind != service.KindFolder {
			continue
		}
		item.Feeds = nil
		response = append(response, toTreeItemResponse(item))
	}
	return c.JSON(http.StatusOK, response)
}

// Get returns a folder with its feeds.
// @Summary Get a folder
// @Tags folders
// @Produce json
// @Param id path int true "Folder ID"
// @Success 200 {object} treeItemResponse
// @Failure 404 {object} errorResponse
// @Router /folders/{id} [get]
func (h *FolderHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid folder id"})
	}
	item, err := h.tree.Resolve(c.Request().Context(), service.TreeItemRef{Kind: service.KindFolder, ID: id})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toTreeItemResponse(item))
}

// Create creates a folder on the server and stores it locally.
// @Summary Create a folder
// @Tags folders
// @Accept json
// @Produce json
// @Param folder body createFolderRequest true "Folder name"
// @Success 201 {object} treeItemResponse
// @Failure 400 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Router /folders [post]
func (h *FolderHandler) Create(c echo.Context) error {
	var req createFolderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	folder, err := h.folders.Create(c.Request().Context(), req.Name)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, toTreeItemResponse(service.TreeItem{Kind: service.KindFolder, ID: folder.ID, Name: folder.Name}))
}

// Delete removes a folder on the server, then locally with its feeds
// and items.
// @Summary Delete a folder
// @Tags folders
// @Param id path int true "Folder ID"
// @Success 204 "No Content"
// @Failure 404 {object} errorResponse
// @Router /folders/{id} [delete]
func (h *FolderHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid folder id"})
	}
	if err := h.folders.Delete(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ocreader/internal/service"
)

type SettingsHandler struct {
	service service.SettingsService
}

type preferencesRequest struct {
	OnlyUnread  *bool `json:"onlyUnread"`
	OldestFirst *bool `json:"oldestFirst"`
}

func NewSettingsHandler(service service.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

func (h *SettingsHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/settings/preferences", h.GetPreferences)
	g.PUT("/settings/preferences", h.UpdatePreferences)
}

func (h *SettingsHandler) GetPreferences(c echo.Context) error {
	prefs, err := h.service.GetPreferences(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, prefs)
}

// UpdatePreferences changes the given preferences and keeps the others.
// @Summary Update preferences
// @Tags settings
// @Accept json
// @Produce json
// @Param prefs body preferencesRequest true "Preferences"
// @Success 200 {object} service.Preferences
// @Router /settings/preferences [put]
func (h *SettingsHandler) UpdatePreferences(c echo.Context) error {
	var req preferencesRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	ctx := c.Request().Context()
	prefs, err := h.service.GetPreferences(ctx)
	if err != nil {
		return writeServiceError(c, err)
	}
	if req.OnlyUnread != nil {
		prefs.OnlyUnread = *req.OnlyUnread
	}
	if req.OldestFirst != nil {
		prefs.OldestFirst = *req.OldestFirst
	}
	if err := h.service.SetPreferences(ctx, prefs); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, prefs)
}

package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"ocreader/internal/model"
	"ocreader/internal/service"
)

type SyncHandler struct {
	service service.SyncService
}

type syncRunResponse struct {
	ID            string  `json:"id"`
	StartedAt     string  `json:"startedAt"`
	FinishedAt    *string `json:"finishedAt,omitempty"`
	Result        string  `json:"result"`
	Error         *string `json:"error,omitempty"`
	ItemsReceived int     `json:"itemsReceived"`
	ChangesSent   int     `json:"changesSent"`
}

type syncStatusResponse struct {
	Syncing bool `json:"syncing"`
}

func NewSyncHandler(service service.SyncService) *SyncHandler {
	return &SyncHandler{service: service}
}

func (h *SyncHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/sync", h.Sync)
	g.GET("/sync/status", h.Status)
	g.GET("/sync/runs", h.Runs)
}

// Sync runs a full synchronization and waits for it.
// @Summary Synchronize
// @Tags sync
// @Produce json
// @Success 200 {object} syncRunResponse
// @Failure 401 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Router /sync [post]
func (h *SyncHandler) Sync(c echo.Context) error {
	run, err := h.service.Sync(c.Request().Context())
	if err != nil {
		if run.ID != 0 {
			return c.JSON(http.StatusBadGateway, toSyncRunResponse(run))
		}
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toSyncRunResponse(run))
}

func (h *SyncHandler) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, syncStatusResponse{Syncing: h.service.IsSyncing()})
}

func (h *SyncHandler) Runs(c echo.Context) error {
	limit := 20
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}
	runs, err := h.service.Runs(c.Request().Context(), limit)
	if err != nil {
		return writeServiceError(c, err)
	}
	response := make([]syncRunResponse, 0, len(runs))
	for _, run := range runs {
		response = append(response, toSyncRunResponse(run))
	}
	return c.JSON(http.StatusOK, response)
}

func toSyncRunResponse(run model.SyncRun) syncRunResponse {
	return syncRunResponse{
		ID:            strconv.FormatInt(run.ID, 10),
		StartedAt:     run.StartedAt.UTC().Format(timeFormat),
		FinishedAt:    formatTimePtr(run.FinishedAt),
		Result:        run.Result,
		Error:         run.Error,
		ItemsReceived: run.ItemsReceived,
		ChangesSent:   run.ChangesSent,
	}
}

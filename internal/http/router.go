package http

import (
	nethttp "net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ocreader/internal/handler"
)

// Handlers groups everything mounted under /api.
type Handlers struct {
	Account  *handler.AccountHandler
	Tree     *handler.TreeHandler
	Folder   *handler.FolderHandler
	Feed     *handler.FeedHandler
	Item     *handler.ItemHandler
	Sync     *handler.SyncHandler
	Settings *handler.SettingsHandler
}

func NewRouter(h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(RequestLoggerMiddleware())

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(nethttp.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")
	h.Account.RegisterRoutes(api)
	h.Tree.RegisterRoutes(api)
	h.Folder.RegisterRoutes(api)
	h.Feed.RegisterRoutes(api)
	h.Item.RegisterRoutes(api)
	h.Sync.RegisterRoutes(api)
	h.Settings.RegisterRoutes(api)

	return e
}

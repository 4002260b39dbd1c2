package http_test

import (
	"bytes"
	nethttp "net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"ocreader/internal/handler"
	apphttp "ocreader/internal/http"
	"ocreader/internal/logger"
)

func newTestRouter() *echo.Echo {
	return apphttp.NewRouter(apphttp.Handlers{
		Account:  handler.NewAccountHandler(nil),
		Tree:     handler.NewTreeHandler(nil, nil),
		Folder:   handler.NewFolderHandler(nil, nil),
		Feed:     handler.NewFeedHandler(nil),
		Item:     handler.NewItemHandler(nil, nil),
		Sync:     handler.NewSyncHandler(nil),
		Settings: handler.NewSettingsHandler(nil),
	})
}

func TestRouter_Healthz(t *testing.T) {
	e := newTestRouter()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodGet, "/healthz", nil))

	require.Equal(t, nethttp.StatusOK, rec.Code)
	require.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestRouter_Metrics(t *testing.T) {
	e := newTestRouter()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodGet, "/metrics", nil))

	require.Equal(t, nethttp.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestRequestLoggerMiddleware_LogsFailures(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })

	e := newTestRouter()
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodGet, "/api/items/abc", nil))

	require.Equal(t, nethttp.StatusBadRequest, rec.Code)
	require.Contains(t, buf.String(), "api request")
	require.Contains(t, buf.String(), `resource="/api/items/:id"`)
	require.Contains(t, buf.String(), "/api/items/abc")
}

func TestRequestLoggerMiddleware_RecordsMetrics(t *testing.T) {
	e := newTestRouter()
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(nethttp.MethodGet, "/api/items/abc", nil))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodGet, "/metrics", nil))

	require.Contains(t, rec.Body.String(), `ocreader_api_requests_total{code="400",method="GET",route="/api/items/:id"}`)
}

package http

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"ocreader/internal/logger"
)

var (
	apiRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ocreader",
		Name:      "api_requests_total",
		Help:      "Local API requests by route and status code.",
	}, []string{"method", "route", "code"})

	apiRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ocreader",
		Name:      "api_request_duration_seconds",
		Help:      "Local API request latency by route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})
)

// RequestLoggerMiddleware logs every request and records it in the API
// metrics. Probe routes are only logged at debug level.
func RequestLoggerMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			if err := next(c); err != nil {
				c.Error(err)
			}
			elapsed := time.Since(start)

			req := c.Request()
			status := c.Response().Status
			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			apiRequests.WithLabelValues(req.Method, route, strconv.Itoa(status)).Inc()
			apiRequestDuration.WithLabelValues(req.Method, route).Observe(elapsed.Seconds())

			result := "ok"
			if status >= 400 {
				result = "failed"
			}
			fields := []interface{}{
				"module", "http",
				"action", "request",
				"resource", route,
				"result", result,
				"method", req.Method,
				"path", req.URL.Path,
				"status_code", status,
				"duration_ms", elapsed.Milliseconds(),
				"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
			}
			switch {
			case status >= 500:
				logger.Error("api request", fields...)
			case status >= 400:
				logger.Warn("api request", fields...)
			case route == "/healthz" || route == "/metrics":
				logger.Debug("api request", fields...)
			default:
				logger.Info("api request", fields...)
			}
			return nil
		}
	}
}

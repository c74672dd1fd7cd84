package middleware

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"agroadvisor/pkg/logging"
	"agroadvisor/pkg/metrics"
)

const HeaderRequestID = "X-Request-ID"

// RequestLogger tags every request with an ID, logs it once it completes and
// records its latency. Upstream request IDs are kept.
func RequestLogger() echo.MiddlewareFunc {
	log := logging.With("http")
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(HeaderRequestID)
			if id == "" {
				id = uuid.New().String()
			}
			c.Response().Header().Set(HeaderRequestID, id)
			c.Set("request_id", id)

			start := time.Now()
			err := next(c)
			if err != nil {
				// let the error handler write the response so the status is final
				c.Error(err)
			}
			elapsed := time.Since(start)

			status := c.Response().Status
			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			metrics.HTTPRequestDuration.WithLabelValues(c.Request().Method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())

			ev := log.Info()
			if status >= 500 {
				ev = log.Error()
			}
			ev.Str("request_id", id).
				Str("method", c.Request().Method).
				Str("path", c.Request().URL.Path).
				Int("status", status).
				Dur("elapsed", elapsed).
				Msg("request")
			return nil
		}
	}
}

// RequestID returns the ID RequestLogger assigned, if any.
func RequestID(c echo.Context) string {
	id, _ := c.Get("request_id").(string)
	return id
}

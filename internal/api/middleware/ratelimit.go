package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/litogalan/portfolio-cms/internal/api/metrics"
)

// RateStore counts hits per key inside a fixed window.
type RateStore interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RateLimit rejects a client IP once it exceeds limit requests within window.
// A store failure lets the request through: the limiter protects against
// brute force, it must not take the route down with it.
func RateLimit(store RateStore, name string, limit int64, window time.Duration, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := fmt.Sprintf("ratelimit:%s:%s", name, c.RealIP())

			count, err := store.Incr(c.Request().Context(), key, window)
			if err != nil {
				log.Warn().Err(err).Str("key", key).Msg("rate limiter unavailable, allowing request")
				return next(c)
			}
			if count > limit {
				metrics.RateLimitedTotal.WithLabelValues(name).Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests, try again later")
			}

			return next(c)
		}
	}
}

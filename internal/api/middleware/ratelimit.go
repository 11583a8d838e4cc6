package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/shopor/catalog-api/internal/api/metrics"
)

// Allower abstracts the rate limit backend (Redis fixed window in production).
type Allower interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimit throttles a route per client IP. The limiter failing (Redis
// down) is logged and the request is let through: throttling is protection,
// not a dependency the credential endpoints should die with.
func RateLimit(limiter Allower, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.Path() + ":" + c.RealIP()

			ok, err := limiter.Allow(c.Request().Context(), key)
			if err != nil {
				log.Warn().Err(err).Str("key", key).Msg("rate limit check failed, allowing request")
				return next(c)
			}
			if !ok {
				metrics.RateLimitedTotal.WithLabelValues(c.Path()).Inc()
				return c.JSON(http.StatusTooManyRequests, map[string]string{"error": "too many requests"})
			}

			return next(c)
		}
	}
}

package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// AttemptLimiter reports whether another attempt from the given key is allowed.
type AttemptLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// LoginRateLimit throttles login attempts per client IP. A nil limiter
// disables throttling. Limiter backend failures fail open.
func LoginRateLimit(limiter AttemptLimiter, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if limiter == nil {
				return next(c)
			}

			allowed, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				log.Warn().Err(err).Msg("login rate limiter unavailable")
				return next(c)
			}
			if !allowed {
				return c.JSON(http.StatusTooManyRequests, authErrorResponse{
					Error: "Too many login attempts, please try again later",
				})
			}

			return next(c)
		}
	}
}

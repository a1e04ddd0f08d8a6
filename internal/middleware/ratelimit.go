package middleware

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/trainee-auth/internal/config"
)

// NewRateLimiter returns a fixed-window limiter keyed by client IP and
// route, backed by Redis so the limit holds across replicas. It is applied
// to the unauthenticated register and login routes, where credential
// guessing would otherwise be free. When Redis is unavailable the limiter
// fails open: auth availability wins over throttling.
func NewRateLimiter(cfg config.RateLimitConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error { return next(c) }
		}
	}

	// Windows are bucketed by whole seconds; clamp here as well so a config
	// built by hand cannot divide by zero per request.
	window := cfg.Window
	if window < time.Second {
		window = time.Second
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()
			if ip == "" {
				ip = "unknown"
			}
			bucket := time.Now().Unix() / int64(window/time.Second)
			key := cfg.Prefix + ":" + c.Request().Method + ":" + c.Path() + ":" + ip + ":" + strconv.FormatInt(bucket, 10)

			ctx := c.Request().Context()
			n, err := rdb.Incr(ctx, key).Result()
			if err != nil {
				c.Logger().Warnf("ratelimit: redis error for key=%s: %v", key, err)
				return next(c)
			}
			if n == 1 {
				// First hit in this window owns the key expiry.
				_ = rdb.Expire(ctx, key, window).Err()
			}

			remaining := int64(cfg.Limit) - n
			if remaining < 0 {
				remaining = 0
			}
			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(cfg.Limit))
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

			if n > int64(cfg.Limit) {
				secs := int(math.Ceil(window.Seconds()))
				c.Response().Header().Set("Retry-After", strconv.Itoa(secs))
				return c.JSON(http.StatusTooManyRequests, echo.Map{
					"error":       "too_many_requests",
					"retry_after": secs,
				})
			}
			return next(c)
		}
	}
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/trainee-auth/internal/config"
)

// Without a Redis client the limiter must fail open and pass requests
// through untouched.
func TestRateLimiterFailsOpenWithoutRedis(t *testing.T) {
	t.Parallel()

	e := echo.New()
	e.GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, "pong")
	}, NewRateLimiter(config.RateLimitConfig{Enabled: true, Limit: 1}, nil))

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

// A hand-built config with a sub-second window must not panic the window
// math; the limiter clamps to one second and, with Redis unreachable,
// still fails open.
func TestRateLimiterClampsSubSecondWindow(t *testing.T) {
	t.Parallel()

	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = rdb.Close() })

	e := echo.New()
	e.GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, "pong")
	}, NewRateLimiter(config.RateLimitConfig{
		Enabled: true,
		Limit:   1,
		Window:  100 * time.Millisecond,
		Prefix:  "rl",
	}, rdb))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

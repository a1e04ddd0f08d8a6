package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/trainee-auth/internal/config"
	"github.com/iliyamo/trainee-auth/internal/handler"
	"github.com/iliyamo/trainee-auth/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication.
// Currently it exposes only a health check used by load balancers and
// monitoring systems.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the trainee auth routes. Register and login are
// public and rate limited; logout, reset-password and the profile endpoint
// run behind the session guard, which verifies the bearer token and
// resolves it to a trainee record before the handler executes.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string, finder middleware.TraineeFinder, rlCfg config.RateLimitConfig, rdb *redis.Client) {
	public := e.Group("/v1/trainees")
	public.Use(middleware.NewRateLimiter(rlCfg, rdb))
	public.POST("/register", a.Register)
	public.POST("/login", a.Login)

	protected := e.Group("/v1/trainees")
	protected.Use(middleware.SessionGuard(jwtSecret, finder))
	protected.POST("/logout", a.Logout)
	protected.POST("/reset-password", a.ResetPassword)
	protected.GET("/me", a.Me)
}

package middleware // middleware provides shared request processing for handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/trainee-auth/internal/model"
	"github.com/iliyamo/trainee-auth/internal/repository"
	"github.com/iliyamo/trainee-auth/internal/utils"
)

// TraineeFinder is the single store operation the guard needs to resolve a
// token claim back to a live record.
type TraineeFinder interface {
	FindByID(ctx context.Context, id uint64) (model.Trainee, error)
}

// traineeKey is the context key under which the guard stores the resolved
// trainee record.
const traineeKey = "trainee"

// SessionGuard returns an Echo middleware that authenticates a request from
// its Authorization header. The chain is: extract the Bearer token, verify
// signature and expiry, then resolve the claimed trainee id against the
// store. Each failure kind gets its own 401 body so clients can tell a
// stale token from a deleted account. On success the resolved record is
// attached to the context and handlers read it via CurrentTrainee.
//
// Nothing persists across requests; every request is authenticated from
// scratch against the token it carries.
func SessionGuard(secret string, store TraineeFinder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			claims, err := utils.VerifyAccessToken(secret, raw)
			if err != nil {
				switch {
				case errors.Is(err, utils.ErrTokenExpired):
					return c.JSON(http.StatusUnauthorized, echo.Map{"error": "token expired"})
				case errors.Is(err, utils.ErrTokenInvalidSignature):
					return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token signature"})
				default:
					return c.JSON(http.StatusUnauthorized, echo.Map{"error": "malformed token"})
				}
			}

			ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
			defer cancel()

			// The claim is a weak reference: a well-formed token may outlive
			// its record, and then resolution fails here rather than at
			// signature verification.
			t, err := store.FindByID(ctx, claims.TraineeID)
			if err != nil {
				if errors.Is(err, repository.ErrTraineeNotFound) {
					return c.JSON(http.StatusUnauthorized, echo.Map{"error": "identity not found"})
				}
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "lookup failed"})
			}

			c.Set(traineeKey, t)
			return next(c)
		}
	}
}

// CurrentTrainee returns the record the guard attached to the context. The
// boolean is false when the route is not behind SessionGuard.
func CurrentTrainee(c echo.Context) (model.Trainee, bool) {
	t, ok := c.Get(traineeKey).(model.Trainee)
	return t, ok
}

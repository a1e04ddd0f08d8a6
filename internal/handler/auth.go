package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/trainee-auth/internal/middleware"
	"github.com/iliyamo/trainee-auth/internal/model"
	"github.com/iliyamo/trainee-auth/internal/queue"
	"github.com/iliyamo/trainee-auth/internal/service"
)

// AuthHandler bundles dependencies for the trainee auth endpoints.
type AuthHandler struct {
	Trainees *service.TraineeService
	// PublishRegistered is called fire-and-forget after a successful
	// registration. Nil disables publishing (tests).
	PublishRegistered func(context.Context, queue.TraineeRegisteredEvent) error
}

func NewAuthHandler(svc *service.TraineeService) *AuthHandler {
	return &AuthHandler{Trainees: svc, PublishRegistered: queue.PublishTraineeRegistered}
}

// ----- DTOs -----

type registerReq struct {
	PhoneNumber string `json:"traineePhoneNumber"`
	Password    string `json:"traineePassword"`
	Name        string `json:"traineeName"`
}
type loginReq struct {
	PhoneNumber string `json:"traineePhoneNumber"`
	Password    string `json:"traineePassword"`
}
type resetReq struct {
	Password string `json:"traineePassword"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}

// profilePart is the outward view of a trainee record. The password hash is
// deliberately not part of this struct so it can never be serialized back
// to a client.
type profilePart struct {
	ID          uint64    `json:"id"`
	PhoneNumber string    `json:"traineePhoneNumber"`
	Name        string    `json:"traineeName"`
	CreatedAt   time.Time `json:"createdAt"`
}

func profileOf(t model.Trainee) profilePart {
	return profilePart{ID: t.ID, PhoneNumber: t.PhoneNumber, Name: t.Name, CreatedAt: t.CreatedAt}
}

// Register: validate, create the account and return the new profile.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	// Empty fields fall through to the validation pipeline, which reports
	// them as the matching format error.
	t, err := h.Trainees.Register(ctx, strings.TrimSpace(req.PhoneNumber), req.Password, strings.TrimSpace(req.Name))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPhoneFormat),
			errors.Is(err, service.ErrInvalidPhoneLength),
			errors.Is(err, service.ErrInvalidPasswordFormat):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		case errors.Is(err, service.ErrDuplicatePhone):
			return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create trainee failed"})
	}

	if h.PublishRegistered != nil {
		// Broker failures are logged by the publisher and ignored here; the
		// account already exists.
		_ = h.PublishRegistered(ctx, queue.TraineeRegisteredEvent{
			TraineeID:    t.ID,
			PhoneNumber:  t.PhoneNumber,
			Name:         t.Name,
			RegisteredAt: time.Now().UTC().Format(time.RFC3339),
		})
	}

	return c.JSON(http.StatusCreated, profileOf(t))
}

// Login: verify credentials and return an access token, nothing else.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	// An empty phone number simply finds no record and reports the same
	// unknown-phone error as any other miss.
	tok, err := h.Trainees.Login(ctx, strings.TrimSpace(req.PhoneNumber), req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPhone), errors.Is(err, service.ErrInvalidPassword):
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "login failed"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"access": tokenPart{Token: tok.Token, Expires: tok.Exp},
	})
}

// Logout acknowledges a logout for an authenticated trainee. Tokens are
// self-contained and not revocable server-side, so this is advisory: the
// token stays valid until its natural expiry and the client is responsible
// for discarding it.
func (h *AuthHandler) Logout(c echo.Context) error {
	if _, ok := middleware.CurrentTrainee(c); !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
	}
	return c.NoContent(http.StatusNoContent)
}

// ResetPassword replaces the authenticated trainee's password.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	t, ok := middleware.CurrentTrainee(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
	}
	var req resetReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Trainees.ResetPassword(ctx, t, req.Password); err != nil {
		switch {
		case errors.Is(err, service.ErrDuplicatePassword):
			return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
		case errors.Is(err, service.ErrInvalidPasswordFormat):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "reset password failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// Me returns the authenticated trainee's profile.
func (h *AuthHandler) Me(c echo.Context) error {
	t, ok := middleware.CurrentTrainee(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
	}
	return c.JSON(http.StatusOK, profileOf(t))
}

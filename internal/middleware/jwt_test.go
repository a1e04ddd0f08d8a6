package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/trainee-auth/internal/model"
	"github.com/iliyamo/trainee-auth/internal/repository"
	"github.com/iliyamo/trainee-auth/internal/utils"
)

// finderMap is a TraineeFinder backed by a plain map.
type finderMap map[uint64]model.Trainee

func (f finderMap) FindByID(_ context.Context, id uint64) (model.Trainee, error) {
	t, ok := f[id]
	if !ok {
		return model.Trainee{}, repository.ErrTraineeNotFound
	}
	return t, nil
}

const testSecret = "guard-secret"

// guardedRequest runs one request through SessionGuard in front of a
// handler that echoes the resolved trainee id.
func guardedRequest(t *testing.T, finder TraineeFinder, authHeader string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	e.GET("/protected", func(c echo.Context) error {
		tr, ok := CurrentTrainee(c)
		require.True(t, ok, "guard must attach the trainee before the handler runs")
		return c.JSON(http.StatusOK, echo.Map{"id": tr.ID})
	}, SessionGuard(testSecret, finder))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestSessionGuardMissingOrMalformedHeader(t *testing.T) {
	t.Parallel()

	finder := finderMap{}
	for _, header := range []string{"", "Bearer", "Token abc", "bearer abc"} {
		rec := guardedRequest(t, finder, header)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
		assert.Contains(t, rec.Body.String(), "missing bearer token")
	}
}

func TestSessionGuardTokenFailureKinds(t *testing.T) {
	t.Parallel()

	finder := finderMap{1: {ID: 1, PhoneNumber: "01012345678"}}

	t.Run("malformed", func(t *testing.T) {
		rec := guardedRequest(t, finder, "Bearer not.a.jwt")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "malformed token")
	})
	t.Run("wrong secret", func(t *testing.T) {
		tok, err := utils.NewAccessToken("other-secret", 1, 7)
		require.NoError(t, err)
		rec := guardedRequest(t, finder, "Bearer "+tok.Token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid token signature")
	})
	t.Run("expired", func(t *testing.T) {
		tok, err := utils.NewAccessToken(testSecret, 1, -1)
		require.NoError(t, err)
		rec := guardedRequest(t, finder, "Bearer "+tok.Token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "token expired")
	})
}

func TestSessionGuardIdentityNotFound(t *testing.T) {
	t.Parallel()

	// Token is well-formed and signed, but the record it references is gone.
	tok, err := utils.NewAccessToken(testSecret, 404, 7)
	require.NoError(t, err)

	rec := guardedRequest(t, finderMap{}, "Bearer "+tok.Token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "identity not found")
}

func TestSessionGuardSuccess(t *testing.T) {
	t.Parallel()

	finder := finderMap{7: {ID: 7, PhoneNumber: "01012345678", Name: "kim"}}
	tok, err := utils.NewAccessToken(testSecret, 7, 7)
	require.NoError(t, err)

	rec := guardedRequest(t, finder, "Bearer "+tok.Token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":7`)
}

package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-finance-tracker/internal/app"
	"github.com/MKhiriev/go-finance-tracker/internal/service"
	"github.com/MKhiriev/go-finance-tracker/internal/validators"
	"github.com/MKhiriev/go-finance-tracker/models"
)

func TestLogin_Success(t *testing.T) {
	auth := &fakeAuthService{
		signIn: func(_ context.Context, c models.Credentials) (models.TokenPair, error) {
			assert.Equal(t, "ana@example.com", c.Email)
			return models.TokenPair{AccessToken: "a", RefreshToken: "r"}, nil
		},
	}
	router := newTestRouter(t, &service.Services{AuthService: auth})

	rec := do(t, router, http.MethodPost, "/auth/login", `{"email":"ana@example.com","password":"1234"}`, "")

	require.Equal(t, http.StatusOK, rec.Code)
	var pair models.TokenPair
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pair))
	assert.Equal(t, models.TokenPair{AccessToken: "a", RefreshToken: "r"}, pair)
	assert.JSONEq(t, `{"access_token":"a","refresh_token":"r"}`, rec.Body.String())
}

// Unknown email and wrong password must be indistinguishable on the wire.
func TestLogin_NoEnumeration(t *testing.T) {
	auth := &fakeAuthService{
		signIn: func(_ context.Context, c models.Credentials) (models.TokenPair, error) {
			return models.TokenPair{}, service.ErrInvalidCredentials
		},
	}
	router := newTestRouter(t, &service.Services{AuthService: auth})

	unknown := do(t, router, http.MethodPost, "/auth/login", `{"email":"nobody@example.com","password":"1234"}`, "")
	wrong := do(t, router, http.MethodPost, "/auth/login", `{"email":"ana@example.com","password":"nope"}`, "")

	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, unknown.Code, wrong.Code)
	assert.Equal(t, unknown.Body.String(), wrong.Body.String())
	assert.Equal(t, app.MsgInvalidCredentials, messageOf(t, unknown))
}

func TestLogin_MalformedBody(t *testing.T) {
	router := newTestRouter(t, &service.Services{})

	rec := do(t, router, http.MethodPost, "/auth/login", `{"email":`, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgInvalidDataProvided, messageOf(t, rec))
}

func TestLogin_ValidationReason(t *testing.T) {
	auth := &fakeAuthService{
		signIn: func(context.Context, models.Credentials) (models.TokenPair, error) {
			return models.TokenPair{}, fmt.Errorf("%w: %w", service.ErrValidation, validators.ErrInvalidEmail)
		},
	}
	router := newTestRouter(t, &service.Services{AuthService: auth})

	rec := do(t, router, http.MethodPost, "/auth/login", `{"email":"ana","password":"1234"}`, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, validators.ErrInvalidEmail.Error(), messageOf(t, rec))
}

func TestRefresh_Rejected(t *testing.T) {
	auth := &fakeAuthService{
		refresh: func(_ context.Context, token string) (models.TokenPair, error) {
			assert.Equal(t, "old", token)
			return models.TokenPair{}, fmt.Errorf("%w: revoked", service.ErrUnauthorized)
		},
	}
	router := newTestRouter(t, &service.Services{AuthService: auth})

	rec := do(t, router, http.MethodPost, "/auth/refresh", `{"refresh_token":"old"}`, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, app.MsgInvalidRefreshToken, messageOf(t, rec))
}

func TestRefresh_IssueFailureIsFatal(t *testing.T) {
	auth := &fakeAuthService{
		refresh: func(context.Context, string) (models.TokenPair, error) {
			return models.TokenPair{}, fmt.Errorf("%w: db down", service.ErrTokenPersistenceFailed)
		},
	}
	router := newTestRouter(t, &service.Services{AuthService: auth})

	rec := do(t, router, http.MethodPost, "/auth/refresh", `{"refresh_token":"r"}`, "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, app.MsgInternalServerError, messageOf(t, rec))
	assert.NotContains(t, rec.Body.String(), "db down")
}

func TestRefresh_Success(t *testing.T) {
	auth := &fakeAuthService{
		refresh: func(context.Context, string) (models.TokenPair, error) {
			return models.TokenPair{AccessToken: "a2", RefreshToken: "r2"}, nil
		},
	}
	router := newTestRouter(t, &service.Services{AuthService: auth})

	rec := do(t, router, http.MethodPost, "/auth/refresh", `{"refresh_token":"r1"}`, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"access_token":"a2","refresh_token":"r2"}`, rec.Body.String())
}

func TestLogout_UsesCaller(t *testing.T) {
	calls := 0
	auth := &fakeAuthService{
		logout: func(_ context.Context, userID int64) error {
			calls++
			assert.Equal(t, int64(7), userID)
			return nil
		},
	}
	router := newTestRouter(t, &service.Services{AuthService: auth})

	for range 2 {
		rec := do(t, router, http.MethodPost, "/auth/logout", "", validToken)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, app.MsgLogoutSucceeded, messageOf(t, rec))
	}
	assert.Equal(t, 2, calls)
}

func TestLogout_RequiresToken(t *testing.T) {
	router := newTestRouter(t, &service.Services{})

	rec := do(t, router, http.MethodPost, "/auth/logout", "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, app.MsgUnauthorized, messageOf(t, rec))
}

func TestProfile(t *testing.T) {
	auth := &fakeAuthService{
		profile: func(_ context.Context, userID int64) (models.User, error) {
			return models.User{UserID: userID, Name: "Ana", Email: "ana@example.com", PasswordHash: "secret"}, nil
		},
	}
	router := newTestRouter(t, &service.Services{AuthService: auth})

	rec := do(t, router, http.MethodGet, "/auth/profile", "", validToken)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":7`)
	assert.NotContains(t, rec.Body.String(), "secret")
}

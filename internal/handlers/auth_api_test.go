package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/launchhub/launchhub-backend/internal/models"
)

func TestRegisterLoginMe(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.do(t, http.MethodPost, "/api/user-auth/register", "", map[string]any{
		"email":    "jane@example.com",
		"name":     "Jane",
		"password": "password123",
	})
	requireStatus(t, w, http.StatusCreated)
	assert.NotContains(t, w.Body.String(), "password")

	w = env.do(t, http.MethodPost, "/api/user-auth/login", "", map[string]any{
		"email":    "jane@example.com",
		"password": "password123",
	})
	requireStatus(t, w, http.StatusOK)
	token := decodeBody[map[string]string](t, w)["token"]
	require.NotEmpty(t, token)

	w = env.do(t, http.MethodGet, "/api/user-auth/me", token, nil)
	requireStatus(t, w, http.StatusOK)
	me := decodeBody[models.User](t, w)
	assert.Equal(t, "jane@example.com", me.Email)
	assert.Equal(t, models.RoleUser, me.Role)
}

func TestRegisterDuplicateEmailOverHTTP(t *testing.T) {
	env := newTestEnv(t, nil)

	body := map[string]any{"email": "jane@example.com", "password": "password123"}
	w := env.do(t, http.MethodPost, "/api/user-auth/register", "", body)
	requireStatus(t, w, http.StatusCreated)

	w = env.do(t, http.MethodPost, "/api/user-auth/register", "", body)
	requireStatus(t, w, http.StatusConflict)
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.do(t, http.MethodPost, "/api/user-auth/register", "", map[string]any{
		"email":    "jane@example.com",
		"password": "short",
	})
	requireStatus(t, w, http.StatusBadRequest)
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t, nil)
	env.token(t, models.RoleUser)

	w := env.do(t, http.MethodPost, "/api/user-auth/login", "", map[string]any{
		"email":    "user@example.com",
		"password": "wrong-password",
	})
	requireStatus(t, w, http.StatusUnauthorized)
	assert.Contains(t, w.Body.String(), "invalid credentials")
}

func TestAdminLoginRejectsUserAccount(t *testing.T) {
	env := newTestEnv(t, nil)
	env.token(t, models.RoleUser)

	w := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    "user@example.com",
		"password": "password123",
	})
	requireStatus(t, w, http.StatusForbidden)
}

func TestAdminLoginIssuesAdminToken(t *testing.T) {
	env := newTestEnv(t, nil)
	env.token(t, models.RoleAdmin)

	w := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    "admin@example.com",
		"password": "password123",
	})
	requireStatus(t, w, http.StatusOK)
	token := decodeBody[map[string]string](t, w)["token"]

	w = env.do(t, http.MethodGet, "/api/auth/me", token, nil)
	requireStatus(t, w, http.StatusOK)
	assert.Equal(t, models.RoleAdmin, decodeBody[models.User](t, w).Role)
}

func TestMeRequiresToken(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.do(t, http.MethodGet, "/api/user-auth/me", "", nil)
	requireStatus(t, w, http.StatusUnauthorized)

	// A user token is not enough for the admin identity check.
	w = env.do(t, http.MethodGet, "/api/auth/me", env.token(t, models.RoleUser), nil)
	requireStatus(t, w, http.StatusForbidden)
}

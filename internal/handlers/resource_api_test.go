package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/launchhub/launchhub-backend/internal/models"
)

func TestHealthEndpoint(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.do(t, http.MethodGet, "/api/v1/health", "", nil)
	requireStatus(t, w, http.StatusOK)

	body := decodeBody[map[string]string](t, w)
	assert.Equal(t, "ok", body["status"])
}

func TestAdminRoutesRequireAdminToken(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.do(t, http.MethodGet, "/api/admin/jobs", "", nil)
	requireStatus(t, w, http.StatusUnauthorized)

	w = env.do(t, http.MethodGet, "/api/admin/jobs", env.token(t, models.RoleUser), nil)
	requireStatus(t, w, http.StatusForbidden)

	w = env.do(t, http.MethodGet, "/api/admin/jobs", env.token(t, models.RoleAdmin), nil)
	requireStatus(t, w, http.StatusOK)
}

func TestJobDraftLifecycle(t *testing.T) {
	env := newTestEnv(t, nil)
	admin := env.token(t, models.RoleAdmin)

	w := env.do(t, http.MethodPost, "/api/admin/jobs", admin, map[string]any{
		"title":   "Backend Engineer",
		"company": "Acme",
	})
	requireStatus(t, w, http.StatusCreated)
	created := decodeBody[models.Job](t, w)
	require.NotZero(t, created.ID)
	detailPath := fmt.Sprintf("/api/public/jobs/%d", created.ID)

	// A draft is invisible on the public surface.
	w = env.do(t, http.MethodGet, "/api/public/jobs", "", nil)
	requireStatus(t, w, http.StatusOK)
	assert.Empty(t, decodeBody[[]models.Job](t, w))

	w = env.do(t, http.MethodGet, detailPath, "", nil)
	requireStatus(t, w, http.StatusNotFound)

	// The admin surface sees it.
	w = env.do(t, http.MethodGet, "/api/admin/jobs", admin, nil)
	requireStatus(t, w, http.StatusOK)
	assert.Len(t, decodeBody[[]models.Job](t, w), 1)

	// Publish, then each public read bumps the view counter.
	w = env.do(t, http.MethodPut, fmt.Sprintf("/api/admin/jobs/%d", created.ID), admin, map[string]any{
		"is_published": true,
	})
	requireStatus(t, w, http.StatusOK)

	w = env.do(t, http.MethodGet, detailPath, "", nil)
	requireStatus(t, w, http.StatusOK)
	assert.EqualValues(t, 1, decodeBody[models.Job](t, w).Views)

	w = env.do(t, http.MethodGet, detailPath, "", nil)
	requireStatus(t, w, http.StatusOK)
	assert.EqualValues(t, 2, decodeBody[models.Job](t, w).Views)

	// Listing does not move the counter.
	w = env.do(t, http.MethodGet, "/api/public/jobs", "", nil)
	requireStatus(t, w, http.StatusOK)
	items := decodeBody[[]models.Job](t, w)
	require.Len(t, items, 1)
	assert.EqualValues(t, 2, items[0].Views)
}

func TestUpdateRejectsUnknownFields(t *testing.T) {
	env := newTestEnv(t, nil)
	admin := env.token(t, models.RoleAdmin)

	w := env.do(t, http.MethodPost, "/api/admin/jobs", admin, map[string]any{
		"title":   "Backend Engineer",
		"company": "Acme",
	})
	requireStatus(t, w, http.StatusCreated)
	created := decodeBody[models.Job](t, w)

	w = env.do(t, http.MethodPut, fmt.Sprintf("/api/admin/jobs/%d", created.ID), admin, map[string]any{
		"salary": "100k",
	})
	requireStatus(t, w, http.StatusBadRequest)
}

func TestCreateRequiresTitle(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.do(t, http.MethodPost, "/api/admin/jobs", env.token(t, models.RoleAdmin), map[string]any{
		"company": "Acme",
	})
	requireStatus(t, w, http.StatusBadRequest)
}

func TestArticleSlugConflict(t *testing.T) {
	env := newTestEnv(t, nil)
	admin := env.token(t, models.RoleAdmin)

	body := map[string]any{"title": "Intro to Go", "slug": "intro-to-go"}
	w := env.do(t, http.MethodPost, "/api/admin/articles", admin, body)
	requireStatus(t, w, http.StatusCreated)

	w = env.do(t, http.MethodPost, "/api/admin/articles", admin, body)
	requireStatus(t, w, http.StatusConflict)
}

func TestArticlePublicDetailBySlug(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.do(t, http.MethodPost, "/api/admin/articles", env.token(t, models.RoleAdmin), map[string]any{
		"title":        "Intro to Go",
		"is_published": true,
	})
	requireStatus(t, w, http.StatusCreated)

	w = env.do(t, http.MethodGet, "/api/public/articles/intro-to-go", "", nil)
	requireStatus(t, w, http.StatusOK)
	assert.Equal(t, "Intro to Go", decodeBody[models.Article](t, w).Title)
}

func TestJobFiltersOverHTTP(t *testing.T) {
	env := newTestEnv(t, nil)
	admin := env.token(t, models.RoleAdmin)

	w := env.do(t, http.MethodPost, "/api/admin/jobs", admin, map[string]any{
		"title":        "Backend Engineer",
		"company":      "Acme",
		"location":     "Berlin, Germany",
		"job_type":     "full-time",
		"is_published": true,
	})
	requireStatus(t, w, http.StatusCreated)

	w = env.do(t, http.MethodPost, "/api/admin/jobs", admin, map[string]any{
		"title":        "Backend Engineer",
		"company":      "Initech",
		"location":     "Remote",
		"job_type":     "contract",
		"is_published": true,
	})
	requireStatus(t, w, http.StatusCreated)

	w = env.do(t, http.MethodGet, "/api/public/jobs?search=backend&location=berlin&job_type=full-time", "", nil)
	requireStatus(t, w, http.StatusOK)
	items := decodeBody[[]models.Job](t, w)
	require.Len(t, items, 1)
	assert.Equal(t, "Acme", items[0].Company)
}

func TestInternshipDurationValidation(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.do(t, http.MethodGet, "/api/public/internships?duration=three", "", nil)
	requireStatus(t, w, http.StatusBadRequest)
}

func TestDeleteResource(t *testing.T) {
	env := newTestEnv(t, nil)
	admin := env.token(t, models.RoleAdmin)

	w := env.do(t, http.MethodPost, "/api/admin/jobs", admin, map[string]any{
		"title":   "Backend Engineer",
		"company": "Acme",
	})
	requireStatus(t, w, http.StatusCreated)
	created := decodeBody[models.Job](t, w)

	path := fmt.Sprintf("/api/admin/jobs/%d", created.ID)
	w = env.do(t, http.MethodDelete, path, admin, nil)
	requireStatus(t, w, http.StatusNoContent)

	w = env.do(t, http.MethodDelete, path, admin, nil)
	requireStatus(t, w, http.StatusNotFound)
}

func TestDashboardStats(t *testing.T) {
	env := newTestEnv(t, nil)
	admin := env.token(t, models.RoleAdmin)

	w := env.do(t, http.MethodPost, "/api/admin/jobs", admin, map[string]any{
		"title":        "Backend Engineer",
		"company":      "Acme",
		"is_published": true,
	})
	requireStatus(t, w, http.StatusCreated)

	w = env.do(t, http.MethodGet, "/api/admin/dashboard/stats", admin, nil)
	requireStatus(t, w, http.StatusOK)

	body := decodeBody[map[string]any](t, w)
	assert.Contains(t, body, "counts")
}

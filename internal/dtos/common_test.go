package dtos

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/launchhub/launchhub-backend/internal/models"
)

func TestCommaListAcceptsStringAndArray(t *testing.T) {
	var fromString CommaList
	require.NoError(t, json.Unmarshal([]byte(`"Go, SQL, , Docker "`), &fromString))
	assert.Equal(t, CommaList{"Go", "SQL", "Docker"}, fromString)

	var fromArray CommaList
	require.NoError(t, json.Unmarshal([]byte(`["Go", " SQL ", ""]`), &fromArray))
	assert.Equal(t, CommaList{"Go", "SQL"}, fromArray)

	var fromNull CommaList
	require.NoError(t, json.Unmarshal([]byte(`null`), &fromNull))
	assert.Nil(t, fromNull)
}

func TestLineListSplitsOnNewlines(t *testing.T) {
	var l LineList
	require.NoError(t, json.Unmarshal([]byte(`"2+ years of Go\nSQL basics\n\n"`), &l))
	assert.Equal(t, LineList{"2+ years of Go", "SQL basics"}, l)
}

func TestJobCreateToModel(t *testing.T) {
	var req JobCreateRequest
	body := `{
		"title": "Backend Engineer",
		"company": "Acme",
		"tags": "go, backend",
		"requirements": "Go experience\nSQL basics",
		"is_published": true
	}`
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	job := req.ToModel()
	assert.Equal(t, "Backend Engineer", job.Title)
	assert.Equal(t, models.StringList{"go", "backend"}, job.Tags)
	assert.Equal(t, models.StringList{"Go experience", "SQL basics"}, job.Requirements)
	assert.True(t, job.IsPublished)
}

func TestArticleCreateDerivesSlug(t *testing.T) {
	req := ArticleCreateRequest{Title: "Intro to Go!"}
	assert.Equal(t, "intro-to-go", req.ToModel().Slug)

	req.Slug = "custom-slug"
	assert.Equal(t, "custom-slug", req.ToModel().Slug)
}

func TestUpdatePatchSkipsOmittedFields(t *testing.T) {
	title := "New Title"
	published := false
	req := JobUpdateRequest{Title: &title, IsPublished: &published}

	patch := req.ToPatch()
	assert.Equal(t, map[string]any{
		"title":        "New Title",
		"is_published": false,
	}, patch)
}

func TestUpdatePatchEmptyBody(t *testing.T) {
	var req JobUpdateRequest
	require.NoError(t, json.Unmarshal([]byte(`{}`), &req))
	assert.Empty(t, req.ToPatch())
}

func TestInternshipPatchMapsExpirationColumn(t *testing.T) {
	var req InternshipUpdateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"expiration_date": "2026-09-30T00:00:00Z"}`), &req))

	patch := req.ToPatch()
	require.Contains(t, patch, "expires_at")
	assert.Len(t, patch, 1)
}

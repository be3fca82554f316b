package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"

	"github.com/launchhub/launchhub-backend/internal/apperrors"
	"github.com/launchhub/launchhub-backend/internal/dtos"
	"github.com/launchhub/launchhub-backend/internal/services"
)

// scriptedModel plays back a fixed sequence of completions.
type scriptedModel struct {
	responses []string
	errs      []error
	calls     int
}

func (m *scriptedModel) GenerateContent(_ context.Context, _ []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	i := m.calls
	m.calls++
	if i < len(m.errs) && m.errs[i] != nil {
		return nil, m.errs[i]
	}
	content := ""
	if i < len(m.responses) {
		content = m.responses[i]
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: content}},
	}, nil
}

func (m *scriptedModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	resp, err := m.GenerateContent(ctx, nil, options...)
	if err != nil {
		return "", err
	}
	return resp.Choices[0].Content, nil
}

func newGenService(model llms.Model) *services.GenerationService {
	return services.NewGenerationService(model, 5*time.Second)
}

func TestGenerateReturnsModelJSON(t *testing.T) {
	model := &scriptedModel{responses: []string{`{"title": "Backend Engineer", "company": "Acme"}`}}
	svc := newGenService(model)

	raw, err := svc.Generate(context.Background(), "job", "a backend role in Berlin")
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "Backend Engineer", out["title"])
	assert.Equal(t, 1, model.calls)
}

func TestGenerateStripsCodeFence(t *testing.T) {
	model := &scriptedModel{responses: []string{"```json\n{\"title\": \"Fenced\"}\n```"}}
	svc := newGenService(model)

	raw, err := svc.Generate(context.Background(), "article", "anything")
	require.NoError(t, err)
	assert.JSONEq(t, `{"title": "Fenced"}`, string(raw))
}

func TestGenerateUnknownContentType(t *testing.T) {
	svc := newGenService(&scriptedModel{})

	_, err := svc.Generate(context.Background(), "podcast", "anything")
	assert.True(t, apperrors.IsValidation(err))
}

func TestGenerateUpstreamFailure(t *testing.T) {
	model := &scriptedModel{errs: []error{errors.New("quota exceeded")}}
	svc := newGenService(model)

	_, err := svc.Generate(context.Background(), "job", "anything")
	assert.ErrorIs(t, err, apperrors.ErrUpstream)
}

func TestGenerateInvalidJSON(t *testing.T) {
	model := &scriptedModel{responses: []string{"sure, here is your job posting:"}}
	svc := newGenService(model)

	_, err := svc.Generate(context.Background(), "job", "anything")
	assert.ErrorIs(t, err, apperrors.ErrUpstream)
}

func TestGenerateBulkPartialFailure(t *testing.T) {
	model := &scriptedModel{
		responses: []string{`{"title": "One"}`, "", `{"title": "Three"}`},
		errs:      []error{nil, errors.New("transient"), nil},
	}
	svc := newGenService(model)

	var saved []json.RawMessage
	svc.RegisterSaver("job", func(_ context.Context, raw json.RawMessage) error {
		saved = append(saved, raw)
		return nil
	})

	result, err := svc.GenerateBulk(context.Background(), &dtos.BulkGenerationRequest{
		ContentType: "job",
		Prompt:      "three backend roles",
		Count:       3,
		AutoSave:    true,
	})
	require.NoError(t, err)

	// The middle failure is reported but never rolls back its neighbours.
	assert.Equal(t, 2, result.GeneratedCount)
	assert.Equal(t, 1, result.FailedCount)
	assert.Equal(t, 2, result.SavedCount)
	assert.Len(t, result.Items, 2)
	assert.Len(t, result.Errors, 1)
	assert.Len(t, saved, 2)
}

func TestGenerateBulkSaverFailureCounted(t *testing.T) {
	model := &scriptedModel{responses: []string{`{"title": "One"}`}}
	svc := newGenService(model)
	svc.RegisterSaver("job", func(context.Context, json.RawMessage) error {
		return errors.New("db unavailable")
	})

	result, err := svc.GenerateBulk(context.Background(), &dtos.BulkGenerationRequest{
		ContentType: "job",
		Prompt:      "a role",
		AutoSave:    true,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.GeneratedCount)
	assert.Equal(t, 0, result.SavedCount)
	assert.Len(t, result.Errors, 1)
}

func TestGenerateBulkNoAutoSave(t *testing.T) {
	model := &scriptedModel{responses: []string{`{"title": "One"}`, `{"title": "Two"}`}}
	svc := newGenService(model)

	result, err := svc.GenerateBulk(context.Background(), &dtos.BulkGenerationRequest{
		ContentType: "job",
		Prompt:      "two roles",
		Count:       2,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.GeneratedCount)
	assert.Zero(t, result.SavedCount)
}

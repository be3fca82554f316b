package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/tmc/langchaingo/llms"

	"github.com/launchhub/launchhub-backend/internal/apperrors"
	"github.com/launchhub/launchhub-backend/internal/dtos"
)

// Saver persists one generated record through the normal write path.
// Handlers register one per content type so the gateway itself stays
// untyped.
type Saver func(ctx context.Context, raw json.RawMessage) error

// GenerationService forwards admin prompts to the LLM and returns the
// structured output verbatim as a create-form pre-fill. It never
// persists anything unless the caller explicitly opts into auto-save.
type GenerationService struct {
	client  llms.Model
	timeout time.Duration
	savers  map[string]Saver
}

func NewGenerationService(client llms.Model, timeout time.Duration) *GenerationService {
	return &GenerationService{
		client:  client,
		timeout: timeout,
		savers:  map[string]Saver{},
	}
}

// RegisterSaver wires the auto-save path for one content type.
func (s *GenerationService) RegisterSaver(contentType string, saver Saver) {
	s.savers[contentType] = saver
}

// Generate issues a single generation call and returns the raw JSON
// object the model produced. Upstream failures surface as ErrUpstream
// with no side effects.
func (s *GenerationService) Generate(ctx context.Context, contentType, prompt string) (json.RawMessage, error) {
	tmpl, ok := generationPrompts[contentType]
	if !ok {
		return nil, apperrors.NewValidation("content_type", "unknown content type "+contentType)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := llms.GenerateFromSinglePrompt(ctx, s.client, fmt.Sprintf(tmpl, prompt))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUpstream, err)
	}

	cleaned := stripCodeFence(resp)
	if !json.Valid([]byte(cleaned)) {
		return nil, fmt.Errorf("%w: model returned invalid JSON", apperrors.ErrUpstream)
	}
	return json.RawMessage(cleaned), nil
}

// GenerateBulk issues count independent generation calls and reports
// per-item outcomes. One failed call never rolls back earlier
// successes; with auto-save enabled each success is persisted as an
// unpublished draft as soon as it arrives.
func (s *GenerationService) GenerateBulk(ctx context.Context, req *dtos.BulkGenerationRequest) (*dtos.BulkGenerationResult, error) {
	if _, ok := generationPrompts[req.ContentType]; !ok {
		return nil, apperrors.NewValidation("content_type", "unknown content type "+req.ContentType)
	}
	count := req.Count
	if count < 1 {
		count = 1
	}

	result := &dtos.BulkGenerationResult{}
	for i := 0; i < count; i++ {
		raw, err := s.Generate(ctx, req.ContentType, req.Prompt)
		if err != nil {
			log.Warn().Err(err).Str("content_type", req.ContentType).Int("item", i+1).Msg("bulk generation item failed")
			result.FailedCount++
			result.Errors = append(result.Errors, err.Error())
			continue
		}
		result.GeneratedCount++
		result.Items = append(result.Items, raw)

		if !req.AutoSave {
			continue
		}
		saver, ok := s.savers[req.ContentType]
		if !ok {
			result.Errors = append(result.Errors, "no auto-save registered for "+req.ContentType)
			continue
		}
		if err := saver(ctx, raw); err != nil {
			log.Warn().Err(err).Str("content_type", req.ContentType).Msg("auto-save failed")
			result.Errors = append(result.Errors, err.Error())
			continue
		}
		result.SavedCount++
	}
	return result, nil
}

// stripCodeFence unwraps ```json fences the model sometimes adds
// despite the prompt asking for bare JSON.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

package handlers

import (
	"context"
	"encoding/json"

	"github.com/launchhub/launchhub-backend/internal/apperrors"
	"github.com/launchhub/launchhub-backend/internal/dtos"
	"github.com/launchhub/launchhub-backend/internal/models"
	"github.com/launchhub/launchhub-backend/internal/services"
)

// RegisterSavers wires the generation gateway's auto-save path into the
// normal store create path. Generated records always land as drafts so
// an admin reviews them before they go public.
func RegisterSavers(gen *services.GenerationService, res *services.Resources) {
	gen.RegisterSaver("job", saver(res.Jobs, func(r *dtos.JobCreateRequest) (*models.Job, error) {
		if r.Title == "" {
			return nil, apperrors.NewValidation("title", "missing from generated record")
		}
		m := r.ToModel()
		m.IsPublished = false
		return m, nil
	}))
	gen.RegisterSaver("internship", saver(res.Internships, func(r *dtos.InternshipCreateRequest) (*models.Internship, error) {
		if r.Title == "" {
			return nil, apperrors.NewValidation("title", "missing from generated record")
		}
		m := r.ToModel()
		m.IsPublished = false
		return m, nil
	}))
	gen.RegisterSaver("article", saver(res.Articles, func(r *dtos.ArticleCreateRequest) (*models.Article, error) {
		if r.Title == "" {
			return nil, apperrors.NewValidation("title", "missing from generated record")
		}
		m := r.ToModel()
		m.IsPublished = false
		return m, nil
	}))
	gen.RegisterSaver("roadmap", saver(res.Roadmaps, func(r *dtos.RoadmapCreateRequest) (*models.Roadmap, error) {
		if r.Title == "" {
			return nil, apperrors.NewValidation("title", "missing from generated record")
		}
		m := r.ToModel()
		m.IsPublished = false
		return m, nil
	}))
	gen.RegisterSaver("dsa-problem", saver(res.DSAProblems, func(r *dtos.DSAProblemCreateRequest) (*models.DSAProblem, error) {
		if r.Title == "" {
			return nil, apperrors.NewValidation("title", "missing from generated record")
		}
		m := r.ToModel()
		m.IsPublished = false
		return m, nil
	}))
	gen.RegisterSaver("page", saver(res.Pages, func(r *dtos.PageCreateRequest) (*models.Page, error) {
		if r.Title == "" {
			return nil, apperrors.NewValidation("title", "missing from generated record")
		}
		m := r.ToModel()
		m.IsPublished = false
		return m, nil
	}))
}

func saver[R any, T any, PT interface {
	*T
	services.Content
}](store *services.Store[T, PT], toModel func(*R) (PT, error)) services.Saver {
	return func(ctx context.Context, raw json.RawMessage) error {
		var req R
		if err := json.Unmarshal(raw, &req); err != nil {
			return apperrors.NewValidation("generated", "model output does not match the schema: "+err.Error())
		}
		item, err := toModel(&req)
		if err != nil {
			return err
		}
		return store.Create(ctx, item)
	}
}

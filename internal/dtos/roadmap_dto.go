package dtos

import (
	"github.com/launchhub/launchhub-backend/internal/models"
	"github.com/launchhub/launchhub-backend/internal/slug"
)

type RoadmapCreateRequest struct {
	Title          string    `json:"title" binding:"required"`
	Slug           string    `json:"slug"`
	Description    string    `json:"description"`
	Difficulty     string    `json:"difficulty"`
	EstimatedWeeks int       `json:"estimated_weeks"`
	Steps          LineList  `json:"steps"`
	Prerequisites  LineList  `json:"prerequisites"`
	Tags           CommaList `json:"tags"`
	IsPublished    bool      `json:"is_published"`
	IsFeatured     bool      `json:"is_featured"`
}

func (r *RoadmapCreateRequest) ToModel() *models.Roadmap {
	s := r.Slug
	if s == "" {
		s = slug.Make(r.Title)
	}
	return &models.Roadmap{
		ContentFields: models.ContentFields{
			Title:       r.Title,
			Tags:        toStringList(r.Tags),
			IsPublished: r.IsPublished,
			IsFeatured:  r.IsFeatured,
		},
		Slug:           s,
		Description:    r.Description,
		Difficulty:     r.Difficulty,
		EstimatedWeeks: r.EstimatedWeeks,
		Steps:          toStringList(r.Steps),
		Prerequisites:  toStringList(r.Prerequisites),
	}
}

type RoadmapUpdateRequest struct {
	Title          *string    `json:"title"`
	Slug           *string    `json:"slug"`
	Description    *string    `json:"description"`
	Difficulty     *string    `json:"difficulty"`
	EstimatedWeeks *int       `json:"estimated_weeks"`
	Steps          *LineList  `json:"steps"`
	Prerequisites  *LineList  `json:"prerequisites"`
	Tags           *CommaList `json:"tags"`
	IsPublished    *bool      `json:"is_published"`
	IsFeatured     *bool      `json:"is_featured"`
}

func (r *RoadmapUpdateRequest) ToPatch() map[string]any {
	p := newPatch()
	p.setString("title", r.Title)
	p.setString("slug", r.Slug)
	p.setString("description", r.Description)
	p.setString("difficulty", r.Difficulty)
	p.setInt("estimated_weeks", r.EstimatedWeeks)
	p.setLines("steps", r.Steps)
	p.setLines("prerequisites", r.Prerequisites)
	p.setComma("tags", r.Tags)
	p.setBool("is_published", r.IsPublished)
	p.setBool("is_featured", r.IsFeatured)
	return p.fields
}

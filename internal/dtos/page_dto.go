package dtos

import (
	"github.com/launchhub/launchhub-backend/internal/models"
	"github.com/launchhub/launchhub-backend/internal/slug"
)

type PageCreateRequest struct {
	Title       string    `json:"title" binding:"required"`
	Slug        string    `json:"slug"`
	Content     string    `json:"content"`
	Section     string    `json:"section"`
	Tags        CommaList `json:"tags"`
	IsPublished bool      `json:"is_published"`
	IsFeatured  bool      `json:"is_featured"`
}

func (r *PageCreateRequest) ToModel() *models.Page {
	s := r.Slug
	if s == "" {
		s = slug.Make(r.Title)
	}
	return &models.Page{
		ContentFields: models.ContentFields{
			Title:       r.Title,
			Tags:        toStringList(r.Tags),
			IsPublished: r.IsPublished,
			IsFeatured:  r.IsFeatured,
		},
		Slug:    s,
		Content: r.Content,
		Section: r.Section,
	}
}

type PageUpdateRequest struct {
	Title       *string    `json:"title"`
	Slug        *string    `json:"slug"`
	Content     *string    `json:"content"`
	Section     *string    `json:"section"`
	Tags        *CommaList `json:"tags"`
	IsPublished *bool      `json:"is_published"`
	IsFeatured  *bool      `json:"is_featured"`
}

func (r *PageUpdateRequest) ToPatch() map[string]any {
	p := newPatch()
	p.setString("title", r.Title)
	p.setString("slug", r.Slug)
	p.setString("content", r.Content)
	p.setString("section", r.Section)
	p.setComma("tags", r.Tags)
	p.setBool("is_published", r.IsPublished)
	p.setBool("is_featured", r.IsFeatured)
	return p.fields
}

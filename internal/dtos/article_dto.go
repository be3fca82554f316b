package dtos

import (
	"github.com/launchhub/launchhub-backend/internal/models"
	"github.com/launchhub/launchhub-backend/internal/slug"
)

type ArticleCreateRequest struct {
	Title           string    `json:"title" binding:"required"`
	Slug            string    `json:"slug"`
	Author          string    `json:"author"`
	Summary         string    `json:"summary"`
	Content         string    `json:"content"`
	Category        string    `json:"category"`
	ReadTimeMinutes int       `json:"read_time_minutes"`
	Tags            CommaList `json:"tags"`
	IsPublished     bool      `json:"is_published"`
	IsFeatured      bool      `json:"is_featured"`
}

func (r *ArticleCreateRequest) ToModel() *models.Article {
	s := r.Slug
	if s == "" {
		s = slug.Make(r.Title)
	}
	return &models.Article{
		ContentFields: models.ContentFields{
			Title:       r.Title,
			Tags:        toStringList(r.Tags),
			IsPublished: r.IsPublished,
			IsFeatured:  r.IsFeatured,
		},
		Slug:            s,
		Author:          r.Author,
		Summary:         r.Summary,
		Content:         r.Content,
		Category:        r.Category,
		ReadTimeMinutes: r.ReadTimeMinutes,
	}
}

type ArticleUpdateRequest struct {
	Title           *string    `json:"title"`
	Slug            *string    `json:"slug"`
	Author          *string    `json:"author"`
	Summary         *string    `json:"summary"`
	Content         *string    `json:"content"`
	Category        *string    `json:"category"`
	ReadTimeMinutes *int       `json:"read_time_minutes"`
	Tags            *CommaList `json:"tags"`
	IsPublished     *bool      `json:"is_published"`
	IsFeatured      *bool      `json:"is_featured"`
}

func (r *ArticleUpdateRequest) ToPatch() map[string]any {
	p := newPatch()
	p.setString("title", r.Title)
	p.setString("slug", r.Slug)
	p.setString("author", r.Author)
	p.setString("summary", r.Summary)
	p.setString("content", r.Content)
	p.setString("category", r.Category)
	p.setInt("read_time_minutes", r.ReadTimeMinutes)
	p.setComma("tags", r.Tags)
	p.setBool("is_published", r.IsPublished)
	p.setBool("is_featured", r.IsFeatured)
	return p.fields
}

package dtos

import (
	"time"

	"github.com/launchhub/launchhub-backend/internal/models"
)

type InternshipCreateRequest struct {
	Title            string     `json:"title" binding:"required"`
	Company          string     `json:"company" binding:"required"`
	Location         string     `json:"location"`
	Description      string     `json:"description"`
	DurationMonths   int        `json:"duration_months"`
	Stipend          string     `json:"stipend"`
	Tags             CommaList  `json:"tags"`
	Requirements     LineList   `json:"requirements"`
	Responsibilities LineList   `json:"responsibilities"`
	ApplyURL         string     `json:"apply_url"`
	ExpiresAt        *time.Time `json:"expiration_date"`
	IsPublished      bool       `json:"is_published"`
	IsFeatured       bool       `json:"is_featured"`
}

func (r *InternshipCreateRequest) ToModel() *models.Internship {
	return &models.Internship{
		ContentFields: models.ContentFields{
			Title:       r.Title,
			Tags:        toStringList(r.Tags),
			IsPublished: r.IsPublished,
			IsFeatured:  r.IsFeatured,
		},
		Company:          r.Company,
		Location:         r.Location,
		Description:      r.Description,
		DurationMonths:   r.DurationMonths,
		Stipend:          r.Stipend,
		Requirements:     toStringList(r.Requirements),
		Responsibilities: toStringList(r.Responsibilities),
		ApplyURL:         r.ApplyURL,
		ExpiresAt:        r.ExpiresAt,
	}
}

type InternshipUpdateRequest struct {
	Title            *string    `json:"title"`
	Company          *string    `json:"company"`
	Location         *string    `json:"location"`
	Description      *string    `json:"description"`
	DurationMonths   *int       `json:"duration_months"`
	Stipend          *string    `json:"stipend"`
	Tags             *CommaList `json:"tags"`
	Requirements     *LineList  `json:"requirements"`
	Responsibilities *LineList  `json:"responsibilities"`
	ApplyURL         *string    `json:"apply_url"`
	ExpiresAt        *time.Time `json:"expiration_date"`
	IsPublished      *bool      `json:"is_published"`
	IsFeatured       *bool      `json:"is_featured"`
}

func (r *InternshipUpdateRequest) ToPatch() map[string]any {
	p := newPatch()
	p.setString("title", r.Title)
	p.setString("company", r.Company)
	p.setString("location", r.Location)
	p.setString("description", r.Description)
	p.setInt("duration_months", r.DurationMonths)
	p.setString("stipend", r.Stipend)
	p.setComma("tags", r.Tags)
	p.setLines("requirements", r.Requirements)
	p.setLines("responsibilities", r.Responsibilities)
	p.setString("apply_url", r.ApplyURL)
	p.setTime("expires_at", r.ExpiresAt)
	p.setBool("is_published", r.IsPublished)
	p.setBool("is_featured", r.IsFeatured)
	return p.fields
}

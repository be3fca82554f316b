package dtos

import "github.com/launchhub/launchhub-backend/internal/models"

type DSAProblemCreateRequest struct {
	Title       string    `json:"title" binding:"required"`
	Difficulty  string    `json:"difficulty"`
	Topic       string    `json:"topic"`
	Description string    `json:"description"`
	Hints       LineList  `json:"hints"`
	SolutionURL string    `json:"solution_url"`
	CompanyTags CommaList `json:"company_tags"`
	Tags        CommaList `json:"tags"`
	IsPublished bool      `json:"is_published"`
	IsFeatured  bool      `json:"is_featured"`
}

func (r *DSAProblemCreateRequest) ToModel() *models.DSAProblem {
	return &models.DSAProblem{
		ContentFields: models.ContentFields{
			Title:       r.Title,
			Tags:        toStringList(r.Tags),
			IsPublished: r.IsPublished,
			IsFeatured:  r.IsFeatured,
		},
		Difficulty:  r.Difficulty,
		Topic:       r.Topic,
		Description: r.Description,
		Hints:       toStringList(r.Hints),
		SolutionURL: r.SolutionURL,
		CompanyTags: toStringList(r.CompanyTags),
	}
}

type DSAProblemUpdateRequest struct {
	Title       *string    `json:"title"`
	Difficulty  *string    `json:"difficulty"`
	Topic       *string    `json:"topic"`
	Description *string    `json:"description"`
	Hints       *LineList  `json:"hints"`
	SolutionURL *string    `json:"solution_url"`
	CompanyTags *CommaList `json:"company_tags"`
	Tags        *CommaList `json:"tags"`
	IsPublished *bool      `json:"is_published"`
	IsFeatured  *bool      `json:"is_featured"`
}

func (r *DSAProblemUpdateRequest) ToPatch() map[string]any {
	p := newPatch()
	p.setString("title", r.Title)
	p.setString("difficulty", r.Difficulty)
	p.setString("topic", r.Topic)
	p.setString("description", r.Description)
	p.setLines("hints", r.Hints)
	p.setString("solution_url", r.SolutionURL)
	p.setComma("company_tags", r.CompanyTags)
	p.setComma("tags", r.Tags)
	p.setBool("is_published", r.IsPublished)
	p.setBool("is_featured", r.IsFeatured)
	return p.fields
}

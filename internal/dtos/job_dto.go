package dtos

import "github.com/launchhub/launchhub-backend/internal/models"

type JobCreateRequest struct {
	Title           string    `json:"title" binding:"required"`
	Company         string    `json:"company" binding:"required"`
	Location        string    `json:"location"`
	Description     string    `json:"description"`
	Tags            CommaList `json:"tags"`
	Skills          CommaList `json:"skills"`
	Requirements    LineList  `json:"requirements"`
	SalaryRange     string    `json:"salary_range"`
	ExperienceLevel string    `json:"experience_level"`
	JobType         string    `json:"job_type"`
	ApplyURL        string    `json:"apply_url"`
	IsPublished     bool      `json:"is_published"`
	IsFeatured      bool      `json:"is_featured"`
}

func (r *JobCreateRequest) ToModel() *models.Job {
	return &models.Job{
		ContentFields: models.ContentFields{
			Title:       r.Title,
			Tags:        toStringList(r.Tags),
			IsPublished: r.IsPublished,
			IsFeatured:  r.IsFeatured,
		},
		Company:         r.Company,
		Location:        r.Location,
		Description:     r.Description,
		Requirements:    toStringList(r.Requirements),
		Skills:          toStringList(r.Skills),
		SalaryRange:     r.SalaryRange,
		ExperienceLevel: r.ExperienceLevel,
		JobType:         r.JobType,
		ApplyURL:        r.ApplyURL,
	}
}

type JobUpdateRequest struct {
	Title           *string    `json:"title"`
	Company         *string    `json:"company"`
	Location        *string    `json:"location"`
	Description     *string    `json:"description"`
	Tags            *CommaList `json:"tags"`
	Skills          *CommaList `json:"skills"`
	Requirements    *LineList  `json:"requirements"`
	SalaryRange     *string    `json:"salary_range"`
	ExperienceLevel *string    `json:"experience_level"`
	JobType         *string    `json:"job_type"`
	ApplyURL        *string    `json:"apply_url"`
	IsPublished     *bool      `json:"is_published"`
	IsFeatured      *bool      `json:"is_featured"`
}

func (r *JobUpdateRequest) ToPatch() map[string]any {
	p := newPatch()
	p.setString("title", r.Title)
	p.setString("company", r.Company)
	p.setString("location", r.Location)
	p.setString("description", r.Description)
	p.setComma("tags", r.Tags)
	p.setComma("skills", r.Skills)
	p.setLines("requirements", r.Requirements)
	p.setString("salary_range", r.SalaryRange)
	p.setString("experience_level", r.ExperienceLevel)
	p.setString("job_type", r.JobType)
	p.setString("apply_url", r.ApplyURL)
	p.setBool("is_published", r.IsPublished)
	p.setBool("is_featured", r.IsFeatured)
	return p.fields
}

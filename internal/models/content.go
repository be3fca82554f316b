package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// StringList stores an ordered list of strings as a JSON text column so
// the same schema works on Postgres and the sqlite test databases.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}
}

// GormDataType keeps the column plain text across dialects.
func (StringList) GormDataType() string { return "text" }

// ContentFields is the shape every content type shares. Views are only
// bumped by public detail reads, never by list reads.
type ContentFields struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	Tags        StringList `json:"tags"`
	IsPublished bool       `gorm:"index" json:"is_published"`
	IsFeatured  bool       `json:"is_featured"`
	Views       int64      `gorm:"not null;default:0" json:"views"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (c *ContentFields) GetID() uint { return c.ID }

// GetSlug is overridden by slug-bearing types; everything else is
// addressed by numeric id only.
func (c *ContentFields) GetSlug() string { return "" }

type Job struct {
	ContentFields
	Company         string     `gorm:"not null" json:"company"`
	Location        string     `json:"location"`
	Description     string     `gorm:"type:text" json:"description"`
	Requirements    StringList `json:"requirements"`
	Skills          StringList `json:"skills"`
	SalaryRange     string     `json:"salary_range"`
	ExperienceLevel string     `json:"experience_level"`
	JobType         string     `json:"job_type"`
	ApplyURL        string     `json:"apply_url"`
}

type Internship struct {
	ContentFields
	Company          string     `gorm:"not null" json:"company"`
	Location         string     `json:"location"`
	Description      string     `gorm:"type:text" json:"description"`
	DurationMonths   int        `json:"duration_months"`
	Stipend          string     `json:"stipend"`
	Requirements     StringList `json:"requirements"`
	Responsibilities StringList `json:"responsibilities"`
	ApplyURL         string     `json:"apply_url"`
	// Records past ExpiresAt are removed by the sweeper; nil never expires.
	ExpiresAt *time.Time `json:"expiration_date,omitempty"`
}

type Article struct {
	ContentFields
	Slug            string `gorm:"uniqueIndex;not null" json:"slug"`
	Author          string `json:"author"`
	Summary         string `gorm:"type:text" json:"summary"`
	Content         string `gorm:"type:text" json:"content"`
	Category        string `gorm:"index" json:"category"`
	ReadTimeMinutes int    `json:"read_time_minutes"`
	TotalLikes      int64  `gorm:"not null;default:0" json:"total_likes"`
	TotalShares     int64  `gorm:"not null;default:0" json:"total_shares"`
}

func (a *Article) GetSlug() string { return a.Slug }

type Roadmap struct {
	ContentFields
	Slug           string     `gorm:"uniqueIndex;not null" json:"slug"`
	Description    string     `gorm:"type:text" json:"description"`
	Difficulty     string     `gorm:"index" json:"difficulty"`
	EstimatedWeeks int        `json:"estimated_weeks"`
	Steps          StringList `json:"steps"`
	Prerequisites  StringList `json:"prerequisites"`
}

func (r *Roadmap) GetSlug() string { return r.Slug }

type DSAProblem struct {
	ContentFields
	Difficulty  string     `gorm:"index" json:"difficulty"`
	Topic       string     `gorm:"index" json:"topic"`
	Description string     `gorm:"type:text" json:"description"`
	Hints       StringList `json:"hints"`
	SolutionURL string     `json:"solution_url"`
	CompanyTags StringList `json:"company_tags"`
}

type Page struct {
	ContentFields
	Slug    string `gorm:"uniqueIndex;not null" json:"slug"`
	Content string `gorm:"type:text" json:"content"`
	Section string `json:"section"`
}

func (p *Page) GetSlug() string { return p.Slug }

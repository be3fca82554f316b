package services

import (
	"gorm.io/gorm"

	"github.com/launchhub/launchhub-backend/internal/models"
)

// Resources bundles one configured store per content type.
type Resources struct {
	Jobs        *Store[models.Job, *models.Job]
	Internships *Store[models.Internship, *models.Internship]
	Articles    *Store[models.Article, *models.Article]
	Roadmaps    *Store[models.Roadmap, *models.Roadmap]
	DSAProblems *Store[models.DSAProblem, *models.DSAProblem]
	Pages       *Store[models.Page, *models.Page]
}

func NewResources(db *gorm.DB) *Resources {
	return &Resources{
		Jobs:        NewStore[models.Job](db, JobSchema),
		Internships: NewStore[models.Internship](db, InternshipSchema),
		Articles:    NewStore[models.Article](db, ArticleSchema),
		Roadmaps:    NewStore[models.Roadmap](db, RoadmapSchema),
		DSAProblems: NewStore[models.DSAProblem](db, DSAProblemSchema),
		Pages:       NewStore[models.Page](db, PageSchema),
	}
}

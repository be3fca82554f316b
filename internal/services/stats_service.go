package services

import (
	"context"

	"github.com/launchhub/launchhub-backend/internal/models"
)

const dashboardListLimit = 5

// TypeStats is the per-content-type breakdown on the admin dashboard.
type TypeStats struct {
	Total     int64 `json:"total"`
	Published int64 `json:"published"`
	Drafts    int64 `json:"drafts"`
}

// DashboardStats aggregates counts plus recent and popular content.
type DashboardStats struct {
	Counts          map[string]TypeStats `json:"counts"`
	RecentJobs      []models.Job         `json:"recent_jobs"`
	RecentArticles  []models.Article     `json:"recent_articles"`
	PopularJobs     []models.Job         `json:"popular_jobs"`
	PopularArticles []models.Article     `json:"popular_articles"`
}

// StatsService computes the admin dashboard payload from the stores.
type StatsService struct {
	resources *Resources
}

func NewStatsService(resources *Resources) *StatsService {
	return &StatsService{resources: resources}
}

func (s *StatsService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{Counts: map[string]TypeStats{}}

	if err := addCounts(ctx, stats, s.resources.Jobs); err != nil {
		return nil, err
	}
	if err := addCounts(ctx, stats, s.resources.Internships); err != nil {
		return nil, err
	}
	if err := addCounts(ctx, stats, s.resources.Articles); err != nil {
		return nil, err
	}
	if err := addCounts(ctx, stats, s.resources.Roadmaps); err != nil {
		return nil, err
	}
	if err := addCounts(ctx, stats, s.resources.DSAProblems); err != nil {
		return nil, err
	}
	if err := addCounts(ctx, stats, s.resources.Pages); err != nil {
		return nil, err
	}

	var err error
	if stats.RecentJobs, err = s.resources.Jobs.Recent(ctx, dashboardListLimit); err != nil {
		return nil, err
	}
	if stats.RecentArticles, err = s.resources.Articles.Recent(ctx, dashboardListLimit); err != nil {
		return nil, err
	}
	if stats.PopularJobs, err = s.resources.Jobs.MostViewed(ctx, dashboardListLimit); err != nil {
		return nil, err
	}
	if stats.PopularArticles, err = s.resources.Articles.MostViewed(ctx, dashboardListLimit); err != nil {
		return nil, err
	}
	return stats, nil
}

func addCounts[T any, PT interface {
	*T
	Content
}](ctx context.Context, stats *DashboardStats, store *Store[T, PT]) error {
	total, err := store.Count(ctx, false)
	if err != nil {
		return err
	}
	published, err := store.Count(ctx, true)
	if err != nil {
		return err
	}
	stats.Counts[store.Schema().Name] = TypeStats{
		Total:     total,
		Published: published,
		Drafts:    total - published,
	}
	return nil
}

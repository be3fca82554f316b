package services

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/launchhub/launchhub-backend/internal/models"
)

// SweeperService hard-deletes internships whose expiration date has
// passed. It runs once at startup and then on a fixed interval until
// the context is cancelled.
type SweeperService struct {
	db       *gorm.DB
	interval time.Duration
}

func NewSweeperService(db *gorm.DB, interval time.Duration) *SweeperService {
	return &SweeperService{db: db, interval: interval}
}

// Start launches the background sweep loop.
func (s *SweeperService) Start(ctx context.Context) {
	go func() {
		if _, err := s.SweepOnce(ctx); err != nil {
			log.Error().Err(err).Msg("expiration sweep failed")
		}

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := s.SweepOnce(ctx); err != nil {
					log.Error().Err(err).Msg("expiration sweep failed")
				}
			}
		}
	}()
}

// SweepOnce removes every internship past its expiration date and
// returns how many were deleted.
func (s *SweeperService) SweepOnce(ctx context.Context) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("expires_at IS NOT NULL AND expires_at < ?", time.Now()).
		Delete(&models.Internship{})
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected > 0 {
		log.Info().Int64("deleted", res.RowsAffected).Msg("removed expired internships")
	}
	return res.RowsAffected, nil
}

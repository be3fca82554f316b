package database

import (
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/launchhub/launchhub-backend/internal/config"
	"github.com/launchhub/launchhub-backend/internal/models"
)

// Connect opens the Postgres connection and migrates the schema.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	log.Info().Str("host", cfg.DBHost).Str("database", cfg.DBName).Msg("database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the tables for every model. Shared with
// the sqlite-backed test fixtures.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Job{},
		&models.Internship{},
		&models.Article{},
		&models.Roadmap{},
		&models.DSAProblem{},
		&models.Page{},
		&models.ArticleInteraction{},
	)
}

package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/tmc/langchaingo/llms/googleai"

	"github.com/launchhub/launchhub-backend/internal/auth"
	"github.com/launchhub/launchhub-backend/internal/config"
	"github.com/launchhub/launchhub-backend/internal/database"
	"github.com/launchhub/launchhub-backend/internal/handlers"
	"github.com/launchhub/launchhub-backend/internal/services"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "2006-01-02 15:04:05"})

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}

	ctx := context.Background()

	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(cfg.GeminiAPIKey),
		googleai.WithDefaultModel(cfg.GenerationModel),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("generation client initialization failed")
	}

	resources := services.NewResources(db)
	users := services.NewUserService(db)
	interactions := services.NewInteractionService(db, cfg.PublicBaseURL)
	generator := services.NewGenerationService(llm, cfg.GenerationTimeout)
	stats := services.NewStatsService(resources)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)

	sweeper := services.NewSweeperService(db, cfg.SweepInterval)
	sweeper.Start(ctx)

	router := handlers.NewRouter(handlers.Dependencies{
		Resources:    resources,
		Users:        users,
		Interactions: interactions,
		Generator:    generator,
		Stats:        stats,
		JWT:          jwtManager,
	})

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}

package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"mergington/internal/config"
	"mergington/internal/db"
	"mergington/internal/logger"
	"mergington/internal/repository"
	"mergington/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}
	l := logger.New(cfg)
	l.Info().Msg("starting seed script")

	gormDB, err := db.Open(cfg.DatabaseURL, cfg.Debug)
	if err != nil {
		l.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer func() {
		if sqlDB, err := gormDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	// Run migrations to ensure schema is up to date
	if err := db.Migrate(gormDB); err != nil {
		l.Fatal().Err(err).Msg("failed to run migrations")
	}

	activityRepo := repository.NewActivityRepository(gormDB)
	enrollmentRepo := repository.NewEnrollmentRepository(gormDB)
	svc := service.NewActivityService(activityRepo, enrollmentRepo)

	ctx := l.WithContext(context.Background())
	inserted, err := svc.Seed(ctx)
	if err != nil {
		l.Fatal().Err(err).Msg("failed to seed activities")
	}

	total, err := activityRepo.Count(ctx)
	if err != nil {
		l.Fatal().Err(err).Msg("failed to count activities")
	}
	l.Info().Int("inserted", inserted).Int64("total", total).Msg("seed completed")
}

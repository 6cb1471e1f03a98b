package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"mergington/docs"
	"mergington/internal/config"
	"mergington/internal/db"
	"mergington/internal/handler"
	"mergington/internal/logger"
	"mergington/internal/repository"
	"mergington/internal/router"
	"mergington/internal/service"
)

// @title Mergington High School API
// @version 1.0
// @description API for viewing and signing up for extracurricular activities
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}
	l := logger.New(cfg)
	ctx := l.WithContext(context.Background())

	gormDB, err := db.Open(cfg.DatabaseURL, cfg.Debug)
	if err != nil {
		l.Fatal().Err(err).Msg("database init")
	}

	if cfg.ResetDB {
		l.Warn().Msg("RESET_DB=true detected, dropping all tables")
		if err := db.DropAll(gormDB); err != nil {
			l.Fatal().Err(err).Msg("reset database")
		}
	}

	if err := db.Migrate(gormDB); err != nil {
		l.Fatal().Err(err).Msg("migrate")
	}

	// Initialize repositories
	activityRepo := repository.NewActivityRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)
	enrollmentRepo := repository.NewEnrollmentRepository(gormDB)

	// Initialize services
	activityService := service.NewActivityService(activityRepo, enrollmentRepo)
	enrollmentService := service.NewEnrollmentService(activityRepo, userRepo, enrollmentRepo)

	if _, err := activityService.Seed(ctx); err != nil {
		l.Fatal().Err(err).Msg("seed activities")
	}

	// Initialize handlers
	activityHandler := handler.NewActivityHandler(activityService)
	enrollmentHandler := handler.NewEnrollmentHandler(enrollmentService)

	e := echo.New()
	e.HidePort = true
	router.Register(e, cfg, l, activityHandler, enrollmentHandler)

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "http://"), "https://")
	}
	l.Info().Str("url", swaggerURL(cfg)).Msg("swagger documentation available")

	addr := ":" + cfg.ServerPort
	go func() {
		l.Info().Str("addr", addr).Msg("http server listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Fatal().Err(err).Msg("server start")
		}
	}()

	stop, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	<-stop.Done()

	l.Info().Msg("shutting down")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancelShutdown()
	if err := e.Shutdown(shutdownCtx); err != nil {
		l.Error().Err(err).Msg("server shutdown")
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func swaggerURL(cfg *config.Config) string {
	host := cfg.SwaggerHost
	if host == "" {
		return "http://localhost:" + cfg.ServerPort + "/swagger/index.html"
	}
	// SwaggerHost may already include scheme (http:// or https://)
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "http://" + host
	}
	return host + "/swagger/index.html"
}

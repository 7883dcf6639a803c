package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rentapapa/booking-api/internal/api"
	"github.com/rentapapa/booking-api/internal/core/ports"
	"github.com/rentapapa/booking-api/internal/core/service"
	"github.com/rentapapa/booking-api/internal/infrastructure/config"
	"github.com/rentapapa/booking-api/internal/infrastructure/db/mongo"
	"github.com/rentapapa/booking-api/internal/infrastructure/db/redis"
	"github.com/rentapapa/booking-api/internal/infrastructure/notify"
	"github.com/rentapapa/booking-api/internal/infrastructure/queue"
	"github.com/rentapapa/booking-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Storage ---
	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	if err := mongo.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("mongo index creation failed")
	}

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	// --- Repositories ---
	userRepo := mongo.NewUserRepository(db)
	adminRepo := mongo.NewAdminRepository(db)
	papaRepo := mongo.NewPapaRepository(db)
	reservationRepo := mongo.NewReservationRepository(db)

	// --- Notifications ---
	var sender ports.Notifier
	if cfg.SMTP.Host != "" {
		sender = notify.NewSMTPNotifier(cfg.SMTP)
	} else {
		log.Warn().Msg("no SMTP host configured, notifications go to the log only")
		sender = notify.NewLogNotifier(log)
	}
	notifier := queue.NewDispatcher(cfg.NotifyWorkers, sender, log)
	notifier.Start(ctx)

	// --- Core services ---
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.JWTTTL)
	auth := service.NewAuthService(adminRepo, userRepo, tokens, log)
	users := service.NewUserService(userRepo, notifier, log)
	admins := service.NewAdminService(adminRepo, log)
	papas := service.NewPapaService(papaRepo, log)
	reservations := service.NewReservationService(reservationRepo, userRepo, papaRepo, notifier, log)

	if cfg.Reminder.Enabled {
		reminder := service.NewReminder(
			reservations,
			userRepo,
			papaRepo,
			redis.NewReminderMarker(rdb),
			notifier,
			cfg.Reminder.Interval,
			log,
		)
		go reminder.Start(ctx)
	}

	// --- HTTP server ---
	e := api.NewRouter(api.Services{
		Tokens:       tokens,
		Auth:         auth,
		Users:        users,
		Admins:       admins,
		Papas:        papas,
		Reservations: reservations,
	}, db, rdb, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

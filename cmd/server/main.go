package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/roomdesk/booking-api/internal/api"
	"github.com/roomdesk/booking-api/internal/core/service"
	"github.com/roomdesk/booking-api/internal/infrastructure/config"
	mongodb "github.com/roomdesk/booking-api/internal/infrastructure/db/mongo"
	redisdb "github.com/roomdesk/booking-api/internal/infrastructure/db/redis"
	"github.com/roomdesk/booking-api/internal/infrastructure/queue"
	"github.com/roomdesk/booking-api/pkg/logger"
)

// @title        Roomdesk Booking API
// @version      1.0
// @description  REST backend for the room-booking admin tool.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	roomRepo := mongodb.NewRoomRepository(db)
	roomTypeRepo := mongodb.NewRoomTypeRepository(db)
	auditRepo := mongodb.NewAuditRepository(db)

	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user index creation failed")
	}
	if err := roomRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("room index creation failed")
	}
	if err := roomTypeRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("room type index creation failed")
	}

	// --- Audit trail ---
	auditService := service.NewAuditService(auditRepo, log)
	dispatcher := queue.NewDispatcher(cfg.Audit.Workers, auditService, log)
	dispatcher.Start(ctx)

	// --- HTTP server ---
	e := api.NewRouter(api.Deps{
		Config:    cfg,
		DB:        db,
		Redis:     rdb,
		Users:     userRepo,
		Rooms:     roomRepo,
		RoomTypes: roomTypeRepo,
		Audit:     dispatcher,
		Logger:    log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fieldhouse/service-booking/internal/application"
	"github.com/fieldhouse/service-booking/internal/config"
	"github.com/fieldhouse/service-booking/internal/handler"
	"github.com/fieldhouse/service-booking/internal/platform/database"
	"github.com/fieldhouse/service-booking/internal/platform/health"
	"github.com/fieldhouse/service-booking/internal/platform/kafka"
	"github.com/fieldhouse/service-booking/internal/platform/logger"
	"github.com/fieldhouse/service-booking/internal/platform/middleware"
	"github.com/fieldhouse/service-booking/internal/repository"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewNamed(cfg.AppEnv, "service-booking")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting service-booking",
		zap.String("port", cfg.Port),
	)

	// Connect to database
	db, err := database.Connect(cfg.DBConfig, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	// Run database migrations
	if cfg.AppEnv == "development" {
		if err := db.AutoMigrate(
			&repository.BookingModel{},
			&repository.PlayerModel{},
			&repository.PlayerTypeModel{},
			&repository.PitchModel{},
			&repository.MatchModel{},
		); err != nil {
			log.Fatal("failed to run auto-migration", zap.Error(err))
		}
		log.Info("database migration completed (dev auto-migrate)")
	} else {
		dbURL := cfg.DBConfig.DatabaseURL()
		if err := database.RunMigrations(dbURL, cfg.MigrationsDir, log); err != nil {
			log.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	// Initialize Kafka producer
	kafkaProducer := kafka.NewProducer(cfg.KafkaConfig.Brokers, log)
	defer func() { _ = kafkaProducer.Close() }()

	// Initialize repositories
	bookingRepo := repository.NewGormBookingRepository(db)
	playerRepo := repository.NewGormPlayerRepository(db)
	playerTypeRepo := repository.NewGormPlayerTypeRepository(db)
	pitchRepo := repository.NewGormPitchRepository(db)
	matchRepo := repository.NewGormMatchRepository(db)

	// Initialize application services
	bookingService := application.NewBookingService(
		bookingRepo,
		kafkaProducer,
		log,
		cfg.BookingConfig.MaxMinutesPerDay,
	)
	playerService := application.NewPlayerService(playerRepo, playerTypeRepo, log)
	pitchService := application.NewPitchService(pitchRepo, log)
	rankingService := application.NewRankingService(matchRepo, kafkaProducer, log)

	// Initialize HTTP handlers
	bookingHandler := handler.NewBookingHandler(bookingService)
	playerHandler := handler.NewPlayerHandler(playerService)
	pitchHandler := handler.NewPitchHandler(pitchService)
	rankingHandler := handler.NewRankingHandler(rankingService)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	// Apply global middleware
	router.Use(middleware.RecoveryMiddleware(log))
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	// Register health check routes
	healthHandler := health.NewHandler(db, "service-booking")
	healthHandler.RegisterRoutes(router)

	// Register routes
	bookingHandler.RegisterRoutes(&router.RouterGroup)
	playerHandler.RegisterRoutes(&router.RouterGroup)
	pitchHandler.RegisterRoutes(&router.RouterGroup)
	rankingHandler.RegisterRoutes(&router.RouterGroup)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down service-booking...")

	// Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	log.Info("service-booking stopped")
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"hotelbooking/internal/app"
	"hotelbooking/internal/config"
	"hotelbooking/internal/database"
	"hotelbooking/internal/modules/booking"
	"hotelbooking/internal/modules/catalog"
	"hotelbooking/internal/pkg/cache"
	jwtsvc "hotelbooking/internal/pkg/jwt"
	"hotelbooking/internal/pkg/logger"
	"hotelbooking/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("config: %v", err)
	}

	log, closeLog := logger.New(logger.Config{Level: cfg.LogLevel, File: cfg.LogFile, JSON: cfg.LogJSON})
	defer func() { _ = closeLog() }()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.DatabaseURL, log)
	if err != nil {
		log.WithError(err).Fatal("database connect")
	}
	if err := database.Migrate(db); err != nil {
		log.WithError(err).Fatal("database migrate")
	}

	ctx := context.Background()
	if err := database.Seed(ctx, db, catalog.SampleRooms(), booking.SampleBookings(time.Now())); err != nil {
		log.WithError(err).Fatal("database seed")
	}

	rooms, err := catalog.Load(ctx, repository.NewRoomRepository(db))
	if err != nil {
		log.WithError(err).Fatal("catalog")
	}
	log.WithField("rooms", rooms.Len()).Info("catalog loaded")

	var resultCache catalog.ResultCache
	if cfg.RedisAddr != "" {
		if rdb := cache.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB); rdb != nil {
			defer func() { _ = rdb.Close() }()
			resultCache = cache.NewRoomCache(rdb, cfg.CacheTTL, log)
			log.WithField("addr", cfg.RedisAddr).Info("filter cache enabled")
		} else {
			log.WithField("addr", cfg.RedisAddr).Warn("redis unreachable, filter cache disabled")
		}
	}

	var publisher booking.CheckoutPublisher = booking.NewLogPublisher(log)
	if cfg.AMQPURL != "" {
		amqpPub, err := booking.NewAMQPPublisher(cfg.AMQPURL, cfg.CheckoutQueue, log)
		if err != nil {
			log.WithError(err).Warn("rabbitmq unavailable, checkout is logged only")
		} else {
			defer func() { _ = amqpPub.Close() }()
			publisher = amqpPub
		}
	}

	r := app.NewRouter(app.Deps{
		DB:          db,
		Catalog:     rooms,
		Cache:       resultCache,
		Publisher:   publisher,
		JWT:         jwtsvc.New(cfg.JWTSecret, cfg.SessionTTL),
		Log:         log,
		CORSOrigins: cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("port", cfg.Port).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("server shutdown")
	}
}

package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"hotelbooking/internal/database"
	"hotelbooking/internal/domain"
	"hotelbooking/internal/modules/booking"
	"hotelbooking/internal/modules/catalog"
	"hotelbooking/internal/pkg/logger"
	"hotelbooking/internal/repository"
)

func main() {
	_ = godotenv.Load()

	reset := flag.Bool("reset", false, "delete existing rooms, reviews, bookings and profiles first")
	demoPassword := flag.String("demo-password", "password123", "password of the demo profile")
	flag.Parse()

	log, closeLog := logger.New(logger.Config{Level: os.Getenv("LOG_LEVEL")})
	defer func() { _ = closeLog() }()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}

	db, err := database.Connect(dsn, log)
	if err != nil {
		log.WithError(err).Fatal("DB connection failed")
	}

	log.Info("running AutoMigrate")
	if err := database.Migrate(db); err != nil {
		log.WithError(err).Fatal("AutoMigrate failed")
	}

	if *reset {
		// children first
		log.Info("cleaning old data")
		for _, table := range []string{"reviews", "bookings", "rooms", "profiles"} {
			if err := db.Exec("DELETE FROM " + table).Error; err != nil {
				log.WithError(err).WithField("table", table).Fatal("cleanup failed")
			}
		}
	}

	ctx := context.Background()
	rooms := catalog.SampleRooms()
	bookings := booking.SampleBookings(time.Now())
	if err := database.Seed(ctx, db, rooms, bookings); err != nil {
		log.WithError(err).Fatal("seed failed")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*demoPassword), bcrypt.DefaultCost)
	if err != nil {
		log.WithError(err).Fatal("hash demo password")
	}
	demo := domain.DefaultProfile("Test User")
	demo.PasswordHash = string(hash)
	if err := repository.NewProfileRepository(db).Save(ctx, &demo); err != nil {
		log.WithError(err).Fatal("seed demo profile")
	}

	log.WithFields(logrus.Fields{
		"rooms":    len(rooms),
		"bookings": len(bookings),
		"profile":  demo.UserName,
	}).Info("seed complete")
}

package database

import (
	"context"
	"fmt"
	"strings"

	"hotelbooking/internal/domain"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// DefaultDSN is a process-local in-memory store, reseeded on every start.
const DefaultDSN = "file::memory:?cache=shared"

func Connect(dsn string, log logrus.FieldLogger) (*gorm.DB, error) {
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}

	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Info("connecting to PostgreSQL")
		return gorm.Open(postgres.Open(dsn), cfg)
	}

	log.WithField("dsn", dsn).Info("using SQLite")

	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		cfg,
	)
	if err != nil {
		return nil, err
	}

	// an in-memory database lives as long as one connection does, and sqlite
	// serialises writers anyway
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(0)

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Room{},
		&domain.Review{},
		&domain.Booking{},
		&domain.Profile{},
	)
}

// Seed inserts the sample rooms and bookings. Rows that already exist are
// left untouched, so seeding twice is harmless.
func Seed(ctx context.Context, db *gorm.DB, rooms []domain.Room, bookings []domain.Booking) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(rooms) > 0 {
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rooms).Error; err != nil {
				return fmt.Errorf("seed rooms: %w", err)
			}
		}
		if len(bookings) > 0 {
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&bookings).Error; err != nil {
				return fmt.Errorf("seed bookings: %w", err)
			}
		}
		return nil
	})
}

package database

import (
	"fmt"
	"log"

	"github.com/RabbiPrimon/Calorie-Counter/config"
	"github.com/RabbiPrimon/Calorie-Counter/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// New opens the Postgres connection and runs schema migrations.
func New(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode,
	)

	// Log connection target (without password)
	log.Printf("Connecting to database at %s:%s as user %s", cfg.DBHost, cfg.DBPort, cfg.DBUser)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	log.Printf("Successfully connected to database")
	return db, nil
}

// Migrate creates or updates the three application tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.ConsumptionEntry{},
	)
}

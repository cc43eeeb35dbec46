// Package db opens the relational store used by the service.
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	gmysql "gorm.io/driver/mysql"
	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	activityentity "carbon_backend/internal/feature/activity/domain/entity"
	authentity "carbon_backend/internal/feature/auth/domain/entity"
	datasetentity "carbon_backend/internal/feature/datasets/domain/entity"
)

// Config holds the database connection settings.
type Config struct {
	Driver   string // "mysql" (default) or "postgres"
	User     string
	Password string
	Name     string
	Host     string
	Port     string
}

// LoadConfig reads the connection settings from environment variables.
func LoadConfig() Config {
	driver := os.Getenv("DB_DRIVER")
	if driver == "" {
		driver = "mysql"
	}
	return Config{
		Driver:   driver,
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     os.Getenv("DB_NAME"),
		Host:     os.Getenv("DB_HOST"),
		Port:     os.Getenv("DB_PORT"),
	}
}

// BuildDSN constructs the driver-specific DSN string.
//
// The MySQL DSN must keep loc=UTC: activity dates are stored as UTC
// midnights and compared against a DATE column, and the driver rewrites
// bound time.Time values into loc before sending. Any other loc shifts
// the midnight stamp to a non-midnight datetime and date equality as
// well as window lower bounds stop matching.
func BuildDSN(cfg Config) string {
	if cfg.Driver == "postgres" {
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name)
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
}

// OpenDB connects to the database selected by DB_DRIVER (mysql by
// default, postgres supported) and retries for up to 60 seconds before
// giving up. With RUN_MIGRATIONS=true the additive schema migration
// runs on startup.
func OpenDB() *gorm.DB {
	cfg := LoadConfig()
	dsn := BuildDSN(cfg)

	var dialector gorm.Dialector
	if cfg.Driver == "postgres" {
		dialector = gpostgres.Open(dsn)
	} else {
		dialector = gmysql.Open(dsn)
	}

	var (
		db  *gorm.DB
		err error
	)

	// TranslateError maps driver duplicate-key errors to gorm.ErrDuplicatedKey.
	gormCfg := &gorm.Config{TranslateError: true}

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(dialector, gormCfg)
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := db.AutoMigrate(
			&authentity.User{},
			&activityentity.ActivityRecord{},
			&datasetentity.EmissionPoint{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}

package postgres

import (
	"fmt"
	"strings"

	"github.com/dom/superhero-pets/internal/domain"
	"github.com/dom/superhero-pets/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConnection(databaseURL, logLevel string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger:         logger.Default.LogMode(parseLogLevel(logLevel)),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates or updates every table the API uses.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Counter{},
		&domain.User{},
		&domain.Hero{},
		&domain.Item{},
		&domain.Pet{},
	)
}

// ResetCatalog empties heroes, items and pets and restarts their counters.
// Users are kept.
func ResetCatalog(db *gorm.DB) error {
	tables := []string{"pets", "items", "heroes", "counters"}
	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)).Error; err != nil {
			return fmt.Errorf("truncate %s: %w", table, err)
		}
	}
	return nil
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		User:    NewUserRepository(db),
		Pet:     NewPetRepository(db),
		Hero:    NewHeroRepository(db),
		Item:    NewItemRepository(db),
		Counter: NewCounterRepository(db),
	}
}

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

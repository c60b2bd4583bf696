package datasources

import (
	"fmt"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"octofit.backend/internal/config"
	"octofit.backend/internal/infrastructure/datasources/postgres"
	"octofit.backend/internal/infrastructure/models"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

var (
	openPostgres = postgres.NewConnection
	openSQLite   = func(path string) (*gorm.DB, error) {
		return gorm.Open(sqlite.Open(path), &gorm.Config{TranslateError: true})
	}
)

// Open connects to the configured database and migrates the schema when
// AutoMigrate is set.
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)
	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case "", DriverPostgres:
		db, err = openPostgres(cfg)
	case DriverSQLite:
		db, err = openSQLite(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	if cfg.AutoMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}
	return db, nil
}

// Migrate creates or alters the tables of every model.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// Package db provides database connection and management functionality.
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/swiftbudget/backend/config"
)

// Database wraps the GORM connection and owns its lifecycle: pool settings,
// schema migration and shutdown.
type Database struct {
	gorm *gorm.DB
}

// Open connects to PostgreSQL, applies the pool settings, verifies the
// connection and migrates the given models. The env string selects the GORM
// log verbosity: development environments log every statement, everything
// else only warnings.
func Open(cfg *config.DatabaseConfig, env string, models ...interface{}) (*Database, error) {
	gormDB, err := gorm.Open(postgres.Open(cfg.URL), &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel(env)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if len(models) > 0 {
		if err := gormDB.AutoMigrate(models...); err != nil {
			return nil, fmt.Errorf("failed to run auto-migration: %w", err)
		}
	}

	slog.Info("Database ready",
		"max_open_conns", cfg.MaxOpenConns,
		"max_idle_conns", cfg.MaxIdleConns,
		"migrated_models", len(models),
	)

	return &Database{gorm: gormDB}, nil
}

func gormLogLevel(env string) logger.LogLevel {
	if env == "development" {
		return logger.Info
	}
	return logger.Warn
}

// Gorm returns the underlying GORM handle for repository construction.
func (d *Database) Gorm() *gorm.DB {
	return d.gorm
}

// Ping verifies the connection is still alive.
func (d *Database) Ping(ctx context.Context) error {
	sqlDB, err := d.gorm.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB for ping: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// Close closes the database connection.
func (d *Database) Close() error {
	sqlDB, err := d.gorm.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB for closing: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	slog.Info("Database connection closed")
	return nil
}

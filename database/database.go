package database

import (
	"context"
	"fmt"

	"github.com/lshigami/qa-service/config"
	"github.com/lshigami/qa-service/internal/model"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewDatabase opens the Postgres pool and closes it when the fx app stops.
func NewDatabase(lc fx.Lifecycle, cfg *config.Config) (*gorm.DB, error) {
	db, err := Open(postgres.Open(cfg.Database.DSN()), cfg.Database)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			if err := sqlDB.PingContext(ctx); err != nil {
				return fmt.Errorf("database ping failed: %w", err)
			}
			log.Info().Str("host", cfg.Database.Host).Str("name", cfg.Database.Name).Msg("Database connection established")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			log.Info().Msg("Closing database connection pool")
			return sqlDB.Close()
		},
	})
	return db, nil
}

// Open wraps gorm.Open with the pool limits and the zerolog-backed SQL logger.
// Tests pass a SQLite dialector here.
func Open(dialector gorm.Dialector, cfg config.Database) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         NewGormLogger(cfg.SlowQuery),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access database pool: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
	return db, nil
}

// AutoMigrate creates the questions and answer tables if they are absent.
// With reset set, both tables are dropped first.
func AutoMigrate(db *gorm.DB, reset bool) error {
	if reset {
		log.Warn().Msg("Dropping all tables before migration")
		if err := db.Migrator().DropTable(&model.Answer{}, &model.Question{}); err != nil {
			log.Error().Err(err).Msg("Failed to drop tables")
			return err
		}
	}

	log.Info().Msg("Running database migrations...")
	if err := db.AutoMigrate(&model.Question{}, &model.Answer{}); err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}

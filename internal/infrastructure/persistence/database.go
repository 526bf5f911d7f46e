package persistence

import (
	"fmt"

	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	applogger "github.com/stayhub/backend/internal/infrastructure/logger"

	"github.com/stayhub/backend/internal/infrastructure/config"
)

// NewDatabase opens a PostgreSQL connection pool with tracing and the
// zap-backed GORM logger
func NewDatabase(cfg config.DatabaseConfig, log *zap.Logger, tracingEnabled bool) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: applogger.NewGormAdapter(log),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if tracingEnabled {
		if err := db.Use(otelgorm.NewPlugin()); err != nil {
			return nil, fmt.Errorf("otel gorm plugin: %w", err)
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sql db: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return db, nil
}

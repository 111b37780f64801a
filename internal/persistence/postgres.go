package persistence

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/spec-kit/blogging-platform/internal/config"
)

// Postgres wraps the GORM handle backing the generic repositories.
type Postgres struct {
	DB *gorm.DB
}

// NewPostgres opens a GORM connection when DSN is provided.
func NewPostgres(_ context.Context, cfg config.PostgresConfig, logger *zap.Logger) (*Postgres, error) {
	if cfg.DSN == "" {
		logger.Warn("POSTGRES_DSN not provided; skipping database connection")
		return &Postgres{DB: nil}, nil
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxIdleSec > 0 {
		sqlDB.SetConnMaxIdleTime(time.Duration(cfg.ConnMaxIdleSec) * time.Second)
	}
	if cfg.ConnMaxLifeSec > 0 {
		sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifeSec) * time.Second)
	}

	logger.Info("connected to postgres")
	return &Postgres{DB: db}, nil
}

// Close releases pool resources.
func (p *Postgres) Close() {
	if p == nil || p.DB == nil {
		return
	}
	if sqlDB, err := p.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// Ping verifies database connectivity.
func (p *Postgres) Ping(ctx context.Context) error {
	if p == nil || p.DB == nil {
		return ErrNotConfigured
	}
	sqlDB, err := p.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Handle returns the underlying GORM handle.
func (p *Postgres) Handle() *gorm.DB {
	if p == nil {
		return nil
	}
	return p.DB
}

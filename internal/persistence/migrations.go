package persistence

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/spec-kit/blogging-platform/internal/domain"
)

// ErrNotConfigured is returned by health probes when a dependency was not set up.
var ErrNotConfigured = errors.New("dependency not configured")

// RunMigrations creates or updates the schema for the three entity tables.
func RunMigrations(db *gorm.DB, logger *zap.Logger) error {
	if db == nil {
		logger.Warn("no database handle available; skipping migrations")
		return nil
	}

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.BlogPost{},
		&domain.Comment{},
	); err != nil {
		return err
	}

	logger.Info("migrations applied")
	return nil
}

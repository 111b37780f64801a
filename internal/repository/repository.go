package repository

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Repository is the single persistence contract shared by every entity type.
// Failures never escape as errors: write operations report a boolean success
// signal and reads report absence, with the underlying cause logged here.
// Services translate the signal into their own response classification.
type Repository[T any] interface {
	// Query exposes the underlying table as a composable query builder.
	Query(ctx context.Context) *gorm.DB
	// Find returns the first entity matching the condition, or absent.
	Find(ctx context.Context, query any, args ...any) (*T, bool)
	// Exists reports whether at least one entity matches the condition.
	// A persistence failure is indistinguishable from "none exist".
	Exists(ctx context.Context, query any, args ...any) bool
	// Add persists a new entity.
	Add(ctx context.Context, entity *T) bool
	// Update persists a full-row update of an already-loaded entity.
	Update(ctx context.Context, entity *T) bool
	// SoftDelete marks the entity inactive and deleted; the row remains.
	SoftDelete(ctx context.Context, id string) bool
	// HardDelete physically removes the row. Not called by any service.
	HardDelete(ctx context.Context, id string) bool
	// BulkInsert persists a batch of new entities.
	BulkInsert(ctx context.Context, entities []T) bool
}

type gormRepository[T any] struct {
	db     *gorm.DB
	logger *zap.Logger
}

// New returns a GORM-backed repository for entity type T.
func New[T any](db *gorm.DB, logger *zap.Logger) Repository[T] {
	return &gormRepository[T]{db: db, logger: logger}
}

func (r *gormRepository[T]) Query(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(new(T))
}

func (r *gormRepository[T]) Find(ctx context.Context, query any, args ...any) (*T, bool) {
	entity := new(T)
	err := r.db.WithContext(ctx).Where(query, args...).First(entity).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Error("repository find failed", zap.Error(err))
		}
		return nil, false
	}
	return entity, true
}

func (r *gormRepository[T]) Exists(ctx context.Context, query any, args ...any) bool {
	var count int64
	err := r.db.WithContext(ctx).Model(new(T)).Where(query, args...).Limit(1).Count(&count).Error
	if err != nil {
		r.logger.Error("repository exists check failed", zap.Error(err))
		return false
	}
	return count > 0
}

func (r *gormRepository[T]) Add(ctx context.Context, entity *T) bool {
	res := r.db.WithContext(ctx).Create(entity)
	if res.Error != nil {
		r.logger.Error("repository add failed", zap.Error(res.Error))
		return false
	}
	return res.RowsAffected > 0
}

func (r *gormRepository[T]) Update(ctx context.Context, entity *T) bool {
	res := r.db.WithContext(ctx).Save(entity)
	if res.Error != nil {
		r.logger.Error("repository update failed", zap.Error(res.Error))
		return false
	}
	return res.RowsAffected > 0
}

func (r *gormRepository[T]) SoftDelete(ctx context.Context, id string) bool {
	entity := new(T)
	if err := r.db.WithContext(ctx).First(entity, "id = ?", id).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Error("repository soft delete lookup failed", zap.Error(err), zap.String("id", id))
		}
		return false
	}

	now := time.Now().UTC()
	res := r.db.WithContext(ctx).Model(entity).Updates(map[string]any{
		"is_active":    false,
		"is_deleted":   true,
		"deleted_date": now,
		"updated_at":   now,
	})
	if res.Error != nil {
		r.logger.Error("repository soft delete failed", zap.Error(res.Error), zap.String("id", id))
		return false
	}
	return res.RowsAffected > 0
}

func (r *gormRepository[T]) HardDelete(ctx context.Context, id string) bool {
	res := r.db.WithContext(ctx).Delete(new(T), "id = ?", id)
	if res.Error != nil {
		r.logger.Error("repository hard delete failed", zap.Error(res.Error), zap.String("id", id))
		return false
	}
	return res.RowsAffected > 0
}

func (r *gormRepository[T]) BulkInsert(ctx context.Context, entities []T) bool {
	if len(entities) == 0 {
		return false
	}
	res := r.db.WithContext(ctx).CreateInBatches(entities, 100)
	if res.Error != nil {
		r.logger.Error("repository bulk insert failed", zap.Error(res.Error))
		return false
	}
	return res.RowsAffected > 0
}

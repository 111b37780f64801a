package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Base carries the audit and soft-delete fields shared by every persisted entity.
// Timestamps are stamped by the service layer, never by the ORM.
type Base struct {
	ID          string     `gorm:"primaryKey;size:64"`
	CreatedAt   time.Time  `gorm:"not null;autoCreateTime:false"`
	CreatedBy   string     `gorm:"size:100;not null"`
	UpdatedAt   *time.Time `gorm:"autoUpdateTime:false"`
	UpdatedBy   *string    `gorm:"size:100"`
	IsActive    bool       `gorm:"not null;default:false"`
	IsDeleted   bool       `gorm:"not null;default:false"`
	DeletedDate *time.Time
}

// Visible reports whether the entity may be seen by service-layer reads.
func (b Base) Visible() bool {
	return b.IsActive && !b.IsDeleted
}

// NewID generates an opaque entity identifier (hex, no dashes).
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// SystemActor is recorded as CreatedBy when no authenticated actor exists.
const SystemActor = "System"

package models

import (
	"time"

	"investtrack/internal/uuid"

	"gorm.io/gorm"
)

// Base contains the common columns of persisted records.
// Rows are hard-deleted, so there is no soft-delete column.
type Base struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New()
	}
	return nil
}

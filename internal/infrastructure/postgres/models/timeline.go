package models

import "time"

// TimelineEntryModel rows are append-only: they are created inside the
// same DB transaction as their status change and never updated or deleted.
type TimelineEntryModel struct {
	ID            string    `gorm:"primaryKey;type:uuid"`
	TransactionID string    `gorm:"type:uuid;not null;index"`
	Status        string    `gorm:"not null"`
	Note          string
	CreatedAt     time.Time `gorm:"not null;index"`
}

func (TimelineEntryModel) TableName() string {
	return "timeline_entries"
}

package models

import (
	"time"

	"github.com/lib/pq"
)

type DisputeModel struct {
	ID            string `gorm:"primaryKey;type:uuid"`
	TransactionID string `gorm:"type:uuid;uniqueIndex;not null"`
	Reason        string `gorm:"not null"`
	Description   string `gorm:"type:text;not null"`
	Evidence      pq.StringArray `gorm:"type:text[]"`
	Outcome       string
	OpenedAt      time.Time `gorm:"not null"`
	ResolvedAt    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (DisputeModel) TableName() string {
	return "disputes"
}

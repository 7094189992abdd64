package models

import (
	"time"

	"github.com/lib/pq"
	"github.com/sambashop/escrow-service/internal/domain"
)

type TransactionModel struct {
	ID                 string                   `gorm:"primaryKey;type:uuid"`
	Reference          string                   `gorm:"uniqueIndex;not null"`
	Status             domain.TransactionStatus `gorm:"index:idx_status_verification"`
	Amount             float64                  `gorm:"not null"`
	PaidAmount         float64                  `gorm:"not null;default:0"`
	Currency           string                   `gorm:"not null"`
	ClientName         string
	ClientPhone        string
	Guarantees         pq.StringArray `gorm:"type:text[]"`
	DeliveryMethod     string
	TrackingNumber     string
	Carrier            string
	EstimatedDate      *time.Time
	DeliveredAt        *time.Time
	VerificationEndsAt *time.Time           `gorm:"index:idx_status_verification"`
	Dispute            *DisputeModel        `gorm:"foreignKey:TransactionID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	Timeline           []TimelineEntryModel `gorm:"foreignKey:TransactionID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	CreatedAt          time.Time            `gorm:"index:idx_created_at"`
	UpdatedAt          time.Time
}

func (TransactionModel) TableName() string {
	return "escrow_transactions"
}

// PaymentEventModel records processed payment-provider events for
// idempotency. The provider may retry webhooks; a unique EventID makes a
// replay visible before any credit is applied.
type PaymentEventModel struct {
	ID            string    `gorm:"primaryKey;type:uuid"`
	EventID       string    `gorm:"uniqueIndex;not null"`
	TransactionID string    `gorm:"type:uuid;not null;index"`
	Amount        float64   `gorm:"not null"`
	ProcessedAt   time.Time `gorm:"not null"`
}

func (PaymentEventModel) TableName() string {
	return "payment_events"
}

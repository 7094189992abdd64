package escrowdto

import (
	"time"

	"github.com/sambashop/escrow-service/internal/domain"
)

type CreateTransactionInput struct {
	Amount      float64
	Currency    string
	ClientName  string
	ClientPhone string
	Guarantees  []string
}

type RecordPaymentInput struct {
	Reference string
	// EventID is the payment provider's event id, used as the
	// idempotency key for webhook retries.
	EventID string
	Amount  float64
}

type DeliveryInput struct {
	Method         string
	TrackingNumber string
	Carrier        string
	EstimatedDate  time.Time
}

type AdvanceFulfillmentInput struct {
	Reference    string
	TargetStatus domain.TransactionStatus
	Delivery     *DeliveryInput
}

type ConfirmDeliveryInput struct {
	Reference   string
	DeliveredAt time.Time
}

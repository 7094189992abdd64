package request

// RecordPaymentRequest mirrors the payment provider's webhook payload.
// EventID is the provider's event id and doubles as the idempotency key.
type RecordPaymentRequest struct {
	EventID string  `json:"event_id" binding:"required"`
	Amount  float64 `json:"amount" binding:"required"`
}

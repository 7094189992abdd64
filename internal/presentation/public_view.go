package presentation

import (
	"time"

	"github.com/sambashop/escrow-service/internal/domain"
)

const (
	maskHead = 3
	maskTail = 2
	// phoneMask is fixed-width regardless of how many digits it hides.
	phoneMask = "****"
)

// PublicTransactionView is the low-trust projection of a transaction:
// internal ids are stripped and the client phone is masked. It is the only
// shape returned to unauthenticated reference lookups.
type PublicTransactionView struct {
	Reference          string                `json:"reference"`
	Status             string                `json:"status"`
	Amount             float64               `json:"amount"`
	PaidAmount         float64               `json:"paid_amount"`
	Currency           string                `json:"currency"`
	ClientName         string                `json:"client_name"`
	ClientPhone        string                `json:"client_phone"`
	Guarantees         []string              `json:"guarantees,omitempty"`
	Delivery           *PublicDeliveryView   `json:"delivery,omitempty"`
	DeliveredAt        *time.Time            `json:"delivered_at,omitempty"`
	VerificationEndsAt *time.Time            `json:"verification_ends_at,omitempty"`
	Dispute            *PublicDisputeView    `json:"dispute,omitempty"`
	Timeline           []PublicTimelineEntry `json:"timeline"`
	CreatedAt          time.Time             `json:"created_at"`
}

type PublicDeliveryView struct {
	Method         string     `json:"method"`
	TrackingNumber string     `json:"tracking_number,omitempty"`
	Carrier        string     `json:"carrier,omitempty"`
	EstimatedDate  *time.Time `json:"estimated_date,omitempty"`
}

type PublicDisputeView struct {
	Reason     string     `json:"reason"`
	OpenedAt   time.Time  `json:"opened_at"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
}

type PublicTimelineEntry struct {
	Status    string    `json:"status"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func ToPublicView(tx *domain.EscrowTransaction) PublicTransactionView {
	view := PublicTransactionView{
		Reference:          tx.Reference,
		Status:             string(tx.Status),
		Amount:             tx.Amount,
		PaidAmount:         tx.PaidAmount,
		Currency:           tx.Currency,
		ClientName:         tx.Client.Name,
		ClientPhone:        MaskPhone(tx.Client.Phone),
		Guarantees:         tx.Guarantees,
		DeliveredAt:        tx.DeliveredAt,
		VerificationEndsAt: tx.VerificationEndsAt,
		CreatedAt:          tx.CreatedAt,
	}

	if tx.Delivery != nil {
		delivery := PublicDeliveryView{
			Method:         tx.Delivery.Method,
			TrackingNumber: tx.Delivery.TrackingNumber,
			Carrier:        tx.Delivery.Carrier,
		}
		if !tx.Delivery.EstimatedDate.IsZero() {
			estimated := tx.Delivery.EstimatedDate
			delivery.EstimatedDate = &estimated
		}
		view.Delivery = &delivery
	}

	if tx.Dispute != nil {
		view.Dispute = &PublicDisputeView{
			Reason:     string(tx.Dispute.Reason),
			OpenedAt:   tx.Dispute.OpenedAt,
			ResolvedAt: tx.Dispute.ResolvedAt,
		}
	}

	view.Timeline = make([]PublicTimelineEntry, len(tx.Timeline))
	for i, entry := range tx.Timeline {
		view.Timeline[i] = PublicTimelineEntry{
			Status:    string(entry.Status),
			Note:      entry.Note,
			CreatedAt: entry.CreatedAt,
		}
	}

	return view
}

// MaskPhone keeps the first 3 and last 2 digits and hides the middle behind
// a fixed-width mask: "771234567" -> "771****67". A phone shorter than
// head+tail is returned as-is; callers asked for that edge explicitly
// rather than having it swallowed.
func MaskPhone(phone string) string {
	if len(phone) < maskHead+maskTail {
		return phone
	}
	return phone[:maskHead] + phoneMask + phone[len(phone)-maskTail:]
}

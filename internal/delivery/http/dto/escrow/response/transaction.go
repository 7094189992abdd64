package response

import (
	"time"

	"github.com/sambashop/escrow-service/internal/domain"
)

// TransactionResponse is the authenticated merchant/admin projection. The
// client phone is returned unmasked here; the public lookup goes through
// the presentation layer instead.
type TransactionResponse struct {
	ID                 string             `json:"id"`
	Reference          string             `json:"reference"`
	Status             string             `json:"status"`
	Amount             float64            `json:"amount"`
	PaidAmount         float64            `json:"paid_amount"`
	Currency           string             `json:"currency"`
	Client             ClientView         `json:"client"`
	Guarantees         []string           `json:"guarantees,omitempty"`
	Delivery           *DeliveryView      `json:"delivery,omitempty"`
	DeliveredAt        *time.Time         `json:"delivered_at,omitempty"`
	VerificationEndsAt *time.Time         `json:"verification_ends_at,omitempty"`
	Dispute            *DisputeView       `json:"dispute,omitempty"`
	Timeline           []TimelineView     `json:"timeline"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

type ClientView struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type DeliveryView struct {
	Method         string     `json:"method"`
	TrackingNumber string     `json:"tracking_number,omitempty"`
	Carrier        string     `json:"carrier,omitempty"`
	EstimatedDate  *time.Time `json:"estimated_date,omitempty"`
}

type DisputeView struct {
	ID          string     `json:"id"`
	Reason      string     `json:"reason"`
	Description string     `json:"description"`
	Evidence    []string   `json:"evidence,omitempty"`
	Outcome     string     `json:"outcome,omitempty"`
	OpenedAt    time.Time  `json:"opened_at"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
}

type TimelineView struct {
	Status    string    `json:"status"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func FromTransaction(tx *domain.EscrowTransaction) TransactionResponse {
	resp := TransactionResponse{
		ID:         tx.ID,
		Reference:  tx.Reference,
		Status:     string(tx.Status),
		Amount:     tx.Amount,
		PaidAmount: tx.PaidAmount,
		Currency:   tx.Currency,
		Client: ClientView{
			Name:  tx.Client.Name,
			Phone: tx.Client.Phone,
		},
		Guarantees:         tx.Guarantees,
		DeliveredAt:        tx.DeliveredAt,
		VerificationEndsAt: tx.VerificationEndsAt,
		CreatedAt:          tx.CreatedAt,
		UpdatedAt:          tx.UpdatedAt,
	}

	if tx.Delivery != nil {
		view := DeliveryView{
			Method:         tx.Delivery.Method,
			TrackingNumber: tx.Delivery.TrackingNumber,
			Carrier:        tx.Delivery.Carrier,
		}
		if !tx.Delivery.EstimatedDate.IsZero() {
			estimated := tx.Delivery.EstimatedDate
			view.EstimatedDate = &estimated
		}
		resp.Delivery = &view
	}

	if tx.Dispute != nil {
		resp.Dispute = FromDisputePtr(tx.Dispute)
	}

	resp.Timeline = make([]TimelineView, len(tx.Timeline))
	for i, entry := range tx.Timeline {
		resp.Timeline[i] = TimelineView{
			Status:    string(entry.Status),
			Note:      entry.Note,
			CreatedAt: entry.CreatedAt,
		}
	}

	return resp
}

func FromDisputePtr(dispute *domain.Dispute) *DisputeView {
	return &DisputeView{
		ID:          dispute.ID,
		Reason:      string(dispute.Reason),
		Description: dispute.Description,
		Evidence:    dispute.Evidence,
		Outcome:     string(dispute.Outcome),
		OpenedAt:    dispute.OpenedAt,
		ResolvedAt:  dispute.ResolvedAt,
	}
}

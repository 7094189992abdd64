package response

import (
	"time"

	"github.com/sambashop/escrow-service/internal/domain"
)

type DisputeResponse struct {
	ID          string     `json:"id"`
	Reason      string     `json:"reason"`
	Description string     `json:"description"`
	Evidence    []string   `json:"evidence,omitempty"`
	Outcome     string     `json:"outcome,omitempty"`
	OpenedAt    time.Time  `json:"opened_at"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
}

type DisputeListResponse struct {
	Disputes []DisputeResponse `json:"disputes"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
}

func FromDispute(dispute *domain.Dispute) DisputeResponse {
	return DisputeResponse{
		ID:          dispute.ID,
		Reason:      string(dispute.Reason),
		Description: dispute.Description,
		Evidence:    dispute.Evidence,
		Outcome:     string(dispute.Outcome),
		OpenedAt:    dispute.OpenedAt,
		ResolvedAt:  dispute.ResolvedAt,
	}
}

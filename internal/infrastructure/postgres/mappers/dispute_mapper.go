package mappers

import (
	"github.com/sambashop/escrow-service/internal/domain"
	"github.com/sambashop/escrow-service/internal/infrastructure/postgres/models"
)

func ToDomainDispute(model *models.DisputeModel) *domain.Dispute {
	return &domain.Dispute{
		ID:            model.ID,
		TransactionID: model.TransactionID,
		Reason:        domain.DisputeReason(model.Reason),
		Description:   model.Description,
		Evidence:      model.Evidence,
		Outcome:       domain.DisputeOutcome(model.Outcome),
		OpenedAt:      model.OpenedAt,
		ResolvedAt:    model.ResolvedAt,
	}
}

func ToGORMDispute(dispute *domain.Dispute) *models.DisputeModel {
	return &models.DisputeModel{
		ID:            dispute.ID,
		TransactionID: dispute.TransactionID,
		Reason:        string(dispute.Reason),
		Description:   dispute.Description,
		Evidence:      dispute.Evidence,
		Outcome:       string(dispute.Outcome),
		OpenedAt:      dispute.OpenedAt,
		ResolvedAt:    dispute.ResolvedAt,
	}
}

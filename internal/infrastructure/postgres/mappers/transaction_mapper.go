package mappers

import (
	"github.com/sambashop/escrow-service/internal/domain"
	"github.com/sambashop/escrow-service/internal/infrastructure/postgres/models"
)

func ToDomainTransaction(model *models.TransactionModel) *domain.EscrowTransaction {
	tx := &domain.EscrowTransaction{
		ID:        model.ID,
		Reference: model.Reference,
		Status:    model.Status,
		Amount:    model.Amount,
		PaidAmount: model.PaidAmount,
		Currency:  model.Currency,
		Client: domain.Client{
			Name:  model.ClientName,
			Phone: model.ClientPhone,
		},
		Guarantees:         model.Guarantees,
		DeliveredAt:        model.DeliveredAt,
		VerificationEndsAt: model.VerificationEndsAt,
		CreatedAt:          model.CreatedAt,
		UpdatedAt:          model.UpdatedAt,
	}

	if model.DeliveryMethod != "" {
		delivery := domain.Delivery{
			Method:         model.DeliveryMethod,
			TrackingNumber: model.TrackingNumber,
			Carrier:        model.Carrier,
		}
		if model.EstimatedDate != nil {
			delivery.EstimatedDate = *model.EstimatedDate
		}
		tx.Delivery = &delivery
	}

	if model.Dispute != nil {
		tx.Dispute = ToDomainDispute(model.Dispute)
	}

	tx.Timeline = make([]domain.TimelineEntry, len(model.Timeline))
	for i, entry := range model.Timeline {
		tx.Timeline[i] = domain.TimelineEntry{
			ID:        entry.ID,
			Status:    domain.TransactionStatus(entry.Status),
			Note:      entry.Note,
			CreatedAt: entry.CreatedAt,
		}
	}

	return tx
}

func ToGORMTransaction(tx *domain.EscrowTransaction) *models.TransactionModel {
	model := &models.TransactionModel{
		ID:                 tx.ID,
		Reference:          tx.Reference,
		Status:             tx.Status,
		Amount:             tx.Amount,
		PaidAmount:         tx.PaidAmount,
		Currency:           tx.Currency,
		ClientName:         tx.Client.Name,
		ClientPhone:        tx.Client.Phone,
		Guarantees:         tx.Guarantees,
		DeliveredAt:        tx.DeliveredAt,
		VerificationEndsAt: tx.VerificationEndsAt,
		CreatedAt:          tx.CreatedAt,
		UpdatedAt:          tx.UpdatedAt,
	}

	if tx.Delivery != nil {
		model.DeliveryMethod = tx.Delivery.Method
		model.TrackingNumber = tx.Delivery.TrackingNumber
		model.Carrier = tx.Delivery.Carrier
		if !tx.Delivery.EstimatedDate.IsZero() {
			estimated := tx.Delivery.EstimatedDate
			model.EstimatedDate = &estimated
		}
	}

	return model
}

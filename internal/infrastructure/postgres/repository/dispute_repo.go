package repository

import (
	"errors"
	"fmt"

	"github.com/sambashop/escrow-service/internal/domain"
	"github.com/sambashop/escrow-service/internal/infrastructure/postgres/mappers"
	"github.com/sambashop/escrow-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultDisputeRepository struct {
	db *gorm.DB
}

func NewDefaultDisputeRepository(db *gorm.DB) *DefaultDisputeRepository {
	return &DefaultDisputeRepository{db: db}
}

func (r *DefaultDisputeRepository) GetDisputeByReference(reference string) (*domain.Dispute, error) {
	var disputeModel models.DisputeModel
	err := r.db.Model(&models.DisputeModel{}).
		Joins("JOIN escrow_transactions ON escrow_transactions.id = disputes.transaction_id").
		Where("escrow_transactions.reference = ?", domain.NormalizeReference(reference)).
		First(&disputeModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDisputeNotFound
		}
		return nil, err
	}

	return mappers.ToDomainDispute(&disputeModel), nil
}

func (r *DefaultDisputeRepository) ListDisputes(filter domain.DisputeFilter) ([]*domain.Dispute, int64, error) {
	query := r.db.Model(&models.DisputeModel{}).
		Joins("JOIN escrow_transactions ON escrow_transactions.id = disputes.transaction_id")

	if filter.Reference != nil {
		query = query.Where("escrow_transactions.reference = ?", domain.NormalizeReference(*filter.Reference))
	}
	if filter.Active != nil {
		if *filter.Active {
			query = query.Where("disputes.resolved_at IS NULL")
		} else {
			query = query.Where("disputes.resolved_at IS NOT NULL")
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count failed: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 20
	}
	offset := (page - 1) * limit

	var disputeModels []models.DisputeModel
	if err := query.
		Order("disputes.opened_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&disputeModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to find dispute models: %w", err)
	}

	disputes := make([]*domain.Dispute, len(disputeModels))
	for i, disputeModel := range disputeModels {
		disputes[i] = mappers.ToDomainDispute(&disputeModel)
	}

	return disputes, total, nil
}

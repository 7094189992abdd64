package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sambashop/escrow-service/internal/domain"
	"github.com/sambashop/escrow-service/internal/infrastructure/postgres/mappers"
	"github.com/sambashop/escrow-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultTransactionRepository struct {
	DB *gorm.DB
}

func NewDefaultTransactionRepository(db *gorm.DB) *DefaultTransactionRepository {
	return &DefaultTransactionRepository{DB: db}
}

func (r *DefaultTransactionRepository) CreateTransaction(tx *domain.EscrowTransaction) error {
	model := mappers.ToGORMTransaction(tx)
	return r.DB.Transaction(func(db *gorm.DB) error {
		if err := db.Create(model).Error; err != nil {
			return err
		}
		return appendTimeline(db, model.ID, tx.Status, "transaction created")
	})
}

func (r *DefaultTransactionRepository) GetByReference(reference string) (*domain.EscrowTransaction, error) {
	var model models.TransactionModel
	err := r.DB.
		Preload("Dispute").
		Preload("Timeline", func(db *gorm.DB) *gorm.DB {
			return db.Order("timeline_entries.created_at ASC")
		}).
		First(&model, "reference = ?", domain.NormalizeReference(reference)).Error
	if err != nil {
		return nil, translateNotFound(err)
	}

	return mappers.ToDomainTransaction(&model), nil
}

func (r *DefaultTransactionRepository) ListTransactions() ([]*domain.EscrowTransaction, error) {
	var transactionModels []models.TransactionModel
	if err := r.DB.
		Preload("Dispute").
		Preload("Timeline", func(db *gorm.DB) *gorm.DB {
			return db.Order("timeline_entries.created_at ASC")
		}).
		Order("escrow_transactions.created_at DESC").
		Find(&transactionModels).Error; err != nil {
		return nil, err
	}

	transactions := make([]*domain.EscrowTransaction, len(transactionModels))
	for i, model := range transactionModels {
		transactions[i] = mappers.ToDomainTransaction(&model)
	}

	return transactions, nil
}

// ProcessTransition is the single mutation primitive of the state machine:
// the row is locked, the stored status is compared against the expected
// one, and the status change plus its timeline entry commit together.
func (r *DefaultTransactionRepository) ProcessTransition(
	reference string,
	from, to domain.TransactionStatus,
	note string,
	updates *domain.TransitionUpdates,
) error {
	return r.DB.Transaction(func(db *gorm.DB) error {
		model, err := lockTransaction(db, reference)
		if err != nil {
			return err
		}
		if model.Status != from {
			return domain.ErrInvalidTransition
		}

		fields := map[string]interface{}{"status": to}
		if updates != nil {
			if updates.Delivery != nil {
				fields["delivery_method"] = updates.Delivery.Method
				fields["tracking_number"] = updates.Delivery.TrackingNumber
				fields["carrier"] = updates.Delivery.Carrier
				if !updates.Delivery.EstimatedDate.IsZero() {
					fields["estimated_date"] = updates.Delivery.EstimatedDate
				}
			}
			if updates.DeliveredAt != nil {
				fields["delivered_at"] = *updates.DeliveredAt
			}
			if updates.VerificationEndsAt != nil {
				fields["verification_ends_at"] = *updates.VerificationEndsAt
			}
		}

		if err := db.Model(&models.TransactionModel{}).Where("id = ?", model.ID).Updates(fields).Error; err != nil {
			return fmt.Errorf("failed to update transaction %s: %w", reference, err)
		}

		return appendTimeline(db, model.ID, to, note)
	})
}

func (r *DefaultTransactionRepository) ProcessPayment(
	reference string,
	from domain.TransactionStatus,
	note, eventID string,
	amount float64,
) (domain.TransactionStatus, error) {
	var newStatus domain.TransactionStatus
	err := r.DB.Transaction(func(db *gorm.DB) error {
		model, err := lockTransaction(db, reference)
		if err != nil {
			return err
		}

		// Replay check before any credit is applied.
		var seen models.PaymentEventModel
		err = db.First(&seen, "event_id = ?", eventID).Error
		if err == nil {
			return domain.ErrPaymentEventSeen
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if model.Status != from {
			return domain.ErrInvalidTransition
		}

		newPaid := model.PaidAmount + amount
		if newPaid > model.Amount {
			return domain.ErrOverPayment
		}

		newStatus = domain.StatusFundsSecured
		if newPaid == model.Amount {
			newStatus = domain.StatusPaymentReceived
		}

		fields := map[string]interface{}{
			"status":      newStatus,
			"paid_amount": newPaid,
		}
		if err := db.Model(&models.TransactionModel{}).Where("id = ?", model.ID).Updates(fields).Error; err != nil {
			return fmt.Errorf("failed to credit transaction %s: %w", reference, err)
		}

		event := models.PaymentEventModel{
			ID:            uuid.NewString(),
			EventID:       eventID,
			TransactionID: model.ID,
			Amount:        amount,
			ProcessedAt:   time.Now(),
		}
		if err := db.Create(&event).Error; err != nil {
			return fmt.Errorf("failed to record payment event %s: %w", eventID, err)
		}

		return appendTimeline(db, model.ID, newStatus, note)
	})
	if err != nil {
		return "", err
	}
	return newStatus, nil
}

func (r *DefaultTransactionRepository) ProcessDisputeOpen(
	reference string,
	from domain.TransactionStatus,
	dispute *domain.Dispute,
	note string,
) error {
	return r.DB.Transaction(func(db *gorm.DB) error {
		model, err := lockTransaction(db, reference)
		if err != nil {
			return err
		}
		if model.Status != from {
			return domain.ErrInvalidTransition
		}

		dispute.TransactionID = model.ID
		disputeModel := mappers.ToGORMDispute(dispute)
		if err := db.Create(disputeModel).Error; err != nil {
			return fmt.Errorf("failed to create dispute for %s: %w", reference, err)
		}

		if err := db.Model(&models.TransactionModel{}).
			Where("id = ?", model.ID).
			Update("status", domain.StatusDisputed).Error; err != nil {
			return fmt.Errorf("failed to mark %s disputed: %w", reference, err)
		}

		return appendTimeline(db, model.ID, domain.StatusDisputed, note)
	})
}

func (r *DefaultTransactionRepository) ProcessDisputeResolve(
	reference string,
	to domain.TransactionStatus,
	outcome domain.DisputeOutcome,
	resolvedAt time.Time,
	note string,
) error {
	return r.DB.Transaction(func(db *gorm.DB) error {
		model, err := lockTransaction(db, reference)
		if err != nil {
			return err
		}
		if model.Status != domain.StatusDisputed {
			return domain.ErrInvalidTransition
		}

		res := db.Model(&models.DisputeModel{}).
			Where("transaction_id = ? AND resolved_at IS NULL", model.ID).
			Updates(map[string]interface{}{
				"outcome":     string(outcome),
				"resolved_at": resolvedAt,
			})
		if res.Error != nil {
			return fmt.Errorf("failed to resolve dispute for %s: %w", reference, res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrInvalidTransition
		}

		if err := db.Model(&models.TransactionModel{}).
			Where("id = ?", model.ID).
			Update("status", to).Error; err != nil {
			return fmt.Errorf("failed to close %s: %w", reference, err)
		}

		return appendTimeline(db, model.ID, to, note)
	})
}

func (r *DefaultTransactionRepository) FindVerificationExpired() ([]*domain.EscrowTransaction, error) {
	var transactionModels []models.TransactionModel
	if err := r.DB.
		Where("status = ?", domain.StatusDelivered).
		Where("verification_ends_at < ?", time.Now()).
		Find(&transactionModels).Error; err != nil {
		return nil, err
	}

	transactions := make([]*domain.EscrowTransaction, len(transactionModels))
	for i, model := range transactionModels {
		transactions[i] = mappers.ToDomainTransaction(&model)
	}

	return transactions, nil
}

func (r *DefaultTransactionRepository) GetStatistics(dateFrom, dateTo time.Time) (*domain.EscrowStatistics, error) {
	var stats domain.EscrowStatistics

	baseQuery := func() *gorm.DB {
		return r.DB.
			Model(&models.TransactionModel{}).
			Where("escrow_transactions.created_at BETWEEN ? AND ?", dateFrom, dateTo)
	}

	if err := baseQuery().Count(&stats.TotalTransactions).Error; err != nil {
		return nil, fmt.Errorf("count total transactions: %w", err)
	}

	if err := baseQuery().
		Where("status = ?", domain.StatusCompleted).
		Count(&stats.CompletedTransactions).Error; err != nil {
		return nil, fmt.Errorf("count completed transactions: %w", err)
	}

	if err := baseQuery().
		Where("status = ?", domain.StatusDisputed).
		Count(&stats.DisputedTransactions).Error; err != nil {
		return nil, fmt.Errorf("count disputed transactions: %w", err)
	}

	if err := baseQuery().
		Where("status = ?", domain.StatusRefunded).
		Count(&stats.RefundedTransactions).Error; err != nil {
		return nil, fmt.Errorf("count refunded transactions: %w", err)
	}

	type sums struct {
		TotalAmount     float64
		TotalPaidAmount float64
	}
	var s sums
	if err := baseQuery().
		Select("COALESCE(SUM(amount), 0) AS total_amount, COALESCE(SUM(paid_amount), 0) AS total_paid_amount").
		Scan(&s).Error; err != nil {
		return nil, fmt.Errorf("sum transaction amounts: %w", err)
	}
	stats.TotalAmount = s.TotalAmount
	stats.TotalPaidAmount = s.TotalPaidAmount

	return &stats, nil
}

// lockTransaction reads the aggregate row FOR UPDATE so that concurrent
// transitions on the same reference serialize at the database.
func lockTransaction(db *gorm.DB, reference string) (*models.TransactionModel, error) {
	var model models.TransactionModel
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&model, "reference = ?", domain.NormalizeReference(reference)).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &model, nil
}

func appendTimeline(db *gorm.DB, transactionID string, status domain.TransactionStatus, note string) error {
	entry := models.TimelineEntryModel{
		ID:            uuid.NewString(),
		TransactionID: transactionID,
		Status:        string(status),
		Note:          note,
		CreatedAt:     time.Now(),
	}
	if err := db.Create(&entry).Error; err != nil {
		return fmt.Errorf("failed to append timeline entry: %w", err)
	}
	return nil
}

func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrTransactionNotFound
	}
	return err
}

package usecase

import (
	"context"
	"time"

	"github.com/sambashop/escrow-service/internal/domain"
	"github.com/sambashop/escrow-service/internal/infrastructure/metrics"
	escrowdto "github.com/sambashop/escrow-service/internal/usecase/dto/escrow"
)

type EscrowUsecase interface {
	CreateTransaction(input *escrowdto.CreateTransactionInput) (*domain.EscrowTransaction, error)
	RecordPayment(input *escrowdto.RecordPaymentInput) (*domain.EscrowTransaction, error)
	AdvanceFulfillment(input *escrowdto.AdvanceFulfillmentInput) error
	ConfirmDelivery(input *escrowdto.ConfirmDeliveryInput) error
	ConfirmReceipt(reference string) error
	CompleteExpiredVerifications(ctx context.Context) error

	GetByReference(reference string) (*domain.EscrowTransaction, error)
	ListTransactions() ([]*domain.EscrowTransaction, error)
}

type DefaultEscrowUsecase struct {
	TransactionRepo domain.TransactionRepository
	Observer        domain.TransitionObserver
	Metrics         *metrics.EscrowMetrics

	// VerificationWindow is added to deliveredAt once, at delivery
	// confirmation; it is never recomputed afterwards.
	VerificationWindow time.Duration
}

func NewDefaultEscrowUsecase(
	transactionRepo domain.TransactionRepository,
	observer domain.TransitionObserver,
	escrowMetrics *metrics.EscrowMetrics,
	verificationWindow time.Duration,
) *DefaultEscrowUsecase {
	return &DefaultEscrowUsecase{
		TransactionRepo:    transactionRepo,
		Observer:           observer,
		Metrics:            escrowMetrics,
		VerificationWindow: verificationWindow,
	}
}

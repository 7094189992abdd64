package usecase

import (
	"github.com/sambashop/escrow-service/internal/domain"
	"github.com/sambashop/escrow-service/internal/infrastructure/metrics"
	disputedto "github.com/sambashop/escrow-service/internal/usecase/dto/dispute"
)

type DisputeUsecase interface {
	OpenDispute(input *disputedto.OpenDisputeInput) (*domain.Dispute, error)
	ResolveDispute(reference string, outcome domain.DisputeOutcome) error
	GetDisputeByReference(reference string) (*domain.Dispute, error)
	ListDisputes(input *disputedto.ListDisputesInput) ([]*domain.Dispute, int64, error)
}

type DefaultDisputeUsecase struct {
	TransactionRepo domain.TransactionRepository
	DisputeRepo     domain.DisputeRepository
	Observer        domain.TransitionObserver
	Metrics         *metrics.EscrowMetrics

	// MaxEvidence caps attachment URLs per dispute.
	MaxEvidence int
}

func NewDefaultDisputeUsecase(
	transactionRepo domain.TransactionRepository,
	disputeRepo domain.DisputeRepository,
	observer domain.TransitionObserver,
	escrowMetrics *metrics.EscrowMetrics,
	maxEvidence int,
) *DefaultDisputeUsecase {
	return &DefaultDisputeUsecase{
		TransactionRepo: transactionRepo,
		DisputeRepo:     disputeRepo,
		Observer:        observer,
		Metrics:         escrowMetrics,
		MaxEvidence:     maxEvidence,
	}
}

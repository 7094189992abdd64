package usecase

import (
	"errors"
	"time"

	"github.com/sambashop/escrow-service/internal/domain"
)

// GetByReference looks a transaction up by its case-normalized reference.
// A delivered transaction whose verification window has elapsed with no
// dispute is completed lazily before being returned, so readers never see
// a stale in-window status.
func (uc *DefaultEscrowUsecase) GetByReference(reference string) (*domain.EscrowTransaction, error) {
	tx, err := uc.TransactionRepo.GetByReference(reference)
	if err != nil {
		return nil, err
	}

	if tx.VerificationElapsed(time.Now()) && !tx.Dispute.Active() {
		if err := uc.complete(tx, "lazy_read", "verification window elapsed"); err != nil && !errors.Is(err, domain.ErrInvalidTransition) {
			return nil, err
		}
		return uc.TransactionRepo.GetByReference(reference)
	}

	return tx, nil
}

func (uc *DefaultEscrowUsecase) ListTransactions() ([]*domain.EscrowTransaction, error) {
	return uc.TransactionRepo.ListTransactions()
}

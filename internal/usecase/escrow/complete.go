package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sambashop/escrow-service/internal/domain"
)

// ConfirmReceipt is the buyer's explicit release: the goods arrived and are
// acceptable, so funds go to the seller before the window elapses.
func (uc *DefaultEscrowUsecase) ConfirmReceipt(reference string) error {
	tx, err := uc.TransactionRepo.GetByReference(reference)
	if err != nil {
		return err
	}

	if tx.Status != domain.StatusDelivered {
		uc.Metrics.RecordTransitionError("complete", "invalid_transition")
		return domain.ErrInvalidTransition
	}

	return uc.complete(tx, "receipt", "buyer confirmed receipt")
}

// CompleteExpiredVerifications releases every transaction whose
// verification window elapsed with no dispute. It shares the CAS path with
// ConfirmReceipt, so a sweep racing a buyer confirmation cannot
// double-complete: the loser of the race gets ErrInvalidTransition and
// moves on.
func (uc *DefaultEscrowUsecase) CompleteExpiredVerifications(ctx context.Context) error {
	start := time.Now()
	defer func() {
		uc.Metrics.RecordSweepDuration(time.Since(start).Seconds())
	}()

	transactions, err := uc.TransactionRepo.FindVerificationExpired()
	if err != nil {
		return err
	}

	for _, tx := range transactions {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := uc.complete(tx, "sweep", "verification window elapsed"); err != nil {
			if errors.Is(err, domain.ErrInvalidTransition) {
				// Lost the race against an explicit confirmation or a
				// freshly opened dispute.
				continue
			}
			return err
		}
		slog.Info("verification window elapsed, funds released", "reference", tx.Reference)
	}

	return nil
}

func (uc *DefaultEscrowUsecase) complete(tx *domain.EscrowTransaction, trigger, note string) error {
	op := &TransitionOperation{
		Reference:  tx.Reference,
		Operation:  "complete",
		OldStatus:  domain.StatusDelivered,
		NewStatus:  domain.StatusCompleted,
		Note:       note,
		Amount:     tx.Amount,
		PaidAmount: tx.PaidAmount,
		Currency:   tx.Currency,
		CreatedAt:  time.Now(),
	}

	if err := uc.ProcessTransition(op); err != nil {
		return err
	}

	uc.Metrics.RecordTransactionCompleted(tx.Currency, trigger)
	return nil
}

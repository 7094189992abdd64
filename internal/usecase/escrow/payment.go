package usecase

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sambashop/escrow-service/internal/domain"
	escrowdto "github.com/sambashop/escrow-service/internal/usecase/dto/escrow"
)

// RecordPayment credits a confirmed capture. Captures are accepted while the
// transaction is still collecting funds (PENDING_PAYMENT or a partial
// FUNDS_SECURED); a full capture moves it to PAYMENT_RECEIVED. The provider
// retries webhooks, so a replayed event id is a no-op, never a double credit.
func (uc *DefaultEscrowUsecase) RecordPayment(input *escrowdto.RecordPaymentInput) (*domain.EscrowTransaction, error) {
	if input.Amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	tx, err := uc.TransactionRepo.GetByReference(input.Reference)
	if err != nil {
		return nil, err
	}

	if tx.Status != domain.StatusPendingPayment && tx.Status != domain.StatusFundsSecured {
		uc.Metrics.RecordTransitionError("record_payment", "invalid_transition")
		return nil, domain.ErrInvalidTransition
	}

	note := fmt.Sprintf("captured %.2f %s (event %s)", input.Amount, tx.Currency, input.EventID)
	newStatus, err := uc.TransactionRepo.ProcessPayment(input.Reference, tx.Status, note, input.EventID, input.Amount)
	if err != nil {
		if errors.Is(err, domain.ErrPaymentEventSeen) {
			slog.Info("payment event replay ignored",
				"reference", tx.Reference,
				"event_id", input.EventID)
			uc.Metrics.RecordPaymentReplay(tx.Currency)
			return tx, nil
		}
		uc.Metrics.RecordTransitionError("record_payment", transitionErrorType(err))
		return nil, err
	}

	uc.Metrics.RecordPayment(tx.Currency, input.Amount)
	uc.Metrics.RecordTransition(string(tx.Status), string(newStatus))
	uc.notifyTransition(domain.TransitionEvent{
		Reference:  tx.Reference,
		OldStatus:  tx.Status,
		NewStatus:  newStatus,
		Note:       note,
		Amount:     tx.Amount,
		PaidAmount: tx.PaidAmount + input.Amount,
		Currency:   tx.Currency,
		OccurredAt: time.Now(),
	})

	return uc.TransactionRepo.GetByReference(input.Reference)
}

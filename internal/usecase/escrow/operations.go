package usecase

import (
	"errors"
	"log/slog"
	"time"

	"github.com/sambashop/escrow-service/internal/domain"
)

// TransitionOperation describes one state-machine transition. All mutation
// paths build one of these and run it through ProcessTransition, so the CAS
// discipline and the observability side effects stay in a single place.
type TransitionOperation struct {
	Reference string             `json:"reference"`
	Operation string             `json:"operation"` // "advance_fulfillment", "confirm_delivery", "complete"
	OldStatus domain.TransactionStatus `json:"old_status"`
	NewStatus domain.TransactionStatus `json:"new_status"`
	Note      string             `json:"note"`
	Updates   *domain.TransitionUpdates `json:"-"`

	Amount     float64   `json:"amount"`
	PaidAmount float64   `json:"paid_amount"`
	Currency   string    `json:"currency"`
	CreatedAt  time.Time `json:"created_at"`
}

// ProcessTransition runs the critical section (CAS status swap + timeline
// append, committed atomically by the repository), then records metrics and
// notifies the observer. Observer failures never roll back the transition.
func (uc *DefaultEscrowUsecase) ProcessTransition(op *TransitionOperation) error {
	if err := uc.TransactionRepo.ProcessTransition(op.Reference, op.OldStatus, op.NewStatus, op.Note, op.Updates); err != nil {
		uc.Metrics.RecordTransitionError(op.Operation, transitionErrorType(err))
		return err
	}

	uc.Metrics.RecordTransition(string(op.OldStatus), string(op.NewStatus))
	uc.notifyTransition(domain.TransitionEvent{
		Reference:  op.Reference,
		OldStatus:  op.OldStatus,
		NewStatus:  op.NewStatus,
		Note:       op.Note,
		Amount:     op.Amount,
		PaidAmount: op.PaidAmount,
		Currency:   op.Currency,
		OccurredAt: time.Now(),
	})

	return nil
}

func (uc *DefaultEscrowUsecase) notifyTransition(event domain.TransitionEvent) {
	if uc.Observer == nil {
		return
	}
	if err := uc.Observer.ObserveTransition(event); err != nil {
		slog.Error("failed to publish transition event",
			"reference", event.Reference,
			"new_status", event.NewStatus,
			"error", err.Error())
	}
}

func transitionErrorType(err error) string {
	switch {
	case errors.Is(err, domain.ErrTransactionNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrInvalidTransition):
		return "invalid_transition"
	case errors.Is(err, domain.ErrOverPayment):
		return "overpayment"
	default:
		return "persistence"
	}
}

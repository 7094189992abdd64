package usecase

import (
	"errors"
	"fmt"
	"time"

	"github.com/sambashop/escrow-service/internal/domain"
)

// ResolveDispute is the administrator's ruling. RELEASE closes in the
// seller's favor and completes the transaction; REFUND closes in the
// buyer's favor and moves it to the refund terminal state. Either way the
// dispute gets its resolvedAt exactly once and the transaction becomes
// immutable.
func (disputeUc *DefaultDisputeUsecase) ResolveDispute(reference string, outcome domain.DisputeOutcome) error {
	var target domain.TransactionStatus
	switch outcome {
	case domain.OutcomeRelease:
		target = domain.StatusCompleted
	case domain.OutcomeRefund:
		target = domain.StatusRefunded
	default:
		return fmt.Errorf("unknown dispute outcome: %s", outcome)
	}

	tx, err := disputeUc.TransactionRepo.GetByReference(reference)
	if err != nil {
		return err
	}

	if tx.Status != domain.StatusDisputed || !tx.Dispute.Active() {
		disputeUc.Metrics.RecordTransitionError("resolve_dispute", "invalid_transition")
		return domain.ErrInvalidTransition
	}

	note := fmt.Sprintf("dispute resolved: %s", outcome)
	if err := disputeUc.TransactionRepo.ProcessDisputeResolve(reference, target, outcome, time.Now(), note); err != nil {
		disputeUc.Metrics.RecordTransitionError("resolve_dispute", resolveErrorType(err))
		return err
	}

	disputeUc.Metrics.RecordDisputeResolved(string(outcome))
	disputeUc.Metrics.RecordTransition(string(domain.StatusDisputed), string(target))
	if target == domain.StatusCompleted {
		disputeUc.Metrics.RecordTransactionCompleted(tx.Currency, "dispute")
	} else {
		disputeUc.Metrics.RecordTransactionRefunded(tx.Currency)
	}
	disputeUc.notifyTransition(domain.TransitionEvent{
		Reference:  tx.Reference,
		OldStatus:  domain.StatusDisputed,
		NewStatus:  target,
		Note:       note,
		Amount:     tx.Amount,
		PaidAmount: tx.PaidAmount,
		Currency:   tx.Currency,
		OccurredAt: time.Now(),
	})

	return nil
}

func resolveErrorType(err error) string {
	switch {
	case errors.Is(err, domain.ErrTransactionNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrInvalidTransition):
		return "invalid_transition"
	default:
		return "persistence"
	}
}

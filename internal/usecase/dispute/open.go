package usecase

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sambashop/escrow-service/internal/domain"
	disputedto "github.com/sambashop/escrow-service/internal/usecase/dto/dispute"
)

// OpenDispute is the only mutation the paying party can trigger directly.
// It pauses automatic fund release until an administrator resolves the
// claim. A dispute needs captured money to argue about, so it is rejected
// while the transaction is still PENDING_PAYMENT, and rejected again once
// the transaction is terminal or already disputed.
func (disputeUc *DefaultDisputeUsecase) OpenDispute(input *disputedto.OpenDisputeInput) (*domain.Dispute, error) {
	if strings.TrimSpace(input.Reason) == "" || strings.TrimSpace(input.Description) == "" {
		return nil, domain.ErrMissingFields
	}
	if len(input.Evidence) > disputeUc.MaxEvidence {
		return nil, domain.ErrTooManyAttachments
	}

	tx, err := disputeUc.TransactionRepo.GetByReference(input.Reference)
	if err != nil {
		return nil, err
	}

	if tx.IsTerminal() || tx.Status == domain.StatusDisputed || tx.Status == domain.StatusPendingPayment {
		disputeUc.Metrics.RecordTransitionError("open_dispute", "invalid_transition")
		return nil, domain.ErrInvalidTransition
	}

	dispute := &domain.Dispute{
		ID:          uuid.NewString(),
		Reason:      domain.DisputeReason(input.Reason),
		Description: input.Description,
		Evidence:    input.Evidence,
		OpenedAt:    time.Now(),
	}

	note := fmt.Sprintf("dispute opened: %s", input.Reason)
	if err := disputeUc.TransactionRepo.ProcessDisputeOpen(input.Reference, tx.Status, dispute, note); err != nil {
		disputeUc.Metrics.RecordTransitionError("open_dispute", resolveErrorType(err))
		return nil, err
	}

	disputeUc.Metrics.RecordDisputeOpened(input.Reason)
	disputeUc.Metrics.RecordTransition(string(tx.Status), string(domain.StatusDisputed))
	disputeUc.notifyTransition(domain.TransitionEvent{
		Reference:  tx.Reference,
		OldStatus:  tx.Status,
		NewStatus:  domain.StatusDisputed,
		Note:       note,
		Amount:     tx.Amount,
		PaidAmount: tx.PaidAmount,
		Currency:   tx.Currency,
		OccurredAt: time.Now(),
	})

	return dispute, nil
}

func (disputeUc *DefaultDisputeUsecase) notifyTransition(event domain.TransitionEvent) {
	if disputeUc.Observer == nil {
		return
	}
	if err := disputeUc.Observer.ObserveTransition(event); err != nil {
		slog.Error("failed to publish transition event",
			"reference", event.Reference,
			"new_status", event.NewStatus,
			"error", err.Error())
	}
}

package usecase

import (
	"time"

	"github.com/sambashop/escrow-service/internal/domain"
	escrowdto "github.com/sambashop/escrow-service/internal/usecase/dto/escrow"
)

// ConfirmDelivery marks the package as delivered and opens the verification
// window. It never completes the transaction by itself: release happens
// through buyer receipt confirmation, the expiry sweep, or a lazy read.
func (uc *DefaultEscrowUsecase) ConfirmDelivery(input *escrowdto.ConfirmDeliveryInput) error {
	tx, err := uc.TransactionRepo.GetByReference(input.Reference)
	if err != nil {
		return err
	}

	if tx.Status != domain.StatusInTransit {
		uc.Metrics.RecordTransitionError("confirm_delivery", "invalid_transition")
		return domain.ErrInvalidTransition
	}

	deliveredAt := input.DeliveredAt
	if deliveredAt.IsZero() {
		deliveredAt = time.Now()
	}
	verificationEndsAt := deliveredAt.Add(uc.VerificationWindow)

	op := &TransitionOperation{
		Reference: tx.Reference,
		Operation: "confirm_delivery",
		OldStatus: domain.StatusInTransit,
		NewStatus: domain.StatusDelivered,
		Note:      "delivery confirmed, verification window open",
		Updates: &domain.TransitionUpdates{
			DeliveredAt:        &deliveredAt,
			VerificationEndsAt: &verificationEndsAt,
		},
		Amount:     tx.Amount,
		PaidAmount: tx.PaidAmount,
		Currency:   tx.Currency,
		CreatedAt:  time.Now(),
	}

	return uc.ProcessTransition(op)
}

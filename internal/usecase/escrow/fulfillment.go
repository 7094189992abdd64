package usecase

import (
	"fmt"
	"time"

	"github.com/sambashop/escrow-service/internal/domain"
	escrowdto "github.com/sambashop/escrow-service/internal/usecase/dto/escrow"
)

// AdvanceFulfillment moves the transaction one step along the fixed
// ORDER_PLACED -> ORDER_CONFIRMED -> IN_TRANSIT pipeline. Backward and
// skipping requests are rejected. Delivery details may be attached once,
// at or after ORDER_PLACED.
func (uc *DefaultEscrowUsecase) AdvanceFulfillment(input *escrowdto.AdvanceFulfillmentInput) error {
	tx, err := uc.TransactionRepo.GetByReference(input.Reference)
	if err != nil {
		return err
	}

	if !domain.CanAdvanceFulfillment(tx.Status, input.TargetStatus) {
		uc.Metrics.RecordTransitionError("advance_fulfillment", "invalid_transition")
		return domain.ErrInvalidTransition
	}

	var updates *domain.TransitionUpdates
	if input.Delivery != nil {
		if tx.Delivery != nil {
			uc.Metrics.RecordTransitionError("advance_fulfillment", "invalid_transition")
			return domain.ErrInvalidTransition
		}
		updates = &domain.TransitionUpdates{
			Delivery: &domain.Delivery{
				Method:         input.Delivery.Method,
				TrackingNumber: input.Delivery.TrackingNumber,
				Carrier:        input.Delivery.Carrier,
				EstimatedDate:  input.Delivery.EstimatedDate,
			},
		}
	}

	op := &TransitionOperation{
		Reference:  tx.Reference,
		Operation:  "advance_fulfillment",
		OldStatus:  tx.Status,
		NewStatus:  input.TargetStatus,
		Note:       fmt.Sprintf("fulfillment advanced to %s", input.TargetStatus),
		Updates:    updates,
		Amount:     tx.Amount,
		PaidAmount: tx.PaidAmount,
		Currency:   tx.Currency,
		CreatedAt:  time.Now(),
	}

	return uc.ProcessTransition(op)
}

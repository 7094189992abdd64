package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
	"github.com/sambashop/escrow-service/internal/domain"
	escrowdto "github.com/sambashop/escrow-service/internal/usecase/dto/escrow"
)

// referenceAlphabet avoids ambiguous glyphs: references are read over the
// phone and typed by buyers.
const referenceAlphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"

func (uc *DefaultEscrowUsecase) CreateTransaction(input *escrowdto.CreateTransactionInput) (*domain.EscrowTransaction, error) {
	if input.Amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	reference, err := newReference()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	tx := &domain.EscrowTransaction{
		ID:         uuid.NewString(),
		Reference:  reference,
		Status:     domain.StatusPendingPayment,
		Amount:     input.Amount,
		PaidAmount: 0,
		Currency:   input.Currency,
		Client: domain.Client{
			Name:  input.ClientName,
			Phone: input.ClientPhone,
		},
		Guarantees: input.Guarantees,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := uc.TransactionRepo.CreateTransaction(tx); err != nil {
		return nil, err
	}

	uc.Metrics.RecordTransactionCreated(tx.Currency, tx.Amount)
	uc.notifyTransition(domain.TransitionEvent{
		Reference:  tx.Reference,
		NewStatus:  domain.StatusPendingPayment,
		Note:       "transaction created",
		Amount:     tx.Amount,
		Currency:   tx.Currency,
		OccurredAt: now,
	})

	return uc.TransactionRepo.GetByReference(reference)
}

func newReference() (string, error) {
	generate, err := nanoid.CustomASCII(referenceAlphabet, 12)
	if err != nil {
		return "", err
	}
	return "ESC-" + generate(), nil
}

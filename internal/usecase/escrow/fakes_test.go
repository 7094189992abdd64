package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/sambashop/escrow-service/internal/domain"
)

// fakeTransactionRepo mirrors the postgres repository's CAS semantics over
// an in-memory map, keyed by normalized reference.
type fakeTransactionRepo struct {
	transactions map[string]*domain.EscrowTransaction
	seenEvents   map[string]bool

	// expiredOverride, when set, is returned by FindVerificationExpired
	// verbatim to simulate a stale sweep snapshot.
	expiredOverride []*domain.EscrowTransaction
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{
		transactions: make(map[string]*domain.EscrowTransaction),
		seenEvents:   make(map[string]bool),
	}
}

func (f *fakeTransactionRepo) CreateTransaction(tx *domain.EscrowTransaction) error {
	stored := *tx
	stored.Timeline = append([]domain.TimelineEntry{}, tx.Timeline...)
	f.transactions[domain.NormalizeReference(tx.Reference)] = &stored
	f.appendTimeline(&stored, tx.Status, "transaction created")
	return nil
}

func (f *fakeTransactionRepo) GetByReference(reference string) (*domain.EscrowTransaction, error) {
	stored, ok := f.transactions[domain.NormalizeReference(reference)]
	if !ok {
		return nil, domain.ErrTransactionNotFound
	}
	copied := *stored
	copied.Timeline = append([]domain.TimelineEntry{}, stored.Timeline...)
	return &copied, nil
}

func (f *fakeTransactionRepo) ListTransactions() ([]*domain.EscrowTransaction, error) {
	result := make([]*domain.EscrowTransaction, 0, len(f.transactions))
	for _, stored := range f.transactions {
		copied := *stored
		result = append(result, &copied)
	}
	return result, nil
}

func (f *fakeTransactionRepo) ProcessTransition(reference string, from, to domain.TransactionStatus, note string, updates *domain.TransitionUpdates) error {
	stored, ok := f.transactions[domain.NormalizeReference(reference)]
	if !ok {
		return domain.ErrTransactionNotFound
	}
	if stored.Status != from {
		return domain.ErrInvalidTransition
	}

	if updates != nil {
		if updates.Delivery != nil {
			stored.Delivery = updates.Delivery
		}
		if updates.DeliveredAt != nil {
			stored.DeliveredAt = updates.DeliveredAt
		}
		if updates.VerificationEndsAt != nil {
			stored.VerificationEndsAt = updates.VerificationEndsAt
		}
	}
	stored.Status = to
	f.appendTimeline(stored, to, note)
	return nil
}

func (f *fakeTransactionRepo) ProcessPayment(reference string, from domain.TransactionStatus, note, eventID string, amount float64) (domain.TransactionStatus, error) {
	if f.seenEvents[eventID] {
		return "", domain.ErrPaymentEventSeen
	}

	stored, ok := f.transactions[domain.NormalizeReference(reference)]
	if !ok {
		return "", domain.ErrTransactionNotFound
	}
	if stored.Status != from {
		return "", domain.ErrInvalidTransition
	}

	newPaid := stored.PaidAmount + amount
	if newPaid > stored.Amount {
		return "", domain.ErrOverPayment
	}

	newStatus := domain.StatusFundsSecured
	if newPaid == stored.Amount {
		newStatus = domain.StatusPaymentReceived
	}

	stored.PaidAmount = newPaid
	stored.Status = newStatus
	f.seenEvents[eventID] = true
	f.appendTimeline(stored, newStatus, note)
	return newStatus, nil
}

func (f *fakeTransactionRepo) ProcessDisputeOpen(reference string, from domain.TransactionStatus, dispute *domain.Dispute, note string) error {
	stored, ok := f.transactions[domain.NormalizeReference(reference)]
	if !ok {
		return domain.ErrTransactionNotFound
	}
	if stored.Status != from {
		return domain.ErrInvalidTransition
	}

	attached := *dispute
	attached.TransactionID = stored.ID
	stored.Dispute = &attached
	stored.Status = domain.StatusDisputed
	f.appendTimeline(stored, domain.StatusDisputed, note)
	return nil
}

func (f *fakeTransactionRepo) ProcessDisputeResolve(reference string, to domain.TransactionStatus, outcome domain.DisputeOutcome, resolvedAt time.Time, note string) error {
	stored, ok := f.transactions[domain.NormalizeReference(reference)]
	if !ok {
		return domain.ErrTransactionNotFound
	}
	if stored.Status != domain.StatusDisputed || !stored.Dispute.Active() {
		return domain.ErrInvalidTransition
	}

	stored.Dispute.Outcome = outcome
	stored.Dispute.ResolvedAt = &resolvedAt
	stored.Status = to
	f.appendTimeline(stored, to, note)
	return nil
}

func (f *fakeTransactionRepo) FindVerificationExpired() ([]*domain.EscrowTransaction, error) {
	if f.expiredOverride != nil {
		return f.expiredOverride, nil
	}

	now := time.Now()
	var result []*domain.EscrowTransaction
	for _, stored := range f.transactions {
		if stored.Status == domain.StatusDelivered && stored.VerificationEndsAt != nil && stored.VerificationEndsAt.Before(now) {
			copied := *stored
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (f *fakeTransactionRepo) GetStatistics(dateFrom, dateTo time.Time) (*domain.EscrowStatistics, error) {
	stats := &domain.EscrowStatistics{}
	for _, stored := range f.transactions {
		stats.TotalTransactions++
		stats.TotalAmount += stored.Amount
		stats.TotalPaidAmount += stored.PaidAmount
		switch stored.Status {
		case domain.StatusCompleted:
			stats.CompletedTransactions++
		case domain.StatusDisputed:
			stats.DisputedTransactions++
		case domain.StatusRefunded:
			stats.RefundedTransactions++
		}
	}
	return stats, nil
}

func (f *fakeTransactionRepo) appendTimeline(tx *domain.EscrowTransaction, status domain.TransactionStatus, note string) {
	tx.Timeline = append(tx.Timeline, domain.TimelineEntry{
		ID:        uuid.NewString(),
		Status:    status,
		Note:      note,
		CreatedAt: time.Now(),
	})
}

type fakeObserver struct {
	events []domain.TransitionEvent
	err    error
}

func (f *fakeObserver) ObserveTransition(event domain.TransitionEvent) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, event)
	return nil
}

package usecase

import (
	"time"

	"github.com/sambashop/escrow-service/internal/domain"
)

type fakeTransactionRepo struct {
	transactions map[string]*domain.EscrowTransaction
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{transactions: make(map[string]*domain.EscrowTransaction)}
}

func (f *fakeTransactionRepo) GetByReference(reference string) (*domain.EscrowTransaction, error) {
	tx, ok := f.transactions[domain.NormalizeReference(reference)]
	if !ok {
		return nil, domain.ErrTransactionNotFound
	}
	return tx, nil
}

func (f *fakeTransactionRepo) ProcessDisputeOpen(reference string, from domain.TransactionStatus, dispute *domain.Dispute, note string) error {
	tx, err := f.GetByReference(reference)
	if err != nil {
		return err
	}
	if tx.Status != from {
		return domain.ErrInvalidTransition
	}

	attached := *dispute
	attached.TransactionID = tx.ID
	tx.Dispute = &attached
	tx.Status = domain.StatusDisputed
	tx.Timeline = append(tx.Timeline, domain.TimelineEntry{Status: domain.StatusDisputed, Note: note, CreatedAt: time.Now()})
	return nil
}

func (f *fakeTransactionRepo) ProcessDisputeResolve(reference string, to domain.TransactionStatus, outcome domain.DisputeOutcome, resolvedAt time.Time, note string) error {
	tx, err := f.GetByReference(reference)
	if err != nil {
		return err
	}
	if tx.Status != domain.StatusDisputed || !tx.Dispute.Active() {
		return domain.ErrInvalidTransition
	}

	tx.Dispute.Outcome = outcome
	tx.Dispute.ResolvedAt = &resolvedAt
	tx.Status = to
	tx.Timeline = append(tx.Timeline, domain.TimelineEntry{Status: to, Note: note, CreatedAt: time.Now()})
	return nil
}

func (f *fakeTransactionRepo) CreateTransaction(*domain.EscrowTransaction) error {
	panic("not implemented")
}

func (f *fakeTransactionRepo) ListTransactions() ([]*domain.EscrowTransaction, error) {
	panic("not implemented")
}

func (f *fakeTransactionRepo) ProcessTransition(string, domain.TransactionStatus, domain.TransactionStatus, string, *domain.TransitionUpdates) error {
	panic("not implemented")
}

func (f *fakeTransactionRepo) ProcessPayment(string, domain.TransactionStatus, string, string, float64) (domain.TransactionStatus, error) {
	panic("not implemented")
}

func (f *fakeTransactionRepo) FindVerificationExpired() ([]*domain.EscrowTransaction, error) {
	panic("not implemented")
}

func (f *fakeTransactionRepo) GetStatistics(time.Time, time.Time) (*domain.EscrowStatistics, error) {
	panic("not implemented")
}

type fakeDisputeRepo struct {
	transactions *fakeTransactionRepo
}

func (f *fakeDisputeRepo) GetDisputeByReference(reference string) (*domain.Dispute, error) {
	tx, err := f.transactions.GetByReference(reference)
	if err != nil {
		return nil, err
	}
	if tx.Dispute == nil {
		return nil, domain.ErrDisputeNotFound
	}
	return tx.Dispute, nil
}

func (f *fakeDisputeRepo) ListDisputes(filter domain.DisputeFilter) ([]*domain.Dispute, int64, error) {
	var disputes []*domain.Dispute
	for _, tx := range f.transactions.transactions {
		if tx.Dispute == nil {
			continue
		}
		if filter.Active != nil && tx.Dispute.Active() != *filter.Active {
			continue
		}
		disputes = append(disputes, tx.Dispute)
	}
	return disputes, int64(len(disputes)), nil
}

type fakeObserver struct {
	events []domain.TransitionEvent
}

func (f *fakeObserver) ObserveTransition(event domain.TransitionEvent) error {
	f.events = append(f.events, event)
	return nil
}

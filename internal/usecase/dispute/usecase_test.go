package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/sambashop/escrow-service/internal/domain"
	"github.com/sambashop/escrow-service/internal/infrastructure/metrics"
	disputedto "github.com/sambashop/escrow-service/internal/usecase/dto/dispute"
)

var testMetrics = metrics.NewEscrowMetrics()

func newTestUsecase(repo *fakeTransactionRepo, observer *fakeObserver) *DefaultDisputeUsecase {
	return NewDefaultDisputeUsecase(repo, &fakeDisputeRepo{transactions: repo}, observer, testMetrics, 5)
}

func seedTransaction(repo *fakeTransactionRepo, status domain.TransactionStatus) *domain.EscrowTransaction {
	tx := &domain.EscrowTransaction{
		ID:         "tx-1",
		Reference:  "ESC-TESTREF1234",
		Status:     status,
		Amount:     1000,
		PaidAmount: 1000,
		Currency:   "KES",
		CreatedAt:  time.Now(),
	}
	repo.transactions[tx.Reference] = tx
	return tx
}

func TestOpenDispute(t *testing.T) {
	repo := newFakeTransactionRepo()
	observer := &fakeObserver{}
	uc := newTestUsecase(repo, observer)
	tx := seedTransaction(repo, domain.StatusDelivered)

	dispute, err := uc.OpenDispute(&disputedto.OpenDisputeInput{
		Reference:   tx.Reference,
		Reason:      string(domain.ReasonDamaged),
		Description: "arrived with a cracked screen",
		Evidence:    []string{"https://cdn.example/photo1.jpg"},
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if !dispute.Active() {
		t.Errorf("expected freshly opened dispute to be active")
	}
	if tx.Status != domain.StatusDisputed {
		t.Errorf("expected DISPUTED, got %s", tx.Status)
	}
	if len(observer.events) != 1 || observer.events[0].NewStatus != domain.StatusDisputed {
		t.Errorf("expected dispute event, got %+v", observer.events)
	}
}

func TestOpenDispute_MissingFields(t *testing.T) {
	repo := newFakeTransactionRepo()
	uc := newTestUsecase(repo, &fakeObserver{})
	seedTransaction(repo, domain.StatusDelivered)

	cases := []disputedto.OpenDisputeInput{
		{Reference: "ESC-TESTREF1234", Reason: "", Description: "details"},
		{Reference: "ESC-TESTREF1234", Reason: "DAMAGED", Description: "   "},
	}
	for _, input := range cases {
		if _, err := uc.OpenDispute(&input); !errors.Is(err, domain.ErrMissingFields) {
			t.Errorf("expected ErrMissingFields, got %v", err)
		}
	}
}

func TestOpenDispute_TooManyAttachments(t *testing.T) {
	repo := newFakeTransactionRepo()
	uc := newTestUsecase(repo, &fakeObserver{})
	tx := seedTransaction(repo, domain.StatusDelivered)

	evidence := make([]string, 6)
	for i := range evidence {
		evidence[i] = "https://cdn.example/photo.jpg"
	}

	_, err := uc.OpenDispute(&disputedto.OpenDisputeInput{
		Reference:   tx.Reference,
		Reason:      "DAMAGED",
		Description: "details",
		Evidence:    evidence,
	})
	if !errors.Is(err, domain.ErrTooManyAttachments) {
		t.Fatalf("expected ErrTooManyAttachments, got %v", err)
	}
}

func TestOpenDispute_RejectedStates(t *testing.T) {
	for _, status := range []domain.TransactionStatus{
		domain.StatusPendingPayment,
		domain.StatusDisputed,
		domain.StatusCompleted,
		domain.StatusRefunded,
	} {
		repo := newFakeTransactionRepo()
		uc := newTestUsecase(repo, &fakeObserver{})
		tx := seedTransaction(repo, status)

		_, err := uc.OpenDispute(&disputedto.OpenDisputeInput{
			Reference:   tx.Reference,
			Reason:      "OTHER",
			Description: "details",
		})
		if !errors.Is(err, domain.ErrInvalidTransition) {
			t.Errorf("status %s: expected ErrInvalidTransition, got %v", status, err)
		}
	}
}

func TestResolveDispute_Release(t *testing.T) {
	repo := newFakeTransactionRepo()
	uc := newTestUsecase(repo, &fakeObserver{})
	tx := seedTransaction(repo, domain.StatusDelivered)
	mustOpen(t, uc, tx.Reference)

	if err := uc.ResolveDispute(tx.Reference, domain.OutcomeRelease); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if tx.Status != domain.StatusCompleted {
		t.Errorf("expected COMPLETED, got %s", tx.Status)
	}
	if tx.Dispute.Active() {
		t.Errorf("expected dispute to be resolved")
	}
	if tx.Dispute.Outcome != domain.OutcomeRelease {
		t.Errorf("expected RELEASE outcome, got %s", tx.Dispute.Outcome)
	}
}

func TestResolveDispute_Refund(t *testing.T) {
	repo := newFakeTransactionRepo()
	uc := newTestUsecase(repo, &fakeObserver{})
	tx := seedTransaction(repo, domain.StatusInTransit)
	mustOpen(t, uc, tx.Reference)

	if err := uc.ResolveDispute(tx.Reference, domain.OutcomeRefund); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if tx.Status != domain.StatusRefunded {
		t.Errorf("expected REFUNDED, got %s", tx.Status)
	}
}

func TestResolveDispute_Twice(t *testing.T) {
	repo := newFakeTransactionRepo()
	uc := newTestUsecase(repo, &fakeObserver{})
	tx := seedTransaction(repo, domain.StatusDelivered)
	mustOpen(t, uc, tx.Reference)

	if err := uc.ResolveDispute(tx.Reference, domain.OutcomeRelease); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if err := uc.ResolveDispute(tx.Reference, domain.OutcomeRefund); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected second resolution to be rejected, got %v", err)
	}
	if tx.Status != domain.StatusCompleted {
		t.Errorf("expected first ruling to stand, got %s", tx.Status)
	}
}

func TestResolveDispute_UnknownOutcome(t *testing.T) {
	repo := newFakeTransactionRepo()
	uc := newTestUsecase(repo, &fakeObserver{})
	tx := seedTransaction(repo, domain.StatusDelivered)
	mustOpen(t, uc, tx.Reference)

	if err := uc.ResolveDispute(tx.Reference, domain.DisputeOutcome("SPLIT")); err == nil {
		t.Fatal("expected error for unknown outcome")
	}
}

func TestResolveDispute_WithoutDispute(t *testing.T) {
	repo := newFakeTransactionRepo()
	uc := newTestUsecase(repo, &fakeObserver{})
	tx := seedTransaction(repo, domain.StatusDelivered)

	if err := uc.ResolveDispute(tx.Reference, domain.OutcomeRelease); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func mustOpen(t *testing.T, uc *DefaultDisputeUsecase, reference string) {
	t.Helper()
	if _, err := uc.OpenDispute(&disputedto.OpenDisputeInput{
		Reference:   reference,
		Reason:      "DAMAGED",
		Description: "details",
	}); err != nil {
		t.Fatalf("open dispute: %v", err)
	}
}

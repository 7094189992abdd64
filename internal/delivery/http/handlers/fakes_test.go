package handlers

import (
	"context"
	"time"

	"github.com/sambashop/escrow-service/internal/domain"
	disputedto "github.com/sambashop/escrow-service/internal/usecase/dto/dispute"
	escrowdto "github.com/sambashop/escrow-service/internal/usecase/dto/escrow"
)

// fakeEscrowUsecase returns canned values; handler tests only assert the
// HTTP mapping, not the engine semantics.
type fakeEscrowUsecase struct {
	tx  *domain.EscrowTransaction
	err error

	createInput  *escrowdto.CreateTransactionInput
	paymentInput *escrowdto.RecordPaymentInput
	advanceInput *escrowdto.AdvanceFulfillmentInput
	deliverInput *escrowdto.ConfirmDeliveryInput
	receiptRef   string
}

func (f *fakeEscrowUsecase) CreateTransaction(input *escrowdto.CreateTransactionInput) (*domain.EscrowTransaction, error) {
	f.createInput = input
	return f.tx, f.err
}

func (f *fakeEscrowUsecase) RecordPayment(input *escrowdto.RecordPaymentInput) (*domain.EscrowTransaction, error) {
	f.paymentInput = input
	return f.tx, f.err
}

func (f *fakeEscrowUsecase) AdvanceFulfillment(input *escrowdto.AdvanceFulfillmentInput) error {
	f.advanceInput = input
	return f.err
}

func (f *fakeEscrowUsecase) ConfirmDelivery(input *escrowdto.ConfirmDeliveryInput) error {
	f.deliverInput = input
	return f.err
}

func (f *fakeEscrowUsecase) ConfirmReceipt(reference string) error {
	f.receiptRef = reference
	return f.err
}

func (f *fakeEscrowUsecase) CompleteExpiredVerifications(ctx context.Context) error {
	return f.err
}

func (f *fakeEscrowUsecase) GetByReference(reference string) (*domain.EscrowTransaction, error) {
	return f.tx, f.err
}

func (f *fakeEscrowUsecase) ListTransactions() ([]*domain.EscrowTransaction, error) {
	if f.tx == nil {
		return nil, f.err
	}
	return []*domain.EscrowTransaction{f.tx}, f.err
}

type fakeDisputeUsecase struct {
	dispute *domain.Dispute
	err     error

	openInput      *disputedto.OpenDisputeInput
	resolvedRef    string
	resolvedOutcome domain.DisputeOutcome
}

func (f *fakeDisputeUsecase) OpenDispute(input *disputedto.OpenDisputeInput) (*domain.Dispute, error) {
	f.openInput = input
	return f.dispute, f.err
}

func (f *fakeDisputeUsecase) ResolveDispute(reference string, outcome domain.DisputeOutcome) error {
	f.resolvedRef = reference
	f.resolvedOutcome = outcome
	return f.err
}

func (f *fakeDisputeUsecase) GetDisputeByReference(reference string) (*domain.Dispute, error) {
	return f.dispute, f.err
}

func (f *fakeDisputeUsecase) ListDisputes(input *disputedto.ListDisputesInput) ([]*domain.Dispute, int64, error) {
	if f.dispute == nil {
		return nil, 0, f.err
	}
	return []*domain.Dispute{f.dispute}, 1, f.err
}

type fakeReportUsecase struct {
	summary domain.EscrowSummary
	stats   *domain.EscrowStatistics
	err     error
}

func (f *fakeReportUsecase) GetSummary() (domain.EscrowSummary, error) {
	return f.summary, f.err
}

func (f *fakeReportUsecase) GetStatistics(dateFrom, dateTo time.Time) (*domain.EscrowStatistics, error) {
	return f.stats, f.err
}

func sampleTransaction() *domain.EscrowTransaction {
	return &domain.EscrowTransaction{
		ID:         "6f1e9d1c-0000-0000-0000-000000000001",
		Reference:  "ESC-ABCDEF234567",
		Status:     domain.StatusPendingPayment,
		Amount:     1500,
		Currency:   "KES",
		Client:     domain.Client{Name: "Alice", Phone: "771234567"},
		Guarantees: []string{"money-back"},
		Timeline: []domain.TimelineEntry{
			{Status: domain.StatusPendingPayment, Note: "transaction created", CreatedAt: time.Now()},
		},
		CreatedAt: time.Now(),
	}
}

package domain

import "testing"

func TestSummarize(t *testing.T) {
	transactions := []*EscrowTransaction{
		{Status: StatusPendingPayment, Amount: 100, PaidAmount: 0},
		{Status: StatusFundsSecured, Amount: 200, PaidAmount: 50},
		{Status: StatusPaymentReceived, Amount: 300, PaidAmount: 300},
		{Status: StatusOrderPlaced, Amount: 400, PaidAmount: 400},
		{Status: StatusInTransit, Amount: 500, PaidAmount: 500},
		{Status: StatusDelivered, Amount: 600, PaidAmount: 600},
		{Status: StatusCompleted, Amount: 700, PaidAmount: 700},
		{Status: StatusDisputed, Amount: 800, PaidAmount: 800},
		{Status: StatusRefunded, Amount: 900, PaidAmount: 900},
	}

	s := Summarize(transactions)

	if s.Pending != 1 {
		t.Errorf("expected 1 pending, got %d", s.Pending)
	}
	if s.Secured != 2 {
		t.Errorf("expected 2 secured, got %d", s.Secured)
	}
	if s.InTransit != 2 {
		t.Errorf("expected 2 in transit, got %d", s.InTransit)
	}
	if s.Delivered != 1 {
		t.Errorf("expected 1 delivered, got %d", s.Delivered)
	}
	if s.Completed != 1 {
		t.Errorf("expected 1 completed, got %d", s.Completed)
	}
	if s.Disputed != 1 {
		t.Errorf("expected 1 disputed, got %d", s.Disputed)
	}
	if s.Refunded != 1 {
		t.Errorf("expected 1 refunded, got %d", s.Refunded)
	}
	if s.TotalAmount != 4500 {
		t.Errorf("expected total amount 4500, got %v", s.TotalAmount)
	}
	if s.TotalPaidAmount != 4250 {
		t.Errorf("expected total paid 4250, got %v", s.TotalPaidAmount)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	if s != (EscrowSummary{}) {
		t.Errorf("expected zero summary for empty set, got %+v", s)
	}
}

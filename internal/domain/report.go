package domain

// EscrowSummary is the dashboard rollup: counts per logical bucket plus
// amount sums over the whole set.
type EscrowSummary struct {
	Pending         int64
	Secured         int64
	InTransit       int64
	Delivered       int64
	Completed       int64
	Disputed        int64
	Refunded        int64
	TotalAmount     float64
	TotalPaidAmount float64
}

// Summarize folds a snapshot of transactions into bucket counts and sums.
// Read-only; an empty snapshot yields the zero summary.
func Summarize(transactions []*EscrowTransaction) EscrowSummary {
	var s EscrowSummary
	for _, tx := range transactions {
		switch tx.Status {
		case StatusPendingPayment:
			s.Pending++
		case StatusFundsSecured, StatusPaymentReceived:
			s.Secured++
		case StatusOrderPlaced, StatusOrderConfirmed, StatusInTransit:
			s.InTransit++
		case StatusDelivered:
			s.Delivered++
		case StatusCompleted:
			s.Completed++
		case StatusDisputed:
			s.Disputed++
		case StatusRefunded:
			s.Refunded++
		}
		s.TotalAmount += tx.Amount
		s.TotalPaidAmount += tx.PaidAmount
	}
	return s
}

// EscrowStatistics is the SQL-side aggregate used by the admin console for
// a date-bounded view.
type EscrowStatistics struct {
	TotalTransactions     int64
	CompletedTransactions int64
	DisputedTransactions  int64
	RefundedTransactions  int64
	TotalAmount           float64
	TotalPaidAmount       float64
}

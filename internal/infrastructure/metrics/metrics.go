package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// EscrowMetrics groups all engine metrics.
type EscrowMetrics struct {
	TransactionsCreatedTotal       prometheus.CounterVec
	TransactionsCreatedAmountTotal prometheus.CounterVec

	TransactionsCompletedTotal prometheus.CounterVec
	TransactionsRefundedTotal  prometheus.CounterVec

	PaymentsRecordedTotal       prometheus.CounterVec
	PaymentsRecordedAmountTotal prometheus.CounterVec
	PaymentReplaysTotal         prometheus.CounterVec

	TransitionsTotal prometheus.CounterVec

	DisputesOpenedTotal   prometheus.CounterVec
	DisputesResolvedTotal prometheus.CounterVec

	VerificationSweepDuration prometheus.HistogramVec

	TransitionErrorsTotal prometheus.CounterVec
}

func NewEscrowMetrics() *EscrowMetrics {
	return &EscrowMetrics{
		TransactionsCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "escrow_transactions_created_total",
				Help: "Total escrow transactions created",
			},
			[]string{"currency"},
		),

		TransactionsCreatedAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "escrow_transactions_created_amount_total",
				Help: "Total amount of created escrow transactions",
			},
			[]string{"currency"},
		),

		TransactionsCompletedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "escrow_transactions_completed_total",
				Help: "Total escrow transactions released to the seller",
			},
			[]string{"currency", "trigger"},
		),

		TransactionsRefundedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "escrow_transactions_refunded_total",
				Help: "Total escrow transactions refunded to the buyer",
			},
			[]string{"currency"},
		),

		PaymentsRecordedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "escrow_payments_recorded_total",
				Help: "Total payment captures credited",
			},
			[]string{"currency"},
		),

		PaymentsRecordedAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "escrow_payments_recorded_amount_total",
				Help: "Total captured amount credited",
			},
			[]string{"currency"},
		),

		PaymentReplaysTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "escrow_payment_replays_total",
				Help: "Payment provider events ignored as idempotent replays",
			},
			[]string{"currency"},
		),

		TransitionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "escrow_transitions_total",
				Help: "Status transitions by edge",
			},
			[]string{"from", "to"},
		),

		DisputesOpenedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "escrow_disputes_opened_total",
				Help: "Disputes opened by reason",
			},
			[]string{"reason"},
		),

		DisputesResolvedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "escrow_disputes_resolved_total",
				Help: "Disputes resolved by outcome",
			},
			[]string{"outcome"},
		),

		VerificationSweepDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "escrow_verification_sweep_duration_seconds",
				Help:    "Duration of the verification-expiry sweep",
				Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
			},
			[]string{},
		),

		TransitionErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "escrow_transition_errors_total",
				Help: "Rejected or failed transition attempts",
			},
			[]string{"operation", "error_type"},
		),
	}
}

func (m *EscrowMetrics) RecordTransactionCreated(currency string, amount float64) {
	m.TransactionsCreatedTotal.WithLabelValues(currency).Inc()
	m.TransactionsCreatedAmountTotal.WithLabelValues(currency).Add(amount)
}

// RecordTransactionCompleted records a release. trigger distinguishes the
// completion path: "receipt", "sweep", "lazy_read" or "dispute".
func (m *EscrowMetrics) RecordTransactionCompleted(currency, trigger string) {
	m.TransactionsCompletedTotal.WithLabelValues(currency, trigger).Inc()
}

func (m *EscrowMetrics) RecordTransactionRefunded(currency string) {
	m.TransactionsRefundedTotal.WithLabelValues(currency).Inc()
}

func (m *EscrowMetrics) RecordPayment(currency string, amount float64) {
	m.PaymentsRecordedTotal.WithLabelValues(currency).Inc()
	m.PaymentsRecordedAmountTotal.WithLabelValues(currency).Add(amount)
}

func (m *EscrowMetrics) RecordPaymentReplay(currency string) {
	m.PaymentReplaysTotal.WithLabelValues(currency).Inc()
}

func (m *EscrowMetrics) RecordTransition(from, to string) {
	m.TransitionsTotal.WithLabelValues(from, to).Inc()
}

func (m *EscrowMetrics) RecordDisputeOpened(reason string) {
	m.DisputesOpenedTotal.WithLabelValues(reason).Inc()
}

func (m *EscrowMetrics) RecordDisputeResolved(outcome string) {
	m.DisputesResolvedTotal.WithLabelValues(outcome).Inc()
}

func (m *EscrowMetrics) RecordSweepDuration(durationSeconds float64) {
	m.VerificationSweepDuration.WithLabelValues().Observe(durationSeconds)
}

func (m *EscrowMetrics) RecordTransitionError(operation, errorType string) {
	m.TransitionErrorsTotal.WithLabelValues(operation, errorType).Inc()
}

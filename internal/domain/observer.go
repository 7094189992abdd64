package domain

import "time"

// TransitionEvent describes one successful timeline append. Every status
// change produces exactly one event, so downstream notification delivery
// can reconstruct the full history without reading the engine's tables.
type TransitionEvent struct {
	Reference  string            `json:"reference"`
	OldStatus  TransactionStatus `json:"old_status"`
	NewStatus  TransactionStatus `json:"new_status"`
	Note       string            `json:"note,omitempty"`
	Amount     float64           `json:"amount"`
	PaidAmount float64           `json:"paid_amount"`
	Currency   string            `json:"currency"`
	OccurredAt time.Time         `json:"occurred_at"`
}

// TransitionObserver is invoked once after each committed transition.
// Observer failures must not roll back the transition.
type TransitionObserver interface {
	ObserveTransition(event TransitionEvent) error
}

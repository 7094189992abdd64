package domain

import "errors"

var (
	ErrTransactionNotFound = errors.New("escrow transaction not found")
	ErrInvalidTransition   = errors.New("transition not allowed for current status")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrOverPayment         = errors.New("captured amount exceeds transaction amount")
	ErrMissingFields       = errors.New("dispute reason and description are required")
	ErrTooManyAttachments  = errors.New("dispute evidence limit exceeded")
	ErrDisputeNotFound     = errors.New("dispute not found")

	// ErrPaymentEventSeen marks an idempotent replay of a payment-provider
	// event. Callers treat it as an already-applied capture, not a failure.
	ErrPaymentEventSeen = errors.New("payment event already processed")
)

package domain

import (
	"strings"
	"time"
)

type TransactionStatus string

const (
	StatusPendingPayment  TransactionStatus = "PENDING_PAYMENT"
	StatusFundsSecured    TransactionStatus = "FUNDS_SECURED"
	StatusPaymentReceived TransactionStatus = "PAYMENT_RECEIVED"
	StatusOrderPlaced     TransactionStatus = "ORDER_PLACED"
	StatusOrderConfirmed  TransactionStatus = "ORDER_CONFIRMED"
	StatusInTransit       TransactionStatus = "IN_TRANSIT"
	StatusDelivered       TransactionStatus = "DELIVERED"
	StatusDisputed        TransactionStatus = "DISPUTED"
	StatusCompleted       TransactionStatus = "COMPLETED"
	StatusRefunded        TransactionStatus = "REFUNDED"
)

type Client struct {
	Name  string
	Phone string
}

type Delivery struct {
	Method         string
	TrackingNumber string
	Carrier        string
	EstimatedDate  time.Time
}

type TimelineEntry struct {
	ID        string
	Status    TransactionStatus
	Note      string
	CreatedAt time.Time
}

// EscrowTransaction is the aggregate root. Status is owned by the state
// machine: every mutation goes through the repository's CAS transition
// methods, never through a blind update.
type EscrowTransaction struct {
	ID                 string
	Reference          string
	Status             TransactionStatus
	Amount             float64
	PaidAmount         float64
	Currency           string
	Client             Client
	Guarantees         []string
	Delivery           *Delivery
	DeliveredAt        *time.Time
	VerificationEndsAt *time.Time
	Dispute            *Dispute
	Timeline           []TimelineEntry
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (t *EscrowTransaction) IsTerminal() bool {
	return t.Status == StatusCompleted || t.Status == StatusRefunded
}

// VerificationElapsed reports whether the post-delivery verification window
// has closed with no active dispute.
func (t *EscrowTransaction) VerificationElapsed(now time.Time) bool {
	if t.Status != StatusDelivered || t.VerificationEndsAt == nil {
		return false
	}
	return now.After(*t.VerificationEndsAt)
}

// fulfillmentPredecessor fixes the forward-only shipping pipeline.
var fulfillmentPredecessor = map[TransactionStatus]TransactionStatus{
	StatusOrderPlaced:    StatusPaymentReceived,
	StatusOrderConfirmed: StatusOrderPlaced,
	StatusInTransit:      StatusOrderConfirmed,
}

// CanAdvanceFulfillment reports whether target is the next fulfillment step
// after current. Backward and skipping requests are rejected.
func CanAdvanceFulfillment(current, target TransactionStatus) bool {
	prev, ok := fulfillmentPredecessor[target]
	return ok && prev == current
}

// NormalizeReference case-normalizes an external reference for lookup.
func NormalizeReference(reference string) string {
	return strings.ToUpper(strings.TrimSpace(reference))
}

// TransitionUpdates carries the extra columns written together with a CAS
// status change, in the same persisted operation.
type TransitionUpdates struct {
	Delivery           *Delivery
	DeliveredAt        *time.Time
	VerificationEndsAt *time.Time
}

type TransactionRepository interface {
	CreateTransaction(tx *EscrowTransaction) error
	GetByReference(reference string) (*EscrowTransaction, error)
	ListTransactions() ([]*EscrowTransaction, error)

	// ProcessTransition atomically swaps from -> to, applies updates and
	// appends a timeline entry. Fails with ErrInvalidTransition when the
	// stored status no longer equals from.
	ProcessTransition(reference string, from, to TransactionStatus, note string, updates *TransitionUpdates) error

	// ProcessPayment credits amount under the row lock, recording eventID
	// for idempotency, and derives the resulting status (FUNDS_SECURED,
	// or PAYMENT_RECEIVED on full capture). A replayed eventID fails with
	// ErrPaymentEventSeen and leaves the row untouched.
	ProcessPayment(reference string, from TransactionStatus, note, eventID string, amount float64) (TransactionStatus, error)

	ProcessDisputeOpen(reference string, from TransactionStatus, dispute *Dispute, note string) error
	ProcessDisputeResolve(reference string, to TransactionStatus, outcome DisputeOutcome, resolvedAt time.Time, note string) error

	FindVerificationExpired() ([]*EscrowTransaction, error)
	GetStatistics(dateFrom, dateTo time.Time) (*EscrowStatistics, error)
}

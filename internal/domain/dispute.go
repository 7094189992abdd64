package domain

import "time"

type DisputeReason string

const (
	ReasonNotAsDescribed DisputeReason = "ITEM_NOT_AS_DESCRIBED"
	ReasonNonDelivery    DisputeReason = "NON_DELIVERY"
	ReasonDamaged        DisputeReason = "DAMAGED"
	ReasonOther          DisputeReason = "OTHER"
)

type DisputeOutcome string

const (
	// OutcomeRelease closes the dispute in the seller's favor: funds are
	// released and the transaction completes.
	OutcomeRelease DisputeOutcome = "RELEASE"
	// OutcomeRefund closes the dispute in the buyer's favor: the
	// transaction moves to the refund terminal state.
	OutcomeRefund DisputeOutcome = "REFUND"
)

// Dispute is embedded in its transaction, at most one per transaction.
// ResolvedAt unset means the dispute is still active.
type Dispute struct {
	ID            string
	TransactionID string
	Reason        DisputeReason
	Description   string
	Evidence      []string
	Outcome       DisputeOutcome
	OpenedAt      time.Time
	ResolvedAt    *time.Time
}

func (d *Dispute) Active() bool {
	return d != nil && d.ResolvedAt == nil
}

type DisputeFilter struct {
	Reference *string
	Active    *bool
	Page      int
	Limit     int
}

type DisputeRepository interface {
	GetDisputeByReference(reference string) (*Dispute, error)
	ListDisputes(filter DisputeFilter) ([]*Dispute, int64, error)
}

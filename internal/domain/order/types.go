package order

import "marketplace-core/internal/pkg/errs"

type Status string

const (
	StatusCreated              Status = "created"
	StatusPaid                 Status = "paid"
	StatusMeetupScheduled      Status = "meetup_scheduled"
	StatusLabelReady           Status = "label_ready"
	StatusInTransit            Status = "in_transit"
	StatusAwaitingConfirmation Status = "awaiting_confirmation"
	StatusCompleted            Status = "completed"
	StatusCancelled            Status = "cancelled"
	StatusRefunded             Status = "refunded"
	StatusDispute              Status = "dispute"
	StatusExpired              Status = "expired"
)

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

// IsTerminal reports statuses with no outgoing transition.
func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0 && s.IsValid()
}

// IsInFlight reports statuses that hold the listing the same way an active reservation does.
func (s Status) IsInFlight() bool {
	return s.IsValid() && !s.IsTerminal()
}

type FulfillmentMode string

const (
	FulfillmentShipping FulfillmentMode = "shipping"
	FulfillmentInPerson FulfillmentMode = "in_person"
)

func (m FulfillmentMode) IsValid() bool {
	return m == FulfillmentShipping || m == FulfillmentInPerson
}

func ParseFulfillmentMode(s string) (FulfillmentMode, error) {
	m := FulfillmentMode(s)
	if !m.IsValid() {
		return "", ErrInvalidFulfillment
	}
	return m, nil
}

type PartyRole string

const (
	PartyNone   PartyRole = ""
	PartyBuyer  PartyRole = "buyer"
	PartySeller PartyRole = "seller"
)

// EscalationReason names why a lapsed deadline forced the order into dispute.
type EscalationReason string

const (
	EscalationNoShow      EscalationReason = "no_show"
	EscalationUnconfirmed EscalationReason = "other"
)

type Escalation struct {
	Reason  EscalationReason
	Message string
}

var (
	ErrInvalidFulfillment  = errs.Validation("fulfillment mode must be shipping or in_person")
	ErrSelfPurchase        = errs.Validation("seller cannot buy their own listing")
	ErrAmountMismatch      = errs.Validation("paid amount does not match the order total")
	ErrHandoverCodeInvalid = errs.Validation("handover code does not match")
	ErrMeetupInPast        = errs.Validation("meetup time must be in the future")
	ErrWrongFulfillment    = errs.InvalidTransition("operation not available for this fulfillment mode")
	ErrDeadlinePassed      = errs.InvalidTransition("handover deadline has passed")
	ErrNotParty            = errs.Denied("actor is not a party to this order")
	ErrNotBuyer            = errs.Denied("only the buyer can perform this action")
	ErrNotSeller           = errs.Denied("only the seller can perform this action")
	ErrLeaveDispute        = errs.InvalidTransition("an order in dispute can only be settled by dispute resolution")
)

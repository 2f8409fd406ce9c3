package dispute

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"marketplace-core/internal/domain/order"
	"marketplace-core/internal/pkg/errs"

	"github.com/google/uuid"
)

const MaxMessageLength = 2000

type Reason string

const (
	ReasonNoShow         Reason = "no_show"
	ReasonNotAsDescribed Reason = "not_as_described"
	ReasonNotReceived    Reason = "not_received"
	ReasonOther          Reason = "other"
)

func ParseReason(s string) (Reason, error) {
	switch r := Reason(s); r {
	case ReasonNoShow, ReasonNotAsDescribed, ReasonNotReceived, ReasonOther:
		return r, nil
	default:
		return "", ErrInvalidReason
	}
}

type Outcome string

const (
	OutcomeRefundBuyer     Outcome = "refund_buyer"
	OutcomeReleaseToSeller Outcome = "release_to_seller"
	OutcomeCancelOrder     Outcome = "cancel_order"
)

func ParseOutcome(s string) (Outcome, error) {
	switch o := Outcome(s); o {
	case OutcomeRefundBuyer, OutcomeReleaseToSeller, OutcomeCancelOrder:
		return o, nil
	default:
		return "", ErrInvalidOutcome
	}
}

// OrderStatus is the terminal status the order settles into for this outcome.
func (o Outcome) OrderStatus() order.Status {
	switch o {
	case OutcomeRefundBuyer:
		return order.StatusRefunded
	case OutcomeReleaseToSeller:
		return order.StatusCompleted
	default:
		return order.StatusCancelled
	}
}

// AgainstParty is the side the outcome rules against, used for the no-show counter.
func (o Outcome) AgainstParty() order.PartyRole {
	switch o {
	case OutcomeRefundBuyer:
		return order.PartySeller
	case OutcomeReleaseToSeller:
		return order.PartyBuyer
	default:
		return order.PartyNone
	}
}

var (
	ErrInvalidReason   = errs.Validation("invalid dispute reason")
	ErrInvalidOutcome  = errs.Validation("invalid dispute outcome")
	ErrMessageTooLong  = errs.Validation("dispute message exceeds maximum length")
	ErrAlreadyOpen     = errs.Conflict("order already has an open dispute")
	ErrAlreadyResolved = errs.InvalidTransition("dispute is already resolved")
	ErrNotParty        = errs.Denied("only a party to the order can open a dispute")
	ErrOrderMismatch   = errs.Validation("dispute does not belong to this order")
)

var openableFrom = map[order.Status]bool{
	order.StatusPaid:                 true,
	order.StatusMeetupScheduled:      true,
	order.StatusInTransit:            true,
	order.StatusAwaitingConfirmation: true,
}

type Resolution struct {
	Outcome    Outcome   `json:"outcome"`
	Note       string    `json:"note,omitempty"`
	ResolvedBy uuid.UUID `json:"resolved_by"`
	ResolvedAt time.Time `json:"resolved_at"`
}

// Dispute records are append-only; resolution only flips is_resolved and stores the outcome.
type Dispute struct {
	id         uuid.UUID
	orderID    uuid.UUID
	openedBy   *uuid.UUID
	reason     Reason
	message    string
	isResolved bool
	resolution *Resolution
	createdAt  time.Time
	updatedAt  time.Time
}

// Open creates a party dispute and moves the order into dispute.
func Open(o *order.Order, openerID uuid.UUID, reason Reason, message string, hasOpenDispute bool, now time.Time) (*Dispute, *order.Order, error) {
	if !o.IsParty(openerID) {
		return nil, nil, ErrNotParty
	}
	if hasOpenDispute {
		return nil, nil, ErrAlreadyOpen
	}
	if !openableFrom[o.Status()] {
		return nil, nil, errs.InvalidTransition(fmt.Sprintf("dispute cannot be opened while order is %s", o.Status()))
	}
	msg, err := normalizeMessage(message)
	if err != nil {
		return nil, nil, err
	}
	disputed, err := o.EnterDispute(now)
	if err != nil {
		return nil, nil, err
	}
	opener := openerID
	return &Dispute{
		id:        uuid.New(),
		orderID:   o.ID(),
		openedBy:  &opener,
		reason:    reason,
		message:   msg,
		createdAt: now,
		updatedAt: now,
	}, disputed, nil
}

// OpenForEscalation records the system dispute for an order that Reconcile already moved into dispute.
func OpenForEscalation(orderID uuid.UUID, esc order.Escalation, now time.Time) *Dispute {
	return &Dispute{
		id:        uuid.New(),
		orderID:   orderID,
		reason:    Reason(esc.Reason),
		message:   esc.Message,
		createdAt: now,
		updatedAt: now,
	}
}

func Reconstruct(
	id, orderID uuid.UUID,
	openedBy *uuid.UUID,
	reason Reason,
	message string,
	isResolved bool,
	resolution *Resolution,
	createdAt, updatedAt time.Time,
) *Dispute {
	return &Dispute{
		id:         id,
		orderID:    orderID,
		openedBy:   openedBy,
		reason:     reason,
		message:    message,
		isResolved: isResolved,
		resolution: resolution,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Resolve settles the dispute and drives the order into the outcome's terminal status.
func (d *Dispute) Resolve(o *order.Order, outcome Outcome, note string, resolverID uuid.UUID, now time.Time) (*Dispute, *order.Order, error) {
	if d.isResolved {
		return nil, nil, ErrAlreadyResolved
	}
	if o.ID() != d.orderID {
		return nil, nil, ErrOrderMismatch
	}
	settled, err := o.Settle(outcome.OrderStatus(), now)
	if err != nil {
		return nil, nil, err
	}
	n := *d
	n.isResolved = true
	n.resolution = &Resolution{
		Outcome:    outcome,
		Note:       strings.TrimSpace(note),
		ResolvedBy: resolverID,
		ResolvedAt: now,
	}
	n.updatedAt = now
	return &n, settled, nil
}

func normalizeMessage(s string) (string, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) > MaxMessageLength {
		return "", ErrMessageTooLong
	}
	return s, nil
}

func (d *Dispute) ID() uuid.UUID           { return d.id }
func (d *Dispute) OrderID() uuid.UUID      { return d.orderID }
func (d *Dispute) OpenedBy() *uuid.UUID    { return d.openedBy }
func (d *Dispute) Reason() Reason          { return d.reason }
func (d *Dispute) Message() string         { return d.message }
func (d *Dispute) IsResolved() bool        { return d.isResolved }
func (d *Dispute) Resolution() *Resolution { return d.resolution }
func (d *Dispute) CreatedAt() time.Time    { return d.createdAt }
func (d *Dispute) UpdatedAt() time.Time    { return d.updatedAt }

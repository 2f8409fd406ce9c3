package payment

import (
	"encoding/json"
	"fmt"
	"time"

	"marketplace-core/internal/pkg/errs"

	"github.com/google/uuid"
)

type Status string

const (
	StatusRequiresAction Status = "requires_action"
	StatusSucceeded      Status = "succeeded"
	StatusFailed         Status = "failed"
	StatusRefunded       Status = "refunded"
)

// Outcome is the provider result delivered through the inbound payment event.
type Outcome string

const (
	OutcomeSucceeded Outcome = "succeeded"
	OutcomeFailed    Outcome = "failed"
	OutcomeRefunded  Outcome = "refunded"
)

func ParseOutcome(s string) (Outcome, error) {
	switch o := Outcome(s); o {
	case OutcomeSucceeded, OutcomeFailed, OutcomeRefunded:
		return o, nil
	default:
		return "", ErrInvalidOutcome
	}
}

var transitions = map[Status][]Status{
	StatusRequiresAction: {StatusSucceeded, StatusFailed, StatusRequiresAction},
	StatusFailed:         {StatusRequiresAction, StatusSucceeded, StatusFailed},
	StatusSucceeded:      {StatusRefunded},
	StatusRefunded:       {},
}

var (
	ErrInvalidOutcome = errs.Validation("payment outcome must be succeeded, failed or refunded")
	ErrAlreadySettled = errs.InvalidTransition("payment already succeeded")
	ErrInvalidAmount  = errs.Validation("payment amount must be positive")
)

const DefaultProvider = "stripe"

type Refs struct {
	PaymentIntentID *string
	ChargeID        *string
}

type Payment struct {
	id          uuid.UUID
	orderID     uuid.UUID
	provider    string
	status      Status
	amountCents int64
	currency    string
	refs        Refs
	raw         json.RawMessage
	createdAt   time.Time
	updatedAt   time.Time
}

func NewPayment(orderID uuid.UUID, provider string, amountCents int64, currency string, refs Refs, now time.Time) (*Payment, error) {
	if amountCents <= 0 {
		return nil, ErrInvalidAmount
	}
	if provider == "" {
		provider = DefaultProvider
	}
	return &Payment{
		id:          uuid.New(),
		orderID:     orderID,
		provider:    provider,
		status:      StatusRequiresAction,
		amountCents: amountCents,
		currency:    currency,
		refs:        refs,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructPayment(
	id, orderID uuid.UUID,
	provider string,
	status Status,
	amountCents int64,
	currency string,
	refs Refs,
	raw json.RawMessage,
	createdAt, updatedAt time.Time,
) *Payment {
	return &Payment{
		id:          id,
		orderID:     orderID,
		provider:    provider,
		status:      status,
		amountCents: amountCents,
		currency:    currency,
		refs:        refs,
		raw:         raw,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (p *Payment) move(to Status, now time.Time) (*Payment, error) {
	allowed := false
	for _, next := range transitions[p.status] {
		if next == to {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, errs.InvalidTransition(fmt.Sprintf("payment cannot move from %s to %s", p.status, to))
	}
	n := *p
	n.status = to
	n.updatedAt = now
	return &n, nil
}

// Reinitiate refreshes an unsettled payment with a new provider intent.
func (p *Payment) Reinitiate(amountCents int64, refs Refs, now time.Time) (*Payment, error) {
	if p.status == StatusSucceeded || p.status == StatusRefunded {
		return nil, ErrAlreadySettled
	}
	n, err := p.move(StatusRequiresAction, now)
	if err != nil {
		return nil, err
	}
	n.amountCents = amountCents
	n.refs = refs
	return n, nil
}

// Apply records a provider outcome on the payment.
func (p *Payment) Apply(outcome Outcome, refs Refs, raw json.RawMessage, now time.Time) (*Payment, error) {
	var to Status
	switch outcome {
	case OutcomeSucceeded:
		to = StatusSucceeded
	case OutcomeFailed:
		to = StatusFailed
	case OutcomeRefunded:
		if p.status == StatusRefunded {
			return p, nil
		}
		to = StatusRefunded
	default:
		return nil, ErrInvalidOutcome
	}
	n, err := p.move(to, now)
	if err != nil {
		return nil, err
	}
	if refs.PaymentIntentID != nil {
		n.refs.PaymentIntentID = refs.PaymentIntentID
	}
	if refs.ChargeID != nil {
		n.refs.ChargeID = refs.ChargeID
	}
	if len(raw) > 0 {
		n.raw = raw
	}
	return n, nil
}

func (p *Payment) ID() uuid.UUID        { return p.id }
func (p *Payment) OrderID() uuid.UUID   { return p.orderID }
func (p *Payment) Provider() string     { return p.provider }
func (p *Payment) Status() Status       { return p.status }
func (p *Payment) AmountCents() int64   { return p.amountCents }
func (p *Payment) Currency() string     { return p.currency }
func (p *Payment) Refs() Refs           { return p.refs }
func (p *Payment) Raw() json.RawMessage { return p.raw }
func (p *Payment) CreatedAt() time.Time { return p.createdAt }
func (p *Payment) UpdatedAt() time.Time { return p.updatedAt }

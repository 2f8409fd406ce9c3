package order

import (
	"strings"
	"time"

	"marketplace-core/internal/pkg/errs"

	"github.com/google/uuid"
)

// Policy carries the lifecycle windows evaluated lazily by Reconcile.
type Policy struct {
	PaymentWindow      time.Duration
	HandoverWindow     time.Duration
	ConfirmationWindow time.Duration
	ShippingGrace      time.Duration
}

type NewOrderInput struct {
	ListingID        uuid.UUID
	SellerID         uuid.UUID
	BuyerID          uuid.UUID
	Mode             FulfillmentMode
	ItemCents        int64
	Currency         string
	BuyerAddressRef  *string
	SellerAddressRef *string
}

// Order snapshots are immutable; every operation returns a new value or a rejection.
type Order struct {
	id                   uuid.UUID
	listingID            uuid.UUID
	buyerID              uuid.UUID
	sellerID             uuid.UUID
	mode                 FulfillmentMode
	status               Status
	breakdown            Breakdown
	totalPaidCents       *int64
	currency             string
	buyerAddressRef      *string
	sellerAddressRef     *string
	handoverCode         *string
	handoverConfirmedAt  *time.Time
	confirmationDeadline *time.Time
	meetupAt             *time.Time
	trackingNumber       *string
	paymentDeadline      time.Time
	paidAt               *time.Time
	shippedAt            *time.Time
	deliveredAt          *time.Time
	completedAt          *time.Time
	cancelledAt          *time.Time
	cancelledBy          *uuid.UUID
	createdAt            time.Time
	updatedAt            time.Time
}

type Snapshot struct {
	ID                   uuid.UUID
	ListingID            uuid.UUID
	BuyerID              uuid.UUID
	SellerID             uuid.UUID
	Mode                 FulfillmentMode
	Status               Status
	Breakdown            Breakdown
	TotalPaidCents       *int64
	Currency             string
	BuyerAddressRef      *string
	SellerAddressRef     *string
	HandoverCode         *string
	HandoverConfirmedAt  *time.Time
	ConfirmationDeadline *time.Time
	MeetupAt             *time.Time
	TrackingNumber       *string
	PaymentDeadline      time.Time
	PaidAt               *time.Time
	ShippedAt            *time.Time
	DeliveredAt          *time.Time
	CompletedAt          *time.Time
	CancelledAt          *time.Time
	CancelledBy          *uuid.UUID
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func NewOrder(in NewOrderInput, fees FeeSchedule, policy Policy, now time.Time) (*Order, error) {
	if in.BuyerID == in.SellerID {
		return nil, ErrSelfPurchase
	}
	if !in.Mode.IsValid() {
		return nil, ErrInvalidFulfillment
	}

	o := &Order{
		id:               uuid.New(),
		listingID:        in.ListingID,
		buyerID:          in.BuyerID,
		sellerID:         in.SellerID,
		mode:             in.Mode,
		status:           StatusCreated,
		breakdown:        fees.Quote(in.ItemCents, in.Mode),
		currency:         in.Currency,
		buyerAddressRef:  in.BuyerAddressRef,
		sellerAddressRef: in.SellerAddressRef,
		paymentDeadline:  now.Add(policy.PaymentWindow),
		createdAt:        now,
		updatedAt:        now,
	}
	if in.Mode == FulfillmentInPerson {
		code, err := GenerateHandoverCode()
		if err != nil {
			return nil, errs.Wrap(err, "failed to generate handover code")
		}
		o.handoverCode = &code
	}
	return o, nil
}

func Reconstruct(s Snapshot) *Order {
	return &Order{
		id:                   s.ID,
		listingID:            s.ListingID,
		buyerID:              s.BuyerID,
		sellerID:             s.SellerID,
		mode:                 s.Mode,
		status:               s.Status,
		breakdown:            s.Breakdown,
		totalPaidCents:       s.TotalPaidCents,
		currency:             s.Currency,
		buyerAddressRef:      s.BuyerAddressRef,
		sellerAddressRef:     s.SellerAddressRef,
		handoverCode:         s.HandoverCode,
		handoverConfirmedAt:  s.HandoverConfirmedAt,
		confirmationDeadline: s.ConfirmationDeadline,
		meetupAt:             s.MeetupAt,
		trackingNumber:       s.TrackingNumber,
		paymentDeadline:      s.PaymentDeadline,
		paidAt:               s.PaidAt,
		shippedAt:            s.ShippedAt,
		deliveredAt:          s.DeliveredAt,
		completedAt:          s.CompletedAt,
		cancelledAt:          s.CancelledAt,
		cancelledBy:          s.CancelledBy,
		createdAt:            s.CreatedAt,
		updatedAt:            s.UpdatedAt,
	}
}

func (o *Order) Snapshot() Snapshot {
	return Snapshot{
		ID:                   o.id,
		ListingID:            o.listingID,
		BuyerID:              o.buyerID,
		SellerID:             o.sellerID,
		Mode:                 o.mode,
		Status:               o.status,
		Breakdown:            o.breakdown,
		TotalPaidCents:       o.totalPaidCents,
		Currency:             o.currency,
		BuyerAddressRef:      o.buyerAddressRef,
		SellerAddressRef:     o.sellerAddressRef,
		HandoverCode:         o.handoverCode,
		HandoverConfirmedAt:  o.handoverConfirmedAt,
		ConfirmationDeadline: o.confirmationDeadline,
		MeetupAt:             o.meetupAt,
		TrackingNumber:       o.trackingNumber,
		PaymentDeadline:      o.paymentDeadline,
		PaidAt:               o.paidAt,
		ShippedAt:            o.shippedAt,
		DeliveredAt:          o.deliveredAt,
		CompletedAt:          o.completedAt,
		CancelledAt:          o.cancelledAt,
		CancelledBy:          o.cancelledBy,
		CreatedAt:            o.createdAt,
		UpdatedAt:            o.updatedAt,
	}
}

func (o *Order) next(to Status, now time.Time) *Order {
	c := *o
	c.status = to
	c.updatedAt = now
	return &c
}

// Transition validates from→to against the lifecycle table and returns the new snapshot.
// The receiver is never modified.
func (o *Order) Transition(to Status, now time.Time) (*Order, error) {
	if err := checkTransition(o.status, to); err != nil {
		return nil, err
	}
	n := o.next(to, now)
	switch to {
	case StatusCompleted:
		n.completedAt = timePtr(now)
	case StatusCancelled, StatusExpired:
		n.cancelledAt = timePtr(now)
	}
	return n, nil
}

// Settle is the only way out of StatusDispute.
func (o *Order) Settle(to Status, now time.Time) (*Order, error) {
	if err := checkSettlement(o.status, to); err != nil {
		return nil, err
	}
	n := o.next(to, now)
	n.confirmationDeadline = nil
	switch to {
	case StatusCompleted:
		n.completedAt = timePtr(now)
	case StatusCancelled:
		n.cancelledAt = timePtr(now)
	}
	return n, nil
}

func (o *Order) Role(actorID uuid.UUID) PartyRole {
	switch actorID {
	case o.buyerID:
		return PartyBuyer
	case o.sellerID:
		return PartySeller
	default:
		return PartyNone
	}
}

func (o *Order) IsParty(actorID uuid.UUID) bool {
	return o.Role(actorID) != PartyNone
}

func (o *Order) MarkPaid(amountCents int64, now time.Time) (*Order, error) {
	if err := checkTransition(o.status, StatusPaid); err != nil {
		return nil, err
	}
	if amountCents != o.breakdown.TotalCents {
		return nil, ErrAmountMismatch
	}
	n := o.next(StatusPaid, now)
	n.paidAt = timePtr(now)
	n.totalPaidCents = &amountCents
	return n, nil
}

func (o *Order) ScheduleMeetup(actorID uuid.UUID, at time.Time, policy Policy, now time.Time) (*Order, error) {
	if o.Role(actorID) != PartySeller {
		return nil, ErrNotSeller
	}
	if o.mode != FulfillmentInPerson {
		return nil, ErrWrongFulfillment
	}
	if err := checkTransition(o.status, StatusMeetupScheduled); err != nil {
		return nil, err
	}
	if !at.After(now) {
		return nil, ErrMeetupInPast
	}
	n := o.next(StatusMeetupScheduled, now)
	n.meetupAt = timePtr(at)
	n.confirmationDeadline = timePtr(at.Add(policy.HandoverWindow))
	return n, nil
}

// ConfirmHandover is called by the seller with the code the buyer shows at the meetup.
func (o *Order) ConfirmHandover(actorID uuid.UUID, code string, policy Policy, now time.Time) (*Order, error) {
	if o.Role(actorID) != PartySeller {
		return nil, ErrNotSeller
	}
	if o.mode != FulfillmentInPerson {
		return nil, ErrWrongFulfillment
	}
	if err := checkTransition(o.status, StatusAwaitingConfirmation); err != nil {
		return nil, err
	}
	if o.confirmationDeadline != nil && !now.Before(*o.confirmationDeadline) {
		return nil, ErrDeadlinePassed
	}
	if o.handoverCode == nil || !handoverCodeMatches(*o.handoverCode, code) {
		return nil, ErrHandoverCodeInvalid
	}
	n := o.next(StatusAwaitingConfirmation, now)
	n.handoverConfirmedAt = timePtr(now)
	n.deliveredAt = timePtr(now)
	n.confirmationDeadline = timePtr(now.Add(policy.ConfirmationWindow))
	return n, nil
}

func (o *Order) MarkLabelReady(actorID uuid.UUID, now time.Time) (*Order, error) {
	if o.Role(actorID) != PartySeller {
		return nil, ErrNotSeller
	}
	if o.mode != FulfillmentShipping {
		return nil, ErrWrongFulfillment
	}
	if err := checkTransition(o.status, StatusLabelReady); err != nil {
		return nil, err
	}
	return o.next(StatusLabelReady, now), nil
}

func (o *Order) Ship(actorID uuid.UUID, trackingNumber string, now time.Time) (*Order, error) {
	if o.Role(actorID) != PartySeller {
		return nil, ErrNotSeller
	}
	if o.mode != FulfillmentShipping {
		return nil, ErrWrongFulfillment
	}
	if err := checkTransition(o.status, StatusInTransit); err != nil {
		return nil, err
	}
	n := o.next(StatusInTransit, now)
	n.shippedAt = timePtr(now)
	if tn := strings.TrimSpace(trackingNumber); tn != "" {
		n.trackingNumber = &tn
	}
	return n, nil
}

// MarkDelivered starts the shipping grace period after which the order completes on its own.
func (o *Order) MarkDelivered(actorID uuid.UUID, policy Policy, now time.Time) (*Order, error) {
	if !o.IsParty(actorID) {
		return nil, ErrNotParty
	}
	if o.mode != FulfillmentShipping {
		return nil, ErrWrongFulfillment
	}
	if err := checkTransition(o.status, StatusAwaitingConfirmation); err != nil {
		return nil, err
	}
	n := o.next(StatusAwaitingConfirmation, now)
	n.deliveredAt = timePtr(now)
	n.confirmationDeadline = timePtr(now.Add(policy.ShippingGrace))
	return n, nil
}

func (o *Order) ConfirmReceipt(actorID uuid.UUID, now time.Time) (*Order, error) {
	if o.Role(actorID) != PartyBuyer {
		return nil, ErrNotBuyer
	}
	n, err := o.Transition(StatusCompleted, now)
	if err != nil {
		return nil, err
	}
	n.confirmationDeadline = nil
	return n, nil
}

// Cancel reports changed=false when the order already reached a cancelled-like terminal
// status, which is how a lost cancellation race surfaces.
func (o *Order) Cancel(actorID uuid.UUID, now time.Time) (*Order, bool, error) {
	if !o.IsParty(actorID) {
		return nil, false, ErrNotParty
	}
	switch o.status {
	case StatusCancelled, StatusExpired, StatusRefunded:
		return o, false, nil
	}
	n, err := o.Transition(StatusCancelled, now)
	if err != nil {
		return nil, false, err
	}
	n.cancelledBy = &actorID
	n.confirmationDeadline = nil
	return n, true, nil
}

// EnterDispute is used when a party opens a dispute.
func (o *Order) EnterDispute(now time.Time) (*Order, error) {
	return o.Transition(StatusDispute, now)
}

// Refund applies a provider refund. A repeated refund is a no-op.
func (o *Order) Refund(now time.Time) (*Order, bool, error) {
	if o.status == StatusRefunded {
		return o, false, nil
	}
	n, err := o.Transition(StatusRefunded, now)
	if err != nil {
		return nil, false, err
	}
	return n, true, nil
}

// Reconcile applies every lapsed deadline. When the result is a forced dispute the returned
// Escalation describes the system dispute to record alongside it.
func (o *Order) Reconcile(now time.Time, policy Policy) (*Order, *Escalation, bool) {
	switch o.status {
	case StatusCreated:
		if !now.Before(o.paymentDeadline) {
			n := o.next(StatusExpired, now)
			n.cancelledAt = timePtr(now)
			return n, nil, true
		}
	case StatusMeetupScheduled:
		if o.mode == FulfillmentInPerson && o.deadlinePassed(now) {
			n := o.next(StatusDispute, now)
			return n, &Escalation{Reason: EscalationNoShow, Message: "handover was not confirmed before the deadline"}, true
		}
	case StatusAwaitingConfirmation:
		if !o.deadlinePassed(now) {
			break
		}
		if o.mode == FulfillmentInPerson {
			n := o.next(StatusDispute, now)
			return n, &Escalation{Reason: EscalationUnconfirmed, Message: "buyer did not confirm receipt before the deadline"}, true
		}
		n := o.next(StatusCompleted, now)
		n.completedAt = timePtr(now)
		n.confirmationDeadline = nil
		return n, nil, true
	}
	return o, nil, false
}

func (o *Order) deadlinePassed(now time.Time) bool {
	return o.confirmationDeadline != nil && !now.Before(*o.confirmationDeadline)
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func (o *Order) ID() uuid.UUID                    { return o.id }
func (o *Order) ListingID() uuid.UUID             { return o.listingID }
func (o *Order) BuyerID() uuid.UUID               { return o.buyerID }
func (o *Order) SellerID() uuid.UUID              { return o.sellerID }
func (o *Order) Mode() FulfillmentMode            { return o.mode }
func (o *Order) Status() Status                   { return o.status }
func (o *Order) Breakdown() Breakdown             { return o.breakdown }
func (o *Order) Currency() string                 { return o.currency }
func (o *Order) HandoverCode() *string            { return o.handoverCode }
func (o *Order) ConfirmationDeadline() *time.Time { return o.confirmationDeadline }
func (o *Order) PaymentDeadline() time.Time       { return o.paymentDeadline }
func (o *Order) CancelledBy() *uuid.UUID          { return o.cancelledBy }
func (o *Order) CreatedAt() time.Time             { return o.createdAt }
func (o *Order) UpdatedAt() time.Time             { return o.updatedAt }

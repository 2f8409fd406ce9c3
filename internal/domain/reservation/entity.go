package reservation

import (
	"time"

	"marketplace-core/internal/domain/listing"

	"github.com/google/uuid"
)

// Reservation is append-only: it is never deleted, only stamped as cancelled.
type Reservation struct {
	id           uuid.UUID
	listingID    uuid.UUID
	buyerID      uuid.UUID
	reservedAt   time.Time
	expiresAt    time.Time
	cancelledAt  *time.Time
	cancelReason *CancelReason
}

// Candidate is the listing state a reservation attempt is judged against, read under the listing lock
// after lazy reconciliation.
type Candidate struct {
	ListingID     uuid.UUID
	SellerID      uuid.UUID
	ListingStatus listing.Status
	HasActiveHold bool
}

type HoldPolicy struct {
	Default time.Duration
	Max     time.Duration
}

// Resolve returns the hold to apply, falling back to the default when none was requested.
func (p HoldPolicy) Resolve(requested time.Duration) (time.Duration, error) {
	if requested == 0 {
		requested = p.Default
	}
	if requested <= 0 || (p.Max > 0 && requested > p.Max) {
		return 0, ErrInvalidHold
	}
	return requested, nil
}

func TryReserve(c Candidate, buyerID uuid.UUID, hold time.Duration, now time.Time) (*Reservation, error) {
	if buyerID == c.SellerID {
		return nil, ErrSelfReservation
	}
	if c.ListingStatus == listing.StatusReserved || c.HasActiveHold {
		return nil, ErrAlreadyReserved
	}
	if c.ListingStatus != listing.StatusPublished {
		return nil, ErrNotReservable
	}
	if hold <= 0 {
		return nil, ErrInvalidHold
	}
	return &Reservation{
		id:         uuid.New(),
		listingID:  c.ListingID,
		buyerID:    buyerID,
		reservedAt: now,
		expiresAt:  now.Add(hold),
	}, nil
}

func ReconstructReservation(
	id, listingID, buyerID uuid.UUID,
	reservedAt, expiresAt time.Time,
	cancelledAt *time.Time,
	cancelReason *CancelReason,
) *Reservation {
	return &Reservation{
		id:           id,
		listingID:    listingID,
		buyerID:      buyerID,
		reservedAt:   reservedAt,
		expiresAt:    expiresAt,
		cancelledAt:  cancelledAt,
		cancelReason: cancelReason,
	}
}

func (r *Reservation) IsActive(now time.Time) bool {
	return r.cancelledAt == nil && now.Before(r.expiresAt)
}

func (r *Reservation) IsCancelled() bool {
	return r.cancelledAt != nil
}

func (r *Reservation) cancelled(reason CancelReason, now time.Time) *Reservation {
	next := *r
	at := now
	next.cancelledAt = &at
	next.cancelReason = &reason
	return &next
}

// Reconcile stamps an expired reservation as cancelled. It is a no-op for reservations
// that are still active or already cancelled.
func (r *Reservation) Reconcile(now time.Time) (*Reservation, bool) {
	if r.cancelledAt != nil || now.Before(r.expiresAt) {
		return r, false
	}
	return r.cancelled(ReasonExpired, now), true
}

// Cancel is idempotent: cancelling an already-cancelled reservation reports changed=false.
func (r *Reservation) Cancel(actorID, sellerID uuid.UUID, now time.Time) (*Reservation, bool, error) {
	var reason CancelReason
	switch actorID {
	case sellerID:
		reason = ReasonSellerCancelled
	case r.buyerID:
		reason = ReasonBuyerCancelled
	default:
		return nil, false, ErrNotCancellableBy
	}
	if r.cancelledAt != nil {
		return r, false, nil
	}
	return r.cancelled(reason, now), true, nil
}

// Supersede closes the reservation because an order on the listing completed.
func (r *Reservation) Supersede(now time.Time) (*Reservation, bool) {
	if r.cancelledAt != nil {
		return r, false
	}
	return r.cancelled(ReasonSuperseded, now), true
}

func (r *Reservation) ID() uuid.UUID               { return r.id }
func (r *Reservation) ListingID() uuid.UUID        { return r.listingID }
func (r *Reservation) BuyerID() uuid.UUID          { return r.buyerID }
func (r *Reservation) ReservedAt() time.Time       { return r.reservedAt }
func (r *Reservation) ExpiresAt() time.Time        { return r.expiresAt }
func (r *Reservation) CancelledAt() *time.Time     { return r.cancelledAt }
func (r *Reservation) CancelReason() *CancelReason { return r.cancelReason }

package commands

import (
	"context"

	"marketplace-core/internal/domain/dispute"
	"marketplace-core/internal/domain/listing"
	"marketplace-core/internal/domain/order"
	"marketplace-core/internal/domain/reservation"
	"marketplace-core/internal/pkg/errs"
	"marketplace-core/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	reservationActive = "active"
	disputeOpen       = "open"
	disputeResolved   = "resolved"
)

// syncListing locks the listing, reconciles its holds and applies the availability rule.
// known is an order the caller already holds locked; it replaces the in-flight lookup.
func (r *Runner) syncListing(ctx context.Context, s *txScope, listingID uuid.UUID, known *order.Order) (*availability, error) {
	tx := s.tx
	ord := known
	if ord == nil {
		// lock order precedes listing
		inflight, err := tx.Orders().FindInFlightByListing(ctx, tx.DB(), listingID)
		if err != nil {
			return nil, err
		}
		if inflight != nil {
			locked, err := tx.Orders().FindForUpdate(ctx, tx.DB(), inflight.ID())
			if err != nil {
				return nil, err
			}
			if ord, err = r.reconcileOrder(ctx, s, locked); err != nil {
				return nil, err
			}
		}
	}

	l, err := tx.Listings().FindForUpdate(ctx, tx.DB(), listingID)
	if err != nil {
		return nil, err
	}
	if known == nil {
		// an order created while this transaction waited on the listing lock is only visible now;
		// it counts as a hold as-is, its own next access reconciles it
		late, err := tx.Orders().FindInFlightByListing(ctx, tx.DB(), listingID)
		if err != nil {
			return nil, err
		}
		if late != nil && (ord == nil || late.ID() != ord.ID()) {
			ord = late
		}
	}
	completed := ord != nil && ord.Status() == order.StatusCompleted
	res, err := r.settleReservation(ctx, s, listingID, completed)
	if err != nil {
		return nil, err
	}

	av := &availability{listing: l, reservation: res}
	if ord != nil && ord.Status().IsInFlight() {
		av.order = ord
	}

	next, changed := l, false
	if completed && listing.CanTransition(l.Status(), listing.StatusSold) {
		if next, err = l.MarkSold(s.now); err != nil {
			return nil, err
		}
		changed = true
	} else {
		next, changed = l.WithAvailability(av.hasHold(), s.now)
	}
	if changed {
		if err := r.saveListing(ctx, s, l, next, nil); err != nil {
			return nil, err
		}
	}
	av.listing = next
	return av, nil
}

func (r *Runner) saveListing(ctx context.Context, s *txScope, prev, next *listing.Listing, actorID *uuid.UUID) error {
	if err := s.tx.Listings().Save(ctx, s.tx.DB(), next); err != nil {
		return err
	}
	if prev.Status() == next.Status() {
		return nil
	}
	return s.record(ctx, shared.EntityListing, next.ID(), prev.Status().String(), next.Status().String(), actorID)
}

// settleReservation returns the listing's still-active reservation, closing it first when it
// expired or when a completed order supersedes it.
func (r *Runner) settleReservation(ctx context.Context, s *txScope, listingID uuid.UUID, supersede bool) (*reservation.Reservation, error) {
	res, err := s.tx.Reservations().FindOpenByListing(ctx, s.tx.DB(), listingID)
	if err != nil || res == nil {
		return nil, err
	}
	var next *reservation.Reservation
	var changed bool
	if supersede {
		next, changed = res.Supersede(s.now)
	} else {
		next, changed = res.Reconcile(s.now)
	}
	if !changed {
		return res, nil
	}
	if _, err := r.closeReservation(ctx, s, next, nil); err != nil {
		return nil, err
	}
	return nil, nil
}

// closeReservation persists a cancelled snapshot. false means another writer stamped it first.
func (r *Runner) closeReservation(ctx context.Context, s *txScope, next *reservation.Reservation, actorID *uuid.UUID) (bool, error) {
	ok, err := s.tx.Reservations().MarkCancelled(ctx, s.tx.DB(), next)
	if err != nil || !ok {
		return false, err
	}
	reason := ""
	if next.CancelReason() != nil {
		reason = next.CancelReason().String()
	}
	return true, s.record(ctx, shared.EntityReservation, next.ID(), reservationActive, reason, actorID)
}

// reconcileOrder applies lapsed deadlines to a locked order. The listing is left to the caller.
func (r *Runner) reconcileOrder(ctx context.Context, s *txScope, o *order.Order) (*order.Order, error) {
	next, esc, changed := o.Reconcile(s.now, r.policies.Order)
	if !changed {
		return o, nil
	}
	if esc != nil {
		d := dispute.OpenForEscalation(o.ID(), *esc, s.now)
		if err := s.tx.Disputes().Create(ctx, s.tx.DB(), d); err != nil {
			return nil, err
		}
		if err := s.record(ctx, shared.EntityDispute, d.ID(), "", disputeOpen, nil); err != nil {
			return nil, err
		}
	}
	if err := r.saveOrder(ctx, s, o, next, nil); err != nil {
		return nil, err
	}
	return next, nil
}

// saveOrder persists a transition and marks both parties when their counters may move.
func (r *Runner) saveOrder(ctx context.Context, s *txScope, prev, next *order.Order, actorID *uuid.UUID) error {
	if err := s.tx.Orders().Save(ctx, s.tx.DB(), next); err != nil {
		return err
	}
	if prev.Status() == next.Status() {
		return nil
	}
	switch next.Status() {
	case order.StatusCompleted, order.StatusCancelled, order.StatusDispute, order.StatusRefunded:
		s.touch(next.BuyerID(), next.SellerID())
	}
	return s.record(ctx, shared.EntityOrder, next.ID(), prev.Status().String(), next.Status().String(), actorID)
}

// commitOrder saves a command's transition and releases or sells the listing on terminal statuses.
func (r *Runner) commitOrder(ctx context.Context, s *txScope, prev, next *order.Order, actorID *uuid.UUID) error {
	if err := r.saveOrder(ctx, s, prev, next, actorID); err != nil {
		return err
	}
	if !next.Status().IsTerminal() {
		return nil
	}
	_, err := r.syncListing(ctx, s, next.ListingID(), next)
	return err
}

// lockOrder loads an order for a command and applies lazy reconciliation, including its listing.
func (r *Runner) lockOrder(ctx context.Context, s *txScope, id uuid.UUID) (*order.Order, error) {
	o, err := s.tx.Orders().FindForUpdate(ctx, s.tx.DB(), id)
	if err != nil {
		return nil, err
	}
	next, err := r.reconcileOrder(ctx, s, o)
	if err != nil {
		return nil, err
	}
	if next.Status() != o.Status() && next.Status().IsTerminal() {
		if _, err := r.syncListing(ctx, s, next.ListingID(), next); err != nil {
			return nil, err
		}
	}
	return next, nil
}

func orderState(err error, o *order.Order) error {
	return errs.WithState(err, shared.EntityOrder, o.ID().String(), o.Status().String())
}

func listingState(err error, l *listing.Listing) error {
	return errs.WithState(err, shared.EntityListing, l.ID().String(), l.Status().String())
}

func disputeState(err error, d *dispute.Dispute) error {
	state := disputeOpen
	if d.IsResolved() {
		state = disputeResolved
	}
	return errs.WithState(err, shared.EntityDispute, d.ID().String(), state)
}

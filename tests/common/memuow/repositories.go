//go:build unit || property

package memuow

import (
	"context"
	"time"

	"marketplace-core/internal/domain/dispute"
	"marketplace-core/internal/domain/listing"
	"marketplace-core/internal/domain/order"
	"marketplace-core/internal/domain/payment"
	"marketplace-core/internal/domain/reputation"
	"marketplace-core/internal/domain/reservation"
	"marketplace-core/internal/domain/review"
	"marketplace-core/internal/domain/user"
	"marketplace-core/internal/infra"
	sqlc "marketplace-core/internal/infra/sqlc/generated"
	"marketplace-core/internal/usecase/shared"

	"github.com/google/uuid"
)

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

func duplicate(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindDuplicateKey)
}

type userRepo struct{ st *state }

func (r userRepo) Create(_ context.Context, _ sqlc.DBTX, u *user.User) error {
	if _, ok := r.st.users[u.ID()]; ok {
		return duplicate("user already exists")
	}
	for _, existing := range r.st.users {
		if existing.Email().Value() == u.Email().Value() {
			return duplicate("email already registered")
		}
	}
	r.st.users[u.ID()] = u
	return nil
}

func (r userRepo) FindByID(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*user.User, error) {
	u, ok := r.st.users[id]
	if !ok {
		return nil, notFound("user not found")
	}
	return u, nil
}

func (r userRepo) UpdateTrustScore(_ context.Context, _ sqlc.DBTX, id uuid.UUID, score *float64, now time.Time) error {
	u, ok := r.st.users[id]
	if !ok {
		return notFound("user not found")
	}
	r.st.users[id] = user.ReconstructUser(u.ID(), u.Email(), u.DisplayName(), u.Role(), score, u.CreatedAt(), now)
	return nil
}

type reputationRepo struct{ st *state }

func (r reputationRepo) Create(_ context.Context, _ sqlc.DBTX, s *reputation.Stats) error {
	if _, ok := r.st.stats[s.UserID()]; ok {
		return duplicate("reputation stats already exist")
	}
	r.st.stats[s.UserID()] = s
	return nil
}

func (r reputationRepo) FindForUpdate(_ context.Context, _ sqlc.DBTX, userID uuid.UUID) (*reputation.Stats, error) {
	s, ok := r.st.stats[userID]
	if !ok {
		return nil, notFound("reputation stats not found")
	}
	return s, nil
}

func (r reputationRepo) Save(_ context.Context, _ sqlc.DBTX, s *reputation.Stats) error {
	if _, ok := r.st.stats[s.UserID()]; !ok {
		return notFound("reputation stats not found")
	}
	r.st.stats[s.UserID()] = s
	return nil
}

func (r reputationRepo) Samples(_ context.Context, _ sqlc.DBTX, userID uuid.UUID) ([]reputation.Sample, error) {
	var samples []reputation.Sample
	for _, rev := range r.st.reviews {
		if rev.TargetID() != userID {
			continue
		}
		samples = append(samples, reputation.Sample{
			Side:   rev.Direction().TargetSide(),
			Rating: rev.Rating().Value(),
		})
	}
	return samples, nil
}

// Activity mirrors the GetReputationActivity query.
func (r reputationRepo) Activity(_ context.Context, _ sqlc.DBTX, userID uuid.UUID) (reputation.Activity, error) {
	var a reputation.Activity
	for _, o := range r.st.orders {
		if o.Status() == order.StatusCompleted {
			if o.SellerID() == userID {
				a.ItemsSold++
			}
			if o.BuyerID() == userID {
				a.ItemsBought++
			}
		}
		if by := o.CancelledBy(); by != nil && *by == userID {
			a.Cancellations++
		}
	}
	for _, d := range r.st.disputes {
		o, ok := r.st.orders[d.OrderID()]
		if !ok {
			continue
		}
		if o.BuyerID() == userID || o.SellerID() == userID {
			a.Disputes++
		}
		res := d.Resolution()
		if d.Reason() != dispute.ReasonNoShow || !d.IsResolved() || res == nil {
			continue
		}
		if (res.Outcome == dispute.OutcomeRefundBuyer && o.SellerID() == userID) ||
			(res.Outcome == dispute.OutcomeReleaseToSeller && o.BuyerID() == userID) {
			a.NoShows++
		}
	}
	return a, nil
}

type listingRepo struct{ st *state }

func (r listingRepo) Create(_ context.Context, _ sqlc.DBTX, l *listing.Listing) error {
	if _, ok := r.st.users[l.SellerID()]; !ok {
		return infra.WrapRepoErr("seller does not exist", nil, infra.KindForeignKeyViolated)
	}
	r.st.listings[l.ID()] = l
	return nil
}

func (r listingRepo) FindByID(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*listing.Listing, error) {
	l, ok := r.st.listings[id]
	if !ok {
		return nil, notFound("listing not found")
	}
	return l, nil
}

func (r listingRepo) FindForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*listing.Listing, error) {
	return r.FindByID(ctx, db, id)
}

func (r listingRepo) Save(_ context.Context, _ sqlc.DBTX, l *listing.Listing) error {
	if _, ok := r.st.listings[l.ID()]; !ok {
		return notFound("listing not found")
	}
	r.st.listings[l.ID()] = l
	return nil
}

type reservationRepo struct{ st *state }

// Create enforces the one-open-reservation-per-listing unique index.
func (r reservationRepo) Create(_ context.Context, _ sqlc.DBTX, res *reservation.Reservation) error {
	for _, existing := range r.st.reservations {
		if existing.ListingID() == res.ListingID() && !existing.IsCancelled() {
			return duplicate("listing already has an open reservation")
		}
	}
	r.st.reservations[res.ID()] = res
	return nil
}

func (r reservationRepo) FindByID(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	res, ok := r.st.reservations[id]
	if !ok {
		return nil, notFound("reservation not found")
	}
	return res, nil
}

func (r reservationRepo) FindForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	return r.FindByID(ctx, db, id)
}

func (r reservationRepo) FindOpenByListing(_ context.Context, _ sqlc.DBTX, listingID uuid.UUID) (*reservation.Reservation, error) {
	for _, res := range r.st.reservations {
		if res.ListingID() == listingID && !res.IsCancelled() {
			return res, nil
		}
	}
	return nil, nil
}

func (r reservationRepo) MarkCancelled(_ context.Context, _ sqlc.DBTX, res *reservation.Reservation) (bool, error) {
	current, ok := r.st.reservations[res.ID()]
	if !ok {
		return false, notFound("reservation not found")
	}
	if current.IsCancelled() {
		return false, nil
	}
	r.st.reservations[res.ID()] = res
	return true, nil
}

type orderRepo struct{ st *state }

// Create enforces the one-in-flight-order-per-listing unique index.
func (r orderRepo) Create(_ context.Context, _ sqlc.DBTX, o *order.Order) error {
	for _, existing := range r.st.orders {
		if existing.ListingID() == o.ListingID() && existing.Status().IsInFlight() {
			return duplicate("listing already has an in-flight order")
		}
	}
	r.st.orders[o.ID()] = o
	return nil
}

func (r orderRepo) FindByID(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*order.Order, error) {
	o, ok := r.st.orders[id]
	if !ok {
		return nil, notFound("order not found")
	}
	return o, nil
}

func (r orderRepo) FindForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*order.Order, error) {
	return r.FindByID(ctx, db, id)
}

func (r orderRepo) FindInFlightByListing(_ context.Context, _ sqlc.DBTX, listingID uuid.UUID) (*order.Order, error) {
	for _, o := range r.st.orders {
		if o.ListingID() == listingID && o.Status().IsInFlight() {
			return o, nil
		}
	}
	return nil, nil
}

func (r orderRepo) Save(_ context.Context, _ sqlc.DBTX, o *order.Order) error {
	if _, ok := r.st.orders[o.ID()]; !ok {
		return notFound("order not found")
	}
	r.st.orders[o.ID()] = o
	return nil
}

type paymentRepo struct{ st *state }

func (r paymentRepo) FindByOrder(_ context.Context, _ sqlc.DBTX, orderID uuid.UUID) (*payment.Payment, error) {
	return r.st.payments[orderID], nil
}

func (r paymentRepo) Save(_ context.Context, _ sqlc.DBTX, p *payment.Payment) error {
	r.st.payments[p.OrderID()] = p
	return nil
}

type providerEventRepo struct{ st *state }

func (r providerEventRepo) TryRecord(_ context.Context, _ sqlc.DBTX, ev shared.ProviderEvent) (bool, error) {
	key := eventKey{provider: ev.Provider, eventID: ev.EventID}
	if _, ok := r.st.providerEvents[key]; ok {
		return false, nil
	}
	r.st.providerEvents[key] = ev
	return true, nil
}

type disputeRepo struct{ st *state }

// Create enforces the one-open-dispute-per-order unique index.
func (r disputeRepo) Create(_ context.Context, _ sqlc.DBTX, d *dispute.Dispute) error {
	for _, existing := range r.st.disputes {
		if existing.OrderID() == d.OrderID() && !existing.IsResolved() {
			return duplicate("order already has an open dispute")
		}
	}
	r.st.disputes[d.ID()] = d
	return nil
}

func (r disputeRepo) FindForUpdate(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*dispute.Dispute, error) {
	d, ok := r.st.disputes[id]
	if !ok {
		return nil, notFound("dispute not found")
	}
	return d, nil
}

func (r disputeRepo) FindOpenByOrder(_ context.Context, _ sqlc.DBTX, orderID uuid.UUID) (*dispute.Dispute, error) {
	for _, d := range r.st.disputes {
		if d.OrderID() == orderID && !d.IsResolved() {
			return d, nil
		}
	}
	return nil, nil
}

func (r disputeRepo) MarkResolved(_ context.Context, _ sqlc.DBTX, d *dispute.Dispute) (bool, error) {
	current, ok := r.st.disputes[d.ID()]
	if !ok {
		return false, notFound("dispute not found")
	}
	if current.IsResolved() {
		return false, nil
	}
	r.st.disputes[d.ID()] = d
	return true, nil
}

type reviewRepo struct{ st *state }

func (r reviewRepo) FindByOrderDirection(_ context.Context, _ sqlc.DBTX, orderID uuid.UUID, direction review.Direction) (*review.Review, error) {
	return r.st.reviews[reviewKey{orderID: orderID, direction: direction}], nil
}

func (r reviewRepo) Upsert(_ context.Context, _ sqlc.DBTX, rev *review.Review) error {
	r.st.reviews[reviewKey{orderID: rev.OrderID(), direction: rev.Direction()}] = rev
	return nil
}

type eventRepo struct{ st *state }

func (r eventRepo) Append(_ context.Context, _ sqlc.DBTX, ev shared.StatusEvent) error {
	r.st.events = append(r.st.events, ev)
	return nil
}

package commands

import (
	"context"
	"time"

	"marketplace-core/internal/domain/reservation"
	"marketplace-core/internal/infra"
	"marketplace-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationCommands interface {
	// TryReserve is an atomic check-and-create; a zero hold means the configured default.
	TryReserve(ctx context.Context, listingID, buyerID uuid.UUID, hold time.Duration) (*reservation.Reservation, error)
	// CancelReservation reports changed=false for an already cancelled or expired reservation.
	CancelReservation(ctx context.Context, reservationID, actorID uuid.UUID) (bool, error)
}

type reservationUseCaseImpl struct {
	*Runner
}

func NewReservationUseCase(runner *Runner) ReservationCommands {
	return &reservationUseCaseImpl{Runner: runner}
}

func (uc *reservationUseCaseImpl) TryReserve(ctx context.Context, listingID, buyerID uuid.UUID, hold time.Duration) (*reservation.Reservation, error) {
	duration, err := uc.policies.Hold.Resolve(hold)
	if err != nil {
		return nil, err
	}

	var created *reservation.Reservation
	err = uc.run(ctx, "reservation.try_reserve", func(ctx context.Context, s *txScope) error {
		created = nil
		if err := uc.requireUser(ctx, s, buyerID); err != nil {
			return err
		}
		av, err := uc.syncListing(ctx, s, listingID, nil)
		if err != nil {
			return err
		}

		candidate := reservation.Candidate{
			ListingID:     listingID,
			SellerID:      av.listing.SellerID(),
			ListingStatus: av.listing.Status(),
			HasActiveHold: av.hasHold(),
		}
		res, err := reservation.TryReserve(candidate, buyerID, duration, s.now)
		if err != nil {
			return s.reject(listingState(err, av.listing))
		}

		if err := s.tx.Reservations().Create(ctx, s.tx.DB(), res); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return listingState(reservation.ErrAlreadyReserved, av.listing)
			}
			return err
		}
		if err := s.record(ctx, shared.EntityReservation, res.ID(), "", reservationActive, &buyerID); err != nil {
			return err
		}

		next, changed := av.listing.WithAvailability(true, s.now)
		if changed {
			if err := uc.saveListing(ctx, s, av.listing, next, &buyerID); err != nil {
				return err
			}
		}
		created = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (uc *reservationUseCaseImpl) CancelReservation(ctx context.Context, reservationID, actorID uuid.UUID) (bool, error) {
	var changed bool
	err := uc.run(ctx, "reservation.cancel", func(ctx context.Context, s *txScope) error {
		changed = false
		current, err := s.tx.Reservations().FindByID(ctx, s.tx.DB(), reservationID)
		if err != nil {
			return err
		}
		// listing first: its sync may already expire this reservation
		av, err := uc.syncListing(ctx, s, current.ListingID(), nil)
		if err != nil {
			return err
		}
		locked, err := s.tx.Reservations().FindForUpdate(ctx, s.tx.DB(), reservationID)
		if err != nil {
			return err
		}

		next, ok, err := locked.Cancel(actorID, av.listing.SellerID(), s.now)
		if err != nil {
			return s.reject(err)
		}
		if !ok {
			return nil
		}
		if changed, err = uc.closeReservation(ctx, s, next, &actorID); err != nil || !changed {
			return err
		}

		if av.reservation != nil && av.reservation.ID() == reservationID {
			av.reservation = nil
		}
		released, moved := av.listing.WithAvailability(av.hasHold(), s.now)
		if !moved {
			return nil
		}
		return uc.saveListing(ctx, s, av.listing, released, &actorID)
	})
	if err != nil {
		return false, err
	}
	return changed, nil
}

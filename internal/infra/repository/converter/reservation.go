package converter

import (
	"marketplace-core/internal/domain/reservation"
	sqlc "marketplace-core/internal/infra/sqlc/generated"
	"marketplace-core/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func ReservationToCreateParams(r *reservation.Reservation) sqlc.CreateReservationParams {
	return sqlc.CreateReservationParams{
		ID:         r.ID(),
		ListingID:  r.ListingID(),
		BuyerID:    r.BuyerID(),
		ReservedAt: pgconv.TimeToPgtype(r.ReservedAt()),
		ExpiresAt:  pgconv.TimeToPgtype(r.ExpiresAt()),
	}
}

func ReservationToCancelParams(r *reservation.Reservation) sqlc.CancelReservationParams {
	params := sqlc.CancelReservationParams{
		ID:          r.ID(),
		CancelledAt: pgconv.TimePtrToPgtype(r.CancelledAt()),
	}
	if reason := r.CancelReason(); reason != nil {
		params.CancelReason = pgtype.Text{String: reason.String(), Valid: true}
	}
	return params
}

func ReservationFromRow(row sqlc.Reservations) *reservation.Reservation {
	var reason *reservation.CancelReason
	if row.CancelReason.Valid {
		r := reservation.CancelReason(row.CancelReason.String)
		reason = &r
	}
	return reservation.ReconstructReservation(
		row.ID,
		row.ListingID,
		row.BuyerID,
		pgconv.TimeFromPgtype(row.ReservedAt),
		pgconv.TimeFromPgtype(row.ExpiresAt),
		pgconv.TimePtrFromPgtype(row.CancelledAt),
		reason,
	)
}

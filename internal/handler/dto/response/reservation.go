package response

import (
	"marketplace-core/internal/domain/reservation"
)

type ReservationResponse struct {
	ID           string  `json:"id"`
	ListingID    string  `json:"listing_id"`
	BuyerID      string  `json:"buyer_id"`
	ReservedAt   int64   `json:"reserved_at"`
	ExpiresAt    int64   `json:"expires_at"`
	CancelledAt  *int64  `json:"cancelled_at,omitempty"`
	CancelReason *string `json:"cancel_reason,omitempty"`
}

func FromReservation(r *reservation.Reservation) *ReservationResponse {
	res := &ReservationResponse{
		ID:          r.ID().String(),
		ListingID:   r.ListingID().String(),
		BuyerID:     r.BuyerID().String(),
		ReservedAt:  r.ReservedAt().Unix(),
		ExpiresAt:   r.ExpiresAt().Unix(),
		CancelledAt: unixPtr(r.CancelledAt()),
	}
	if reason := r.CancelReason(); reason != nil {
		s := string(*reason)
		res.CancelReason = &s
	}
	return res
}

type CancelReservationResponse struct {
	Cancelled bool `json:"cancelled"`
}

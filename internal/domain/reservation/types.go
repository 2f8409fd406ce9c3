package reservation

import "marketplace-core/internal/pkg/errs"

type CancelReason string

const (
	ReasonExpired         CancelReason = "expired"
	ReasonSellerCancelled CancelReason = "seller_cancelled"
	ReasonBuyerCancelled  CancelReason = "buyer_cancelled"
	ReasonSuperseded      CancelReason = "superseded"
)

func (r CancelReason) String() string { return string(r) }

var (
	ErrSelfReservation  = errs.Validation("seller cannot reserve their own listing")
	ErrInvalidHold      = errs.Validation("hold duration must be positive and within the allowed maximum")
	ErrAlreadyReserved  = errs.Conflict("listing is already reserved")
	ErrNotReservable    = errs.InvalidTransition("listing is not published")
	ErrNotCancellableBy = errs.Denied("only the seller or the reserving buyer can cancel")
)

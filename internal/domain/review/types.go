package review

import (
	"marketplace-core/internal/domain/reputation"
	"marketplace-core/internal/pkg/errs"
)

type Direction string

const (
	DirectionBuyerToSeller Direction = "buyer_to_seller"
	DirectionSellerToBuyer Direction = "seller_to_buyer"
)

func (d Direction) String() string { return string(d) }

// TargetSide is the reputation side the review counts towards.
func (d Direction) TargetSide() reputation.SideKind {
	if d == DirectionBuyerToSeller {
		return reputation.SideSeller
	}
	return reputation.SideBuyer
}

var (
	ErrInvalidRating     = errs.Validation("rating must be between 1 and 5")
	ErrCommentTooLong    = errs.Validation("comment exceeds maximum length")
	ErrTooManyTags       = errs.Validation("too many tags")
	ErrTagTooLong        = errs.Validation("tag exceeds maximum length")
	ErrOrderNotCompleted = errs.InvalidTransition("reviews can only be written for completed orders")
	ErrNotParty          = errs.Denied("only the buyer or seller of the order can review it")
	ErrReplaceMismatch   = errs.Validation("replaced review must share order and direction")
)

package review

import (
	"time"

	"marketplace-core/internal/domain/order"

	"github.com/google/uuid"
)

type Review struct {
	id        uuid.UUID
	orderID   uuid.UUID
	direction Direction
	authorID  uuid.UUID
	targetID  uuid.UUID
	rating    Rating
	comment   *Comment
	tags      Tags
	createdAt time.Time
	updatedAt time.Time
}

type SubmitInput struct {
	AuthorID uuid.UUID
	Rating   int
	Comment  *string
	Tags     []string
}

// Submit derives direction and target from the author's side of the order.
func Submit(o *order.Order, in SubmitInput, now time.Time) (*Review, error) {
	if o.Status() != order.StatusCompleted {
		return nil, ErrOrderNotCompleted
	}

	var direction Direction
	var target uuid.UUID
	switch o.Role(in.AuthorID) {
	case order.PartyBuyer:
		direction, target = DirectionBuyerToSeller, o.SellerID()
	case order.PartySeller:
		direction, target = DirectionSellerToBuyer, o.BuyerID()
	default:
		return nil, ErrNotParty
	}

	rating, err := NewRating(in.Rating)
	if err != nil {
		return nil, err
	}
	comment, err := NewComment(in.Comment)
	if err != nil {
		return nil, err
	}
	tags, err := NewTags(in.Tags)
	if err != nil {
		return nil, err
	}

	return &Review{
		id:        uuid.New(),
		orderID:   o.ID(),
		direction: direction,
		authorID:  in.AuthorID,
		targetID:  target,
		rating:    rating,
		comment:   comment,
		tags:      tags,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructReview(
	id, orderID uuid.UUID,
	direction Direction,
	authorID, targetID uuid.UUID,
	rating Rating,
	comment *Comment,
	tags Tags,
	createdAt, updatedAt time.Time,
) *Review {
	return &Review{
		id:        id,
		orderID:   orderID,
		direction: direction,
		authorID:  authorID,
		targetID:  targetID,
		rating:    rating,
		comment:   comment,
		tags:      tags,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Replacing keeps the identity and creation time of the review it supersedes.
func (r *Review) Replacing(prev *Review) (*Review, error) {
	if prev == nil {
		return r, nil
	}
	if prev.orderID != r.orderID || prev.direction != r.direction {
		return nil, ErrReplaceMismatch
	}
	n := *r
	n.id = prev.id
	n.createdAt = prev.createdAt
	return &n, nil
}

func (r *Review) ID() uuid.UUID        { return r.id }
func (r *Review) OrderID() uuid.UUID   { return r.orderID }
func (r *Review) Direction() Direction { return r.direction }
func (r *Review) AuthorID() uuid.UUID  { return r.authorID }
func (r *Review) TargetID() uuid.UUID  { return r.targetID }
func (r *Review) Rating() Rating       { return r.rating }
func (r *Review) Comment() *Comment    { return r.comment }
func (r *Review) Tags() Tags           { return r.tags }
func (r *Review) CreatedAt() time.Time { return r.createdAt }
func (r *Review) UpdatedAt() time.Time { return r.updatedAt }

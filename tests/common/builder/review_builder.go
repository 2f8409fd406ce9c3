//go:build unit || e2e || property

package builder

import (
	"time"

	"marketplace-core/internal/domain/order"
	domreview "marketplace-core/internal/domain/review"
	"marketplace-core/internal/handler/dto/request"
)

type ReviewBuilder struct {
	Order     *OrderBuilder
	AsSeller  bool
	Rating    int
	Comment   *string
	Tags      []string
	CreatedAt time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	comment := "Smooth handover, item as described."
	return &ReviewBuilder{
		Order:     NewOrderBuilder().AsCompleted(),
		Rating:    5,
		Comment:   &comment,
		Tags:      []string{"friendly", "punctual"},
		CreatedAt: time.Date(2025, 1, 20, 12, 0, 0, 0, time.UTC),
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	o := r.Order.BuildDomain()
	return domreview.Submit(o, r.BuildSubmitInput(o), r.CreatedAt)
}

func (r *ReviewBuilder) BuildSubmitInput(o *order.Order) domreview.SubmitInput {
	author := o.BuyerID()
	if r.AsSeller {
		author = o.SellerID()
	}
	return domreview.SubmitInput{
		AuthorID: author,
		Rating:   r.Rating,
		Comment:  r.Comment,
		Tags:     r.Tags,
	}
}

func (r *ReviewBuilder) BuildSubmitRequestDTO() request.SubmitReviewRequest {
	return request.SubmitReviewRequest{
		Rating:  r.Rating,
		Comment: r.Comment,
		Tags:    r.Tags,
	}
}

// Fluent builder methods
func (r *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	r.Rating = rating
	return r
}

func (r *ReviewBuilder) WithComment(comment string) *ReviewBuilder {
	r.Comment = &comment
	return r
}

func (r *ReviewBuilder) WithoutComment() *ReviewBuilder {
	r.Comment = nil
	return r
}

func (r *ReviewBuilder) WithTags(tags ...string) *ReviewBuilder {
	r.Tags = tags
	return r
}

func (r *ReviewBuilder) FromSeller() *ReviewBuilder {
	r.AsSeller = true
	return r
}

func (r *ReviewBuilder) WithOrderStatus(status order.Status) *ReviewBuilder {
	r.Order.WithStatus(status)
	return r
}

func (r *ReviewBuilder) AsPoorRating() *ReviewBuilder {
	r.Rating = 1
	r.WithComment("Item arrived damaged")
	return r
}

package response

import (
	domreview "marketplace-core/internal/domain/review"
	"marketplace-core/internal/usecase/queries"
)

type ReviewResponse struct {
	ID        string   `json:"id"`
	OrderID   string   `json:"order_id"`
	Direction string   `json:"direction"`
	AuthorID  string   `json:"author_id"`
	TargetID  string   `json:"target_id"`
	Rating    int      `json:"rating"`
	Comment   *string  `json:"comment,omitempty"`
	Tags      []string `json:"tags"`
	CreatedAt int64    `json:"created_at"`
	UpdatedAt int64    `json:"updated_at"`
}

func FromReview(r *domreview.Review) *ReviewResponse {
	res := &ReviewResponse{
		ID:        r.ID().String(),
		OrderID:   r.OrderID().String(),
		Direction: r.Direction().String(),
		AuthorID:  r.AuthorID().String(),
		TargetID:  r.TargetID().String(),
		Rating:    r.Rating().Value(),
		Tags:      r.Tags().Values(),
		CreatedAt: r.CreatedAt().Unix(),
		UpdatedAt: r.UpdatedAt().Unix(),
	}
	if c := r.Comment(); c != nil {
		s := c.String()
		res.Comment = &s
	}
	if res.Tags == nil {
		res.Tags = []string{}
	}
	return res
}

type ReviewListItemResponse struct {
	ID         string   `json:"id"`
	OrderID    string   `json:"order_id"`
	Direction  string   `json:"direction"`
	AuthorID   string   `json:"author_id"`
	AuthorName string   `json:"author_name"`
	Rating     int      `json:"rating"`
	Comment    *string  `json:"comment,omitempty"`
	Tags       []string `json:"tags"`
	CreatedAt  int64    `json:"created_at"`
}

func FromReviewList(items []*queries.ReviewListItem) []*ReviewListItemResponse {
	res := make([]*ReviewListItemResponse, len(items))
	for i, it := range items {
		tags := it.Tags
		if tags == nil {
			tags = []string{}
		}
		res[i] = &ReviewListItemResponse{
			ID:         it.ID.String(),
			OrderID:    it.OrderID.String(),
			Direction:  it.Direction,
			AuthorID:   it.AuthorID.String(),
			AuthorName: it.AuthorName,
			Rating:     it.Rating,
			Comment:    it.Comment,
			Tags:       tags,
			CreatedAt:  it.CreatedAt.Unix(),
		}
	}
	return res
}

type ReviewPageResponse struct {
	Reviews    []*ReviewListItemResponse `json:"reviews"`
	NextCursor *string                   `json:"next_cursor,omitempty"`
}

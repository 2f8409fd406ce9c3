package request

import "marketplace-core/internal/usecase/commands"

// SubmitReviewRequest replaces the author's earlier review of the same order, if any.
type SubmitReviewRequest struct {
	Rating  int      `json:"rating" binding:"required,min=1,max=5"`
	Comment *string  `json:"comment,omitempty" binding:"omitempty,max=1000"`
	Tags    []string `json:"tags,omitempty" binding:"omitempty,max=10,dive,max=32"`
}

func (r SubmitReviewRequest) ToCommand() commands.SubmitReviewRequest {
	return commands.SubmitReviewRequest{
		Rating:  r.Rating,
		Comment: r.Comment,
		Tags:    r.Tags,
	}
}

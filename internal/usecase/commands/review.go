package commands

import (
	"context"

	domreview "marketplace-core/internal/domain/review"

	"github.com/google/uuid"
)

type SubmitReviewRequest struct {
	Rating  int
	Comment *string
	Tags    []string
}

type ReviewCommands interface {
	// SubmitReview upserts the author's review for the order and recomputes the target's reputation.
	SubmitReview(ctx context.Context, orderID, authorID uuid.UUID, req SubmitReviewRequest) (*domreview.Review, error)
}

type reviewUseCaseImpl struct {
	*Runner
}

func NewReviewUseCase(runner *Runner) ReviewCommands {
	return &reviewUseCaseImpl{Runner: runner}
}

func (uc *reviewUseCaseImpl) SubmitReview(ctx context.Context, orderID, authorID uuid.UUID, req SubmitReviewRequest) (*domreview.Review, error) {
	var saved *domreview.Review
	err := uc.run(ctx, "review.submit", func(ctx context.Context, s *txScope) error {
		saved = nil
		o, err := uc.lockOrder(ctx, s, orderID)
		if err != nil {
			return err
		}

		rev, err := domreview.Submit(o, domreview.SubmitInput{
			AuthorID: authorID,
			Rating:   req.Rating,
			Comment:  req.Comment,
			Tags:     req.Tags,
		}, s.now)
		if err != nil {
			return s.reject(orderState(err, o))
		}

		prev, err := s.tx.Reviews().FindByOrderDirection(ctx, s.tx.DB(), o.ID(), rev.Direction())
		if err != nil {
			return err
		}
		if rev, err = rev.Replacing(prev); err != nil {
			return err
		}
		if err := s.tx.Reviews().Upsert(ctx, s.tx.DB(), rev); err != nil {
			return err
		}
		s.touch(rev.TargetID())
		saved = rev
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

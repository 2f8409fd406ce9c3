package repository

import (
	"context"

	"marketplace-core/internal/domain/review"
	"marketplace-core/internal/infra"
	"marketplace-core/internal/infra/repository/converter"
	sqlc "marketplace-core/internal/infra/sqlc/generated"
	"marketplace-core/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReviewWriteQueries interface {
	GetReviewByOrderDirection(ctx context.Context, db sqlc.DBTX, arg sqlc.GetReviewByOrderDirectionParams) (sqlc.Reviews, error)
	UpsertReview(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertReviewParams) error
}

type ReviewRepository struct {
	queries ReviewWriteQueries
}

func NewReviewRepository(queries ReviewWriteQueries) *ReviewRepository {
	return &ReviewRepository{queries: queries}
}

func (r *ReviewRepository) FindByOrderDirection(ctx context.Context, tx sqlc.DBTX, orderID uuid.UUID, direction review.Direction) (*review.Review, error) {
	params := sqlc.GetReviewByOrderDirectionParams{
		OrderID:   orderID,
		Direction: direction.String(),
	}
	row, err := r.queries.GetReviewByOrderDirection(ctx, tx, params)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find review", err)
	}
	return converter.ReviewFromRow(row)
}

func (r *ReviewRepository) Upsert(ctx context.Context, tx sqlc.DBTX, rev *review.Review) error {
	if err := r.queries.UpsertReview(ctx, tx, converter.ReviewToUpsertParams(rev)); err != nil {
		return infra.WrapRepoErr("failed to upsert review", err)
	}
	return nil
}

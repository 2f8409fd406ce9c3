package readstore

import (
	"context"
	"time"

	"marketplace-core/internal/infra"
	sqlc "marketplace-core/internal/infra/sqlc/generated"
	"marketplace-core/internal/pkg/pgconv"
	"marketplace-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewReadQueries interface {
	ListReviewsByTargetFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReviewsByTargetFirstPageParams) ([]sqlc.ListReviewsByTargetFirstPageRow, error)
	ListReviewsByTargetKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReviewsByTargetKeysetParams) ([]sqlc.ListReviewsByTargetKeysetRow, error)
}

type ReviewReadStore struct {
	queries ReviewReadQueries
	db      sqlc.DBTX
}

func NewReviewReadStore(queries ReviewReadQueries, db sqlc.DBTX) *ReviewReadStore {
	return &ReviewReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReviewReadStore) FindByTargetFirstPage(ctx context.Context, targetID uuid.UUID, limit int32) ([]*queries.ReviewListItem, error) {
	params := sqlc.ListReviewsByTargetFirstPageParams{TargetID: targetID, PageLimit: limit}
	rows, err := r.queries.ListReviewsByTargetFirstPage(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reviews first page by target", err)
	}
	result := make([]*queries.ReviewListItem, len(rows))
	for i, row := range rows {
		result[i] = reviewListItem(row.ID, row.OrderID, row.Direction, row.AuthorID, row.AuthorName, row.Rating, row.Comment.String, row.Comment.Valid, row.Tags, row.CreatedAt.Time)
	}
	return result, nil
}

func (r *ReviewReadStore) FindByTargetKeyset(ctx context.Context, targetID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ReviewListItem, error) {
	params := sqlc.ListReviewsByTargetKeysetParams{
		TargetID:       targetID,
		AfterCreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		AfterID:        lastID,
		PageLimit:      limit,
	}
	rows, err := r.queries.ListReviewsByTargetKeyset(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reviews keyset by target", err)
	}
	result := make([]*queries.ReviewListItem, len(rows))
	for i, row := range rows {
		result[i] = reviewListItem(row.ID, row.OrderID, row.Direction, row.AuthorID, row.AuthorName, row.Rating, row.Comment.String, row.Comment.Valid, row.Tags, row.CreatedAt.Time)
	}
	return result, nil
}

func reviewListItem(
	id, orderID uuid.UUID,
	direction string,
	authorID uuid.UUID,
	authorName string,
	rating int16,
	comment string,
	hasComment bool,
	tags []string,
	createdAt time.Time,
) *queries.ReviewListItem {
	item := &queries.ReviewListItem{
		ID:         id,
		OrderID:    orderID,
		Direction:  direction,
		AuthorID:   authorID,
		AuthorName: authorName,
		Rating:     int(rating),
		Tags:       tags,
		CreatedAt:  createdAt,
	}
	if hasComment {
		item.Comment = &comment
	}
	if item.Tags == nil {
		item.Tags = []string{}
	}
	return item
}

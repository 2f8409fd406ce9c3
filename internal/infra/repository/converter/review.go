package converter

import (
	"marketplace-core/internal/domain/review"
	sqlc "marketplace-core/internal/infra/sqlc/generated"
	"marketplace-core/internal/pkg/errs"
	"marketplace-core/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func ReviewToUpsertParams(r *review.Review) sqlc.UpsertReviewParams {
	params := sqlc.UpsertReviewParams{
		ID:        r.ID(),
		OrderID:   r.OrderID(),
		Direction: r.Direction().String(),
		AuthorID:  r.AuthorID(),
		TargetID:  r.TargetID(),
		Rating:    int16(r.Rating().Value()), // #nosec G115 -- rating is validated to 1..5
		Tags:      r.Tags().Values(),
		CreatedAt: pgconv.TimeToPgtype(r.CreatedAt()),
		UpdatedAt: pgconv.TimeToPgtype(r.UpdatedAt()),
	}
	if c := r.Comment(); c != nil {
		params.Comment = pgtype.Text{String: c.String(), Valid: true}
	}
	return params
}

func ReviewFromRow(row sqlc.Reviews) (*review.Review, error) {
	rating, err := review.NewRating(int(row.Rating))
	if err != nil {
		return nil, errs.Wrapf(err, "stored review %s", row.ID)
	}
	comment, err := review.NewComment(pgconv.StringPtrFromPgtype(row.Comment))
	if err != nil {
		return nil, errs.Wrapf(err, "stored review %s", row.ID)
	}
	tags, err := review.NewTags(row.Tags)
	if err != nil {
		return nil, errs.Wrapf(err, "stored review %s", row.ID)
	}
	return review.ReconstructReview(
		row.ID,
		row.OrderID,
		review.Direction(row.Direction),
		row.AuthorID,
		row.TargetID,
		rating,
		comment,
		tags,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

package repository

import (
	"context"

	"marketplace-core/internal/domain/reputation"
	"marketplace-core/internal/domain/review"
	"marketplace-core/internal/infra"
	"marketplace-core/internal/infra/repository/converter"
	sqlc "marketplace-core/internal/infra/sqlc/generated"
	"marketplace-core/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReputationQueries interface {
	CreateReputationStats(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReputationStatsParams) error
	GetReputationStatsForUpdate(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (sqlc.ReputationStats, error)
	UpdateReputationStats(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReputationStatsParams) error
	ListReputationSamples(ctx context.Context, db sqlc.DBTX, targetID uuid.UUID) ([]sqlc.ListReputationSamplesRow, error)
	GetReputationActivity(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (sqlc.GetReputationActivityRow, error)
}

type ReputationRepository struct {
	queries ReputationQueries
}

func NewReputationRepository(queries ReputationQueries) *ReputationRepository {
	return &ReputationRepository{queries: queries}
}

func (r *ReputationRepository) Create(ctx context.Context, tx sqlc.DBTX, s *reputation.Stats) error {
	params := sqlc.CreateReputationStatsParams{
		UserID:    s.UserID(),
		UpdatedAt: pgconv.TimeToPgtype(s.UpdatedAt()),
	}
	if err := r.queries.CreateReputationStats(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create reputation stats", err)
	}
	return nil
}

func (r *ReputationRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) (*reputation.Stats, error) {
	row, err := r.queries.GetReputationStatsForUpdate(ctx, tx, userID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reputation stats not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock reputation stats", err)
	}
	return converter.StatsFromRow(row), nil
}

func (r *ReputationRepository) Save(ctx context.Context, tx sqlc.DBTX, s *reputation.Stats) error {
	if err := r.queries.UpdateReputationStats(ctx, tx, converter.StatsToUpdateParams(s)); err != nil {
		return infra.WrapRepoErr("failed to update reputation stats", err)
	}
	return nil
}

// Samples returns every rating targeting the user, tagged with the side it rates.
func (r *ReputationRepository) Samples(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) ([]reputation.Sample, error) {
	rows, err := r.queries.ListReputationSamples(ctx, tx, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reputation samples", err)
	}
	samples := make([]reputation.Sample, 0, len(rows))
	for _, row := range rows {
		samples = append(samples, reputation.Sample{
			Side:   review.Direction(row.Direction).TargetSide(),
			Rating: int(row.Rating),
		})
	}
	return samples, nil
}

func (r *ReputationRepository) Activity(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) (reputation.Activity, error) {
	row, err := r.queries.GetReputationActivity(ctx, tx, userID)
	if err != nil {
		return reputation.Activity{}, infra.WrapRepoErr("failed to count reputation activity", err)
	}
	return reputation.Activity{
		ItemsSold:     row.ItemsSold,
		ItemsBought:   row.ItemsBought,
		Cancellations: row.Cancellations,
		NoShows:       row.NoShows,
		Disputes:      row.Disputes,
	}, nil
}
